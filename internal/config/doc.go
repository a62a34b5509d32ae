// Package config loads, normalizes, and validates tracksort configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// NETEASE_COOKIE. The Config type centralizes every knob the CLI needs,
// allowing the music directory, matching threshold, and API credentials to be
// discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
