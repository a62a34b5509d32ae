// Package netease fetches playlist track listings from the NetEase Cloud
// Music API. Responses are reduced to "Artist - Title" strings suitable for
// the playlist file.
package netease

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the public NetEase playlist API root.
const DefaultBaseURL = "https://music.163.com/api"

const (
	defaultCookie    = "appver=2.0.2"
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	refererURL       = "https://music.163.com/"
)

// ErrLoginRequired reports the API code returned for private playlists that
// need an authenticated cookie.
var ErrLoginRequired = errors.New("playlist requires login, supply a valid cookie")

// Artist is one credited artist on a track.
type Artist struct {
	Name string `json:"name"`
}

// Track is a single playlist entry as returned by the API.
type Track struct {
	Name    string   `json:"name"`
	Artists []Artist `json:"artists"`
}

type playlistResult struct {
	Tracks []Track `json:"tracks"`
}

type playlistResponse struct {
	Code   int            `json:"code"`
	Result playlistResult `json:"result"`
}

// Client provides access to the NetEase playlist API.
type Client struct {
	baseURL    string
	cookie     string
	userAgent  string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithCookie sends the given Cookie header instead of the anonymous default.
func WithCookie(cookie string) Option {
	return func(c *Client) {
		if strings.TrimSpace(cookie) != "" {
			c.cookie = cookie
		}
	}
}

// New creates a NetEase API client. An empty baseURL selects the public API.
func New(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		cookie:     defaultCookie,
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// PlaylistTracks fetches the full track list of a playlist by its numeric ID.
func (c *Client) PlaylistTracks(ctx context.Context, playlistID string) ([]Track, error) {
	playlistID = strings.TrimSpace(playlistID)
	if playlistID == "" {
		return nil, errors.New("playlist id must not be empty")
	}
	endpoint, err := url.Parse(c.baseURL + "/playlist/detail")
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	params := url.Values{}
	params.Set("id", playlistID)
	// n bounds the track count; s the subscriber count. Large n returns
	// the whole playlist in one page.
	params.Set("n", "100000")
	params.Set("s", "8")
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Referer", refererURL)
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Accept-Language", "zh-CN,zh;q=0.9,en;q=0.8")
	req.Header.Set("Cookie", c.cookie)

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("playlist fetch returned %d (latency=%v)", resp.StatusCode, latency)
	}

	var payload playlistResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode playlist response: %w", err)
	}
	if payload.Code != http.StatusOK {
		if payload.Code == 20001 {
			return nil, fmt.Errorf("playlist fetch failed with code %d: %w", payload.Code, ErrLoginRequired)
		}
		return nil, fmt.Errorf("playlist fetch failed with code %d", payload.Code)
	}
	return payload.Result.Tracks, nil
}

// PlaylistTitles fetches a playlist and formats each track as a title line.
func (c *Client) PlaylistTitles(ctx context.Context, playlistID string) ([]string, error) {
	tracks, err := c.PlaylistTracks(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	titles := make([]string, 0, len(tracks))
	for _, track := range tracks {
		titles = append(titles, FormatTrack(track))
	}
	return titles, nil
}

// FormatTrack renders a track as "Artist1 / Artist2 - Title", or the bare
// title when no artists are credited.
func FormatTrack(track Track) string {
	if len(track.Artists) == 0 {
		return track.Name
	}
	names := make([]string, 0, len(track.Artists))
	for _, artist := range track.Artists {
		names = append(names, artist.Name)
	}
	return strings.Join(names, " / ") + " - " + track.Name
}

// ExtractPlaylistID pulls the playlist ID from a playlist URL or accepts a
// bare numeric ID unchanged.
func ExtractPlaylistID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("playlist url must not be empty")
	}
	if idx := strings.LastIndex(raw, "="); idx >= 0 {
		raw = raw[idx+1:]
	}
	if raw == "" {
		return "", errors.New("playlist url carries no id")
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("playlist id %q is not numeric", raw)
		}
	}
	return raw, nil
}
