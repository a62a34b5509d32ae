package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"tracksort/internal/netease"
	"tracksort/internal/playlist"
)

func newFetchCommand(ctx *commandContext) *cobra.Command {
	var outputFlag string
	var cookieFlag string

	cmd := &cobra.Command{
		Use:   "fetch <playlist-url-or-id>",
		Short: "Fetch a NetEase playlist and write its titles to the playlist file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			id, err := netease.ExtractPlaylistID(args[0])
			if err != nil {
				return err
			}

			cookie := cookieFlag
			if cookie == "" {
				cookie = cfg.NetEase.Cookie
			}
			client := netease.New(cfg.NetEase.BaseURL,
				netease.WithCookie(cookie),
				netease.WithHTTPClient(&http.Client{
					Timeout: time.Duration(cfg.NetEase.RequestTimeout) * time.Second,
				}),
			)

			titles, err := client.PlaylistTitles(cmd.Context(), id)
			if err != nil {
				return err
			}

			target := outputFlag
			if target == "" {
				target = cfg.PlaylistPath()
			}
			if err := playlist.Write(target, titles); err != nil {
				return fmt.Errorf("write playlist: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d titles to %s\n", len(titles), target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Destination playlist file (defaults to the configured playlist)")
	cmd.Flags().StringVar(&cookieFlag, "cookie", "", "Cookie header for playlists that require login")
	return cmd
}
