package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tracksort/internal/organize"
)

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var playlistFlag string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "organize [dir]",
		Short: "Match audio files against the playlist and rename them in playlist order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.runConfig(firstArg(args), playlistFlag)
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			org, err := organize.New(cfg, logger)
			if err != nil {
				return err
			}

			var summary *organize.Summary
			if dryRun {
				summary, err = org.Preview(cmd.Context())
			} else {
				summary, err = org.Run(cmd.Context())
			}
			if err != nil {
				if errors.Is(err, organize.ErrLocked) {
					return fmt.Errorf("%s is busy: %w", cfg.Paths.MusicDir, err)
				}
				return err
			}

			out := cmd.OutOrStdout()
			if dryRun {
				fmt.Fprintln(out, "Dry run, no files were renamed.")
				printMatchTables(out, summary)
				return nil
			}
			fmt.Fprint(out, summary.Report())
			return nil
		},
	}

	cmd.Flags().StringVarP(&playlistFlag, "playlist", "p", "", "Playlist file (absolute, or relative to the music directory)")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Show what would be renamed without touching any file")
	return cmd
}
