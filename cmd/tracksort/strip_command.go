package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tracksort/internal/rename"
)

func newStripCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strip [dir]",
		Short: "Remove position and unmatched-marker prefixes from audio filenames",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.runConfig(firstArg(args), "")
			if err != nil {
				return err
			}
			result, err := rename.StripPrefixes(cfg.Paths.MusicDir, cfg.Matching.Extensions)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, o := range result.Outcomes {
				switch o.Action {
				case rename.ActionRenamed:
					fmt.Fprintf(out, "%s -> %s\n", o.OriginalName, o.NewName)
				case rename.ActionFailed:
					fmt.Fprintf(out, "%s: %v\n", o.OriginalName, o.Err)
				}
			}
			fmt.Fprintf(out, "Renamed %d files, skipped %d\n", result.Renamed, result.Skipped)
			return nil
		},
	}
	return cmd
}
