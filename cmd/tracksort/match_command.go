package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"tracksort/internal/organize"
)

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var playlistFlag string

	cmd := &cobra.Command{
		Use:   "match [dir]",
		Short: "Show how audio files map to playlist positions without renaming",
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
			summary, err := org.Preview(cmd.Context())
			if err != nil {
				return err
			}
			if summary.Aborted != "" {
				fmt.Fprint(cmd.OutOrStdout(), summary.Report())
				return nil
			}
			printMatchTables(cmd.OutOrStdout(), summary)
			return nil
		},
	}

	cmd.Flags().StringVarP(&playlistFlag, "playlist", "p", "", "Playlist file (absolute, or relative to the music directory)")
	return cmd
}

func printMatchTables(out io.Writer, summary *organize.Summary) {
	matched := summary.Match.Matched
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].Position < matched[j].Position })

	rows := make([][]string, 0, len(matched))
	for _, m := range matched {
		rows = append(rows, []string{
			strconv.Itoa(m.Position),
			m.Record.OriginalFilename,
			m.Entry,
			m.Method.Label(),
			fmt.Sprintf("%.2f", m.Method.Confidence()),
		})
	}
	if len(rows) > 0 {
		headers := []string{"#", "File", "Playlist Title", "Method", "Confidence"}
		aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight}
		fmt.Fprintln(out, renderTable(out, headers, rows, aligns))
	}

	if len(summary.Match.Unmatched) > 0 {
		fmt.Fprintf(out, "Unmatched files (%d):\n", len(summary.Match.Unmatched))
		for _, rec := range summary.Match.Unmatched {
			fmt.Fprintf(out, "  %s\n", rec.OriginalFilename)
		}
	}
	fmt.Fprint(out, summary.Match.Report())
}
