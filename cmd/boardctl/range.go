package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cmlabs-hris/attendance-board-go/internal/domain/board"
)

var rangeCmd = &cobra.Command{
	Use:   "range",
	Short: "Print the date range and workday columns of a view mode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, mode, err := setup()
		if err != nil {
			return err
		}
		return printRange(cmd.OutOrStdout(), a.BoardService.Range(mode))
	},
}

func printRange(out io.Writer, rng board.RangeResponse) error {
	fmt.Fprintf(out, "%s: %s .. %s (today %s, %d workdays)\n", rng.Mode, rng.From, rng.To, rng.Today, len(rng.Columns))

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, c := range rng.Columns {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Date, c.Weekday, c.Label)
	}
	return tw.Flush()
}
