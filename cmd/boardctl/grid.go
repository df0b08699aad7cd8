package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cmlabs-hris/attendance-board-go/internal/domain/board"
)

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Load the board and print it as a text table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, mode, err := setup()
		if err != nil {
			return err
		}
		grid, err := a.BoardService.BuildGrid(cmd.Context(), mode)
		if err != nil {
			return err
		}
		return printGrid(cmd.OutOrStdout(), grid)
	},
}

func printGrid(out io.Writer, grid board.Grid) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	header := []string{"EMPLOYEE", "LEAVE", "PENALTY"}
	for _, c := range grid.Columns {
		header = append(header, c.Label)
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, row := range grid.Rows {
		name := row.Employee.Name
		if !row.RecordsLoaded {
			name += " (!)"
		}
		line := []string{name, row.Employee.RemainingLeaveDays.String(), row.Employee.Penalty.String()}
		for _, cell := range row.Cells {
			label := cell.Label
			if !cell.Stored {
				label = "-"
			}
			line = append(line, label)
		}
		fmt.Fprintln(tw, strings.Join(line, "\t"))
	}

	return tw.Flush()
}
