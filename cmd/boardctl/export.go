package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the board as an XLSX workbook",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default attendance_<from>_<to>.xlsx)")
}

func runExport(cmd *cobra.Command, args []string) error {
	a, mode, err := setup()
	if err != nil {
		return err
	}

	path := exportOutput
	if path == "" {
		rng := a.BoardService.Range(mode)
		path = fmt.Sprintf("attendance_%s_%s.xlsx", rng.From, rng.To)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := a.BoardService.Export(cmd.Context(), mode, f); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
	return nil
}
