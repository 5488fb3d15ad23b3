package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gridref/internal/diag"
	"gridref/internal/diagfmt"
	"gridref/internal/observ"
	"gridref/internal/workbook"
)

// loadWorkbook читает книгу из --workbook или возвращает заглушку с
// единственным листом.
func loadWorkbook(cmd *cobra.Command) (*workbook.Workbook, error) {
	path, err := cmd.Root().PersistentFlags().GetString("workbook")
	if err != nil {
		return nil, fmt.Errorf("failed to get workbook flag: %w", err)
	}
	if path == "" {
		return workbook.Default(), nil
	}
	return workbook.Load(path)
}

func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}

func maxDiagnostics(cmd *cobra.Command) int {
	maxDiag, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil || maxDiag <= 0 {
		return 100
	}
	return maxDiag
}

func isQuiet(cmd *cobra.Command) bool {
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	return quiet
}

// reportBag печатает диагностики в stderr и возвращает ошибку, если
// среди них есть ошибки.
func reportBag(cmd *cobra.Command, bag *diag.Bag) error {
	if bag.Len() == 0 {
		return nil
	}
	bag.Sort()
	diagfmt.Pretty(os.Stderr, bag, diagfmt.PrettyOpts{
		Color:       useColor(cmd, os.Stderr),
		ShowSnippet: true,
		ShowNotes:   true,
	})
	if bag.HasErrors() {
		return fmt.Errorf("found %d problem(s)", bag.Len())
	}
	return nil
}

// printTimings выводит сводку таймера, когда запрошен --timings.
func printTimings(cmd *cobra.Command, timer *observ.Timer) {
	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	if !timings || timer == nil {
		return
	}
	fmt.Fprint(os.Stderr, timer.Summary())
}
