package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"gridref/internal/a1"
	"gridref/internal/diag"
	"gridref/internal/observ"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <ref>...",
	Short: "Parse references and print their canonical form",
	Long: `Parse validates A1-style references and selections ("A1", "$B$2:$D$9",
"Sheet2!C:C", "Table1[col1]", multi-range lists) and prints the minimal
canonical string for each`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type parsedRef struct {
	Input     string `json:"input"`
	Canonical string `json:"canonical,omitempty"`
	Ranges    int    `json:"ranges,omitempty"`
	Error     string `json:"error,omitempty"`
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}

	timer := observ.NewTimer()
	wbPhase := timer.Begin("workbook")
	wb, err := loadWorkbook(cmd)
	if err != nil {
		return err
	}
	timer.End(wbPhase, "")

	bag := diag.NewBag(maxDiagnostics(cmd))
	results := make([]parsedRef, 0, len(args))

	parsePhase := timer.Begin("parse")
	for _, arg := range args {
		sel, err := a1.ParseSelection(arg, wb.DefaultSheet, wb.Context)
		if err != nil {
			bag.Add(diag.FromError(err, arg))
			results = append(results, parsedRef{Input: arg, Error: err.Error()})
			continue
		}
		results = append(results, parsedRef{
			Input:     arg,
			Canonical: sel.A1String(wb.DefaultSheet, wb.Context),
			Ranges:    len(sel.Ranges),
		})
	}
	timer.End(parsePhase, fmt.Sprintf("%d refs", len(args)))

	out := cmd.OutOrStdout()
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.Error != "" {
				continue
			}
			fmt.Fprintln(out, r.Canonical)
		}
	}

	printTimings(cmd, timer)
	return reportBag(cmd, bag)
}
