package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gridref/internal/a1"
	"gridref/internal/diag"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [flags] <tableref>...",
	Short: "Resolve table references to sheet coordinates",
	Long: `Resolve looks table references ("Table1", "Table1[col1]",
"Table1[[#HEADERS],[a]:[b]]") up in the workbook context and prints the
sheet range they cover`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().Bool("unbounded", false, "let column selections run to the sheet bottom")
}

func runResolve(cmd *cobra.Command, args []string) error {
	useUnbounded, err := cmd.Flags().GetBool("unbounded")
	if err != nil {
		return fmt.Errorf("failed to get unbounded flag: %w", err)
	}
	wb, err := loadWorkbook(cmd)
	if err != nil {
		return err
	}

	bag := diag.NewBag(maxDiagnostics(cmd))
	out := cmd.OutOrStdout()

	for _, arg := range args {
		ref, err := a1.ParseCellRefRange(arg, wb.Context)
		if err != nil {
			bag.Add(diag.FromError(err, arg))
			continue
		}
		if ref.Kind != a1.RangeKindTable {
			// Координатная ссылка уже разрешена сама в себя.
			fmt.Fprintf(out, "%s -> %s\n", arg, ref)
			continue
		}
		bounds, ok := ref.Table.ConvertToRefRangeBounds(useUnbounded, wb.Context, false, false)
		if !ok {
			bag.Add(diag.NewError(diag.TblNotResolvable,
				fmt.Sprintf("table reference is not resolvable: %q", arg)).
				WithInput(arg, diag.Span{}))
			continue
		}
		sheetName := ""
		if table := wb.Context.TryTable(ref.Table.TableName); table != nil {
			sheetName, _ = wb.Context.TrySheetName(table.SheetID)
		}
		if sheetName != "" {
			fmt.Fprintf(out, "%s -> %s!%s\n", arg, sheetName, bounds)
		} else {
			fmt.Fprintf(out, "%s -> %s\n", arg, bounds)
		}
	}

	return reportBag(cmd, bag)
}
