package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"gridref/internal/a1"
	"gridref/internal/diag"
)

var intersectCmd = &cobra.Command{
	Use:   "intersect <a> <b>",
	Short: "Intersect two ranges",
	Long:  `Intersect prints the overlap of two coordinate ranges, or "none"`,
	Args:  cobra.ExactArgs(2),
	RunE:  runIntersect,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <a> <b>",
	Short: "Subtract range b from range a",
	Long: `Delete prints the parts of a that remain after removing b: up to four
complementary strips in the fixed top, bottom, left, right order the
operation log expects`,
	Args: cobra.ExactArgs(2),
	RunE: runDelete,
}

var translateCmd = &cobra.Command{
	Use:   "translate <ref> <dx> <dy>",
	Short: "Shift a selection by a column/row delta",
	Args:  cobra.ExactArgs(3),
	RunE:  runTranslate,
}

// parseBoundsArgs разбирает два координатных операнда, складывая
// ошибки в общий bag.
func parseBoundsArgs(bag *diag.Bag, a, b string) (a1.RefRangeBounds, a1.RefRangeBounds, bool) {
	lhs, errA := a1.ParseRefRangeBounds(a)
	if errA != nil {
		bag.Add(diag.FromError(errA, a))
	}
	rhs, errB := a1.ParseRefRangeBounds(b)
	if errB != nil {
		bag.Add(diag.FromError(errB, b))
	}
	return lhs, rhs, errA == nil && errB == nil
}

func runIntersect(cmd *cobra.Command, args []string) error {
	bag := diag.NewBag(maxDiagnostics(cmd))
	lhs, rhs, ok := parseBoundsArgs(bag, args[0], args[1])
	if !ok {
		return reportBag(cmd, bag)
	}
	out := cmd.OutOrStdout()
	if inter, has := lhs.Intersection(rhs); has {
		fmt.Fprintln(out, inter)
	} else {
		fmt.Fprintln(out, "none")
	}
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	bag := diag.NewBag(maxDiagnostics(cmd))
	lhs, rhs, ok := parseBoundsArgs(bag, args[0], args[1])
	if !ok {
		return reportBag(cmd, bag)
	}
	out := cmd.OutOrStdout()
	parts := lhs.Delete(rhs)
	if len(parts) == 0 {
		fmt.Fprintln(out, "none")
		return nil
	}
	for _, part := range parts {
		fmt.Fprintln(out, part)
	}
	return nil
}

func runTranslate(cmd *cobra.Command, args []string) error {
	dx, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("dx must be an integer: %q", args[1])
	}
	dy, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return fmt.Errorf("dy must be an integer: %q", args[2])
	}

	wb, err := loadWorkbook(cmd)
	if err != nil {
		return err
	}
	bag := diag.NewBag(maxDiagnostics(cmd))
	sel, err := a1.ParseSelection(args[0], wb.DefaultSheet, wb.Context)
	if err != nil {
		bag.Add(diag.FromError(err, args[0]))
		return reportBag(cmd, bag)
	}
	sel.TranslateInPlace(dx, dy)
	fmt.Fprintln(cmd.OutOrStdout(), sel.A1String(wb.DefaultSheet, wb.Context))
	return nil
}
