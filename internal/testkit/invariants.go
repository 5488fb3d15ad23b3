package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"gridref/internal/a1"
	"gridref/internal/grid"
)

// CheckSelectionInvariants runs the shared battery on a selection:
// 1) every range is valid (printable and re-parseable)
// 2) the canonical string round-trips to an equal selection
// 3) the cursor addresses a real cell (both axes >= 1)
func CheckSelectionInvariants(s a1.Selection, def grid.SheetID, ctx *a1.Context) error {
	if ctx == nil {
		return fmt.Errorf("nil context")
	}
	for i, r := range s.Ranges {
		if !r.IsValid() {
			return fmt.Errorf("range #%d is invalid: %#v", i, r)
		}
	}

	text := s.A1String(def, ctx)
	back, err := a1.ParseSelection(text, def, ctx)
	if err != nil {
		return fmt.Errorf("canonical form %q does not re-parse: %w", text, err)
	}
	if back.SheetID != s.SheetID {
		return fmt.Errorf("sheet lost in round-trip: got=%s want=%s", back.SheetID, s.SheetID)
	}
	if len(back.Ranges) != len(s.Ranges) {
		return fmt.Errorf("round-trip changed range count: got=%d want=%d", len(back.Ranges), len(s.Ranges))
	}
	for i := range s.Ranges {
		if back.Ranges[i] != s.Ranges[i] {
			return fmt.Errorf("range #%d changed in round-trip: got=%v want=%v", i, back.Ranges[i], s.Ranges[i])
		}
	}

	if s.Cursor.X < 1 || s.Cursor.Y < 1 {
		return fmt.Errorf("cursor outside the grid: %v", s.Cursor)
	}
	return nil
}

// CheckRangeRoundTrip проверяет закон parse(display(r)) == r для
// одного диапазона.
func CheckRangeRoundTrip(r a1.CellRefRange, ctx *a1.Context) error {
	if !r.IsValid() {
		return fmt.Errorf("invalid range: %#v", r)
	}
	text := r.String()
	back, err := a1.ParseCellRefRange(text, ctx)
	if err != nil {
		return fmt.Errorf("%q does not re-parse: %w", text, err)
	}
	if back != r {
		return fmt.Errorf("round-trip mismatch: %q -> %v", text, back)
	}
	return nil
}

// CheckDeleteCovers проверяет, что результат Delete вместе с
// вычтенной областью покрывает исходный конечный прямоугольник по
// числу ячеек и не выходит за его пределы.
func CheckDeleteCovers(minuend, subtrahend a1.RefRangeBounds, parts []a1.CellRefRange, ctx *a1.Context) error {
	self, ok := minuend.ToRect()
	if !ok {
		return nil // проверка только для конечных фигур
	}
	cells := map[grid.Pos]struct{}{}
	for _, part := range parts {
		rect, ok := part.ToRect(ctx)
		if !ok {
			return fmt.Errorf("part %v is not finite", part)
		}
		if !self.ContainsRect(rect) {
			return fmt.Errorf("part %v escapes %v", rect, self)
		}
		for y := rect.Min.Y; y <= rect.Max.Y; y++ {
			for x := rect.Min.X; x <= rect.Max.X; x++ {
				p := grid.NewPos(x, y)
				if _, dup := cells[p]; dup {
					return fmt.Errorf("parts overlap at %v", p)
				}
				cells[p] = struct{}{}
			}
		}
	}

	inter, has := minuend.Intersection(subtrahend)
	removed := int64(0)
	if has {
		if rect, ok := inter.ToRect(); ok {
			removed = rect.Len()
		}
	}
	got, err := safecast.Conv[int64](len(cells))
	if err != nil {
		return fmt.Errorf("cell count overflow: %w", err)
	}
	if want := self.Len() - removed; got != want {
		return fmt.Errorf("coverage mismatch: got=%d want=%d", got, want)
	}
	return nil
}
