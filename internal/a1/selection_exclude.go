package a1

import (
	"gridref/internal/grid"
)

// Вычитание прямоугольника из выборки. Каждый задетый диапазон
// распадается на 0..4 полосы остатка, см. findExcludedRects.

// removeRect вычитает прямоугольник из одного диапазона. Табличная
// ссылка сперва разворачивается в координаты; неразрешимая выпадает
// из выборки.
func removeRect(r CellRefRange, p1, p2 grid.Pos, ctx *Context) []CellRefRange {
	rect := grid.Rect{Min: p1, Max: p2}
	if r.Kind == RangeKindTable {
		bounds, ok := r.Table.ConvertToRefRangeBounds(false, ctx, false, false)
		if !ok {
			return nil
		}
		return findExcludedRects(bounds, rect)
	}
	return findExcludedRects(r.Sheet, rect)
}

// excludeRect применяет прямоугольник исключения к списку диапазонов.
// Диапазоны, заведомо не задетые прямоугольником, проходят насквозь.
func excludeRect(ranges []CellRefRange, rect grid.Rect, ctx *Context) []CellRefRange {
	out := make([]CellRefRange, 0, len(ranges))
	for _, r := range ranges {
		if r.MightIntersectRect(rect, ctx) {
			out = append(out, removeRect(r, rect.Min, rect.Max, ctx)...)
		} else {
			out = append(out, r)
		}
	}
	return out
}

// exclusionRect переводит исключаемую фигуру в прямоугольник листа.
// Открытые оси столбца и строки уходят в grid.Unbounded.
func (r A1Range) exclusionRect() grid.Rect {
	switch r.Kind {
	case A1RangePos:
		return grid.SinglePosRect(grid.Pos{X: r.Min.Col.Coord, Y: r.Min.Row.Coord})
	case A1RangeRect:
		return grid.NewRectSpan(
			grid.Pos{X: r.Min.Col.Coord, Y: r.Min.Row.Coord},
			grid.Pos{X: r.Max.Col.Coord, Y: r.Max.Row.Coord},
		)
	case A1RangeColumn:
		return grid.NewRect(r.From.Coord, 1, r.From.Coord, grid.Unbounded)
	case A1RangeColumnRange:
		return grid.NewRect(r.From.Coord, 1, r.To.Coord, grid.Unbounded)
	case A1RangeRow:
		return grid.NewRect(1, r.From.Coord, grid.Unbounded, r.From.Coord)
	case A1RangeRowRange:
		return grid.NewRect(1, r.From.Coord, grid.Unbounded, r.To.Coord)
	}
	// A1RangeAll отсекается на разборе.
	return grid.Rect{}
}

// ExcludeCells убирает из выборки ячейку p1 либо прямоугольник p1..p2.
// Диапазон, в точности совпадающий с вычитаемым (в любом порядке
// углов), выпадает целиком. Опустевшая выборка схлопывается в одну
// ячейку p1. Курсор, оказавшийся вне выборки, переезжает на ближайшую
// конечную точку с конца списка, при неудаче — в A1.
func (s *Selection) ExcludeCells(p1 grid.Pos, p2 *grid.Pos, ctx *Context) {
	if p2 != nil {
		lo := grid.Pos{X: min(p1.X, p2.X), Y: min(p1.Y, p2.Y)}
		hi := grid.Pos{X: max(p1.X, p2.X), Y: max(p1.Y, p2.Y)}
		p1, p2 = lo, &hi
	}

	var ranges []CellRefRange
	for _, r := range s.Ranges {
		if r.IsPosRange(p1, p2, ctx) {
			continue
		}
		if p2 != nil && r.IsPosRange(*p2, &p1, ctx) {
			continue
		}
		switch {
		case p2 != nil:
			if r.MightIntersectRect(grid.Rect{Min: p1, Max: *p2}, ctx) {
				ranges = append(ranges, removeRect(r, p1, *p2, ctx)...)
			} else {
				ranges = append(ranges, r)
			}
		case r.MightContainPos(p1, ctx):
			ranges = append(ranges, removeRect(r, p1, p1, ctx)...)
		default:
			ranges = append(ranges, r)
		}
	}
	if len(ranges) == 0 {
		ranges = append(ranges, NewSheetRange(NewRelXY(p1.X, p1.Y)))
	}
	s.Ranges = ranges

	if !s.ContainsPos(s.Cursor, ctx) {
		s.Cursor = s.repairCursor()
	}
}

// repairCursor подбирает курсору конечную точку, просматривая
// координатные диапазоны с конца: конец диапазона, если он конечный,
// иначе начало.
func (s *Selection) repairCursor() grid.Pos {
	for i := len(s.Ranges) - 1; i >= 0; i-- {
		r := s.Ranges[i]
		if r.Kind != RangeKindSheet {
			continue
		}
		end := r.Sheet.effectiveEnd()
		if end.Col.IsSet() && end.Row.IsSet() {
			return grid.Pos{X: end.Col.Coord, Y: end.Row.Coord}
		}
		return grid.Pos{X: r.Sheet.Start.ColOr(1), Y: r.Sheet.Start.RowOr(1)}
	}
	return grid.Pos{X: 1, Y: 1}
}
