package a1

import (
	"slices"

	"gridref/internal/grid"
)

// IsMultiCursor сообщает, покрывает ли выборка больше одной ячейки.
func (s Selection) IsMultiCursor(ctx *Context) bool {
	if len(s.Ranges) > 1 {
		return true
	}
	if len(s.Ranges) == 0 {
		return false
	}
	last := s.Ranges[len(s.Ranges)-1]
	if last.Kind == RangeKindTable {
		return last.Table.IsMultiCursor(ctx)
	}
	return last.Sheet.IsMultiCursor()
}

// IsColumnRow сообщает, есть ли в выборке целый столбец или строка.
func (s Selection) IsColumnRow() bool {
	for _, r := range s.Ranges {
		if r.IsColumnRange() || r.IsRowRange() {
			return true
		}
	}
	return false
}

// MightContainXY — консервативная проверка попадания координат.
func (s Selection) MightContainXY(x, y int64, ctx *Context) bool {
	return s.MightContainPos(grid.Pos{X: x, Y: y}, ctx)
}

// MightContainPos сообщает, может ли выборка содержать позицию.
// Ложных отрицаний не бывает, ложные срабатывания допустимы.
func (s Selection) MightContainPos(p grid.Pos, ctx *Context) bool {
	for _, r := range s.Ranges {
		if r.MightContainPos(p, ctx) {
			return true
		}
	}
	return false
}

// ContainsPos — точная проверка попадания позиции в выборку.
func (s Selection) ContainsPos(p grid.Pos, ctx *Context) bool {
	for _, r := range s.Ranges {
		if r.ContainsPos(p, ctx) {
			return true
		}
	}
	return false
}

// LargestRectFinite строит объемлющий прямоугольник по конечным
// диапазонам выборки, бесконечные пропускаются. Курсор входит всегда.
func (s Selection) LargestRectFinite(ctx *Context) grid.Rect {
	rect := grid.SinglePosRect(s.Cursor)
	for _, r := range s.Ranges {
		if r.Kind == RangeKindTable {
			if tr, ok := r.Table.ToLargestRect(ctx); ok {
				rect.UnionInPlace(tr)
			}
			continue
		}
		if sr, ok := r.Sheet.ToRect(); ok {
			rect.UnionInPlace(sr)
		}
	}
	return rect
}

// SingleRect возвращает прямоугольник единственного конечного
// диапазона, покрывающего больше одной ячейки.
func (s Selection) SingleRect(ctx *Context) (grid.Rect, bool) {
	if len(s.Ranges) != 1 || !s.IsMultiCursor(ctx) {
		return grid.Rect{}, false
	}
	return s.Ranges[0].ToRect(ctx)
}

// SingleRectOrCursor — как SingleRect, но одиночная ячейка даёт
// прямоугольник вокруг курсора.
func (s Selection) SingleRectOrCursor(ctx *Context) (grid.Rect, bool) {
	if !s.IsMultiCursor(ctx) {
		return grid.SinglePosRect(s.Cursor), true
	}
	if len(s.Ranges) != 1 {
		return grid.Rect{}, false
	}
	return s.Ranges[0].ToRect(ctx)
}

// BottomRightCell — правый нижний угол последнего диапазона; у
// бесконечной оси вместо края берётся координата курсора.
func (s Selection) BottomRightCell() grid.Pos {
	if len(s.Ranges) == 0 {
		return s.Cursor
	}
	last := s.Ranges[len(s.Ranges)-1]
	if last.Kind == RangeKindTable {
		return s.Cursor
	}
	end := last.Sheet.effectiveEnd()
	x := s.Cursor.X
	if end.Col.IsSet() && end.Row.IsSet() {
		x = max(end.Col.Coord, last.Sheet.Start.ColOr(1))
	}
	y := s.Cursor.Y
	if end.Row.IsSet() {
		y = max(end.Row.Coord, last.Sheet.Start.RowOr(1))
	}
	return grid.Pos{X: x, Y: y}
}

// LastSelectionEnd — конец последнего диапазона как есть, без
// переупорядочивания углов; бесконечный конец заменяется курсором.
func (s Selection) LastSelectionEnd(ctx *Context) grid.Pos {
	if len(s.Ranges) == 0 {
		return s.Cursor
	}
	last := s.Ranges[len(s.Ranges)-1]
	if last.Kind == RangeKindTable {
		if bounds, ok := last.Table.ConvertToRefRangeBounds(false, ctx, false, false); ok {
			end := bounds.effectiveEnd()
			return grid.Pos{X: end.ColOr(1), Y: end.RowOr(1)}
		}
		return s.Cursor
	}
	end := last.Sheet.effectiveEnd()
	if !end.Col.IsSet() || !end.Row.IsSet() {
		return s.Cursor
	}
	return grid.Pos{X: end.Col.Coord, Y: end.Row.Coord}
}

// IsAllSelected сообщает, покрывает ли какой-нибудь диапазон весь
// лист: "*" либо открытая форма от A1 вроде "A1:".
func (s Selection) IsAllSelected() bool {
	for _, r := range s.Ranges {
		if r.Kind != RangeKindSheet {
			continue
		}
		end := r.Sheet.effectiveEnd()
		if r.Sheet.Start.ColOr(1) == 1 && r.Sheet.Start.RowOr(1) == 1 &&
			!end.Col.IsSet() && !end.Row.IsSet() {
			return true
		}
	}
	return false
}

// IsSelectedColumnsFinite — во всех диапазонах конечный набор столбцов.
func (s Selection) IsSelectedColumnsFinite(ctx *Context) bool {
	for _, r := range s.Ranges {
		if len(r.SelectedColumnsFinite(ctx)) == 0 {
			return false
		}
	}
	return true
}

// SelectedColumnsFinite — номера столбцов конечных диапазонов,
// отсортированные и без повторов.
func (s Selection) SelectedColumnsFinite(ctx *Context) []int64 {
	set := map[int64]struct{}{}
	for _, r := range s.Ranges {
		for _, c := range r.SelectedColumnsFinite(ctx) {
			set[c] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// IsSelectedRowsFinite — во всех диапазонах конечный набор строк.
func (s Selection) IsSelectedRowsFinite(ctx *Context) bool {
	for _, r := range s.Ranges {
		if len(r.SelectedRowsFinite(ctx)) == 0 {
			return false
		}
	}
	return true
}

// SelectedRowsFinite — номера строк конечных диапазонов,
// отсортированные и без повторов.
func (s Selection) SelectedRowsFinite(ctx *Context) []int64 {
	set := map[int64]struct{}{}
	for _, r := range s.Ranges {
		for _, row := range r.SelectedRowsFinite(ctx) {
			set[row] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// SelectedColumnRanges — выбранные столбцы окна [from, to] парами
// [начало, конец] подряд идущих номеров, плоским списком.
func (s Selection) SelectedColumnRanges(from, to int64, ctx *Context) []int64 {
	set := map[int64]struct{}{}
	for _, r := range s.Ranges {
		for _, c := range r.SelectedColumns(from, to, ctx) {
			if c >= from && c <= to {
				set[c] = struct{}{}
			}
		}
	}
	return coalesce(sortedKeys(set))
}

// SelectedRowRanges — выбранные строки парами [начало, конец]. Окно
// передаётся диапазонам, но результат им не обрезается.
func (s Selection) SelectedRowRanges(from, to int64, ctx *Context) []int64 {
	set := map[int64]struct{}{}
	for _, r := range s.Ranges {
		for _, row := range r.SelectedRows(from, to, ctx) {
			set[row] = struct{}{}
		}
	}
	return coalesce(sortedKeys(set))
}

func sortedKeys(set map[int64]struct{}) []int64 {
	vals := make([]int64, 0, len(set))
	for v := range set {
		vals = append(vals, v)
	}
	slices.Sort(vals)
	return vals
}

// coalesce сводит отсортированные номера в плоский список пар
// [начало, конец] максимальных непрерывных отрезков.
func coalesce(vals []int64) []int64 {
	if len(vals) == 0 {
		return nil
	}
	var ranges []int64
	start, end := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v == end+1 {
			end = v
			continue
		}
		ranges = append(ranges, start, end)
		start, end = v, v
	}
	return append(ranges, start, end)
}

// HasOneColumnRowSelection — выборка из единственного столбцового или
// строчного диапазона; при oneCell одиночная ячейка тоже подходит.
func (s Selection) HasOneColumnRowSelection(oneCell bool, ctx *Context) bool {
	if len(s.Ranges) != 1 {
		return false
	}
	r := s.Ranges[0]
	return r.IsColumnRange() || r.IsRowRange() || (oneCell && r.IsSingleCell(ctx))
}

// IsSingleSelection — выборка из одной-единственной ячейки.
func (s Selection) IsSingleSelection(ctx *Context) bool {
	return len(s.Ranges) == 1 && s.Ranges[0].IsSingleCell(ctx)
}

// TryToPos возвращает позицию, когда выборка состоит из одной ячейки.
func (s Selection) TryToPos(ctx *Context) (grid.Pos, bool) {
	if len(s.Ranges) != 1 {
		return grid.Pos{}, false
	}
	return s.Ranges[0].TryToPos(ctx)
}

// FiniteRefRangeBounds — конечные координатные диапазоны выборки;
// табличные ссылки разворачиваются, неразрешимые пропускаются.
func (s Selection) FiniteRefRangeBounds(ctx *Context) []RefRangeBounds {
	var out []RefRangeBounds
	for _, r := range s.Ranges {
		if r.Kind == RangeKindTable {
			if bounds, ok := r.Table.ConvertToRefRangeBounds(false, ctx, false, false); ok {
				out = append(out, bounds)
			}
			continue
		}
		if r.Sheet.IsFinite() {
			out = append(out, r.Sheet)
		}
	}
	return out
}

// CursorIsOnHTMLImage сообщает, стоит ли курсор на таблице-картинке.
func (s Selection) CursorIsOnHTMLImage(ctx *Context) bool {
	t := ctx.TableFromPos(s.CursorSheetPos())
	return t != nil && t.IsHTMLImage
}
