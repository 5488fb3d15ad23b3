package a1

import "gridref/internal/grid"

// IsFinite сообщает, задана ли у диапазона каждая координата.
func (r RefRangeBounds) IsFinite() bool {
	if !r.Start.Col.IsSet() || !r.Start.Row.IsSet() {
		return false
	}
	if r.HasEnd {
		return r.End.Col.IsSet() && r.End.Row.IsSet()
	}
	return true
}

// IsSingleCell сообщает, состоит ли диапазон из одной ячейки.
func (r RefRangeBounds) IsSingleCell() bool {
	return r.Start.Col.IsSet() && r.Start.Row.IsSet() && !r.HasEnd
}

// TryToPos возвращает позицию одиночной ячейки.
func (r RefRangeBounds) TryToPos() (grid.Pos, bool) {
	if !r.IsSingleCell() {
		return grid.Pos{}, false
	}
	return grid.Pos{X: r.Start.Col.Coord, Y: r.Start.Row.Coord}, true
}

// IsColumnRange сообщает, что ни один конец не ограничен строкой:
// "C", "A:C", "*". У форм вроде "A1:C" есть граница по строкам,
// столбцовыми диапазонами они не считаются.
func (r RefRangeBounds) IsColumnRange() bool {
	return !r.Start.Row.IsSet() && (!r.HasEnd || !r.End.Row.IsSet())
}

// IsRowRange сообщает, что ни один конец не ограничен столбцом:
// "3", "3:5", "*".
func (r RefRangeBounds) IsRowRange() bool {
	return !r.Start.Col.IsSet() && (!r.HasEnd || !r.End.Col.IsSet())
}

// IsMultiCursor сообщает, покрывает ли диапазон больше одной ячейки.
func (r RefRangeBounds) IsMultiCursor() bool {
	return r.Start.IsMultiRange() || r.HasEnd
}

// ToRect возвращает конечный диапазон прямоугольником. Для форм
// с бесконечной осью возвращает ok=false.
func (r RefRangeBounds) ToRect() (grid.Rect, bool) {
	if !r.Start.Col.IsSet() || !r.Start.Row.IsSet() {
		return grid.Rect{}, false
	}
	if r.HasEnd {
		if !r.End.Col.IsSet() || !r.End.Row.IsSet() {
			return grid.Rect{}, false
		}
		return grid.NewRect(r.Start.Col.Coord, r.Start.Row.Coord, r.End.Col.Coord, r.End.Row.Coord), true
	}
	return grid.SinglePosRect(grid.Pos{X: r.Start.Col.Coord, Y: r.Start.Row.Coord}), true
}

// ToRectUnbounded возвращает прямоугольник диапазона, подставляя
// единицу вместо отсутствующего начала и grid.Unbounded вместо
// отсутствующего конца.
func (r RefRangeBounds) ToRectUnbounded() grid.Rect {
	end := r.effectiveEnd()
	return grid.NewRect(r.Start.ColOr(1), r.Start.RowOr(1), end.ColOr(grid.Unbounded), end.RowOr(grid.Unbounded))
}

// ContainsRect сообщает, лежит ли rect целиком внутри диапазона.
func (r RefRangeBounds) ContainsRect(rect grid.Rect) bool {
	return r.ToRectUnbounded().ContainsRect(rect)
}

// spanContains проверяет попадание координаты в отрезок оси,
// у которого может отсутствовать любая из границ.
func spanContains(start, end Coord, v int64) bool {
	switch {
	case start.IsSet() && end.IsSet():
		return v >= min(start.Coord, end.Coord) && v <= max(start.Coord, end.Coord)
	case start.IsSet():
		return v >= start.Coord
	case end.IsSet():
		return v <= end.Coord
	default:
		return true
	}
}

// ContainsPos сообщает, входит ли позиция в диапазон.
func (r RefRangeBounds) ContainsPos(p grid.Pos) bool {
	if r.HasEnd {
		return spanContains(r.Start.Col, r.End.Col, p.X) &&
			spanContains(r.Start.Row, r.End.Row, p.Y)
	}
	if r.Start.Col.IsSet() && r.Start.Col.Coord != p.X {
		return false
	}
	if r.Start.Row.IsSet() && r.Start.Row.Coord != p.Y {
		return false
	}
	return true
}

// axisMightIntersect проверяет пересечение отрезка [lo, hi] с осью
// диапазона. Перевёрнутые границы выправляются на лету.
func axisMightIntersect(lo, hi int64, start, end Coord) bool {
	if start.IsSet() && end.IsSet() && end.Coord < start.Coord {
		start, end = end, start
	}
	if start.IsSet() && hi < start.Coord {
		return false
	}
	if end.IsSet() && end.Coord < lo {
		return false
	}
	return true
}

// axisMightContain проверяет попадание координаты start в [lo, hi];
// отсутствующая координата считается подходящей.
func axisMightContain(c Coord, lo, hi int64) bool {
	if !c.IsSet() {
		return true
	}
	return c.Coord >= lo && c.Coord <= hi
}

// MightIntersectRect быстрая консервативная проверка пересечения
// с прямоугольником. Ложные срабатывания допустимы, пропуски нет.
func (r RefRangeBounds) MightIntersectRect(rect grid.Rect) bool {
	if r.HasEnd {
		return axisMightIntersect(rect.Min.X, rect.Max.X, r.Start.Col, r.End.Col) &&
			axisMightIntersect(rect.Min.Y, rect.Max.Y, r.Start.Row, r.End.Row)
	}
	return axisMightContain(r.Start.Col, rect.Min.X, rect.Max.X) &&
		axisMightContain(r.Start.Row, rect.Min.Y, rect.Max.Y)
}

// MightContainPos быстрая консервативная проверка попадания позиции.
func (r RefRangeBounds) MightContainPos(p grid.Pos) bool {
	return r.MightIntersectRect(grid.SinglePosRect(p))
}

// MightContainCols быстрая консервативная проверка пересечения со
// столбцами [start, end].
func (r RefRangeBounds) MightContainCols(start, end int64) bool {
	if r.Start.Col.IsSet() && r.Start.Col.Coord > end {
		return false
	}
	if r.HasEnd {
		if !r.End.Col.IsSet() {
			return true
		}
		return r.End.Col.Coord >= start
	}
	return true
}

// MightContainRows быстрая консервативная проверка пересечения со
// строками [start, end].
func (r RefRangeBounds) MightContainRows(start, end int64) bool {
	if r.Start.Row.IsSet() && r.Start.Row.Coord > end {
		return false
	}
	if r.HasEnd {
		if !r.End.Row.IsSet() {
			return true
		}
		return r.End.Row.Coord >= start
	}
	return true
}

// HasColumn сообщает, что диапазон покрывает столбец col целиком.
// Любая граница по строкам означает отказ.
func (r RefRangeBounds) HasColumn(col int64) bool {
	if r.Start.Row.IsSet() || (r.HasEnd && r.End.Row.IsSet()) {
		return false
	}
	startSet := r.Start.Col.IsSet()
	endSet := r.HasEnd && r.End.Col.IsSet()
	switch {
	case startSet && endSet:
		lo := min(r.Start.Col.Coord, r.End.Col.Coord)
		hi := max(r.Start.Col.Coord, r.End.Col.Coord)
		return col >= lo && col <= hi
	case startSet:
		return r.Start.Col.Coord == col
	case endSet:
		return r.End.Col.Coord == col
	default:
		return false
	}
}

// HasRow сообщает, что диапазон покрывает строку row целиком.
func (r RefRangeBounds) HasRow(row int64) bool {
	if r.Start.Col.IsSet() || (r.HasEnd && r.End.Col.IsSet()) {
		return false
	}
	startSet := r.Start.Row.IsSet()
	endSet := r.HasEnd && r.End.Row.IsSet()
	switch {
	case startSet && endSet:
		lo := min(r.Start.Row.Coord, r.End.Row.Coord)
		hi := max(r.Start.Row.Coord, r.End.Row.Coord)
		return row >= lo && row <= hi
	case startSet:
		return r.Start.Row.Coord == row
	case endSet:
		return r.End.Row.Coord == row
	default:
		return false
	}
}

// HasColRange сообщает, попадает ли столбец col в столбцовый
// диапазон. Для любых других форм возвращает false.
func (r RefRangeBounds) HasColRange(col int64) bool {
	if !r.IsColumnRange() {
		return false
	}
	lo := r.Start.ColOr(1)
	if r.HasEnd {
		return col >= lo && col <= r.End.ColOr(grid.Unbounded)
	}
	return col == lo
}

// HasRowRange сообщает, попадает ли строка row в строчный диапазон.
func (r RefRangeBounds) HasRowRange(row int64) bool {
	if !r.IsRowRange() {
		return false
	}
	lo := r.Start.RowOr(1)
	if r.HasEnd {
		return row >= lo && row <= r.End.RowOr(grid.Unbounded)
	}
	return row == lo
}

func appendSpan(vals []int64, lo, hi int64) []int64 {
	for v := lo; v <= hi; v++ {
		vals = append(vals, v)
	}
	return vals
}

// SelectedColumns возвращает столбцы диапазона, попавшие в окно
// [from, to]. Бесконечные оси обрезаются границами окна.
func (r RefRangeBounds) SelectedColumns(from, to int64) []int64 {
	var cols []int64
	if r.Start.Col.IsSet() {
		s := r.Start.Col.Coord
		switch {
		case r.HasEnd && r.End.Col.IsSet():
			// обратная протяжка даёт тот же набор столбцов
			e := r.End.Col.Coord
			cols = appendSpan(cols, max(min(s, e), from), min(max(s, e), to))
		case r.HasEnd:
			cols = appendSpan(cols, max(s, from), to)
		default:
			if s >= from && s <= to {
				cols = append(cols, s)
			}
		}
		return cols
	}
	if r.HasEnd && r.End.Col.IsSet() {
		return appendSpan(cols, max(r.End.Col.Coord, from), to)
	}
	return appendSpan(cols, from, to)
}

// SelectedRows возвращает строки диапазона, попавшие в окно [from, to].
func (r RefRangeBounds) SelectedRows(from, to int64) []int64 {
	var rows []int64
	if r.Start.Row.IsSet() {
		s := r.Start.Row.Coord
		switch {
		case r.HasEnd && r.End.Row.IsSet():
			e := r.End.Row.Coord
			rows = appendSpan(rows, max(min(s, e), from), min(max(s, e), to))
		case r.HasEnd:
			rows = appendSpan(rows, max(s, from), to)
		default:
			if s >= from && s <= to {
				rows = append(rows, s)
			}
		}
		return rows
	}
	if r.HasEnd && r.End.Row.IsSet() {
		return appendSpan(rows, max(r.End.Row.Coord, from), to)
	}
	return appendSpan(rows, from, to)
}

// SelectedColumnsFinite возвращает столбцы диапазона, если их число
// конечно, иначе nil.
func (r RefRangeBounds) SelectedColumnsFinite() []int64 {
	if !r.Start.Col.IsSet() {
		return nil
	}
	s := r.Start.Col.Coord
	if !r.HasEnd {
		return []int64{s}
	}
	if !r.End.Col.IsSet() {
		return nil
	}
	e := r.End.Col.Coord
	return appendSpan(nil, min(s, e), max(s, e))
}

// SelectedRowsFinite возвращает строки диапазона, если их число
// конечно, иначе nil.
func (r RefRangeBounds) SelectedRowsFinite() []int64 {
	if !r.Start.Row.IsSet() {
		return nil
	}
	s := r.Start.Row.Coord
	if !r.HasEnd {
		return []int64{s}
	}
	if !r.End.Row.IsSet() {
		return nil
	}
	e := r.End.Row.Coord
	return appendSpan(nil, min(s, e), max(s, e))
}

// ContiguousCoords возвращает позицию начала области и границы её
// конца. Отсутствующая ось конца означает бесконечность по этой оси.
func (r RefRangeBounds) ContiguousCoords() (grid.Pos, RangeEnd) {
	if r.HasEnd {
		start := grid.Pos{X: r.Start.ColOr(1), Y: r.Start.RowOr(1)}
		var end RangeEnd
		if r.End.Col.IsSet() {
			end.Col = NewRelCoord(r.End.Col.Coord)
		}
		if r.End.Row.IsSet() {
			end.Row = NewRelCoord(r.End.Row.Coord)
		}
		return start, end
	}
	col, row := r.Start.Col, r.Start.Row
	switch {
	case !col.IsSet() && !row.IsSet():
		return grid.Pos{X: 1, Y: 1}, RangeEnd{}
	case !col.IsSet():
		return grid.Pos{X: 1, Y: row.Coord}, NewRelEndRow(row.Coord)
	case !row.IsSet():
		return grid.Pos{X: col.Coord, Y: 1}, NewRelEndColumn(col.Coord)
	default:
		return grid.Pos{X: col.Coord, Y: row.Coord}, NewRelEndXY(col.Coord, row.Coord)
	}
}
