package a1

import "gridref/internal/grid"

// isColumnSpan шире строгого IsColumnRange: достаточно, чтобы строка
// отсутствовала хотя бы у одного конца. Формы вроде "A3:5" тянутся
// по столбцам и участвуют в столбцовой ветке пересечения.
func (r RefRangeBounds) isColumnSpan() bool {
	return !r.Start.Row.IsSet() || (r.HasEnd && !r.End.Row.IsSet())
}

// isRowSpan симметричен isColumnSpan по строкам.
func (r RefRangeBounds) isRowSpan() bool {
	return !r.Start.Col.IsSet() || (r.HasEnd && !r.End.Col.IsSet())
}

// columnBounds возвращает числовые границы по столбцам. Диапазон без
// единой столбцовой координаты покрывает всё: (0, grid.Unbounded).
func (r RefRangeBounds) columnBounds() (int64, int64) {
	switch {
	case r.isColumnSpan():
		s := r.Start.ColOr(1)
		e := r.effectiveEnd().ColOr(s)
		return min(s, e), max(s, e)
	case r.Start.Col.IsSet():
		s := r.Start.Col.Coord
		e := r.effectiveEnd().ColOr(s)
		return min(s, e), max(s, e)
	default:
		return 0, grid.Unbounded
	}
}

// rowBounds возвращает числовые границы по строкам.
func (r RefRangeBounds) rowBounds() (int64, int64) {
	switch {
	case r.isRowSpan():
		s := r.Start.RowOr(1)
		e := r.effectiveEnd().RowOr(s)
		return min(s, e), max(s, e)
	case r.Start.Row.IsSet():
		s := r.Start.Row.Coord
		e := r.effectiveEnd().RowOr(s)
		return min(s, e), max(s, e)
	default:
		return 0, grid.Unbounded
	}
}

// Intersection возвращает пересечение двух диапазонов в нормализованном
// виде. Пустое пересечение даёт ok=false.
func (r RefRangeBounds) Intersection(other RefRangeBounds) (RefRangeBounds, bool) {
	if !r.IsValid() || !other.IsValid() {
		return RefRangeBounds{}, false
	}
	if r.IsAll() {
		return other, true
	}
	if other.IsAll() {
		return r, true
	}
	if p, ok := r.TryToPos(); ok {
		if other.ContainsPos(p) {
			return r, true
		}
		return RefRangeBounds{}, false
	}
	if p, ok := other.TryToPos(); ok {
		if r.ContainsPos(p) {
			return other, true
		}
		return RefRangeBounds{}, false
	}

	rMinCol, rMaxCol := r.columnBounds()
	rMinRow, rMaxRow := r.rowBounds()
	oMinCol, oMaxCol := other.columnBounds()
	oMinRow, oMaxRow := other.rowBounds()

	minCol := max(rMinCol, oMinCol)
	maxCol := min(rMaxCol, oMaxCol)
	minRow := max(rMinRow, oMinRow)
	maxRow := min(rMaxRow, oMaxRow)

	if minCol > maxCol || minRow > maxRow {
		return RefRangeBounds{}, false
	}

	// Два столбцовых пролёта остаются бесконечными по строкам,
	// два строчных по столбцам, любая смесь даёт прямоугольник.
	switch {
	case r.isColumnSpan() && !r.isRowSpan() && other.isColumnSpan() && !other.isRowSpan():
		return newRelative(minCol, minRow, maxCol, grid.Unbounded), true
	case r.isRowSpan() && !r.isColumnSpan() && other.isRowSpan() && !other.isColumnSpan():
		return newRelative(minCol, minRow, grid.Unbounded, maxRow), true
	default:
		return newRelative(minCol, minRow, maxCol, maxRow), true
	}
}
