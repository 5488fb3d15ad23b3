package a1

import "gridref/internal/grid"

// orRel оставляет заданную координату как есть, отсутствующей даёт
// относительное значение v.
func (c Coord) orRel(v int64) Coord {
	if c.IsSet() {
		return c
	}
	return NewRelCoord(v)
}

// relOrAbsent переводит числовую границу обратно в координату:
// grid.Unbounded означает отсутствующую ось.
func relOrAbsent(v int64) Coord {
	if v == grid.Unbounded {
		return Coord{}
	}
	return NewRelCoord(v)
}

// findExcludedRects возвращает остаток диапазона после вычитания
// прямоугольника. Полосы идут в фиксированном порядке: верх, низ,
// лево, право. Верхняя и нижняя полосы сохраняют исходную ширину,
// боковые зажаты между ними по исходным, не сжимающимся границам.
// Порядок и раскрой воспроизводятся в журналах операций, менять их
// нельзя.
func findExcludedRects(r RefRangeBounds, exclude grid.Rect) []CellRefRange {
	r.normalizeInPlace()

	end := r.effectiveEnd()
	sx := r.Start.ColOr(1)
	sy := r.Start.RowOr(1)
	ex := end.ColOr(grid.Unbounded)
	ey := end.RowOr(grid.Unbounded)

	var strips []RefRangeBounds

	// Границы строк для боковых полос.
	topRow, bottomRow := sy, ey

	if sy < exclude.Min.Y {
		topRow = exclude.Min.Y
		strips = append(strips, RefRangeBounds{
			Start:  RangeEnd{Col: r.Start.Col, Row: r.Start.Row.orRel(sy)},
			End:    RangeEnd{Col: end.Col, Row: NewRelCoord(exclude.Min.Y - 1)},
			HasEnd: true,
		})
	}

	if ey > exclude.Max.Y {
		bottomRow = exclude.Max.Y
		strips = append(strips, RefRangeBounds{
			Start:  RangeEnd{Col: r.Start.Col, Row: NewRelCoord(exclude.Max.Y + 1)},
			End:    end,
			HasEnd: true,
		})
	}

	// Боковая полоса, покрывающая все строки, печатается как столбец.
	sideRow := NewRelCoord(topRow)
	if topRow == 1 && bottomRow == grid.Unbounded {
		sideRow = Coord{}
	}

	if sx < exclude.Min.X {
		strips = append(strips, RefRangeBounds{
			Start:  RangeEnd{Col: NewRelCoord(sx), Row: sideRow},
			End:    RangeEnd{Col: NewRelCoord(exclude.Min.X - 1), Row: relOrAbsent(bottomRow)},
			HasEnd: true,
		})
	}

	if ex > exclude.Max.X {
		strips = append(strips, RefRangeBounds{
			Start:  RangeEnd{Col: NewRelCoord(exclude.Max.X + 1), Row: sideRow},
			End:    RangeEnd{Col: end.Col, Row: relOrAbsent(bottomRow)},
			HasEnd: true,
		})
	}

	ranges := make([]CellRefRange, 0, len(strips))
	for _, s := range strips {
		collapseEnd(&s)
		ranges = append(ranges, NewSheetRange(s))
	}
	return ranges
}

// Delete вычитает диапазон other и возвращает остаток полосами.
// Непересекающийся other оставляет диапазон нетронутым, полное
// совпадение пересечения с самим диапазоном даёт пустой остаток.
func (r RefRangeBounds) Delete(other RefRangeBounds) []CellRefRange {
	inter, ok := r.Intersection(other)
	if !ok {
		return []CellRefRange{NewSheetRange(r)}
	}
	if inter == r {
		return nil
	}
	return findExcludedRects(r, inter.ToRectUnbounded())
}
