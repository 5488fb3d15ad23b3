package a1

import "gridref/internal/grid"

// Интерактивные правки выборки: клики по заголовкам столбцов и строк,
// растягивание с shift, добавление и снятие с ctrl, протяжка мышью.
// Параметры top и left задают верхнюю видимую строку и левый видимый
// столбец, туда встаёт курсор при выделении целой оси.

// SelectAll выделяет весь лист. При расширении последний листовой
// диапазон продлевается до конца листа, табличный остаётся как есть.
func (s *Selection) SelectAll(appendTo bool) {
	if appendTo && len(s.Ranges) > 0 {
		last := &s.Ranges[len(s.Ranges)-1]
		if last.Kind == RangeKindSheet {
			last.Sheet.End = RangeEnd{}
			last.Sheet.HasEnd = true
		}
		return
	}
	s.Ranges = []CellRefRange{AllRange}
}

// Add дописывает диапазон в конец выборки.
func (s *Selection) Add(r CellRefRange) {
	s.Ranges = append(s.Ranges, r)
}

// MoveTo переносит курсор в ячейку (x, y). Без appendTo прежняя выборка
// сбрасывается.
func (s *Selection) MoveTo(x, y int64, appendTo bool) {
	s.Cursor = grid.Pos{X: x, Y: y}
	if !appendTo {
		s.Ranges = s.Ranges[:0]
	}
	s.Ranges = append(s.Ranges, NewSheetRange(NewRelXY(x, y)))
}

// SelectRect выделяет прямоугольник с углами (left, top) и (right,
// bottom). Углы не переставляются, обратная протяжка сохраняется как
// есть. Курсор встаёт в (left, top).
func (s *Selection) SelectRect(left, top, right, bottom int64, appendTo bool) {
	if !appendTo {
		s.Ranges = s.Ranges[:0]
	}
	if left == right && top == bottom {
		s.Ranges = append(s.Ranges, NewSheetRange(NewRelXY(left, top)))
	} else {
		s.Ranges = append(s.Ranges, NewSheetRange(RefRangeBounds{
			Start:  NewRelEndXY(left, top),
			End:    NewRelEndXY(right, bottom),
			HasEnd: true,
		}))
	}
	s.Cursor = grid.Pos{X: left, Y: top}
}

// tableSelectStart находит экранную ячейку, от которой тянется
// выделение, начатое на табличной ссылке: имя таблицы или заголовок
// её столбца.
func tableSelectStart(t TableRef, ctx *Context) (grid.Pos, bool) {
	table := ctx.TryTable(t.TableName)
	if table == nil {
		return grid.Pos{}, false
	}
	headerY := table.Bounds.Min.Y
	if table.ShowName {
		headerY++
	}
	switch t.ColRange.Kind {
	case ColKindAll:
		if table.ShowName {
			return table.Bounds.Min, true
		}
	case ColKindCol:
		if table.ShowColumns {
			if idx, ok := table.TryColIndex(t.ColRange.From); ok {
				return grid.Pos{X: table.Bounds.Min.X + idx, Y: headerY}, true
			}
		}
	case ColKindRange, ColKindToEnd:
		if idx, ok := table.TryColIndex(t.ColRange.From); ok {
			return grid.Pos{X: table.Bounds.Min.X + idx, Y: headerY}, true
		}
	}
	return grid.Pos{}, false
}

// SelectTo растягивает последний диапазон до ячейки (column, row).
// Табличная ссылка при этом разворачивается в листовой диапазон от
// своей экранной привязки. Без appendTo остаётся только растянутый
// диапазон.
func (s *Selection) SelectTo(column, row int64, appendTo bool, ctx *Context) {
	if len(s.Ranges) == 0 {
		s.Ranges = append(s.Ranges, NewSheetRange(NewRelPos(s.Cursor)))
	}
	last := &s.Ranges[len(s.Ranges)-1]
	switch last.Kind {
	case RangeKindTable:
		if p, ok := tableSelectStart(last.Table, ctx); ok {
			*last = NewSheetRange(newRelative(p.X, p.Y, column, row))
			return
		}
		b, ok := last.Table.ConvertToRefRangeBounds(false, ctx, false, false)
		if !ok {
			return
		}
		if b.effectiveEnd().IsPos(s.Cursor) {
			b.Start = b.effectiveEnd()
		}
		b.End = NewRelEndXY(column, row)
		b.HasEnd = true
		collapseEnd(&b)
		*last = NewSheetRange(b)
	case RangeKindSheet:
		b := &last.Sheet
		if !b.Start.Row.IsSet() {
			s.Cursor.Y = row
		}
		if !b.Start.Col.IsSet() {
			s.Cursor.X = column
		}
		b.End = NewRelEndXY(column, row)
		b.HasEnd = true
		collapseEnd(b)
	}
	if !appendTo {
		s.Ranges = []CellRefRange{s.Ranges[len(s.Ranges)-1]}
	}
}

// addOrRemoveColumn снимает столбец с выборки, если тот уже покрыт
// столбцовым диапазоном, иначе добавляет его отдельным диапазоном.
func (s *Selection) addOrRemoveColumn(col, top int64, ctx *Context) {
	covered := false
	for _, r := range s.Ranges {
		if r.HasColRange(col) {
			covered = true
			break
		}
	}
	if !covered {
		s.Ranges = append(s.Ranges, NewSheetRange(NewRelColumn(col)))
		s.Cursor = grid.Pos{X: col, Y: top}
		return
	}
	kept := make([]CellRefRange, 0, len(s.Ranges))
	for _, r := range s.Ranges {
		if !r.HasColRange(col) {
			kept = append(kept, r)
			continue
		}
		if r.Kind != RangeKindSheet {
			continue // табличный столбец снимается целиком
		}
		b := r.Sheet
		startCol := b.Start.ColOr(1)
		endCol := b.effectiveEnd().ColOr(grid.Unbounded)
		switch {
		case startCol == endCol:
			// единственный столбец диапазона, снимается весь
		case startCol == col:
			b.Start = RangeEnd{Col: NewRelCoord(col + 1)}
			kept = append(kept, NewSheetRange(b))
		case endCol == col:
			if startCol == col-1 {
				b.End = b.Start
			} else {
				b.End = RangeEnd{Col: NewRelCoord(col - 1)}
			}
			collapseEnd(&b)
			kept = append(kept, NewSheetRange(b))
		default:
			kept = append(kept, NewSheetRange(NewRelColumnRange(startCol, col-1)))
			if endCol == grid.Unbounded {
				kept = append(kept, NewSheetRange(RefRangeBounds{
					Start:  RangeEnd{Col: NewRelCoord(col + 1)},
					HasEnd: true,
				}))
			} else {
				kept = append(kept, NewSheetRange(NewRelColumnRange(col+1, endCol)))
			}
		}
	}
	s.Ranges = kept
	if !s.ContainsPos(s.Cursor, ctx) {
		switch {
		case s.ContainsPos(grid.Pos{X: col + 1, Y: top}, ctx):
			s.Cursor = grid.Pos{X: col + 1, Y: top}
		case s.ContainsPos(grid.Pos{X: col - 1, Y: top}, ctx):
			s.Cursor = grid.Pos{X: col - 1, Y: top}
		default:
			s.Cursor = grid.Pos{X: col + 1, Y: top}
		}
	}
	if len(s.Ranges) == 0 {
		s.Ranges = append(s.Ranges, NewSheetRange(NewRelXY(col, top)))
		s.Cursor = grid.Pos{X: col, Y: top}
	}
}

// addOrRemoveRow то же для строки.
func (s *Selection) addOrRemoveRow(row, left int64, ctx *Context) {
	covered := false
	for _, r := range s.Ranges {
		if r.HasRowRange(row) {
			covered = true
			break
		}
	}
	if !covered {
		s.Ranges = append(s.Ranges, NewSheetRange(NewRelRow(row)))
		s.Cursor = grid.Pos{X: left, Y: row}
		return
	}
	kept := make([]CellRefRange, 0, len(s.Ranges))
	for _, r := range s.Ranges {
		if !r.HasRowRange(row) {
			kept = append(kept, r)
			continue
		}
		if r.Kind != RangeKindSheet {
			continue
		}
		b := r.Sheet
		startRow := b.Start.RowOr(1)
		endRow := b.effectiveEnd().RowOr(grid.Unbounded)
		switch {
		case startRow == endRow:
			// единственная строка диапазона, снимается вся
		case startRow == row:
			b.Start = RangeEnd{Row: NewRelCoord(row + 1)}
			kept = append(kept, NewSheetRange(b))
		case endRow == row:
			if startRow == row-1 {
				b.End = b.Start
			} else {
				b.End = RangeEnd{Row: NewRelCoord(row - 1)}
			}
			collapseEnd(&b)
			kept = append(kept, NewSheetRange(b))
		default:
			kept = append(kept, NewSheetRange(NewRelRowRange(startRow, row-1)))
			kept = append(kept, NewSheetRange(RefRangeBounds{
				Start:  RangeEnd{Row: NewRelCoord(row + 1)},
				End:    b.End,
				HasEnd: b.HasEnd,
			}))
		}
	}
	s.Ranges = kept
	if !s.ContainsPos(s.Cursor, ctx) {
		switch {
		case s.ContainsPos(grid.Pos{X: left, Y: row + 1}, ctx):
			s.Cursor = grid.Pos{X: left, Y: row + 1}
		case s.ContainsPos(grid.Pos{X: left, Y: row - 1}, ctx):
			s.Cursor = grid.Pos{X: left, Y: row - 1}
		default:
			s.Cursor = grid.Pos{X: left, Y: row + 1}
		}
	}
	if len(s.Ranges) == 0 {
		s.Ranges = append(s.Ranges, NewSheetRange(NewRelXY(left, row)))
		s.Cursor = grid.Pos{X: left, Y: row}
	}
}

// ExtendColumn растягивает последний диапазон до столбца col.
func (s *Selection) ExtendColumn(col, top int64) {
	if len(s.Ranges) > 0 && s.Ranges[len(s.Ranges)-1].Kind == RangeKindSheet {
		b := &s.Ranges[len(s.Ranges)-1].Sheet
		if !b.IsColumnRange() {
			s.Cursor.Y = b.Start.RowOr(1)
		}
		b.End = RangeEnd{Col: NewRelCoord(col)}
		b.HasEnd = true
		collapseEnd(b)
	} else {
		s.Ranges = append(s.Ranges, NewSheetRange(NewRelColumn(col)))
		s.Cursor = grid.Pos{X: col, Y: top}
	}
}

// ExtendRow растягивает последний диапазон до строки row.
func (s *Selection) ExtendRow(row, left int64) {
	if len(s.Ranges) > 0 && s.Ranges[len(s.Ranges)-1].Kind == RangeKindSheet {
		b := &s.Ranges[len(s.Ranges)-1].Sheet
		if b.IsRowRange() {
			s.Cursor.X = b.Start.ColOr(1)
		}
		b.End = RangeEnd{Row: NewRelCoord(row)}
		b.HasEnd = true
		collapseEnd(b)
	} else {
		s.Ranges = append(s.Ranges, NewSheetRange(NewRelRow(row)))
		s.Cursor = grid.Pos{X: left, Y: row}
	}
}

// SelectColumn обрабатывает клик по заголовку столбца: ctrl добавляет
// либо снимает столбец, shift растягивает, правый клик по уже
// выделенному столбцу ничего не меняет.
func (s *Selection) SelectColumn(col int64, ctrl, shift, rightClick bool, top int64, ctx *Context) {
	switch {
	case rightClick:
		for _, r := range s.Ranges {
			if r.HasColRange(col) {
				return
			}
		}
		s.Ranges = []CellRefRange{NewSheetRange(NewRelColumn(col))}
		s.Cursor = grid.Pos{X: col, Y: top}
	case !ctrl && !shift:
		s.Ranges = []CellRefRange{NewSheetRange(NewRelColumn(col))}
		s.Cursor = grid.Pos{X: col, Y: top}
	case ctrl && !shift:
		s.addOrRemoveColumn(col, top, ctx)
	default:
		s.ExtendColumn(col, top)
	}
}

// SelectRow обрабатывает клик по заголовку строки.
func (s *Selection) SelectRow(row int64, ctrl, shift, rightClick bool, left int64, ctx *Context) {
	switch {
	case rightClick:
		for _, r := range s.Ranges {
			if r.HasRowRange(row) {
				return
			}
		}
		s.Ranges = []CellRefRange{NewSheetRange(NewRelRow(row))}
		s.Cursor = grid.Pos{X: left, Y: row}
	case !ctrl && !shift:
		s.Ranges = []CellRefRange{NewSheetRange(NewRelRow(row))}
		s.Cursor = grid.Pos{X: left, Y: row}
	case ctrl && !shift:
		s.addOrRemoveRow(row, left, ctx)
	default:
		s.ExtendRow(row, left)
	}
}

// lastRangeBounds границы последнего диапазона; табличная ссылка
// разворачивается через контекст.
func (s Selection) lastRangeBounds(ctx *Context) (RefRangeBounds, bool) {
	if len(s.Ranges) == 0 {
		return RefRangeBounds{}, false
	}
	last := s.Ranges[len(s.Ranges)-1]
	if last.Kind == RangeKindTable {
		return last.Table.ConvertToRefRangeBounds(false, ctx, false, false)
	}
	return last.Sheet, true
}

// columnSpan канонический диапазон столбцов от a до b; grid.Unbounded
// в b означает хвост листа.
func columnSpan(a, b int64) RefRangeBounds {
	switch {
	case a == 1 && b == grid.Unbounded:
		return AllBounds
	case b == grid.Unbounded:
		return RefRangeBounds{Start: RangeEnd{Col: NewRelCoord(a)}, HasEnd: true}
	default:
		return NewRelColumnRange(a, b)
	}
}

// rowSpan канонический диапазон строк от a до b.
func rowSpan(a, b int64) RefRangeBounds {
	switch {
	case a == 1 && b == grid.Unbounded:
		return AllBounds
	case b == grid.Unbounded:
		return RefRangeBounds{Start: RangeEnd{Row: NewRelCoord(a)}, HasEnd: true}
	default:
		return NewRelRowRange(a, b)
	}
}

// SetColumnsSelected заменяет выборку столбцами, накрывающими последний
// диапазон по всей высоте листа.
func (s *Selection) SetColumnsSelected(ctx *Context) {
	b, ok := s.lastRangeBounds(ctx)
	if !ok {
		return
	}
	span := columnSpan(b.Start.ColOr(1), b.effectiveEnd().ColOr(grid.Unbounded))
	s.Ranges = []CellRefRange{NewSheetRange(span)}
}

// SetRowsSelected заменяет выборку строками, накрывающими последний
// диапазон по всей ширине листа.
func (s *Selection) SetRowsSelected(ctx *Context) {
	b, ok := s.lastRangeBounds(ctx)
	if !ok {
		return
	}
	span := rowSpan(b.Start.RowOr(1), b.effectiveEnd().RowOr(grid.Unbounded))
	s.Ranges = []CellRefRange{NewSheetRange(span)}
}
