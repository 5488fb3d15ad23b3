package a1

import "gridref/internal/grid"

// SelectTable обрабатывает клик по имени таблицы или по заголовку её
// столбца. col — имя столбца, пустая строка выбирает таблицу целиком.
// shift растягивает последний диапазон до столбца, ctrl добавляет
// отдельным диапазоном. Повторный клик без модификаторов переключает
// выбор между данными и заголовками. Курсор встаёт на экранную ячейку
// заголовка, но не выше строки screenRowTop.
func (s *Selection) SelectTable(tableName, col string, ctx *Context, screenRowTop int64, shift, ctrl bool) {
	table := ctx.TryTable(tableName)
	if table == nil {
		return
	}

	if shift && len(s.Ranges) > 0 {
		last := s.Ranges[len(s.Ranges)-1]
		switch {
		case last.Kind == RangeKindTable && col != "" && last.Table.TableName == tableName:
			prev := last.Table
			switch prev.ColRange.Kind {
			case ColKindRange:
				if prev.ColRange.To == col {
					return
				}
				s.Ranges[len(s.Ranges)-1] = NewTableRange(TableRef{
					TableName: tableName,
					Data:      true,
					ColRange:  NewColRange(prev.ColRange.From, col),
				})
				return
			case ColKindCol:
				// повторный shift-клик по тому же столбцу переключает
				// заголовки, иначе столбцы сворачиваются в отрезок
				headers := false
				if prev.ColRange.From == col {
					headers = !prev.Headers
				}
				s.Ranges[len(s.Ranges)-1] = NewTableRange(TableRef{
					TableName: tableName,
					Data:      true,
					Headers:   headers,
					ColRange:  NewColRange(prev.ColRange.From, col),
				})
				return
			case ColKindToEnd:
				next := TableRef{TableName: tableName, Data: true}
				if prev.ColRange.From == col {
					next.ColRange = NewCol(col)
				} else {
					next.ColRange = NewColRange(prev.ColRange.From, col)
				}
				s.Ranges[len(s.Ranges)-1] = NewTableRange(next)
				return
			case ColKindAll:
				// выбор всей таблицы снимается, дальше общий путь
				s.Ranges = s.Ranges[:len(s.Ranges)-1]
			}
		case last.Kind == RangeKindSheet:
			if col == "" {
				s.Ranges = append(s.Ranges, NewTableRange(NewTableRef(tableName)))
				return
			}
			idx, ok := table.TryColIndex(col)
			if !ok {
				return
			}
			b := last.Sheet
			b.End = NewRelEndXY(table.Bounds.Min.X+idx, table.Bounds.Min.Y)
			b.HasEnd = true
			collapseEnd(&b)
			s.Ranges[len(s.Ranges)-1] = NewSheetRange(b)
			return
		}
	}

	var colRange ColRange
	x := table.Bounds.Min.X
	if col != "" {
		idx, ok := table.TryColIndex(col)
		if !ok {
			return
		}
		colRange = NewCol(table.VisibleColumns[idx])
		x += idx
	}

	headers := false
	data := true
	if !shift && !ctrl && len(s.Ranges) == 1 && s.Ranges[0].Kind == RangeKindTable {
		prev := s.Ranges[0].Table
		if prev.TableName == tableName && prev.ColRange == colRange {
			switch colRange.Kind {
			case ColKindCol:
				if !prev.Headers && prev.Data {
					headers = true
					data = false
				}
				s.Ranges = s.Ranges[:0]
			case ColKindAll:
				headers = !prev.Headers
				s.Ranges = s.Ranges[:0]
			}
		}
	}
	if !shift && !ctrl {
		s.Ranges = s.Ranges[:0]
	}
	s.Ranges = append(s.Ranges, NewTableRange(TableRef{
		TableName: tableName,
		Data:      data,
		Headers:   headers,
		ColRange:  colRange,
	}))

	y := table.Bounds.Min.Y
	if table.ShowName {
		y++
	}
	if table.ShowColumns && !headers {
		y++
	}
	s.Cursor = grid.Pos{X: x, Y: max(y, screenRowTop)}
	s.SheetID = table.SheetID
}
