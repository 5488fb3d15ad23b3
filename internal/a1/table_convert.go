package a1

import "gridref/internal/grid"

// ConvertToRefRangeBounds разрешает табличную ссылку в координатный
// диапазон листа. useUnbounded раскрывает правую и нижнюю границы до
// бесконечности, forceColumns затягивает строку заголовков даже когда
// она не запрошена, forceTableBounds возвращает область таблицы
// целиком вместе с именем. Неизвестная таблица или столбец дают false.
func (t TableRef) ConvertToRefRangeBounds(useUnbounded bool, ctx *Context, forceColumns, forceTableBounds bool) (RefRangeBounds, bool) {
	table := ctx.TryTable(t.TableName)
	if table == nil {
		return RefRangeBounds{}, false
	}

	// Диаграммы и HTML-таблицы всегда занимают свои полные границы.
	if table.IsHTMLImage {
		b := table.Bounds
		return newRelative(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y), true
	}

	yStart, yEnd := table.ToSheetRows()

	if !forceTableBounds {
		if !t.Headers && !forceColumns {
			yStart += table.YAdjustment(false)
		} else if table.ShowName {
			yStart++
		}
	} else if t.Headers && !t.Data {
		// Нужна только строка заголовков, полные границы не имеют смысла.
		yStart = table.Bounds.Min.Y
		if table.ShowName {
			yStart++
		}
	} else if t.ColRange.Kind == ColKindCol {
		// Буфер обмена: столбец копируется без имени таблицы.
		yStart += table.YAdjustment(true)
	}
	if !t.Data {
		yEnd = yStart
	}

	return t.finishConvert(table, yStart, yEnd, useUnbounded)
}

// AccessedBounds возвращает прямоугольник, которым ссылку подсвечивают
// вокруг ячеек, прочитанных кодом. showCodeHeaders затягивает строку
// заголовков, как это делают коды с заголовками в выдаче.
func (t TableRef) AccessedBounds(showCodeHeaders bool, ctx *Context) (RefRangeBounds, bool) {
	table := ctx.TryTable(t.TableName)
	if table == nil {
		return RefRangeBounds{}, false
	}

	// Для диаграмм подсвечивается только якорная ячейка.
	if table.IsHTMLImage {
		return newRelative(table.Bounds.Min.X, table.Bounds.Min.Y, table.Bounds.Min.X, table.Bounds.Min.Y), true
	}

	yStart, yEnd := table.ToSheetRows()
	if t.Headers && !t.Data || showCodeHeaders {
		yStart = table.Bounds.Min.Y
		if table.ShowName {
			yStart++
		}
	} else {
		yStart += table.YAdjustment(false)
	}
	if !t.Data {
		yEnd = yStart
	}

	return t.finishConvert(table, yStart, yEnd, false)
}

// finishConvert достраивает горизонтальную часть диапазона по
// столбцовой части ссылки.
func (t TableRef) finishConvert(table *TableMapEntry, yStart, yEnd int64, useUnbounded bool) (RefRangeBounds, bool) {
	endRow := yEnd
	if useUnbounded {
		endRow = grid.Unbounded
	}
	switch t.ColRange.Kind {
	case ColKindAll:
		endCol := table.Bounds.Max.X
		if useUnbounded {
			endCol = grid.Unbounded
		}
		return newRelative(table.Bounds.Min.X, yStart, endCol, endRow), true
	case ColKindCol:
		index, ok := table.TryColIndex(t.ColRange.From)
		if !ok {
			return RefRangeBounds{}, false
		}
		x := index + table.Bounds.Min.X
		return newRelative(x, yStart, x, endRow), true
	case ColKindRange:
		start, end, ok := table.TryColRange(t.ColRange.From, t.ColRange.To)
		if !ok {
			return RefRangeBounds{}, false
		}
		return newRelative(start+table.Bounds.Min.X, yStart, end+table.Bounds.Min.X, endRow), true
	case ColKindToEnd:
		start, end, ok := table.TryColRangeToEnd(t.ColRange.From)
		if !ok {
			return RefRangeBounds{}, false
		}
		endCol := end + table.Bounds.Min.X
		if useUnbounded {
			endCol = grid.Unbounded
		}
		return newRelative(start+table.Bounds.Min.X, yStart, endCol, endRow), true
	}
	return RefRangeBounds{}, false
}
