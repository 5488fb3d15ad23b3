package a1

import "gridref/internal/grid"

// CheckForTableRef пытается превратить координатный диапазон в
// табличную ссылку, когда он в точности накрывает узнаваемую область
// таблицы: ячейку имени, строку заголовков, строки данных или таблицу
// целиком. Формульные таблицы не повышаются. Бесконечные диапазоны и
// всё, что не совпало ни с одной областью, остаются как есть.
func (c CellRefRange) CheckForTableRef(sheetID grid.SheetID, ctx *Context) (CellRefRange, bool) {
	if c.Kind != RangeKindSheet {
		return CellRefRange{}, false
	}
	r := c.Sheet
	if !r.IsFinite() {
		return CellRefRange{}, false
	}
	end := r.effectiveEnd()
	start := grid.NewSheetPos(
		min(r.Start.ColOr(1), end.ColOr(1)),
		min(r.Start.RowOr(1), end.RowOr(1)),
		sheetID,
	)
	stop := grid.NewSheetPos(
		max(r.Start.ColOr(1), end.ColOr(1)),
		max(r.Start.RowOr(1), end.RowOr(1)),
		sheetID,
	)

	table := ctx.TableFromPos(start)
	if table == nil {
		return CellRefRange{}, false
	}
	// Для формул табличная обвязка не рисуется, ссылку не повышаем.
	if table.Language == LanguageFormula {
		return CellRefRange{}, false
	}
	b := table.Bounds
	adjName := int64(0)
	if table.ShowName {
		adjName = 1
	}
	adjColumns := int64(0)
	if table.ShowColumns {
		adjColumns = 1
	}

	wholeTable := func() CellRefRange {
		return NewTableRange(NewTableRef(table.TableName))
	}

	// Ячейка имени таблицы выбирает таблицу целиком.
	if start == stop && table.ShowName &&
		start.X >= b.Min.X && start.X <= b.Max.X && start.Y == b.Min.Y {
		return wholeTable(), true
	}

	if table.IsHTMLImage && b.Contains(start.Pos) && b.Contains(stop.Pos) {
		return wholeTable(), true
	}

	if start.X < b.Min.X || stop.X > b.Max.X {
		return CellRefRange{}, false
	}

	var colRange ColRange
	if start.X == b.Min.X && stop.X == b.Max.X {
		colRange = NewColAll()
	} else {
		col1, ok := table.ColNameFromIndex(int(start.X - b.Min.X))
		if !ok {
			return CellRefRange{}, false
		}
		col2, ok := table.ColNameFromIndex(int(stop.X - b.Min.X))
		if !ok {
			return CellRefRange{}, false
		}
		if col1 == col2 {
			colRange = NewCol(col1)
		} else {
			colRange = NewColRange(col1, col2)
		}
	}

	withCols := func(headers bool) CellRefRange {
		ref := NewTableRef(table.TableName)
		ref.ColRange = colRange
		ref.Headers = headers
		return NewTableRange(ref)
	}

	// Только строка заголовков. Исторический формат записывает её с
	// headers=false, неотличимо от строк данных на этом уровне.
	if table.ShowColumns && start.Y == b.Min.Y+adjName && stop.Y == b.Min.Y+adjName {
		return withCols(false), true
	}

	// Только строки данных.
	if start.Y == b.Min.Y+adjName+adjColumns && stop.Y == b.Max.Y {
		return withCols(false), true
	}

	fullTable := start.Y == b.Min.Y && stop.Y == b.Max.Y
	dataAndHeaders := start.Y == b.Min.Y+adjName && stop.Y == b.Max.Y
	if fullTable || dataAndHeaders {
		return withCols(true), true
	}

	return CellRefRange{}, false
}
