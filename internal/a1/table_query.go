package a1

import (
	"slices"

	"gridref/internal/grid"
)

// SelectedCols возвращает номера столбцов листа, занятых ссылкой, в
// окне [from, to]. Неизвестная таблица или столбец дают пустой список.
func (t TableRef) SelectedCols(from, to int64, ctx *Context) []int64 {
	var cols []int64

	table := ctx.TryTable(t.TableName)
	if table == nil {
		return cols
	}
	push := func(start, end int64) {
		for x := max(start, from); x <= min(end, to); x++ {
			cols = append(cols, x)
		}
	}
	switch t.ColRange.Kind {
	case ColKindAll:
		push(table.Bounds.Min.X, table.Bounds.Max.X)
	case ColKindCol:
		if index, ok := table.TryColIndex(t.ColRange.From); ok {
			x := index + table.Bounds.Min.X
			if x >= from && x <= to {
				cols = append(cols, x)
			}
		}
	case ColKindRange:
		if start, end, ok := table.TryColRange(t.ColRange.From, t.ColRange.To); ok {
			push(start+table.Bounds.Min.X, end+table.Bounds.Min.X)
		}
	case ColKindToEnd:
		if start, end, ok := table.TryColRangeToEnd(t.ColRange.From); ok {
			push(start+table.Bounds.Min.X, end+table.Bounds.Min.X)
		}
	}
	return cols
}

// SelectedColsFinite возвращает все занятые столбцы. Таблица конечна,
// поэтому верхней границы достаточно.
func (t TableRef) SelectedColsFinite(ctx *Context) []int64 {
	return t.SelectedCols(1, grid.Unbounded, ctx)
}

// SelectedRows возвращает номера строк листа, занятых ссылкой, в окне
// [from, to]. Ссылка только на заголовки даёт строку заголовков без
// оглядки на окно.
func (t TableRef) SelectedRows(from, to int64, ctx *Context) []int64 {
	var rows []int64

	table := ctx.TryTable(t.TableName)
	if table == nil {
		return rows
	}
	bounds := table.Bounds
	if t.Headers && !t.Data {
		y := bounds.Min.Y
		if table.ShowName {
			y++
		}
		return append(rows, y)
	}
	minY := bounds.Min.Y + table.YAdjustment(false)
	if minY > to || bounds.Max.Y < from {
		return rows
	}
	for y := max(minY, from); y <= min(bounds.Max.Y, to); y++ {
		rows = append(rows, y)
	}
	return rows
}

// SelectedRowsFinite возвращает все занятые строки.
func (t TableRef) SelectedRowsFinite(ctx *Context) []int64 {
	return t.SelectedRows(1, grid.Unbounded, ctx)
}

// IsMultiCursor сообщает, покрывает ли ссылка больше одной ячейки.
func (t TableRef) IsMultiCursor(ctx *Context) bool {
	table := ctx.TryTable(t.TableName)
	if table == nil {
		return false
	}
	if t.Headers && t.Data {
		return true
	}
	if t.Headers && !t.Data && t.ColRange.Kind == ColKindCol {
		return false
	}
	switch t.ColRange.Kind {
	case ColKindAll:
		if table.Bounds.Width() > 1 {
			return true
		}
	case ColKindRange:
		start, _ := table.TryColIndex(t.ColRange.From)
		end, _ := table.TryColIndex(t.ColRange.To)
		if end != start {
			return true
		}
	case ColKindToEnd:
		start, _ := table.TryColIndex(t.ColRange.From)
		if int64(len(table.VisibleColumns)) != start {
			return true
		}
	}

	rows := int64(1)
	if table.ShowName {
		rows++
	}
	if table.ShowColumns {
		rows++
	}
	return table.Bounds.Height() != rows
}

// ToLargestRect возвращает наибольший прямоугольник, который может
// занять ссылка вместе со служебными строками. Имена столбцов здесь
// сверяются с точностью до регистра.
func (t TableRef) ToLargestRect(ctx *Context) (grid.Rect, bool) {
	table := ctx.TryTable(t.TableName)
	if table == nil {
		return grid.Rect{}, false
	}
	bounds := table.Bounds
	minX, maxX := bounds.Max.X, bounds.Min.X
	minY := bounds.Min.Y
	maxY := bounds.Max.Y
	if t.Headers && !t.Data {
		if !table.ShowColumns {
			return grid.Rect{}, false
		}
		maxY = bounds.Min.Y
		if table.ShowName {
			maxY++
		}
	}

	nameRow := int64(0)
	if table.ShowName {
		nameRow = 1
	}
	exact := func(name string) (int64, bool) {
		i := slices.Index(table.VisibleColumns, name)
		if i < 0 {
			return 0, false
		}
		return int64(i), true
	}
	switch t.ColRange.Kind {
	case ColKindAll:
		minX, maxX = bounds.Min.X, bounds.Max.X
	case ColKindCol:
		col, ok := exact(t.ColRange.From)
		if !ok {
			return grid.Rect{}, false
		}
		minX = min(minX, bounds.Min.X+col)
		maxX = max(maxX, bounds.Min.X+col)
		minY += nameRow
	case ColKindRange:
		start, ok := exact(t.ColRange.From)
		if !ok {
			return grid.Rect{}, false
		}
		end, ok := exact(t.ColRange.To)
		if !ok {
			return grid.Rect{}, false
		}
		minX = min(minX, bounds.Min.X+start, bounds.Min.X+end)
		maxX = max(maxX, bounds.Min.X+start, bounds.Min.X+end)
		minY += nameRow
	case ColKindToEnd:
		start, ok := exact(t.ColRange.From)
		if !ok {
			return grid.Rect{}, false
		}
		minX = min(minX, bounds.Min.X+start)
		maxX = max(minX, bounds.Min.X+int64(len(table.VisibleColumns))-1)
		minY += nameRow
	}

	return grid.NewRect(minX, minY, maxX, maxY), true
}

// CursorPosFromLastRange возвращает позицию курсора для ссылки:
// якорная ячейка таблицы со сдвигом на строку имени.
func (t TableRef) CursorPosFromLastRange(ctx *Context) grid.Pos {
	table := ctx.TryTable(t.TableName)
	if table == nil {
		return grid.Pos{X: 1, Y: 1}
	}
	y := table.Bounds.Min.Y
	if !t.Headers && (table.ShowName || table.ShowColumns) && table.Bounds.Height() != 1 {
		y++
	}
	return grid.Pos{X: table.Bounds.Min.X, Y: y}
}

// IsTwoDimensional сообщает, может ли ссылка охватывать больше одного
// столбца.
func (t TableRef) IsTwoDimensional() bool {
	switch t.ColRange.Kind {
	case ColKindAll, ColKindToEnd:
		return true
	case ColKindRange:
		return t.ColRange.From != t.ColRange.To
	}
	return false
}

// TryToPos возвращает позицию, если ссылка разрешается в одну ячейку.
func (t TableRef) TryToPos(ctx *Context) (grid.Pos, bool) {
	r, ok := t.ConvertToRefRangeBounds(false, ctx, false, false)
	if !ok {
		return grid.Pos{}, false
	}
	return r.TryToPos()
}

// IsSingleCell сообщает, разрешается ли ссылка ровно в одну ячейку.
func (t TableRef) IsSingleCell(ctx *Context) bool {
	r, ok := t.ConvertToRefRangeBounds(false, ctx, false, false)
	if !ok {
		return false
	}
	return r.IsSingleCell()
}

// ContainsPos сообщает, попадает ли позиция в разрешённую область
// ссылки.
func (t TableRef) ContainsPos(pos grid.Pos, ctx *Context) bool {
	r, ok := t.ConvertToRefRangeBounds(false, ctx, false, false)
	if !ok {
		return false
	}
	return r.ContainsPos(pos)
}

// IntersectsRect сообщает, пересекает ли наибольшая область ссылки
// прямоугольник.
func (t TableRef) IntersectsRect(rect grid.Rect, ctx *Context) bool {
	r, ok := t.ToLargestRect(ctx)
	if !ok {
		return false
	}
	return r.Intersects(rect)
}

// TableColumnSelection возвращает индексы выбранных видимых столбцов
// таблицы tableName. Имя сверяется с точностью до регистра, у таблиц
// без строки заголовков выбора столбцов нет.
func (t TableRef) TableColumnSelection(tableName string, ctx *Context) ([]int64, bool) {
	if tableName != t.TableName {
		return nil, false
	}
	table := ctx.TryTable(t.TableName)
	if table == nil {
		return nil, false
	}
	if !table.ShowColumns {
		return nil, false
	}

	var cols []int64
	switch t.ColRange.Kind {
	case ColKindAll:
		for col := int64(0); col < int64(len(table.VisibleColumns)); col++ {
			cols = append(cols, col)
		}
	case ColKindCol:
		index, ok := table.TryColIndex(t.ColRange.From)
		if !ok {
			return nil, false
		}
		cols = append(cols, index)
	case ColKindRange:
		start, ok := table.TryColIndex(t.ColRange.From)
		if !ok {
			return nil, false
		}
		end, ok := table.TryColIndex(t.ColRange.To)
		if !ok {
			return nil, false
		}
		for col := min(start, end); col <= max(start, end); col++ {
			cols = append(cols, col)
		}
	case ColKindToEnd:
		start, ok := table.TryColIndex(t.ColRange.From)
		if !ok {
			return nil, false
		}
		for col := start; col < int64(len(table.VisibleColumns)); col++ {
			cols = append(cols, col)
		}
	}
	return cols, true
}
