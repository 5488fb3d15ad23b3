package a1

// collapseEnd схлопывает конец, совпавший с началом после правки.
func collapseEnd(r *RefRangeBounds) {
	if r.HasEnd && r.End == r.Start {
		r.End = RangeEnd{}
		r.HasEnd = false
	}
}

// RemovedColumn сдвигает диапазон после удаления столбца column.
// Возвращает, изменился ли диапазон. Случай, когда диапазон целиком
// лежит в удалённом столбце, обрабатывается вызывающей стороной.
// Табличные ссылки привязаны к имени и не сдвигаются.
func (c *CellRefRange) RemovedColumn(column int64) bool {
	if c.Kind != RangeKindSheet {
		return false
	}
	r := &c.Sheet
	if r.Start.ColOr(1) == 1 && !r.effectiveEnd().Col.IsSet() {
		return false
	}
	changed := false
	if r.Start.Col.IsSet() && r.Start.Col.Coord > column {
		r.Start.Col.Coord = max(r.Start.Col.Coord-1, 1)
		changed = true
	}
	if r.HasEnd && r.End.Col.IsSet() && r.End.Col.Coord >= column {
		old := r.End.Col.Coord
		r.End.Col.Coord = max(r.End.Col.Coord-1, 1)
		changed = changed || old != r.End.Col.Coord
	}
	collapseEnd(r)
	return changed
}

// RemovedRow сдвигает диапазон после удаления строки row.
func (c *CellRefRange) RemovedRow(row int64) bool {
	if c.Kind != RangeKindSheet {
		return false
	}
	r := &c.Sheet
	if r.Start.RowOr(1) == 1 && !r.effectiveEnd().Row.IsSet() {
		return false
	}
	changed := false
	if r.Start.Row.IsSet() && r.Start.Row.Coord > row {
		r.Start.Row.Coord = max(r.Start.Row.Coord-1, 1)
		changed = true
	}
	if r.HasEnd && r.End.Row.IsSet() && r.End.Row.Coord >= row {
		old := r.End.Row.Coord
		r.End.Row.Coord = max(r.End.Row.Coord-1, 1)
		changed = changed || old != r.End.Row.Coord
	}
	collapseEnd(r)
	return changed
}

// InsertedColumn сдвигает диапазон после вставки столбца column.
func (c *CellRefRange) InsertedColumn(column int64) bool {
	if c.Kind != RangeKindSheet {
		return false
	}
	r := &c.Sheet
	changed := false
	if r.Start.Col.IsSet() && r.Start.Col.Coord >= column {
		r.Start.Col.Coord++
		changed = true
	}
	if r.HasEnd && r.End.Col.IsSet() && r.End.Col.Coord >= column {
		r.End.Col.Coord++
		changed = true
	}
	return changed
}

// InsertedRow сдвигает диапазон после вставки строки row.
func (c *CellRefRange) InsertedRow(row int64) bool {
	if c.Kind != RangeKindSheet {
		return false
	}
	r := &c.Sheet
	changed := false
	if r.Start.Row.IsSet() && r.Start.Row.Coord >= row {
		r.Start.Row.Coord++
		changed = true
	}
	if r.HasEnd && r.End.Row.IsSet() && r.End.Row.Coord >= row {
		r.End.Row.Coord++
		changed = true
	}
	return changed
}

// adjustCoord сдвигает установленную координату, если она не меньше
// порога. Результат прижимается к единице.
func adjustCoord(c *Coord, threshold, delta int64) {
	if !c.IsSet() || c.Coord < threshold {
		return
	}
	c.Coord = max(1, c.Coord+delta)
}

// AdjustColumnRowInPlace сдвигает координаты диапазона начиная с
// заданного столбца или строки. Nil означает, что ось не трогается.
func (c *CellRefRange) AdjustColumnRowInPlace(column, row *int64, delta int64) {
	if c.Kind != RangeKindSheet {
		return
	}
	r := &c.Sheet
	if column != nil {
		adjustCoord(&r.Start.Col, *column, delta)
		if r.HasEnd {
			adjustCoord(&r.End.Col, *column, delta)
		}
	}
	if row != nil {
		adjustCoord(&r.Start.Row, *row, delta)
		if r.HasEnd {
			adjustCoord(&r.End.Row, *row, delta)
		}
	}
	collapseEnd(r)
}

// ReplaceTableName переименовывает табличную ссылку. Имя сверяется
// без учёта регистра.
func (c *CellRefRange) ReplaceTableName(oldName, newName string) {
	if c.Kind != RangeKindTable {
		return
	}
	if foldName(c.Table.TableName) == foldName(oldName) {
		c.Table.TableName = newName
	}
}

// ReplaceColumnName переименовывает колонку в ссылках на таблицу
// tableName. Ссылки на другие таблицы не трогаются.
func (c *CellRefRange) ReplaceColumnName(tableName, oldName, newName string) {
	if c.Kind != RangeKindTable || foldName(c.Table.TableName) != foldName(tableName) {
		return
	}
	oldFold := foldName(oldName)
	if foldName(c.Table.ColRange.From) == oldFold {
		c.Table.ColRange.From = newName
	}
	if foldName(c.Table.ColRange.To) == oldFold {
		c.Table.ColRange.To = newName
	}
}

// TranslateInPlace сдвигает координатный диапазон на (dx, dy).
// Табличные ссылки движутся вместе со своей таблицей и не трогаются.
func (c *CellRefRange) TranslateInPlace(dx, dy int64) {
	if c.Kind != RangeKindSheet {
		return
	}
	c.Sheet.TranslateInPlace(dx, dy)
}

// Translate возвращает сдвинутую копию диапазона.
func (c CellRefRange) Translate(dx, dy int64) CellRefRange {
	c.TranslateInPlace(dx, dy)
	return c
}
