package a1

// Правки выборки при структурных изменениях листа: вставка и удаление
// столбцов и строк, сдвиги, переименования таблиц. Все методы пишут в
// выборку на месте и после правки ставят курсор в начало последнего
// диапазона, даже если ни один диапазон не изменился.

// RemovedColumn выправляет выборку после удаления столбца. Диапазоны,
// не выходящие за его пределы, выпадают целиком; выборка при этом
// может стать пустой. Возвращает, изменилось ли хоть что-то.
func (s *Selection) RemovedColumn(column int64, ctx *Context) bool {
	changed := false
	ranges := make([]CellRefRange, 0, len(s.Ranges))
	for _, r := range s.Ranges {
		if r.ContainsOnlyColumn(column) {
			changed = true
			continue
		}
		if r.RemovedColumn(column) {
			changed = true
		}
		ranges = append(ranges, r)
	}
	s.Ranges = ranges
	s.UpdateCursor(ctx)
	return changed
}

// RemovedRow выправляет выборку после удаления строки.
func (s *Selection) RemovedRow(row int64, ctx *Context) bool {
	changed := false
	ranges := make([]CellRefRange, 0, len(s.Ranges))
	for _, r := range s.Ranges {
		if r.ContainsOnlyRow(row) {
			changed = true
			continue
		}
		if r.RemovedRow(row) {
			changed = true
		}
		ranges = append(ranges, r)
	}
	s.Ranges = ranges
	s.UpdateCursor(ctx)
	return changed
}

// InsertedColumn выправляет выборку после вставки столбца.
func (s *Selection) InsertedColumn(column int64, ctx *Context) bool {
	changed := false
	for i := range s.Ranges {
		if s.Ranges[i].InsertedColumn(column) {
			changed = true
		}
	}
	s.UpdateCursor(ctx)
	return changed
}

// InsertedRow выправляет выборку после вставки строки.
func (s *Selection) InsertedRow(row int64, ctx *Context) bool {
	changed := false
	for i := range s.Ranges {
		if s.Ranges[i].InsertedRow(row) {
			changed = true
		}
	}
	s.UpdateCursor(ctx)
	return changed
}

// TranslateInPlace сдвигает выборку на (dx, dy). Координаты упираются
// в единицу и дальше не уходят.
func (s *Selection) TranslateInPlace(dx, dy int64) {
	s.Cursor = s.Cursor.Translate(dx, dy, 1, 1)
	for i := range s.Ranges {
		s.Ranges[i].TranslateInPlace(dx, dy)
	}
}

// Translate возвращает сдвинутую копию выборки.
func (s Selection) Translate(dx, dy int64) Selection {
	out := s
	out.Ranges = make([]CellRefRange, len(s.Ranges))
	copy(out.Ranges, s.Ranges)
	out.TranslateInPlace(dx, dy)
	return out
}

// AdjustColumnRowInPlace сдвигает на delta все координаты, начиная с
// заданного столбца либо строки. nil-ось не трогается.
func (s *Selection) AdjustColumnRowInPlace(column, row *int64, delta int64) {
	if column != nil && s.Cursor.X >= *column {
		s.Cursor.X = max(1, s.Cursor.X+delta)
	}
	if row != nil && s.Cursor.Y >= *row {
		s.Cursor.Y = max(1, s.Cursor.Y+delta)
	}
	for i := range s.Ranges {
		s.Ranges[i].AdjustColumnRowInPlace(column, row, delta)
	}
}

// SeparateTableRanges делит выборку на координатные диапазоны и
// табличные ссылки, сохраняя порядок внутри каждой группы.
func (s Selection) SeparateTableRanges() ([]RefRangeBounds, []TableRef) {
	var bounds []RefRangeBounds
	var tables []TableRef
	for _, r := range s.Ranges {
		if r.Kind == RangeKindTable {
			tables = append(tables, r.Table)
		} else {
			bounds = append(bounds, r.Sheet)
		}
	}
	return bounds, tables
}

// ReplaceTableName меняет имя таблицы во всех табличных ссылках.
func (s *Selection) ReplaceTableName(oldName, newName string) {
	for i := range s.Ranges {
		s.Ranges[i].ReplaceTableName(oldName, newName)
	}
}

// ReplaceColumnName меняет имя колонки в ссылках на заданную таблицу.
func (s *Selection) ReplaceColumnName(tableName, oldName, newName string) {
	for i := range s.Ranges {
		s.Ranges[i].ReplaceColumnName(tableName, oldName, newName)
	}
}
