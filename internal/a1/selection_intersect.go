package a1

import "gridref/internal/grid"

// IntersectsRect сообщает, задевает ли выборка прямоугольник rect.
// Табличные ссылки берутся по полным границам таблицы.
func (s Selection) IntersectsRect(rect grid.Rect, ctx *Context) bool {
	for _, r := range s.Ranges {
		switch r.Kind {
		case RangeKindSheet:
			if r.Sheet.ToRectUnbounded().Intersects(rect) {
				return true
			}
		case RangeKindTable:
			if tr, ok := r.Table.ToLargestRect(ctx); ok && tr.Intersects(rect) {
				return true
			}
		}
	}
	return false
}

// overlapBoundsTable пересечение листового диапазона с полными
// границами таблицы.
func overlapBoundsTable(b RefRangeBounds, t TableRef, ctx *Context) bool {
	rect, ok := t.ToLargestRect(ctx)
	return ok && b.ToRectUnbounded().Intersects(rect)
}

// Intersection пересекает две выборки на одном листе. Табличная ссылка
// в приёмнике раскрывается в свои строки данных, в аргументе — в полные
// границы таблицы, так что операция не коммутативна. Курсор наследуется
// из приёмника, если попал в результат, иначе берётся из аргумента либо
// из конца последнего диапазона.
func (s Selection) Intersection(other Selection, ctx *Context) (Selection, bool) {
	if s.SheetID != other.SheetID {
		return Selection{}, false
	}
	var ranges []CellRefRange
	for _, r := range s.Ranges {
		switch r.Kind {
		case RangeKindSheet:
			for _, o := range other.Ranges {
				switch o.Kind {
				case RangeKindSheet:
					if inter, ok := r.Sheet.Intersection(o.Sheet); ok {
						ranges = append(ranges, NewSheetRange(inter))
					}
				case RangeKindTable:
					rect, ok := o.Table.ToLargestRect(ctx)
					if !ok {
						continue
					}
					if inter, ok := NewRelRect(rect).Intersection(r.Sheet); ok {
						ranges = append(ranges, NewSheetRange(inter))
					}
				}
			}
		case RangeKindTable:
			b, ok := r.Table.ConvertToRefRangeBounds(false, ctx, false, false)
			if !ok {
				continue
			}
			for _, o := range other.Ranges {
				// две таблицы не перекрываются, табличная пара пропускается
				if o.Kind != RangeKindSheet {
					continue
				}
				if inter, ok := b.Intersection(o.Sheet); ok {
					ranges = append(ranges, NewSheetRange(inter))
				}
			}
		}
	}
	if len(ranges) == 0 {
		return Selection{}, false
	}
	result := Selection{SheetID: s.SheetID, Cursor: s.Cursor, Ranges: ranges}
	switch {
	case result.ContainsPos(s.Cursor, ctx):
	case result.ContainsPos(other.Cursor, ctx):
		result.Cursor = other.Cursor
	default:
		if p := result.LastSelectionEnd(ctx); result.ContainsPos(p, ctx) {
			result.Cursor = p
		}
	}
	return result, true
}

// Overlaps сообщает, пересекаются ли выборки хотя бы одной парой
// диапазонов.
func (s Selection) Overlaps(other Selection, ctx *Context) bool {
	if s.SheetID != other.SheetID {
		return false
	}
	for _, r := range s.Ranges {
		for _, o := range other.Ranges {
			switch {
			case r.Kind == RangeKindSheet && o.Kind == RangeKindSheet:
				if _, ok := r.Sheet.Intersection(o.Sheet); ok {
					return true
				}
			case r.Kind == RangeKindSheet:
				if overlapBoundsTable(r.Sheet, o.Table, ctx) {
					return true
				}
			case o.Kind == RangeKindSheet:
				if overlapBoundsTable(o.Sheet, r.Table, ctx) {
					return true
				}
			default:
				rect1, ok1 := r.Table.ToLargestRect(ctx)
				rect2, ok2 := o.Table.ToLargestRect(ctx)
				if ok1 && ok2 && rect1.Intersects(rect2) {
					return true
				}
			}
		}
	}
	return false
}
