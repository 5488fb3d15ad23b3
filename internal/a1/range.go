package a1

import (
	"strings"

	"gridref/internal/grid"
)

// RangeKind различает прямые диапазоны листа и табличные ссылки.
type RangeKind uint8

const (
	RangeKindSheet RangeKind = iota
	RangeKindTable
)

// CellRefRange — один элемент выборки: либо область листа в
// координатах, либо ссылка на таблицу по имени. Табличная ссылка
// разрешается в координаты только через контекст книги, поэтому переживает
// перенос и изменение размера таблицы. У значения занято только поле
// своего вида, сравнение оператором == корректно.
type CellRefRange struct {
	Kind  RangeKind
	Sheet RefRangeBounds
	Table TableRef
}

// AllRange — выборка всего листа.
var AllRange = NewSheetRange(AllBounds)

// NewSheetRange оборачивает координатный диапазон.
func NewSheetRange(r RefRangeBounds) CellRefRange {
	return CellRefRange{Kind: RangeKindSheet, Sheet: r}
}

// NewTableRange оборачивает табличную ссылку.
func NewTableRange(t TableRef) CellRefRange {
	return CellRefRange{Kind: RangeKindTable, Table: t}
}

// ParseCellRefRange разбирает элемент выборки. Сначала строка
// пробуется как табличная ссылка, при неудаче как координатный
// диапазон; наружу выходит координатная ошибка. Без контекста
// табличная ветка пропускается.
func ParseCellRefRange(s string, ctx *Context) (CellRefRange, error) {
	if ctx != nil {
		if t, err := ParseTableRef(s, ctx); err == nil {
			return NewTableRange(t), nil
		}
	}
	r, err := ParseRefRangeBounds(s)
	if err != nil {
		return CellRefRange{}, err
	}
	return NewSheetRange(r), nil
}

func (c CellRefRange) String() string {
	if c.Kind == RangeKindTable {
		return c.Table.String()
	}
	return c.Sheet.String()
}

func (c CellRefRange) write(sb *strings.Builder) {
	sb.WriteString(c.String())
}

// IsValid сообщает, представим ли диапазон строкой.
func (c CellRefRange) IsValid() bool {
	if c.Kind == RangeKindTable {
		return c.Table.TableName != ""
	}
	return c.Sheet.IsValid()
}

// ContainsOnlyColumn сообщает, что диапазон не выходит за пределы
// столбца col. Табличные ссылки не учитываются.
func (c CellRefRange) ContainsOnlyColumn(col int64) bool {
	if c.Kind != RangeKindSheet {
		return false
	}
	r := c.Sheet
	return r.Start.ColOr(1) == col && r.effectiveEnd().ColOr(grid.Unbounded) == col
}

// ContainsOnlyRow сообщает, что диапазон не выходит за пределы строки row.
func (c CellRefRange) ContainsOnlyRow(row int64) bool {
	if c.Kind != RangeKindSheet {
		return false
	}
	r := c.Sheet
	return r.Start.RowOr(1) == row && r.effectiveEnd().RowOr(grid.Unbounded) == row
}

// OnlyColumn сообщает, что диапазон ровно совпадает с бесконечным
// столбцом col.
func (c CellRefRange) OnlyColumn(col int64) bool {
	if c.Kind != RangeKindSheet {
		return false
	}
	r := c.Sheet
	end := r.effectiveEnd()
	if r.Start.ColOr(1) != col || end.ColOr(grid.Unbounded) != col {
		return false
	}
	return r.Start.RowOr(1) == 1 && end.RowOr(grid.Unbounded) == grid.Unbounded
}

// OnlyRow сообщает, что диапазон ровно совпадает с бесконечной строкой row.
func (c CellRefRange) OnlyRow(row int64) bool {
	if c.Kind != RangeKindSheet {
		return false
	}
	r := c.Sheet
	end := r.effectiveEnd()
	if r.Start.RowOr(1) != row || end.RowOr(grid.Unbounded) != row {
		return false
	}
	return r.Start.ColOr(1) == 1 && end.ColOr(grid.Unbounded) == grid.Unbounded
}

// isPosRangeBounds проверяет, что границы диапазона совпадают с парой
// позиций в любом порядке.
func isPosRangeBounds(r RefRangeBounds, p1 grid.Pos, p2 *grid.Pos) bool {
	end := r.effectiveEnd()
	if p2 == nil {
		return r.Start.IsPos(p1) && end.IsPos(p1)
	}
	return r.Start.IsPos(p1) && end.IsPos(*p2) ||
		end.IsPos(p1) && r.Start.IsPos(*p2)
}

// IsPosRange сообщает, что диапазон задан ровно позициями p1 и p2.
// Табличная ссылка сперва разрешается в координаты.
func (c CellRefRange) IsPosRange(p1 grid.Pos, p2 *grid.Pos, ctx *Context) bool {
	if c.Kind == RangeKindTable {
		r, ok := c.Table.ConvertToRefRangeBounds(false, ctx, false, false)
		if !ok {
			return false
		}
		return isPosRangeBounds(r, p1, p2)
	}
	return isPosRangeBounds(c.Sheet, p1, p2)
}

// IsColumnRange делегирует проверку столбцового диапазона.
func (c CellRefRange) IsColumnRange() bool {
	return c.Kind == RangeKindSheet && c.Sheet.IsColumnRange()
}

// HasColRange делегирует проверку попадания столбца.
func (c CellRefRange) HasColRange(col int64) bool {
	return c.Kind == RangeKindSheet && c.Sheet.HasColRange(col)
}

// IsRowRange делегирует проверку строчного диапазона.
func (c CellRefRange) IsRowRange() bool {
	return c.Kind == RangeKindSheet && c.Sheet.IsRowRange()
}

// HasRowRange делегирует проверку попадания строки.
func (c CellRefRange) HasRowRange(row int64) bool {
	return c.Kind == RangeKindSheet && c.Sheet.HasRowRange(row)
}

// IsFinite сообщает, конечен ли диапазон. Табличная область конечна
// всегда, таблица занимает конкретный прямоугольник.
func (c CellRefRange) IsFinite() bool {
	if c.Kind == RangeKindTable {
		return true
	}
	return c.Sheet.IsFinite()
}

// ToRect возвращает конечный диапазон прямоугольником.
func (c CellRefRange) ToRect(ctx *Context) (grid.Rect, bool) {
	if c.Kind == RangeKindTable {
		return c.Table.ToLargestRect(ctx)
	}
	return c.Sheet.ToRect()
}

// ToRectUnbounded возвращает прямоугольник с бесконечными осями,
// замещёнными grid.Unbounded.
func (c CellRefRange) ToRectUnbounded(ctx *Context) (grid.Rect, bool) {
	if c.Kind == RangeKindTable {
		return c.Table.ToLargestRect(ctx)
	}
	return c.Sheet.ToRectUnbounded(), true
}

// SelectedColumnsFinite возвращает конечный список столбцов диапазона.
func (c CellRefRange) SelectedColumnsFinite(ctx *Context) []int64 {
	if c.Kind == RangeKindTable {
		return c.Table.SelectedColsFinite(ctx)
	}
	return c.Sheet.SelectedColumnsFinite()
}

// SelectedColumns возвращает столбцы диапазона в окне [from, to].
func (c CellRefRange) SelectedColumns(from, to int64, ctx *Context) []int64 {
	if c.Kind == RangeKindTable {
		return c.Table.SelectedCols(from, to, ctx)
	}
	return c.Sheet.SelectedColumns(from, to)
}

// SelectedRowsFinite возвращает конечный список строк диапазона.
func (c CellRefRange) SelectedRowsFinite(ctx *Context) []int64 {
	if c.Kind == RangeKindTable {
		return c.Table.SelectedRowsFinite(ctx)
	}
	return c.Sheet.SelectedRowsFinite()
}

// SelectedRows возвращает строки диапазона в окне [from, to].
func (c CellRefRange) SelectedRows(from, to int64, ctx *Context) []int64 {
	if c.Kind == RangeKindTable {
		return c.Table.SelectedRows(from, to, ctx)
	}
	return c.Sheet.SelectedRows(from, to)
}

// TryToPos возвращает позицию одиночной ячейки.
func (c CellRefRange) TryToPos(ctx *Context) (grid.Pos, bool) {
	if c.Kind == RangeKindTable {
		return c.Table.TryToPos(ctx)
	}
	return c.Sheet.TryToPos()
}

// IsSingleCell сообщает, состоит ли диапазон из одной ячейки.
func (c CellRefRange) IsSingleCell(ctx *Context) bool {
	if c.Kind == RangeKindTable {
		return c.Table.IsSingleCell(ctx)
	}
	return c.Sheet.IsSingleCell()
}

// TableColumnSelection возвращает индексы выбранных столбцов таблицы
// tableName, если ссылка указывает на неё.
func (c CellRefRange) TableColumnSelection(tableName string, ctx *Context) ([]int64, bool) {
	if c.Kind != RangeKindTable {
		return nil, false
	}
	return c.Table.TableColumnSelection(tableName, ctx)
}
