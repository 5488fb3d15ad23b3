package a1

import "gridref/internal/grid"

// MightIntersectRect быстрая проверка пересечения с прямоугольником.
// Для координатной части допускает ложные срабатывания, табличная
// ссылка разрешается через контекст точно.
func (c CellRefRange) MightIntersectRect(rect grid.Rect, ctx *Context) bool {
	if c.Kind == RangeKindTable {
		return c.Table.IntersectsRect(rect, ctx)
	}
	return c.Sheet.MightIntersectRect(rect)
}

// MightContainPos быстрая проверка попадания позиции.
func (c CellRefRange) MightContainPos(p grid.Pos, ctx *Context) bool {
	if c.Kind == RangeKindTable {
		return c.Table.ContainsPos(p, ctx)
	}
	return c.Sheet.MightContainPos(p)
}

// ContainsPos точная проверка попадания позиции в диапазон.
func (c CellRefRange) ContainsPos(p grid.Pos, ctx *Context) bool {
	if c.Kind == RangeKindTable {
		return c.Table.ContainsPos(p, ctx)
	}
	return c.Sheet.ContainsPos(p)
}
