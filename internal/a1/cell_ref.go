package a1

import (
	"strings"

	"gridref/internal/grid"
)

// SheetCellRefRange диапазон, привязанный к конкретному листу книги.
type SheetCellRefRange struct {
	SheetID grid.SheetID
	Cells   CellRefRange
}

// ParseSheetCellRefRange разбирает ссылку с необязательным префиксом
// листа: "Sheet2!A1:B2", "'Отчёт за год'!C3", "Table1[Col1]". Без
// префикса диапазон привязывается к листу def. Табличная ссылка всегда
// оказывается на листе своей таблицы, даже при чужом префиксе.
func ParseSheetCellRefRange(s string, def grid.SheetID, ctx *Context) (SheetCellRefRange, error) {
	rest, sheetID, err := parseOptionalSheetID(s, def, ctx)
	if err != nil {
		return SheetCellRefRange{}, err
	}
	cells, err := ParseCellRefRange(rest, ctx)
	if err != nil {
		return SheetCellRefRange{}, err
	}
	if cells.Kind == RangeKindTable {
		if table := ctx.TryTable(cells.Table.TableName); table != nil {
			sheetID = table.SheetID
		}
	}
	return SheetCellRefRange{SheetID: sheetID, Cells: cells}, nil
}

// A1String печатает ссылку. Префикс листа появляется, только когда
// лист отличается от def; пустой def всегда печатает без префикса.
// Неизвестный идентификатор заменяется на UnknownSheetName.
func (r SheetCellRefRange) A1String(def grid.SheetID, ctx *Context) string {
	if def == "" || def == r.SheetID {
		return r.Cells.String()
	}
	name, ok := ctx.TrySheetName(r.SheetID)
	if !ok {
		name = UnknownSheetName
	}
	var sb strings.Builder
	sb.WriteString(QuoteSheetName(name))
	sb.WriteByte('!')
	r.Cells.write(&sb)
	return sb.String()
}
