package a1

import (
	"testing"

	"gridref/internal/grid"
)

// Общие строительные блоки для тестов пакета.

const (
	sheet1 grid.SheetID = "sheet-1"
	sheet2 grid.SheetID = "sheet-2"
)

func mustRect(t *testing.T, s string) grid.Rect {
	t.Helper()
	r, ok := mustBounds(t, s).ToRect()
	if !ok {
		t.Fatalf("%q не конечный прямоугольник", s)
	}
	return r
}

// testTable собирает запись таблицы с включёнными именем и заголовками.
// all == nil означает, что скрытых колонок нет.
func testTable(name string, visible, all []string, bounds grid.Rect) *TableMapEntry {
	if all == nil {
		all = visible
	}
	return &TableMapEntry{
		SheetID:        sheet1,
		TableName:      name,
		VisibleColumns: visible,
		AllColumns:     all,
		Bounds:         bounds,
		ShowName:       true,
		ShowColumns:    true,
		Language:       LanguageImport,
	}
}

func testContext(tables ...*TableMapEntry) *Context {
	sheets := []Sheet{
		{Name: "Sheet1", ID: sheet1},
		{Name: "Second", ID: sheet2},
	}
	return NewContext(sheets, tables)
}
