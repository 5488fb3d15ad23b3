// Package testkit holds shared builders and invariant batteries used
// by tests across packages.
package testkit

import (
	"gridref/internal/a1"
	"gridref/internal/grid"
)

// Sheet1 и Sheet2 — идентификаторы листов стандартного контекста.
const (
	Sheet1 grid.SheetID = "sheet-1"
	Sheet2 grid.SheetID = "sheet-2"
)

// Table собирает запись таблицы с включёнными именем и заголовками.
// all == nil означает, что скрытых колонок нет.
func Table(name string, visible, all []string, bounds grid.Rect) *a1.TableMapEntry {
	if all == nil {
		all = visible
	}
	return &a1.TableMapEntry{
		SheetID:        Sheet1,
		TableName:      name,
		VisibleColumns: visible,
		AllColumns:     all,
		Bounds:         bounds,
		ShowName:       true,
		ShowColumns:    true,
		Language:       a1.LanguageImport,
	}
}

// Context строит контекст с двумя листами и переданными таблицами.
func Context(tables ...*a1.TableMapEntry) *a1.Context {
	sheets := []a1.Sheet{
		{Name: "Sheet1", ID: Sheet1},
		{Name: "Second", ID: Sheet2},
	}
	return a1.NewContext(sheets, tables)
}

// DefaultContext — контекст с одной таблицей "Table1" (колонки A, B, C,
// имя и заголовки показаны, данные в строках 3..5 листа).
func DefaultContext() *a1.Context {
	return Context(Table(
		"Table1",
		[]string{"A", "B", "C"},
		nil,
		grid.NewRect(1, 1, 3, 5),
	))
}
