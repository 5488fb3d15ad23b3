package a1

import "testing"

func sheetRange(t *testing.T, s string) CellRefRange {
	t.Helper()
	return NewSheetRange(mustBounds(t, s))
}

func checkTableRef(t *testing.T, ctx *Context, s string, want TableRef) {
	t.Helper()
	got, ok := sheetRange(t, s).CheckForTableRef(sheet1, ctx)
	if !ok {
		t.Fatalf("%q: ссылка не распозналась", s)
	}
	if got != NewTableRange(want) {
		t.Fatalf("%q: получили %+v, ожидали %+v", s, got.Table, want)
	}
}

func checkNoTableRef(t *testing.T, ctx *Context, s string) {
	t.Helper()
	if _, ok := sheetRange(t, s).CheckForTableRef(sheet1, ctx); ok {
		t.Fatalf("%q: не должно распознаваться", s)
	}
}

func TestCheckForTableRefFullTable(t *testing.T) {
	ctx := testContext(testTable("Table1", []string{"col1", "col2", "col3"}, nil, mustRect(t, "A1:C4")))

	full := TableRef{TableName: "Table1", Data: true, Headers: true}
	checkTableRef(t, ctx, "A1:C4", full)
	// Данные вместе со строкой заголовков, без строки имени.
	checkTableRef(t, ctx, "A2:C4", full)
}

func TestCheckForTableRefRows(t *testing.T) {
	ctx := testContext(testTable("Table1", []string{"col1", "col2", "col3"}, nil, mustRect(t, "A1:C3")))

	// Только строки данных.
	checkTableRef(t, ctx, "A3:C3", NewTableRef("Table1"))
	// Только строка заголовков записывается неотличимо от данных.
	checkTableRef(t, ctx, "A2:C2", NewTableRef("Table1"))

	col2 := NewTableRef("Table1")
	col2.ColRange = NewCol("col2")
	checkTableRef(t, ctx, "B2", col2)

	cols12 := NewTableRef("Table1")
	cols12.ColRange = NewColRange("col1", "col2")
	checkTableRef(t, ctx, "A3:B3", cols12)
}

func TestCheckForTableRefReversedRange(t *testing.T) {
	ctx := testContext(testTable("Table1", []string{"col1", "col2", "col3"}, nil, mustRect(t, "D5:F10")))

	want := NewTableRef("Table1")
	want.ColRange = NewCol("col2")
	checkTableRef(t, ctx, "E10:E7", want)
}

func TestCheckForTableRefNameCell(t *testing.T) {
	ctx := testContext(testTable("Table1", []string{"col1", "col2", "col3"}, nil, mustRect(t, "A1:C4")))

	checkTableRef(t, ctx, "B1", NewTableRef("Table1"))
}

func TestCheckForTableRefColumnSpan(t *testing.T) {
	ctx := testContext(testTable("Table1", []string{"col1", "col2", "col3", "col4"}, nil, mustRect(t, "A1:D5")))

	want := NewTableRef("Table1")
	want.ColRange = NewColRange("col2", "col3")
	checkTableRef(t, ctx, "B3:C5", want)
}

func TestCheckForTableRefHiddenUI(t *testing.T) {
	table := testTable("Table1", []string{"col1", "col2"}, nil, mustRect(t, "A1:B3"))
	table.ShowName = false
	table.ShowColumns = false
	ctx := testContext(table)

	checkNoTableRef(t, ctx, "A2:B3")
	checkNoTableRef(t, ctx, "A1:B1")
	// Вся таблица без служебных строк совпадает с областью данных.
	checkTableRef(t, ctx, "A1:B3", NewTableRef("Table1"))
}

func TestCheckForTableRefNameOnly(t *testing.T) {
	table := testTable("Table1", []string{"col1", "col2"}, nil, mustRect(t, "A1:B3"))
	table.ShowColumns = false
	ctx := testContext(table)

	checkNoTableRef(t, ctx, "A1:B1")
}

func TestCheckForTableRefFormula(t *testing.T) {
	table := testTable("Table1", []string{"col1"}, nil, mustRect(t, "A1:A4"))
	table.Language = LanguageFormula
	ctx := testContext(table)

	checkNoTableRef(t, ctx, "A1:A4")
}

func TestCheckForTableRefHTMLImage(t *testing.T) {
	table := testTable("chart", []string{"col1"}, nil, mustRect(t, "B2:D5"))
	table.IsHTMLImage = true
	ctx := testContext(table)

	checkTableRef(t, ctx, "C3:D4", NewTableRef("chart"))
}

func TestCheckForTableRefRejects(t *testing.T) {
	ctx := testContext(testTable("Table1", []string{"col1", "col2"}, nil, mustRect(t, "A1:B4")))

	// Бесконечные диапазоны не повышаются.
	checkNoTableRef(t, ctx, "A2:")
	// Частичный охват строк тоже.
	checkNoTableRef(t, ctx, "A3:B3")
	// Табличная ссылка уже табличная.
	if _, ok := NewTableRange(NewTableRef("Table1")).CheckForTableRef(sheet1, ctx); ok {
		t.Fatal("табличная ссылка не распознаётся повторно")
	}
}
