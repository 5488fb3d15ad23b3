package workbook

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gridref/internal/a1"
	"gridref/internal/grid"
	"gridref/internal/testkit"
)

func writeWorkbook(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workbook.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const sampleWorkbook = `
name = "Demo"
default_sheet = "Second"

[[sheet]]
id = "s1"
name = "Sheet1"

[[sheet]]
id = "s2"
name = "Second"

[[table]]
name = "Table1"
sheet = "Sheet1"
columns = ["A", "B", "C"]
hidden = ["B"]

[table.bounds]
x = 2
y = 3
w = 3
h = 6

[[table]]
name = "Chart1"
sheet = "Sheet1"
html_image = true
show_name = false
show_columns = false
language = "python"

[table.bounds]
x = 10
y = 1
w = 4
h = 4
`

func TestLoadSample(t *testing.T) {
	wb, err := Load(writeWorkbook(t, sampleWorkbook))
	if err != nil {
		t.Fatal(err)
	}
	if wb.Name != "Demo" {
		t.Errorf("Name = %q", wb.Name)
	}
	if wb.DefaultSheet != grid.SheetID("s2") {
		t.Errorf("DefaultSheet = %q", wb.DefaultSheet)
	}
	if id, ok := wb.Context.TrySheetID("sheet1"); !ok || id != "s1" {
		t.Errorf("TrySheetID(sheet1) = %q, %v", id, ok)
	}

	table := wb.Context.TryTable("table1")
	if table == nil {
		t.Fatal("Table1 не найдена")
	}
	if !table.ShowName || !table.ShowColumns {
		t.Error("по умолчанию имя и заголовки должны быть показаны")
	}
	if len(table.VisibleColumns) != 2 || table.VisibleColumns[1] != "C" {
		t.Errorf("VisibleColumns = %v", table.VisibleColumns)
	}
	if len(table.AllColumns) != 3 {
		t.Errorf("AllColumns = %v", table.AllColumns)
	}
	if want := grid.NewRect(2, 3, 4, 8); table.Bounds != want {
		t.Errorf("Bounds = %v, ожидалось %v", table.Bounds, want)
	}

	chart := wb.Context.TryTable("Chart1")
	if chart == nil {
		t.Fatal("Chart1 не найдена")
	}
	if chart.ShowName || chart.ShowColumns {
		t.Error("явный false должен выключать имя и заголовки")
	}
	if !chart.IsHTMLImage || chart.Language != a1.LanguagePython {
		t.Errorf("flags: html=%v lang=%v", chart.IsHTMLImage, chart.Language)
	}
}

func TestLoadedContextParsesSelections(t *testing.T) {
	wb, err := Load(writeWorkbook(t, sampleWorkbook))
	if err != nil {
		t.Fatal(err)
	}
	// контекст из книги должен давать стабильный разбор ссылок
	for _, input := range []string{
		"A1:B2",
		"Sheet1!$C$3",
		"Table1",
		"Table1[A]",
		"Sheet1!D:D",
		"Second!2:4",
	} {
		sel, err := a1.ParseSelection(input, wb.DefaultSheet, wb.Context)
		if err != nil {
			t.Fatalf("ParseSelection(%q): %v", input, err)
		}
		if err := testkit.CheckSelectionInvariants(sel, wb.DefaultSheet, wb.Context); err != nil {
			t.Errorf("%q: %v", input, err)
		}
	}
	// выборка не может охватывать два листа сразу
	if _, err := a1.ParseSelection("Sheet1!D:D,Second!2:4", wb.DefaultSheet, wb.Context); !errors.Is(err, a1.ErrTooManySheets) {
		t.Errorf("смешанные листы: err = %v, ожидался ErrTooManySheets", err)
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"no sheets", `name = "x"`, "missing [[sheet]]"},
		{
			"dup sheet name",
			"[[sheet]]\nid = \"a\"\nname = \"S\"\n[[sheet]]\nid = \"b\"\nname = \"s\"\n",
			"duplicate sheet name",
		},
		{
			"table on unknown sheet",
			"[[sheet]]\nid = \"a\"\nname = \"S\"\n[[table]]\nname = \"T\"\nsheet = \"Nope\"\ncolumns = [\"A\"]\n[table.bounds]\nx = 1\ny = 1\nw = 1\nh = 1\n",
			"is not declared",
		},
		{
			"bad bounds",
			"[[sheet]]\nid = \"a\"\nname = \"S\"\n[[table]]\nname = \"T\"\nsheet = \"S\"\ncolumns = [\"A\"]\n[table.bounds]\nx = 0\ny = 1\nw = 1\nh = 1\n",
			"bounds must be positive",
		},
		{
			"hidden not in columns",
			"[[sheet]]\nid = \"a\"\nname = \"S\"\n[[table]]\nname = \"T\"\nsheet = \"S\"\ncolumns = [\"A\"]\nhidden = [\"B\"]\n[table.bounds]\nx = 1\ny = 1\nw = 1\nh = 1\n",
			"is not in columns",
		},
		{
			"unknown default sheet",
			"default_sheet = \"Nope\"\n[[sheet]]\nid = \"a\"\nname = \"S\"\n",
			"default_sheet",
		},
		{
			"unknown language",
			"[[sheet]]\nid = \"a\"\nname = \"S\"\n[[table]]\nname = \"T\"\nsheet = \"S\"\ncolumns = [\"A\"]\nlanguage = \"cobol\"\n[table.bounds]\nx = 1\ny = 1\nw = 1\nh = 1\n",
			"unknown language",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeWorkbook(t, tc.body))
			if err == nil {
				t.Fatal("ожидалась ошибка")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("ошибка %q не содержит %q", err, tc.want)
			}
		})
	}
}

func TestDefaultWorkbook(t *testing.T) {
	wb := Default()
	if wb.Context.SheetCount() != 1 {
		t.Fatalf("SheetCount = %d", wb.Context.SheetCount())
	}
	if _, ok := wb.Context.TrySheetName(wb.DefaultSheet); !ok {
		t.Fatal("лист по умолчанию не в контексте")
	}
	// конвейер: книга по умолчанию пригодна для разбора ссылок
	if _, err := a1.ParseSelection("A1:B2,Sheet1!C3", wb.DefaultSheet, wb.Context); err != nil {
		t.Fatalf("ParseSelection: %v", err)
	}
}
