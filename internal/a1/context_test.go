package a1

import (
	"testing"

	"gridref/internal/grid"
)

func TestContextSheetLookup(t *testing.T) {
	ctx := testContext()

	cases := []struct {
		name string
		want grid.SheetID
		ok   bool
	}{
		{"Sheet1", sheet1, true},
		{"sheet1", sheet1, true},
		{"SHEET1", sheet1, true},
		{"Second", sheet2, true},
		{"Third", "", false},
	}
	for _, tc := range cases {
		got, ok := ctx.TrySheetID(tc.name)
		if got != tc.want || ok != tc.ok {
			t.Errorf("TrySheetID(%q) = (%q, %v), ожидалось (%q, %v)", tc.name, got, ok, tc.want, tc.ok)
		}
	}

	if name, ok := ctx.TrySheetName(sheet2); !ok || name != "Second" {
		t.Errorf("TrySheetName(sheet2) = (%q, %v), ожидалось (Second, true)", name, ok)
	}
	if _, ok := ctx.TrySheetName("нет такого"); ok {
		t.Error("TrySheetName по неизвестному id должен падать")
	}
	if got := ctx.SheetCount(); got != 2 {
		t.Errorf("SheetCount = %d, ожидалось 2", got)
	}
}

func TestContextTryTable(t *testing.T) {
	table := testTable("Расходы", []string{"Месяц", "Сумма"}, nil, mustRect(t, "A1:B5"))
	ctx := testContext(table)

	if got := ctx.TryTable("Расходы"); got != table {
		t.Error("таблица не найдена по точному имени")
	}
	// регистр не важен, в том числе для кириллицы
	if got := ctx.TryTable("РАСХОДЫ"); got != table {
		t.Error("таблица не найдена без учёта регистра")
	}
	if got := ctx.TryTable("Доходы"); got != nil {
		t.Errorf("по чужому имени вернулось %v", got)
	}
}

func TestContextTableFromPos(t *testing.T) {
	first := testTable("First", []string{"A"}, nil, mustRect(t, "A1:B4"))
	second := testTable("Second", []string{"A"}, nil, mustRect(t, "D1:E4"))
	ctx := testContext(first, second)

	if got := ctx.TableFromPos(grid.NewSheetPos(1, 1, sheet1)); got != first {
		t.Error("позиция внутри First отдала не ту таблицу")
	}
	if got := ctx.TableFromPos(grid.NewSheetPos(4, 2, sheet1)); got != second {
		t.Error("позиция внутри Second отдала не ту таблицу")
	}
	if got := ctx.TableFromPos(grid.NewSheetPos(3, 1, sheet1)); got != nil {
		t.Error("зазор между таблицами не должен ничему принадлежать")
	}
	if got := ctx.TableFromPos(grid.NewSheetPos(1, 1, sheet2)); got != nil {
		t.Error("другой лист не должен ничему принадлежать")
	}
}

func TestContextTablesInRect(t *testing.T) {
	first := testTable("First", []string{"A"}, nil, mustRect(t, "A1:B4"))
	second := testTable("Second", []string{"A"}, nil, mustRect(t, "D1:E4"))
	ctx := testContext(first, second)

	got := ctx.TablesInRect(sheet1, mustRect(t, "B2:D3"))
	if len(got) != 2 || got[0] != first || got[1] != second {
		t.Errorf("TablesInRect зацепил %d таблиц, ожидалось обе", len(got))
	}
	if got := ctx.TablesInRect(sheet1, mustRect(t, "G1:H4")); len(got) != 0 {
		t.Errorf("пустая область вернула %d таблиц", len(got))
	}
	if got := ctx.TablesInRect(sheet2, mustRect(t, "A1:E4")); len(got) != 0 {
		t.Errorf("чужой лист вернул %d таблиц", len(got))
	}
}
