package a1

import (
	"testing"

	"gridref/internal/grid"
)

func TestTryColIndex(t *testing.T) {
	entry := testTable("t", []string{"Col1", "Col2", "Col3"}, nil, mustRect(t, "A1:D4"))

	cases := []struct {
		col  string
		want int64
		ok   bool
	}{
		{"Col1", 0, true},
		{"col1", 0, true},
		{"COL2", 1, true},
		{"Col3", 2, true},
		{"Col4", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := entry.TryColIndex(tc.col)
		if got != tc.want || ok != tc.ok {
			t.Errorf("TryColIndex(%q) = (%d, %v), ожидалось (%d, %v)", tc.col, got, ok, tc.want, tc.ok)
		}
	}
}

func TestTryColClosest(t *testing.T) {
	entry := testTable("t",
		[]string{"Col1", "Col3", "Col5"},
		[]string{"Col1", "Col2", "Col3", "Col4", "Col5"},
		mustRect(t, "A1:D4"))

	cases := []struct {
		col   string
		after bool
		want  int64
		ok    bool
	}{
		// видимые колонки возвращают собственный индекс
		{"Col1", true, 0, true},
		{"Col3", true, 1, true},
		// скрытые уходят к ближайшей видимой в заданную сторону
		{"Col2", true, 1, true},
		{"Col2", false, 0, true},
		{"Col4", true, 2, true},
		{"Col4", false, 1, true},
		{"нет такой", true, 0, false},
	}
	for _, tc := range cases {
		got, ok := entry.TryColClosest(tc.col, tc.after)
		if got != tc.want || ok != tc.ok {
			t.Errorf("TryColClosest(%q, %v) = (%d, %v), ожидалось (%d, %v)",
				tc.col, tc.after, got, ok, tc.want, tc.ok)
		}
	}
}

func TestTryColClosestBoundaries(t *testing.T) {
	// Все колонки после Col2 скрыты: вперёд падаем на последнюю видимую.
	entry := testTable("t",
		[]string{"Col1", "Col2"},
		[]string{"Col1", "Col2", "Col3", "Col4"},
		mustRect(t, "A1:D4"))

	if got, ok := entry.TryColClosest("Col4", true); !ok || got != 1 {
		t.Errorf("TryColClosest(Col4, true) = (%d, %v), ожидалось (1, true)", got, ok)
	}

	// Все колонки до Col3 скрыты: назад падаем на первую видимую.
	entry = testTable("t",
		[]string{"Col3", "Col4"},
		[]string{"Col1", "Col2", "Col3", "Col4"},
		mustRect(t, "A1:D4"))

	if got, ok := entry.TryColClosest("Col1", false); !ok || got != 0 {
		t.Errorf("TryColClosest(Col1, false) = (%d, %v), ожидалось (0, true)", got, ok)
	}

	// Видимых колонок нет вообще.
	entry = testTable("t", nil, []string{"Col1"}, mustRect(t, "A1:D4"))
	if _, ok := entry.TryColClosest("Col1", true); ok {
		t.Error("TryColClosest по таблице без видимых колонок должен падать")
	}
}

func TestTryColRange(t *testing.T) {
	entry := testTable("t",
		[]string{"Col1", "Col3", "Col5"},
		[]string{"Col1", "Col2", "Col3", "Col4", "Col5"},
		mustRect(t, "A1:D4"))

	cases := []struct {
		col1, col2 string
		lo, hi     int64
		ok         bool
	}{
		{"Col1", "Col5", 0, 2, true},
		// обе скрыты: сходимся к ближайшим видимым
		{"Col2", "Col4", 1, 1, true},
		// обратный порядок нормализуется
		{"Col5", "Col1", 0, 2, true},
		{"Col1", "нет", 0, 0, false},
	}
	for _, tc := range cases {
		lo, hi, ok := entry.TryColRange(tc.col1, tc.col2)
		if lo != tc.lo || hi != tc.hi || ok != tc.ok {
			t.Errorf("TryColRange(%q, %q) = (%d, %d, %v), ожидалось (%d, %d, %v)",
				tc.col1, tc.col2, lo, hi, ok, tc.lo, tc.hi, tc.ok)
		}
	}
}

func TestTryColRangeToEnd(t *testing.T) {
	entry := testTable("t",
		[]string{"Col1", "Col3", "Col5"},
		[]string{"Col1", "Col2", "Col3", "Col4", "Col5"},
		mustRect(t, "A1:D4"))

	if lo, hi, ok := entry.TryColRangeToEnd("Col3"); !ok || lo != 1 || hi != 2 {
		t.Errorf("TryColRangeToEnd(Col3) = (%d, %d, %v), ожидалось (1, 2, true)", lo, hi, ok)
	}
	if lo, hi, ok := entry.TryColRangeToEnd("Col2"); !ok || lo != 1 || hi != 2 {
		t.Errorf("TryColRangeToEnd(Col2) = (%d, %d, %v), ожидалось (1, 2, true)", lo, hi, ok)
	}
	if _, _, ok := entry.TryColRangeToEnd("нет"); ok {
		t.Error("TryColRangeToEnd по несуществующей колонке должен падать")
	}
}

func TestColumnIndexFromDisplayIndex(t *testing.T) {
	entry := testTable("t",
		[]string{"A", "C", "E"},
		[]string{"A", "B", "C", "D", "E"},
		mustRect(t, "A1:E5"))

	cases := []struct {
		display int
		want    int
		ok      bool
	}{
		{0, 0, true},
		{1, 2, true},
		{2, 4, true},
		{3, 0, false},
		{-1, 0, false},
	}
	for _, tc := range cases {
		got, ok := entry.ColumnIndexFromDisplayIndex(tc.display)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ColumnIndexFromDisplayIndex(%d) = (%d, %v), ожидалось (%d, %v)",
				tc.display, got, ok, tc.want, tc.ok)
		}
	}
}

func TestYAdjustment(t *testing.T) {
	entry := testTable("t", []string{"Col1"}, nil, mustRect(t, "A1:D4"))

	// имя и заголовки показаны
	if got := entry.YAdjustment(false); got != 2 {
		t.Errorf("YAdjustment = %d, ожидалось 2", got)
	}

	entry.ShowName = false
	entry.ShowColumns = false
	if got := entry.YAdjustment(false); got != 0 {
		t.Errorf("YAdjustment без UI = %d, ожидалось 0", got)
	}

	entry.HeaderIsFirstRow = true
	if got := entry.YAdjustment(true); got != -1 {
		t.Errorf("YAdjustment(true) = %d, ожидалось -1", got)
	}
	if got := entry.YAdjustment(false); got != 0 {
		t.Errorf("YAdjustment(false) = %d, ожидалось 0", got)
	}

	// у HTML-таблиц строка заголовков не занимает места
	entry = testTable("t", []string{"Col1"}, nil, mustRect(t, "A1:D4"))
	entry.IsHTMLImage = true
	if got := entry.YAdjustment(false); got != 1 {
		t.Errorf("YAdjustment для HTML = %d, ожидалось 1", got)
	}
}

func TestEntryContains(t *testing.T) {
	entry := testTable("t", []string{"Col1"}, nil, mustRect(t, "A1:C4"))

	if !entry.Contains(grid.NewSheetPos(2, 2, sheet1)) {
		t.Error("позиция внутри границ не найдена")
	}
	if entry.Contains(grid.NewSheetPos(4, 2, sheet1)) {
		t.Error("позиция за границей по X не должна попадать")
	}
	if entry.Contains(grid.NewSheetPos(2, 2, sheet2)) {
		t.Error("чужой лист не должен попадать")
	}
}

func TestToSheetRows(t *testing.T) {
	entry := testTable("t", []string{"Col1"}, nil, mustRect(t, "B3:D7"))
	lo, hi := entry.ToSheetRows()
	if lo != 3 || hi != 7 {
		t.Errorf("ToSheetRows = (%d, %d), ожидалось (3, 7)", lo, hi)
	}
}
