package a1

import (
	"slices"
	"testing"

	"gridref/internal/grid"
)

func queryCtx(t *testing.T) *Context {
	t.Helper()
	return testContext(testTable("test_table", []string{"A", "B", "C"}, nil, mustRect(t, "A1:C3")))
}

func queryRef(colRange ColRange) TableRef {
	return TableRef{TableName: "test_table", Data: true, ColRange: colRange}
}

func TestTableSelectedCols(t *testing.T) {
	ctx := queryCtx(t)

	cases := []struct {
		ref      TableRef
		from, to int64
		want     []int64
	}{
		{queryRef(NewColAll()), 1, grid.Unbounded, []int64{1, 2, 3}},
		{queryRef(NewCol("B")), 1, 3, []int64{2}},
		{queryRef(NewColRange("A", "B")), 1, 10, []int64{1, 2}},
		{queryRef(NewColRange("A", "B")), 2, 10, []int64{2}},
		{queryRef(NewColToEnd("B")), 1, 10, []int64{2, 3}},
		{queryRef(NewCol("Zed")), 1, 10, nil},
	}
	for _, tc := range cases {
		got := tc.ref.SelectedCols(tc.from, tc.to, ctx)
		if !slices.Equal(got, tc.want) {
			t.Fatalf("%v в [%d, %d]: получили %v, ожидали %v", tc.ref, tc.from, tc.to, got, tc.want)
		}
	}
}

func TestTableSelectedColsHiddenColumn(t *testing.T) {
	ctx := testContext(testTable("test_table", []string{"A", "C"}, []string{"A", "B", "C"}, mustRect(t, "A1:C3")))

	// Скрытый B сдвигает C на вторую видимую позицию.
	got := queryRef(NewCol("C")).SelectedCols(1, 10, ctx)
	if !slices.Equal(got, []int64{2}) {
		t.Fatalf("получили %v, ожидали [2]", got)
	}
}

func TestTableSelectedRows(t *testing.T) {
	ctx := queryCtx(t)

	got := queryRef(NewColAll()).SelectedRows(1, 5, ctx)
	if !slices.Equal(got, []int64{3}) {
		t.Fatalf("строки данных: получили %v, ожидали [3]", got)
	}

	got = queryRef(NewColAll()).SelectedRows(10, 15, ctx)
	if len(got) != 0 {
		t.Fatalf("окно мимо таблицы: получили %v", got)
	}

	headers := TableRef{TableName: "test_table", Headers: true}
	got = headers.SelectedRows(1, 5, ctx)
	if !slices.Equal(got, []int64{2}) {
		t.Fatalf("заголовки: получили %v, ожидали [2]", got)
	}
	// Строка заголовков возвращается без оглядки на окно.
	got = headers.SelectedRows(10, 15, ctx)
	if !slices.Equal(got, []int64{2}) {
		t.Fatalf("заголовки вне окна: получили %v, ожидали [2]", got)
	}
}

func TestTableIsMultiCursor(t *testing.T) {
	ctx := testContext(testTable("t2", []string{"A", "B"}, nil, mustRect(t, "A1:B3")))

	ref := TableRef{TableName: "t2", Data: true, ColRange: NewCol("A")}
	if ref.IsMultiCursor(ctx) {
		t.Fatal("один столбец данных из одной строки не мультикурсор")
	}

	ref.ColRange = NewColRange("A", "B")
	if !ref.IsMultiCursor(ctx) {
		t.Fatal("диапазон столбцов мультикурсор")
	}

	ref = TableRef{TableName: "t2", Data: true, Headers: true, ColRange: NewCol("A")}
	if !ref.IsMultiCursor(ctx) {
		t.Fatal("данные с заголовком мультикурсор")
	}

	ref = TableRef{TableName: "t2", Headers: true, ColRange: NewCol("A")}
	if ref.IsMultiCursor(ctx) {
		t.Fatal("один заголовок не мультикурсор")
	}

	ref = TableRef{TableName: "t2", Data: true}
	if !ref.IsMultiCursor(ctx) {
		t.Fatal("вся таблица шире одной ячейки")
	}
}

func TestTableToLargestRect(t *testing.T) {
	ctx := queryCtx(t)

	cases := []struct {
		ref  TableRef
		want string
	}{
		{queryRef(NewColRange("A", "B")), "A2:B3"},
		{queryRef(NewColToEnd("B")), "B2:C3"},
		{queryRef(NewCol("B")), "B2:B3"},
	}
	for _, tc := range cases {
		rect, ok := tc.ref.ToLargestRect(ctx)
		if !ok {
			t.Fatalf("%v: прямоугольник не получился", tc.ref)
		}
		if want := mustRect(t, tc.want); rect != want {
			t.Fatalf("%v: получили %v, ожидали %v", tc.ref, rect, want)
		}
	}

	if _, ok := queryRef(NewCol("Zed")).ToLargestRect(ctx); ok {
		t.Fatal("несуществующий столбец не должен давать прямоугольник")
	}
}

func TestTableToLargestRectHiddenUI(t *testing.T) {
	table := testTable("test_table", []string{"A", "B", "C"}, nil, mustRect(t, "A1:C3"))
	table.ShowName = false
	table.ShowColumns = false
	ctx := testContext(table)

	rect, ok := queryRef(NewColAll()).ToLargestRect(ctx)
	if !ok {
		t.Fatal("прямоугольник не получился")
	}
	if want := mustRect(t, "A1:C3"); rect != want {
		t.Fatalf("получили %v, ожидали %v", rect, want)
	}
}

func TestTableCursorPosFromLastRange(t *testing.T) {
	ctx := queryCtx(t)

	ref := queryRef(NewCol("B"))
	if got := ref.CursorPosFromLastRange(ctx); got != (grid.Pos{X: 1, Y: 2}) {
		t.Fatalf("получили %v, ожидали A2", got)
	}

	ref.Headers = true
	if got := ref.CursorPosFromLastRange(ctx); got != (grid.Pos{X: 1, Y: 1}) {
		t.Fatalf("с заголовками получили %v, ожидали A1", got)
	}

	missing := TableRef{TableName: "nope", Data: true}
	if got := missing.CursorPosFromLastRange(ctx); got != (grid.Pos{X: 1, Y: 1}) {
		t.Fatalf("без таблицы получили %v, ожидали A1", got)
	}
}

func TestTableCursorPosHiddenUI(t *testing.T) {
	table := testTable("test_table", []string{"A", "B", "C"}, nil, mustRect(t, "A1:C3"))
	table.ShowName = false
	table.ShowColumns = false
	ctx := testContext(table)

	if got := queryRef(NewCol("B")).CursorPosFromLastRange(ctx); got != (grid.Pos{X: 1, Y: 1}) {
		t.Fatalf("получили %v, ожидали A1", got)
	}
}

func TestTableIsTwoDimensional(t *testing.T) {
	cases := []struct {
		colRange ColRange
		want     bool
	}{
		{NewColAll(), true},
		{NewCol("A"), false},
		{NewColRange("A", "A"), false},
		{NewColRange("A", "B"), true},
		{NewColToEnd("B"), true},
	}
	for _, tc := range cases {
		if got := queryRef(tc.colRange).IsTwoDimensional(); got != tc.want {
			t.Fatalf("%v: получили %v, ожидали %v", tc.colRange, got, tc.want)
		}
	}
}

func TestTableTryToPos(t *testing.T) {
	ctx := testContext(testTable("one", []string{"A"}, nil, mustRect(t, "A1:A3")))

	ref := TableRef{TableName: "one", Data: true, ColRange: NewCol("A")}
	pos, ok := ref.TryToPos(ctx)
	if !ok || pos != (grid.Pos{X: 1, Y: 3}) {
		t.Fatalf("получили %v, %v, ожидали A3", pos, ok)
	}
	if !ref.IsSingleCell(ctx) {
		t.Fatal("единственная строка данных одна ячейка")
	}

	wide := queryRef(NewColAll())
	if _, ok := wide.TryToPos(queryCtx(t)); ok {
		t.Fatal("вся таблица не одна ячейка")
	}
}

func TestTableContainsPos(t *testing.T) {
	ctx := queryCtx(t)

	ref := queryRef(NewColAll())
	if !ref.ContainsPos(grid.Pos{X: 1, Y: 3}, ctx) {
		t.Fatal("строка данных должна входить")
	}
	if ref.ContainsPos(grid.Pos{X: 1, Y: 1}, ctx) {
		t.Fatal("строка имени не входит в строки данных")
	}
}

func TestTableIntersectsRect(t *testing.T) {
	ctx := queryCtx(t)

	ref := queryRef(NewCol("B"))
	if !ref.IntersectsRect(mustRect(t, "A1:B2"), ctx) {
		t.Fatal("B2:B3 пересекает A1:B2")
	}
	if ref.IntersectsRect(mustRect(t, "C1:C3"), ctx) {
		t.Fatal("B2:B3 не пересекает C1:C3")
	}
}

func TestTableColumnSelectionQuery(t *testing.T) {
	ctx := queryCtx(t)

	cases := []struct {
		colRange ColRange
		want     []int64
	}{
		{NewColAll(), []int64{0, 1, 2}},
		{NewCol("B"), []int64{1}},
		{NewColRange("A", "B"), []int64{0, 1}},
		{NewColRange("B", "A"), []int64{0, 1}},
		{NewColToEnd("B"), []int64{1, 2}},
	}
	for _, tc := range cases {
		got, ok := queryRef(tc.colRange).TableColumnSelection("test_table", ctx)
		if !ok {
			t.Fatalf("%v: выбор не получился", tc.colRange)
		}
		if !slices.Equal(got, tc.want) {
			t.Fatalf("%v: получили %v, ожидали %v", tc.colRange, got, tc.want)
		}
	}

	if _, ok := queryRef(NewColAll()).TableColumnSelection("other", ctx); ok {
		t.Fatal("чужое имя таблицы не даёт выбора")
	}

	hidden := testTable("test_table", []string{"A", "B", "C"}, nil, mustRect(t, "A1:C3"))
	hidden.ShowColumns = false
	if _, ok := queryRef(NewColAll()).TableColumnSelection("test_table", testContext(hidden)); ok {
		t.Fatal("без строки заголовков выбора столбцов нет")
	}
}
