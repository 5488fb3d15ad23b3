package a1

import (
	"errors"
	"testing"
)

func parseCtx(t *testing.T) *Context {
	t.Helper()
	return testContext(testTable("Table1", []string{"A", "B"}, nil, mustRect(t, "A1:B2")))
}

func TestParseTableName(t *testing.T) {
	name, remaining, err := parseTableName("Table1[Column 1]")
	if err != nil {
		t.Fatalf("parseTableName: %v", err)
	}
	if name != "Table1" || remaining != "Column 1" {
		t.Fatalf("получили %q и %q", name, remaining)
	}

	if _, _, err := parseTableName("Ta!ble"); !errors.Is(err, ErrInvalidTableRef) {
		t.Fatalf("ожидали ErrInvalidTableRef, получили %v", err)
	}
}

func TestParseTableRefBareName(t *testing.T) {
	ctx := parseCtx(t)

	ref, err := ParseTableRef("Table1", ctx)
	if err != nil {
		t.Fatalf("разбор: %v", err)
	}
	want := NewTableRef("Table1")
	if ref != want {
		t.Fatalf("получили %+v, ожидали %+v", ref, want)
	}

	// Имя таблицы сверяется без учёта регистра и канонизируется.
	ref, err = ParseTableRef("table1", ctx)
	if err != nil {
		t.Fatalf("разбор: %v", err)
	}
	if ref.TableName != "Table1" {
		t.Fatalf("имя не канонизировано: %q", ref.TableName)
	}

	if _, err := ParseTableRef("Table2", ctx); !errors.Is(err, ErrUnknownTable) {
		t.Fatalf("ожидали ErrUnknownTable, получили %v", err)
	}
}

func TestParseTableRefColumn(t *testing.T) {
	ctx := testContext(testTable("Table1", []string{"Column 1", "Column 2", "Column 3", "Column 4"}, nil, mustRect(t, "A1:B2")))

	ref, err := ParseTableRef("Table1[Column 1]", ctx)
	if err != nil {
		t.Fatalf("разбор: %v", err)
	}
	if ref.ColRange != NewCol("Column 1") || !ref.Data || ref.Headers {
		t.Fatalf("получили %+v", ref)
	}

	// Имя столбца тоже канонизируется.
	ref, err = ParseTableRef("Table1[column 2]", ctx)
	if err != nil {
		t.Fatalf("разбор: %v", err)
	}
	if ref.ColRange != NewCol("Column 2") {
		t.Fatalf("получили %+v", ref.ColRange)
	}

	if _, err := ParseTableRef("Table1[Z]", ctx); !errors.Is(err, ErrUnknownColumn) {
		t.Fatalf("ожидали ErrUnknownColumn, получили %v", err)
	}
	if _, err := ParseTableRef("Table1[[Column 1],[Column 3]]", ctx); !errors.Is(err, ErrInvalidTableRef) {
		t.Fatalf("ожидали ErrInvalidTableRef на второй столбец, получили %v", err)
	}
}

func TestParseTableRefColumnRanges(t *testing.T) {
	ctx := parseCtx(t)

	ref, err := ParseTableRef("Table1[[A]:[B]]", ctx)
	if err != nil {
		t.Fatalf("разбор: %v", err)
	}
	if ref.ColRange != NewColRange("A", "B") {
		t.Fatalf("получили %+v", ref.ColRange)
	}

	ref, err = ParseTableRef("Table1[[A]:]", ctx)
	if err != nil {
		t.Fatalf("разбор: %v", err)
	}
	if ref.ColRange != NewColToEnd("A") {
		t.Fatalf("получили %+v", ref.ColRange)
	}
}

func TestParseTableRefHeaders(t *testing.T) {
	ctx := parseCtx(t)

	for _, s := range []string{
		"Table1[[#HEADERS]]",
		"Table1[#HEADERS]",
		"Table1[#headers]",
		"Table1[[#Headers]]",
	} {
		ref, err := ParseTableRef(s, ctx)
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		if ref.Data || !ref.Headers || ref.Totals {
			t.Fatalf("%q: получили %+v", s, ref)
		}
	}
}

func TestParseTableRefAll(t *testing.T) {
	ctx := parseCtx(t)

	ref, err := ParseTableRef("Table1[#ALL]", ctx)
	if err != nil {
		t.Fatalf("разбор: %v", err)
	}
	if !ref.Data || !ref.Headers || !ref.Totals {
		t.Fatalf("получили %+v", ref)
	}
}

func TestParseTableRefCombined(t *testing.T) {
	ctx := parseCtx(t)

	ref, err := ParseTableRef("Table1[[#DATA],[#HEADERS],[A]]", ctx)
	if err != nil {
		t.Fatalf("разбор: %v", err)
	}
	if !ref.Data || !ref.Headers || ref.Totals || ref.ColRange != NewCol("A") {
		t.Fatalf("получили %+v", ref)
	}

	// Явный #DATA после #TOTALS возвращает строки данных.
	ref, err = ParseTableRef("Table1[[#TOTALS],[#DATA]]", ctx)
	if err != nil {
		t.Fatalf("разбор: %v", err)
	}
	if !ref.Data || !ref.Totals || ref.Headers {
		t.Fatalf("получили %+v", ref)
	}
}

func TestParseTableRefThisRow(t *testing.T) {
	ctx := parseCtx(t)

	for _, s := range []string{
		"Table1[[#THIS ROW],[A]]",
		"Table1[@A]",
		"Table1[[@A]]",
	} {
		ref, err := ParseTableRef(s, ctx)
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		if ref.RowRange != RowRangeThisRow || ref.Data || ref.ColRange != NewCol("A") {
			t.Fatalf("%q: получили %+v", s, ref)
		}
	}
}

func TestParseTableRefRejectsRowNumbers(t *testing.T) {
	ctx := parseCtx(t)

	for _, s := range []string{"Table1[#5]", "Table1[#3:7]", "Table1[#LAST]"} {
		if _, err := ParseTableRef(s, ctx); !errors.Is(err, ErrInvalidTableRef) {
			t.Fatalf("%q: ожидали ErrInvalidTableRef, получили %v", s, err)
		}
	}
}

func TestBracketedEntries(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"[column 1]", []string{"column 1"}},
		{"[#data]", []string{"#data"}},
		{"[#12,15],[column 1],[column2]", []string{"#12,15", "column 1", "column2"}},
		{"[#12, 15], [column 1] , [column2]", []string{"#12,15", "column 1", "column2"}},
		{"[#ALL],[column 1]:[column2]", []string{"#ALL", "column 1", ":", "column2"}},
		{
			"[#ALL],[column 1', and column B]:[column2': the nice one]",
			[]string{"#ALL", "column 1, and column B", ":", "column2: the nice one"},
		},
		{
			"[#ALL],[[column 1, and column B]]:[[column2: the nice one]]",
			[]string{"#ALL", "column 1, and column B", ":", "column2: the nice one"},
		},
	}
	for _, tc := range cases {
		got, err := bracketedEntries(tc.in)
		if err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		if len(got) != len(tc.want) {
			t.Fatalf("%q: получили %q, ожидали %q", tc.in, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("%q: получили %q, ожидали %q", tc.in, got, tc.want)
			}
		}
	}

	if _, err := bracketedEntries("[[a],[b]"); err == nil {
		t.Fatal("дисбаланс скобок должен давать ошибку")
	}
	if _, err := bracketedEntries("[[a]"); err == nil {
		t.Fatal("незакрытая двойная скобка должна давать ошибку")
	}
	if _, err := bracketedEntries("[a']"); err == nil {
		t.Fatal("обрыв после тика должен давать ошибку")
	}
}

func TestParseTableRefUnbalancedBrackets(t *testing.T) {
	ctx := parseCtx(t)

	for _, s := range []string{"Table1[[A],[B]", "Table1[[A]"} {
		if _, err := ParseTableRef(s, ctx); !errors.Is(err, ErrInvalidTableRef) {
			t.Fatalf("%q: ожидали ErrInvalidTableRef, получили %v", s, err)
		}
	}
}

func TestTableRefString(t *testing.T) {
	ctx := testContext(testTable("Table1", []string{"A", "B", "Total, net"}, nil, mustRect(t, "A1:C4")))

	refs := []TableRef{
		NewTableRef("Table1"),
		{TableName: "Table1", Data: true, ColRange: NewCol("A")},
		{TableName: "Table1", Headers: true},
		{TableName: "Table1", Totals: true},
		{TableName: "Table1", Data: true, Headers: true, Totals: true},
		{TableName: "Table1", Data: true, Headers: true},
		{TableName: "Table1", Data: true, Totals: true},
		{TableName: "Table1", Headers: true, Totals: true},
		{TableName: "Table1", Data: true, Headers: true, ColRange: NewCol("B")},
		{TableName: "Table1", Data: true, ColRange: NewColRange("A", "B")},
		{TableName: "Table1", Data: true, ColRange: NewColToEnd("B")},
		{TableName: "Table1", ColRange: NewCol("A"), RowRange: RowRangeThisRow},
		{TableName: "Table1", Data: true, ColRange: NewCol("Total, net")},
	}
	for _, ref := range refs {
		s := ref.String()
		back, err := ParseTableRef(s, ctx)
		if err != nil {
			t.Fatalf("%q не разобралось обратно: %v", s, err)
		}
		if back != ref {
			t.Fatalf("%q: получили %+v, ожидали %+v", s, back, ref)
		}
	}

	fixed := map[string]string{
		"Table1":                NewTableRef("Table1").String(),
		"Table1[A]":             TableRef{TableName: "Table1", Data: true, ColRange: NewCol("A")}.String(),
		"Table1[#HEADERS]":      TableRef{TableName: "Table1", Headers: true}.String(),
		"Table1[#ALL]":          TableRef{TableName: "Table1", Data: true, Headers: true, Totals: true}.String(),
		"Table1[[A]:[B]]":       TableRef{TableName: "Table1", Data: true, ColRange: NewColRange("A", "B")}.String(),
		"Table1[[B]:]":          TableRef{TableName: "Table1", Data: true, ColRange: NewColToEnd("B")}.String(),
		"Table1[[Total', net]]": TableRef{TableName: "Table1", Data: true, ColRange: NewCol("Total, net")}.String(),
	}
	for want, got := range fixed {
		if got != want {
			t.Fatalf("получили %q, ожидали %q", got, want)
		}
	}
}
