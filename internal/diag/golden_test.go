package diag

import "testing"

func TestFormatGoldenDiagnostics(t *testing.T) {
	diags := []Diagnostic{
		NewError(RefInvalidRange, "bad\nrange").At("b/refs.txt", 2),
		NewWarning(TblUnknownColumn, "odd column").At("a.txt", 9),
		NewError(RefInvalidRow, "row").WithNote("rows start at 1"),
	}
	got := FormatGoldenDiagnostics(diags, true)
	want := "error REF1004 <arg>:0 row\n" +
		"note REF1004 <arg>:0 rows start at 1\n" +
		"warning TBL2003 a.txt:9 odd column\n" +
		"error REF1001 b/refs.txt:2 bad range"
	if got != want {
		t.Errorf("golden-вывод разошёлся:\n got: %q\nwant: %q", got, want)
	}
}

func TestFormatGoldenEmpty(t *testing.T) {
	if got := FormatGoldenDiagnostics(nil, false); got != "" {
		t.Errorf("пустой вход должен давать пустую строку, получили %q", got)
	}
}
