package diagfmt

import (
	"encoding/json"
	"strings"
	"testing"

	"gridref/internal/diag"
)

func TestJSONShape(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.TblUnknownTable, `unknown table: "Nope"`).
		At("refs.txt", 7).
		WithInput("Nope[Col]", diag.Span{Start: 0, End: 4}).
		WithNote("known tables: Table1"))
	bag.Sort()

	var sb strings.Builder
	err := JSON(&sb, bag, JSONOpts{IncludeNotes: true, IncludeInput: true})
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var payload struct {
		Diagnostics []struct {
			Severity string `json:"severity"`
			Code     string `json:"code"`
			Title    string `json:"title"`
			Path     string `json:"path"`
			Line     int    `json:"line"`
			Input    string `json:"input"`
			Span     *struct {
				Start int `json:"start"`
				End   int `json:"end"`
			} `json:"span"`
			Notes []string `json:"notes"`
		} `json:"diagnostics"`
		Truncated bool `json:"truncated"`
	}
	if err := json.Unmarshal([]byte(sb.String()), &payload); err != nil {
		t.Fatalf("невалидный JSON: %v\n%s", err, sb.String())
	}
	if len(payload.Diagnostics) != 1 {
		t.Fatalf("diagnostics = %d", len(payload.Diagnostics))
	}
	d := payload.Diagnostics[0]
	if d.Severity != "error" || d.Code != "TBL2002" {
		t.Errorf("severity/code: %q %q", d.Severity, d.Code)
	}
	if d.Title != "unknown table" {
		t.Errorf("title = %q", d.Title)
	}
	if d.Path != "refs.txt" || d.Line != 7 {
		t.Errorf("позиция: %q:%d", d.Path, d.Line)
	}
	if d.Span == nil || d.Span.End != 4 {
		t.Errorf("span не сериализован: %+v", d.Span)
	}
	if len(d.Notes) != 1 {
		t.Errorf("notes = %v", d.Notes)
	}
}

func TestJSONEmptyBag(t *testing.T) {
	var sb strings.Builder
	if err := JSON(&sb, diag.NewBag(1), JSONOpts{}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if !strings.Contains(sb.String(), `"diagnostics": []`) {
		t.Errorf("пустой bag должен давать пустой массив:\n%s", sb.String())
	}
}

func TestJSONMax(t *testing.T) {
	bag := diag.NewBag(10)
	for range 4 {
		bag.Add(diag.NewError(diag.RefInvalidRange, "x"))
	}
	var sb strings.Builder
	if err := JSON(&sb, bag, JSONOpts{Max: 2}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if !strings.Contains(sb.String(), `"truncated": true`) {
		t.Errorf("флаг truncated не выставлен:\n%s", sb.String())
	}
}
