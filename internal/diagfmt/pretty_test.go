package diagfmt

import (
	"strings"
	"testing"

	"gridref/internal/diag"
)

func TestPrettyPlain(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.RefInvalidRow, `invalid row: "0"`).
		At("refs.txt", 3).
		WithInput("A0", diag.Span{Start: 1, End: 2}))
	bag.Sort()

	var sb strings.Builder
	Pretty(&sb, bag, PrettyOpts{ShowSnippet: true})
	out := sb.String()

	for _, want := range []string{
		"refs.txt:3: ERROR REF1004:",
		"| A0",
		"|  ^",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("вывод не содержит %q:\n%s", want, out)
		}
	}
}

func TestPrettyZeroSpanUnderlinesWholeInput(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.RefInvalidRange, "invalid range").
		WithInput("???", diag.Span{}))

	var sb strings.Builder
	Pretty(&sb, bag, PrettyOpts{ShowSnippet: true})
	if !strings.Contains(sb.String(), "^~~") {
		t.Errorf("нулевой Span должен подчеркнуть весь ввод:\n%s", sb.String())
	}
}

func TestPrettyWideRunePadding(t *testing.T) {
	// "Лист" в имени — узкие руны, иероглиф занимает две колонки.
	input := "'表'!A0"
	start := strings.Index(input, "A0")
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.RefInvalidRow, "invalid row").
		WithInput(input, diag.Span{Start: start, End: start + 2}))

	var sb strings.Builder
	Pretty(&sb, bag, PrettyOpts{ShowSnippet: true})
	lines := strings.Split(sb.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("слишком короткий вывод:\n%s", sb.String())
	}
	caretLine := lines[2]
	// до каретки: "  | " плюс 5 экранных колонок ('表'! = 1+2+1+1)
	wantPad := "  | " + strings.Repeat(" ", 5)
	if !strings.HasPrefix(caretLine, wantPad+"^") {
		t.Errorf("каретка смещена неверно: %q", caretLine)
	}
}

func TestPrettyMaxTruncates(t *testing.T) {
	bag := diag.NewBag(10)
	for range 5 {
		bag.Add(diag.NewError(diag.RefInvalidRange, "x"))
	}
	var sb strings.Builder
	Pretty(&sb, bag, PrettyOpts{Max: 2})
	if !strings.Contains(sb.String(), "... and 3 more") {
		t.Errorf("обрезка не сработала:\n%s", sb.String())
	}
}
