package diag

import (
	"errors"
	"fmt"
	"testing"

	"gridref/internal/a1"
)

func TestCodeForError(t *testing.T) {
	cases := []struct {
		err  error
		want Code
	}{
		{a1.ErrSpuriousDollar, RefSpuriousDollar},
		{a1.ErrInvalidColumn, RefInvalidColumn},
		{a1.ErrInvalidRow, RefInvalidRow},
		{a1.ErrInvalidExclusion, RefInvalidExclusion},
		{a1.ErrInvalidRange, RefInvalidRange},
		{a1.ErrUnknownTable, TblUnknownTable},
		{a1.ErrNotResolvable, TblNotResolvable},
		{errors.New("who knows"), UnknownCode},
	}
	for _, tc := range cases {
		// коды должны распознаваться и через обёртки
		wrapped := fmt.Errorf("context: %w", tc.err)
		if got := CodeForError(wrapped); got != tc.want {
			t.Errorf("CodeForError(%v) = %v, ожидалось %v", tc.err, got, tc.want)
		}
	}
}

func TestCodeForParseError(t *testing.T) {
	_, err := a1.ParseRefRangeBounds("$")
	if err == nil {
		t.Fatal("ожидалась ошибка разбора")
	}
	if got := CodeForError(err); got != RefSpuriousDollar {
		t.Fatalf("CodeForError = %v, ожидалось RefSpuriousDollar", got)
	}
}

func TestFromError(t *testing.T) {
	_, err := a1.ParseRefRangeBounds("A0")
	if err == nil {
		t.Fatal("ожидалась ошибка разбора")
	}
	d := FromError(err, "A0")
	if d.Severity != SevError {
		t.Fatalf("Severity = %v", d.Severity)
	}
	if d.Code != RefInvalidRow {
		t.Fatalf("Code = %v, ожидалось RefInvalidRow", d.Code)
	}
	if d.Input != "A0" {
		t.Fatalf("Input = %q", d.Input)
	}
}
