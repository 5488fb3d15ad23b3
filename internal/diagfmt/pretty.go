package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"gridref/internal/diag"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждой диагностики печатает:
// <path>:<line>: <SEV> <CODE>: <Message>
// затем исходную строку ссылки с подчёркиванием ^~~~ по Span,
// затем Notes. Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, opts PrettyOpts) {
	if bag == nil {
		return
	}
	items := bag.Items()
	limit := len(items)
	if opts.Max > 0 && opts.Max < limit {
		limit = opts.Max
	}
	styles := newStyles(opts.Color)
	for i := 0; i < limit; i++ {
		writeDiagnostic(w, items[i], opts, styles)
	}
	if limit < len(items) {
		fmt.Fprintf(w, "... and %d more\n", len(items)-limit)
	}
}

type styleSet struct {
	severity map[diag.Severity]*color.Color
	code     *color.Color
	gutter   *color.Color
	caret    *color.Color
}

func newStyles(enabled bool) styleSet {
	s := styleSet{
		severity: map[diag.Severity]*color.Color{
			diag.SevError:   color.New(color.FgRed, color.Bold),
			diag.SevWarning: color.New(color.FgYellow, color.Bold),
			diag.SevInfo:    color.New(color.FgCyan),
		},
		code:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
	}
	if !enabled {
		for _, c := range s.severity {
			c.DisableColor()
		}
		s.code.DisableColor()
		s.gutter.DisableColor()
		s.caret.DisableColor()
	}
	return s
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, opts PrettyOpts, styles styleSet) {
	loc := formatLocation(d)
	sev := styles.severity[d.Severity].Sprint(d.Severity.String())
	code := styles.code.Sprint(d.Code.ID())
	fmt.Fprintf(w, "%s %s %s: %s\n", loc, sev, code, d.Message)

	if opts.ShowSnippet && d.Input != "" {
		writeSnippet(w, d, styles)
	}
	if opts.ShowNotes {
		for _, note := range d.Notes {
			fmt.Fprintf(w, "  %s %s\n", styles.gutter.Sprint("note:"), note.Msg)
		}
	}
}

func formatLocation(d diag.Diagnostic) string {
	if d.Path == "" {
		return "<arg>:"
	}
	return fmt.Sprintf("%s:%d:", d.Path, d.Line)
}

// writeSnippet печатает строку ссылки и линию подчёркивания под её
// проблемной частью. Ширина отступа считается в экранных колонках,
// потому что имена листов и колонок могут содержать широкие руны.
func writeSnippet(w io.Writer, d diag.Diagnostic, styles styleSet) {
	input := d.Input
	fmt.Fprintf(w, "  %s %s\n", styles.gutter.Sprint("|"), input)

	sp := d.Span
	if sp.IsZero() || sp.End > len(input) || sp.Start >= sp.End {
		sp = diag.Span{Start: 0, End: len(input)}
	}
	pad := runewidth.StringWidth(input[:sp.Start])
	width := runewidth.StringWidth(input[sp.Start:sp.End])
	if width < 1 {
		width = 1
	}
	underline := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, "  %s %s%s\n",
		styles.gutter.Sprint("|"),
		strings.Repeat(" ", pad),
		styles.caret.Sprint(underline))
}
