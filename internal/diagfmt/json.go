package diagfmt

import (
	"encoding/json"
	"io"
	"strings"

	"gridref/internal/diag"
)

type jsonSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type jsonDiagnostic struct {
	Severity string    `json:"severity"`
	Code     string    `json:"code"`
	Title    string    `json:"title"`
	Message  string    `json:"message"`
	Path     string    `json:"path,omitempty"`
	Line     int       `json:"line,omitempty"`
	Input    string    `json:"input,omitempty"`
	Span     *jsonSpan `json:"span,omitempty"`
	Notes    []string  `json:"notes,omitempty"`
}

type jsonPayload struct {
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
	Truncated   bool             `json:"truncated,omitempty"`
}

// JSON сериализует диагностики в стабильный машиночитаемый вид.
// Порядок элементов повторяет порядок в Bag (ожидается Sort заранее).
func JSON(w io.Writer, bag *diag.Bag, opts JSONOpts) error {
	payload := jsonPayload{Diagnostics: []jsonDiagnostic{}}
	if bag != nil {
		items := bag.Items()
		limit := len(items)
		if opts.Max > 0 && opts.Max < limit {
			limit = opts.Max
			payload.Truncated = true
		}
		for _, d := range items[:limit] {
			payload.Diagnostics = append(payload.Diagnostics, toJSON(d, opts))
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func toJSON(d diag.Diagnostic, opts JSONOpts) jsonDiagnostic {
	out := jsonDiagnostic{
		Severity: strings.ToLower(d.Severity.String()),
		Code:     d.Code.ID(),
		Title:    d.Code.Title(),
		Message:  d.Message,
		Path:     d.Path,
		Line:     d.Line,
	}
	if opts.IncludeInput && d.Input != "" {
		out.Input = d.Input
		if !d.Span.IsZero() {
			out.Span = &jsonSpan{Start: d.Span.Start, End: d.Span.End}
		}
	}
	if opts.IncludeNotes {
		for _, n := range d.Notes {
			out.Notes = append(out.Notes, n.Msg)
		}
	}
	return out
}
