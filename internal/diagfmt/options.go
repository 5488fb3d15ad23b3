package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color       bool
	ShowNotes   bool
	ShowSnippet bool
	Max         int // обрезка вывода, не Bag; 0 — без ограничения
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	Max          int // обрезка вывода, не Bag
	IncludeNotes bool
	IncludeInput bool
}
