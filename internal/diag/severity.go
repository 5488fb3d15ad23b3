package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevInfo is for informational diagnostics (resolution hints, timings).
	SevInfo Severity = iota
	// SevWarning is for recoverable oddities: a reference that parses
	// but falls outside the workbook bounds, a deprecated table form.
	SevWarning
	// SevError is for references that cannot be parsed or resolved.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// AtLeast reports whether s is at or above the given threshold.
func (s Severity) AtLeast(min Severity) bool { return s >= min }
