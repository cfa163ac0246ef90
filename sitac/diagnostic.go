package sitac

import (
	"fmt"
	"strings"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	// Error means the figure was dropped.
	Error Severity = iota
	// Warning means the figure was kept but may not look as intended.
	Warning
	// Info is an informational note.
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "ERROR"
	case Warning:
		return "WARNING"
	case Info:
		return "INFO"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic is a single finding produced while decoding a document.
type Diagnostic struct {
	Rule     string   // rule identifier (e.g., "figure_decode")
	Severity Severity // ERROR, WARNING, or INFO
	Message  string   // human-readable description
	Figure   string   // related figure name (optional)
	Index    int      // 0-based fragment index, -1 when not tied to a fragment
	Err      error    // underlying error (optional)
}

func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s", d.Severity, d.Rule, d.Message)
	if d.Figure != "" {
		fmt.Fprintf(&b, " (figure: %s)", d.Figure)
	}
	if d.Index >= 0 {
		fmt.Fprintf(&b, " (fragment: %d)", d.Index)
	}
	return b.String()
}

// HasErrors reports whether any diagnostic has error severity.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == Error {
			return true
		}
	}
	return false
}
