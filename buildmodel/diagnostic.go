package buildmodel

import (
	"fmt"
	"strings"
)

// Severity classifies a diagnostic. Lower values are more severe.
type Severity int

const (
	// SeverityError marks a line whose condition could not be recovered
	// (the False baseline stands).
	SeverityError Severity = iota
	// SeverityWarning marks a recoverable issue, like an expression the
	// miner itself flagged as invalid.
	SeverityWarning
	// SeverityInfo is informational.
	SeverityInfo
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Diagnostic codes emitted by the converter.
const (
	// DiagInvalidExpression: the miner marked the condition with
	// InvalidExpression().
	DiagInvalidExpression = "invalid-expression"
	// DiagExpressionParse: the condition text failed to parse.
	DiagExpressionParse = "expression-parse"
	// DiagMalformedLine: the input line has no path separator.
	DiagMalformedLine = "malformed-line"
)

// Diagnostic records an issue found while converting one input line.
type Diagnostic struct {
	Severity Severity
	Code     string // e.g. "invalid-expression", "expression-parse"
	Message  string
	Path     string // source file path from the input line, if known
	Line     int    // 1-based input line number, 0 if not applicable
}

// String returns "[severity] path:line: message" with location parts
// omitted when unknown.
func (d Diagnostic) String() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(d.Severity.String())
	b.WriteByte(']')
	b.WriteByte(' ')
	if d.Path != "" {
		b.WriteString(d.Path)
		if d.Line > 0 {
			fmt.Fprintf(&b, ":%d", d.Line)
		}
		b.WriteString(": ")
	}
	b.WriteString(d.Message)
	return b.String()
}
