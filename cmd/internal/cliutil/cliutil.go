// Package cliutil provides shared CLI utilities for kbuildminer
// command-line tools.
package cliutil

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/KernelHaven/KbuildMinerExtractor/buildmodel"
)

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	warningStyle = color.New(color.FgHiYellow, color.Bold)
	infoStyle    = color.New(color.FgCyan)
	fileStyle    = color.New(color.FgCyan, color.Bold)
)

// PrintError writes a formatted error message to stderr.
func PrintError(format string, args ...any) {
	_, _ = errorStyle.Fprint(os.Stderr, "error: ")
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// severityStyle returns the color style for a diagnostic severity.
func severityStyle(s buildmodel.Severity) *color.Color {
	switch s {
	case buildmodel.SeverityError:
		return errorStyle
	case buildmodel.SeverityWarning:
		return warningStyle
	default:
		return infoStyle
	}
}

// PrintDiagnostic writes one colored diagnostic line to w.
// Format: "severity path:line: message (code)".
func PrintDiagnostic(w io.Writer, d buildmodel.Diagnostic) {
	_, _ = severityStyle(d.Severity).Fprint(w, d.Severity.String())
	_, _ = fmt.Fprint(w, " ")
	if d.Path != "" {
		location := d.Path
		if d.Line > 0 {
			location = fmt.Sprintf("%s:%d", d.Path, d.Line)
		}
		_, _ = fileStyle.Fprint(w, location)
		_, _ = fmt.Fprint(w, ": ")
	} else if d.Line > 0 {
		_, _ = fileStyle.Fprintf(w, "line %d", d.Line)
		_, _ = fmt.Fprint(w, ": ")
	}
	_, _ = fmt.Fprintf(w, "%s (%s)\n", d.Message, d.Code)
}

// PrintDiagnostics writes all diagnostics to w and returns the number of
// error-level entries.
func PrintDiagnostics(w io.Writer, diags []buildmodel.Diagnostic) int {
	errors := 0
	for _, d := range diags {
		PrintDiagnostic(w, d)
		if d.Severity == buildmodel.SeverityError {
			errors++
		}
	}
	return errors
}

// GetOutput opens the output file, or returns stdout when path is empty.
// The returned cleanup closes the file if one was opened.
func GetOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
