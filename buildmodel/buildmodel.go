// Package buildmodel provides the container for per-file presence
// conditions produced by conversion.
package buildmodel

import (
	"iter"

	"github.com/KernelHaven/KbuildMinerExtractor/logic"
)

// BuildModel maps source file paths to the presence condition under
// which each file is compiled. Adding a path twice replaces the earlier
// condition; the converter relies on this to first record a False
// baseline and then overwrite it with the parsed condition.
type BuildModel struct {
	conditions  map[string]logic.Formula
	order       []string // paths in first-seen order
	diagnostics []Diagnostic
	diagLimit   int // 0 means unlimited
}

// New returns an empty build model.
func New() *BuildModel {
	return &BuildModel{conditions: make(map[string]logic.Formula)}
}

// Add records the presence condition for path, replacing any earlier
// condition for the same path.
func (b *BuildModel) Add(path string, condition logic.Formula) {
	if _, seen := b.conditions[path]; !seen {
		b.order = append(b.order, path)
	}
	b.conditions[path] = condition
}

// Get returns the presence condition for path, or nil if the path is
// unknown to the model.
func (b *BuildModel) Get(path string) logic.Formula {
	return b.conditions[path]
}

// Contains reports whether the model has a condition for path.
func (b *BuildModel) Contains(path string) bool {
	_, ok := b.conditions[path]
	return ok
}

// Len returns the number of files in the model.
func (b *BuildModel) Len() int {
	return len(b.conditions)
}

// Files yields (path, condition) pairs in first-seen order.
func (b *BuildModel) Files() iter.Seq2[string, logic.Formula] {
	return func(yield func(string, logic.Formula) bool) {
		for _, path := range b.order {
			if !yield(path, b.conditions[path]) {
				return
			}
		}
	}
}

// SetDiagnosticLimit caps the number of diagnostics Report retains.
// Reports past the limit are dropped. n <= 0 means unlimited.
func (b *BuildModel) SetDiagnosticLimit(n int) {
	b.diagLimit = n
}

// Report appends a diagnostic to the model, subject to the diagnostic
// limit.
func (b *BuildModel) Report(d Diagnostic) {
	if b.diagLimit > 0 && len(b.diagnostics) >= b.diagLimit {
		return
	}
	b.diagnostics = append(b.diagnostics, d)
}

// Diagnostics returns all diagnostics collected during conversion,
// in input order.
func (b *BuildModel) Diagnostics() []Diagnostic {
	return b.diagnostics
}
