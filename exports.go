package kbuildminer

import (
	"github.com/KernelHaven/KbuildMinerExtractor/buildmodel"
	"github.com/KernelHaven/KbuildMinerExtractor/logic"
)

// Type aliases for the public API - result types come from the
// buildmodel and logic subpackages.

// BuildModel maps source file paths to presence conditions.
type BuildModel = buildmodel.BuildModel

// Diagnostic records an issue found while converting one input line.
type Diagnostic = buildmodel.Diagnostic

// Severity classifies a diagnostic.
type Severity = buildmodel.Severity

// Formula is a propositional presence condition.
type Formula = logic.Formula

// Severity levels, most severe first.
const (
	SeverityError   = buildmodel.SeverityError
	SeverityWarning = buildmodel.SeverityWarning
	SeverityInfo    = buildmodel.SeverityInfo
)
