// Package rewrite eliminates build-system module encoding from presence
// conditions.
//
// KbuildMiner emits X_MODULE variables for the "compiled as module"
// state of tristate variables. When the base variable X is declared with
// any non-tristate type, X_MODULE cannot occur and the variable is
// replaced with False. Disjunctions that gain a False side this way are
// simplified one level so the output stays free of spurious False nodes.
package rewrite

import (
	"strings"

	"github.com/KernelHaven/KbuildMinerExtractor/logic"
	"github.com/KernelHaven/KbuildMinerExtractor/varmodel"
)

// moduleSuffix marks the module-state encoding of a tristate variable.
const moduleSuffix = "_MODULE"

// TypeLookup reports the declared type tag of a configuration variable.
// *varmodel.Model implements it.
type TypeLookup interface {
	Type(name string) (string, bool)
}

// RemoveNonTristateModules rewrites f bottom-up, replacing every
// X_MODULE variable whose base X is declared with a non-tristate type by
// False. Variables whose base is undeclared or tristate are kept.
//
// The rewrite is total and never fails. It returns a new tree and leaves
// f untouched; unchanged leaves are shared between input and output.
//
// Negations are unwrapped rather than rewritten in place: !X becomes the
// rewrite of X. This reproduces the behavior of the original KbuildMiner
// output handling and is relied on by downstream consumers.
func RemoveNonTristateModules(f logic.Formula, vars TypeLookup) logic.Formula {
	switch f := f.(type) {
	case *logic.Disjunction:
		d := logic.Or(
			RemoveNonTristateModules(f.Left(), vars),
			RemoveNonTristateModules(f.Right(), vars),
		)
		return simplifyFalseDisjunct(d)

	case *logic.Conjunction:
		return logic.And(
			RemoveNonTristateModules(f.Left(), vars),
			RemoveNonTristateModules(f.Right(), vars),
		)

	case *logic.Negation:
		return RemoveNonTristateModules(f.Operand(), vars)

	case *logic.Variable:
		base, found := strings.CutSuffix(f.Name(), moduleSuffix)
		if !found {
			return f
		}
		typ, declared := vars.Type(base)
		if declared && typ != varmodel.TypeTristate {
			return logic.False
		}
		return f

	default:
		// False
		return f
	}
}

// simplifyFalseDisjunct turns (X || False) and (False || X) into X.
// Only the immediate children are examined; the check is identity with
// the False constant, not semantic equivalence.
func simplifyFalseDisjunct(d *logic.Disjunction) logic.Formula {
	if d.Left() == logic.False {
		return d.Right()
	}
	if d.Right() == logic.False {
		return d.Left()
	}
	return d
}
