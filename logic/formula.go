// Package logic provides the propositional formula type used for
// presence conditions.
//
// A Formula is an immutable tree over configuration variables with
// negation, conjunction and disjunction, plus the constant False for
// unconditionally absent files. There is no True constant: an always
// present file simply never receives a condition. The variant set is
// closed; consumers branch with a type switch over the five node types.
package logic

// Formula is a propositional formula over configuration variables.
//
// The possible node types are *Variable, *Negation, *Conjunction,
// *Disjunction and the False constant. Formulas are immutable: every
// transformation builds a new tree and may share subtrees with its input.
type Formula interface {
	// String renders the formula with C-style operators (!, &&, ||).
	String() string

	sealed()
}

// Variable is a leaf referencing a configuration variable by name.
// Variables are interned per conversion run (see parser.VariableCache),
// so identical names within one run share one node.
type Variable struct {
	name string
}

// NewVariable creates a variable with the given name.
// Most callers should obtain variables through a VariableCache instead.
func NewVariable(name string) *Variable {
	return &Variable{name: name}
}

// Name returns the variable name as it appeared in the source text.
func (v *Variable) Name() string { return v.name }

func (*Variable) sealed() {}

// Negation is the logical complement of its operand.
type Negation struct {
	operand Formula
}

// Not creates the negation of f.
func Not(f Formula) *Negation {
	return &Negation{operand: f}
}

// Operand returns the negated formula.
func (n *Negation) Operand() Formula { return n.operand }

func (*Negation) sealed() {}

// Conjunction is the logical AND of two formulas.
type Conjunction struct {
	left, right Formula
}

// And creates the conjunction of left and right.
func And(left, right Formula) *Conjunction {
	return &Conjunction{left: left, right: right}
}

// Left returns the left operand.
func (c *Conjunction) Left() Formula { return c.left }

// Right returns the right operand.
func (c *Conjunction) Right() Formula { return c.right }

func (*Conjunction) sealed() {}

// Disjunction is the logical OR of two formulas.
type Disjunction struct {
	left, right Formula
}

// Or creates the disjunction of left and right.
func Or(left, right Formula) *Disjunction {
	return &Disjunction{left: left, right: right}
}

// Left returns the left operand.
func (d *Disjunction) Left() Formula { return d.left }

// Right returns the right operand.
func (d *Disjunction) Right() Formula { return d.right }

func (*Disjunction) sealed() {}

type falseConstant struct{}

// False is the constant formula that is never satisfied. It marks files
// that are unconditionally absent from the build. There is exactly one
// False value; compare against it with ==.
var False Formula = falseConstant{}

func (falseConstant) sealed() {}
