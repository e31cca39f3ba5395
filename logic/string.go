package logic

import "strings"

// String renders the variable name.
func (v *Variable) String() string { return v.name }

// String renders "!X", parenthesizing compound operands.
func (n *Negation) String() string {
	var b strings.Builder
	b.WriteByte('!')
	writeOperand(&b, n.operand, precNot)
	return b.String()
}

// String renders "A && B", parenthesizing operands of lower precedence.
func (c *Conjunction) String() string {
	var b strings.Builder
	writeOperand(&b, c.left, precAnd)
	b.WriteString(" && ")
	writeOperand(&b, c.right, precAnd)
	return b.String()
}

// String renders "A || B".
func (d *Disjunction) String() string {
	var b strings.Builder
	writeOperand(&b, d.left, precOr)
	b.WriteString(" || ")
	writeOperand(&b, d.right, precOr)
	return b.String()
}

// String renders the never-satisfied constant as "0".
func (falseConstant) String() string { return "0" }

// Operator precedence, higher binds tighter.
const (
	precOr = iota
	precAnd
	precNot
	precAtom
)

func precedence(f Formula) int {
	switch f.(type) {
	case *Disjunction:
		return precOr
	case *Conjunction:
		return precAnd
	case *Negation:
		return precNot
	default:
		return precAtom
	}
}

func writeOperand(b *strings.Builder, f Formula, parent int) {
	if precedence(f) < parent {
		b.WriteByte('(')
		b.WriteString(f.String())
		b.WriteByte(')')
		return
	}
	b.WriteString(f.String())
}
