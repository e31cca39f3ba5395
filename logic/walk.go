package logic

import "iter"

// Equal reports whether a and b are structurally identical.
// This is syntactic comparison, not semantic equivalence:
// "A && B" and "B && A" are not Equal.
func Equal(a, b Formula) bool {
	switch a := a.(type) {
	case falseConstant:
		return b == False
	case *Variable:
		bv, ok := b.(*Variable)
		return ok && a.name == bv.name
	case *Negation:
		bn, ok := b.(*Negation)
		return ok && Equal(a.operand, bn.operand)
	case *Conjunction:
		bc, ok := b.(*Conjunction)
		return ok && Equal(a.left, bc.left) && Equal(a.right, bc.right)
	case *Disjunction:
		bd, ok := b.(*Disjunction)
		return ok && Equal(a.left, bd.left) && Equal(a.right, bd.right)
	}
	return false
}

// Variables yields every variable occurrence in f, left to right.
// Interned variables appearing multiple times are yielded each time.
func Variables(f Formula) iter.Seq[*Variable] {
	return func(yield func(*Variable) bool) {
		walkVariables(f, yield)
	}
}

func walkVariables(f Formula, yield func(*Variable) bool) bool {
	switch f := f.(type) {
	case *Variable:
		return yield(f)
	case *Negation:
		return walkVariables(f.operand, yield)
	case *Conjunction:
		return walkVariables(f.left, yield) && walkVariables(f.right, yield)
	case *Disjunction:
		return walkVariables(f.left, yield) && walkVariables(f.right, yield)
	}
	return true
}
