package logic

import (
	"slices"
	"testing"
)

func TestString(t *testing.T) {
	a := NewVariable("A")
	b := NewVariable("B")
	c := NewVariable("C")

	tests := []struct {
		name    string
		formula Formula
		want    string
	}{
		{"variable", a, "A"},
		{"false", False, "0"},
		{"negation", Not(a), "!A"},
		{"negated conjunction", Not(And(a, b)), "!(A && B)"},
		{"negated negation", Not(Not(a)), "!!A"},
		{"conjunction", And(a, b), "A && B"},
		{"disjunction", Or(a, b), "A || B"},
		{"or under and", And(Or(a, b), c), "(A || B) && C"},
		{"and under or", Or(And(a, b), c), "A && B || C"},
		{"nested negation", And(Not(a), Or(b, False)), "!A && (B || 0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.formula.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	a := NewVariable("A")
	b := NewVariable("B")

	tests := []struct {
		name string
		x, y Formula
		want bool
	}{
		{"same variable node", a, a, true},
		{"equal variable names", NewVariable("A"), NewVariable("A"), true},
		{"different variables", a, b, false},
		{"false vs false", False, False, true},
		{"false vs variable", False, a, false},
		{"equal conjunctions", And(a, b), And(a, b), true},
		{"swapped conjunction", And(a, b), And(b, a), false},
		{"conjunction vs disjunction", And(a, b), Or(a, b), false},
		{"equal negations", Not(a), Not(a), true},
		{"nested", Or(And(a, Not(b)), False), Or(And(a, Not(b)), False), true},
		{"nested mismatch", Or(And(a, Not(b)), False), Or(And(a, b), False), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.x, tt.y); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestFalseIdentity(t *testing.T) {
	// The constant must compare equal to itself through interface values.
	f := Or(False, NewVariable("A"))
	if f.Left() != False {
		t.Error("left child should be identical to the False constant")
	}
	if f.Right() == False {
		t.Error("variable must not compare equal to False")
	}
}

func TestVariables(t *testing.T) {
	a := NewVariable("A")
	b := NewVariable("B")
	f := Or(And(a, Not(b)), And(False, a))

	var names []string
	for v := range Variables(f) {
		names = append(names, v.Name())
	}
	want := []string{"A", "B", "A"}
	if !slices.Equal(names, want) {
		t.Errorf("Variables() yielded %v, want %v", names, want)
	}
}

func TestVariablesEarlyStop(t *testing.T) {
	f := And(NewVariable("A"), NewVariable("B"))
	count := 0
	for range Variables(f) {
		count++
		break
	}
	if count != 1 {
		t.Errorf("expected iteration to stop after 1 variable, got %d", count)
	}
}
