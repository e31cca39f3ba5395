// Package varmodel holds the variability model consulted during
// conversion: the declared type of each configuration variable.
//
// The converter only inspects whether a variable is declared tristate;
// all other type tags are carried through opaquely.
package varmodel

import (
	"cmp"
	"iter"
	"slices"
)

// Well-known Kconfig type tags. Only TypeTristate has meaning to the
// converter; the rest are listed for callers building models by hand.
const (
	TypeBool     = "bool"
	TypeTristate = "tristate"
	TypeString   = "string"
	TypeInt      = "int"
	TypeHex      = "hex"
)

// Variable is a declared configuration variable.
type Variable struct {
	Name string
	Type string
}

// IsTristate reports whether the variable is declared tristate.
func (v Variable) IsTristate() bool {
	return v.Type == TypeTristate
}

// Model maps variable names to their declarations. It is populated
// before conversion begins and read-only afterwards.
type Model struct {
	vars map[string]Variable
}

// New returns an empty model.
func New() *Model {
	return &Model{vars: make(map[string]Variable)}
}

// Put adds or replaces a variable declaration.
func (m *Model) Put(v Variable) {
	m.vars[v.Name] = v
}

// Get returns the declaration for name.
func (m *Model) Get(name string) (Variable, bool) {
	v, ok := m.vars[name]
	return v, ok
}

// Type returns the declared type tag for name.
func (m *Model) Type(name string) (string, bool) {
	v, ok := m.vars[name]
	return v.Type, ok
}

// Len returns the number of declared variables.
func (m *Model) Len() int {
	return len(m.vars)
}

// Variables yields all declarations sorted by name.
func (m *Model) Variables() iter.Seq[Variable] {
	names := make([]string, 0, len(m.vars))
	for name := range m.vars {
		names = append(names, name)
	}
	slices.SortFunc(names, cmp.Compare)
	return func(yield func(Variable) bool) {
		for _, name := range names {
			if !yield(m.vars[name]) {
				return
			}
		}
	}
}
