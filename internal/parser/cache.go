package parser

import (
	"github.com/KernelHaven/KbuildMinerExtractor/logic"
)

// VariableCache interns variables by name so that identical names within
// one conversion run share a single *logic.Variable node. The cache is
// owned by the parsing session; its lifetime is one conversion run.
type VariableCache struct {
	vars map[string]*logic.Variable
}

// NewVariableCache returns an empty cache.
func NewVariableCache() *VariableCache {
	return &VariableCache{vars: make(map[string]*logic.Variable)}
}

// Get returns the interned variable for name, creating it on first sight.
func (c *VariableCache) Get(name string) *logic.Variable {
	if v, ok := c.vars[name]; ok {
		return v
	}
	v := logic.NewVariable(name)
	c.vars[name] = v
	return v
}

// Len returns the number of distinct variables seen so far.
func (c *VariableCache) Len() int {
	return len(c.vars)
}
