// Package env implements the interpreter's lexical environment: a
// parent-chained name → value table built around this language's
// mutability model, where `let` is immutable by default and `let mut`
// opts a single binding into reassignment.
package env

import (
	"github.com/google/uuid"

	ioHandle "github.com/embertide/ember/internal/io"
	"github.com/embertide/ember/internal/object"
)

// cell is a single binding: a value plus whether it may be reassigned.
type cell struct {
	val     object.Object
	mutable bool
}

// Environment is one lexical scope boundary. Each Environment is minted
// with a UUID so a Function's Inspect() can tag which scope it closed
// over (see ShortID) without aliasing ambiguity if two Environments
// happen to share an address after one is garbage collected.
type Environment struct {
	ID       uuid.UUID
	vars     map[string]*cell
	sections map[string][]*object.Section
	parent   *Environment
	io       ioHandle.Handle // injected at the root Environment only; nil elsewhere
}

func New(parent *Environment) *Environment {
	return &Environment{
		ID:       uuid.New(),
		vars:     make(map[string]*cell),
		sections: make(map[string][]*object.Section),
		parent:   parent,
	}
}

// ShortID returns an 8-character prefix of this Environment's UUID, the
// same truncation Function.Inspect() applies to its own ID, so a
// closure's debug tag and the scope it captured read as a matched pair.
func (e *Environment) ShortID() string { return e.ID.String()[:8] }

// Get resolves name by walking the scope chain from this Environment
// outward.
func (e *Environment) Get(name string) (object.Object, bool) {
	if c, ok := e.vars[name]; ok {
		return c.val, true
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return nil, false
}

// Define binds name in this scope only (never a parent), rejecting
// redeclaration of an existing binding in the SAME scope: `let`
// introduces a fresh binding, it never rebinds one already in scope.
func (e *Environment) Define(name string, val object.Object, mutable bool) *object.Error {
	if _, exists := e.vars[name]; exists {
		return object.NewNameError("'"+name+"' is already declared in this scope", 0, 0)
	}
	e.vars[name] = &cell{val: val, mutable: mutable}
	return nil
}

// Assign updates an existing binding, searching outward through the
// scope chain and rejecting the write if the binding is not `mut`:
// assigning to a plain `let` binding is a TypeError, not a silent
// rebind.
func (e *Environment) Assign(name string, val object.Object) *object.Error {
	c, owner := e.find(name)
	if c == nil {
		return object.NewNameError("'"+name+"' is not defined", 0, 0)
	}
	if !c.mutable {
		return object.NewTypeError("'"+name+"' is not mutable", 0, 0)
	}
	_ = owner
	c.val = val
	return nil
}

func (e *Environment) find(name string) (*cell, *Environment) {
	if c, ok := e.vars[name]; ok {
		return c, e
	}
	if e.parent != nil {
		return e.parent.find(name)
	}
	return nil, nil
}

// AddSection appends a Section to this scope's registry under its name;
// a later declaration never overwrites an earlier one here — resolving
// duplicate part_one/part_two/input declarations to last-wins is the
// runner's job, via LastSection.
func (e *Environment) AddSection(name string, sec *object.Section) {
	e.sections[name] = append(e.sections[name], sec)
}

// Sections returns every Section recorded under name in this scope, in
// declaration order.
func (e *Environment) Sections(name string) []*object.Section {
	return e.sections[name]
}

// LastSection returns the most recently declared Section under name, or
// nil if none was declared: redeclaring input/part_one/part_two is
// allowed, and the last one written wins.
func (e *Environment) LastSection(name string) *object.Section {
	secs := e.sections[name]
	if len(secs) == 0 {
		return nil
	}
	return secs[len(secs)-1]
}

// Child creates a new nested scope for block/function bodies.
func (e *Environment) Child() *Environment {
	return New(e)
}

// SetIO injects an I/O handle (used by the runner/REPL at the root
// Environment only); Eval resolves it by walking the scope chain.
func (e *Environment) SetIO(h ioHandle.Handle) { e.io = h }

func (e *Environment) IO() ioHandle.Handle {
	if e.io != nil {
		return e.io
	}
	if e.parent != nil {
		return e.parent.IO()
	}
	return nil
}
