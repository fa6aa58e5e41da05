// Package satsolver fills a crossword skeleton by reduction to
// boolean satisfiability. Every (slot, candidate word) placement
// becomes a literal; per-slot exactly-one constraints, crossing
// agreement, and word uniqueness become CNF clauses solved by gini.
// It produces the same assignments as the propagation-and-search
// engine and exists as an alternative backend for dense puzzles.
package satsolver

import (
	"fmt"
	"strings"
)

// Identifier uniquely names a boolean variable within one Solve call.
type Identifier string

func (id Identifier) String() string {
	return string(id)
}

// Variable is one boolean entity of the encoding together with the
// constraints that apply to it.
type Variable struct {
	id          Identifier
	constraints []Constraint
}

func NewVariable(id Identifier, constraints ...Constraint) *Variable {
	return &Variable{
		id:          id,
		constraints: constraints,
	}
}

func (v *Variable) Identifier() Identifier {
	return v.id
}

func (v *Variable) Constraints() []Constraint {
	return v.constraints
}

func (v *Variable) AddConstraint(constraint Constraint) {
	v.constraints = append(v.constraints, constraint)
}

// AppliedConstraint composes a single Constraint with the Variable it
// applies to.
type AppliedConstraint struct {
	Variable   *Variable
	Constraint Constraint
}

// String implements fmt.Stringer and returns a human-readable message
// representing the receiver.
func (a AppliedConstraint) String() string {
	return a.Constraint.String(a.Variable.Identifier())
}

// NotSatisfiable is an error composed of a minimal set of applied
// constraints that is sufficient to make a solution impossible.
type NotSatisfiable []AppliedConstraint

func (e NotSatisfiable) Error() string {
	const msg = "constraints not satisfiable"
	if len(e) == 0 {
		return msg
	}
	s := make([]string, len(e))
	for i, a := range e {
		s[i] = a.String()
	}
	return fmt.Sprintf("%s:\n%s", msg, strings.Join(s, "\n"))
}
