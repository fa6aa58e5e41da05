package satsolver

import (
	"fmt"
	"strings"

	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// Constraint implementations limit the circumstances under which a
// particular Variable can appear in a solution.
type Constraint interface {
	String(subject Identifier) string
	apply(c *logic.C, d *litMapping, subject Identifier) z.Lit
	anchor() bool
}

type mandatory struct{}

func (constraint mandatory) String(subject Identifier) string {
	return fmt.Sprintf("%s is mandatory", subject)
}

func (constraint mandatory) apply(_ *logic.C, d *litMapping, subject Identifier) z.Lit {
	return d.LitOf(subject)
}

func (constraint mandatory) anchor() bool {
	return true
}

// Mandatory returns a Constraint that will permit only solutions that
// contain a particular Variable.
func Mandatory() Constraint {
	return mandatory{}
}

type dependency []Identifier

func (constraint dependency) String(subject Identifier) string {
	if len(constraint) == 0 {
		return fmt.Sprintf("%s has a dependency without any candidates to satisfy it", subject)
	}
	s := make([]string, len(constraint))
	for i, each := range constraint {
		s[i] = string(each)
	}
	return fmt.Sprintf("%s requires at least one of %s", subject, strings.Join(s, ", "))
}

func (constraint dependency) apply(c *logic.C, d *litMapping, subject Identifier) z.Lit {
	m := d.LitOf(subject).Not()
	for _, each := range constraint {
		m = c.Or(m, d.LitOf(each))
	}
	return m
}

func (constraint dependency) anchor() bool {
	return false
}

// Dependency returns a Constraint that will only permit solutions
// containing a given Variable on the condition that at least one of
// the Variables identified by the given Identifiers also appears in
// the solution.
func Dependency(ids ...Identifier) Constraint {
	return dependency(ids)
}

type conflict Identifier

func (constraint conflict) String(subject Identifier) string {
	return fmt.Sprintf("%s conflicts with %s", subject, Identifier(constraint))
}

func (constraint conflict) apply(c *logic.C, d *litMapping, subject Identifier) z.Lit {
	return c.Or(d.LitOf(subject).Not(), d.LitOf(Identifier(constraint)).Not())
}

func (constraint conflict) anchor() bool {
	return false
}

// Conflict returns a Constraint that will permit solutions containing
// either the constrained Variable, the Variable identified by the
// given Identifier, or neither, but not both.
func Conflict(id Identifier) Constraint {
	return conflict(id)
}

type atMost struct {
	ids []Identifier
	n   int
}

func (constraint atMost) String(subject Identifier) string {
	s := make([]string, len(constraint.ids))
	for i, each := range constraint.ids {
		s[i] = string(each)
	}
	return fmt.Sprintf("%s permits at most %d of %s", subject, constraint.n, strings.Join(s, ", "))
}

func (constraint atMost) apply(c *logic.C, d *litMapping, _ Identifier) z.Lit {
	ms := make([]z.Lit, len(constraint.ids))
	for i, each := range constraint.ids {
		ms[i] = d.LitOf(each)
	}
	return c.CardSort(ms).Leq(constraint.n)
}

func (constraint atMost) anchor() bool {
	return false
}

// AtMost returns a Constraint that forbids solutions that contain
// more than n of the Variables identified by the given Identifiers.
func AtMost(n int, ids ...Identifier) Constraint {
	return atMost{
		ids: ids,
		n:   n,
	}
}
