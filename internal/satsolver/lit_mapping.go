package satsolver

import (
	"fmt"
	"strings"

	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

type DuplicateIdentifier Identifier

func (e DuplicateIdentifier) Error() string {
	return fmt.Sprintf("duplicate identifier %q in input", Identifier(e))
}

// litMapping performs translation between the Variables and
// Constraints of the encoding and the literals that appear in the SAT
// formula.
type litMapping struct {
	inorder     []*Variable
	variables   map[z.Lit]*Variable
	lits        map[Identifier]z.Lit
	constraints map[z.Lit]AppliedConstraint
	c           *logic.C
	errs        []error
}

// newLitMapping returns a new litMapping with its state initialized
// based on the provided slice of Variables: literals are assigned
// first so constraints may reference any Variable in the input.
func newLitMapping(variables []*Variable) (*litMapping, error) {
	d := litMapping{
		inorder:     variables,
		variables:   make(map[z.Lit]*Variable, len(variables)),
		lits:        make(map[Identifier]z.Lit, len(variables)),
		constraints: make(map[z.Lit]AppliedConstraint),
		c:           logic.NewCCap(len(variables)),
	}

	for _, variable := range variables {
		im := d.c.Lit()
		if _, ok := d.lits[variable.Identifier()]; ok {
			return nil, DuplicateIdentifier(variable.Identifier())
		}
		d.lits[variable.Identifier()] = im
		d.variables[im] = variable
	}

	for _, variable := range variables {
		for _, constraint := range variable.Constraints() {
			m := constraint.apply(d.c, &d, variable.Identifier())
			if m == z.LitNull {
				// This constraint doesn't have a useful
				// representation in the SAT inputs.
				continue
			}
			d.constraints[m] = AppliedConstraint{
				Variable:   variable,
				Constraint: constraint,
			}
		}
	}

	return &d, nil
}

// LitOf returns the positive literal corresponding to the Variable
// with the given Identifier.
func (d *litMapping) LitOf(id Identifier) z.Lit {
	m, ok := d.lits[id]
	if ok {
		return m
	}
	d.errs = append(d.errs, fmt.Errorf("variable %q referenced but not provided", id))
	return z.LitNull
}

// VariableOf returns the Variable corresponding to the provided
// literal, or nil if no such Variable exists.
func (d *litMapping) VariableOf(m z.Lit) *Variable {
	if v, ok := d.variables[m]; ok {
		return v
	}
	d.errs = append(d.errs, fmt.Errorf("no variable corresponding to %s", m))
	return nil
}

// Error returns a single error value that is an aggregation of all
// errors encountered during a litMapping's lifetime, or nil if there
// have been no errors. A non-nil return value likely indicates a
// problem with the encoding or constraint implementations.
func (d *litMapping) Error() error {
	if len(d.errs) == 0 {
		return nil
	}
	s := make([]string, len(d.errs))
	for i, err := range d.errs {
		s[i] = err.Error()
	}
	return fmt.Errorf("%d errors encountered: %s", len(s), strings.Join(s, ", "))
}

// AddConstraints adds the constraints encoded in the embedded circuit
// to the solver g.
func (d *litMapping) AddConstraints(g inter.S) {
	d.c.ToCnf(g)
}

func (d *litMapping) AssumeConstraints(s inter.S) {
	for m := range d.constraints {
		s.Assume(m)
	}
}

// AnchorIdentifiers returns a slice containing the Identifiers of
// every Variable with at least one anchor constraint, in the order
// they appear in the input.
func (d *litMapping) AnchorIdentifiers() []Identifier {
	var ids []Identifier
	for _, variable := range d.inorder {
		for _, constraint := range variable.Constraints() {
			if constraint.anchor() {
				ids = append(ids, variable.Identifier())
				break
			}
		}
	}
	return ids
}

// Variables returns the Variables whose literals are true in the
// model found by g, in input order.
func (d *litMapping) Variables(g inter.S) []*Variable {
	var result []*Variable
	for _, v := range d.inorder {
		if g.Value(d.LitOf(v.Identifier())) {
			result = append(result, v)
		}
	}
	return result
}

// Conflicts translates the failed assumptions reported by g back into
// the applied constraints that caused them.
func (d *litMapping) Conflicts(g inter.Assumable) []AppliedConstraint {
	whys := g.Why(nil)
	as := make([]AppliedConstraint, 0, len(whys))
	for _, why := range whys {
		if a, ok := d.constraints[why]; ok {
			as = append(as, a)
		}
	}
	return as
}
