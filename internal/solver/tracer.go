package solver

import (
	"github.com/gridfill/gridfill/pkg/gridfill"
)

// searchPosition is the concrete gridfill.SearchPosition handed to
// tracers for each tentative decision.
type searchPosition struct {
	depth    int
	variable gridfill.Variable
	word     string
}

var _ gridfill.SearchPosition = searchPosition{}

func (p searchPosition) Depth() int {
	return p.depth
}

func (p searchPosition) Variable() gridfill.Variable {
	return p.variable
}

func (p searchPosition) Word() string {
	return p.word
}
