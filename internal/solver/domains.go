package solver

import (
	"sort"

	"github.com/gridfill/gridfill/pkg/gridfill"
	"github.com/gridfill/gridfill/pkg/gridfill/puzzle"
)

// domainStore holds the current candidate word set of every slot.
// Domains only ever shrink: the store offers no way to add a word that
// was not present at initialization. It is single-threaded state owned
// by one solve call.
type domainStore struct {
	words map[gridfill.Variable]map[string]struct{}
}

func newDomainStore(p *puzzle.Puzzle) *domainStore {
	all := p.Words()
	d := &domainStore{words: make(map[gridfill.Variable]map[string]struct{})}
	for _, v := range p.Variables() {
		domain := make(map[string]struct{}, len(all))
		for _, w := range all {
			domain[w] = struct{}{}
		}
		d.words[v] = domain
	}
	return d
}

func (d *domainStore) remove(v gridfill.Variable, word string) {
	delete(d.words[v], word)
}

func (d *domainStore) contains(v gridfill.Variable, word string) bool {
	_, ok := d.words[v][word]
	return ok
}

func (d *domainStore) size(v gridfill.Variable) int {
	return len(d.words[v])
}

// only returns the sole remaining word of v's domain, if the domain is
// a singleton.
func (d *domainStore) only(v gridfill.Variable) (string, bool) {
	if len(d.words[v]) != 1 {
		return "", false
	}
	for w := range d.words[v] {
		return w, true
	}
	return "", false
}

// values returns v's current domain as a sorted slice. The copy makes
// it safe to remove words while iterating.
func (d *domainStore) values(v gridfill.Variable) []string {
	out := make([]string, 0, len(d.words[v]))
	for w := range d.words[v] {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
