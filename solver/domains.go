package solver

import (
	"sort"

	"github.com/arbelos/crossfill/puzzle"
)

// domains is the Domain Store: for every slot, the set of words still
// considered possible. It only ever shrinks; propagation deletes words and
// nothing puts them back. The search engine reads it but never mutates it.
type domains map[puzzle.Slot]map[string]struct{}

func newDomains(slots []puzzle.Slot, words []string) domains {
	d := make(domains, len(slots))
	for _, s := range slots {
		set := make(map[string]struct{}, len(words))
		for _, w := range words {
			set[w] = struct{}{}
		}
		d[s] = set
	}
	return d
}

func (d domains) remove(s puzzle.Slot, w string) {
	delete(d[s], w)
}

func (d domains) anyEmpty() bool {
	for _, set := range d {
		if len(set) == 0 {
			return true
		}
	}
	return false
}

// words returns a sorted copy of a slot's domain, so callers that iterate
// get a reproducible order.
func (d domains) words(s puzzle.Slot) []string {
	out := make([]string, 0, len(d[s]))
	for w := range d[s] {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
