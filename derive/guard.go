package derive

// activeSet holds the non-terminals currently being expanded, together with
// the input position their expansion started at.
type activeSet map[activation]struct{}

type activation struct {
	sym string
	pos int
}

var exists = struct{}{}

func (set activeSet) add(sym string, pos int) {
	set[activation{sym, pos}] = exists
}

func (set activeSet) contains(sym string, pos int) bool {
	if set == nil {
		return false
	}
	_, ok := set[activation{sym, pos}]
	return ok
}

func (set activeSet) delete(sym string, pos int) {
	if set != nil {
		delete(set, activation{sym, pos})
	}
}
