package derive

import (
	"strings"

	"github.com/Sammany1/CFG-Parser/grammar"
	"github.com/emirpasic/gods/lists/arraylist"
)

// Steps re-plays a derivation path as a leftmost derivation, starting from
// the sentential form consisting of the start symbol only. Every expansion
// replaces the first occurrence of its left-hand side in the current form
// by its right-hand side. The result holds the initial form followed by one
// form per expansion, i.e. len(path)+1 strings. Symbols are separated by a
// single space; the empty form is rendered as "ε".
//
// If an expansion's left-hand side does not occur in the current form, the
// path does not belong to start. Steps then traces an error and repeats the
// unchanged form.
func Steps(start string, path Path) []string {
	form := arraylist.New(start)
	steps := make([]string, 0, len(path)+1)
	steps = append(steps, sententialForm(form))
	for n, e := range path {
		i := indexOf(form, e.LHS)
		if i < 0 {
			tracer().Errorf("step %d: %s does not occur in %s", n+1, e.LHS, sententialForm(form))
		} else {
			form.Remove(i)
			if len(e.RHS) > 0 {
				symbols := make([]interface{}, len(e.RHS))
				for j, sym := range e.RHS {
					symbols[j] = sym
				}
				form.Insert(i, symbols...)
			}
		}
		steps = append(steps, sententialForm(form))
		tracer().Debugf("step %2d: %s", n+1, steps[len(steps)-1])
	}
	return steps
}

// indexOf finds the first occurrence of sym within the live part of form.
func indexOf(form *arraylist.List, sym string) int {
	for i := 0; i < form.Size(); i++ {
		if v, _ := form.Get(i); v == sym {
			return i
		}
	}
	return -1
}

func sententialForm(form *arraylist.List) string {
	if form.Empty() {
		return grammar.Epsilon
	}
	symbols := make([]string, form.Size())
	for i, v := range form.Values() {
		symbols[i] = v.(string)
	}
	return strings.Join(symbols, " ")
}
