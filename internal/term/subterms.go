package term

// SubTerms returns the set of all subterms of t, including t itself. For
// an Abs node it does not synthesize a Var for the binder — only t and the
// subterms of its body.
func SubTerms(t Term) []Term {
	return dedupe(collect(t))
}

func collect(t Term) []Term {
	switch n := t.(type) {
	case *Var:
		return []Term{t}
	case *App:
		out := []Term{t}
		out = append(out, collect(n.Func)...)
		out = append(out, collect(n.Arg)...)
		return out
	case *Abs:
		out := []Term{t}
		out = append(out, collect(n.Body)...)
		return out
	default:
		return nil
	}
}

func dedupe(ts []Term) []Term {
	out := make([]Term, 0, len(ts))
	for _, t := range ts {
		found := false
		for _, seen := range out {
			if seen.Equals(t) {
				found = true
				break
			}
		}
		if !found {
			out = append(out, t)
		}
	}
	return out
}

// OccursIn reports whether p occurs somewhere in t, found via
// PatternMatch's traversal order (structural equality, not
// α-equivalence). Because PatternMatch tries an Abs's binder as if it
// were a Var node before its body, OccursIn(Var "x", λx. y) returns true
// even though x does not occur free in λx. y — the same quirk
// PatternMatch itself documents, preserved deliberately.
func OccursIn(p, t Term) bool {
	_, ok := PatternMatch(func(n Term) (Term, bool) {
		if n.Equals(p) {
			return n, true
		}
		return nil, false
	}, t)
	return ok
}
