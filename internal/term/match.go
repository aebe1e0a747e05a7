package term

// Matcher attempts to produce a result from a single term node, reporting
// whether it matched.
type Matcher func(Term) (Term, bool)

// PatternMatch attempts f at the root of t; if it matches, that result is
// returned. Otherwise PatternMatch recurses: for App, the left child then
// the right; for Abs, the bound variable — treated as if it were a Var
// node — first, then the body.
//
// The binder-as-Var step is deliberate: occursIn (Var
// "x") (λx. y) returns true under this rule even though x does not occur
// free in λx. y. This is preserved, not "fixed".
func PatternMatch(f Matcher, t Term) (Term, bool) {
	if r, ok := f(t); ok {
		return r, true
	}
	switch n := t.(type) {
	case *App:
		if r, ok := PatternMatch(f, n.Func); ok {
			return r, true
		}
		return PatternMatch(f, n.Arg)
	case *Abs:
		if r, ok := PatternMatch(f, &Var{Name: n.Param}); ok {
			return r, true
		}
		return PatternMatch(f, n.Body)
	default:
		return nil, false
	}
}
