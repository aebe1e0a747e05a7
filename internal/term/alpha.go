package term

// AlphaEqual reports whether t1 and t2 are equal up to consistent renaming
// of bound variables.
//
// Two Abs nodes Abs(v1, e1) and Abs(v2, e2) are α-equal iff v2 is not free
// in Abs(v1, e1) and e1 is (recursively) α-equal to e2 with v2 substituted
// by v1 — the substitution is capture-avoiding, so it pushes the renaming
// through any nested binders that would otherwise clash, while leaving
// independently-named inner binders untouched; comparing the results with
// AlphaEqual (rather than plain structural Equals) is what lets this rule
// decide equivalence at every nesting depth, not just the outermost pair.
func AlphaEqual(t1, t2 Term) bool {
	switch a := t1.(type) {
	case *Var:
		b, ok := t2.(*Var)
		return ok && a.Name == b.Name

	case *App:
		b, ok := t2.(*App)
		return ok && AlphaEqual(a.Func, b.Func) && AlphaEqual(a.Arg, b.Arg)

	case *Abs:
		b, ok := t2.(*Abs)
		if !ok {
			return false
		}
		if FreeVars(t1).Contains(b.Param) {
			return false
		}
		renamedBody := Substitute(b.Param, &Var{Name: a.Param}, b.Body)
		return AlphaEqual(a.Body, renamedBody)

	default:
		return false
	}
}
