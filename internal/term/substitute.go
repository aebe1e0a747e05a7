package term

import "github.com/sunholo/lambdacore/internal/names"

// Substitute replaces free occurrences of x in t by n, renaming binders as
// necessary to avoid capturing a free variable of n.
//
// The freshness set used when a binder must be renamed need only exclude
// the free variables of n, not those of the body being substituted into —
// that matches the classical Hindley rule, and is sufficient because the
// inner substitution of the old binder by the fresh name cannot reintroduce
// capture relative to n.
func Substitute(x string, n Term, t Term) Term {
	switch body := t.(type) {
	case *Var:
		if body.Name == x {
			return n
		}
		return t

	case *App:
		return &App{
			Func: Substitute(x, n, body.Func),
			Arg:  Substitute(x, n, body.Arg),
		}

	case *Abs:
		y := body.Param
		if x == y || !FreeVars(body.Body).Contains(x) {
			return t
		}
		if !FreeVars(n).Contains(y) {
			return &Abs{Param: y, Body: Substitute(x, n, body.Body)}
		}
		z := names.Fresh(FreeVars(n))
		renamed := Substitute(y, &Var{Name: z}, body.Body)
		return &Abs{Param: z, Body: Substitute(x, n, renamed)}

	default:
		return t
	}
}
