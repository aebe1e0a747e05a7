package term

import "github.com/sunholo/lambdacore/internal/names"

// FreeVars returns the set of names occurring free in t.
func FreeVars(t Term) names.Set {
	switch n := t.(type) {
	case *Var:
		return names.NewSet(n.Name)
	case *App:
		return names.Union(FreeVars(n.Func), FreeVars(n.Arg))
	case *Abs:
		return names.Without(FreeVars(n.Body), n.Param)
	default:
		return names.NewSet()
	}
}

// BoundVars returns the set of names that appear as a binder anywhere in
// t. A name may be both free and bound in the same term.
func BoundVars(t Term) names.Set {
	switch n := t.(type) {
	case *Var:
		return names.NewSet()
	case *App:
		return names.Union(BoundVars(n.Func), BoundVars(n.Arg))
	case *Abs:
		return names.Union(names.NewSet(n.Param), BoundVars(n.Body))
	default:
		return names.NewSet()
	}
}
