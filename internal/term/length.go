package term

// Lgh computes the size of t: 1 for a Var, 1 + len(body) for an Abs,
// len(f) + len(x) for an App.
func Lgh(t Term) int {
	switch n := t.(type) {
	case *Var:
		return 1
	case *Abs:
		return 1 + Lgh(n.Body)
	case *App:
		return Lgh(n.Func) + Lgh(n.Arg)
	default:
		return 0
	}
}
