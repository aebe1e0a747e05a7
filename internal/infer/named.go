package infer

import "github.com/sunholo/lambdacore/internal/typ"

// ToNamed converts a canonical Type to its user-facing NamedType, looking
// up each TypeId in names; an id with no entry falls back to its default
// t<n> rendering.
func ToNamed(t typ.Type, names map[typ.TypeId]typ.NamedType) typ.NamedType {
	switch tt := t.(type) {
	case *typ.TVar:
		if n, ok := names[tt.Id]; ok {
			return n
		}
		return &typ.NVar{Name: tt.Id.String()}
	case *typ.TArrow:
		return &typ.NArrow{Dom: ToNamed(tt.Dom, names), Cod: ToNamed(tt.Cod, names)}
	default:
		return &typ.NVar{Name: t.String()}
	}
}

// ToNamedTerm converts a canonical TypedTerm to its user-facing
// NamedTypedTerm using the same name map as ToNamed.
func ToNamedTerm(t TypedTerm, names map[typ.TypeId]typ.NamedType) NamedTypedTerm {
	switch n := t.(type) {
	case *TypedVar:
		return &NamedVar{Type: ToNamed(n.Type, names)}
	case *TypedApp:
		return &NamedApp{Func: ToNamedTerm(n.Func, names), Arg: ToNamedTerm(n.Arg, names)}
	case *TypedAbs:
		return &NamedAbs{ParamType: ToNamed(n.ParamType, names), Body: ToNamedTerm(n.Body, names)}
	default:
		panic("infer: unknown TypedTerm node")
	}
}
