package infer

import "github.com/sunholo/lambdacore/internal/typ"

// Unify merges t1 and t2 under the current substitution, updating the
// Environment with any new bindings. It prunes both arguments through
// Rewrite before comparing them, so a variable already bound by an
// earlier call is always unified by its current value, never by a stale
// reference to the variable itself — without this, a later call could
// silently overwrite a binding that an earlier call already depended on.
//
// With only TVar and TArrow in this type system, the occurs check is the
// only way Unify can fail; a successful call always returns an
// *InfiniteTypeError-free nil error.
func (e *Environment) Unify(t1, t2 typ.Type) (typ.Type, error) {
	t1 = e.Rewrite(t1)
	t2 = e.Rewrite(t2)

	if v1, ok := t1.(*typ.TVar); ok {
		if v2, ok := t2.(*typ.TVar); ok && v1.Id == v2.Id {
			return t1, nil
		}
		if occurs(v1.Id, t2) {
			return nil, &InfiniteTypeError{Var: v1.Id, Type: t2}
		}
		e.bindTypeVar(v1.Id, t2)
		return t2, nil
	}

	if v2, ok := t2.(*typ.TVar); ok {
		if occurs(v2.Id, t1) {
			return nil, &InfiniteTypeError{Var: v2.Id, Type: t1}
		}
		e.bindTypeVar(v2.Id, t1)
		return t1, nil
	}

	a1, ok1 := t1.(*typ.TArrow)
	a2, ok2 := t2.(*typ.TArrow)
	if ok1 && ok2 {
		l, err := e.Unify(a1.Dom, a2.Dom)
		if err != nil {
			return nil, err
		}
		r, err := e.Unify(a1.Cod, a2.Cod)
		if err != nil {
			return nil, err
		}
		return &typ.TArrow{Dom: l, Cod: r}, nil
	}

	// Unreachable with only TVar/TArrow in the type system; kept as a
	// defensive fallback in case a future extension adds a type shape the
	// cases above don't cover.
	return nil, errUnhandledUnify(t1, t2)
}

// occurs reports whether the type variable id appears anywhere in t — the
// occurs check that rejects infinite types.
func occurs(id typ.TypeId, t typ.Type) bool {
	switch tt := t.(type) {
	case *typ.TVar:
		return tt.Id == id
	case *typ.TArrow:
		return occurs(id, tt.Dom) || occurs(id, tt.Cod)
	default:
		return false
	}
}
