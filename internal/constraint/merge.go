package constraint

import (
	"errors"
	"fmt"

	"github.com/sunholo/lambdacore/internal/infer"
	"github.com/sunholo/lambdacore/internal/typ"
)

// Merge walks tree and typed in lockstep, producing a map from internal
// TypeId to user-facing NamedType. typed must already be
// canonical (post infer.Canonicalize) — the resulting map is keyed by
// those canonical ids.
func Merge(tree Tree, typed infer.TypedTerm) (map[typ.TypeId]typ.NamedType, error) {
	switch node := tree.(type) {
	case *Var:
		tv, ok := typed.(*infer.TypedVar)
		if !ok {
			return nil, errShapeMismatch()
		}
		if node.Ann == nil {
			return map[typ.TypeId]typ.NamedType{}, nil
		}
		return constrainType(tv.Type, node.Ann)

	case *App:
		ta, ok := typed.(*infer.TypedApp)
		if !ok {
			return nil, errShapeMismatch()
		}
		m1, err := Merge(node.Func, ta.Func)
		if err != nil {
			return nil, err
		}
		m2, err := Merge(node.Arg, ta.Arg)
		if err != nil {
			return nil, err
		}
		return mergeMaps(m1, m2)

	case *Abs:
		ta, ok := typed.(*infer.TypedAbs)
		if !ok {
			return nil, errShapeMismatch()
		}
		m1 := map[typ.TypeId]typ.NamedType{}
		if node.Ann != nil {
			var err error
			m1, err = constrainType(ta.ParamType, node.Ann)
			if err != nil {
				return nil, err
			}
		}
		m2, err := Merge(node.Body, ta.Body)
		if err != nil {
			return nil, err
		}
		return mergeMaps(m1, m2)

	default:
		return nil, errShapeMismatch()
	}
}

// constrainType unifies a Type against a user-supplied NamedType
// annotation, producing the {TypeId -> NamedType} bindings it implies.
func constrainType(t typ.Type, n typ.NamedType) (map[typ.TypeId]typ.NamedType, error) {
	switch tt := t.(type) {
	case *typ.TVar:
		return map[typ.TypeId]typ.NamedType{tt.Id: n}, nil

	case *typ.TArrow:
		na, ok := n.(*typ.NArrow)
		if !ok {
			return nil, fmt.Errorf("type %s can't be constraint to %s", t.String(), n.String())
		}
		m1, err := constrainType(tt.Dom, na.Dom)
		if err != nil {
			return nil, err
		}
		m2, err := constrainType(tt.Cod, na.Cod)
		if err != nil {
			return nil, err
		}
		return mergeMaps(m1, m2)

	default:
		return nil, errShapeMismatch()
	}
}

// mergeMaps unions m1 and m2; a key present in both with distinct values
// is a conflicting constraint and fails.
func mergeMaps(m1, m2 map[typ.TypeId]typ.NamedType) (map[typ.TypeId]typ.NamedType, error) {
	out := make(map[typ.TypeId]typ.NamedType, len(m1)+len(m2))
	for id, n := range m1 {
		out[id] = n
	}
	for id, n := range m2 {
		if existing, ok := out[id]; ok && !existing.Equals(n) {
			return nil, fmt.Errorf("%s can't be %s", existing.String(), n.String())
		}
		out[id] = n
	}
	return out, nil
}

func errShapeMismatch() error {
	return errors.New("constraint shape not match!")
}
