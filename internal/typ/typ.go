// Package typ implements the simple-type algebra inference walks over:
// type variables and right-associative arrows, plus the user-facing
// NamedType shape parameterized by strings instead of TypeIds.
package typ

import "fmt"

// TypeId is an opaque, ordered, hashable identifier for a type variable.
type TypeId int

// String renders a TypeId in its default form, t<n>.
func (id TypeId) String() string {
	return fmt.Sprintf("t%d", int(id))
}

// Type is a simple type: TVar or TArrow.
type Type interface {
	fmt.Stringer
	typeNode()
}

// TVar is a type variable.
type TVar struct {
	Id TypeId
}

func (t *TVar) typeNode() {}

func (t *TVar) String() string { return t.Id.String() }

// TArrow is a function type, right-associative: a -> b -> c is
// TArrow{a, TArrow{b, c}}.
type TArrow struct {
	Dom Type
	Cod Type
}

func (t *TArrow) typeNode() {}

func (t *TArrow) String() string {
	dom := t.Dom.String()
	if _, ok := t.Dom.(*TArrow); ok {
		dom = "(" + dom + ")"
	}
	return dom + " -> " + t.Cod.String()
}

// Map applies f to every TypeId leaf of t, preserving arrow structure —
// the functorial map required by the canonicalizer (used to
// renumber type-variable identifiers).
func Map(t Type, f func(TypeId) Type) Type {
	switch tt := t.(type) {
	case *TVar:
		return f(tt.Id)
	case *TArrow:
		return &TArrow{Dom: Map(tt.Dom, f), Cod: Map(tt.Cod, f)}
	default:
		return t
	}
}

// NamedType is the same shape as Type, parameterized by strings instead
// of TypeIds; used for user-facing output and constraint skeletons.
type NamedType interface {
	fmt.Stringer
	namedNode()
	Equals(NamedType) bool
}

// NVar is a named type variable (a user-supplied name, or a TypeId's
// default t<n> rendering).
type NVar struct {
	Name string
}

func (n *NVar) namedNode() {}

func (n *NVar) String() string { return n.Name }

func (n *NVar) Equals(other NamedType) bool {
	o, ok := other.(*NVar)
	return ok && n.Name == o.Name
}

// NArrow is a named function type.
type NArrow struct {
	Dom NamedType
	Cod NamedType
}

func (n *NArrow) namedNode() {}

func (n *NArrow) String() string {
	dom := n.Dom.String()
	if _, ok := n.Dom.(*NArrow); ok {
		dom = "(" + dom + ")"
	}
	return dom + " -> " + n.Cod.String()
}

func (n *NArrow) Equals(other NamedType) bool {
	o, ok := other.(*NArrow)
	return ok && n.Dom.Equals(o.Dom) && n.Cod.Equals(o.Cod)
}
