// Package infer implements the Hindley–Milner-style monomorphic type
// inference core: the mutable Environment, the occurs-checked Unifier,
// the top-down Inference Walk, and the Canonicalizer that normalizes the
// walk's output.
package infer

import (
	"fmt"

	"github.com/sunholo/lambdacore/internal/typ"
)

// TypedTerm is a term tree whose Var carries its inferred Type and whose
// Abs carries the Type of its bound variable. App carries no annotation —
// its type is the codomain of its function child's arrow type and is
// recoverable from context, not stored redundantly.
type TypedTerm interface {
	typedNode()
}

// TypedVar is a Var node decorated with its inferred type.
type TypedVar struct {
	Type typ.Type
}

func (t *TypedVar) typedNode() {}

// TypedApp is an App node; its type is its TypedTerm parent context's
// concern, not stored here.
type TypedApp struct {
	Func TypedTerm
	Arg  TypedTerm
}

func (t *TypedApp) typedNode() {}

// TypedAbs is an Abs node decorated with the type of its bound variable.
type TypedAbs struct {
	ParamType typ.Type
	Body      TypedTerm
}

func (t *TypedAbs) typedNode() {}

// NamedTypedTerm is the same shape as TypedTerm, decorated with NamedType
// instead of Type — the user-facing form produced after canonicalization
// and constraint-name relabeling.
type NamedTypedTerm interface {
	namedTypedNode()
}

// NamedVar is a Var node decorated with its user-facing type.
type NamedVar struct {
	Type typ.NamedType
}

func (n *NamedVar) namedTypedNode() {}

// NamedApp is an App node.
type NamedApp struct {
	Func NamedTypedTerm
	Arg  NamedTypedTerm
}

func (n *NamedApp) namedTypedNode() {}

// NamedAbs is an Abs node decorated with the user-facing type of its
// bound variable.
type NamedAbs struct {
	ParamType typ.NamedType
	Body      NamedTypedTerm
}

func (n *NamedAbs) namedTypedNode() {}

// mapTypedTerm applies a Type-level transform to every annotation in a
// TypedTerm, used by the canonicalizer (rewrite, then renumber).
func mapTypedTerm(t TypedTerm, f func(typ.Type) typ.Type) TypedTerm {
	switch n := t.(type) {
	case *TypedVar:
		return &TypedVar{Type: f(n.Type)}
	case *TypedApp:
		return &TypedApp{Func: mapTypedTerm(n.Func, f), Arg: mapTypedTerm(n.Arg, f)}
	case *TypedAbs:
		return &TypedAbs{ParamType: f(n.ParamType), Body: mapTypedTerm(n.Body, f)}
	default:
		panic(fmt.Sprintf("infer: unknown TypedTerm node %T", t))
	}
}
