// Package api exposes the external operations this module defines:
// inferType, inferTypeWithConstraint, showTypeTree (via internal/render),
// and the inferThenShow/inferConstraintShow convenience wrappers. It is
// the only package that wires the Inference Walk, Canonicalizer,
// Constraint Merger, and renderer together — none of the other packages
// import each other this way, to keep the dependency graph acyclic
// (internal/constraint already depends on internal/infer).
package api

import (
	"fmt"

	"github.com/sunholo/lambdacore/internal/constraint"
	"github.com/sunholo/lambdacore/internal/infer"
	"github.com/sunholo/lambdacore/internal/render"
	"github.com/sunholo/lambdacore/internal/term"
	"github.com/sunholo/lambdacore/internal/typ"
)

// InferType infers t's type with no constraints.
func InferType(t term.Term) (typ.NamedType, infer.NamedTypedTerm, error) {
	return InferTypeWithConstraint(t, nil)
}

// InferTypeWithConstraint infers t's type, additionally reconciling it
// against constraintTree (nil means "no constraints", same as
// InferType). On success, every annotation in constraintTree appears
// verbatim as the type of the corresponding node in the output tree.
func InferTypeWithConstraint(t term.Term, constraintTree constraint.Tree) (typ.NamedType, infer.NamedTypedTerm, error) {
	ty, tree, env, err := infer.Run(t)
	if err != nil {
		return nil, nil, err
	}

	canonType, canonTree := infer.Canonicalize(ty, tree, env)

	names := map[typ.TypeId]typ.NamedType{}
	if constraintTree != nil {
		names, err = constraint.Merge(constraintTree, canonTree)
		if err != nil {
			return nil, nil, err
		}
	}

	return infer.ToNamed(canonType, names), infer.ToNamedTerm(canonTree, names), nil
}

// ShowTypeTree renders the typed tree.
func ShowTypeTree(t term.Term, named infer.NamedTypedTerm) string {
	return render.ShowTypeTree(t, named)
}

// InferThenShow infers t's type with no constraints and renders the
// result as "<tree> : <type>", or returns the failure message verbatim.
func InferThenShow(t term.Term) string {
	return InferConstraintShow(t, nil)
}

// InferConstraintShow infers t's type against constraintTree and renders
// the result as "<tree> : <type>", or returns the failure message
// verbatim.
func InferConstraintShow(t term.Term, constraintTree constraint.Tree) string {
	ty, named, err := InferTypeWithConstraint(t, constraintTree)
	if err != nil {
		return err.Error()
	}
	return fmt.Sprintf("%s : %s", ShowTypeTree(t, named), ty.String())
}
