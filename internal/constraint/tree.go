// Package constraint implements the Constraint Merger: reconciling a
// user-supplied partial named-type skeleton with an inferred typed tree,
// producing a map from internal type-ids to user-facing names.
package constraint

import "github.com/sunholo/lambdacore/internal/typ"

// Tree is a ConstraintTree: the same shape as a term, decorated with
// optional NamedTypes at Var and Abs binder positions.
type Tree interface {
	constraintNode()
}

// Var is a constraint-tree leaf, optionally annotated. Ann is nil for
// "no constraint at this node".
type Var struct {
	Ann typ.NamedType
}

func (v *Var) constraintNode() {}

// App merges its children's constraints.
type App struct {
	Func Tree
	Arg  Tree
}

func (a *App) constraintNode() {}

// Abs optionally annotates its bound variable's type. Ann is nil for
// "no constraint at this node".
type Abs struct {
	Ann  typ.NamedType
	Body Tree
}

func (a *Abs) constraintNode() {}
