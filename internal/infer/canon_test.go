package infer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/sunholo/lambdacore/internal/infer"
	"github.com/sunholo/lambdacore/internal/term"
	"github.com/sunholo/lambdacore/internal/typ"
)

func TestCanonicalizeRewritesAndRenumbers(t *testing.T) {
	expr := &term.Abs{Param: "x", Body: &term.Var{Name: "x"}}
	ty, tree, env, err := Run(expr)
	require.NoError(t, err)

	canonType, canonTree := Canonicalize(ty, tree, env)

	// Every TVar leaf in the output must be below the count of distinct
	// variables actually used -- here exactly one, t0.
	assert.Equal(t, "t0 -> t0", canonType.String())

	abs := canonTree.(*TypedAbs)
	assert.Equal(t, typ.TypeId(0), abs.ParamType.(*typ.TVar).Id)
	assert.Equal(t, typ.TypeId(0), abs.Body.(*TypedVar).Type.(*typ.TVar).Id)
}

func TestCanonicalizeOnApplicationProducesDenseIds(t *testing.T) {
	// (lambda x. x) (lambda y. y) : t0 -> t0 (spec.md §8 scenario 4) --
	// the result takes on the argument's identity-shaped type, so the
	// arrow's domain and codomain resolve to the same canonical id, and
	// Canonicalize must renumber that single surviving variable to 0.
	expr := &term.App{
		Func: &term.Abs{Param: "x", Body: &term.Var{Name: "x"}},
		Arg:  &term.Abs{Param: "y", Body: &term.Var{Name: "y"}},
	}
	ty, tree, env, err := Run(expr)
	require.NoError(t, err)

	canonType, _ := Canonicalize(ty, tree, env)
	arrow, ok := canonType.(*typ.TArrow)
	require.True(t, ok)
	dom := arrow.Dom.(*typ.TVar).Id
	cod := arrow.Cod.(*typ.TVar).Id
	assert.Equal(t, typ.TypeId(0), dom)
	assert.Equal(t, typ.TypeId(0), cod)
}
