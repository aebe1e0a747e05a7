package term_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/sunholo/lambdacore/internal/term"
)

func TestSubTermsIncludesSelf(t *testing.T) {
	v := &Var{Name: "x"}
	subs := SubTerms(v)
	assert.Len(t, subs, 1)
	assert.True(t, subs[0].Equals(v))
}

func TestSubTermsDedupesRepeatedStructure(t *testing.T) {
	// x x -- both sides are structurally equal, so SubTerms should report
	// the whole term and the single repeated Var, not two copies of it.
	expr := &App{Func: &Var{Name: "x"}, Arg: &Var{Name: "x"}}
	subs := SubTerms(expr)
	assert.Len(t, subs, 2)
}

func TestSubTermsAbsDoesNotSynthesizeBinderVar(t *testing.T) {
	// λx. y -- x never occurs as a Var node in the tree, so SubTerms must
	// not invent one for the binder.
	expr := &Abs{Param: "x", Body: &Var{Name: "y"}}
	subs := SubTerms(expr)
	for _, s := range subs {
		if v, ok := s.(*Var); ok {
			assert.NotEqual(t, "x", v.Name)
		}
	}
}

func TestOccursInStructuralMatch(t *testing.T) {
	expr := &App{Func: &Var{Name: "f"}, Arg: &Var{Name: "x"}}
	assert.True(t, OccursIn(&Var{Name: "x"}, expr))
	assert.False(t, OccursIn(&Var{Name: "z"}, expr))
}

func TestOccursInIsNotAlphaEquivalence(t *testing.T) {
	// OccursIn uses structural Equals: λy. y does not structurally occur
	// inside λx. x even though they are alpha-equivalent.
	outer := idWith("x")
	assert.False(t, OccursIn(idWith("y"), outer))
}

func TestOccursInTreatsBinderAsVarQuirk(t *testing.T) {
	// occursIn (Var "x") (λx. y) returns true: PatternMatch tries an
	// Abs's binder as if it were a Var node before its body, so x is
	// found at the binder even though it does not occur free in λx. y.
	// This is deliberate, not a bug -- see match.go's PatternMatch.
	expr := &Abs{Param: "x", Body: &Var{Name: "y"}}
	assert.True(t, OccursIn(&Var{Name: "x"}, expr))
}
