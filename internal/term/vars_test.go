package term_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sunholo/lambdacore/internal/names"
	. "github.com/sunholo/lambdacore/internal/term"
)

func TestFreeVarsVar(t *testing.T) {
	assert.Equal(t, names.NewSet("x"), FreeVars(&Var{Name: "x"}))
}

func TestFreeVarsAbsRemovesParam(t *testing.T) {
	// λx. x y -- y is free, x is bound
	expr := &Abs{Param: "x", Body: &App{Func: &Var{Name: "x"}, Arg: &Var{Name: "y"}}}
	assert.Equal(t, names.NewSet("y"), FreeVars(expr))
}

func TestFreeVarsAppUnion(t *testing.T) {
	expr := &App{Func: &Var{Name: "f"}, Arg: &Var{Name: "x"}}
	assert.Equal(t, names.NewSet("f", "x"), FreeVars(expr))
}

func TestBoundVarsCollectsEveryBinder(t *testing.T) {
	// λx. λy. x y -- both x and y are bound
	expr := &Abs{Param: "x", Body: &Abs{Param: "y", Body: &App{Func: &Var{Name: "x"}, Arg: &Var{Name: "y"}}}}
	assert.Equal(t, names.NewSet("x", "y"), BoundVars(expr))
}

func TestNameCanBeBothFreeAndBound(t *testing.T) {
	// (λx. x) x -- x is bound inside the abstraction and free at the
	// application's argument position.
	expr := &App{Func: &Abs{Param: "x", Body: &Var{Name: "x"}}, Arg: &Var{Name: "x"}}
	assert.True(t, FreeVars(expr).Contains("x"))
	assert.True(t, BoundVars(expr).Contains("x"))
}
