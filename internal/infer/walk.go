package infer

import (
	"github.com/sunholo/lambdacore/internal/term"
	"github.com/sunholo/lambdacore/internal/typ"
)

// Run performs a complete, fresh inference of t: a new Environment is
// created, TVar(0) is minted as the initial required type, and the walk
// proceeds per the "Initial invocation" rule. It returns the raw
// (pre-canonicalization) type, typed tree, and Environment so callers can
// canonicalize and merge constraints afterward.
func Run(t term.Term) (typ.Type, TypedTerm, *Environment, error) {
	env := NewEnvironment()
	required := env.FreshTVar()
	ty, tree, err := Infer(t, required, []term.Term{t}, env)
	return ty, tree, env, err
}

// Infer traverses t top-down with expected type required, allocating
// fresh type variables and unifying as it goes, producing the term's
// type and its TypedTerm decoration. trace lists the
// enclosing subterms, innermost-first, for error reporting. Most callers
// want Run, which sets up the initial call for a whole term.
func Infer(t term.Term, required typ.Type, trace []term.Term, env *Environment) (typ.Type, TypedTerm, error) {
	switch n := t.(type) {
	case *term.Var:
		return inferVar(n, required, trace, env)
	case *term.App:
		return inferApp(n, required, trace, env)
	case *term.Abs:
		return inferAbs(n, required, trace, env)
	default:
		panic("infer: unknown term.Term node")
	}
}

func inferVar(v *term.Var, required typ.Type, trace []term.Term, env *Environment) (typ.Type, TypedTerm, error) {
	old, ok := env.LookupTermVar(v.Name)
	if !ok {
		env.BindTermVar(v.Name, required)
		return required, &TypedVar{Type: required}, nil
	}
	tau, err := env.Unify(old, required)
	if err != nil {
		return nil, nil, wrapWithTrace(err, trace)
	}
	return tau, &TypedVar{Type: tau}, nil
}

func inferApp(a *term.App, required typ.Type, trace []term.Term, env *Environment) (typ.Type, TypedTerm, error) {
	alpha := env.FreshTVar()

	tx, treeX, err := Infer(a.Arg, alpha, prepend(a.Arg, trace), env)
	if err != nil {
		return nil, nil, err
	}

	fRequired := &typ.TArrow{Dom: tx, Cod: required}
	tf, treeF, err := Infer(a.Func, fRequired, prepend(a.Func, trace), env)
	if err != nil {
		return nil, nil, err
	}

	arrow, ok := tf.(*typ.TArrow)
	if !ok {
		// Defensive guard: the function position's inferred type must be
		// an arrow given fRequired was itself an arrow, but a future
		// extension to the type system could break that invariant.
		return nil, nil, wrapWithTrace(errUnhandledUnify(tf, fRequired), trace)
	}

	return arrow.Cod, &TypedApp{Func: treeF, Arg: treeX}, nil
}

func inferAbs(a *term.Abs, required typ.Type, trace []term.Term, env *Environment) (typ.Type, TypedTerm, error) {
	alpha := env.FreshTVar()
	beta := env.FreshTVar()

	saved, hadSaved := env.LookupTermVar(a.Param)
	env.BindTermVar(a.Param, alpha)

	tBeta, treeBody, err := Infer(a.Body, beta, prepend(a.Body, trace), env)
	if err != nil {
		return nil, nil, err
	}

	total, err := env.Unify(&typ.TArrow{Dom: alpha, Cod: tBeta}, required)
	if err != nil {
		return nil, nil, wrapWithTrace(err, trace)
	}

	if hadSaved {
		env.BindTermVar(a.Param, saved)
	} else {
		env.UnbindTermVar(a.Param)
	}

	return total, &TypedAbs{ParamType: alpha, Body: treeBody}, nil
}

// prepend builds the trace passed into a recursive Infer call: child goes
// first (innermost), ancestors follow.
func prepend(child term.Term, trace []term.Term) []term.Term {
	out := make([]term.Term, 0, len(trace)+1)
	out = append(out, child)
	out = append(out, trace...)
	return out
}
