// Package render implements the one pretty-printing obligation this
// module takes on: rendering a typed tree as λ-calculus notation
// annotated with its inferred or constrained types. A surface-syntax
// pretty-printer with its own grammar and formatting rules is out of
// scope; this package only ever prints the abstract tree it is handed.
package render

import (
	"fmt"

	"github.com/sunholo/lambdacore/internal/infer"
	"github.com/sunholo/lambdacore/internal/term"
)

// ShowTypeTree renders t paired with its NamedTypedTerm decoration nt:
// each Var as {name: type}, each Abs as λv: type . body, each App as
// juxtaposition. Parenthesization: an App's left operand is
// parenthesized iff it is an Abs; its right operand iff it is not a Var.
func ShowTypeTree(t term.Term, nt infer.NamedTypedTerm) string {
	switch n := t.(type) {
	case *term.Var:
		nv := nt.(*infer.NamedVar)
		return fmt.Sprintf("{%s: %s}", n.Name, nv.Type.String())

	case *term.Abs:
		na := nt.(*infer.NamedAbs)
		return fmt.Sprintf("λ%s: %s . %s", n.Param, na.ParamType.String(), ShowTypeTree(n.Body, na.Body))

	case *term.App:
		na := nt.(*infer.NamedApp)
		return fmt.Sprintf("%s %s", showLeft(n.Func, na.Func), showRight(n.Arg, na.Arg))

	default:
		panic(fmt.Sprintf("render: unknown term.Term node %T", t))
	}
}

func showLeft(t term.Term, nt infer.NamedTypedTerm) string {
	s := ShowTypeTree(t, nt)
	if _, ok := t.(*term.Abs); ok {
		return "(" + s + ")"
	}
	return s
}

func showRight(t term.Term, nt infer.NamedTypedTerm) string {
	s := ShowTypeTree(t, nt)
	if _, ok := t.(*term.Var); ok {
		return s
	}
	return "(" + s + ")"
}
