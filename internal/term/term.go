// Package term implements the untyped λ-calculus term algebra: variable
// occurrences, application, and abstraction, plus the structural
// operations (free/bound variables, length, occurrence, pattern matching,
// α-equivalence) and capture-avoiding substitution built on top of it.
package term

import "fmt"

// Term is a λ-expression: Var, App, or Abs.
type Term interface {
	fmt.Stringer
	// Equals reports structural equality — NOT α-equivalence. Use
	// AlphaEqual for the latter.
	Equals(Term) bool
	termNode()
}

// Var is an occurrence of an identifier.
type Var struct {
	Name string
}

func (v *Var) termNode() {}

func (v *Var) String() string { return v.Name }

func (v *Var) Equals(other Term) bool {
	o, ok := other.(*Var)
	return ok && v.Name == o.Name
}

// App is function application; left-associative in surface syntax.
type App struct {
	Func Term
	Arg  Term
}

func (a *App) termNode() {}

func (a *App) String() string {
	return fmt.Sprintf("%s %s", parenIfAbs(a.Func), parenIfNotPrimitive(a.Arg))
}

func (a *App) Equals(other Term) bool {
	o, ok := other.(*App)
	return ok && a.Func.Equals(o.Func) && a.Arg.Equals(o.Arg)
}

// Abs is an abstraction binding Param in Body.
type Abs struct {
	Param string
	Body  Term
}

func (a *Abs) termNode() {}

func (a *Abs) String() string {
	return fmt.Sprintf("λ%s. %s", a.Param, a.Body.String())
}

func (a *Abs) Equals(other Term) bool {
	o, ok := other.(*Abs)
	return ok && a.Param == o.Param && a.Body.Equals(o.Body)
}

func parenIfAbs(t Term) string {
	if _, ok := t.(*Abs); ok {
		return "(" + t.String() + ")"
	}
	return t.String()
}

func parenIfNotPrimitive(t Term) string {
	if _, ok := t.(*Var); ok {
		return t.String()
	}
	return "(" + t.String() + ")"
}
