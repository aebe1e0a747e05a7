package infer

import "github.com/sunholo/lambdacore/internal/typ"

// Environment carries the mutable state threaded through a single
// inference call: the term-variable -> type bindings in scope, the
// accumulated type-variable substitution, and the fresh-id counter.
// Created empty per inferType call and never shared.
type Environment struct {
	termVarMap map[string]typ.Type
	typeVarMap map[typ.TypeId]typ.Type
	counter    int
}

// NewEnvironment returns an empty Environment with its counter positioned
// so the first minted id is 0.
func NewEnvironment() *Environment {
	return &Environment{
		termVarMap: make(map[string]typ.Type),
		typeVarMap: make(map[typ.TypeId]typ.Type),
		counter:    -1,
	}
}

// mintId increments the counter and returns the new id.
func (e *Environment) mintId() typ.TypeId {
	e.counter++
	return typ.TypeId(e.counter)
}

// FreshTVar returns a new, never-before-seen type variable.
func (e *Environment) FreshTVar() typ.Type {
	return &typ.TVar{Id: e.mintId()}
}

// BindTermVar inserts or overwrites the binding of name.
func (e *Environment) BindTermVar(name string, t typ.Type) {
	e.termVarMap[name] = t
}

// UnbindTermVar removes the binding of name, if any.
func (e *Environment) UnbindTermVar(name string) {
	delete(e.termVarMap, name)
}

// LookupTermVar returns the current binding of name, if any.
func (e *Environment) LookupTermVar(name string) (typ.Type, bool) {
	t, ok := e.termVarMap[name]
	return t, ok
}

// bindTypeVar records that id has been unified to t, then rewrites every
// entry of the term-variable map so that subsequent lookups see the
// up-to-date type. A no-op when t is id itself.
func (e *Environment) bindTypeVar(id typ.TypeId, t typ.Type) {
	if tv, ok := t.(*typ.TVar); ok && tv.Id == id {
		return
	}
	e.typeVarMap[id] = t
	for name, bound := range e.termVarMap {
		e.termVarMap[name] = e.Rewrite(bound)
	}
}

// Rewrite applies the accumulated type-variable substitution to t,
// transitively: every TVar(i) with a binding in typeVarMap is replaced by
// the (recursively rewritten) binding's target. Terminates because the
// occurs check in Unify prevents cycles.
func (e *Environment) Rewrite(t typ.Type) typ.Type {
	switch tt := t.(type) {
	case *typ.TVar:
		if bound, ok := e.typeVarMap[tt.Id]; ok {
			return e.Rewrite(bound)
		}
		return t
	case *typ.TArrow:
		return &typ.TArrow{Dom: e.Rewrite(tt.Dom), Cod: e.Rewrite(tt.Cod)}
	default:
		return t
	}
}
