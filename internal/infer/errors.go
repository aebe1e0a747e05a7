package infer

import (
	"fmt"
	"strings"

	"github.com/sunholo/lambdacore/internal/term"
	"github.com/sunholo/lambdacore/internal/typ"
)

// InfiniteTypeError is the Unifier's occurs-check failure: binding a type
// variable to a type that contains it would build an infinitely-unfolding
// type.
type InfiniteTypeError struct {
	Var  typ.TypeId
	Type typ.Type
}

func (e *InfiniteTypeError) Error() string {
	return fmt.Sprintf("infinite type: %s = %s", (&typ.TVar{Id: e.Var}).String(), e.Type.String())
}

// errUnhandledUnify is the defensive fallback for a Unify case that
// cannot arise with only TVar/TArrow in this type system, kept in case a
// future extension adds a new Type variant.
func errUnhandledUnify(t1, t2 typ.Type) error {
	return fmt.Errorf("cannot unify %s with %s", t1.String(), t2.String())
}

// wrapWithTrace renders the "can't construct infinite type: ...\n\tin
// ...\n\tin ..." message, enumerating trace innermost-first. Any other
// Unify error (the unreachable defensive fallback) is passed through with
// the same trace suffix but without the infinite-type-specific wording.
func wrapWithTrace(err error, trace []term.Term) error {
	var b strings.Builder
	if ite, ok := err.(*InfiniteTypeError); ok {
		b.WriteString("can't construct ")
		b.WriteString(ite.Error())
	} else {
		b.WriteString(err.Error())
	}
	for _, t := range trace {
		b.WriteString("\n\tin ")
		b.WriteString(t.String())
	}
	return fmt.Errorf("%s", b.String())
}
