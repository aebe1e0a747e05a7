package infer

import "github.com/sunholo/lambdacore/internal/typ"

// Canonicalize rewrites the inferred type and typed tree by fully applying
// the Environment's accumulated substitution, then renumbers the
// remaining free TypeIds to a dense 0-based range. It must
// run before the Constraint Merger, whose name map is keyed by these
// canonical ids.
func Canonicalize(t typ.Type, tree TypedTerm, env *Environment) (typ.Type, TypedTerm) {
	rewrittenType := env.Rewrite(t)
	rewrittenTree := mapTypedTerm(tree, env.Rewrite)

	renumber := denseRenumbering(env)

	renumberType := func(tt typ.Type) typ.Type {
		return typ.Map(tt, func(id typ.TypeId) typ.Type {
			return &typ.TVar{Id: renumber[id]}
		})
	}

	return renumberType(rewrittenType), mapTypedTerm(rewrittenTree, renumberType)
}

// denseRenumbering computes the set of TypeIds still appearing in the
// rewritten output — {0, ..., counter} minus the keys of typeVarMap — and
// maps them, in ascending order, to 0, 1, 2, ....
func denseRenumbering(env *Environment) map[typ.TypeId]typ.TypeId {
	out := make(map[typ.TypeId]typ.TypeId)
	next := 0
	for i := 0; i <= env.counter; i++ {
		id := typ.TypeId(i)
		if _, bound := env.typeVarMap[id]; bound {
			continue
		}
		out[id] = typ.TypeId(next)
		next++
	}
	return out
}
