package resolve

import (
	"github.com/uqbar-project/wollok-core/internal/ast"
	"github.com/uqbar-project/wollok-core/internal/collections"
	"github.com/uqbar-project/wollok-core/internal/env"
	"github.com/uqbar-project/wollok-core/internal/ids"
	"github.com/uqbar-project/wollok-core/internal/runtimeerr"
)

// Hierarchy computes the linearised ancestor sequence of m, comprising m
// and all its ancestors via mixins and superclass, duplicates removed, in a
// stable deterministic order. hierarchy[0] is always m.
func Hierarchy(e *env.Environment, m ast.Module) ([]ast.Module, error) {
	mods, err := h(e, m, map[ids.ID]bool{})
	if err != nil {
		return nil, err
	}
	return collections.Dedup(mods, func(mod ast.Module) ids.ID { return mod.ID() }), nil
}

func h(e *env.Environment, m ast.Module, excluded map[ids.ID]bool) ([]ast.Module, error) {
	if excluded[m.ID()] {
		return nil, nil
	}
	parents, err := parentsOf(e, m)
	if err != nil {
		return nil, err
	}

	exs := make(map[ids.ID]bool, len(excluded)+1)
	for id := range excluded {
		exs[id] = true
	}
	exs[m.ID()] = true

	// Parents already reachable through a previously-excluded branch would
	// just return nil from h's guard above; skip recursing into them.
	unvisited, _ := collections.DivideOn(parents, func(p ast.Module) bool { return !exs[p.ID()] })

	mods := []ast.Module{m}
	for _, p := range unvisited {
		hp, err := h(e, p, exs)
		if err != nil {
			return nil, err
		}
		mods = append(mods, hp...)
		exs[p.ID()] = true
	}
	return mods, nil
}

func parentsOf(e *env.Environment, m ast.Module) ([]ast.Module, error) {
	mixinRefs, superclassRef := moduleAncestry(m)

	refs := append([]*ast.Reference{}, mixinRefs...)
	if superclassRef != nil {
		refs = append(refs, superclassRef)
	}

	var resolveErr error
	parents := collections.MapOrdered(refs, func(ref *ast.Reference) ast.Module {
		if resolveErr != nil {
			return nil
		}
		mod, err := targetModule(e, ref)
		if err != nil {
			resolveErr = err
			return nil
		}
		return mod
	})
	if resolveErr != nil {
		return nil, resolveErr
	}
	return parents, nil
}

// moduleAncestry returns m's mixin references and, unless m is a Mixin
// itself, its superclass reference (nil if it has none).
func moduleAncestry(m ast.Module) (mixins []*ast.Reference, superclass *ast.Reference) {
	switch v := m.(type) {
	case *ast.Class:
		return v.Mixins, v.Superclass
	case *ast.Singleton:
		return v.Mixins, v.SuperCall.Superclass
	case *ast.Mixin:
		return v.Mixins, nil
	default:
		return nil, nil
	}
}

func targetModule(e *env.Environment, ref *ast.Reference) (ast.Module, error) {
	target, err := Target(e, ref)
	if err != nil {
		return nil, err
	}
	mod, ok := target.(ast.Module)
	if !ok {
		return nil, runtimeerr.Newf(runtimeerr.UnresolvedReference,
			"reference %q does not target a module", ref.Name)
	}
	return mod, nil
}

// Inherits holds iff other's id appears in m's hierarchy.
func Inherits(e *env.Environment, m ast.Module, other ast.Module) (bool, error) {
	hierarchy, err := Hierarchy(e, m)
	if err != nil {
		return false, err
	}
	for _, mod := range hierarchy {
		if mod.ID() == other.ID() {
			return true, nil
		}
	}
	return false, nil
}

// RootAncestor returns the furthest ancestor in m's hierarchy: the last
// element of Hierarchy(e, m). ok is false only when err is non-nil;
// Hierarchy always includes at least m itself, so a module with no mixins
// or superclass is its own root ancestor.
func RootAncestor(e *env.Environment, m ast.Module) (ast.Module, bool, error) {
	hierarchy, err := Hierarchy(e, m)
	if err != nil {
		return nil, false, err
	}
	root, ok := collections.Last(hierarchy)
	return root, ok, nil
}
