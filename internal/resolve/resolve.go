// Package resolve implements fully qualified name computation, Reference
// targeting, hierarchy linearisation, and method/constructor lookup. It
// builds on the raw id/QN lookups env.Environment provides; env never
// imports resolve, keeping the dependency one-directional.
package resolve

import (
	"strings"

	"github.com/uqbar-project/wollok-core/internal/ast"
	"github.com/uqbar-project/wollok-core/internal/env"
	"github.com/uqbar-project/wollok-core/internal/runtimeerr"
)

// FullyQualifiedName computes the FQN of an Entity: the label of ent,
// prefixed by its parent's FQN and a '.' when the parent is itself a
// Package; otherwise just the label.
func FullyQualifiedName(e *env.Environment, ent ast.Entity) (string, error) {
	label, err := labelOf(e, ent)
	if err != nil {
		return "", err
	}
	parent, err := e.Parent(ent)
	if err != nil {
		return label, nil
	}
	pkg, ok := parent.(*ast.Package)
	if !ok {
		return label, nil
	}
	parentFQN, err := FullyQualifiedName(e, pkg)
	if err != nil {
		return "", err
	}
	return parentFQN + "." + label, nil
}

func labelOf(e *env.Environment, ent ast.Entity) (string, error) {
	if s, ok := ent.(*ast.Singleton); ok && s.Name == "" {
		superFQN, err := superModuleFQN(e, s)
		if err != nil {
			return "", err
		}
		return superFQN + "#" + string(s.ID()), nil
	}
	return strings.ReplaceAll(entityName(ent), ".#", ""), nil
}

func superModuleFQN(e *env.Environment, s *ast.Singleton) (string, error) {
	if s.SuperCall.Superclass == nil {
		return "", runtimeerr.Newf(runtimeerr.UnresolvedReference,
			"anonymous singleton %q has no superCall reference to label from", s.ID())
	}
	target, err := Target(e, s.SuperCall.Superclass)
	if err != nil {
		return "", err
	}
	superEnt, ok := target.(ast.Entity)
	if !ok {
		return "", runtimeerr.Newf(runtimeerr.UnresolvedReference,
			"superCall target of singleton %q is not an entity", s.ID())
	}
	return FullyQualifiedName(e, superEnt)
}

func entityName(ent ast.Entity) string {
	switch v := ent.(type) {
	case *ast.Package:
		return v.Name
	case *ast.Class:
		return v.Name
	case *ast.Singleton:
		return v.Name
	case *ast.Mixin:
		return v.Name
	case *ast.Program:
		return v.Name
	case *ast.Describe:
		return v.Name
	case *ast.Test:
		return v.Name
	default:
		return ""
	}
}

// Target resolves a Reference to its target node: the leading dotted
// segment is looked up in the Reference's scope to obtain a Package id,
// and the remaining segments (possibly none) are resolved as a QN within
// that Package.
func Target(e *env.Environment, ref *ast.Reference) (ast.Node, error) {
	head, tail := splitOnFirst(ref.Name, '.')
	pkgID, ok := ref.Scope[head]
	if !ok {
		return nil, runtimeerr.Newf(runtimeerr.UnresolvedReference,
			"could not resolve reference %q: %q is not in scope", ref.Name, head)
	}
	pkgNode, err := e.GetNodeById(pkgID)
	if err != nil {
		return nil, err
	}
	pkg, ok := pkgNode.(*ast.Package)
	if !ok {
		return nil, runtimeerr.Newf(runtimeerr.UnresolvedReference,
			"could not resolve reference %q: scope entry for %q is not a Package", ref.Name, head)
	}
	return e.ResolveQN(pkg, tail)
}

func splitOnFirst(s string, sep byte) (head, tail string) {
	idx := strings.IndexByte(s, sep)
	if idx < 0 {
		return s, ""
	}
	return s[:idx], s[idx+1:]
}
