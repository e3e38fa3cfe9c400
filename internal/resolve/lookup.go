package resolve

import (
	"github.com/uqbar-project/wollok-core/internal/ast"
	"github.com/uqbar-project/wollok-core/internal/env"
)

// LookupMethod walks m's hierarchy in order, and within each module returns
// the first method whose name matches, that has a body or is native, and
// whose parameters satisfy the arity match predicate. Absence is a normal
// lookup miss, not an error — callers decide what to do with a not-found
// result.
func LookupMethod(e *env.Environment, m ast.Module, name string, arity int) (method *ast.Method, owner ast.Module, found bool, err error) {
	hierarchy, err := Hierarchy(e, m)
	if err != nil {
		return nil, nil, false, err
	}
	for _, mod := range hierarchy {
		for _, candidate := range methodsOf(mod) {
			if candidate.Name != name {
				continue
			}
			if candidate.Body == nil && !candidate.IsNative {
				continue
			}
			if !ast.ArityMatches(candidate.Parameters, arity) {
				continue
			}
			return candidate, mod, true, nil
		}
	}
	return nil, nil, false, nil
}

func methodsOf(m ast.Module) []*ast.Method {
	switch v := m.(type) {
	case *ast.Class:
		return v.Methods()
	case *ast.Singleton:
		return v.Methods()
	case *ast.Mixin:
		return v.Methods()
	default:
		return nil
	}
}

// LookupConstructor applies the arity predicate over a class's own
// constructors only; constructors are not inherited.
func LookupConstructor(c *ast.Class, arity int) (*ast.Constructor, bool) {
	for _, candidate := range c.Constructors() {
		if ast.ArityMatches(candidate.Parameters, arity) {
			return candidate, true
		}
	}
	return nil, false
}
