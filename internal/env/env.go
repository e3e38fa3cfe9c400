// Package env implements the Environment index: caches from id and FQN to
// node, and a lazily-computed parent back-pointer cache. Resolver operations
// that need more than a raw tree lookup (fully qualified name, hierarchy,
// method/constructor lookup) live one layer up in resolve, which imports
// this package rather than the reverse.
package env

import (
	"strings"

	"github.com/uqbar-project/wollok-core/internal/ast"
	"github.com/uqbar-project/wollok-core/internal/config"
	"github.com/uqbar-project/wollok-core/internal/ids"
	"github.com/uqbar-project/wollok-core/internal/runtimeerr"
)

// Environment wraps a Linked *ast.Environment with a node cache and a
// parent cache. Both caches are populated monotonically: once an entry is
// set it never changes, which is what makes their exposure to a
// single-threaded consumer safe.
type Environment struct {
	root *ast.Environment

	nodeCache   *ids.Cache[ids.ID, ast.Node]
	parentCache *ids.Cache[ids.ID, ids.ID]
}

// New builds an Environment index over a Linked tree with no capacity
// hints for its caches.
func New(root *ast.Environment) *Environment {
	return NewWithHints(root, config.CacheConfig{})
}

// NewWithHints builds an Environment index over a Linked tree, sizing its
// node and parent caches from hints.
func NewWithHints(root *ast.Environment, hints config.CacheConfig) *Environment {
	return &Environment{
		root:        root,
		nodeCache:   ids.NewCache[ids.ID, ast.Node](hints.NodeCacheHint),
		parentCache: ids.NewCache[ids.ID, ids.ID](hints.ParentCacheHint),
	}
}

// Linked takes a Filled tree with ids already assigned and scope already
// populated on every Reference (the external linker's job), and returns the
// Environment index that decorates the tree with the Linked-stage
// operations — GetNodeById, GetNodeByFQN, Parent, ClosestAncestor here, and
// FQN/target/hierarchy/lookup one layer up in resolve.
func Linked(root *ast.Environment, hints config.CacheConfig) *Environment {
	return NewWithHints(root, hints)
}

// Root returns the wrapped Environment node.
func (e *Environment) Root() *ast.Environment { return e.root }

// GetNodeById returns the unique node with that id, or a MissingNode error.
// The result is cached; a miss is cached too, so a repeated query for a
// genuinely absent id does not rescan the tree.
func (e *Environment) GetNodeById(id ids.ID) (ast.Node, error) {
	n := e.nodeCache.GetOrUpdate(id, func() ast.Node {
		return findByID(e.root, id)
	})
	if n == nil {
		return nil, runtimeerr.Newf(runtimeerr.MissingNode, "no node with id %q", id)
	}
	return n, nil
}

func findByID(n ast.Node, id ids.ID) ast.Node {
	if n.ID() == id {
		return n
	}
	for _, c := range n.Children() {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// GetNodeByFQN splits fqn on the first '.', locates the top-level Package by
// name, and delegates the remainder to the Package-relative QN walk. The
// result is cached.
func (e *Environment) GetNodeByFQN(fqn string) (ast.Node, error) {
	n := e.nodeCache.GetOrUpdate(fqnCacheKey(fqn), func() ast.Node {
		head, tail := splitOnFirst(fqn, '.')
		pkg := e.topLevelPackage(head)
		if pkg == nil {
			return nil
		}
		node, err := e.ResolveQN(pkg, tail)
		if err != nil {
			return nil
		}
		return node
	})
	if n == nil {
		return nil, runtimeerr.Newf(runtimeerr.UnresolvedReference, "could not resolve reference %q", fqn)
	}
	return n, nil
}

// fqnCacheKey namespaces FQN lookups so they cannot collide with id lookups
// in the shared node cache (ids are never empty and never contain '.').
func fqnCacheKey(fqn string) ids.ID { return ids.ID("fqn:" + fqn) }

func (e *Environment) topLevelPackage(name string) *ast.Package {
	for _, p := range e.root.Packages {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// ResolveQN resolves a qualified name relative to pkg: if qn contains '#',
// the substring after it is an id, resolved directly against the
// Environment. Otherwise qn is split on '.' and each step walks to the
// unique Entity child of the current node whose name matches.
func (e *Environment) ResolveQN(pkg *ast.Package, qn string) (ast.Node, error) {
	if idx := strings.IndexByte(qn, '#'); idx >= 0 {
		return e.GetNodeById(ids.ID(qn[idx+1:]))
	}
	if qn == "" {
		return pkg, nil
	}
	var current ast.Node = pkg
	for _, step := range strings.Split(qn, ".") {
		next := childEntityNamed(current, step)
		if next == nil {
			return nil, runtimeerr.Newf(runtimeerr.UnresolvedReference,
				"could not resolve reference %q: no member named %q", qn, step)
		}
		current = next
	}
	return current, nil
}

func childEntityNamed(n ast.Node, name string) ast.Node {
	for _, c := range n.Children() {
		ent, ok := c.(ast.Entity)
		if !ok || !ent.Is(ast.CategoryEntity) {
			continue
		}
		if entityName(ent) == name {
			return ent
		}
	}
	return nil
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

func splitOnFirst(s string, sep byte) (head, tail string) {
	idx := strings.IndexByte(s, sep)
	if idx < 0 {
		return s, ""
	}
	return s[:idx], s[idx+1:]
}

// TopLevelEntities filters the Environment's top-level Packages to those
// assignable to T.
func TopLevelEntities[T ast.Node](e *Environment) []T {
	var out []T
	for _, p := range e.root.Packages {
		if t, ok := ast.Node(p).(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// Parent returns the unique node whose Children contains n, or an Orphan
// error if n is not reachable from the root. The parent cache is
// populated lazily by scanning the tree from the root on first miss.
func (e *Environment) Parent(n ast.Node) (ast.Node, error) {
	if n.ID() == e.root.ID() {
		return nil, runtimeerr.Newf(runtimeerr.Orphan, "the Environment root has no parent")
	}
	parentID, ok := e.parentCache.Peek(n.ID())
	if !ok {
		e.indexParents()
		parentID, ok = e.parentCache.Peek(n.ID())
		if !ok {
			return nil, runtimeerr.Newf(runtimeerr.Orphan, "node %q is not reachable from the Environment root", n.ID())
		}
	}
	return e.GetNodeById(parentID)
}

func (e *Environment) indexParents() {
	var walk func(parent ast.Node)
	walk = func(parent ast.Node) {
		for _, c := range parent.Children() {
			e.parentCache.GetOrUpdate(c.ID(), func() ids.ID { return parent.ID() })
			walk(c)
		}
	}
	walk(e.root)
}

// ClosestAncestor returns the nearest ancestor of n whose Is(sel) holds, or
// ok=false if none exists before reaching the root.
func (e *Environment) ClosestAncestor(n ast.Node, sel ast.Selector) (ast.Node, bool) {
	current := n
	for {
		parent, err := e.Parent(current)
		if err != nil {
			return nil, false
		}
		if parent.Is(sel) {
			return parent, true
		}
		current = parent
	}
}
