// Package testkit holds shared invariant-checking helpers: plain functions
// returning an aggregated error via errors.Join, rather than a testify or
// ginkgo dependency. Only this package's own tests call them; the other
// packages' tests do not import testkit.
package testkit

import (
	"errors"
	"fmt"

	"github.com/uqbar-project/wollok-core/internal/ast"
	"github.com/uqbar-project/wollok-core/internal/env"
)

// CheckChildrenComplete verifies the "children completeness" property:
// every node in root's subtree other than root itself is a descendant of
// root, and (when e is non-nil) every child resolves its parent back to
// the node that holds it.
func CheckChildrenComplete(e *env.Environment, root ast.Node) error {
	var errs []error
	descendants := root.Descendants()
	seen := make(map[ast.Node]bool, len(descendants))
	for _, d := range descendants {
		seen[d] = true
	}
	var walk func(n ast.Node)
	walk = func(n ast.Node) {
		for _, c := range n.Children() {
			if !seen[c] {
				errs = append(errs, fmt.Errorf("child %q of %q is missing from the descendants of %q", c.ID(), n.ID(), root.ID()))
			}
			if e != nil {
				parent, err := e.Parent(c)
				if err != nil {
					errs = append(errs, fmt.Errorf("child %q of %q has no parent: %w", c.ID(), n.ID(), err))
				} else if parent.ID() != n.ID() {
					errs = append(errs, fmt.Errorf("child %q resolves parent as %q, expected %q", c.ID(), parent.ID(), n.ID()))
				}
			}
			walk(c)
		}
	}
	walk(root)
	return errors.Join(errs...)
}

// CheckTransformIdentity verifies the "transform identity" property:
// transform(x => x) on any tree yields a structurally equal tree (same
// kinds in the same shape; we compare a pre-order kind sequence since the
// node model has no other exported structural equality).
func CheckTransformIdentity(n ast.Node) error {
	before := kindSequence(n)
	after := kindSequence(n.Transform(ast.Tx(func(x ast.Node) ast.Node { return x })))
	if len(before) != len(after) {
		return fmt.Errorf("transform identity: kind sequence length changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			return fmt.Errorf("transform identity: kind mismatch at position %d: %s -> %s", i, before[i], after[i])
		}
	}
	return nil
}

func kindSequence(n ast.Node) []ast.Kind {
	seq := []ast.Kind{n.Kind()}
	for _, c := range n.Children() {
		seq = append(seq, kindSequence(c)...)
	}
	return seq
}

// CheckReduceSum verifies the "reduce sum" property: reduce((a, _) => a+1, 0)
// equals the total node count (self plus all descendants).
func CheckReduceSum(n ast.Node) error {
	got := n.Reduce(func(acc any, _ ast.Node) any { return acc.(int) + 1 }, 0).(int)
	want := 1 + len(n.Descendants())
	if got != want {
		return fmt.Errorf("reduce sum: got %d, want %d", got, want)
	}
	return nil
}

// CheckHierarchyContainsSelf verifies the hierarchy property: hierarchy[0]
// is m itself and every id in it is distinct.
func CheckHierarchyContainsSelf(m ast.Module, hierarchy []ast.Module) error {
	if len(hierarchy) == 0 {
		return fmt.Errorf("hierarchy of %q is empty", m.ID())
	}
	if hierarchy[0].ID() != m.ID() {
		return fmt.Errorf("hierarchy[0] is %q, want %q", hierarchy[0].ID(), m.ID())
	}
	seen := make(map[string]bool, len(hierarchy))
	for _, mod := range hierarchy {
		key := string(mod.ID())
		if seen[key] {
			return fmt.Errorf("hierarchy of %q contains duplicate id %q", m.ID(), mod.ID())
		}
		seen[key] = true
	}
	return nil
}
