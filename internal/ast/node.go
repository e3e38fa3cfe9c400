// Package ast implements the staged AST model and the stage-independent
// tree algorithms that every Node exposes regardless of which of the
// Raw/Filled/Linked stages it currently occupies. Stage-dependent operations
// (parent, environment, hierarchy, lookup, FQN) live in the env and resolve
// packages, which operate over this Node interface.
//
// The two external factories names Raw(partial) and Filled(partial) are
// the per-kind New* constructors in this package called with stage Raw or
// Filled respectively (e.g. NewClass(ast.Raw, id, ...)); there is no
// separate wrapper, since the constructor already decorates a partial node
// record with every base operation. The third, Linked(partialEnvironment),
// is env.Linked: it takes a Filled tree with ids assigned and scope
// populated and returns the Environment index that adds the Linked-stage
// operations.
package ast

import "github.com/uqbar-project/wollok-core/internal/ids"

// Node is implemented by every AST node regardless of stage. Kind-specific
// accessors live on the concrete kind types (e.g. (*Class).Methods).
type Node interface {
	Kind() Kind
	StageOf() Stage
	// ID is only meaningful once StageOf() == Linked; before that it is
	// whatever id the constructor was given (typically ids.None).
	ID() ids.ID

	// Is reports kind or category membership.
	Is(sel Selector) bool

	// Children returns all direct structural children, in declared
	// attribute order, then intra-attribute order for sequences.
	// The result is memoised per node.
	Children() []Node

	// Descendants performs a breadth-first traversal starting from this
	// node's children (self excluded), optionally filtered by selectors
	// (any selector matching keeps the node).
	Descendants(selectors ...Selector) []Node

	// Transform applies tx bottom-up: every node is rewritten after its
	// children have been rewritten.
	Transform(tx Transformer) Node

	// Reduce performs a pre-order fold: tx(acc, self) is applied first,
	// then threads through children left-to-right.
	Reduce(tx ReduceFunc, initial any) any
}

// ReduceFunc is the accumulator function passed to Node.Reduce.
type ReduceFunc func(acc any, n Node) any

// Transformer is either a single function applied to every node, or a
// per-kind dispatch table. Use Tx or TxByKind to build one.
type Transformer interface {
	apply(n Node) Node
}

type txAll struct{ fn func(Node) Node }

func (t txAll) apply(n Node) Node { return t.fn(n) }

// Tx builds a Transformer that applies fn to every node.
func Tx(fn func(Node) Node) Transformer { return txAll{fn: fn} }

type txByKind struct{ fns map[Kind]func(Node) Node }

func (t txByKind) apply(n Node) Node {
	if fn, ok := t.fns[n.Kind()]; ok {
		return fn(n)
	}
	return n
}

// TxByKind builds a Transformer that only rewrites nodes whose kind has an
// entry in fns; every other node passes through unchanged.
func TxByKind(fns map[Kind]func(Node) Node) Transformer { return txByKind{fns: fns} }

// base is embedded by every concrete kind struct. It supplies the
// stage-independent Node operations uniformly; self is wired up by the
// owning struct's constructor so base's methods can dispatch back into the
// per-kind attribute catalog (children.go).
type base struct {
	kind  Kind
	stage Stage
	id    ids.ID

	self Node

	childrenOnce  bool
	childrenCache []Node
}

func (b *base) init(self Node, kind Kind, stage Stage, id ids.ID) {
	b.self = self
	b.kind = kind
	b.stage = stage
	b.id = id
}

func (b *base) Kind() Kind       { return b.kind }
func (b *base) StageOf() Stage   { return b.stage }
func (b *base) ID() ids.ID       { return b.id }
func (b *base) Is(s Selector) bool { return s.matches(b.kind) }

func (b *base) Children() []Node {
	if !b.childrenOnce {
		b.childrenCache = computeChildren(b.self)
		b.childrenOnce = true
	}
	return b.childrenCache
}

func (b *base) Descendants(selectors ...Selector) []Node {
	var result []Node
	queue := append([]Node(nil), b.self.Children()...)
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if matchesAny(n, selectors) {
			result = append(result, n)
		}
		queue = append(queue, n.Children()...)
	}
	return result
}

func matchesAny(n Node, selectors []Selector) bool {
	if len(selectors) == 0 {
		return true
	}
	for _, s := range selectors {
		if n.Is(s) {
			return true
		}
	}
	return false
}

func (b *base) Transform(tx Transformer) Node {
	children := b.self.Children()
	rewrittenChildren := make([]Node, len(children))
	for i, c := range children {
		rewrittenChildren[i] = c.Transform(tx)
	}
	rebuilt := rebuildWithChildren(b.self, rewrittenChildren)
	return tx.apply(rebuilt)
}

func (b *base) Reduce(tx ReduceFunc, initial any) any {
	acc := tx(initial, b.self)
	for _, c := range b.self.Children() {
		acc = c.Reduce(tx, acc)
	}
	return acc
}
