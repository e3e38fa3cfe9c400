package ast

import "testing"

// buildSampleClass constructs: Class C { method foo() { return 1 } }
func buildSampleClass() *Class {
	lit := NewLiteral(Linked, "n1", 1.0)
	ret := NewReturn(Linked, "n2", lit)
	body := NewBody(Linked, "n3", []Sentence{ret})
	method := NewMethod(Linked, "n4", "foo", nil, body, false, false)
	return NewClass(Linked, "n5", "C", nil, nil, []Node{method})
}

func TestChildrenOrderAndMemoization(t *testing.T) {
	class := buildSampleClass()
	children := class.Children()
	if len(children) != 1 {
		t.Fatalf("expected 1 child (the method), got %d", len(children))
	}
	if children[0].Kind() != KindMethod {
		t.Fatalf("expected KindMethod, got %v", children[0].Kind())
	}
	// Memoization: calling twice returns the same slice contents.
	again := class.Children()
	if len(again) != len(children) || again[0] != children[0] {
		t.Fatalf("children() is not stable across calls")
	}
}

func TestDescendantsExcludesSelfAndFiltersByKind(t *testing.T) {
	class := buildSampleClass()
	all := class.Descendants()
	// method, body, return, literal = 4 descendants; self excluded.
	if len(all) != 4 {
		t.Fatalf("expected 4 descendants, got %d", len(all))
	}
	for _, d := range all {
		if d.ID() == class.ID() {
			t.Fatalf("descendants must exclude self")
		}
	}
	methods := class.Descendants(KindMethod)
	if len(methods) != 1 {
		t.Fatalf("expected 1 method descendant, got %d", len(methods))
	}
	expressions := class.Descendants(CategoryExpression)
	if len(expressions) != 1 {
		t.Fatalf("expected 1 expression descendant (the literal), got %d", len(expressions))
	}
}

func TestTransformIdentityPreservesShape(t *testing.T) {
	class := buildSampleClass()
	before := kindSeq(class)

	rewritten := class.Transform(Tx(func(n Node) Node { return n }))

	after := kindSeq(rewritten)
	if len(before) != len(after) {
		t.Fatalf("transform identity changed node count: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("kind mismatch at %d: %v -> %v", i, before[i], after[i])
		}
	}
}

func TestTransformByKindRewritesBottomUp(t *testing.T) {
	class := buildSampleClass()
	var visitedLiteralBeforeMethod bool
	var sawLiteral, sawMethod bool

	class.Transform(TxByKind(map[Kind]func(Node) Node{
		KindLiteral: func(n Node) Node {
			sawLiteral = true
			if sawMethod {
				visitedLiteralBeforeMethod = false
			} else {
				visitedLiteralBeforeMethod = true
			}
			return n
		},
		KindMethod: func(n Node) Node {
			sawMethod = true
			return n
		},
	}))

	if !sawLiteral || !sawMethod {
		t.Fatalf("expected both literal and method to be visited")
	}
	if !visitedLiteralBeforeMethod {
		t.Fatalf("expected bottom-up rewrite: literal (a descendant) rewritten before its ancestor method")
	}
}

func TestReduceSumEqualsNodeCount(t *testing.T) {
	class := buildSampleClass()
	got := class.Reduce(func(acc any, _ Node) any { return acc.(int) + 1 }, 0).(int)
	want := 1 + len(class.Descendants())
	if got != want {
		t.Fatalf("reduce sum: got %d, want %d", got, want)
	}
}

func TestArityMatchesVarargs(t *testing.T) {
	params := []*Parameter{
		NewParameter(Linked, "p1", "a", false),
		NewParameter(Linked, "p2", "b", true),
	}
	if !ArityMatches(params, 1) {
		t.Fatalf("expected arity 1 to match a, *b (minimum 1 positional + varargs)")
	}
	if !ArityMatches(params, 4) {
		t.Fatalf("expected arity 4 to match a, *b")
	}
	if ArityMatches(params, 0) {
		t.Fatalf("expected arity 0 not to match a, *b")
	}
}

func TestArityMatchesFixed(t *testing.T) {
	params := []*Parameter{NewParameter(Linked, "p1", "a", false)}
	if !ArityMatches(params, 1) {
		t.Fatalf("expected fixed arity 1 to match")
	}
	if ArityMatches(params, 2) {
		t.Fatalf("expected fixed arity 1 not to match arity 2")
	}
}

func TestKindCategoryMembership(t *testing.T) {
	class := buildSampleClass()
	if !class.Is(KindClass) {
		t.Fatalf("expected class.Is(KindClass)")
	}
	if !class.Is(CategoryEntity) {
		t.Fatalf("expected class.Is(CategoryEntity)")
	}
	if !class.Is(CategoryModule) {
		t.Fatalf("expected class.Is(CategoryModule)")
	}
	if class.Is(CategoryExpression) {
		t.Fatalf("class must not be an expression")
	}
}

func kindSeq(n Node) []Kind {
	seq := []Kind{n.Kind()}
	for _, c := range n.Children() {
		seq = append(seq, kindSeq(c)...)
	}
	return seq
}
