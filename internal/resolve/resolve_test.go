package resolve

import (
	"testing"

	"github.com/uqbar-project/wollok-core/internal/ast"
	"github.com/uqbar-project/wollok-core/internal/env"
	"github.com/uqbar-project/wollok-core/internal/ids"
)

const pkgID ids.ID = "pkg-p"

func scopedRef(id ids.ID, qualifiedName string) *ast.Reference {
	return ast.NewReference(ast.Linked, id, qualifiedName, map[string]ids.ID{"p": pkgID})
}

// buildFQNSample mirrors scenario 2: Package p { Package q { Class C } }.
func buildFQNSample() (*env.Environment, *ast.Class) {
	class := ast.NewClass(ast.Linked, "class-C", "C", nil, nil, nil)
	q := ast.NewPackage(ast.Linked, "pkg-q", "q", []ast.Entity{class})
	p := ast.NewPackage(ast.Linked, "pkg-p", "p", []ast.Entity{q})
	root := ast.NewEnvironment(ast.Linked, "root", []*ast.Package{p})
	return env.New(root), class
}

func TestFullyQualifiedNameRoundTrip(t *testing.T) {
	e, class := buildFQNSample()

	fqn, err := FullyQualifiedName(e, class)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fqn != "p.q.C" {
		t.Fatalf("expected FQN %q, got %q", "p.q.C", fqn)
	}

	found, err := e.GetNodeByFQN(fqn)
	if err != nil {
		t.Fatalf("unexpected error resolving back: %v", err)
	}
	if found.ID() != class.ID() {
		t.Fatalf("round-trip mismatch: got %q, want %q", found.ID(), class.ID())
	}
}

func TestTargetResolvesThroughScope(t *testing.T) {
	e, class := buildFQNSample()
	ref := scopedRef("ref-1", "p.q.C")

	target, err := Target(e, ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if target.ID() != class.ID() {
		t.Fatalf("expected target %q, got %q", class.ID(), target.ID())
	}
}

// buildHierarchySample mirrors scenario 3: Class C extends B mixed-with M1,
// M2; B extends A; M1 mixes M3. Expected hierarchy: [C, M1, M3, M2, B, A].
func buildHierarchySample() (*env.Environment, *ast.Class) {
	a := ast.NewClass(ast.Linked, "class-A", "A", nil, nil, nil)
	b := ast.NewClass(ast.Linked, "class-B", "B", scopedRef("ref-B-super", "p.A"), nil, nil)
	m3 := ast.NewMixin(ast.Linked, "mixin-M3", "M3", nil, nil)
	m1 := ast.NewMixin(ast.Linked, "mixin-M1", "M1", []*ast.Reference{scopedRef("ref-M1-mix", "p.M3")}, nil)
	m2 := ast.NewMixin(ast.Linked, "mixin-M2", "M2", nil, nil)
	c := ast.NewClass(ast.Linked, "class-C", "C", scopedRef("ref-C-super", "p.B"),
		[]*ast.Reference{scopedRef("ref-C-mix1", "p.M1"), scopedRef("ref-C-mix2", "p.M2")}, nil)

	pkg := ast.NewPackage(ast.Linked, "pkg-p", "p", []ast.Entity{a, b, m3, m1, m2, c})
	root := ast.NewEnvironment(ast.Linked, "root", []*ast.Package{pkg})
	return env.New(root), c
}

func TestHierarchyWithMixinsAndSuperclass(t *testing.T) {
	e, c := buildHierarchySample()

	hierarchy, err := Hierarchy(e, c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"C", "M1", "M3", "M2", "B", "A"}
	if len(hierarchy) != len(want) {
		t.Fatalf("expected %d modules, got %d: %v", len(want), len(hierarchy), hierarchy)
	}
	for i, mod := range hierarchy {
		if got := moduleName(mod); got != want[i] {
			t.Fatalf("hierarchy[%d]: got %q, want %q (full: %v)", i, got, want[i], namesOf(hierarchy))
		}
	}
	if hierarchy[0].ID() != c.ID() {
		t.Fatalf("hierarchy[0] must be the module itself")
	}
}

func TestInheritsIsTrueForEveryHierarchyMember(t *testing.T) {
	e, c := buildHierarchySample()
	hierarchy, err := Hierarchy(e, c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, mod := range hierarchy {
		ok, err := Inherits(e, c, mod)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Fatalf("expected C to inherit from %s", moduleName(mod))
		}
	}
}

func TestRootAncestorIsTheLastHierarchyElement(t *testing.T) {
	e, c := buildHierarchySample()

	root, ok, err := RootAncestor(e, c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected RootAncestor to find a root ancestor")
	}
	if moduleName(root) != "A" {
		t.Fatalf("expected root ancestor A, got %s", moduleName(root))
	}
}

func TestRootAncestorOfModuleWithNoParentsIsItself(t *testing.T) {
	e, c := buildHierarchySample()
	a := mustResolveModule(t, e, c, "A")

	root, ok, err := RootAncestor(e, a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || moduleName(root) != "A" {
		t.Fatalf("expected a parentless module to be its own root ancestor, got %v", moduleName(root))
	}
}

func mustResolveModule(t *testing.T, e *env.Environment, c *ast.Class, name string) ast.Module {
	t.Helper()
	hierarchy, err := Hierarchy(e, c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, mod := range hierarchy {
		if moduleName(mod) == name {
			return mod
		}
	}
	t.Fatalf("module %q not found in hierarchy", name)
	return nil
}

func moduleName(m ast.Module) string {
	switch v := m.(type) {
	case *ast.Class:
		return v.Name
	case *ast.Singleton:
		return v.Name
	case *ast.Mixin:
		return v.Name
	default:
		return ""
	}
}

func namesOf(mods []ast.Module) []string {
	out := make([]string, len(mods))
	for i, m := range mods {
		out[i] = moduleName(m)
	}
	return out
}

// buildVarargsSample mirrors scenario 4: Module M declares foo(a, *b).
func buildVarargsSample() (*env.Environment, *ast.Class) {
	params := []*ast.Parameter{
		ast.NewParameter(ast.Linked, "param-a", "a", false),
		ast.NewParameter(ast.Linked, "param-b", "b", true),
	}
	body := ast.NewBody(ast.Linked, "body-foo", nil)
	method := ast.NewMethod(ast.Linked, "method-foo", "foo", params, body, false, false)
	class := ast.NewClass(ast.Linked, "class-M", "M", nil, nil, []ast.Node{method})
	pkg := ast.NewPackage(ast.Linked, "pkg-p", "p", []ast.Entity{class})
	root := ast.NewEnvironment(ast.Linked, "root", []*ast.Package{pkg})
	return env.New(root), class
}

// buildDiamondMixinSample builds Class D mixing M1 and M2, where both M1 and
// M2 independently mix M3 — a diamond that two sibling branches both reach,
// exercising the final Dedup pass rather than the per-branch exclusion set
// (which only prevents a branch from revisiting its own ancestors, not a
// sibling branch's).
func buildDiamondMixinSample() (*env.Environment, *ast.Class) {
	m3 := ast.NewMixin(ast.Linked, "mixin-M3", "M3", nil, nil)
	m1 := ast.NewMixin(ast.Linked, "mixin-M1", "M1", []*ast.Reference{scopedRef("ref-M1-mix", "p.M3")}, nil)
	m2 := ast.NewMixin(ast.Linked, "mixin-M2", "M2", []*ast.Reference{scopedRef("ref-M2-mix", "p.M3")}, nil)
	d := ast.NewClass(ast.Linked, "class-D", "D", nil,
		[]*ast.Reference{scopedRef("ref-D-mix1", "p.M1"), scopedRef("ref-D-mix2", "p.M2")}, nil)

	pkg := ast.NewPackage(ast.Linked, "pkg-p", "p", []ast.Entity{m3, m1, m2, d})
	root := ast.NewEnvironment(ast.Linked, "root", []*ast.Package{pkg})
	return env.New(root), d
}

func TestHierarchyDedupsAModuleReachedThroughTwoSiblingBranches(t *testing.T) {
	e, d := buildDiamondMixinSample()

	hierarchy, err := Hierarchy(e, d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"D", "M1", "M3", "M2"}
	if len(hierarchy) != len(want) {
		t.Fatalf("expected %d modules, got %d: %v", len(want), len(hierarchy), namesOf(hierarchy))
	}
	for i, mod := range hierarchy {
		if got := moduleName(mod); got != want[i] {
			t.Fatalf("hierarchy[%d]: got %q, want %q (full: %v)", i, got, want[i], namesOf(hierarchy))
		}
	}
}

func TestLookupMethodWithVarargs(t *testing.T) {
	e, class := buildVarargsSample()

	if _, _, found, err := LookupMethod(e, class, "foo", 1); err != nil || !found {
		t.Fatalf("expected foo/1 to match: found=%v err=%v", found, err)
	}
	if _, _, found, err := LookupMethod(e, class, "foo", 4); err != nil || !found {
		t.Fatalf("expected foo/4 to match: found=%v err=%v", found, err)
	}
	if _, _, found, err := LookupMethod(e, class, "foo", 0); err != nil || found {
		t.Fatalf("expected foo/0 not to match: found=%v err=%v", found, err)
	}
}

// buildHierarchySampleWithRootMethod is buildHierarchySample with a "bar"
// method declared on the root ancestor A, so lookup from C must walk the
// entire hierarchy (through M1, M3, M2, B) before finding it.
func buildHierarchySampleWithRootMethod() (*env.Environment, *ast.Class) {
	params := []*ast.Parameter{ast.NewParameter(ast.Linked, "param-x", "x", false)}
	body := ast.NewBody(ast.Linked, "body-bar", nil)
	method := ast.NewMethod(ast.Linked, "method-bar", "bar", params, body, false, false)

	a := ast.NewClass(ast.Linked, "class-A", "A", nil, nil, []ast.Node{method})
	b := ast.NewClass(ast.Linked, "class-B", "B", scopedRef("ref-B-super", "p.A"), nil, nil)
	m3 := ast.NewMixin(ast.Linked, "mixin-M3", "M3", nil, nil)
	m1 := ast.NewMixin(ast.Linked, "mixin-M1", "M1", []*ast.Reference{scopedRef("ref-M1-mix", "p.M3")}, nil)
	m2 := ast.NewMixin(ast.Linked, "mixin-M2", "M2", nil, nil)
	c := ast.NewClass(ast.Linked, "class-C", "C", scopedRef("ref-C-super", "p.B"),
		[]*ast.Reference{scopedRef("ref-C-mix1", "p.M1"), scopedRef("ref-C-mix2", "p.M2")}, nil)

	pkg := ast.NewPackage(ast.Linked, "pkg-p", "p", []ast.Entity{a, b, m3, m1, m2, c})
	root := ast.NewEnvironment(ast.Linked, "root", []*ast.Package{pkg})
	return env.New(root), c
}

func TestLookupMethodWalksFullHierarchy(t *testing.T) {
	e, c := buildHierarchySampleWithRootMethod()

	found, owner, ok, err := LookupMethod(e, c, "bar", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected bar/1 to be found via A at the end of the hierarchy")
	}
	if found.Name != "bar" {
		t.Fatalf("expected method named bar, got %q", found.Name)
	}
	if moduleName(owner) != "A" {
		t.Fatalf("expected owner A, got %v", moduleName(owner))
	}
}
