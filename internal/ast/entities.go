package ast

import "github.com/uqbar-project/wollok-core/internal/ids"

// Environment is the root holding top-level Packages.
type Environment struct {
	base
	Packages []*Package
}

func NewEnvironment(stage Stage, id ids.ID, packages []*Package) *Environment {
	e := &Environment{Packages: packages}
	e.init(e, KindEnvironment, stage, id)
	return e
}

// Package has a name and an ordered sequence of member Entities, which may
// themselves be nested Packages.
type Package struct {
	base
	Name    string
	Members []Entity
}

func NewPackage(stage Stage, id ids.ID, name string, members []Entity) *Package {
	p := &Package{Name: name, Members: members}
	p.init(p, KindPackage, stage, id)
	return p
}

func (*Package) entityNode() {}

// SuperCall is the mandatory "extends Superclass(args)" invocation every
// Singleton carries, even when the superclass is the implicit default
// (populated at the Filled stage if omitted in Raw).
type SuperCall struct {
	Superclass *Reference
	Args       []Expression
}

// Class has an ordered sequence of mixin references, an ordered member list
// (Field/Method/Constructor), and an optional superclass reference.
type Class struct {
	base
	Name       string
	Superclass *Reference // optional
	Mixins     []*Reference
	Members    []Node // Field | Method | Constructor
}

func NewClass(stage Stage, id ids.ID, name string, superclass *Reference, mixins []*Reference, members []Node) *Class {
	c := &Class{Name: name, Superclass: superclass, Mixins: mixins, Members: members}
	c.init(c, KindClass, stage, id)
	return c
}

func (*Class) entityNode() {}
func (*Class) moduleNode() {}

func (c *Class) Methods() []*Method           { return filterAs[*Method](c.Members, KindMethod) }
func (c *Class) Fields() []*Field             { return filterAs[*Field](c.Members, KindField) }
func (c *Class) Constructors() []*Constructor { return filterAs[*Constructor](c.Members, KindConstructor) }

// Singleton has a mandatory SuperCall, optional name (anonymous object
// literals have none), ordered mixins, and members (Field/Method only).
type Singleton struct {
	base
	Name      string // may be empty
	SuperCall SuperCall
	Mixins    []*Reference
	Members   []Node // Field | Method
}

func NewSingleton(stage Stage, id ids.ID, name string, superCall SuperCall, mixins []*Reference, members []Node) *Singleton {
	s := &Singleton{Name: name, SuperCall: superCall, Mixins: mixins, Members: members}
	s.init(s, KindSingleton, stage, id)
	return s
}

func (*Singleton) entityNode() {}
func (*Singleton) moduleNode() {}

func (s *Singleton) Methods() []*Method { return filterAs[*Method](s.Members, KindMethod) }
func (s *Singleton) Fields() []*Field   { return filterAs[*Field](s.Members, KindField) }

// Mixin is an orderable, composable module fragment with no superclass of
// its own.
type Mixin struct {
	base
	Name    string
	Mixins  []*Reference
	Members []Node // Field | Method
}

func NewMixin(stage Stage, id ids.ID, name string, mixins []*Reference, members []Node) *Mixin {
	m := &Mixin{Name: name, Mixins: mixins, Members: members}
	m.init(m, KindMixin, stage, id)
	return m
}

func (*Mixin) entityNode() {}
func (*Mixin) moduleNode() {}

func (m *Mixin) Methods() []*Method { return filterAs[*Method](m.Members, KindMethod) }
func (m *Mixin) Fields() []*Field   { return filterAs[*Field](m.Members, KindField) }

// Program is a top-level entity with a name and a body of sentences.
type Program struct {
	base
	Name string
	Body *Body
}

func NewProgram(stage Stage, id ids.ID, name string, body *Body) *Program {
	p := &Program{Name: name, Body: body}
	p.init(p, KindProgram, stage, id)
	return p
}

func (*Program) entityNode() {}

// Describe groups Tests (and supporting Methods/Fields) under a shared name.
type Describe struct {
	base
	Name    string
	Members []Node // Test | Method | Field
}

func NewDescribe(stage Stage, id ids.ID, name string, members []Node) *Describe {
	d := &Describe{Name: name, Members: members}
	d.init(d, KindDescribe, stage, id)
	return d
}

func (*Describe) entityNode() {}

func (d *Describe) Tests() []*Test     { return filterAs[*Test](d.Members, KindTest) }
func (d *Describe) Methods() []*Method { return filterAs[*Method](d.Members, KindMethod) }
func (d *Describe) Fields() []*Field   { return filterAs[*Field](d.Members, KindField) }

// Test is a named, runnable assertion body.
type Test struct {
	base
	Name string
	Body *Body
}

func NewTest(stage Stage, id ids.ID, name string, body *Body) *Test {
	t := &Test{Name: name, Body: body}
	t.init(t, KindTest, stage, id)
	return t
}

func (*Test) entityNode() {}
