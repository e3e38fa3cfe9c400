package ast

import "github.com/uqbar-project/wollok-core/internal/ids"

// Body holds an ordered sequence of Sentences, used by methods,
// constructors, programs, tests, if-branches, and try/catch/always blocks.
type Body struct {
	base
	Sentences []Sentence
}

func NewBody(stage Stage, id ids.ID, sentences []Sentence) *Body {
	b := &Body{Sentences: sentences}
	b.init(b, KindBody, stage, id)
	return b
}

// Field is a module-level instance variable, optionally const, with an
// optional initial value and a "property" flag requesting generated
// accessor methods.
type Field struct {
	base
	Name       string
	IsConst    bool
	IsProperty bool
	Value      Expression // optional
}

func NewField(stage Stage, id ids.ID, name string, isConst, isProperty bool, value Expression) *Field {
	f := &Field{Name: name, IsConst: isConst, IsProperty: isProperty, Value: value}
	f.init(f, KindField, stage, id)
	return f
}

// Parameter is a formal method/constructor parameter. At most one parameter
// in a parameter list may have IsVarArg set, and it must be the last one.
type Parameter struct {
	base
	Name     string
	IsVarArg bool
}

func NewParameter(stage Stage, id ids.ID, name string, isVarArg bool) *Parameter {
	p := &Parameter{Name: name, IsVarArg: isVarArg}
	p.init(p, KindParameter, stage, id)
	return p
}

// Method has a name, ordered parameters, an optional body (abstract methods
// have none), and a native flag for methods implemented by the natives
// dispatcher rather than Wollok code.
type Method struct {
	base
	Name       string
	Parameters []*Parameter
	Body       *Body // optional
	IsNative   bool
	IsOverride bool
}

func NewMethod(stage Stage, id ids.ID, name string, parameters []*Parameter, body *Body, isNative, isOverride bool) *Method {
	m := &Method{Name: name, Parameters: parameters, Body: body, IsNative: isNative, IsOverride: isOverride}
	m.init(m, KindMethod, stage, id)
	return m
}

// Constructor has ordered parameters and a body; constructors are not
// inherited, so lookup only ever considers a Class's own constructors.
type Constructor struct {
	base
	Parameters []*Parameter
	Body       *Body
}

func NewConstructor(stage Stage, id ids.ID, parameters []*Parameter, body *Body) *Constructor {
	c := &Constructor{Parameters: parameters, Body: body}
	c.init(c, KindConstructor, stage, id)
	return c
}
