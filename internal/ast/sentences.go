package ast

import "github.com/uqbar-project/wollok-core/internal/ids"

// Variable declares a local binding, optionally const, with an initial
// value (required once Filled).
type Variable struct {
	base
	Name    string
	IsConst bool
	Value   Expression // optional in Raw, populated by Filled
}

func NewVariable(stage Stage, id ids.ID, name string, isConst bool, value Expression) *Variable {
	v := &Variable{Name: name, IsConst: isConst, Value: value}
	v.init(v, KindVariable, stage, id)
	return v
}

func (*Variable) sentenceNode() {}

// Return exits the enclosing method/closure with an optional value.
type Return struct {
	base
	Value Expression // optional
}

func NewReturn(stage Stage, id ids.ID, value Expression) *Return {
	r := &Return{Value: value}
	r.init(r, KindReturn, stage, id)
	return r
}

func (*Return) sentenceNode() {}

// Assignment stores Value into the local or field named by Variable.
type Assignment struct {
	base
	Variable *Reference
	Value    Expression
}

func NewAssignment(stage Stage, id ids.ID, variable *Reference, value Expression) *Assignment {
	a := &Assignment{Variable: variable, Value: value}
	a.init(a, KindAssignment, stage, id)
	return a
}

func (*Assignment) sentenceNode() {}
