package ast

import "github.com/uqbar-project/wollok-core/internal/ids"

// Reference carries a dotted name; once Linked, Scope maps the leading local
// name segment to the id of the Package it resolves through.
type Reference struct {
	base
	Name  string
	Scope map[string]ids.ID // populated only once Linked
}

func NewReference(stage Stage, id ids.ID, name string, scope map[string]ids.ID) *Reference {
	r := &Reference{Name: name, Scope: scope}
	r.init(r, KindReference, stage, id)
	return r
}

func (*Reference) expressionNode() {}

// Self is the receiver-less self-reference expression.
type Self struct{ base }

func NewSelf(stage Stage, id ids.ID) *Self {
	s := &Self{}
	s.init(s, KindSelf, stage, id)
	return s
}

func (*Self) expressionNode() {}

// Literal holds a primitive value: a number, a string, a boolean, nil, or a
// nested Singleton (anonymous object literal).
type Literal struct {
	base
	Value any
}

func NewLiteral(stage Stage, id ids.ID, value any) *Literal {
	l := &Literal{Value: value}
	l.init(l, KindLiteral, stage, id)
	return l
}

func (*Literal) expressionNode() {}

// Send is a message send: receiver.message(args...).
type Send struct {
	base
	Receiver Expression
	Message  string
	Args     []Expression
}

func NewSend(stage Stage, id ids.ID, receiver Expression, message string, args []Expression) *Send {
	s := &Send{Receiver: receiver, Message: message, Args: args}
	s.init(s, KindSend, stage, id)
	return s
}

func (*Send) expressionNode() {}

// Super forwards the enclosing method call to the next module in the
// hierarchy, optionally with overridden arguments.
type Super struct {
	base
	Args []Expression
}

func NewSuper(stage Stage, id ids.ID, args []Expression) *Super {
	s := &Super{Args: args}
	s.init(s, KindSuper, stage, id)
	return s
}

func (*Super) expressionNode() {}

// New instantiates a Class via a Reference and positional constructor args.
type New struct {
	base
	Instantiated *Reference
	Args         []Expression
}

func NewNew(stage Stage, id ids.ID, instantiated *Reference, args []Expression) *New {
	n := &New{Instantiated: instantiated, Args: args}
	n.init(n, KindNew, stage, id)
	return n
}

func (*New) expressionNode() {}

// If is a conditional expression with an optional else branch.
type If struct {
	base
	Condition Expression
	Then      *Body
	Else      *Body // optional
}

func NewIf(stage Stage, id ids.ID, condition Expression, then, els *Body) *If {
	i := &If{Condition: condition, Then: then, Else: els}
	i.init(i, KindIf, stage, id)
	return i
}

func (*If) expressionNode() {}

// Throw raises an exception value, triggering interrupt("exception", ...)
// at runtime.
type Throw struct {
	base
	Exception Expression
}

func NewThrow(stage Stage, id ids.ID, exception Expression) *Throw {
	t := &Throw{Exception: exception}
	t.init(t, KindThrow, stage, id)
	return t
}

func (*Throw) expressionNode() {}

// Catch binds a caught exception to a parameter name, optionally filtered by
// an exception-type Reference, running Body when it matches.
type Catch struct {
	base
	ParameterName string
	ParameterType *Reference // optional
	Body          *Body
}

func NewCatch(stage Stage, id ids.ID, parameterName string, parameterType *Reference, body *Body) *Catch {
	c := &Catch{ParameterName: parameterName, ParameterType: parameterType, Body: body}
	c.init(c, KindCatch, stage, id)
	return c
}

// Try runs Body, dispatching raised exceptions to the first matching Catch,
// then always running Always (the "finally" clause) if present.
type Try struct {
	base
	Body    *Body
	Catches []*Catch
	Always  *Body // optional
}

func NewTry(stage Stage, id ids.ID, body *Body, catches []*Catch, always *Body) *Try {
	t := &Try{Body: body, Catches: catches, Always: always}
	t.init(t, KindTry, stage, id)
	return t
}

func (*Try) expressionNode() {}
