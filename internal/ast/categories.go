package ast

// Entity, Module, Expression, and Sentence are compile-time markers mirroring
// the category table. They let struct fields be typed precisely (e.g.
// Class.Superclass is *Reference, If.Condition is Expression) while
// Node.Is still does the runtime kind/category check uniformly.
type Entity interface {
	Node
	entityNode()
}

type Module interface {
	Entity
	moduleNode()
}

type Expression interface {
	Node
	expressionNode()
}

type Sentence interface {
	Node
	sentenceNode()
}
