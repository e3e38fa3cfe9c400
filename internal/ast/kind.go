package ast

// Kind tags a Node with its concrete variant. The set of kinds is closed
// and partitioned into categories (Entity, Module, Expression, Sentence,
// Other); a kind may belong to more than one category (every Module kind is
// also an Entity kind).
type Kind uint8

const (
	KindPackage Kind = iota + 1
	KindClass
	KindSingleton
	KindMixin
	KindProgram
	KindDescribe
	KindTest

	KindReference
	KindSelf
	KindLiteral
	KindSend
	KindSuper
	KindNew
	KindIf
	KindThrow
	KindTry

	KindVariable
	KindReturn
	KindAssignment

	KindField
	KindMethod
	KindConstructor
	KindParameter
	KindBody
	KindCatch
	KindEnvironment
)

var kindNames = map[Kind]string{
	KindPackage:     "Package",
	KindClass:       "Class",
	KindSingleton:   "Singleton",
	KindMixin:       "Mixin",
	KindProgram:     "Program",
	KindDescribe:    "Describe",
	KindTest:        "Test",
	KindReference:   "Reference",
	KindSelf:        "Self",
	KindLiteral:     "Literal",
	KindSend:        "Send",
	KindSuper:       "Super",
	KindNew:         "New",
	KindIf:          "If",
	KindThrow:       "Throw",
	KindTry:         "Try",
	KindVariable:    "Variable",
	KindReturn:      "Return",
	KindAssignment:  "Assignment",
	KindField:       "Field",
	KindMethod:      "Method",
	KindConstructor: "Constructor",
	KindParameter:   "Parameter",
	KindBody:        "Body",
	KindCatch:       "Catch",
	KindEnvironment: "Environment",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "InvalidKind"
}

// Category groups kinds for is()/descendants() filtering purposes.
type Category uint8

const (
	CategoryEntity Category = iota + 1
	CategoryModule
	CategoryExpression
	CategorySentence
	CategoryOther
)

var categoryMembers = map[Category]map[Kind]bool{
	CategoryEntity: {
		KindPackage: true, KindClass: true, KindSingleton: true, KindMixin: true,
		KindProgram: true, KindDescribe: true, KindTest: true,
	},
	CategoryModule: {
		KindSingleton: true, KindMixin: true, KindClass: true,
	},
	CategoryExpression: {
		KindReference: true, KindSelf: true, KindLiteral: true, KindSend: true,
		KindSuper: true, KindNew: true, KindIf: true, KindThrow: true, KindTry: true,
	},
	CategorySentence: {
		KindVariable: true, KindReturn: true, KindAssignment: true,
	},
	CategoryOther: {
		KindField: true, KindMethod: true, KindConstructor: true, KindParameter: true,
		KindBody: true, KindCatch: true, KindEnvironment: true,
	},
}

func (c Category) has(k Kind) bool { return categoryMembers[c][k] }

// Selector is either a Kind or a Category; Node.Is accepts both so callers
// can write n.Is(ast.KindClass) or n.Is(ast.CategoryModule) uniformly.
type Selector interface {
	matches(Kind) bool
}

func (k Kind) matches(other Kind) bool { return k == other }
func (c Category) matches(k Kind) bool { return c.has(k) }
