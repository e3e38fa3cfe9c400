package ast

// computeChildren implements the children algorithm: walk every attribute
// value in declared order, descending into ordered sequences, collecting
// any value that is itself a Node. Per the design note, this is
// implemented as a per-kind match listing the structural attributes
// explicitly rather than as a reflective walk.
func computeChildren(n Node) []Node {
	var out []Node
	switch v := n.(type) {
	case *Environment:
		for _, p := range v.Packages {
			out = append(out, p)
		}
	case *Package:
		for _, m := range v.Members {
			out = append(out, m)
		}
	case *Class:
		if v.Superclass != nil {
			out = append(out, v.Superclass)
		}
		for _, m := range v.Mixins {
			out = append(out, m)
		}
		for _, m := range v.Members {
			out = append(out, m)
		}
	case *Singleton:
		if v.SuperCall.Superclass != nil {
			out = append(out, v.SuperCall.Superclass)
		}
		for _, a := range v.SuperCall.Args {
			out = append(out, a)
		}
		for _, m := range v.Mixins {
			out = append(out, m)
		}
		for _, m := range v.Members {
			out = append(out, m)
		}
	case *Mixin:
		for _, m := range v.Mixins {
			out = append(out, m)
		}
		for _, m := range v.Members {
			out = append(out, m)
		}
	case *Program:
		if v.Body != nil {
			out = append(out, v.Body)
		}
	case *Describe:
		for _, m := range v.Members {
			out = append(out, m)
		}
	case *Test:
		if v.Body != nil {
			out = append(out, v.Body)
		}
	case *Reference:
		// leaf: Scope maps to ids, not nodes.
	case *Self:
		// leaf
	case *Literal:
		if node, ok := v.Value.(Node); ok {
			out = append(out, node)
		}
	case *Send:
		if v.Receiver != nil {
			out = append(out, v.Receiver)
		}
		for _, a := range v.Args {
			out = append(out, a)
		}
	case *Super:
		for _, a := range v.Args {
			out = append(out, a)
		}
	case *New:
		if v.Instantiated != nil {
			out = append(out, v.Instantiated)
		}
		for _, a := range v.Args {
			out = append(out, a)
		}
	case *If:
		if v.Condition != nil {
			out = append(out, v.Condition)
		}
		if v.Then != nil {
			out = append(out, v.Then)
		}
		if v.Else != nil {
			out = append(out, v.Else)
		}
	case *Throw:
		if v.Exception != nil {
			out = append(out, v.Exception)
		}
	case *Try:
		if v.Body != nil {
			out = append(out, v.Body)
		}
		for _, c := range v.Catches {
			out = append(out, c)
		}
		if v.Always != nil {
			out = append(out, v.Always)
		}
	case *Catch:
		if v.ParameterType != nil {
			out = append(out, v.ParameterType)
		}
		if v.Body != nil {
			out = append(out, v.Body)
		}
	case *Variable:
		if v.Value != nil {
			out = append(out, v.Value)
		}
	case *Return:
		if v.Value != nil {
			out = append(out, v.Value)
		}
	case *Assignment:
		if v.Variable != nil {
			out = append(out, v.Variable)
		}
		if v.Value != nil {
			out = append(out, v.Value)
		}
	case *Field:
		if v.Value != nil {
			out = append(out, v.Value)
		}
	case *Parameter:
		// leaf
	case *Method:
		for _, p := range v.Parameters {
			out = append(out, p)
		}
		if v.Body != nil {
			out = append(out, v.Body)
		}
	case *Constructor:
		for _, p := range v.Parameters {
			out = append(out, p)
		}
		if v.Body != nil {
			out = append(out, v.Body)
		}
	case *Body:
		for _, s := range v.Sentences {
			out = append(out, s)
		}
	}
	return out
}

// rebuildWithChildren reconstructs n with its direct children replaced by
// newChildren, which must be in the same order computeChildren produced
// them in. Used by Transform to rewrite a node after its children have
// already been rewritten. Non-node attributes (Name, IsConst, ...) and
// marker methods pass through unchanged.
func rebuildWithChildren(n Node, newChildren []Node) Node {
	next := 0
	take := func() Node {
		if next >= len(newChildren) {
			return nil
		}
		c := newChildren[next]
		next++
		return c
	}
	switch v := n.(type) {
	case *Environment:
		packages := make([]*Package, len(v.Packages))
		for i := range v.Packages {
			packages[i] = take().(*Package)
		}
		return NewEnvironment(v.stage, v.id, packages)
	case *Package:
		members := make([]Entity, len(v.Members))
		for i := range v.Members {
			members[i] = take().(Entity)
		}
		return NewPackage(v.stage, v.id, v.Name, members)
	case *Class:
		var superclass *Reference
		if v.Superclass != nil {
			superclass = take().(*Reference)
		}
		mixins := make([]*Reference, len(v.Mixins))
		for i := range v.Mixins {
			mixins[i] = take().(*Reference)
		}
		members := make([]Node, len(v.Members))
		for i := range v.Members {
			members[i] = take()
		}
		return NewClass(v.stage, v.id, v.Name, superclass, mixins, members)
	case *Singleton:
		sc := v.SuperCall
		if sc.Superclass != nil {
			sc.Superclass = take().(*Reference)
		}
		args := make([]Expression, len(sc.Args))
		for i := range sc.Args {
			args[i] = take().(Expression)
		}
		sc.Args = args
		mixins := make([]*Reference, len(v.Mixins))
		for i := range v.Mixins {
			mixins[i] = take().(*Reference)
		}
		members := make([]Node, len(v.Members))
		for i := range v.Members {
			members[i] = take()
		}
		return NewSingleton(v.stage, v.id, v.Name, sc, mixins, members)
	case *Mixin:
		mixins := make([]*Reference, len(v.Mixins))
		for i := range v.Mixins {
			mixins[i] = take().(*Reference)
		}
		members := make([]Node, len(v.Members))
		for i := range v.Members {
			members[i] = take()
		}
		return NewMixin(v.stage, v.id, v.Name, mixins, members)
	case *Program:
		var body *Body
		if v.Body != nil {
			body = take().(*Body)
		}
		return NewProgram(v.stage, v.id, v.Name, body)
	case *Describe:
		members := make([]Node, len(v.Members))
		for i := range v.Members {
			members[i] = take()
		}
		return NewDescribe(v.stage, v.id, v.Name, members)
	case *Test:
		var body *Body
		if v.Body != nil {
			body = take().(*Body)
		}
		return NewTest(v.stage, v.id, v.Name, body)
	case *Reference:
		return NewReference(v.stage, v.id, v.Name, v.Scope)
	case *Self:
		return NewSelf(v.stage, v.id)
	case *Literal:
		value := v.Value
		if _, ok := v.Value.(Node); ok {
			value = take()
		}
		return NewLiteral(v.stage, v.id, value)
	case *Send:
		var receiver Expression
		if v.Receiver != nil {
			receiver = take().(Expression)
		}
		args := make([]Expression, len(v.Args))
		for i := range v.Args {
			args[i] = take().(Expression)
		}
		return NewSend(v.stage, v.id, receiver, v.Message, args)
	case *Super:
		args := make([]Expression, len(v.Args))
		for i := range v.Args {
			args[i] = take().(Expression)
		}
		return NewSuper(v.stage, v.id, args)
	case *New:
		var instantiated *Reference
		if v.Instantiated != nil {
			instantiated = take().(*Reference)
		}
		args := make([]Expression, len(v.Args))
		for i := range v.Args {
			args[i] = take().(Expression)
		}
		return NewNew(v.stage, v.id, instantiated, args)
	case *If:
		var cond Expression
		if v.Condition != nil {
			cond = take().(Expression)
		}
		var then, els *Body
		if v.Then != nil {
			then = take().(*Body)
		}
		if v.Else != nil {
			els = take().(*Body)
		}
		return NewIf(v.stage, v.id, cond, then, els)
	case *Throw:
		var exc Expression
		if v.Exception != nil {
			exc = take().(Expression)
		}
		return NewThrow(v.stage, v.id, exc)
	case *Try:
		var body *Body
		if v.Body != nil {
			body = take().(*Body)
		}
		catches := make([]*Catch, len(v.Catches))
		for i := range v.Catches {
			catches[i] = take().(*Catch)
		}
		var always *Body
		if v.Always != nil {
			always = take().(*Body)
		}
		return NewTry(v.stage, v.id, body, catches, always)
	case *Catch:
		var paramType *Reference
		if v.ParameterType != nil {
			paramType = take().(*Reference)
		}
		var body *Body
		if v.Body != nil {
			body = take().(*Body)
		}
		return NewCatch(v.stage, v.id, v.ParameterName, paramType, body)
	case *Variable:
		var value Expression
		if v.Value != nil {
			value = take().(Expression)
		}
		return NewVariable(v.stage, v.id, v.Name, v.IsConst, value)
	case *Return:
		var value Expression
		if v.Value != nil {
			value = take().(Expression)
		}
		return NewReturn(v.stage, v.id, value)
	case *Assignment:
		var variable *Reference
		if v.Variable != nil {
			variable = take().(*Reference)
		}
		var value Expression
		if v.Value != nil {
			value = take().(Expression)
		}
		return NewAssignment(v.stage, v.id, variable, value)
	case *Field:
		var value Expression
		if v.Value != nil {
			value = take().(Expression)
		}
		return NewField(v.stage, v.id, v.Name, v.IsConst, v.IsProperty, value)
	case *Parameter:
		return NewParameter(v.stage, v.id, v.Name, v.IsVarArg)
	case *Method:
		params := make([]*Parameter, len(v.Parameters))
		for i := range v.Parameters {
			params[i] = take().(*Parameter)
		}
		var body *Body
		if v.Body != nil {
			body = take().(*Body)
		}
		return NewMethod(v.stage, v.id, v.Name, params, body, v.IsNative, v.IsOverride)
	case *Constructor:
		params := make([]*Parameter, len(v.Parameters))
		for i := range v.Parameters {
			params[i] = take().(*Parameter)
		}
		var body *Body
		if v.Body != nil {
			body = take().(*Body)
		}
		return NewConstructor(v.stage, v.id, params, body)
	case *Body:
		sentences := make([]Sentence, len(v.Sentences))
		for i := range v.Sentences {
			sentences[i] = take().(Sentence)
		}
		return NewBody(v.stage, v.id, sentences)
	}
	return n
}
