package ast

// filterAs narrows nodes to those of kind k, asserting each to T. T must be
// the concrete pointer type matching k (e.g. filterAs[*Method](members,
// KindMethod)); used by the Methods/Fields/Constructors/Tests accessors on
// Module/Describe/Package-like holders.
func filterAs[T Node](nodes []Node, k Kind) []T {
	var out []T
	for _, n := range nodes {
		if n.Kind() == k {
			out = append(out, n.(T))
		}
	}
	return out
}

// HasVarArg reports whether params contains a varargs parameter.
func HasVarArg(params []*Parameter) bool {
	for _, p := range params {
		if p.IsVarArg {
			return true
		}
	}
	return false
}

// ArityMatches implements the arity match predicate: with n the parameter
// count and varargs whether the last parameter is variadic, a call of the
// given arity matches iff (varargs AND n-1 <= arity) OR n == arity.
func ArityMatches(params []*Parameter, arity int) bool {
	n := len(params)
	if HasVarArg(params) {
		return n-1 <= arity
	}
	return n == arity
}
