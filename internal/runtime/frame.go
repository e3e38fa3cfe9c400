package runtime

import (
	"github.com/uqbar-project/wollok-core/internal/ids"
	"github.com/uqbar-project/wollok-core/internal/runtimeerr"
)

// Interruption is one of the fixed kinds of non-local exit; the
// identifier is opaque to this package, which treats it as a set element.
type Interruption string

// ExceptionInterruption is the one interruption kind the design names
// explicitly; other kinds are defined by collaborators at the bytecode
// dispatch layer and are opaque here.
const ExceptionInterruption Interruption = "exception"

// Frame is one activation record: locals, an operand stack, and the set of
// interruption kinds this frame resumes.
type Frame struct {
	Locals       map[string]ids.ID
	OperandStack []ids.ID
	Resume       map[Interruption]bool
}

// NewFrame builds an empty frame that resumes the given interruption kinds.
func NewFrame(resume ...Interruption) *Frame {
	f := &Frame{
		Locals: make(map[string]ids.ID),
		Resume: make(map[Interruption]bool, len(resume)),
	}
	for _, k := range resume {
		f.Resume[k] = true
	}
	return f
}

// PushOperand appends id to the operand stack.
func (f *Frame) PushOperand(id ids.ID) {
	f.OperandStack = append(f.OperandStack, id)
}

// PopOperand removes and returns the top of the operand stack, raising
// StackUnderflow if it is empty.
func (f *Frame) PopOperand() ids.ID {
	n := len(f.OperandStack)
	if n == 0 {
		runtimeerr.Raise(runtimeerr.StackUnderflow, "popped empty operand stack")
	}
	top := f.OperandStack[n-1]
	f.OperandStack = f.OperandStack[:n-1]
	return top
}

func (f *Frame) clone() *Frame {
	locals := make(map[string]ids.ID, len(f.Locals))
	for k, v := range f.Locals {
		locals[k] = v
	}
	operandStack := append([]ids.ID(nil), f.OperandStack...)
	resume := make(map[Interruption]bool, len(f.Resume))
	for k, v := range f.Resume {
		resume[k] = v
	}
	return &Frame{Locals: locals, OperandStack: operandStack, Resume: resume}
}
