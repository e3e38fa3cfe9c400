package runtime

import (
	"github.com/uqbar-project/wollok-core/internal/config"
	"github.com/uqbar-project/wollok-core/internal/ids"
	"github.com/uqbar-project/wollok-core/internal/runtimeerr"
	"github.com/uqbar-project/wollok-core/internal/trace"
)

// Evaluation is the evaluator's mutable state: a frame stack and an
// instance heap. It is single-threaded and cooperative: every method is
// synchronous and returns without yielding.
type Evaluation struct {
	frameStack []*Frame
	instances  map[ids.ID]Instance

	gen       ids.Generator
	precision uint
	tracer    *trace.Tracer
}

// New builds an empty Evaluation. gen mints fresh ids for non-interned
// instances; cfg supplies the decimal rounding precision; tracer may be
// nil.
func New(gen ids.Generator, cfg config.RuntimeConfig, tracer *trace.Tracer) *Evaluation {
	return &Evaluation{
		instances: make(map[ids.ID]Instance),
		gen:       gen,
		precision: cfg.DecimalPrecision,
		tracer:    tracer,
	}
}

// PushFrame pushes f onto the frame stack.
func (e *Evaluation) PushFrame(f *Frame) {
	e.frameStack = append(e.frameStack, f)
	if e.tracer != nil {
		e.tracer.FramePushed(len(e.frameStack))
	}
}

// PopFrame pops and returns the top frame, raising StackUnderflow if the
// frame stack is empty.
func (e *Evaluation) PopFrame() *Frame {
	n := len(e.frameStack)
	if n == 0 {
		runtimeerr.Raise(runtimeerr.StackUnderflow, "popped empty frame stack")
	}
	top := e.frameStack[n-1]
	e.frameStack = e.frameStack[:n-1]
	if e.tracer != nil {
		e.tracer.FramePopped(len(e.frameStack))
	}
	return top
}

// CurrentFrame returns the top of the frame stack, raising StackUnderflow
// if none exists.
func (e *Evaluation) CurrentFrame() *Frame {
	n := len(e.frameStack)
	if n == 0 {
		runtimeerr.Raise(runtimeerr.StackUnderflow, "no current frame: frame stack is empty")
	}
	return e.frameStack[n-1]
}

// Depth reports how many frames are on the stack.
func (e *Evaluation) Depth() int { return len(e.frameStack) }

// Instance returns the instance with id, or raises UndefinedInstance.
func (e *Evaluation) Instance(id ids.ID) Instance {
	inst, ok := e.instances[id]
	if !ok {
		runtimeerr.Raise(runtimeerr.UndefinedInstance, "access to undefined instance %q", id)
	}
	return inst
}

// CreateInstance chooses an id for the new instance per the interning
// rules for wollok.lang.Number and wollok.lang.String, or mints a fresh one
// otherwise, then sets instances[id] (overwriting any prior entry, which is
// safe under interning because the entry is value-equal).
func (e *Evaluation) CreateInstance(module string, baseInnerValue any) ids.ID {
	id, innerValue, interned := createInstanceID(module, baseInnerValue, e.precision, e.gen)
	e.instances[id] = Instance{
		ID:         id,
		Module:     module,
		Fields:     make(map[string]ids.ID),
		InnerValue: innerValue,
	}
	if e.tracer != nil {
		e.tracer.InstanceCreated(id, module, interned)
	}
	return id
}

// Interrupt implements the structured non-local exit: pop frames until one
// remains whose resume set contains kind; remove kind from that frame's
// resume set and push valueID onto its operand stack. If the stack empties
// first, the interruption is unhandled and this raises
// UnhandledInterruption with a composed message.
func (e *Evaluation) Interrupt(kind Interruption, valueID ids.ID) {
	for len(e.frameStack) > 0 {
		top := e.frameStack[len(e.frameStack)-1]
		if top.Resume[kind] {
			delete(top.Resume, kind)
			top.PushOperand(valueID)
			if e.tracer != nil {
				e.tracer.InterruptHandled(string(kind), len(e.frameStack))
			}
			return
		}
		e.frameStack = e.frameStack[:len(e.frameStack)-1]
	}
	detail := e.interruptDetail(kind, valueID)
	if e.tracer != nil {
		e.tracer.InterruptUnhandled(string(kind), detail)
	}
	runtimeerr.Raise(runtimeerr.UnhandledInterruption, "%s", detail)
}

// interruptDetail composes the failure message for an unhandled interrupt.
// For "exception", the message is "<module>: <detail>" where detail is the
// instance's message field's innerValue if present, else its own
// innerValue; when that detail is not a non-empty string the message is just
// "<module>". Other kinds produce an empty detail.
func (e *Evaluation) interruptDetail(kind Interruption, valueID ids.ID) string {
	if kind != ExceptionInterruption {
		return ""
	}
	inst, ok := e.instances[valueID]
	if !ok {
		return ""
	}
	detail := inst.InnerValue
	if messageID, ok := inst.Fields["message"]; ok {
		if msgInst, ok := e.instances[messageID]; ok {
			detail = msgInst.InnerValue
		}
	}
	return formatDetail(inst.Module, detail)
}

func formatDetail(module string, detail any) string {
	s, _ := detail.(string)
	if s == "" {
		return module
	}
	return module + ": " + s
}

// Step runs fn, the unit of work a host driver performs against this
// Evaluation in one pass (e.g. dispatching one instruction), and converts
// any *runtimeerr.Error panic raised from inside it into a returned error
// instead of letting it propagate out of Step. Every other public method on
// Evaluation panics at the point of failure; Step is the one boundary that
// recovers, so a host driving the Evaluation one step at a time gets a
// StackUnderflow or UndefinedInstance back as an error rather than a crash.
func (e *Evaluation) Step(fn func()) (err error) {
	defer runtimeerr.Recover(&err)
	fn()
	return nil
}

// Copy produces a shallow-isolating snapshot: instances and frames are
// cloned (their maps/slices deep enough to isolate mutation through either
// copy), while everything else is shared by reference.
func (e *Evaluation) Copy() *Evaluation {
	clone := &Evaluation{
		gen:       e.gen,
		precision: e.precision,
		tracer:    e.tracer,
	}
	clone.instances = make(map[ids.ID]Instance, len(e.instances))
	for id, inst := range e.instances {
		clone.instances[id] = inst.clone()
	}
	clone.frameStack = make([]*Frame, len(e.frameStack))
	for i, f := range e.frameStack {
		clone.frameStack[i] = f.clone()
	}
	return clone
}
