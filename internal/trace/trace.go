// Package trace is the optional, zero-cost-when-nil observability hook
// invoked by internal/runtime on frame push/pop, instance creation, and
// interrupt handling. Every method checks for a nil receiver or writer
// before doing anything, so tracing is never mandatory.
package trace

import (
	"fmt"
	"io"

	"github.com/uqbar-project/wollok-core/internal/ids"
)

// Tracer records Evaluation lifecycle events. A nil *Tracer, or one built
// with a nil writer, is a valid no-op: every method checks for that before
// writing.
type Tracer struct {
	w io.Writer
}

// New returns a Tracer that writes to w.
func New(w io.Writer) *Tracer { return &Tracer{w: w} }

func (t *Tracer) active() bool { return t != nil && t.w != nil }

// FramePushed is called when Evaluation pushes a new Frame.
func (t *Tracer) FramePushed(depth int) {
	if !t.active() {
		return
	}
	fmt.Fprintf(t.w, "[frame] push depth=%d\n", depth)
}

// FramePopped is called when Evaluation pops a Frame off the stack.
func (t *Tracer) FramePopped(depth int) {
	if !t.active() {
		return
	}
	fmt.Fprintf(t.w, "[frame] pop depth=%d\n", depth)
}

// InstanceCreated is called after createInstance assigns or reuses id.
func (t *Tracer) InstanceCreated(id ids.ID, module string, interned bool) {
	if !t.active() {
		return
	}
	if interned {
		fmt.Fprintf(t.w, "[instance] intern %s (%s)\n", id, module)
		return
	}
	fmt.Fprintf(t.w, "[instance] new %s (%s)\n", id, module)
}

// InterruptHandled is called when an interrupt finds a handling frame.
func (t *Tracer) InterruptHandled(kind string, depth int) {
	if !t.active() {
		return
	}
	fmt.Fprintf(t.w, "[interrupt] %s handled at depth=%d\n", kind, depth)
}

// InterruptUnhandled is called when an interrupt empties the frame stack.
func (t *Tracer) InterruptUnhandled(kind, detail string) {
	if !t.active() {
		return
	}
	fmt.Fprintf(t.w, "[interrupt] %s unhandled: %s\n", kind, detail)
}
