package runtime

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/uqbar-project/wollok-core/internal/ids"
)

// Current schema version - increment when SnapshotPayload's format changes.
const snapshotSchemaVersion uint16 = 1

// SnapshotPayload is the binary-serializable form of an Evaluation's
// mutable state, a companion to Copy() for collaborators that need to ship
// a snapshot across a process boundary (a debugger, a REPL host).
type SnapshotPayload struct {
	Schema    uint16
	Precision uint
	Instances []Instance
	Frames    []FrameSnapshot
}

// FrameSnapshot is the serializable form of a Frame.
type FrameSnapshot struct {
	Locals       map[string]ids.ID
	OperandStack []ids.ID
	Resume       []Interruption
}

// Snapshot serializes e's instance heap and frame stack to msgpack. The id
// Generator and Tracer collaborators are not part of the payload; Restore
// leaves them untouched on the receiving Evaluation.
func (e *Evaluation) Snapshot() ([]byte, error) {
	payload := SnapshotPayload{
		Schema:    snapshotSchemaVersion,
		Precision: e.precision,
		Instances: make([]Instance, 0, len(e.instances)),
		Frames:    make([]FrameSnapshot, 0, len(e.frameStack)),
	}
	for _, inst := range e.instances {
		payload.Instances = append(payload.Instances, inst.clone())
	}
	for _, f := range e.frameStack {
		payload.Frames = append(payload.Frames, frameToSnapshot(f))
	}
	return msgpack.Marshal(&payload)
}

// Restore replaces e's instance heap and frame stack with the contents of
// a previously Snapshot-ted payload, leaving the Generator and Tracer
// collaborators as they were on e.
func (e *Evaluation) Restore(data []byte) error {
	var payload SnapshotPayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return err
	}
	e.precision = payload.Precision
	e.instances = make(map[ids.ID]Instance, len(payload.Instances))
	for _, inst := range payload.Instances {
		e.instances[inst.ID] = inst
	}
	e.frameStack = make([]*Frame, len(payload.Frames))
	for i, fs := range payload.Frames {
		e.frameStack[i] = frameFromSnapshot(fs)
	}
	return nil
}

func frameToSnapshot(f *Frame) FrameSnapshot {
	resume := make([]Interruption, 0, len(f.Resume))
	for k := range f.Resume {
		resume = append(resume, k)
	}
	return FrameSnapshot{
		Locals:       f.Locals,
		OperandStack: append([]ids.ID(nil), f.OperandStack...),
		Resume:       resume,
	}
}

func frameFromSnapshot(fs FrameSnapshot) *Frame {
	f := NewFrame(fs.Resume...)
	for k, v := range fs.Locals {
		f.Locals[k] = v
	}
	f.OperandStack = append([]ids.ID(nil), fs.OperandStack...)
	return f
}
