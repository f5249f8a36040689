package cpu

import (
	"github.com/tensorkit/tensorkit/internal/tensor"
)

// Kernel is the single signature every forward kernel conforms to. A
// kernel partitions its output by payload.ThreadIdx of payload.ThreadNum,
// reads inputs without mutation, and never touches pool state. The pool
// supplies the barrier outside the call.
type Kernel func(payload *ComputePayload)

// Registry is the kernel table indexed by opcode: a flat table, not a map
// or a polymorphic dispatch object, so the hot path is one indirect call.
// Sized to the closed Op enumeration in internal/tensor/node.go.
type Registry struct {
	fwd []Kernel
}

// newRegistry returns a zero-filled registry. Every lookup is undefined
// until a Specialization (or the fallback) injects kernels into it.
func newRegistry() *Registry {
	return &Registry{fwd: make([]Kernel, tensor.OpCount())}
}

// set installs a kernel for an opcode. Called only by specialization inject
// functions during device init; the registry is read-only thereafter.
func (r *Registry) set(op tensor.Op, k Kernel) {
	r.fwd[op] = k
}

// Lookup returns the kernel bound to op. Panics if called before selection
// has populated the registry.
func (r *Registry) Lookup(op tensor.Op) Kernel {
	k := r.fwd[op]
	if k == nil {
		panic("cpu: kernel registry has no entry for op " + op.String() + " (device not initialized?)")
	}
	return k
}
