package cpu

import (
	internalcpu "github.com/tensorkit/tensorkit/internal/backend/cpu"
)

// Device is the CPU compute device: a worker pool, a kernel registry
// populated by specialization selection, and the work-width heuristic that
// governs how many workers a given node uses.
type Device = internalcpu.CPUDevice

// Descriptor configures a Device at construction time.
type Descriptor = internalcpu.DeviceDescriptor

// Option configures a Device's heuristic parameters, scheduling priority,
// and logger.
type Option = internalcpu.Option

// SchedPriority is a scheduling-priority hint stored on the pool; it has no
// effect on how workers are scheduled.
type SchedPriority = internalcpu.SchedPriority

// Scheduling priority hints.
const (
	SchedPriorityNormal = internalcpu.SchedPriorityNormal
	SchedPriorityHigh   = internalcpu.SchedPriorityHigh
)

// NewDevice probes host CPU features, selects a kernel specialization, and
// allocates a ready worker pool.
func NewDevice(desc Descriptor, opts ...Option) *Device {
	return internalcpu.NewDevice(desc, opts...)
}

// WithGrowthScale overrides the work-width heuristic's growth scale.
func WithGrowthScale(g float64) Option {
	return internalcpu.WithGrowthScale(g)
}

// WithNumelThreshold overrides the work-width heuristic's threshold.
func WithNumelThreshold(t int64) Option {
	return internalcpu.WithNumelThreshold(t)
}

// WithSchedPriority sets the scheduling-priority hint stored on the pool.
// The hint has no effect on how workers are scheduled.
func WithSchedPriority(p SchedPriority) Option {
	return internalcpu.WithSchedPriority(p)
}

// WithNumWorkers sets the number of workers allocated to the pool when
// Descriptor.NumWorkers is zero; a non-zero descriptor value takes
// precedence.
func WithNumWorkers(n uint32) Option {
	return internalcpu.WithNumWorkers(n)
}

// WithLogger overrides the device's logger.
func WithLogger(l *internalcpu.Logger) Option {
	return internalcpu.WithLogger(l)
}
