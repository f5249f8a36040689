package cpu

import (
	"fmt"
	"runtime"

	"github.com/tensorkit/tensorkit/internal/tensor"
)

// DeviceDescriptor configures a CPUDevice at construction: how many
// workers to allocate.
type DeviceDescriptor struct {
	// NumWorkers is the number of workers to allocate. Zero means
	// runtime.NumCPU().
	NumWorkers uint32
}

// CPUDevice executes tensor graph nodes on a pool of CPU workers, picking
// a kernel specialization once at construction time based on the host's
// feature set.
//
// pool is nil when only one worker is allocated: there is nothing to
// barrier against, so ExecFwd runs the kernel inline on the calling
// goroutine instead of paying for a pool that would only ever have one
// member.
type CPUDevice struct {
	pool                *Pool
	registry            *Registry
	numAllocatedWorkers uint32
	growthScale         float64
	numelThreshold      int64
	specName            string
	specMatched         bool
	logger              *Logger
}

// NewDevice probes host CPU features, selects the best matching
// specialization, allocates a worker pool (unless only one worker was
// requested), and returns a ready device.
func NewDevice(desc DeviceDescriptor, opts ...Option) *CPUDevice {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	n := desc.NumWorkers
	if n == 0 {
		n = o.numWorkers
	}
	if n == 0 {
		n = uint32(runtime.NumCPU())
	}
	if n == 0 {
		n = 1
	}

	registry := newRegistry()
	specs := specializationsForArch(runtime.GOARCH)
	name, matched := selectSpecialization(hostFeatureProbe{}, specs, registry)
	o.logger.LogSpecialization(name, matched, runtime.GOARCH)

	var pool *Pool
	if n > 1 {
		pool = newPool(n, registry, o.sched, o.logger)
		o.logger.LogPoolLifecycle("created", n)
	}

	return &CPUDevice{
		pool:                pool,
		registry:            registry,
		numAllocatedWorkers: n,
		growthScale:         o.growthScale,
		numelThreshold:      o.numelThreshold,
		specName:            name,
		specMatched:         matched,
		logger:              o.logger,
	}
}

// Name returns a diagnostic device name including its specialization,
// CPU model, and worker count.
func (d *CPUDevice) Name() string {
	return fmt.Sprintf("cpu[%s, %s, %d workers]", d.specName, cpuBrandName(), d.numAllocatedWorkers)
}

// ExecFwd runs a node's forward kernel across a work-width chosen by the
// dynamic heuristic, then blocks until every participating worker retires
// its shard. When there is no pool, or the heuristic settles on a single
// active worker, the kernel runs directly on the calling goroutine instead
// of going through the pool's kickoff/barrier sequence.
func (d *CPUDevice) ExecFwd(node *tensor.Node) {
	active := WidthHeuristic(int64(node.Numel()), d.growthScale, d.numelThreshold, d.numAllocatedWorkers)
	d.logger.LogDispatch(node.Op.String(), int64(node.Numel()), active)

	if d.pool == nil || active <= 1 {
		d.registry.Lookup(node.Op)(&ComputePayload{Node: node, ThreadIdx: 0, ThreadNum: 1})
		return
	}
	d.pool.parallelCompute(node, active)
}

// ExecBwd runs the backward pass rooted at root. Backward execution is not
// implemented at the device level: the compute graph, autodiff tape, and
// gradient accumulation this would require live outside this package.
func (d *CPUDevice) ExecBwd(root *tensor.Node) {
	panic("cpu: backward execution not yet implemented")
}

// AllocStorage allocates an aligned buffer of n bytes on this device.
func (d *CPUDevice) AllocStorage(n int) *StorageBuffer {
	return AllocStorage(n)
}

// FreeStorage releases a buffer previously returned by AllocStorage.
func (d *CPUDevice) FreeStorage(b *StorageBuffer) {
	FreeStorage(b)
}

// Close tears down the device's worker pool, if one was allocated. After
// Close, ExecFwd must not be called again.
func (d *CPUDevice) Close() {
	if d.pool == nil {
		return
	}
	d.pool.destroy()
	d.logger.LogPoolLifecycle("destroyed", d.numAllocatedWorkers)
}
