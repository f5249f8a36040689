package cpu

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/tensorkit/tensorkit/internal/tensor"
)

// SchedPriority is a scheduling-priority hint for pool workers. Go's
// goroutine scheduler exposes no portable priority knob, so this is carried
// as a documented no-op for now rather than silently dropped.
type SchedPriority int

// Scheduling priority hints.
const (
	SchedPriorityNormal SchedPriority = iota
	SchedPriorityHigh
)

// Pool is the phase-barrier worker pool: one mutex, one condition variable,
// a monotonic phase counter, and a fixed array of workers. Every allocated
// worker wakes on the same phase transition, runs its shard of the current
// node, and reports back through the shared counter before the barrier
// releases the caller.
type Pool struct {
	mu sync.Mutex
	cv *sync.Cond

	interrupt           bool
	phase               uint64
	numCompleted        uint32
	numAllocatedWorkers uint32
	numActiveWorkers    uint32

	numWorkersOnline atomic.Int32

	workers  []*Worker
	registry *Registry
	sched    SchedPriority
	logger   *Logger
}

// newPool creates a pool of n workers (worker 0 is the caller, workers
// 1..n-1 get goroutines) and blocks until every async worker goroutine has
// started and counted itself online. A worker that has not yet parked when
// the first kickoff lands still picks that phase up: awaitWork compares
// phases before waiting.
func newPool(n uint32, registry *Registry, sched SchedPriority, logger *Logger) *Pool {
	p := &Pool{
		numAllocatedWorkers: n,
		numActiveWorkers:    n,
		workers:             make([]*Worker, n),
		registry:            registry,
		sched:               sched,
		logger:              logger,
	}
	p.cv = sync.NewCond(&p.mu)

	for i := uint32(0); i < n; i++ {
		w := &Worker{
			payload: ComputePayload{ThreadIdx: int(i), ThreadNum: int(n)},
			pool:    p,
			isAsync: i != 0,
		}
		p.workers[i] = w
		if w.isAsync {
			go w.run()
		}
	}

	for p.numWorkersOnline.Load() != int32(n-1) {
		runtime.Gosched()
	}
	return p
}

// destroy signals every worker to exit and blocks until they have. Workers
// with in-flight kernels always finish; there is no mid-kernel abort.
func (p *Pool) destroy() {
	p.mu.Lock()
	p.interrupt = true
	p.phase++
	p.mu.Unlock()
	p.cv.Broadcast()

	for p.numWorkersOnline.Load() != 0 {
		runtime.Gosched()
	}
}

// awaitWork blocks worker w until a new phase is published or the pool is
// torn down. Returns false when the worker should exit its loop.
func (p *Pool) awaitWork(w *Worker) bool {
	p.mu.Lock()
	for !p.interrupt && p.phase == w.phase {
		p.cv.Wait()
	}
	if p.interrupt {
		p.mu.Unlock()
		return false
	}
	w.phase = p.phase
	p.mu.Unlock()
	return true
}

// execAndBroadcast runs w's share of the current phase's kernel (if active
// and there's a node), then signals completion.
//
// numActiveWorkers is read here without holding the mutex. That is safe,
// not a race: kickoff writes it under the mutex before bumping phase, and
// awaitWork only returns true after observing the new phase under the same
// mutex, so the write already happened-before this read.
func (p *Pool) execAndBroadcast(w *Worker) {
	if w.payload.ThreadIdx < int(p.numActiveWorkers) && w.payload.Node != nil {
		p.registry.Lookup(w.payload.Node.Op)(&w.payload)
		w.payload.Node = nil
	}

	p.mu.Lock()
	p.numCompleted++
	if p.numCompleted == p.numAllocatedWorkers {
		p.cv.Broadcast()
	}
	p.mu.Unlock()
}

// kickoff publishes a new phase: every allocated worker's payload gets the
// node and active width, the phase counter advances, and the completion
// counter resets.
func (p *Pool) kickoff(node *tensor.Node, active uint32) {
	p.mu.Lock()
	p.numActiveWorkers = active
	for _, w := range p.workers {
		w.payload.Node = node
		w.payload.ThreadNum = int(active)
	}
	p.phase++
	p.numCompleted = 0
	p.mu.Unlock()
	p.cv.Broadcast()
}

// barrier blocks the main thread until every allocated worker has completed
// the current phase.
func (p *Pool) barrier() {
	p.mu.Lock()
	for p.numCompleted != p.numAllocatedWorkers {
		p.cv.Wait()
	}
	p.mu.Unlock()
	debugAssertPhasesConverged(p)
}

// parallelCompute runs node across active (of p.numAllocatedWorkers)
// workers and blocks until it's fully retired. The calling goroutine plays
// worker 0 inline.
func (p *Pool) parallelCompute(node *tensor.Node, active uint32) {
	p.kickoff(node, active)
	p.execAndBroadcast(p.workers[0])
	p.barrier()
}
