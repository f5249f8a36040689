package cpu

import "fmt"

// Worker owns one compute payload, a local phase counter, and — for every
// index but 0 — a goroutine. Worker 0 has no goroutine: the main thread
// drives it inline from the pool's kickoff/exec/barrier sequence.
type Worker struct {
	phase   uint64
	payload ComputePayload
	pool    *Pool
	isAsync bool
}

// Name returns a diagnostic label for this worker. Nothing in the package
// calls it, and no invariant depends on it.
func (w *Worker) Name() string {
	return fmt.Sprintf("worker-%d", w.payload.ThreadIdx)
}

// run is the async worker's entry point: wait, work, signal, repeat until
// interrupted. Worker 0 never calls this — the main thread executes
// awaitWork/execAndBroadcast's "work" step directly from
// Pool.kickoff/parallelCompute.
func (w *Worker) run() {
	w.pool.numWorkersOnline.Add(1)
	for w.pool.awaitWork(w) {
		w.pool.execAndBroadcast(w)
	}
	w.pool.numWorkersOnline.Add(-1)
}
