//go:build cpu_debug

package cpu

// debugAssertPhasesConverged checks that every async worker (index
// 1..n-1) observed the same phase the barrier just drained for. Worker 0
// is driven inline by parallelCompute and never goes through awaitWork, so
// its phase field is not updated and it is not checked. A mismatch would mean a
// worker woke on a stale phase and double-counted into numCompleted, which
// should be impossible given the locking in kickoff/awaitWork/
// execAndBroadcast — this exists to catch a regression in that invariant,
// not a condition expected to trip in correct builds.
func debugAssertPhasesConverged(p *Pool) {
	for _, w := range p.workers {
		if w.isAsync && w.phase != p.phase {
			panic("cpu: worker phase diverged from pool phase after barrier")
		}
	}
}
