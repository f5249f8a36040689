package cpu

import "github.com/tensorkit/tensorkit/internal/tensor"

// ComputePayload is the per-phase record a kernel receives: the node to
// compute, this worker's index, and the active width for the phase. All
// workers in a phase see the same Node and ThreadNum; ThreadIdx is unique
// across [0, numAllocated).
//
// Kernels must partition output elements by ThreadIdx of ThreadNum (or an
// equivalent deterministic sharding) and write only their own shard.
type ComputePayload struct {
	Node      *tensor.Node
	ThreadIdx int
	ThreadNum int
}

// Share returns the [start, end) half-open range of n elements this
// payload's thread owns under an even contiguous split. Kernels that shard
// by contiguous row/element ranges (matmul, elementwise) use this; kernels
// that shard by stride (ThreadIdx mod ThreadNum) roll their own loop.
func (p *ComputePayload) Share(n int) (start, end int) {
	if p.ThreadNum <= 0 {
		return 0, n
	}
	chunk := (n + p.ThreadNum - 1) / p.ThreadNum
	start = p.ThreadIdx * chunk
	if start > n {
		start = n
	}
	end = start + chunk
	if end > n {
		end = n
	}
	return start, end
}
