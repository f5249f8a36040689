package cpu

import (
	"fmt"

	"github.com/tensorkit/tensorkit/internal/tensor"
)

// injectGenericKernels installs the portable, pure-Go forward kernels for
// every opcode. This is both the architecture-agnostic fallback and, per
// the design note in specialization.go, the implementation every
// amd64/arm64 Specialization currently points at.
func injectGenericKernels(r *Registry) {
	r.set(tensor.OpAdd, kernelElementwise(func(a, b float32) float32 { return a + b }))
	r.set(tensor.OpSub, kernelElementwise(func(a, b float32) float32 { return a - b }))
	r.set(tensor.OpMul, kernelElementwise(func(a, b float32) float32 { return a * b }))
	r.set(tensor.OpDiv, kernelElementwise(func(a, b float32) float32 { return a / b }))
	r.set(tensor.OpMatMul, kernelMatMul)
	r.set(tensor.OpRelu, kernelRelu)
}

// kernelElementwise builds a binary elementwise kernel from a scalar op,
// sharded across workers by ComputePayload.Share.
func kernelElementwise(op func(a, b float32) float32) Kernel {
	return func(payload *ComputePayload) {
		node := payload.Node
		if node == nil {
			return
		}
		a := node.Inputs[0].AsFloat32()
		b := node.Inputs[1].AsFloat32()
		out := node.Output.AsFloat32()

		start, end := payload.Share(len(out))
		for i := start; i < end; i++ {
			out[i] = op(a[i], b[i])
		}
	}
}

// kernelMatMul performs C[M,N] = A[M,K] @ B[K,N], sharding work across
// workers by output row range. Naive O(M*K*N) loop; each worker computes
// only its own row slice of the output.
func kernelMatMul(payload *ComputePayload) {
	node := payload.Node
	if node == nil {
		return
	}
	dims, ok := node.Extra.(tensor.MatMulDims)
	if !ok {
		panic(fmt.Sprintf("cpu: matmul kernel requires Node.Extra to be tensor.MatMulDims, got %T", node.Extra))
	}
	m, k, n := dims.M, dims.K, dims.N

	a := node.Inputs[0].AsFloat32()
	b := node.Inputs[1].AsFloat32()
	c := node.Output.AsFloat32()

	rowStart, rowEnd := payload.Share(m)
	for i := rowStart; i < rowEnd; i++ {
		for j := 0; j < n; j++ {
			var sum float32
			for kk := 0; kk < k; kk++ {
				sum += a[i*k+kk] * b[kk*n+j]
			}
			c[i*n+j] = sum
		}
	}
}

// kernelRelu computes out[i] = max(0, in[i]) over this worker's shard.
func kernelRelu(payload *ComputePayload) {
	node := payload.Node
	if node == nil {
		return
	}
	in := node.Inputs[0].AsFloat32()
	out := node.Output.AsFloat32()

	start, end := payload.Share(len(out))
	for i := start; i < end; i++ {
		if in[i] > 0 {
			out[i] = in[i]
		} else {
			out[i] = 0
		}
	}
}
