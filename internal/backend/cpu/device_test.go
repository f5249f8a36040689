package cpu

import (
	"strings"
	"testing"

	"github.com/tensorkit/tensorkit/internal/tensor"
)

func TestNewDevice_NameIncludesWorkerCount(t *testing.T) {
	dev := NewDevice(DeviceDescriptor{NumWorkers: 3}, WithLogger(NoopLogger()))
	defer dev.Close()

	name := dev.Name()
	if name == "" {
		t.Fatal("Name() returned empty string")
	}
	if !strings.Contains(name, "3 workers") {
		t.Errorf("Name() = %q, want it to include the worker count %q", name, "3 workers")
	}
	if dev.numAllocatedWorkers != 3 {
		t.Errorf("numAllocatedWorkers = %d, want 3", dev.numAllocatedWorkers)
	}
}

func TestNewDevice_SingleWorkerHasNoPool(t *testing.T) {
	dev := NewDevice(DeviceDescriptor{NumWorkers: 1}, WithLogger(NoopLogger()))
	defer dev.Close()

	if dev.pool != nil {
		t.Error("a single-worker device should not allocate a pool")
	}
}

func TestCPUDevice_ExecFwd_InlineWhenNoPool(t *testing.T) {
	dev := NewDevice(DeviceDescriptor{NumWorkers: 1}, WithLogger(NoopLogger()))
	defer dev.Close()

	a, _ := tensor.RawFromFloat32([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, tensor.CPU)
	b, _ := tensor.RawFromFloat32([]float32{5, 6, 7, 8}, tensor.Shape{2, 2}, tensor.CPU)
	c, _ := tensor.RawZerosFloat32(tensor.Shape{2, 2}, tensor.CPU)

	node := &tensor.Node{
		Op:     tensor.OpMatMul,
		Inputs: []*tensor.RawTensor{a, b},
		Output: c,
		Extra:  tensor.MatMulDims{M: 2, K: 2, N: 2},
	}
	dev.ExecFwd(node)

	want := []float32{19, 22, 43, 50}
	got := c.AsFloat32()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("c[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCPUDevice_ExecFwd_InlineWhenHeuristicPicksOne(t *testing.T) {
	// A large numel_threshold keeps the heuristic at 1 active worker even
	// with a multi-worker pool allocated, exercising the active<=1 inline
	// path rather than the no-pool path.
	dev := NewDevice(DeviceDescriptor{NumWorkers: 4}, WithLogger(NoopLogger()), WithNumelThreshold(1<<30))
	defer dev.Close()

	a, _ := tensor.RawFromFloat32([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, tensor.CPU)
	b, _ := tensor.RawFromFloat32([]float32{5, 6, 7, 8}, tensor.Shape{2, 2}, tensor.CPU)
	c, _ := tensor.RawZerosFloat32(tensor.Shape{2, 2}, tensor.CPU)

	node := &tensor.Node{
		Op:     tensor.OpMatMul,
		Inputs: []*tensor.RawTensor{a, b},
		Output: c,
		Extra:  tensor.MatMulDims{M: 2, K: 2, N: 2},
	}
	dev.ExecFwd(node)

	want := []float32{19, 22, 43, 50}
	got := c.AsFloat32()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("c[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCPUDevice_ExecFwd_MatMul(t *testing.T) {
	dev := NewDevice(DeviceDescriptor{NumWorkers: 2}, WithLogger(NoopLogger()))
	defer dev.Close()

	a, _ := tensor.RawFromFloat32([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, tensor.CPU)
	b, _ := tensor.RawFromFloat32([]float32{5, 6, 7, 8}, tensor.Shape{2, 2}, tensor.CPU)
	c, _ := tensor.RawZerosFloat32(tensor.Shape{2, 2}, tensor.CPU)

	node := &tensor.Node{
		Op:     tensor.OpMatMul,
		Inputs: []*tensor.RawTensor{a, b},
		Output: c,
		Extra:  tensor.MatMulDims{M: 2, K: 2, N: 2},
	}
	dev.ExecFwd(node)

	want := []float32{19, 22, 43, 50}
	got := c.AsFloat32()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("c[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCPUDevice_ExecFwd_MatchesAcrossWorkerCounts(t *testing.T) {
	const m, k, n = 17, 5, 3
	aData := make([]float32, m*k)
	bData := make([]float32, k*n)
	for i := range aData {
		aData[i] = float32(i%7) - 3
	}
	for i := range bData {
		bData[i] = float32(i%5) - 2
	}

	run := func(numWorkers uint32) []float32 {
		dev := NewDevice(DeviceDescriptor{NumWorkers: numWorkers}, WithLogger(NoopLogger()), WithNumelThreshold(0))
		defer dev.Close()

		a, _ := tensor.RawFromFloat32(aData, tensor.Shape{m, k}, tensor.CPU)
		b, _ := tensor.RawFromFloat32(bData, tensor.Shape{k, n}, tensor.CPU)
		c, _ := tensor.RawZerosFloat32(tensor.Shape{m, n}, tensor.CPU)
		node := &tensor.Node{
			Op:     tensor.OpMatMul,
			Inputs: []*tensor.RawTensor{a, b},
			Output: c,
			Extra:  tensor.MatMulDims{M: m, K: k, N: n},
		}
		dev.ExecFwd(node)
		return append([]float32(nil), c.AsFloat32()...)
	}

	single := run(1)
	multi := run(4)
	for i := range single {
		if single[i] != multi[i] {
			t.Errorf("result[%d]: single-worker=%v multi-worker=%v", i, single[i], multi[i])
		}
	}
}

func TestCPUDevice_ExecBwd_Panics(t *testing.T) {
	dev := NewDevice(DeviceDescriptor{NumWorkers: 1}, WithLogger(NoopLogger()))
	defer dev.Close()

	defer func() {
		if recover() == nil {
			t.Error("expected ExecBwd to panic")
		}
	}()
	dev.ExecBwd(&tensor.Node{})
}
