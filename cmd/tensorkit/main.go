// Package main provides the tensorkit CLI.
package main

import (
	"fmt"
	"os"

	"github.com/tensorkit/tensorkit/backend/cpu"
	"github.com/tensorkit/tensorkit/internal/tensor"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("tensorkit %s\n", version)
	case "probe":
		runProbe()
	case "matmul-demo":
		runMatMulDemo()
	default:
		usage()
	}
}

func usage() {
	fmt.Println("tensorkit - CPU tensor device toolkit")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version       Show version")
	fmt.Println("  probe         Print the selected CPU device name")
	fmt.Println("  matmul-demo   Run a small matmul on the CPU device")
}

func runProbe() {
	dev := cpu.NewDevice(cpu.Descriptor{})
	defer dev.Close()
	fmt.Println(dev.Name())
}

func runMatMulDemo() {
	dev := cpu.NewDevice(cpu.Descriptor{NumWorkers: 4})
	defer dev.Close()

	a, err := tensor.RawFromFloat32([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, tensor.CPU)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	b, err := tensor.RawFromFloat32([]float32{1, 0, 0, 1, 1, 1}, tensor.Shape{3, 2}, tensor.CPU)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	c, err := tensor.RawZerosFloat32(tensor.Shape{2, 2}, tensor.CPU)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	node := &tensor.Node{
		Op:     tensor.OpMatMul,
		Inputs: []*tensor.RawTensor{a, b},
		Output: c,
		Extra:  tensor.MatMulDims{M: 2, K: 3, N: 2},
	}
	dev.ExecFwd(node)
	fmt.Println(c.AsFloat32())
}
