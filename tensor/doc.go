// Package tensor provides the public, low-level tensor types shared by
// compute backends: shapes, data types, devices, and the reference-counted
// raw buffer.
//
// # Basic usage
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
//	data := raw.AsFloat32()
//
// Operator arithmetic and the compute graph live in backend packages (see
// backend/cpu); this package only carries the data model the backends
// operate on.
package tensor
