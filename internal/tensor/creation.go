package tensor

import "fmt"

// RawFromFloat32 creates a RawTensor of the given shape on device, copying
// data into it.
func RawFromFloat32(data []float32, shape Shape, device Device) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, got %d", shape, shape.NumElements(), len(data))
	}
	raw, err := NewRaw(shape, Float32, device)
	if err != nil {
		return nil, err
	}
	copy(raw.AsFloat32(), data)
	return raw, nil
}

// RawZerosFloat32 creates a zero-filled float32 RawTensor of the given shape.
func RawZerosFloat32(shape Shape, device Device) (*RawTensor, error) {
	return NewRaw(shape, Float32, device)
}
