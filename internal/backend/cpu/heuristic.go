package cpu

import "math"

// WidthHeuristic computes how many of the allocated workers should go
// active for a node of the given element count. Below threshold the work
// is too small to split at all; at and above it, the active count grows
// logarithmically with the number of elements past the threshold, scaled
// by growthScale, and clamped to [1, allocated].
//
// At numel == threshold, log2(0) is -Inf, which clamps straight to 1
// without a separate branch; the clamp below, not an extra comparison, is
// what keeps that edge well-defined.
func WidthHeuristic(numel int64, growthScale float64, threshold int64, allocated uint32) uint32 {
	if numel < threshold {
		return 1
	}
	raw := math.Ceil(growthScale * math.Log2(float64(numel-threshold)))

	width := int64(1)
	if raw > 1 {
		width = int64(raw)
	}
	if width > int64(allocated) {
		width = int64(allocated)
	}
	if width < 1 {
		width = 1
	}
	return uint32(width)
}
