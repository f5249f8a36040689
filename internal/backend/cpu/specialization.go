package cpu

// Specialization is a bundle of kernels tuned to a CPU feature level: a
// name, the feature tags it requires, and an inject function that writes
// kernels into a Registry.
type Specialization struct {
	Name    string
	Require []Feature
	Inject  func(r *Registry)
}

// amd64Specializations lists the x86-64 tiers from most to least capable.
// This order is the tie-break rule for selection and must never be
// alphabetized.
//
// All four tiers currently inject the same portable Go arithmetic
// (injectGenericKernels): the kernels' SIMD arithmetic is a separate
// concern from the calling contract specified here. What's real in this
// list is the feature probing, the best-to-worst ordering, and the logged
// choice — a later change that adds actual AVX2/AVX-512 assembly kernels
// would replace only the Inject functions below, not this list or the
// selection logic.
var amd64Specializations = []Specialization{
	{Name: "amd64_avx512f", Require: []Feature{FeatureAVX512F}, Inject: injectGenericKernels},
	{Name: "amd64_avx2", Require: []Feature{FeatureAVX2}, Inject: injectGenericKernels},
	{Name: "amd64_avx", Require: []Feature{FeatureAVX}, Inject: injectGenericKernels},
	{Name: "amd64_sse41", Require: []Feature{FeatureSSE41}, Inject: injectGenericKernels},
}

// arm64Specializations lists the arm64 tiers from most to least capable.
var arm64Specializations = []Specialization{
	{Name: "arm64_sve2", Require: []Feature{FeatureSVE2}, Inject: injectGenericKernels},
	{Name: "arm64_neon", Require: []Feature{FeatureNEON}, Inject: injectGenericKernels},
}

// specializationsForArch returns the ordered specialization list for the
// given GOARCH, or nil if the arch has no specializations (falls straight
// to the generic fallback).
func specializationsForArch(goarch string) []Specialization {
	switch goarch {
	case "amd64":
		return amd64Specializations
	case "arm64":
		return arm64Specializations
	default:
		return nil
	}
}

// selectSpecialization iterates specs in order and injects the first one
// whose entire Require list is satisfied by probe. Returns true if a
// specialization was used, false if the generic fallback had to activate.
// A specialization with an empty Require list is malformed and skipped.
func selectSpecialization(probe FeatureProbe, specs []Specialization, r *Registry) (chosen string, matched bool) {
	for _, spec := range specs {
		if len(spec.Require) == 0 {
			continue // malformed: skip silently
		}
		hasAll := true
		for _, f := range spec.Require {
			if !probe.HasFeature(f) {
				hasAll = false
				break
			}
		}
		if hasAll {
			spec.Inject(r)
			return spec.Name, true
		}
	}
	injectGenericKernels(r)
	return "generic", false
}
