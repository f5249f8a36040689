package cpu

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

// Feature names one CPU instruction-set extension a specialization may
// require. The set is abstract on purpose: specializations reference these
// tags, not raw CPUID bits.
type Feature string

// Feature tags referenced by the specialization list in specialization.go,
// backed by the flags golang.org/x/sys/cpu exposes.
const (
	FeatureSSE41   Feature = "sse4.1"
	FeatureAVX     Feature = "avx"
	FeatureAVX2    Feature = "avx2"
	FeatureAVX512F Feature = "avx512f"
	FeatureNEON    Feature = "neon"
	FeatureSVE2    Feature = "sve2"
)

// FeatureProbe answers whether the host CPU supports a given feature.
type FeatureProbe interface {
	HasFeature(f Feature) bool
}

// hostFeatureProbe answers feature queries against the actual host CPU via
// golang.org/x/sys/cpu, gated per architecture since the feature bits it
// exposes differ by GOARCH.
type hostFeatureProbe struct{}

// HasFeature reports whether the host CPU supports the named feature.
func (hostFeatureProbe) HasFeature(f Feature) bool {
	switch f {
	case FeatureSSE41:
		return runtime.GOARCH == "amd64" && cpu.X86.HasSSE41
	case FeatureAVX:
		return runtime.GOARCH == "amd64" && cpu.X86.HasAVX
	case FeatureAVX2:
		return runtime.GOARCH == "amd64" && cpu.X86.HasAVX2
	case FeatureAVX512F:
		return runtime.GOARCH == "amd64" && cpu.X86.HasAVX512F
	case FeatureNEON:
		return runtime.GOARCH == "arm64" && cpu.ARM64.HasASIMD
	case FeatureSVE2:
		return runtime.GOARCH == "arm64" && cpu.ARM64.HasSVE2
	default:
		return false
	}
}

// cpuBrandName returns a human-readable CPU model string for the device
// name. golang.org/x/sys/cpu has no brand-string accessor; klauspost/cpuid/v2
// does, so both libraries are used for what each is actually good at rather
// than hand-rolling CPUID leaf parsing.
func cpuBrandName() string {
	if name := cpuid.CPU.BrandName; name != "" {
		return name
	}
	return "unknown CPU"
}
