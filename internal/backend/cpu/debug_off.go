//go:build !cpu_debug

package cpu

// debugAssertPhasesConverged is a no-op in normal builds. Build with
// -tags cpu_debug to enable the check in debug_on.go.
func debugAssertPhasesConverged(p *Pool) {}
