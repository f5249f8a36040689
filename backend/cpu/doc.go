// Package cpu re-exports the CPU device from internal/backend/cpu for
// callers outside this module.
package cpu
