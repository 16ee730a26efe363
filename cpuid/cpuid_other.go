//go:build !amd64

package cpuid

// CPUID is a stub on targets without the CPUID instruction.
func CPUID(leaf uint32) (uint32, uint32, uint32, uint32) {
	return 0, 0, 0, 0
}

// Query reports no data on targets without the CPUID instruction.
func Query(leaf uint32) (Result, bool) {
	return Result{}, false
}
