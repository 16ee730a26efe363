//go:build amd64

package cpuid

func cpuidLow(arg1, arg2 uint32) (eax, ebx, ecx, edx uint32) // implemented in cpuid_amd64.s

// CPUID issues the CPUID instruction for the given leaf with sub-leaf 0
// and returns the raw output registers.
func CPUID(leaf uint32) (uint32, uint32, uint32, uint32) {
	return cpuidLow(leaf, 0)
}

// Query issues an unverified CPUID query for the given leaf with sub-leaf
// 0. The second return value is false only on targets where the
// instruction is unavailable; callers treat that the same as a leaf with
// no data.
func Query(leaf uint32) (Result, bool) {
	eax, ebx, ecx, edx := cpuidLow(leaf, 0)

	return Result{EAX: eax, EBX: ebx, ECX: ecx, EDX: edx}, true
}
