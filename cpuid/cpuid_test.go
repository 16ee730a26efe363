package cpuid_test

import (
	"testing"

	"github.com/cvmcore/guestid/cpuid"
)

func TestCPUID(t *testing.T) {
	t.Parallel()

	r, ok := cpuid.Query(cpuid.LeafVendorID)
	if !ok {
		t.Skip("cpuid instruction not available on this target")
	}

	t.Logf("eax:0x%x ebx:0x%x ecx:0x%x edx:0x%x", r.EAX, r.EBX, r.ECX, r.EDX)

	vendor := cpuid.VendorString(r)
	if vendor != "GenuineIntel" && vendor != "AuthenticAMD" {
		t.Fatalf("Unknown CPU vendor found: %s", vendor)
	}

	eax, ebx, ecx, edx := cpuid.CPUID(cpuid.LeafVendorID)
	if (cpuid.Result{EAX: eax, EBX: ebx, ECX: ecx, EDX: edx}) != r {
		t.Fatalf("CPUID and Query disagree for leaf 0")
	}
}
