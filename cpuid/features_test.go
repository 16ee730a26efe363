package cpuid_test

import (
	"testing"

	"github.com/cvmcore/guestid/cpuid"
)

func checkBits[T cpuid.Feature](t *testing.T, name string, feats []T) {
	t.Helper()

	seen := map[T]bool{}

	for _, f := range feats {
		if uint32(f) > 31 {
			t.Errorf("%s: bit %d out of register range", name, f)
		}

		if seen[f] {
			t.Errorf("%s: bit %d assigned twice", name, f)
		}

		seen[f] = true
	}
}

func checkNames[T cpuid.Feature](t *testing.T, name string, feats []T, names map[T]string) {
	t.Helper()

	if len(names) != len(feats) {
		t.Errorf("%s: %d names for %d flags", name, len(names), len(feats))
	}

	for _, f := range feats {
		if names[f] == "" {
			t.Errorf("%s: bit %d has no name", name, f)
		}
	}
}

func TestFeatureBitsDistinct(t *testing.T) {
	t.Parallel()

	checkBits(t, "F1Ecx", cpuid.AllF1Ecx)
	checkBits(t, "F1Edx", cpuid.AllF1Edx)
	checkBits(t, "F6Eax", cpuid.AllF6Eax)
	checkBits(t, "F6Ecx", cpuid.AllF6Ecx)
	checkBits(t, "F7_0Ebx", cpuid.AllF7_0Ebx)
	checkBits(t, "F7_0Ecx", cpuid.AllF7_0Ecx)
	checkBits(t, "F7_0Edx", cpuid.AllF7_0Edx)
	checkBits(t, "F40000001Eax", cpuid.AllF40000001Eax)
	checkBits(t, "F80000001Edx", cpuid.AllF80000001Edx)
}

func TestFeatureNamesComplete(t *testing.T) {
	t.Parallel()

	checkNames(t, "F1Ecx", cpuid.AllF1Ecx, cpuid.F1EcxNames)
	checkNames(t, "F1Edx", cpuid.AllF1Edx, cpuid.F1EdxNames)
	checkNames(t, "F6Eax", cpuid.AllF6Eax, cpuid.F6EaxNames)
	checkNames(t, "F6Ecx", cpuid.AllF6Ecx, cpuid.F6EcxNames)
	checkNames(t, "F7_0Ebx", cpuid.AllF7_0Ebx, cpuid.F7_0EbxNames)
	checkNames(t, "F7_0Ecx", cpuid.AllF7_0Ecx, cpuid.F7_0EcxNames)
	checkNames(t, "F7_0Edx", cpuid.AllF7_0Edx, cpuid.F7_0EdxNames)
	checkNames(t, "F40000001Eax", cpuid.AllF40000001Eax, cpuid.F40000001EaxNames)
	checkNames(t, "F80000001Edx", cpuid.AllF80000001Edx, cpuid.F80000001EdxNames)
}

// The curated bits feeding the flat feature index space must keep their
// hardware positions.
func TestCuratedBitPositions(t *testing.T) {
	t.Parallel()

	if cpuid.PGE != 13 {
		t.Errorf("PGE moved to bit %d", cpuid.PGE)
	}

	if cpuid.NX != 20 {
		t.Errorf("NX moved to bit %d", cpuid.NX)
	}

	if cpuid.HYPERVISOR != 31 {
		t.Errorf("HYPERVISOR moved to bit %d", cpuid.HYPERVISOR)
	}
}
