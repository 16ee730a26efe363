// Package cpuid provides CPU identification for confidential virtual
// machine guests.
//
// Two query paths exist. The raw path issues the CPUID instruction
// directly; under a confidential computing threat model its results pass
// through an untrusted hypervisor and must not be used for trust
// decisions. The verified path looks results up in a firmware-measured
// table installed once at boot (see InstallTable), which closes the
// hypervisor tampering surface for the leaves the table covers.
package cpuid

// Leaf numbers consulted by the rest of the kernel.
const (
	LeafVendorID            = 0x00000000
	LeafFeatureInfo         = 0x00000001
	LeafPowerParams         = 0x00000006
	LeafExtendedFeatureInfo = 0x00000007
	LeafTDXEnumeration      = 0x00000021
	LeafKVMFeatures         = 0x40000001
	LeafExtendedFeatures    = 0x80000001
)

// Result holds the four output registers of a CPUID query.
type Result struct {
	EAX uint32
	EBX uint32
	ECX uint32
	EDX uint32
}

// VendorString decodes the 12-byte vendor identification string returned
// in EBX, EDX, ECX of leaf 0.
func VendorString(r Result) string {
	b := make([]byte, 0, 12)
	for _, reg := range []uint32{r.EBX, r.EDX, r.ECX} {
		b = append(b, byte(reg), byte(reg>>8), byte(reg>>16), byte(reg>>24))
	}

	return string(b)
}
