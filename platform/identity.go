package platform

import "github.com/cvmcore/guestid/cpuid"

// Signature dwords as returned in EBX, EDX, ECX.
const (
	vendorIntelEBX = 0x756e6547 // "Genu"
	vendorIntelEDX = 0x49656e69 // "ineI"
	vendorIntelECX = 0x6c65746e // "ntel"

	// Leaf 0x21 returns "IntelTDX    " inside a trust domain.
	tdxSignatureEBX = 0x65746e49 // "Inte"
	tdxSignatureEDX = 0x5844546c // "lTDX"
	tdxSignatureECX = 0x20202020 // "    "
)

// CPUType resolves the technology the guest runs under. The first call
// classifies and caches; later calls return the cached value without
// touching hardware.
func (p *Platform) CPUType() CPUType {
	p.typeOnce.Do(func() {
		if p.isTD() {
			p.cpuType = CPUTypeTD
		} else {
			p.cpuType = CPUTypeSEV
		}
	})

	return p.cpuType
}

// IsSEV reports whether the guest runs under AMD SEV-SNP.
func (p *Platform) IsSEV() bool {
	return p.CPUType() == CPUTypeSEV
}

// IsTD reports whether the guest runs under an Intel TDX trust domain.
func (p *Platform) IsTD() bool {
	return p.CPUType() == CPUTypeTD
}

// isTD checks the TDX fingerprint. The three steps are ordered and each
// is necessary but not sufficient: bare metal and compatible platforms
// reuse the Intel vendor string with no hypervisor visible, and only leaf
// 0x21 carries the trust domain signature. Any mismatch or unavailable
// query classifies as SEV, the conservative default.
func (p *Platform) isTD() bool {
	r, ok := p.fn.Query(cpuid.LeafVendorID)
	if !ok || r.EBX != vendorIntelEBX || r.EDX != vendorIntelEDX || r.ECX != vendorIntelECX {
		return false
	}

	r, ok = p.fn.Query(cpuid.LeafFeatureInfo)
	if !ok || r.ECX&(1<<cpuid.HYPERVISOR) == 0 {
		return false
	}

	r, ok = p.fn.Query(cpuid.LeafTDXEnumeration)
	if !ok || r.EBX != tdxSignatureEBX || r.EDX != tdxSignatureEDX || r.ECX != tdxSignatureECX {
		return false
	}

	return true
}
