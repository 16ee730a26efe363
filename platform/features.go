package platform

import "github.com/cvmcore/guestid/cpuid"

// The curated features share one flat index space across leaves:
// index = word*32 + bit position. Word assignments are fixed at compile
// time and must not overlap.
const (
	// FeaturePGE: global page support, word 0 (leaf 0x1 EDX).
	FeaturePGE = 0*32 + uint32(cpuid.PGE)

	// FeatureNX: no-execute support, word 1 (leaf 0x80000001 EDX).
	FeatureNX = 1*32 + uint32(cpuid.NX)
)

const featureWords = 2

// HasFeature reports whether the CPU has the given curated feature. The
// backing words are read once, on first use; an unavailable leaf reads as
// all features absent, never as garbage.
func (p *Platform) HasFeature(feat uint32) bool {
	p.featOnce.Do(p.loadFeatures)

	return p.words[feat/32]&(1<<(feat%32)) != 0
}

func (p *Platform) loadFeatures() {
	// Word 0 holds leaf 0x1 EDX.
	if r, ok := p.fn.Query(cpuid.LeafFeatureInfo); ok {
		p.words[0] = r.EDX
	}

	// Word 1 holds leaf 0x80000001 EDX.
	if r, ok := p.fn.Query(cpuid.LeafExtendedFeatures); ok {
		p.words[1] = r.EDX
	}
}
