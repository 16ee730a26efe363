// Package platform classifies the confidential computing technology the
// guest runs under and caches a curated set of CPU capability bits.
//
// Both classifications are computed at most once per boot and never
// change afterwards, so callers may treat the accessors as free.
package platform

import (
	"sync"

	"github.com/cvmcore/guestid/cpuid"
)

// CPUType is the confidential computing technology the guest runs under.
type CPUType int

const (
	// CPUTypeSEV is AMD SEV-SNP, the conservative default.
	CPUTypeSEV CPUType = iota

	// CPUTypeTD is an Intel TDX trust domain.
	CPUTypeTD
)

func (t CPUType) String() string {
	switch t {
	case CPUTypeSEV:
		return "sev"
	case CPUTypeTD:
		return "tdx"
	}

	return "unknown"
}

// Function issues a CPU identification query for a leaf with sub-leaf 0.
// Implementations are the native instruction or a static table for tests.
type Function interface {
	Query(leaf uint32) (cpuid.Result, bool)
}

// Native queries the hardware instruction.
type Native struct{}

// Query implements Function.
func (Native) Query(leaf uint32) (cpuid.Result, bool) {
	return cpuid.Query(leaf)
}

// Static is a fixed leaf-to-result mapping.
type Static map[uint32]cpuid.Result

// Query implements Function.
func (s Static) Query(leaf uint32) (cpuid.Result, bool) {
	r, ok := s[leaf]

	return r, ok
}

// Platform holds the per-boot identification state: the query source,
// the feature-cache words and the resolved CPU type. Each cached value is
// computed once under its sync.Once and is read-only afterwards, so
// concurrent first callers all observe the same fully computed result.
type Platform struct {
	fn Function

	featOnce sync.Once
	words    [featureWords]uint32

	typeOnce sync.Once
	cpuType  CPUType
}

// New returns an unevaluated Platform backed by fn.
func New(fn Function) *Platform {
	return &Platform{fn: fn}
}

//nolint:gochecknoglobals
var host = New(Native{})

// Host returns the process-wide platform state. It is the only accessor;
// nothing else in the package mutates it.
func Host() *Platform {
	return host
}

// Identify returns the technology the guest runs under.
func Identify() CPUType {
	return host.CPUType()
}

// IsSEV reports whether the guest runs under AMD SEV-SNP.
func IsSEV() bool {
	return host.IsSEV()
}

// IsTD reports whether the guest runs under an Intel TDX trust domain.
func IsTD() bool {
	return host.IsTD()
}

// HasFeature reports whether the host CPU has the given curated feature.
func HasFeature(feat uint32) bool {
	return host.HasFeature(feat)
}
