// Package probe prints host CPU identification details. Everything here
// goes through the raw, unverified query path: the output is a
// diagnostic for humans, not a trust decision.
package probe

import (
	"fmt"
	"io"

	hostcpuid "github.com/intel-go/cpuid"

	"github.com/cvmcore/guestid/cpuid"
	"github.com/cvmcore/guestid/platform"
)

// Run writes the host identification report to w.
func Run(w io.Writer) {
	fmt.Fprintf(w, "vendor:   %s\n", hostcpuid.VendorIdentificatorString)
	fmt.Fprintf(w, "brand:    %s\n", hostcpuid.ProcessorBrandString)

	// The same string decoded straight from the instruction; under a
	// hostile hypervisor the two can legitimately disagree.
	if r, ok := cpuid.Query(cpuid.LeafVendorID); ok {
		fmt.Fprintf(w, "raw vendor: %s\n", cpuid.VendorString(r))
	}

	fmt.Fprintf(w, "platform: %s\n", platform.Identify())
	fmt.Fprintf(w, "verified table installed: %t\n\n", cpuid.TableInstalled())

	fmt.Fprintf(w, "curated features:\n")
	fmt.Fprintf(w, "* PGE: %t\n", platform.HasFeature(platform.FeaturePGE))
	fmt.Fprintf(w, "* NX:  %t\n\n", platform.HasFeature(platform.FeatureNX))

	// Cross-check the curated NX/PGE bits against the parsed host view.
	fmt.Fprintf(w, "host view: PGE: %t NX: %t\n\n",
		hostcpuid.HasFeature(hostcpuid.PGE),
		hostcpuid.HasExtraFeature(hostcpuid.NX))

	if r, ok := cpuid.Query(cpuid.LeafFeatureInfo); ok {
		fmt.Fprintf(w, "F1Ecx.\n")
		printFeatures(w, cpuid.F1EcxNames, r.ECX)
		fmt.Fprintf(w, "F1Edx.\n")
		printFeatures(w, cpuid.F1EdxNames, r.EDX)
	}

	if r, ok := cpuid.Query(cpuid.LeafPowerParams); ok {
		fmt.Fprintf(w, "F6Eax.\n")
		printFeatures(w, cpuid.F6EaxNames, r.EAX)
		fmt.Fprintf(w, "F6Ecx.\n")
		printFeatures(w, cpuid.F6EcxNames, r.ECX)
	}

	if r, ok := cpuid.Query(cpuid.LeafExtendedFeatureInfo); ok {
		fmt.Fprintf(w, "F7_0Ebx.\n")
		printFeatures(w, cpuid.F7_0EbxNames, r.EBX)
		fmt.Fprintf(w, "F7_0Ecx.\n")
		printFeatures(w, cpuid.F7_0EcxNames, r.ECX)
		fmt.Fprintf(w, "F7_0Edx.\n")
		printFeatures(w, cpuid.F7_0EdxNames, r.EDX)
	}

	if r, ok := cpuid.Query(cpuid.LeafKVMFeatures); ok {
		fmt.Fprintf(w, "F40000001Eax.\n")
		printFeatures(w, cpuid.F40000001EaxNames, r.EAX)
	}

	if r, ok := cpuid.Query(cpuid.LeafExtendedFeatures); ok {
		fmt.Fprintf(w, "F80000001Edx.\n")
		printFeatures(w, cpuid.F80000001EdxNames, r.EDX)
	}
}

func printFeatures[T cpuid.Feature](w io.Writer, names map[T]string, reg uint32) {
	enabled := []string{}
	disabled := []string{}

	for bit := 0; bit < 32; bit++ {
		name, ok := names[T(bit)]
		if !ok {
			continue
		}

		if reg&(1<<uint(bit)) != 0 {
			enabled = append(enabled, name)
		} else {
			disabled = append(disabled, name)
		}
	}

	fmt.Fprintf(w, "* Enabled:")

	for _, name := range enabled {
		fmt.Fprintf(w, " %s", name)
	}

	fmt.Fprintf(w, "\n* Disabled:")

	for _, name := range disabled {
		fmt.Fprintf(w, " %s", name)
	}

	fmt.Fprintf(w, "\n\n")
}
