// Package flag defines the command line interface.
package flag

// CLI is the top-level command set.
type CLI struct {
	LogLevel string `help:"Log level (trace|debug|info|warn|error)." default:"info"`
	Profile  bool   `help:"Write a CPU profile to the current directory."`

	Identify IdentifyCMD `cmd:"" default:"1" help:"Report the confidential computing platform and curated CPU features."`
	Probe    ProbeCMD    `cmd:"" help:"Print host CPU identification details."`
	Dump     DumpCMD     `cmd:"" help:"Dump the entries of a firmware-provided CPUID page."`
}

// IdentifyCMD reports platform identity and curated features.
type IdentifyCMD struct {
	CPUIDPage string `help:"Path to a firmware-provided CPUID page to install as the verified table." type:"existingfile" optional:""`
}

// ProbeCMD prints the raw host identification report.
type ProbeCMD struct{}

// DumpCMD dumps a CPUID page without installing it.
type DumpCMD struct {
	CPUIDPage string `arg:"" help:"Path to a firmware-provided CPUID page." type:"existingfile"`
}
