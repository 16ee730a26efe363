package flag

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"

	"github.com/cvmcore/guestid/cpuid"
	"github.com/cvmcore/guestid/platform"
	"github.com/cvmcore/guestid/probe"
)

// Parse parses the command line and runs the selected command.
func Parse() error {
	c := CLI{}

	programName := "guestid"
	programDesc := "guestid reports which confidential computing platform a guest runs on " +
		"and which CPU capabilities it may rely on"

	ctx := kong.Parse(&c,
		kong.Name(programName),
		kong.Description(programDesc),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}

	logrus.SetLevel(level)

	if c.Profile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	return ctx.Run()
}

func (cmd *IdentifyCMD) Run() error {
	if cmd.CPUIDPage != "" {
		table, unmap, err := cpuid.MapPageFile(cmd.CPUIDPage)
		if err != nil {
			return err
		}
		defer unmap() //nolint:errcheck

		// A failed install means the boot sequencing is broken; give up
		// rather than continue with ambiguous trust state.
		if err := cpuid.InstallTable(table); err != nil {
			return err
		}
	}

	fmt.Printf("platform: %s\n", platform.Identify())
	fmt.Printf("pge: %t\n", platform.HasFeature(platform.FeaturePGE))
	fmt.Printf("nx: %t\n", platform.HasFeature(platform.FeatureNX))

	return nil
}

func (cmd *ProbeCMD) Run() error {
	probe.Run(os.Stdout)

	return nil
}

func (cmd *DumpCMD) Run() error {
	table, unmap, err := cpuid.MapPageFile(cmd.CPUIDPage)
	if err != nil {
		return err
	}
	defer unmap() //nolint:errcheck

	table.Dump(os.Stdout)

	return nil
}
