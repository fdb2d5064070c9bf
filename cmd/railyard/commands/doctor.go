package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/railyard-cli/railyard/errors"
	"github.com/railyard-cli/railyard/logger"
	"github.com/railyard-cli/railyard/probe"
	"github.com/railyard-cli/railyard/sym"
)

// DoctorCmd checks the host environment without generating anything.
var DoctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: sym.Probe + " Check the host environment",
	Long: `Check that the host can run a generation: supported platform, a
reachable docker daemon, and npx for frontend projects. All checks run
even if earlier ones fail, so one pass reports everything to fix.`,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	prober := probe.New(logger.WithStage(sym.Probe))

	if facts, err := probe.DescribeHost(); err == nil {
		pterm.Info.Println(facts.String())
	} else {
		logger.Debugw("host facts unavailable", logger.FieldError, err)
	}

	failed := 0
	report := func(name string, err error) {
		if err != nil {
			failed++
			pterm.Error.Printf("%s: %s\n", name, err.Error())
			if hints := errors.FlattenHints(err); hints != "" {
				pterm.Info.Println("  " + hints)
			}
			return
		}
		pterm.Success.Println(name)
	}

	report("platform", prober.CheckPlatform())
	report("docker", prober.CheckDocker(ctx))
	report("node (npx)", prober.CheckNode(ctx))

	if failed > 0 {
		return errors.Wrapf(errors.ErrEnvironmentUnavailable, "%d check(s) failed", failed)
	}
	pterm.Success.Println("Host is ready to generate projects.")
	return nil
}
