package main

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/railyard-cli/railyard/cmd/railyard/commands"
	"github.com/railyard-cli/railyard/errors"
	"github.com/railyard-cli/railyard/logger"
)

var rootCmd = &cobra.Command{
	Use:   "railyard",
	Short: "railyard - Rails project scaffolding on Docker Compose",
	Long: `railyard - Generate a ready-to-run multi-service Rails skeleton.

One pass produces an API backend, an optional React frontend, an optional
Sidekiq worker, the Docker Compose topology wiring them together, a
Makefile, and a fresh git repository with one baseline commit.

Available commands:
  new     - Generate a new project
  doctor  - Check the host environment
  version - Show build information

Examples:
  railyard new blog                          # API + PostgreSQL
  railyard new shop --typescript --sidekiq   # + React + background jobs
  railyard doctor                            # verify docker and npx`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Root().PersistentFlags().GetCount("verbose")
		return logger.Initialize(verbosity)
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")

	rootCmd.AddCommand(commands.NewCmd)
	rootCmd.AddCommand(commands.DoctorCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err.Error())
		if hints := errors.FlattenHints(err); hints != "" {
			pterm.Info.Println(hints)
		}
		if errors.IsInvalidArgument(err) {
			pterm.Info.Println("Run 'railyard new --help' for usage.")
		}
		os.Exit(1)
	}
}
