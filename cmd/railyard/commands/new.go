package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/railyard-cli/railyard/compose"
	"github.com/railyard-cli/railyard/config"
	"github.com/railyard-cli/railyard/gitrepo"
	"github.com/railyard-cli/railyard/invoke"
	"github.com/railyard-cli/railyard/logger"
	"github.com/railyard-cli/railyard/patch"
	"github.com/railyard-cli/railyard/probe"
	"github.com/railyard-cli/railyard/sym"
)

// NewCmd generates a new project skeleton in the current directory.
var NewCmd = &cobra.Command{
	Use:   "new <name>",
	Short: sym.Compose + " Generate a new project",
	Long: `Generate a new multi-service Rails project in the current directory.

The project is created under ./<name> with a dockerized Rails API backend,
a PostgreSQL service, an optional React frontend (--typescript or
--javascript), and an optional Sidekiq worker (--sidekiq). The result is a
fresh git repository with one baseline commit, ready for 'make up'.`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

var (
	rubyVersionFlag     string
	railsVersionFlag    string
	nodeVersionFlag     string
	postgresVersionFlag string
	redisVersionFlag    string
	typescriptFlag      bool
	javascriptFlag      bool
	sidekiqFlag         bool
)

func init() {
	NewCmd.Flags().StringVar(&rubyVersionFlag, "ruby-version", config.DefaultRuby, "Ruby image tag for the backend")
	NewCmd.Flags().StringVar(&railsVersionFlag, "rails-version", config.DefaultRails, "Rails gem version constraint")
	NewCmd.Flags().StringVar(&nodeVersionFlag, "node-version", config.DefaultNode, "Node image tag for the frontend dev server")
	NewCmd.Flags().StringVar(&postgresVersionFlag, "postgres-version", config.DefaultPostgres, "PostgreSQL image tag")
	NewCmd.Flags().StringVar(&redisVersionFlag, "redis-version", config.DefaultRedis, "Redis image tag")
	NewCmd.Flags().BoolVar(&typescriptFlag, "typescript", false, "Add a React frontend in TypeScript")
	NewCmd.Flags().BoolVar(&javascriptFlag, "javascript", false, "Add a React frontend in JavaScript")
	NewCmd.Flags().BoolVar(&sidekiqFlag, "sidekiq", false, "Add a Sidekiq worker and Redis")
}

func runNew(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	verbosity, _ := cmd.Root().PersistentFlags().GetCount("verbose")
	log := logger.WithStage(sym.Config)

	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	log.Infow("configuration resolved",
		logger.FieldProject, cfg.Name,
		"features", cfg.FeatureSummary())

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	if err := cfg.CheckTarget(cwd); err != nil {
		return err
	}

	prober := probe.New(logger.WithStage(sym.Probe))
	if err := prober.CheckPlatform(); err != nil {
		return err
	}
	if err := prober.CheckDocker(ctx); err != nil {
		return err
	}
	if cfg.Frontend != config.FrontendNone {
		if err := prober.CheckNode(ctx); err != nil {
			return err
		}
	}

	pterm.Info.Printf("Generating %s (%s)\n", cfg.Name, cfg.FeatureSummary())

	artifacts := compose.Compose(cfg)
	if err := compose.WriteTree(cfg, cwd, artifacts); err != nil {
		return err
	}

	// Everything past this point owns a partially built tree. Any failure
	// removes the whole project directory so reruns start clean.
	root := filepath.Join(cwd, cfg.Name)
	fail := func(stage string, err error) error {
		logger.Errorw("generation failed, removing project directory",
			logger.FieldStep, stage,
			logger.FieldPath, root,
			logger.FieldError, err)
		if rmErr := os.RemoveAll(root); rmErr != nil {
			logger.Warnw("cleanup incomplete", logger.FieldPath, root, logger.FieldError, rmErr)
		}
		return err
	}

	runner := invoke.NewRunner(logger.WithStage(sym.Run), verbosity)
	inv := invoke.New(cfg, cwd, runner, prober.MatchHostOwnership())

	if err := withSpinner(verbosity, "Running the Rails generator (docker)", func() error {
		return inv.GenerateBackend(ctx)
	}); err != nil {
		return fail("backend generation", err)
	}
	if cfg.Frontend != config.FrontendNone {
		if err := withSpinner(verbosity, "Running create-vite (npx)", func() error {
			return inv.GenerateFrontend(ctx)
		}); err != nil {
			return fail("frontend generation", err)
		}
	}
	if err := patch.New(cfg, cwd).Apply(); err != nil {
		return fail("config patching", err)
	}

	message := fmt.Sprintf("Initial commit: %s (%s)", cfg.Name, cfg.FeatureSummary())
	hash, err := gitrepo.Finalize(root, message)
	if err != nil {
		return fail("git finalize", err)
	}
	logger.WithStage(sym.Git).Infow("baseline commit created", "hash", hash)

	pterm.Success.Printf("Generated %s (%s)\n", cfg.Name, cfg.FeatureSummary())
	pterm.Info.Printf("Next: cd %s && make up\n", cfg.Name)
	return nil
}

// withSpinner runs fn behind a spinner at default verbosity. With -v or
// above the log stream is the progress indicator and a spinner would
// mangle it.
func withSpinner(verbosity int, text string, fn func() error) error {
	if verbosity > 0 {
		return fn()
	}
	spinner, err := pterm.DefaultSpinner.Start(text)
	if err != nil {
		return fn()
	}
	if err := fn(); err != nil {
		spinner.Fail(text)
		return err
	}
	spinner.Success(text)
	return nil
}

// resolveConfig merges the pin sources and validates the run options.
// Flags the user set explicitly win over config file and environment pins;
// unset flags inherit the loaded value.
func resolveConfig(cmd *cobra.Command, name string) (*config.GenerationConfig, error) {
	pins, err := config.LoadPins()
	if err != nil {
		logger.Warnw("pin config unreadable, using defaults", logger.FieldError, err)
		pins = config.Pins{
			Ruby:     config.DefaultRuby,
			Rails:    config.DefaultRails,
			Node:     config.DefaultNode,
			Postgres: config.DefaultPostgres,
			Redis:    config.DefaultRedis,
		}
	}

	if cmd.Flags().Changed("ruby-version") {
		pins.Ruby = rubyVersionFlag
	}
	if cmd.Flags().Changed("rails-version") {
		pins.Rails = railsVersionFlag
	}
	if cmd.Flags().Changed("node-version") {
		pins.Node = nodeVersionFlag
	}
	if cmd.Flags().Changed("postgres-version") {
		pins.Postgres = postgresVersionFlag
	}
	if cmd.Flags().Changed("redis-version") {
		pins.Redis = redisVersionFlag
	}

	return config.Resolve(config.Options{
		Name:       name,
		Pins:       pins,
		TypeScript: typescriptFlag,
		JavaScript: javascriptFlag,
		Sidekiq:    sidekiqFlag,
	})
}
