// Package invoke shells out to the external scaffolding toolchains: the
// Rails generator inside an ephemeral container, and create-vite plus the
// npm lockfile step for the frontend. It owns the cleanup contract for
// generator failures: a non-zero exit removes the partially generated
// sub-project before the error propagates.
package invoke

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/railyard-cli/railyard/config"
	"github.com/railyard-cli/railyard/errors"
	"github.com/railyard-cli/railyard/logger"
	"github.com/railyard-cli/railyard/sym"
)

// Invoker runs the external generators for one project.
type Invoker struct {
	cfg    *config.GenerationConfig
	dir    string // working directory holding the project root
	runner Runner
	logger *zap.SugaredLogger

	// matchOwnership chowns container-written files back to the invoking
	// user. Host state, threaded in from the prober.
	matchOwnership bool
}

// New creates an Invoker. dir is the directory the project root lives in.
func New(cfg *config.GenerationConfig, dir string, runner Runner, matchOwnership bool) *Invoker {
	return &Invoker{
		cfg:            cfg,
		dir:            dir,
		runner:         runner,
		logger:         logger.WithStage(sym.Run),
		matchOwnership: matchOwnership,
	}
}

// GenerateBackend runs the Rails generator at the pinned versions inside
// an auto-removed container mounting the backend directory. On failure the
// entire backend directory is removed — no partial backend is left for the
// patch phase to build on. On success any repository metadata the external
// tool created is deleted; the repository finalizer owns the one true repo.
func (inv *Invoker) GenerateBackend(ctx context.Context) error {
	backend, err := filepath.Abs(inv.cfg.BackendPath(inv.dir))
	if err != nil {
		return errors.Wrap(err, "resolving backend path")
	}

	image := "ruby:" + inv.cfg.Pins.Ruby
	script := fmt.Sprintf(
		"gem install rails -v '~> %s' && rails new . --api --skip-test --force --skip-git",
		inv.cfg.Pins.Rails)

	inv.logger.Infow(sym.Run+" generating Rails backend",
		logger.FieldImage, image,
		logger.FieldDir, backend)

	err = inv.runner.Run(ctx, inv.dir, "docker", "run", "--rm",
		"--name", containerName(),
		"-v", backend+":/app",
		"-w", "/app",
		image,
		"bash", "-lc", script)
	if err != nil {
		// Remove the whole subdirectory, not just whatever file failed.
		if rmErr := os.RemoveAll(backend); rmErr != nil {
			inv.logger.Errorw("could not remove failed backend output",
				logger.FieldDir, backend, logger.FieldError, rmErr)
		}
		return errors.Wrap(errors.ErrGenerationFailure, "rails generator exited non-zero")
	}

	if inv.matchOwnership {
		if err := inv.chownToHost(ctx, backend, image); err != nil {
			return err
		}
	}

	// The generator is told --skip-git, but older majors ignore it.
	if err := os.RemoveAll(filepath.Join(backend, ".git")); err != nil {
		return errors.Wrap(err, "removing generator git metadata")
	}

	return nil
}

// GenerateFrontend scaffolds the Vite project non-interactively in the
// selected language variant, locks its dependencies, and writes the proxy
// config pointing at the api service. Cleanup mirrors the backend contract.
func (inv *Invoker) GenerateFrontend(ctx context.Context) error {
	if inv.cfg.Frontend == config.FrontendNone {
		return nil
	}

	root := filepath.Join(inv.dir, inv.cfg.Name)
	frontend := inv.cfg.FrontendPath(inv.dir)
	template := inv.cfg.Frontend.String()

	inv.logger.Infow(sym.Run+" generating Vite frontend", "template", template)

	err := inv.runner.Run(ctx, root, "npx", "--yes", "create-vite@latest",
		inv.cfg.FrontendDir, "--template", template)
	if err == nil {
		err = inv.runner.Run(ctx, frontend, "npm", "install", "--package-lock-only")
	}
	if err != nil {
		if rmErr := os.RemoveAll(frontend); rmErr != nil {
			inv.logger.Errorw("could not remove failed frontend output",
				logger.FieldDir, frontend, logger.FieldError, rmErr)
		}
		return errors.Wrap(errors.ErrGenerationFailure, "frontend generator exited non-zero")
	}

	return inv.writeProxyConfig(frontend)
}

// chownToHost resets ownership of container-written files to the invoking
// user, reusing the already-pulled toolchain image.
func (inv *Invoker) chownToHost(ctx context.Context, dir, image string) error {
	owner := fmt.Sprintf("%d:%d", os.Getuid(), os.Getgid())
	err := inv.runner.Run(ctx, inv.dir, "docker", "run", "--rm",
		"-v", dir+":/app",
		image,
		"chown", "-R", owner, "/app")
	if err != nil {
		return errors.Wrap(err, "restoring file ownership")
	}
	return nil
}

// containerName returns a collision-free name for the ephemeral generator
// container, so a crashed previous run never blocks the next one.
func containerName() string {
	return "railyard-rails-" + uuid.NewString()[:8]
}
