// Package probe verifies the host environment before any output is
// written: platform support, Docker daemon reachability, and the frontend
// toolchain launcher when a frontend is requested.
package probe

import (
	"context"
	"os/exec"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.uber.org/zap"

	"github.com/railyard-cli/railyard/errors"
)

// Platform is the detected host platform class.
type Platform int

const (
	PlatformUnknown Platform = iota
	PlatformLinux
	PlatformMacOS
	PlatformWindows
)

func (p Platform) String() string {
	switch p {
	case PlatformLinux:
		return "linux"
	case PlatformMacOS:
		return "macos"
	case PlatformWindows:
		return "windows"
	default:
		return "unknown"
	}
}

// minDockerServer is the oldest Docker server version the generated
// compose file is known to work with. Older servers get a warning, not a
// failure: the pin strings themselves are never validated.
var minDockerServer = semver.MustParse("20.10.0")

// Prober checks the host environment. The exec seams are injectable so
// tests can simulate missing binaries and dead daemons.
type Prober struct {
	logger *zap.SugaredLogger

	goos      string
	lookPath  func(file string) (string, error)
	runOutput func(ctx context.Context, name string, args ...string) (string, error)
}

// New creates a Prober bound to the real host.
func New(logger *zap.SugaredLogger) *Prober {
	return &Prober{
		logger:   logger,
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		runOutput: func(ctx context.Context, name string, args ...string) (string, error) {
			out, err := exec.CommandContext(ctx, name, args...).Output()
			return strings.TrimSpace(string(out)), err
		},
	}
}

// DetectPlatform classifies the host OS.
func (p *Prober) DetectPlatform() Platform {
	switch p.goos {
	case "linux":
		return PlatformLinux
	case "darwin":
		return PlatformMacOS
	case "windows":
		return PlatformWindows
	default:
		return PlatformUnknown
	}
}

// CheckPlatform fails for native Windows, which the container tooling
// invocations here do not support.
func (p *Prober) CheckPlatform() error {
	if p.DetectPlatform() == PlatformWindows {
		return errors.WithHint(
			errors.Wrap(errors.ErrEnvironmentUnavailable, "native Windows is not supported"),
			"run railyard inside WSL2 (https://learn.microsoft.com/windows/wsl/)")
	}
	return nil
}

// MatchHostOwnership reports whether generated files should be chowned to
// the invoking user after container runs. True on linux and macos. This is
// host state, not project configuration, so it never enters
// GenerationConfig; the caller threads it to the invoker.
func (p *Prober) MatchHostOwnership() bool {
	plat := p.DetectPlatform()
	return plat == PlatformLinux || plat == PlatformMacOS
}

// CheckDocker verifies the docker binary is installed and its daemon is
// reachable, and warns when the server is older than minDockerServer.
func (p *Prober) CheckDocker(ctx context.Context) error {
	if _, err := p.lookPath("docker"); err != nil {
		return errors.WithHint(
			errors.Wrap(errors.ErrEnvironmentUnavailable, "docker is not installed"),
			"install Docker from https://docs.docker.com/get-docker/")
	}

	// `docker version` with a server template fails unless the daemon answers.
	out, err := p.runOutput(ctx, "docker", "version", "--format", "{{.Server.Version}}")
	if err != nil {
		return errors.WithHint(
			errors.Wrap(errors.ErrEnvironmentUnavailable, "docker daemon is not reachable"),
			"start the Docker daemon and retry")
	}

	if v, perr := semver.NewVersion(out); perr == nil {
		if v.LessThan(minDockerServer) {
			p.logger.Warnw("docker server older than recommended",
				"server_version", out, "recommended", minDockerServer.String())
		}
	} else {
		p.logger.Debugw("could not parse docker server version", "output", out)
	}

	p.logger.Debugw("docker daemon reachable", "server_version", out)
	return nil
}

// CheckNode verifies the frontend scaffolding launcher (npx) is present.
// Called only when a frontend variant was requested, before any output
// directory exists.
func (p *Prober) CheckNode(ctx context.Context) error {
	if _, err := p.lookPath("npx"); err != nil {
		return errors.WithHint(
			errors.Wrap(errors.ErrEnvironmentUnavailable, "npx is not installed"),
			"install Node.js (which bundles npx) from https://nodejs.org/")
	}
	return nil
}
