// Package config resolves Railyard's command-line arguments and version
// pins into an immutable GenerationConfig. Every other stage reads from
// the resolved config and never mutates it.
package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/railyard-cli/railyard/errors"
)

// namePattern is the accepted shape for project names. The name is used
// verbatim in directory names, database identifiers (after snake-casing),
// and the baseline commit message.
var namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// FrontendVariant selects the frontend sub-project language, if any.
type FrontendVariant int

const (
	FrontendNone FrontendVariant = iota
	FrontendTypeScript
	FrontendJavaScript
)

// String returns the create-vite template name for the variant.
func (v FrontendVariant) String() string {
	switch v {
	case FrontendTypeScript:
		return "react-ts"
	case FrontendJavaScript:
		return "react"
	default:
		return "none"
	}
}

// Pins are the external toolchain version strings. They are free-form and
// trusted verbatim; no semantic validation is performed on them.
type Pins struct {
	Ruby     string `mapstructure:"ruby"`
	Rails    string `mapstructure:"rails"`
	Node     string `mapstructure:"node"`
	Postgres string `mapstructure:"postgres"`
	Redis    string `mapstructure:"redis"`
}

// Options are the raw inputs collected from the command line before
// resolution. TypeScript and JavaScript are tracked separately so their
// mutual exclusion can be reported as the user's mistake, not silently
// preferenced.
type Options struct {
	Name       string
	Pins       Pins
	TypeScript bool
	JavaScript bool
	Sidekiq    bool
}

// GenerationConfig is the resolved, immutable configuration for one
// generation run. Constructed once by Resolve; passed by read-only
// reference everywhere after.
type GenerationConfig struct {
	// Name is the validated project name, used as the root directory.
	Name string
	// SnakeName is Name lowercased with hyphens folded to underscores;
	// it keys the generated database identifiers.
	SnakeName string

	// Sub-project directory names, relative to the project root.
	BackendDir  string
	FrontendDir string

	Pins Pins

	Frontend FrontendVariant
	Sidekiq  bool
}

// Resolve validates raw options and constructs the GenerationConfig.
// All rejections wrap ErrInvalidArgument and happen before any side effect.
func Resolve(opts Options) (*GenerationConfig, error) {
	if err := ValidateName(opts.Name); err != nil {
		return nil, err
	}
	if opts.TypeScript && opts.JavaScript {
		return nil, errors.NewInvalidArgument("--typescript and --javascript are mutually exclusive")
	}

	frontend := FrontendNone
	if opts.TypeScript {
		frontend = FrontendTypeScript
	} else if opts.JavaScript {
		frontend = FrontendJavaScript
	}

	return &GenerationConfig{
		Name:        opts.Name,
		SnakeName:   SnakeCase(opts.Name),
		BackendDir:  "backend",
		FrontendDir: "frontend",
		Pins:        opts.Pins,
		Frontend:    frontend,
		Sidekiq:     opts.Sidekiq,
	}, nil
}

// ValidateName rejects names that would produce broken identifiers
// downstream: empty, leading digit or hyphen, spaces, slashes.
func ValidateName(name string) error {
	if name == "" {
		return errors.NewInvalidArgument("project name is required")
	}
	if !namePattern.MatchString(name) {
		return errors.WithHint(
			errors.NewInvalidArgument("invalid project name %q", name),
			"names must start with a letter and contain only letters, digits, hyphens, and underscores")
	}
	return nil
}

// SnakeCase derives the database-identifier form of a name:
// lowercased, hyphens folded to underscores.
func SnakeCase(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "-", "_"))
}

// CheckTarget fails with ErrTargetExists if anything already occupies the
// project path under dir. Called before any file is written so the
// exists-path has zero side effects.
func (c *GenerationConfig) CheckTarget(dir string) error {
	target := filepath.Join(dir, c.Name)
	if _, err := os.Stat(target); err == nil {
		return errors.WithHint(
			errors.Wrapf(errors.ErrTargetExists, "%s", target),
			"pick a different name or remove the existing directory")
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(err, "checking target %s", target)
	}
	return nil
}

// BackendPath returns the backend sub-project path under dir.
func (c *GenerationConfig) BackendPath(dir string) string {
	return filepath.Join(dir, c.Name, c.BackendDir)
}

// FrontendPath returns the frontend sub-project path under dir.
func (c *GenerationConfig) FrontendPath(dir string) string {
	return filepath.Join(dir, c.Name, c.FrontendDir)
}

// FeatureSummary describes the selected stack for the baseline commit
// message. Only features actually generated appear; a failed run never
// reaches the commit.
func (c *GenerationConfig) FeatureSummary() string {
	var b strings.Builder
	b.WriteString("Rails API + PostgreSQL")
	if c.Frontend != FrontendNone {
		b.WriteString(" + React")
	}
	if c.Sidekiq {
		b.WriteString(" + Sidekiq")
	}
	return b.String()
}
