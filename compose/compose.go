package compose

import (
	"os"
	"path/filepath"

	"github.com/railyard-cli/railyard/config"
	"github.com/railyard-cli/railyard/errors"
	"github.com/railyard-cli/railyard/logger"
	"github.com/railyard-cli/railyard/sym"
)

// Artifact is one generated output file: a path relative to the project
// root and its full content.
type Artifact struct {
	Path    string
	Content string
}

// Compose renders every artifact for the given config, in file-creation
// order. Pure: the same config always yields byte-identical artifacts.
func Compose(cfg *config.GenerationConfig) []Artifact {
	ctx := &composeContext{
		cfg: configView{
			Name:        cfg.Name,
			SnakeName:   cfg.SnakeName,
			BackendDir:  cfg.BackendDir,
			FrontendDir: cfg.FrontendDir,
			RubyPin:     cfg.Pins.Ruby,
			NodePin:     cfg.Pins.Node,
			HasFrontend: cfg.Frontend != config.FrontendNone,
			HasSidekiq:  cfg.Sidekiq,
		},
		topology: BuildTopology(cfg),
	}

	return []Artifact{
		{Path: "docker-compose.yml", Content: renderManifest(ctx.topology)},
		{Path: "Makefile", Content: renderFragments(ctx, makefileFragments)},
		{Path: "README.md", Content: renderFragments(ctx, readmeFragments)},
		{Path: ".gitignore", Content: renderFragments(ctx, gitignoreFragments)},
		{Path: filepath.Join(cfg.BackendDir, "Dockerfile"), Content: renderFragments(ctx, backendDockerfileFragments)},
	}
}

// WriteTree creates the project directory tree under dir and writes each
// artifact exactly once. The backend directory must exist before the
// external generator mounts it, so directories are created here even when
// an artifact doesn't land in them yet.
func WriteTree(cfg *config.GenerationConfig, dir string, artifacts []Artifact) error {
	log := logger.WithStage(sym.Compose)
	root := filepath.Join(dir, cfg.Name)

	if err := os.MkdirAll(filepath.Join(root, cfg.BackendDir), 0o755); err != nil {
		return errors.Wrap(err, "creating project tree")
	}

	for _, a := range artifacts {
		target := filepath.Join(root, a.Path)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return errors.Wrapf(err, "creating directory for %s", a.Path)
		}
		if err := os.WriteFile(target, []byte(a.Content), 0o644); err != nil {
			return errors.Wrapf(err, "writing %s", a.Path)
		}
		log.Infow(sym.Compose+" wrote artifact", logger.FieldArtifact, a.Path)
	}
	return nil
}
