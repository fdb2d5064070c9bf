package patch

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/railyard-cli/railyard/config"
	"github.com/railyard-cli/railyard/errors"
	"github.com/railyard-cli/railyard/logger"
	"github.com/railyard-cli/railyard/sym"
)

// Patcher applies the post-generation rewrites for one project. It only
// runs after the backend generator succeeded; each step names itself so a
// failure pinpoints which rewrite broke.
type Patcher struct {
	cfg     *config.GenerationConfig
	backend string // backend sub-project path
	logger  *zap.SugaredLogger
}

// New creates a Patcher rooted at the project directory under dir.
func New(cfg *config.GenerationConfig, dir string) *Patcher {
	return &Patcher{
		cfg:     cfg,
		backend: cfg.BackendPath(dir),
		logger:  logger.WithStage(sym.Patch),
	}
}

// step is one named rewrite.
type step struct {
	name  string
	when  bool
	apply func() error
}

// Apply runs the enabled rewrite steps in order. The first failure aborts;
// run-level cleanup (removing the project tree) belongs to the caller,
// which knows the whole run's state.
func (p *Patcher) Apply() error {
	steps := []step{
		{"database config", true, p.patchDatabase},
		{"cors policy", p.cfg.Frontend != config.FrontendNone, p.patchCORS},
		{"sidekiq wiring", p.cfg.Sidekiq, p.patchSidekiq},
	}

	for _, s := range steps {
		if !s.when {
			continue
		}
		if err := s.apply(); err != nil {
			return errors.NewPatchFailure(s.name, err)
		}
		p.logger.Infow(sym.Patch+" applied rewrite", logger.FieldStep, s.name)
	}
	return nil
}

// rewrite replaces a backend file wholesale. The file must already exist:
// its absence means the generator's output format changed, which is a
// compatibility failure, not something to paper over by creating it.
func (p *Patcher) rewrite(rel, content string) error {
	target := filepath.Join(p.backend, rel)
	if _, err := os.Stat(target); err != nil {
		return errors.Wrapf(err, "expected generator output %s", rel)
	}
	return os.WriteFile(target, []byte(content), 0o644)
}

// create writes a new backend file that the generator does not produce.
func (p *Patcher) create(rel, content string) error {
	target := filepath.Join(p.backend, rel)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	return os.WriteFile(target, []byte(content), 0o644)
}

// edit loads a backend file, transforms it, and writes it back.
func (p *Patcher) edit(rel string, transform func(string) (string, error)) error {
	target := filepath.Join(p.backend, rel)
	raw, err := os.ReadFile(target)
	if err != nil {
		return errors.Wrapf(err, "expected generator output %s", rel)
	}
	out, err := transform(string(raw))
	if err != nil {
		return errors.Wrapf(err, "patching %s", rel)
	}
	return os.WriteFile(target, []byte(out), 0o644)
}
