package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/railyard-cli/railyard/errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	accepted := []string{
		"blog", "Shop", "my-app", "my_app", "a", "A1", "app-2-go", "x_Y-z9",
	}
	for _, name := range accepted {
		assert.NoError(t, ValidateName(name), "expected %q to be accepted", name)
	}

	rejected := []string{
		"", "1blog", "-blog", "_blog", "my app", "my/app", "my.app",
		"app!", "café", "a b", "9", "-",
	}
	for _, name := range rejected {
		err := ValidateName(name)
		require.Error(t, err, "expected %q to be rejected", name)
		assert.True(t, errors.IsInvalidArgument(err), "rejection for %q must be InvalidArgument", name)
	}
}

func TestSnakeCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"blog", "blog"},
		{"My-Blog", "my_blog"},
		{"shop", "shop"},
		{"a-b-c", "a_b_c"},
		{"Already_snake", "already_snake"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SnakeCase(tt.in))
	}
}

func TestResolveDefaults(t *testing.T) {
	cfg, err := Resolve(Options{Name: "blog", Pins: Pins{Ruby: "3.3", Rails: "7.1", Node: "20", Postgres: "16", Redis: "7"}})
	require.NoError(t, err)

	assert.Equal(t, "blog", cfg.Name)
	assert.Equal(t, "blog", cfg.SnakeName)
	assert.Equal(t, "backend", cfg.BackendDir)
	assert.Equal(t, "frontend", cfg.FrontendDir)
	assert.Equal(t, FrontendNone, cfg.Frontend)
	assert.False(t, cfg.Sidekiq)
	assert.Equal(t, "Rails API + PostgreSQL", cfg.FeatureSummary())
}

func TestResolveFrontendVariants(t *testing.T) {
	ts, err := Resolve(Options{Name: "shop", TypeScript: true})
	require.NoError(t, err)
	assert.Equal(t, FrontendTypeScript, ts.Frontend)
	assert.Equal(t, "react-ts", ts.Frontend.String())

	js, err := Resolve(Options{Name: "shop", JavaScript: true})
	require.NoError(t, err)
	assert.Equal(t, FrontendJavaScript, js.Frontend)
	assert.Equal(t, "react", js.Frontend.String())
}

func TestResolveMutuallyExclusiveFrontendFlags(t *testing.T) {
	_, err := Resolve(Options{Name: "shop", TypeScript: true, JavaScript: true})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestFeatureSummaryAllSelected(t *testing.T) {
	cfg, err := Resolve(Options{Name: "shop", TypeScript: true, Sidekiq: true})
	require.NoError(t, err)
	assert.Equal(t, "Rails API + PostgreSQL + React + Sidekiq", cfg.FeatureSummary())
}

func TestCheckTarget(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Resolve(Options{Name: "blog"})
	require.NoError(t, err)

	// Nothing there yet
	require.NoError(t, cfg.CheckTarget(dir))

	// Existing directory conflicts
	require.NoError(t, os.Mkdir(filepath.Join(dir, "blog"), 0o755))
	err = cfg.CheckTarget(dir)
	require.Error(t, err)
	assert.True(t, errors.IsTargetExists(err))

	// The check itself must not create anything
	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Len(t, entries, 1)
}

func TestCheckTargetConflictsWithFile(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Resolve(Options{Name: "blog"})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "blog"), []byte("x"), 0o644))
	assert.True(t, errors.IsTargetExists(cfg.CheckTarget(dir)))
}

func TestSetDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	assert.Equal(t, DefaultRuby, v.GetString("pins.ruby"))
	assert.Equal(t, DefaultRails, v.GetString("pins.rails"))
	assert.Equal(t, DefaultNode, v.GetString("pins.node"))
	assert.Equal(t, DefaultPostgres, v.GetString("pins.postgres"))
	assert.Equal(t, DefaultRedis, v.GetString("pins.redis"))
}

func TestPinsAcceptFreeFormStrings(t *testing.T) {
	// Pins are trusted verbatim; nothing rejects odd version strings.
	cfg, err := Resolve(Options{Name: "blog", Pins: Pins{Ruby: "latest", Rails: "edge", Node: "lts/*", Postgres: "16.2-alpine", Redis: "anything"}})
	require.NoError(t, err)
	assert.Equal(t, "lts/*", cfg.Pins.Node)
}
