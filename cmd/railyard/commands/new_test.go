package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/railyard-cli/railyard/config"
)

// setFlag sets a flag on the new command and restores its default and
// Changed state when the test ends, so tests do not leak into each other.
func setFlag(t *testing.T, name, value string) {
	t.Helper()
	require.NoError(t, NewCmd.Flags().Set(name, value))
	t.Cleanup(func() {
		f := NewCmd.Flags().Lookup(name)
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

func TestResolveConfigFlagOverridesEnvironment(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("RAILYARD_PINS_RUBY", "3.2")

	setFlag(t, "ruby-version", "3.4")

	cfg, err := resolveConfig(NewCmd, "blog")
	require.NoError(t, err)

	assert.Equal(t, "3.4", cfg.Pins.Ruby, "an explicit flag wins over the environment")
	assert.Equal(t, config.DefaultRails, cfg.Pins.Rails)
}

func TestResolveConfigEnvironmentOverridesDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("RAILYARD_PINS_POSTGRES", "15")

	cfg, err := resolveConfig(NewCmd, "blog")
	require.NoError(t, err)

	assert.Equal(t, "15", cfg.Pins.Postgres)
	assert.Equal(t, config.DefaultRedis, cfg.Pins.Redis)
}

func TestResolveConfigRejectsBadName(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := resolveConfig(NewCmd, "9lives")
	require.Error(t, err)
}
