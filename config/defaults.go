package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Built-in toolchain pin defaults. Overridable per run by flags, per
// machine by ~/.railyard/config.toml, per environment by RAILYARD_* vars.
const (
	DefaultRuby     = "3.3"
	DefaultRails    = "7.1"
	DefaultNode     = "20"
	DefaultPostgres = "16"
	DefaultRedis    = "7"
)

// SetDefaults configures default values for all pin options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("pins.ruby", DefaultRuby)
	v.SetDefault("pins.rails", DefaultRails)
	v.SetDefault("pins.node", DefaultNode)
	v.SetDefault("pins.postgres", DefaultPostgres)
	v.SetDefault("pins.redis", DefaultRedis)
}

// LoadPins resolves the effective version pins from defaults, the optional
// machine config file, and RAILYARD_* environment variables. Flags are
// layered on top by the command, which uses these values as flag defaults.
func LoadPins() (Pins, error) {
	v := viper.New()

	v.SetEnvPrefix("RAILYARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if home, err := os.UserHomeDir(); err == nil {
		v.SetConfigFile(filepath.Join(home, ".railyard", "config.toml"))
		v.SetConfigType("toml")
		// Missing machine config is the common case, not an error.
		if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Pins{}, err
			}
		}
	}

	// Read keys individually: Get honors AutomaticEnv, UnmarshalKey does not.
	return Pins{
		Ruby:     v.GetString("pins.ruby"),
		Rails:    v.GetString("pins.rails"),
		Node:     v.GetString("pins.node"),
		Postgres: v.GetString("pins.postgres"),
		Redis:    v.GetString("pins.redis"),
	}, nil
}
