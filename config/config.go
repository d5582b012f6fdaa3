// Package config holds run configuration for the shutbox binaries. Values
// come from flags, falling back to SHUTBOX_-prefixed environment variables,
// then defaults.
package config

import (
	"encoding/base64"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	v *viper.Viper
}

func New() *Config {
	v := viper.New()
	v.SetDefault("threads", runtime.NumCPU())
	v.SetDefault("games-per-thread", 100000)
	v.SetDefault("output", "best_moves.yml")
	v.SetDefault("seed", "")
	v.SetDefault("debug", false)

	v.SetEnvPrefix("shutbox")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// Load parses command-line args into the config.
func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("shutbox", pflag.ContinueOnError)
	fs.Int("threads", c.v.GetInt("threads"), "number of simulation workers")
	fs.Int("games-per-thread", c.v.GetInt("games-per-thread"), "paired matches each worker plays")
	fs.String("output", c.v.GetString("output"), "path of the best-move table to write")
	fs.String("seed", "", "base64 (raw URL-safe) 32-byte master seed for a reproducible run")
	fs.Bool("debug", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return err
	}
	return c.v.BindPFlags(fs)
}

// Threads returns the worker count, clamped to at least one.
func (c *Config) Threads() int {
	return max(1, c.v.GetInt("threads"))
}

func (c *Config) GamesPerThread() int {
	return c.v.GetInt("games-per-thread")
}

func (c *Config) OutputPath() string {
	return c.v.GetString("output")
}

func (c *Config) Debug() bool {
	return c.v.GetBool("debug")
}

// Seed decodes the optional master seed. The second return is false when
// no seed was configured.
func (c *Config) Seed() ([32]byte, bool, error) {
	var seed [32]byte
	encoded := c.v.GetString("seed")
	if encoded == "" {
		return seed, false, nil
	}
	decoded, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return seed, false, fmt.Errorf("failed to decode seed: %w", err)
	}
	if len(decoded) != 32 {
		return seed, false, fmt.Errorf("invalid seed length: got %d bytes, expected 32", len(decoded))
	}
	copy(seed[:], decoded)
	return seed, true, nil
}
