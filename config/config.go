package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/byrax15/snake-gl/parameter"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Config is the runtime configuration loaded from TOML and overridden by flags
type Config struct {
	GridDim      int     `toml:"grid_dim"`
	TickRate     int     `toml:"tick_rate"` // Ticks per second
	Apples       int     `toml:"apples"`
	Seed         uint64  `toml:"seed"` // 0 = time-based
	ColorJitter  float64 `toml:"color_jitter"`
	Audio        bool    `toml:"audio"`
	SpectateAddr string  `toml:"spectate_addr"` // Empty disables the spectator feed

	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"` // text | json
	LogFile   string `toml:"log_file"`   // Empty discards logs
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		GridDim:     parameter.DefaultGridDim,
		TickRate:    parameter.DefaultTickRate,
		Apples:      parameter.DefaultAppleCount,
		ColorJitter: parameter.DefaultColorJitter,
		Audio:       true,
		LogLevel:    "info",
		LogFormat:   "text",
		LogFile:     "logs/snake-gl.log",
	}
}

// TickInterval is the scheduler period for TickRate
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// Load reads path over the defaults, a missing file yields the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, "decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.Wrapf(ErrInvalid, "unknown key %q in %s", undecoded[0].String(), path)
	}

	return cfg, cfg.Validate()
}

// Decode parses TOML text over the defaults
func Decode(data string) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "decode config")
	}
	return cfg, cfg.Validate()
}

// Validate rejects values the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.GridDim <= 0 || c.GridDim%2 != 0:
		return errors.Wrapf(ErrInvalid, "grid_dim must be positive and even, got %d", c.GridDim)
	case c.TickRate <= 0:
		return errors.Wrapf(ErrInvalid, "tick_rate must be positive, got %d", c.TickRate)
	case c.Apples < 1:
		return errors.Wrapf(ErrInvalid, "apples must be at least 1, got %d", c.Apples)
	case c.ColorJitter < 0 || c.ColorJitter >= 1:
		return errors.Wrapf(ErrInvalid, "color_jitter must be in [0, 1), got %g", c.ColorJitter)
	case c.LogFormat != "text" && c.LogFormat != "json":
		return errors.Wrapf(ErrInvalid, "log_format must be text or json, got %q", c.LogFormat)
	}
	return nil
}
