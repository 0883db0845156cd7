package main

import (
	"flag"
	"io"

	"github.com/byrax15/snake-gl/config"
)

// options holds command-line values, applied over the config file only when set
type options struct {
	configPath string

	dim      int
	tickRate int
	apples   int
	seed     uint64
	audio    bool
	spectate string
	logLevel string
	logFile  string
}

// parseFlags loads the config file named by -config and applies explicitly set flags over it
func parseFlags(args []string, stderr io.Writer) (config.Config, error) {
	fs := flag.NewFlagSet("snake-gl", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var o options
	fs.StringVar(&o.configPath, "config", "snake-gl.toml", "TOML configuration file")
	fs.IntVar(&o.dim, "dim", 0, "Grid side length, positive and even")
	fs.IntVar(&o.tickRate, "tick-rate", 0, "Simulation steps per second")
	fs.IntVar(&o.apples, "apples", 0, "Number of apples on the field")
	fs.Uint64Var(&o.seed, "seed", 0, "Random seed, 0 = time-based")
	fs.BoolVar(&o.audio, "audio", true, "Play sound cues")
	fs.StringVar(&o.spectate, "spectate", "", "Spectator websocket address, e.g. :8080")
	fs.StringVar(&o.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&o.logFile, "log-file", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dim":
			cfg.GridDim = o.dim
		case "tick-rate":
			cfg.TickRate = o.tickRate
		case "apples":
			cfg.Apples = o.apples
		case "seed":
			cfg.Seed = o.seed
		case "audio":
			cfg.Audio = o.audio
		case "spectate":
			cfg.SpectateAddr = o.spectate
		case "log-level":
			cfg.LogLevel = o.logLevel
		case "log-file":
			cfg.LogFile = o.logFile
		}
	})

	return cfg, cfg.Validate()
}
