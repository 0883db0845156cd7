package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/byrax15/snake-gl/config"
)

func TestParseFlags_DefaultsWithoutFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none.toml")
	cfg, err := parseFlags([]string{"-config", missing}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags failed: %v", err)
	}
	if cfg != config.Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestParseFlags_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.toml")
	if err := os.WriteFile(path, []byte("grid_dim = 16\napples = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := parseFlags([]string{"-config", path, "-apples", "4", "-audio=false", "-spectate", ":9000"}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags failed: %v", err)
	}
	if cfg.GridDim != 16 {
		t.Errorf("Expected grid_dim from file 16, got %d", cfg.GridDim)
	}
	if cfg.Apples != 4 {
		t.Errorf("Expected apples from flag 4, got %d", cfg.Apples)
	}
	if cfg.Audio {
		t.Error("Expected audio disabled by flag")
	}
	if cfg.SpectateAddr != ":9000" {
		t.Errorf("Expected spectate :9000, got %q", cfg.SpectateAddr)
	}
}

func TestParseFlags_OddDimIsInvalid(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none.toml")
	_, err := parseFlags([]string{"-config", missing, "-dim", "25"}, io.Discard)
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Expected ErrInvalid, got %v", err)
	}
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	if _, err := parseFlags([]string{"-bogus"}, io.Discard); err == nil {
		t.Error("Expected error for unknown flag")
	}
}
