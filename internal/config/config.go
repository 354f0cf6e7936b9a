package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the startup options for pomo.
type Config struct {
	LogFile    string
	AltScreen  bool
	RingRadius int
	ShowHelp   bool
}

const (
	defaultConfigPath = "~/.config/pomo/config.toml"
	defaultRingRadius = 8

	// MinRingRadius and MaxRingRadius bound the progress ring size in rows.
	MinRingRadius = 6
	MaxRingRadius = 12
)

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		AltScreen:  true,
		RingRadius: defaultRingRadius,
		ShowHelp:   true,
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		LogFile    string `toml:"log_file"`
		AltScreen  *bool  `toml:"alt_screen"`
		RingRadius int    `toml:"ring_radius"`
		ShowHelp   *bool  `toml:"show_help"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if raw.AltScreen != nil {
		cfg.AltScreen = *raw.AltScreen
	}
	if raw.ShowHelp != nil {
		cfg.ShowHelp = *raw.ShowHelp
	}
	if raw.RingRadius != 0 {
		cfg.RingRadius = ClampRingRadius(raw.RingRadius)
	}

	return cfg, nil
}

// ClampRingRadius keeps a ring radius within the drawable range.
func ClampRingRadius(radius int) int {
	if radius < MinRingRadius {
		return MinRingRadius
	}
	if radius > MaxRingRadius {
		return MaxRingRadius
	}
	return radius
}

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
