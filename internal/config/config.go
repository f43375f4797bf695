package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config captures the settings keylog reads at startup.
type Config struct {
	LogPath      string
	ContextChars int
	PreviewChars int
	DebugLog     string
	LogLevel     string
}

const (
	defaultConfigPath   = "~/.config/keylog/config.toml"
	defaultLogPath      = "keystrokes.log"
	defaultContextChars = 200
	defaultPreviewChars = 20000
	defaultLogLevel     = "info"
)

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		LogPath:      defaultLogPath,
		ContextChars: defaultContextChars,
		PreviewChars: defaultPreviewChars,
		LogLevel:     defaultLogLevel,
	}
}

type rawConfig struct {
	LogPath      string `toml:"log_path" yaml:"log_path"`
	ContextChars int    `toml:"context_chars" yaml:"context_chars"`
	PreviewChars int    `toml:"preview_chars" yaml:"preview_chars"`
	DebugLog     string `toml:"debug_log" yaml:"debug_log"`
	LogLevel     string `toml:"log_level" yaml:"log_level"`
}

// Load locates and parses the keylog config, falling back to defaults when
// missing. Files ending in .yaml or .yml are parsed as YAML, anything else as
// TOML.
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
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	switch strings.ToLower(filepath.Ext(resolved)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(bytes, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	default:
		if err := toml.Unmarshal(bytes, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	if logPath := strings.TrimSpace(raw.LogPath); logPath != "" {
		expanded, err := expandLogPath(logPath)
		if err != nil {
			return Config{}, fmt.Errorf("log_path: %w", err)
		}
		cfg.LogPath = expanded
	}
	if raw.ContextChars > 0 {
		cfg.ContextChars = raw.ContextChars
	}
	if raw.PreviewChars > 0 {
		cfg.PreviewChars = raw.PreviewChars
	}
	if debugLog := strings.TrimSpace(raw.DebugLog); debugLog != "" {
		cfg.DebugLog = mustExpand(debugLog)
	}
	if level := strings.ToLower(strings.TrimSpace(raw.LogLevel)); level != "" {
		cfg.LogLevel = level
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

// expandLogPath expands a leading ~ but keeps plain relative paths relative,
// so they resolve against the working directory at write time.
func expandLogPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		return expandPath(path)
	}
	return path, nil
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
