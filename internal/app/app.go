package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/five82/keylog/internal/config"
	"github.com/five82/keylog/internal/logging"
	"github.com/five82/keylog/internal/prefs"
	"github.com/five82/keylog/internal/recorder"
	"github.com/five82/keylog/internal/ui"
)

// Options configure the keylog application. Non-empty fields override the
// config file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/keylog/prefs.toml
	LogPath    string
	Theme      string
	DebugLog   string
	LogLevel   string
	LogFormat  string // text or json
}

// Run boots the keylog TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyOverrides(&cfg, opts)

	logger, closeLog, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: opts.LogFormat,
		Path:   cfg.DebugLog,
	})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closeLog() }()

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath)
	theme := userPrefs.Theme
	if name := strings.TrimSpace(opts.Theme); name != "" {
		theme = name
	}

	rec, err := recorder.New(cfg.LogPath)
	if err != nil {
		return fmt.Errorf("init recorder: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Watch the log in the background so the footer follows outside changes.
	changes := StartWatcher(ctx, rec.Path(), logger)

	logger.Info("keylog starting",
		"log_path", rec.Path(),
		"context_chars", cfg.ContextChars,
		"preview_chars", cfg.PreviewChars,
		"theme", theme,
	)

	uiOpts := ui.Options{
		Log:          rec,
		ContextChars: cfg.ContextChars,
		PreviewChars: cfg.PreviewChars,
		Changes:      changes,
		Logger:       logger,
		ThemeName:    theme,
		PrefsPath:    prefsPath,
		ShowIntro:    !userPrefs.SeenIntro,
	}
	if err := ui.Run(ctx, uiOpts); err != nil {
		logger.Error("ui exited with error", "error", err)
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info("keylog stopped")
	return nil
}

func applyOverrides(cfg *config.Config, opts Options) {
	if v := strings.TrimSpace(opts.LogPath); v != "" {
		cfg.LogPath = v
	}
	if v := strings.TrimSpace(opts.DebugLog); v != "" {
		cfg.DebugLog = v
	}
	if v := strings.TrimSpace(opts.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
}
