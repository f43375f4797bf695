// Package app provides the orchestration layer for the keylog application.
//
// # Overview
//
// This package wires together configuration, preferences, diagnostics, the
// log recorder, the log watcher and the UI. It is the composition root where
// all dependencies are initialized and connected.
//
// # Startup
//
//  1. Load ~/.config/keylog/config.toml (or the --config file) and apply
//     command-line overrides
//  2. Create the slog diagnostics logger (a file, or discarded)
//  3. Load UI preferences (theme, first-run intro state)
//  4. Create the Recorder for the log path
//  5. Start the log watcher goroutine
//  6. Start the TUI and block until the user quits or ctx is cancelled
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()      Read settings
//	       ├─────> logging.New()      Diagnostics logger
//	       ├─────> prefs.Load()       Theme and intro state
//	       ├─────> recorder.New()     Log file owner
//	       ├─────> StartWatcher()     fsnotify events → channel
//	       └─────> ui.Run()           Bubble Tea program (blocks)
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Config file present but unparsable
//   - Unsupported log level or format, or an unopenable debug log
//   - Bubble Tea program failure
//
// Recoverable conditions (logged, startup continues):
//   - Watcher setup failure: the UI runs without live footer updates
//   - Unreadable or invalid prefs file: defaults are used
package app
