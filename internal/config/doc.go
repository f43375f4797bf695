// Package config loads keylog's optional configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/keylog/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing, blank or non-positive, use defaults
//
// # Default Values
//
//   - Log file: keystrokes.log (relative to the working directory)
//   - Context window: 200 characters per entry
//   - Preview window: 20000 characters in the log viewer
//   - Diagnostics: disabled, level info
//
// # File Formats
//
// TOML is the default. A path ending in .yaml or .yml is parsed as YAML with
// the same keys:
//
//	log_path = "~/notes/keystrokes.log"
//	context_chars = 200
//	preview_chars = 20000
//	debug_log = "/tmp/keylog-debug.log"
//	log_level = "debug"
//
// Tilde expansion is applied to log_path and debug_log. A relative log_path
// stays relative, matching the behaviour of running without a config file.
//
// # Error Handling
//
// Load returns errors for unreadable files and parse failures. A missing
// file is not an error.
package config
