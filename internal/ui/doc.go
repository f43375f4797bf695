// Package ui provides the terminal window of the keylog application.
//
// # Architecture Overview
//
// The UI is a single Bubble Tea program. Model owns a bubbles/textarea editor,
// a toolbar with the Clear Log and Show Log buttons, and a footer carrying the
// disclosure line and a summary of the log file. Every message is handled by
// Model.Update on the program's event loop, one at a time.
//
// # Package Structure
//
//   - app.go: Model, Options, message routing and the Run function
//   - keys.go: key bindings built with bubbles/key
//   - layout.go: toolbar, editor and footer rendering plus mouse hit regions
//   - modal.go: the Modal interface with notice and confirm dialogs
//   - viewer.go: read-only log snapshot overlays backed by bubbles/viewport
//   - help.go: help overlay, also shown once as the first-run intro
//   - theme.go, style_helpers.go: lipgloss palettes and background helpers
//
// # Recording
//
// A key that reaches the focused editor is first applied to the textarea.
// The full editor content is then read, reduced to its trailing context
// window by package keystroke, and appended through the LogStore before
// Update returns. Keys bound to commands (quit, help, theme, show log,
// clear log, toolbar focus) are consumed before the editor and not recorded.
// Escape is an ordinary key in the editor and is recorded like any other.
// A write failure is shown in the status line and logged; the key is not
// retried.
//
// # Overlays
//
// Modals form a stack and the topmost one receives keys. Show Log pushes a
// new viewer each time it is invoked, so several snapshots can be open at
// once; while a viewer is on top the Show Log and Clear Log shortcuts keep
// working. Clear Log asks for confirmation and only an explicit yes deletes
// the file.
//
// # Key Bindings
//
// Global:
//   - ctrl+o / f2: Show log
//   - ctrl+l / f8: Clear log
//   - f6: Move focus to the toolbar
//   - f1: Toggle help
//   - f9: Cycle theme
//   - ctrl+q / ctrl+c: Quit
//
// Toolbar:
//   - left/right, tab/shift+tab: Select button
//   - enter / space: Press button
//   - f6 / esc / i: Back to the editor
//
// Log viewer:
//   - j/k, pgup/pgdown, g/G: Scroll
//   - y: Copy the snapshot to the clipboard
//   - esc / q: Close
package ui
