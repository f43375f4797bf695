// Package recorder owns the keystroke log file.
//
// # Line Grammar
//
// Every entry is exactly one line:
//
//	<timestamp>Z <description>\n
//
// The timestamp is the UTC wall-clock time of the write in ISO-8601 form,
// YYYY-MM-DDTHH:MM:SS with a six digit microsecond fraction when the
// microseconds are non-zero. The description is written verbatim; callers
// must escape embedded newlines first (see keystroke.EscapeContext), since
// nothing ever parses the log back and one entry must stay one line.
//
// Example:
//
//	2025-03-14T09:26:53.589793Z PRESS keysym=a char='a' | context='a'
//
// # File Handling
//
// The log is append-only during normal operation. Record opens the file with
// O_APPEND|O_CREATE, writes a single line and closes it again, so no handle
// is held between key presses and entries appear on disk in call order.
// Clear removes the whole file; there is no rotation or partial deletion.
//
// Record returns I/O errors to the caller unchanged apart from wrapping.
// It does not retry and does not buffer.
package recorder
