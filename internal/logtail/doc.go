// Package logtail reads the end of a log file for display.
//
// Tail is bounded by characters rather than lines: the viewer shows a fixed
// amount of text no matter how long individual entries are. It seeks to the
// last maxChars*4 bytes (the widest UTF-8 encoding), drops any continuation
// bytes cut by the seek, and trims the result to maxChars code points. Memory
// use is O(maxChars) regardless of file size.
//
// A missing file is reported through the found result, not as an error, so
// callers can show a friendly notice. Other failures are wrapped and returned.
package logtail
