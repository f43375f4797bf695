package keystroke

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/five82/keylog/internal/logtail"
)

// DefaultContextChars is how much trailing editor content each entry carries.
const DefaultContextChars = 200

// Describe builds the log description for ev, embedding the trailing window
// of content. The result never contains a newline.
func Describe(ev Event, content string, window int) string {
	return fmt.Sprintf("%s keysym=%s char=%s | context='%s'",
		ev.Kind, ev.Keysym, QuoteChar(ev.Char), ContextWindow(content, window))
}

// ContextWindow returns the last window characters of content with
// newlines escaped. A non-positive window uses DefaultContextChars.
func ContextWindow(content string, window int) string {
	if window <= 0 {
		window = DefaultContextChars
	}
	return EscapeContext(logtail.LastChars(content, window))
}

// EscapeContext replaces each newline with a backslash followed by n.
func EscapeContext(s string) string {
	return strings.ReplaceAll(s, "\n", `\n`)
}

// QuoteChar quotes s the way Python's repr quotes a str: single quotes unless
// s holds a single quote and no double quote, backslash escapes for the quote
// and backslash, and escapes for non-printable characters.
func QuoteChar(s string) string {
	quote := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	var b strings.Builder
	b.WriteRune(quote)
	for _, r := range s {
		switch {
		case r == '\\' || r == quote:
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case unicode.IsPrint(r):
			b.WriteRune(r)
		case r <= 0xff:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r <= 0xffff:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			fmt.Fprintf(&b, `\U%08x`, r)
		}
	}
	b.WriteRune(quote)
	return b.String()
}
