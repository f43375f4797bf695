package keystroke

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/keylog/internal/recorder"
)

func TestFromKeyMsg(t *testing.T) {
	cases := []struct {
		name       string
		msg        tea.KeyMsg
		wantKeysym string
		wantChar   string
	}{
		{"letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, "a", "a"},
		{"upper", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Q")}, "Q", "Q"},
		{"digit", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("7")}, "7", "7"},
		{"punctuation", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")}, "exclam", "!"},
		{"unicode", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("é")}, "é", "é"},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hello"), Paste: true}, "Paste", "hello"},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, "space", " "},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, "Return", "\r"},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, "BackSpace", "\x08"},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, "Tab", "\t"},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, "Escape", "\x1b"},
		{"arrow", tea.KeyMsg{Type: tea.KeyLeft}, "Left", ""},
		{"page up", tea.KeyMsg{Type: tea.KeyPgUp}, "Prior", ""},
		{"f1", tea.KeyMsg{Type: tea.KeyF1}, "F1", ""},
		{"f12", tea.KeyMsg{Type: tea.KeyF12}, "F12", ""},
		{"ctrl letter", tea.KeyMsg{Type: tea.KeyCtrlA}, "a", "\x01"},
		{"ctrl h", tea.KeyMsg{Type: tea.KeyCtrlH}, "h", "\x08"},
		{"ctrl backslash", tea.KeyMsg{Type: tea.KeyCtrlBackslash}, "backslash", "\x1c"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev := FromKeyMsg(tc.msg)
			if ev.Kind != Press {
				t.Fatalf("Kind = %v, want Press", ev.Kind)
			}
			if ev.Keysym != tc.wantKeysym {
				t.Fatalf("Keysym = %q, want %q", ev.Keysym, tc.wantKeysym)
			}
			if ev.Char != tc.wantChar {
				t.Fatalf("Char = %q, want %q", ev.Char, tc.wantChar)
			}
		})
	}
}

func TestQuoteChar(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "''"},
		{"a", "'a'"},
		{" ", "' '"},
		{"'", `"'"`},
		{`"`, `'"'`},
		{`'"`, `'\'"'`},
		{`\`, `'\\'`},
		{"\r", `'\r'`},
		{"\t", `'\t'`},
		{"\x08", `'\x08'`},
		{"\x7f", `'\x7f'`},
		{"\u00a0", `'\xa0'`},
		{"é", "'é'"},
	}
	for _, tc := range cases {
		if got := QuoteChar(tc.in); got != tc.want {
			t.Fatalf("QuoteChar(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestDescribe_SingleLetter(t *testing.T) {
	ev := Event{Kind: Press, Keysym: "a", Char: "a"}
	got := Describe(ev, "a", DefaultContextChars)
	want := "PRESS keysym=a char='a' | context='a'"
	if got != want {
		t.Fatalf("Describe = %q, want %q", got, want)
	}
}

func TestDescribe_NonPrintingKey(t *testing.T) {
	ev := Event{Kind: Press, Keysym: "Return", Char: "\r"}
	got := Describe(ev, "line one\n", DefaultContextChars)
	want := `PRESS keysym=Return char='\r' | context='line one\n'`
	if got != want {
		t.Fatalf("Describe = %q, want %q", got, want)
	}
	if strings.Contains(got, "\n") {
		t.Fatalf("Describe produced a raw newline: %q", got)
	}
}

func TestContextWindow_TrimsToTrailingWindow(t *testing.T) {
	content := strings.Repeat("x", 150) + strings.Repeat("y", 200)
	got := ContextWindow(content, 200)
	if got != strings.Repeat("y", 200) {
		t.Fatalf("ContextWindow returned %d chars, want the last 200", len(got))
	}

	short := "short buffer"
	if got := ContextWindow(short, 200); got != short {
		t.Fatalf("ContextWindow(short) = %q, want %q", got, short)
	}

	if got := ContextWindow(strings.Repeat("z", 300), 0); len(got) != DefaultContextChars {
		t.Fatalf("ContextWindow with zero window returned %d chars, want %d", len(got), DefaultContextChars)
	}
}

func TestContextWindow_CountsCharactersNotBytes(t *testing.T) {
	content := "ab" + strings.Repeat("é", 200)
	got := ContextWindow(content, 200)
	if got != strings.Repeat("é", 200) {
		t.Fatalf("ContextWindow = %q, want 200 é", got)
	}
}

func unescapeContext(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}

func TestContextWindow_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"hello",
		"two\nlines",
		"\n\n\n",
		strings.Repeat("line\n", 80),
		"trailing newline\n",
	}
	for _, content := range inputs {
		got := unescapeContext(ContextWindow(content, 200))
		runes := []rune(content)
		if len(runes) > 200 {
			runes = runes[len(runes)-200:]
		}
		if got != string(runes) {
			t.Fatalf("round trip of %q = %q, want %q", content, got, string(runes))
		}
	}
}

type memorySink struct {
	lines []string
	err   error
}

func (s *memorySink) Record(description string) error {
	if s.err != nil {
		return s.err
	}
	s.lines = append(s.lines, description)
	return nil
}

func TestHandler_PressRecordsOnce(t *testing.T) {
	sink := &memorySink{}
	h := NewHandler(sink, 0)

	ok, err := h.Handle(Event{Kind: Press, Keysym: "a", Char: "a"}, "a")
	if err != nil || !ok {
		t.Fatalf("Handle = (%v, %v), want (true, nil)", ok, err)
	}
	if len(sink.lines) != 1 {
		t.Fatalf("recorded %d entries, want 1", len(sink.lines))
	}
	if h.Window() != DefaultContextChars {
		t.Fatalf("Window = %d, want %d", h.Window(), DefaultContextChars)
	}
}

func TestHandler_ReleaseIsIgnored(t *testing.T) {
	sink := &memorySink{}
	h := NewHandler(sink, 200)

	ok, err := h.Handle(Event{Kind: Release, Keysym: "a", Char: "a"}, "a")
	if err != nil || ok {
		t.Fatalf("Handle(release) = (%v, %v), want (false, nil)", ok, err)
	}
	if len(sink.lines) != 0 {
		t.Fatalf("release recorded %d entries, want 0", len(sink.lines))
	}
}

func TestHandler_PropagatesSinkError(t *testing.T) {
	boom := errors.New("disk full")
	h := NewHandler(&memorySink{err: boom}, 200)

	ok, err := h.Handle(Event{Kind: Press, Keysym: "a", Char: "a"}, "a")
	if ok || !errors.Is(err, boom) {
		t.Fatalf("Handle = (%v, %v), want (false, %v)", ok, err, boom)
	}
}

func TestHandler_NPressesProduceNOrderedEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keystrokes.log")
	rec, err := recorder.New(path)
	if err != nil {
		t.Fatalf("recorder.New: %v", err)
	}
	h := NewHandler(rec, 200)

	typed := "hello, world"
	var buf strings.Builder
	for _, r := range typed {
		buf.WriteRune(r)
		ev := FromKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		if _, err := h.Handle(ev, buf.String()); err != nil {
			t.Fatalf("Handle(%q): %v", r, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != len([]rune(typed)) {
		t.Fatalf("got %d entries, want %d", len(lines), len([]rune(typed)))
	}
	for i, r := range []rune(typed) {
		want := fmt.Sprintf("| context='%s'", string([]rune(typed)[:i+1]))
		if !strings.HasSuffix(lines[i], want) {
			t.Fatalf("entry %d = %q, want suffix %q (key %q)", i, lines[i], want, r)
		}
	}
}
