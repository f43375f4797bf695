// Package keystroke converts editor key presses into log descriptions.
package keystroke

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Kind distinguishes key presses from key releases.
type Kind int

const (
	Press Kind = iota
	Release
)

func (k Kind) String() string {
	switch k {
	case Release:
		return "RELEASE"
	default:
		return "PRESS"
	}
}

// Event is a single key event as seen by the editor.
type Event struct {
	Kind   Kind
	Keysym string // symbolic key name: "a", "space", "Return", "BackSpace", "F5"
	Char   string // literal character produced, empty for non-printing keys
}

// punctuation maps ASCII punctuation to X11 keysym names.
var punctuation = map[rune]string{
	' ':  "space",
	'!':  "exclam",
	'"':  "quotedbl",
	'#':  "numbersign",
	'$':  "dollar",
	'%':  "percent",
	'&':  "ampersand",
	'\'': "apostrophe",
	'(':  "parenleft",
	')':  "parenright",
	'*':  "asterisk",
	'+':  "plus",
	',':  "comma",
	'-':  "minus",
	'.':  "period",
	'/':  "slash",
	':':  "colon",
	';':  "semicolon",
	'<':  "less",
	'=':  "equal",
	'>':  "greater",
	'?':  "question",
	'@':  "at",
	'[':  "bracketleft",
	'\\': "backslash",
	']':  "bracketright",
	'^':  "asciicircum",
	'_':  "underscore",
	'`':  "grave",
	'{':  "braceleft",
	'|':  "bar",
	'}':  "braceright",
	'~':  "asciitilde",
}

// named covers keys that carry no runes. Control characters match what a
// desktop toolkit reports for the same key.
var named = map[tea.KeyType]struct{ keysym, char string }{
	tea.KeyEnter:          {"Return", "\r"},
	tea.KeyTab:            {"Tab", "\t"},
	tea.KeyBackspace:      {"BackSpace", "\x08"},
	tea.KeyDelete:         {"Delete", "\x7f"},
	tea.KeyEsc:            {"Escape", "\x1b"},
	tea.KeySpace:          {"space", " "},
	tea.KeyShiftTab:       {"ISO_Left_Tab", ""},
	tea.KeyUp:             {"Up", ""},
	tea.KeyDown:           {"Down", ""},
	tea.KeyLeft:           {"Left", ""},
	tea.KeyRight:          {"Right", ""},
	tea.KeyShiftUp:        {"Up", ""},
	tea.KeyShiftDown:      {"Down", ""},
	tea.KeyShiftLeft:      {"Left", ""},
	tea.KeyShiftRight:     {"Right", ""},
	tea.KeyCtrlUp:         {"Up", ""},
	tea.KeyCtrlDown:       {"Down", ""},
	tea.KeyCtrlLeft:       {"Left", ""},
	tea.KeyCtrlRight:      {"Right", ""},
	tea.KeyCtrlShiftUp:    {"Up", ""},
	tea.KeyCtrlShiftDown:  {"Down", ""},
	tea.KeyCtrlShiftLeft:  {"Left", ""},
	tea.KeyCtrlShiftRight: {"Right", ""},
	tea.KeyHome:           {"Home", ""},
	tea.KeyEnd:            {"End", ""},
	tea.KeyShiftHome:      {"Home", ""},
	tea.KeyShiftEnd:       {"End", ""},
	tea.KeyCtrlHome:       {"Home", ""},
	tea.KeyCtrlEnd:        {"End", ""},
	tea.KeyCtrlShiftHome:  {"Home", ""},
	tea.KeyCtrlShiftEnd:   {"End", ""},
	tea.KeyPgUp:           {"Prior", ""},
	tea.KeyPgDown:         {"Next", ""},
	tea.KeyCtrlPgUp:       {"Prior", ""},
	tea.KeyCtrlPgDown:     {"Next", ""},
	tea.KeyInsert:         {"Insert", ""},
	tea.KeyNull:           {"at", "\x00"},
}

// FromKeyMsg converts a terminal key message into a press event.
func FromKeyMsg(msg tea.KeyMsg) Event {
	ev := Event{Kind: Press}

	if msg.Type == tea.KeyRunes {
		switch {
		case msg.Paste:
			ev.Keysym = "Paste"
		case len(msg.Runes) == 1:
			ev.Keysym = runeKeysym(msg.Runes[0])
		default:
			ev.Keysym = "Multi_key"
		}
		ev.Char = string(msg.Runes)
		return ev
	}

	if n, ok := named[msg.Type]; ok {
		ev.Keysym, ev.Char = n.keysym, n.char
		return ev
	}

	switch {
	case msg.Type <= tea.KeyF1 && msg.Type >= tea.KeyF20:
		// Function key types count down from F1.
		ev.Keysym = fmt.Sprintf("F%d", int(tea.KeyF1-msg.Type)+1)
	case msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ:
		ev.Keysym = string(rune('a' + int(msg.Type-tea.KeyCtrlA)))
		ev.Char = string(rune(msg.Type))
	case msg.Type >= tea.KeyCtrlBackslash && msg.Type <= tea.KeyCtrlUnderscore:
		ev.Keysym = runeKeysym(rune(msg.Type) + '@')
		ev.Char = string(rune(msg.Type))
	default:
		ev.Keysym = msg.String()
	}
	return ev
}

func runeKeysym(r rune) string {
	if name, ok := punctuation[r]; ok {
		return name
	}
	return string(r)
}
