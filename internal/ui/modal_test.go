package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestConfirmModal_KeyHandling(t *testing.T) {
	keys := DefaultKeyMap()
	confirmed := func() tea.Msg { return clearConfirmedMsg{} }

	cases := []struct {
		name     string
		keys     []tea.KeyMsg
		wantYes  bool
		wantDone bool
	}{
		{"y confirms", []tea.KeyMsg{runes("y")}, true, true},
		{"n declines", []tea.KeyMsg{runes("n")}, false, true},
		{"esc declines", []tea.KeyMsg{{Type: tea.KeyEsc}}, false, true},
		{"enter defaults to no", []tea.KeyMsg{{Type: tea.KeyEnter}}, false, true},
		{"toggle then enter", []tea.KeyMsg{{Type: tea.KeyTab}, {Type: tea.KeyEnter}}, true, true},
		{"toggle twice then enter", []tea.KeyMsg{{Type: tea.KeyRight}, {Type: tea.KeyLeft}, {Type: tea.KeyEnter}}, false, true},
		{"unrelated key", []tea.KeyMsg{runes("x")}, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var modal Modal = newConfirm("Clear log", "Permanently delete the log file?", confirmed)
			var cmd tea.Cmd
			var done bool
			for _, k := range tc.keys {
				modal, cmd, done = modal.Update(k, keys)
			}
			if done != tc.wantDone {
				t.Fatalf("done = %v, want %v", done, tc.wantDone)
			}
			gotYes := cmd != nil
			if gotYes != tc.wantYes {
				t.Fatalf("confirmed = %v, want %v", gotYes, tc.wantYes)
			}
			if gotYes {
				if _, ok := cmd().(clearConfirmedMsg); !ok {
					t.Fatalf("cmd produced %T", cmd())
				}
			}
		})
	}
}

func TestNoticeModal_ClosesOnAcknowledge(t *testing.T) {
	keys := DefaultKeyMap()
	for _, k := range []tea.KeyMsg{{Type: tea.KeyEnter}, {Type: tea.KeyEsc}, runes("q"), {Type: tea.KeySpace, Runes: []rune(" ")}} {
		n := newNotice(noticeInfo, "Log file", "No log file found yet.")
		if _, _, done := n.Update(k, keys); !done {
			t.Fatalf("%s did not close notice", k)
		}
	}
	n := newNotice(noticeInfo, "Log file", "No log file found yet.")
	if _, _, done := n.Update(runes("x"), keys); done {
		t.Fatalf("x closed notice")
	}
}

func TestDialogViewsRenderText(t *testing.T) {
	theme := GetTheme("Slate")

	view := newNotice(noticeError, "Clear log", "Could not delete log file: boom").View(theme, 80, 20)
	for _, want := range []string{"Clear log", "Could not delete log file: boom", "[ OK ]"} {
		if !strings.Contains(view, want) {
			t.Fatalf("notice view missing %q", want)
		}
	}

	view = newConfirm("Clear log", "Permanently delete the log file?", nil).View(theme, 80, 20)
	for _, want := range []string{"Permanently delete the log file?", "[ Yes ]", "[ No ]"} {
		if !strings.Contains(view, want) {
			t.Fatalf("confirm view missing %q", want)
		}
	}
}

func TestViewer_CopyReportsResult(t *testing.T) {
	keys := DefaultKeyMap()
	var copied string
	v := newViewer(1, "line one\nline two\n", 80, 24, func(s string) error {
		copied = s
		return nil
	})

	_, cmd, done := v.Update(runes("y"), keys)
	if done || cmd == nil {
		t.Fatalf("copy returned done=%v cmd=%v", done, cmd)
	}
	msg := cmd()
	if copied != "line one\nline two\n" {
		t.Fatalf("copied %q", copied)
	}
	v.Update(msg, keys)
	if v.status != "Copied to clipboard" || v.failed {
		t.Fatalf("status = %q failed=%v", v.status, v.failed)
	}

	// Results addressed to another viewer are ignored.
	v.Update(copyResultMsg{id: 2, err: errors.New("no clipboard")}, keys)
	if v.failed {
		t.Fatalf("viewer took another viewer's result")
	}
	v.Update(copyResultMsg{id: 1, err: errors.New("no clipboard")}, keys)
	if !v.failed || !strings.Contains(v.status, "no clipboard") {
		t.Fatalf("status = %q, want failure", v.status)
	}
}

func TestViewer_ScrollAndClose(t *testing.T) {
	keys := DefaultKeyMap()
	var b strings.Builder
	for i := 0; i < 100; i++ {
		b.WriteString("entry\n")
	}
	v := newViewer(1, b.String(), 80, 24, nil)
	if !v.vp.AtBottom() {
		t.Fatalf("viewer should open at the newest entries")
	}

	v.Update(runes("g"), keys)
	if !v.vp.AtTop() {
		t.Fatalf("g did not scroll to top")
	}
	v.Update(runes("j"), keys)
	if v.vp.YOffset != 1 {
		t.Fatalf("YOffset = %d after j, want 1", v.vp.YOffset)
	}
	v.Update(runes("G"), keys)
	if !v.vp.AtBottom() {
		t.Fatalf("G did not scroll to bottom")
	}

	if _, _, done := v.Update(runes("q"), keys); !done {
		t.Fatalf("q did not close viewer")
	}
	if v.Snapshot() != b.String() {
		t.Fatalf("snapshot changed while scrolling")
	}
}
