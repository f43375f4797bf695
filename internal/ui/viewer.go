package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const viewerTitle = "Log file preview"

// Rows taken by the viewer's border, padding, title and footer.
const (
	viewerChromeWidth  = 8
	viewerChromeHeight = 8
)

// copyResultMsg reports the outcome of a clipboard copy for one viewer.
type copyResultMsg struct {
	id  int
	err error
}

// viewerModal shows a read-only snapshot of the log tail. The snapshot never
// changes after creation, so stacked viewers stay independent.
type viewerModal struct {
	id       int
	snapshot string
	vp       viewport.Model
	status   string
	failed   bool
	copyFn   func(string) error
}

func newViewer(id int, snapshot string, width, height int, copyFn func(string) error) *viewerModal {
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}
	v := &viewerModal{
		id:       id,
		snapshot: snapshot,
		vp:       viewport.New(0, 0),
		copyFn:   copyFn,
	}
	v.resize(width, height)
	v.vp.GotoBottom()
	return v
}

// resize fits the viewport to the window and rewraps the snapshot so every
// entry is readable without horizontal scrolling.
func (v *viewerModal) resize(width, height int) {
	v.vp.Width = maxInt(width-viewerChromeWidth, 10)
	v.vp.Height = maxInt(height-viewerChromeHeight, 3)
	atBottom := v.vp.AtBottom()
	v.vp.SetContent(ansi.Wrap(v.snapshot, v.vp.Width, ""))
	if atBottom {
		v.vp.GotoBottom()
	}
}

// Snapshot returns the text captured when the viewer was opened.
func (v *viewerModal) Snapshot() string {
	return v.snapshot
}

func (v *viewerModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.resize(msg.Width, msg.Height)
		return v, nil, false

	case copyResultMsg:
		if msg.id != v.id {
			return v, nil, false
		}
		if msg.err != nil {
			v.status = fmt.Sprintf("Copy failed: %v", msg.err)
			v.failed = true
		} else {
			v.status = "Copied to clipboard"
			v.failed = false
		}
		return v, nil, false

	case tea.MouseMsg:
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd, false

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Close):
			return v, nil, true
		case key.Matches(msg, keys.Copy):
			return v, v.copyCmd(), false
		case key.Matches(msg, keys.Up):
			v.vp.LineUp(1)
		case key.Matches(msg, keys.Down):
			v.vp.LineDown(1)
		case key.Matches(msg, keys.Top):
			v.vp.GotoTop()
		case key.Matches(msg, keys.Bottom):
			v.vp.GotoBottom()
		case key.Matches(msg, keys.PageUp):
			v.vp.ViewUp()
		case key.Matches(msg, keys.PageDown):
			v.vp.ViewDown()
		}
	}
	return v, nil, false
}

func (v *viewerModal) copyCmd() tea.Cmd {
	id, text, copyFn := v.id, v.snapshot, v.copyFn
	return func() tea.Msg {
		return copyResultMsg{id: id, err: copyFn(text)}
	}
}

func (v *viewerModal) View(theme Theme, width, height int) string {
	styles := theme.Styles().WithBackground(theme.SurfaceAlt)
	bg := NewBgStyle(theme.SurfaceAlt)

	title := bg.Render(viewerTitle, styles.AccentText.Bold(true))
	if v.id > 1 {
		title += bg.Space() + bg.Render(fmt.Sprintf("#%d", v.id), styles.FaintText)
	}

	hints := []string{
		bg.Render("j/k", styles.AccentText) + bg.Sep(":") + bg.Render("scroll", styles.MutedText),
		bg.Render("y", styles.AccentText) + bg.Sep(":") + bg.Render("copy", styles.MutedText),
		bg.Render("esc", styles.AccentText) + bg.Sep(":") + bg.Render("close", styles.MutedText),
		bg.Render(fmt.Sprintf("%3.0f%%", v.vp.ScrollPercent()*100), styles.FaintText),
	}
	footer := bg.Join(hints, "  ")
	if v.status != "" {
		statusStyle := styles.SuccessText
		if v.failed {
			statusStyle = styles.DangerText
		}
		footer += bg.Spaces(2) + bg.Render(v.status, statusStyle)
	}

	body := lipgloss.NewStyle().
		Background(lipgloss.Color(theme.FocusBg)).
		Foreground(lipgloss.Color(theme.Text)).
		Width(v.vp.Width).
		Height(v.vp.Height).
		Render(v.vp.View())

	content := strings.Join([]string{title, "", body, "", footer}, "\n")
	return placeDialog(theme, theme.Accent, content, width, height)
}
