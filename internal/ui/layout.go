package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Disclosure is always rendered in the footer.
const Disclosure = "This program logs ONLY keys typed into this window. Use ethically."

// Fixed rows around the editor.
const (
	toolbarRows = 1
	footerRows  = 2
)

type toolbarAction int

const (
	actionClearLog toolbarAction = iota
	actionShowLog
)

type toolbarButton struct {
	action toolbarAction
	label  string
}

var toolbarButtons = []toolbarButton{
	{actionClearLog, "Clear Log"},
	{actionShowLog, "Show Log"},
}

func (b toolbarButton) text() string {
	return "[ " + b.label + " ]"
}

// buttonRegion is the clickable column span of a toolbar button on row 0.
type buttonRegion struct {
	action     toolbarAction
	start, end int // end is exclusive
}

// buttonsWidth is the rendered width of all buttons with single-space gaps.
func buttonsWidth() int {
	w := 0
	for i, b := range toolbarButtons {
		if i > 0 {
			w++
		}
		w += lipgloss.Width(b.text())
	}
	return w
}

// buttonRegions mirrors the right-aligned placement done by renderToolbar.
func buttonRegions(width int) []buttonRegion {
	x := width - 1 - buttonsWidth() // toolbar has one column of right padding
	regions := make([]buttonRegion, 0, len(toolbarButtons))
	for _, b := range toolbarButtons {
		w := lipgloss.Width(b.text())
		regions = append(regions, buttonRegion{action: b.action, start: x, end: x + w})
		x += w + 1
	}
	return regions
}

func (m Model) editorHeight() int {
	return maxInt(m.height-toolbarRows-footerRows, 3)
}

func (m *Model) resizeEditor() {
	m.editor.SetWidth(maxInt(m.width-2, 10))
	m.editor.SetHeight(maxInt(m.editorHeight()-2, 1))
}

// renderMain renders toolbar, editor and footer.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderToolbar())
	b.WriteString("\n")
	b.WriteString(m.renderEditor())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderToolbar renders the status label on the left and the buttons on the right.
func (m Model) renderToolbar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	inner := maxInt(m.width-2, 0)
	right := make([]string, 0, len(toolbarButtons))
	for i, btn := range toolbarButtons {
		style := styles.Button
		if m.focus == focusToolbar && i == m.selected {
			style = styles.Selected
		}
		right = append(right, style.Render(btn.text()))
	}
	buttons := bg.Join(right, " ")

	statusStyle := styles.Text
	if m.recordErr != nil {
		statusStyle = styles.DangerText
	}
	room := inner - buttonsWidth() - 1
	left := bg.Render(truncate(m.status, maxInt(room, 0)), statusStyle)

	gap := maxInt(inner-lipgloss.Width(left)-buttonsWidth(), 1)
	return styles.Toolbar.Width(m.width).MaxHeight(1).Render(left + bg.Spaces(gap) + buttons)
}

func (m Model) renderEditor() string {
	border := m.theme.Border
	if m.focus == focusEditor {
		border = m.theme.BorderFocus
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Render(m.editor.View())
}

// renderFooter renders the disclosure line and the log file summary.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	disclosure := styles.Footer.Width(m.width).MaxHeight(1).Render(bg.Render(Disclosure, styles.WarningText))

	size := "not created"
	switch {
	case m.logInfo.Exists:
		size = formatBytes(m.logInfo.Size) + ", modified " + m.logInfo.ModTime.Format("15:04:05")
	case m.logRemoved:
		size = "deleted"
	}
	parts := []string{
		bg.Render("log", styles.FaintText) + bg.Space() + bg.Render(truncateMiddle(m.log.Path(), maxInt(m.width/2, 12)), styles.MutedText),
		bg.Render(size, styles.MutedText),
		bg.Render(fmt.Sprintf("%s this session", pluralize(m.entries, "entry", "entries")), styles.MutedText),
		bg.Render("f1", styles.AccentText) + bg.Sep(":") + bg.Render("help", styles.MutedText),
		bg.Render("f9", styles.AccentText) + bg.Sep(":") + bg.Render(m.theme.Name, styles.FaintText),
	}
	summary := styles.Footer.Width(m.width).MaxHeight(1).Render(strings.Join(parts, sep))

	return disclosure + "\n" + summary
}
