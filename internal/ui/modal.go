package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeSuccess
	noticeError
)

// noticeModal is a one-button message box.
type noticeModal struct {
	kind    noticeKind
	title   string
	message string
}

func newNotice(kind noticeKind, title, message string) *noticeModal {
	return &noticeModal{kind: kind, title: title, message: message}
}

func (n *noticeModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return n, nil, false
	}
	switch {
	case key.Matches(km, keys.Confirm), key.Matches(km, keys.Close), km.String() == " ":
		return n, nil, true
	}
	return n, nil, false
}

func (n *noticeModal) View(theme Theme, width, height int) string {
	styles := theme.Styles().WithBackground(theme.SurfaceAlt)

	titleStyle := styles.InfoText.Bold(true)
	border := theme.Info
	switch n.kind {
	case noticeSuccess:
		titleStyle = styles.SuccessText
		border = theme.Success
	case noticeError:
		titleStyle = styles.DangerText
		border = theme.Danger
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(n.title))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(n.message))
	b.WriteString("\n\n")
	b.WriteString(renderChoice(theme, "OK", true))

	return placeDialog(theme, border, b.String(), width, height)
}

// confirmModal asks a yes/no question. Only an explicit yes runs onYes.
type confirmModal struct {
	title    string
	question string
	yes      bool
	onYes    tea.Cmd
}

func newConfirm(title, question string, onYes tea.Cmd) *confirmModal {
	return &confirmModal{title: title, question: question, onYes: onYes}
}

func (c *confirmModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil, false
	}
	switch {
	case key.Matches(km, keys.Yes):
		return c, c.onYes, true
	case key.Matches(km, keys.No):
		return c, nil, true
	case key.Matches(km, keys.Next), key.Matches(km, keys.Prev):
		c.yes = !c.yes
	case key.Matches(km, keys.Confirm):
		if c.yes {
			return c, c.onYes, true
		}
		return c, nil, true
	}
	return c, nil, false
}

func (c *confirmModal) View(theme Theme, width, height int) string {
	styles := theme.Styles().WithBackground(theme.SurfaceAlt)

	var b strings.Builder
	b.WriteString(styles.WarningText.Bold(true).Render(c.title))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(c.question))
	b.WriteString("\n\n")
	b.WriteString(renderChoice(theme, "Yes", c.yes))
	b.WriteString(NewBgStyle(theme.SurfaceAlt).Spaces(2))
	b.WriteString(renderChoice(theme, "No", !c.yes))

	return placeDialog(theme, theme.Warning, b.String(), width, height)
}

func renderChoice(theme Theme, label string, selected bool) string {
	styles := theme.Styles().WithBackground(theme.SurfaceAlt)
	text := "[ " + label + " ]"
	if selected {
		return styles.Selected.Render(text)
	}
	return styles.Button.Render(text)
}

// placeDialog centers a bordered box over the screen.
func placeDialog(theme Theme, borderColor, content string, width, height int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		BorderBackground(lipgloss.Color(theme.SurfaceAlt)).
		Background(lipgloss.Color(theme.SurfaceAlt)).
		Padding(1, 2).
		Render(content)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(theme.Background)),
	)
}
