package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title    string
	bindings []key.Binding
}

func (m Model) helpSections() []helpSection {
	titles := []string{"Log", "Toolbar", "Log viewer", "General"}
	groups := m.keys.FullHelp()
	sections := make([]helpSection, 0, len(groups))
	for i, group := range groups {
		sections = append(sections, helpSection{title: titles[i], bindings: group})
	}
	return sections
}

// renderHelp renders the help overlay. On first run it doubles as the intro.
func (m Model) renderHelp() string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Background(lipgloss.Color(m.theme.SurfaceAlt)).
		Width(14)

	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 34)))
	b.WriteString("\n\n")

	if m.introPending {
		b.WriteString(styles.WarningText.Render(Disclosure))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("Every key typed in the editor is appended to " + m.log.Path() + "."))
		b.WriteString("\n\n")
	}

	sections := m.helpSections()
	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")
		for _, binding := range section.bindings {
			h := binding.Help()
			b.WriteString(keyStyle.Render(h.Key))
			b.WriteString(styles.Text.Render(h.Desc))
			b.WriteString("\n")
		}
		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Press any key to close"))

	return placeDialog(m.theme, m.theme.Accent, b.String(), m.width, m.height)
}
