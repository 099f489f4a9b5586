package ui

import (
	"fmt"
	"strings"

	"quicklaunch/internal/domain"
)

var styles = NewStyles()

// View renders the launcher
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(styles.Input.Render(m.input.View()))
	b.WriteString("\n")

	if len(m.candidates) == 0 {
		b.WriteString(styles.Empty.Render("No results"))
		b.WriteString("\n")
	}

	for i, candidate := range m.candidates {
		b.WriteString(m.renderRow(i, candidate))
		b.WriteString("\n")
	}

	b.WriteString(styles.Help.Render("enter apply · tab complete · esc dismiss · ? help"))
	b.WriteString("\n")

	return b.String()
}

// renderRow renders one candidate line: category tag, title, description
func (m *Model) renderRow(index int, candidate *domain.Candidate) string {
	line := fmt.Sprintf("%s %s",
		styles.Category.Render(categoryTag(candidate)),
		styles.Title.Render(candidate.Title))

	if candidate.Description != "" {
		line += " " + styles.Description.Render(candidate.Description)
	}

	if index == m.cursor {
		return styles.SelectedRow.Render("▸ " + line)
	}
	return styles.Row.Render("  " + line)
}

// categoryTag maps a candidate's category icon to a short textual tag;
// the terminal renderer has no pixmaps to show
func categoryTag(candidate *domain.Candidate) string {
	switch candidate.Identity.(type) {
	case domain.WindowIdentity:
		return "[win]"
	case domain.AppIdentity:
		return "[app]"
	case domain.PluginIdentity:
		if candidate.CategoryIcon != "" {
			return "[" + candidate.CategoryIcon + "]"
		}
		return "[plugin]"
	}
	return "[?]"
}
