package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lucasaraujonrt/portfolio/internal/highlight"
	"github.com/lucasaraujonrt/portfolio/internal/typography"
)

// View renders the profile header, every section and the key help
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.text(typography.SizeTitle, typography.FontBold, m.theme.Accent, m.profile.Name))
	b.WriteString("\n")
	b.WriteString(m.text(typography.SizeMedium, typography.FontMedium, m.theme.Text, m.profile.Handle))
	b.WriteString("\n")
	b.WriteString(m.text(typography.SizeSmall, typography.FontRegular, m.theme.Text, m.profile.Headline))
	b.WriteString("\n\n")

	for i, sec := range m.sections {
		b.WriteString(m.renderSection(sec, i == m.current))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderSection(sec section, current bool) string {
	var b strings.Builder

	heading := m.text(typography.SizeLarge, typography.FontBold, m.theme.Text, sec.title)
	if current {
		heading = lipgloss.NewStyle().Foreground(typography.TerminalColor(m.theme.Accent)).Render("▸ ") + heading
	} else {
		heading = "  " + heading
	}
	b.WriteString(heading)
	b.WriteString("\n")

	// one terminal line per row; the tracker picks the line to paint
	rects := make(map[string]highlight.Rect, len(sec.list.Rows))
	for i, r := range sec.list.Rows {
		rects[r.ID] = highlight.Rect{Y: float64(i), Width: float64(m.width), Height: 1}
	}
	bg, highlighted := sec.tracker.Highlight(rects)

	rowStyle := lipgloss.NewStyle().PaddingLeft(4)
	activeStyle := rowStyle.
		Background(typography.TerminalColor(m.theme.Highlight)).
		Foreground(typography.TerminalColor(m.theme.Background)).
		Bold(true)

	for i, r := range sec.list.Rows {
		line := r.Title
		if r.Subtitle != "" {
			line += " · " + r.Subtitle
		}
		if r.Meta != "" {
			line += " (" + r.Meta + ")"
		}

		if highlighted && int(bg.Y) == i {
			b.WriteString(activeStyle.Render(line))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) text(size typography.Size, font typography.Font, color typography.Color, content string) string {
	return typography.New(typography.MustVariant(size, font), color, content).Terminal()
}
