package typography

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var namedColors = map[string]string{
	"black": "#000000",
	"white": "#ffffff",
	"gray":  "#808080",
	"grey":  "#808080",
	"red":   "#ef4444",
	"green": "#22c55e",
	"blue":  "#3b82f6",
}

// TerminalColor converts a CSS color to a lipgloss color. Colors a terminal
// can't express resolve to no color.
func TerminalColor(c Color) lipgloss.TerminalColor {
	s := strings.ToLower(string(c))
	if strings.HasPrefix(s, "#") && c.Valid() {
		return lipgloss.Color(s)
	}
	if hex, ok := namedColors[s]; ok {
		return lipgloss.Color(hex)
	}
	return lipgloss.NoColor{}
}

// Terminal resolves the variant for terminal output. Terminals have one font
// size, so sizes are expressed through emphasis instead.
func (v Variant) Terminal() lipgloss.Style {
	style := lipgloss.NewStyle()

	switch v.size {
	case SizeTitle:
		style = style.Bold(true).Underline(true).MarginBottom(1)
	case SizeLarge:
		style = style.Bold(true)
	case SizeSmall:
		style = style.Faint(true)
	}

	if v.font == FontBold {
		style = style.Bold(true)
	}

	return style
}

// Terminal renders t for a terminal
func (t Text) Terminal() string {
	style := t.Variant.Terminal().Foreground(TerminalColor(t.Color))
	switch t.Align {
	case AlignCenter:
		style = style.Align(lipgloss.Center)
	case AlignRight:
		style = style.Align(lipgloss.Right)
	}
	return style.Render(t.Content)
}
