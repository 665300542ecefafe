package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the console's colors. Status colors key on the opaque status
// strings the server uses; unknown statuses fall back to the text color.
type Theme struct {
	Name string

	Text          string
	Muted         string
	Accent        string
	Success       string
	Danger        string
	Warning       string
	Border        string
	SelectionBg   string
	SelectionText string

	StatusColors map[string]string
}

var themes = []Theme{
	{
		Name:          "Crimson",
		Text:          "#f8f8f2",
		Muted:         "#6c6f85",
		Accent:        "#e64553",
		Success:       "#40a02b",
		Danger:        "#d20f39",
		Warning:       "#df8e1d",
		Border:        "#45475a",
		SelectionBg:   "#e64553",
		SelectionText: "#11111b",
		StatusColors: map[string]string{
			"pending":   "#df8e1d",
			"approve":   "#40a02b",
			"reject":    "#d20f39",
			"transfer":  "#04a5e5",
			"cancel":    "#6c6f85",
			"complete":  "#40a02b",
			"available": "#40a02b",
			"reserved":  "#df8e1d",
			"used":      "#6c6f85",
			"expired":   "#d20f39",
			"published": "#40a02b",
			"draft":     "#df8e1d",
		},
	},
	{
		Name:          "Slate",
		Text:          "#e2e8f0",
		Muted:         "#64748b",
		Accent:        "#38bdf8",
		Success:       "#4ade80",
		Danger:        "#f87171",
		Warning:       "#facc15",
		Border:        "#334155",
		SelectionBg:   "#38bdf8",
		SelectionText: "#0f172a",
		StatusColors: map[string]string{
			"pending":   "#facc15",
			"approve":   "#4ade80",
			"reject":    "#f87171",
			"transfer":  "#38bdf8",
			"cancel":    "#64748b",
			"complete":  "#4ade80",
			"available": "#4ade80",
			"reserved":  "#facc15",
			"used":      "#64748b",
			"expired":   "#f87171",
			"published": "#4ade80",
			"draft":     "#facc15",
		},
	},
}

// themeByName returns the named theme, defaulting to the first.
func themeByName(name string) Theme {
	for _, t := range themes {
		if strings.EqualFold(t.Name, name) {
			return t
		}
	}
	return themes[0]
}

// nextTheme cycles to the following theme.
func nextTheme(current string) Theme {
	for i, t := range themes {
		if strings.EqualFold(t.Name, current) {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}

// StatusColor maps an opaque status value to its display color.
func (t Theme) StatusColor(status string) lipgloss.Color {
	if c, ok := t.StatusColors[strings.ToLower(strings.TrimSpace(status))]; ok {
		return lipgloss.Color(c)
	}
	return lipgloss.Color(t.Text)
}
