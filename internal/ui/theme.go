package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header and command bar
	SurfaceAlt string // Card background
	FocusBg    string // Selected card background

	// Border colors
	Border      string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Warning string
	Danger  string
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Header lipgloss.Style
	Footer lipgloss.Style
	Logo   lipgloss.Style

	Card         lipgloss.Style
	CardSelected lipgloss.Style
	Empty        lipgloss.Style
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Border)).
		Background(lipgloss.Color(t.SurfaceAlt)).
		Foreground(lipgloss.Color(t.Text)).
		Padding(0, 1)

	return Styles{
		Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		MutedText:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		FaintText:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)),
		AccentText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		WarningText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		DangerText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),
		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		Card: card,
		CardSelected: card.
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Background(lipgloss.Color(t.FocusBg)),
		Empty: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Danger)).
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true).
			Padding(1, 4),
	}
}

var themes = map[string]Theme{
	"Winterfell":    winterfellTheme(),
	"Dragonstone":   dragonstoneTheme(),
	"Casterly Rock": casterlyRockTheme(),
}

var themeOrder = []string{"Winterfell", "Dragonstone", "Casterly Rock"}

// GetTheme returns a theme by name, falling back to Winterfell.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return winterfellTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return append([]string(nil), themeOrder...)
}

func winterfellTheme() Theme {
	// Snow, slate and direwolf grey.
	return Theme{
		Name: "Winterfell",

		Background: "#0e1116",
		Surface:    "#161b22",
		SurfaceAlt: "#1c232c",
		FocusBg:    "#243040",

		Border:      "#3a4654",
		BorderFocus: "#9ec5e8",

		Text:    "#e6edf3",
		Muted:   "#8b98a5",
		Faint:   "#5c6773",
		Accent:  "#9ec5e8",
		Warning: "#d8dee9",
		Danger:  "#e06c75",
	}
}

func dragonstoneTheme() Theme {
	// Obsidian with dragonfire.
	return Theme{
		Name: "Dragonstone",

		Background: "#0b0909",
		Surface:    "#151111",
		SurfaceAlt: "#1e1717",
		FocusBg:    "#2c1c1c",

		Border:      "#4a3232",
		BorderFocus: "#e4572e",

		Text:    "#f2e9e4",
		Muted:   "#a89890",
		Faint:   "#6f5f58",
		Accent:  "#e4572e",
		Warning: "#f3a712",
		Danger:  "#d7263d",
	}
}

func casterlyRockTheme() Theme {
	// Crimson and gold.
	return Theme{
		Name: "Casterly Rock",

		Background: "#120a0a",
		Surface:    "#1d1010",
		SurfaceAlt: "#271616",
		FocusBg:    "#3a1e1e",

		Border:      "#5c2e2e",
		BorderFocus: "#d4af37",

		Text:    "#f5ecd7",
		Muted:   "#bfa88a",
		Faint:   "#7d6650",
		Accent:  "#d4af37",
		Warning: "#d4af37",
		Danger:  "#b22222",
	}
}
