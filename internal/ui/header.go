package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/thronedex/internal/query"
)

// renderHeader renders the status bar: counts, family and sort direction.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	store := m.controller.Store()
	parts := []string{bg.Render("thronedex", styles.Logo)}

	if !store.Loaded() {
		parts = append(parts, bg.Render("Loading characters...", styles.WarningText.Bold(true)))
		return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
	}

	parts = append(parts,
		bg.Render("Characters:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d/%d", len(m.grid.Cards()), len(store.Characters())), styles.Text),
		bg.Render("Family:", styles.MutedText)+bg.Space()+
			bg.Render(store.Category(), styles.AccentText),
		bg.Render("Sort:", styles.MutedText)+bg.Space()+
			bg.Render(sortLabel(store.Direction()), styles.Text),
	)
	return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
}

// renderControls renders the query line under the header.
func (m Model) renderControls() string {
	styles := m.theme.Styles()
	line := lipgloss.NewStyle().Width(m.width).Padding(0, 1)

	if m.searching {
		return line.Render(m.queryInput.View())
	}
	if q := m.queryInput.Value(); q != "" {
		return line.Render(styles.MutedText.Render("/ ") + styles.Text.Render(q))
	}
	return line.Render(styles.FaintText.Render("/ to search names"))
}

// renderFooter shows the selected card's image reference and short help.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	var parts []string
	if cards := m.grid.Cards(); len(cards) > 0 && m.selected < len(cards) {
		url := orDash(cards[m.selected].ImageURL)
		parts = append(parts, bg.Render(truncateMiddle(url, m.width/2), styles.MutedText))
	}
	parts = append(parts, m.help.ShortHelpView(m.keys.ShortHelp()))
	return styles.Footer.Width(m.width).Render(bg.Join(parts, bg.Spaces(2)))
}

func sortLabel(d query.Direction) string {
	if d == query.Descending {
		return "Z-A " + d.Arrow()
	}
	return "A-Z " + d.Arrow()
}
