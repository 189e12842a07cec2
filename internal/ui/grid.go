package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/thronedex/internal/character"
	"github.com/five82/thronedex/internal/render"
)

// Card geometry, including borders.
const (
	cardWidth  = 32
	cardHeight = 6
	cardGap    = 1
)

// Grid is the render sink behind the card view. The pipeline controller
// writes into it and the model reads from it when drawing.
type Grid struct {
	cards      []character.Character
	categories []string
	rendered   bool
}

var _ render.Sink = (*Grid)(nil)

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{categories: []string{character.AllCategories}}
}

// RenderCharacters replaces the visible cards.
func (g *Grid) RenderCharacters(chars []character.Character) error {
	g.cards = chars
	g.rendered = true
	return nil
}

// RenderCategories replaces the family options.
func (g *Grid) RenderCategories(categories []string) error {
	g.categories = append([]string(nil), categories...)
	return nil
}

// Cards returns the visible cards in view order.
func (g *Grid) Cards() []character.Character { return g.cards }

// Categories returns the family options, "All" first.
func (g *Grid) Categories() []string { return g.categories }

// Rendered reports whether the controller has rendered at least once.
func (g *Grid) Rendered() bool { return g.rendered }

// gridColumns returns how many cards fit side by side.
func gridColumns(width int) int {
	cols := (width + cardGap) / (cardWidth + cardGap)
	if cols < 1 {
		return 1
	}
	return cols
}

// gridRows returns how many card rows fit in height.
func gridRows(height int) int {
	rows := height / cardHeight
	if rows < 1 {
		return 1
	}
	return rows
}

// scrollFor returns the first visible row so that the selected card stays on
// screen, moving the window as little as possible.
func scrollFor(selected, cols, visible, current int) int {
	if cols < 1 || visible < 1 {
		return 0
	}
	row := selected / cols
	switch {
	case row < current:
		return row
	case row >= current+visible:
		return row - visible + 1
	}
	return current
}

// clampSelection keeps the selected index inside [0, count).
func clampSelection(selected, count int) int {
	if count <= 0 || selected < 0 {
		return 0
	}
	if selected >= count {
		return count - 1
	}
	return selected
}

// renderCard draws one character card.
func renderCard(c character.Character, selected bool, styles Styles) string {
	inner := cardWidth - 4
	name := styles.Text.Bold(true).Render(truncate(c.DisplayName(), inner))
	title := styles.MutedText.Render(truncate(orDash(c.Title), inner))
	family := styles.AccentText.Render(truncate(orDash(c.Family), inner))
	id := styles.FaintText.Render(fmt.Sprintf("#%d", c.ID))

	style := styles.Card
	if selected {
		style = styles.CardSelected
	}
	return style.Width(cardWidth - 2).Render(strings.Join([]string{name, title, family, id}, "\n"))
}

// renderGrid lays cards out in rows, showing only the rows that fit.
func (m Model) renderGrid(width, height int) string {
	styles := m.theme.Styles()
	cards := m.grid.Cards()

	if !m.grid.Rendered() {
		msg := styles.WarningText.Bold(true).Render("Loading characters...")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}
	if len(cards) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, styles.Empty.Render(render.NoResults))
	}

	cols := gridColumns(width)
	visible := gridRows(height)
	first := m.scrollRow * cols
	last := first + visible*cols
	if last > len(cards) {
		last = len(cards)
	}

	gap := strings.Repeat(" ", cardGap)
	var rows []string
	for start := first; start < last; start += cols {
		end := start + cols
		if end > last {
			end = last
		}
		row := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				row = append(row, gap)
			}
			row = append(row, renderCard(cards[i], i == m.selected, styles))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.NewStyle().Width(width).Height(height).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
