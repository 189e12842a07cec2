package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/five82/thronedex/internal/character"
)

// Table writes the view as a bordered text table.
type Table struct {
	w              io.Writer
	showCategories bool
	headerStyle    lipgloss.Style
}

// NewTable returns a table sink writing to w. When showCategories is set the
// category set is printed on its own line before the table.
func NewTable(w io.Writer, showCategories bool) *Table {
	return &Table{
		w:              w,
		showCategories: showCategories,
		headerStyle:    lipgloss.NewStyle().Bold(true).Padding(0, 1),
	}
}

// RenderCharacters writes one row per character, or the no-results line.
func (t *Table) RenderCharacters(chars []character.Character) error {
	if len(chars) == 0 {
		_, err := fmt.Fprintln(t.w, NoResults)
		return err
	}
	rows := make([][]string, 0, len(chars))
	for _, c := range chars {
		rows = append(rows, []string{strconv.Itoa(c.ID), c.DisplayName(), c.Title, c.Family})
	}
	cell := lipgloss.NewStyle().Padding(0, 1)
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "TITLE", "FAMILY").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.headerStyle
			}
			return cell
		})
	_, err := fmt.Fprintln(t.w, tbl.Render())
	return err
}

// RenderCategories prints the category set when enabled.
func (t *Table) RenderCategories(categories []string) error {
	if !t.showCategories {
		return nil
	}
	_, err := fmt.Fprintf(t.w, "Families: %s\n", strings.Join(categories, ", "))
	return err
}
