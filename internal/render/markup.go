package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/five82/thronedex/internal/character"
)

var (
	cardTemplate = template.Must(template.New("card").Parse(`
<div class="card animate__animated animate__fadeIn">
    <img src="{{.ImageURL}}" alt="{{.DisplayName}}">
    <div class="description">
        <h3>{{.DisplayName}}</h3>
        <span>{{.Title}}</span>
    </div>
</div>`))

	notFoundTemplate = template.Must(template.New("not_found").Parse(
		`<div class="not_found"><h2>{{.}}</h2></div>`))

	optionTemplate = template.Must(template.New("option").Parse(
		`<option value="{{.}}">{{.}}</option>`))

	pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <title>{{.Title}}</title>
</head>
<body>
    <header>
        <select id="families">{{.Options}}</select>
    </header>
    <main>{{.Cards}}</main>
</body>
</html>
`))
)

// Markup renders HTML fragments: one card per character and one option per
// category. It keeps only the latest rendition of each.
type Markup struct {
	cards   template.HTML
	options template.HTML
}

// RenderCharacters builds the card fragments, or the not-found block when
// chars is empty.
func (m *Markup) RenderCharacters(chars []character.Character) error {
	var buf bytes.Buffer
	if len(chars) == 0 {
		if err := notFoundTemplate.Execute(&buf, NoResults); err != nil {
			return fmt.Errorf("render not found: %w", err)
		}
		m.cards = template.HTML(buf.String())
		return nil
	}
	for _, c := range chars {
		if err := cardTemplate.Execute(&buf, c); err != nil {
			return fmt.Errorf("render card %d: %w", c.ID, err)
		}
	}
	m.cards = template.HTML(buf.String())
	return nil
}

// RenderCategories builds the option list in the given order.
func (m *Markup) RenderCategories(categories []string) error {
	var buf bytes.Buffer
	for _, c := range categories {
		if err := optionTemplate.Execute(&buf, c); err != nil {
			return fmt.Errorf("render option %q: %w", c, err)
		}
	}
	m.options = template.HTML(buf.String())
	return nil
}

// Cards returns the latest card markup.
func (m *Markup) Cards() string { return string(m.cards) }

// Options returns the latest option markup.
func (m *Markup) Options() string { return string(m.options) }

// WritePage writes a standalone document containing the latest fragments.
func (m *Markup) WritePage(w io.Writer, title string) error {
	data := struct {
		Title   string
		Options template.HTML
		Cards   template.HTML
	}{title, m.options, m.cards}
	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}
