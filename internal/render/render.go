// Package render turns the character view into display output.
//
// Every renderer implements Sink. The pipeline controller hands each sink the
// ordered view after every recompute and the category set after every load.
// An empty view always produces a distinct "no results" output rather than an
// empty listing.
package render

import "github.com/five82/thronedex/internal/character"

// NoResults is the text shown when the view is empty.
const NoResults = "No results found"

// Sink receives the ordered view and the category set.
type Sink interface {
	RenderCharacters(chars []character.Character) error
	RenderCategories(categories []string) error
}

// Recorder is a Sink that keeps what it was last given.
type Recorder struct {
	Characters []character.Character
	Categories []string
	Renders    int
}

// RenderCharacters records a copy of chars.
func (r *Recorder) RenderCharacters(chars []character.Character) error {
	r.Characters = append([]character.Character(nil), chars...)
	r.Renders++
	return nil
}

// RenderCategories records a copy of categories.
func (r *Recorder) RenderCategories(categories []string) error {
	r.Categories = append([]string(nil), categories...)
	return nil
}

// Entry is the serialized form of a character used by the JSON and YAML
// sinks.
type Entry struct {
	ID        int    `json:"id" yaml:"id"`
	FirstName string `json:"firstName" yaml:"firstName"`
	LastName  string `json:"lastName" yaml:"lastName"`
	FullName  string `json:"fullName" yaml:"fullName"`
	Title     string `json:"title" yaml:"title"`
	ImageURL  string `json:"imageUrl" yaml:"imageUrl"`
	Family    string `json:"family" yaml:"family"`
}

// NewEntry converts a character, filling FullName from its display name.
func NewEntry(c character.Character) Entry {
	return Entry{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		FullName:  c.DisplayName(),
		Title:     c.Title,
		ImageURL:  c.ImageURL,
		Family:    c.Family,
	}
}
