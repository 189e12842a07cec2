package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/five82/thronedex/internal/character"
)

// Listing is the document written by the JSON and YAML sinks.
type Listing struct {
	Count    int      `json:"count" yaml:"count"`
	Families []string `json:"families,omitempty" yaml:"families,omitempty"`
	Results  []Entry  `json:"results" yaml:"results"`
	Message  string   `json:"message,omitempty" yaml:"message,omitempty"`
}

// Format selects the encoding of an Encoded sink.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Encoded writes the view as a JSON or YAML Listing.
type Encoded struct {
	w          io.Writer
	format     Format
	categories []string
}

// NewEncoded returns an encoded sink. Unknown formats are rejected.
func NewEncoded(w io.Writer, format Format) (*Encoded, error) {
	switch format {
	case FormatJSON, FormatYAML:
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return &Encoded{w: w, format: format}, nil
}

// RenderCategories remembers the category set for the next listing.
func (e *Encoded) RenderCategories(categories []string) error {
	e.categories = append([]string(nil), categories...)
	return nil
}

// RenderCharacters writes one Listing document. An empty view carries the
// no-results message.
func (e *Encoded) RenderCharacters(chars []character.Character) error {
	listing := Listing{
		Count:    len(chars),
		Families: e.categories,
		Results:  make([]Entry, 0, len(chars)),
	}
	for _, c := range chars {
		listing.Results = append(listing.Results, NewEntry(c))
	}
	if len(chars) == 0 {
		listing.Message = NoResults
	}

	switch e.format {
	case FormatYAML:
		enc := yaml.NewEncoder(e.w)
		enc.SetIndent(2)
		if err := enc.Encode(listing); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(e.w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(listing); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}
