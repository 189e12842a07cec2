package query

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/five82/thronedex/internal/character"
)

// Direction is the alphabetical sort direction of the view.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Arrow returns the indicator drawn next to the sort control.
func (d Direction) Arrow() string {
	if d == Descending {
		return "↓"
	}
	return "↑"
}

// ParseDirection accepts "asc"/"ascending" and "desc"/"descending" in any
// case. Anything else is Ascending with ok=false.
func ParseDirection(value string) (dir Direction, ok bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "asc", "ascending":
		return Ascending, true
	case "desc", "descending":
		return Descending, true
	default:
		return Ascending, false
	}
}

// Sorter orders characters by display name using the collation rules of a
// locale. A Sorter is not safe for concurrent use.
type Sorter struct {
	tag      language.Tag
	collator *collate.Collator
}

// NewSorter builds a Sorter for a BCP 47 locale such as "en" or "es-ES".
// An empty locale uses English.
func NewSorter(locale string) (*Sorter, error) {
	tag := language.English
	if trimmed := strings.TrimSpace(locale); trimmed != "" {
		parsed, err := language.Parse(trimmed)
		if err != nil {
			return nil, fmt.Errorf("parse locale %q: %w", locale, err)
		}
		tag = parsed
	}
	return &Sorter{tag: tag, collator: collate.New(tag)}, nil
}

// Locale returns the collation locale.
func (s *Sorter) Locale() language.Tag {
	return s.tag
}

// Sort returns a sorted copy of chars. Equal display names fall back to
// ascending id so the result is deterministic in both directions.
func (s *Sorter) Sort(chars []character.Character, dir Direction) []character.Character {
	out := make([]character.Character, len(chars))
	copy(out, chars)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		cmp := s.collator.CompareString(a.DisplayName(), b.DisplayName())
		if dir == Descending {
			cmp = -cmp
		}
		if cmp != 0 {
			return cmp < 0
		}
		return a.ID < b.ID
	})
	return out
}
