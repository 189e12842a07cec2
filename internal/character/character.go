// Package character holds the Character entity and the category set derived
// from a loaded list.
package character

import (
	"sort"

	"github.com/five82/thronedex/internal/thronesapi"
)

// AllCategories is the synthetic category meaning "no family filter".
const AllCategories = "All"

// Character is one immutable record from the API.
type Character struct {
	ID        int
	FirstName string
	LastName  string
	Title     string
	ImageURL  string
	Family    string
}

// DisplayName joins first and last name. An empty first name yields the last
// name alone, without a leading space.
func (c Character) DisplayName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	return c.FirstName + " " + c.LastName
}

// FromRecord maps a wire record field by field. Absent fields are already
// zero values after decoding, so no further defaulting is needed.
func FromRecord(r thronesapi.Record) Character {
	return Character{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Title:     r.Title,
		ImageURL:  r.ImageURL,
		Family:    r.Family,
	}
}

// FromRecords maps records in order. When an id repeats, the first record
// wins; the dropped ids are returned so callers can report them.
func FromRecords(records []thronesapi.Record) (chars []Character, duplicates []int) {
	if len(records) == 0 {
		return nil, nil
	}
	seen := make(map[int]struct{}, len(records))
	chars = make([]Character, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.ID]; ok {
			duplicates = append(duplicates, r.ID)
			continue
		}
		seen[r.ID] = struct{}{}
		chars = append(chars, FromRecord(r))
	}
	return chars, duplicates
}

// Categories returns the distinct non-empty family labels with AllCategories
// first and the rest in ascending order. A family literally named "All" is
// folded into the sentinel.
func Categories(chars []Character) []string {
	seen := make(map[string]struct{})
	families := make([]string, 0)
	for _, c := range chars {
		if c.Family == "" || c.Family == AllCategories {
			continue
		}
		if _, ok := seen[c.Family]; ok {
			continue
		}
		seen[c.Family] = struct{}{}
		families = append(families, c.Family)
	}
	sort.Strings(families)
	return append([]string{AllCategories}, families...)
}
