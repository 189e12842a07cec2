// Package query implements the pure filter predicates and the locale-aware
// ordering applied to a character list.
package query

import (
	"strings"

	"github.com/five82/thronedex/internal/character"
)

// MatchesQuery reports whether query occurs in the character's display name,
// ignoring case. The empty query matches every character.
func MatchesQuery(query string, c character.Character) bool {
	return strings.Contains(strings.ToLower(c.DisplayName()), strings.ToLower(query))
}

// MatchesCategory reports whether the character's family equals category
// exactly.
func MatchesCategory(c character.Character, category string) bool {
	return c.Family == category
}

// MatchesQueryAndCategory is the conjunction of MatchesQuery and
// MatchesCategory.
func MatchesQueryAndCategory(query string, c character.Character, category string) bool {
	return MatchesCategory(c, category) && MatchesQuery(query, c)
}

// Filter returns the characters matching query and category in their
// original order. character.AllCategories disables the category predicate.
// The input slice is never modified.
func Filter(chars []character.Character, query, category string) []character.Character {
	match := func(c character.Character) bool {
		return MatchesQueryAndCategory(query, c, category)
	}
	if category == character.AllCategories {
		match = func(c character.Character) bool {
			return MatchesQuery(query, c)
		}
	}

	out := make([]character.Character, 0, len(chars))
	for _, c := range chars {
		if match(c) {
			out = append(out, c)
		}
	}
	return out
}
