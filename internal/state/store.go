package state

import (
	"time"

	"github.com/five82/thronedex/internal/character"
	"github.com/five82/thronedex/internal/query"
)

// Snapshot is a copy of the store contents handed to renderers.
type Snapshot struct {
	Characters []character.Character // full loaded list
	View       []character.Character // filtered and sorted subset
	Categories []string
	Query      string
	Category   string
	Direction  query.Direction
	Loaded     bool
	LoadedAt   time.Time
	LoadError  error
}

// Empty reports whether the current view has nothing to show.
func (s Snapshot) Empty() bool {
	return len(s.View) == 0
}

// Store holds the loaded list, the inputs that shape the view, and the view
// itself. It is owned by a single event loop and is not safe for concurrent
// use.
type Store struct {
	characters []character.Character
	view       []character.Character
	categories []string
	query      string
	category   string
	direction  query.Direction
	loaded     bool
	loadedAt   time.Time
	loadError  error
}

// NewStore returns a store with the "All" category selected and an ascending
// sort.
func NewStore() *Store {
	return &Store{
		categories: []string{character.AllCategories},
		category:   character.AllCategories,
		direction:  query.Ascending,
	}
}

// Load replaces the full list and recomputes the category set. When err is
// non-nil the list is left empty and the error is recorded.
func (s *Store) Load(chars []character.Character, err error) {
	s.loaded = true
	s.loadedAt = time.Now()
	if err != nil {
		s.characters = nil
		s.loadError = err
		s.categories = []string{character.AllCategories}
		return
	}
	s.characters = cloneCharacters(chars)
	s.loadError = nil
	s.categories = character.Categories(s.characters)
}

// Loaded reports whether a load, successful or not, has completed.
func (s *Store) Loaded() bool {
	return s.loaded
}

// Characters returns the full loaded list. Callers must not modify it.
func (s *Store) Characters() []character.Character {
	return s.characters
}

// Categories returns the derived category set.
func (s *Store) Categories() []string {
	return append([]string(nil), s.categories...)
}

// Query returns the current query text.
func (s *Store) Query() string { return s.query }

// SetQuery stores the query text.
func (s *Store) SetQuery(q string) { s.query = q }

// Category returns the selected category.
func (s *Store) Category() string { return s.category }

// SetCategory stores the selected category. An empty category selects All.
func (s *Store) SetCategory(c string) {
	if c == "" {
		c = character.AllCategories
	}
	s.category = c
}

// Direction returns the sort direction.
func (s *Store) Direction() query.Direction { return s.direction }

// SetDirection stores the sort direction.
func (s *Store) SetDirection(d query.Direction) { s.direction = d }

// View returns the current view. Callers must not modify it.
func (s *Store) View() []character.Character { return s.view }

// SetView replaces the current view.
func (s *Store) SetView(view []character.Character) { s.view = view }

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Characters: cloneCharacters(s.characters),
		View:       cloneCharacters(s.view),
		Categories: s.Categories(),
		Query:      s.query,
		Category:   s.category,
		Direction:  s.direction,
		Loaded:     s.loaded,
		LoadedAt:   s.loadedAt,
		LoadError:  s.loadError,
	}
}

func cloneCharacters(chars []character.Character) []character.Character {
	if len(chars) == 0 {
		return nil
	}
	dup := make([]character.Character, len(chars))
	copy(dup, chars)
	return dup
}
