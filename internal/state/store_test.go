package state

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/thronedex/internal/character"
	"github.com/five82/thronedex/internal/query"
)

func TestNewStore_Defaults(t *testing.T) {
	s := NewStore()
	if s.Category() != character.AllCategories {
		t.Fatalf("Category() = %q, want %q", s.Category(), character.AllCategories)
	}
	if s.Direction() != query.Ascending {
		t.Fatalf("Direction() = %v, want Ascending", s.Direction())
	}
	if diff := cmp.Diff([]string{"All"}, s.Categories()); diff != "" {
		t.Fatalf("Categories (-want +got):\n%s", diff)
	}
	snap := s.Snapshot()
	if snap.Loaded || !snap.Empty() {
		t.Fatalf("fresh snapshot = %#v, want unloaded and empty", snap)
	}
}

func TestStore_LoadDerivesCategories(t *testing.T) {
	s := NewStore()
	before := time.Now()
	s.Load([]character.Character{
		{ID: 1, Family: "Stark"},
		{ID: 2, Family: "Lannister"},
	}, nil)

	snap := s.Snapshot()
	if !snap.Loaded || snap.LoadedAt.Before(before) {
		t.Fatalf("snapshot Loaded=%v LoadedAt=%v, want loaded after %v", snap.Loaded, snap.LoadedAt, before)
	}
	if diff := cmp.Diff([]string{"All", "Lannister", "Stark"}, snap.Categories); diff != "" {
		t.Fatalf("Categories (-want +got):\n%s", diff)
	}
	if len(snap.Characters) != 2 {
		t.Fatalf("Characters = %d, want 2", len(snap.Characters))
	}
}

func TestStore_LoadErrorClearsList(t *testing.T) {
	s := NewStore()
	s.Load([]character.Character{{ID: 1, Family: "Stark"}}, nil)
	s.Load(nil, errors.New("boom"))

	snap := s.Snapshot()
	if snap.LoadError == nil || snap.LoadError.Error() != "boom" {
		t.Fatalf("LoadError = %v, want boom", snap.LoadError)
	}
	if len(snap.Characters) != 0 {
		t.Fatalf("Characters = %d, want 0 after failed load", len(snap.Characters))
	}
	if diff := cmp.Diff([]string{"All"}, snap.Categories); diff != "" {
		t.Fatalf("Categories (-want +got):\n%s", diff)
	}
}

func TestStore_SnapshotClones(t *testing.T) {
	s := NewStore()
	s.Load([]character.Character{{ID: 1}, {ID: 2}}, nil)
	s.SetView([]character.Character{{ID: 2}})

	snap := s.Snapshot()
	snap.Characters[0].ID = 999
	snap.View[0].ID = 999
	snap.Categories[0] = "changed"

	again := s.Snapshot()
	if again.Characters[0].ID != 1 || again.View[0].ID != 2 || again.Categories[0] != "All" {
		t.Fatalf("Snapshot should clone; got %#v", again)
	}
}

func TestStore_EmptyCategorySelectsAll(t *testing.T) {
	s := NewStore()
	s.SetCategory("Stark")
	s.SetCategory("")
	if s.Category() != character.AllCategories {
		t.Fatalf("Category() = %q, want All", s.Category())
	}
}
