package query

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/thronedex/internal/character"
)

func mustSorter(t *testing.T, locale string) *Sorter {
	t.Helper()
	s, err := NewSorter(locale)
	if err != nil {
		t.Fatalf("NewSorter(%q) returned error: %v", locale, err)
	}
	return s
}

func TestSorter_AscendingAndDescending(t *testing.T) {
	s := mustSorter(t, "en")
	chars := sampleCharacters()

	asc := s.Sort(chars, Ascending)
	if diff := cmp.Diff([]int{3, 2, 1}, ids(asc)); diff != "" {
		t.Fatalf("ascending (-want +got):\n%s", diff)
	}
	desc := s.Sort(chars, Descending)
	if diff := cmp.Diff([]int{1, 2, 3}, ids(desc)); diff != "" {
		t.Fatalf("descending (-want +got):\n%s", diff)
	}
}

func TestSorter_LocaleAwareIgnoresCaseAndAccents(t *testing.T) {
	s := mustSorter(t, "")
	chars := []character.Character{
		{ID: 1, LastName: "zed"},
		{ID: 2, LastName: "Émile"},
		{ID: 3, LastName: "bran"},
		{ID: 4, LastName: "Arya"},
	}
	got := s.Sort(chars, Ascending)
	if diff := cmp.Diff([]int{4, 3, 2, 1}, ids(got)); diff != "" {
		t.Fatalf("collated order (-want +got):\n%s", diff)
	}
}

func TestSorter_TiesBreakByID(t *testing.T) {
	s := mustSorter(t, "en")
	chars := []character.Character{
		{ID: 9, LastName: "Stark"},
		{ID: 2, LastName: "Stark"},
		{ID: 5, LastName: "Stark"},
	}
	for _, dir := range []Direction{Ascending, Descending} {
		if diff := cmp.Diff([]int{2, 5, 9}, ids(s.Sort(chars, dir))); diff != "" {
			t.Fatalf("%s ties (-want +got):\n%s", dir, diff)
		}
	}
}

func TestSorter_DoubleToggleRestoresOrder(t *testing.T) {
	s := mustSorter(t, "en")
	chars := sampleCharacters()
	dir := Ascending
	first := s.Sort(chars, dir)
	dir = dir.Toggle().Toggle()
	if diff := cmp.Diff(ids(first), ids(s.Sort(chars, dir))); diff != "" {
		t.Fatalf("double toggle (-want +got):\n%s", diff)
	}
}

func TestSorter_DoesNotMutateInput(t *testing.T) {
	s := mustSorter(t, "en")
	chars := sampleCharacters()
	_ = s.Sort(chars, Ascending)
	if diff := cmp.Diff([]int{1, 2, 3}, ids(chars)); diff != "" {
		t.Fatalf("input mutated (-want +got):\n%s", diff)
	}
}

func TestNewSorter_InvalidLocale(t *testing.T) {
	if _, err := NewSorter("not a locale!!"); err == nil {
		t.Fatalf("NewSorter returned nil error for invalid locale")
	}
}

func TestDirection(t *testing.T) {
	if Ascending.Toggle() != Descending || Descending.Toggle() != Ascending {
		t.Fatalf("Toggle is not an involution")
	}
	if Ascending.String() != "asc" || Descending.String() != "desc" {
		t.Fatalf("String() = %q/%q, want asc/desc", Ascending, Descending)
	}
	cases := []struct {
		in     string
		want   Direction
		wantOK bool
	}{
		{"asc", Ascending, true},
		{" DESC ", Descending, true},
		{"descending", Descending, true},
		{"", Ascending, false},
		{"sideways", Ascending, false},
	}
	for _, tc := range cases {
		got, ok := ParseDirection(tc.in)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("ParseDirection(%q) = %v, %v, want %v, %v", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}
