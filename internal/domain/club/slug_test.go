package club

import "testing"

func TestCreateSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain words", in: "Country Club Tennis", want: "country-club-tennis"},
		{name: "surrounding whitespace", in: "  Riverside  ", want: "riverside"},
		{name: "punctuation collapses", in: "St. Mary's -- Tennis & Racquet", want: "st-mary-s-tennis-racquet"},
		{name: "leading and trailing symbols", in: "!!Club 7!!", want: "club-7"},
		{name: "only symbols", in: "***", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CreateSlug(tc.in); got != tc.want {
				t.Fatalf("CreateSlug(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestIsValidSlug(t *testing.T) {
	tests := []struct {
		slug string
		want bool
	}{
		{slug: "country-club", want: true},
		{slug: "club7", want: true},
		{slug: "Country-Club", want: false},
		{slug: "-club", want: false},
		{slug: "club--a", want: false},
		{slug: "", want: false},
	}

	for _, tc := range tests {
		if got := IsValidSlug(tc.slug); got != tc.want {
			t.Fatalf("IsValidSlug(%q) = %v, want %v", tc.slug, got, tc.want)
		}
	}
}

func TestClub_MatchesSlug(t *testing.T) {
	stored := Club{ID: "c1", Name: "Renamed Club", Slug: "original-slug"}
	if !stored.MatchesSlug("ORIGINAL-SLUG") {
		t.Fatalf("expected case-insensitive match on stored slug")
	}
	if stored.MatchesSlug("renamed-club") {
		t.Fatalf("name-derived slug must not match when a slug is stored")
	}

	derived := Club{ID: "c2", Name: "Country Club Tennis"}
	if derived.EffectiveSlug() != "country-club-tennis" {
		t.Fatalf("unexpected effective slug: %q", derived.EffectiveSlug())
	}
	if !derived.MatchesSlug("Country-Club-Tennis") {
		t.Fatalf("expected match on slug derived from name when none is stored")
	}
	if derived.MatchesSlug("  ") {
		t.Fatalf("blank slug must not match")
	}
}
