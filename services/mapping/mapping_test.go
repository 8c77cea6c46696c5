package mapping

import (
	"testing"

	"innflow/models"
)

func TestNormalizeRoomNameIdempotent(t *testing.T) {
	inputs := []string{
		"Deluxe Room",
		"  Habitación   Doble ",
		"Suite Premium!!!",
		"chambre-supérieure",
		"ZIMMER 12",
		"",
		"room",
	}
	for _, in := range inputs {
		once := NormalizeRoomName(in)
		twice := NormalizeRoomName(once)
		if once != twice {
			t.Fatalf("normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalizeRoomNameDropsSynonymsAndPunctuation(t *testing.T) {
	cases := map[string]string{
		"Deluxe Room":          "deluxe",
		"Habitación Doble":     "doble",
		"  Twin   Room  ":      "twin",
		"Suite, Junior!":       "suite junior",
		"Chambre Deluxe (Vue)": "deluxe vue",
	}
	for in, want := range cases {
		if got := NormalizeRoomName(in); got != want {
			t.Fatalf("NormalizeRoomName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMapRoomsByNameMatchesNormalizedNames(t *testing.T) {
	directus := []models.DirectusRoom{
		{ID: "d1", Name: "Deluxe Room"},
		{ID: "d2", Name: "Junior Suite"},
		{ID: "d3", Name: "Penthouse"},
	}
	provider := []models.ProviderRoom{
		{ID: "p1", Name: "Habitación Deluxe"},
		{ID: "p2", Name: "Junior Suite"},
	}

	mapped, unmatched := MapRoomsByName(directus, provider)
	if len(mapped) != 2 {
		t.Fatalf("expected 2 mapped rooms, got %d", len(mapped))
	}
	if mapped[0].Provider.ID != "p1" || mapped[1].Provider.ID != "p2" {
		t.Fatalf("unexpected provider assignment: %+v", mapped)
	}
	if len(unmatched) != 1 || unmatched[0].ID != "d3" {
		t.Fatalf("expected d3 unmatched, got %+v", unmatched)
	}
}

func TestMapRoomsByNamePrefersExplicitCrossReference(t *testing.T) {
	directus := []models.DirectusRoom{
		{ID: "d1", Name: "Totally Different Name", PMSRoomID: "p2"},
	}
	provider := []models.ProviderRoom{
		{ID: "p1", Name: "Totally Different Name"},
		{ID: "p2", Name: "Whatever"},
	}

	mapped, _ := MapRoomsByName(directus, provider)
	if len(mapped) != 1 || mapped[0].Provider.ID != "p2" {
		t.Fatalf("expected explicit cross reference to win, got %+v", mapped)
	}
}

func TestMapRoomsByNameNeverReusesProviderRoom(t *testing.T) {
	directus := []models.DirectusRoom{
		{ID: "d1", Name: "Deluxe"},
		{ID: "d2", Name: "Deluxe Room"},
	}
	provider := []models.ProviderRoom{
		{ID: "p1", Name: "Deluxe"},
	}

	mapped, unmatched := MapRoomsByName(directus, provider)
	if len(mapped) != 1 {
		t.Fatalf("expected exactly 1 mapped room, got %d", len(mapped))
	}
	if len(unmatched) != 1 {
		t.Fatalf("expected 1 unmatched room, got %d", len(unmatched))
	}

	seen := map[string]bool{}
	for _, m := range mapped {
		if seen[m.Provider.ID] {
			t.Fatalf("provider room %s assigned twice", m.Provider.ID)
		}
		seen[m.Provider.ID] = true
	}
}

func TestFindBestRoomMatchThreshold(t *testing.T) {
	candidates := []models.ProviderRoom{
		{ID: "p1", Name: "Deluxe King"},
		{ID: "p2", Name: "Standard Twin"},
	}

	if m := FindBestRoomMatch("Deluxe Kings", candidates); m == nil {
		t.Fatal("expected near-exact name to match")
	} else if m.Room.ID != "p1" {
		t.Fatalf("expected p1, got %s", m.Room.ID)
	} else if m.Confidence <= 0.8 {
		t.Fatalf("accepted match must exceed 0.8, got %f", m.Confidence)
	}

	if m := FindBestRoomMatch("Oceanfront Villa", candidates); m != nil {
		t.Fatalf("expected no match for dissimilar name, got %+v", m)
	}

	if m := FindBestRoomMatch("", candidates); m != nil {
		t.Fatalf("expected no match for empty name, got %+v", m)
	}
}

func TestMappingStatsAccounting(t *testing.T) {
	directus := []models.DirectusRoom{
		{ID: "d1", Name: "Deluxe"},
		{ID: "d2", Name: "Junior Suite"},
		{ID: "d3", Name: "Attic"},
	}
	provider := []models.ProviderRoom{
		{ID: "p1", Name: "Deluxe Room"},
		{ID: "p2", Name: "Junior Suite"},
		{ID: "p3", Name: "Garden View"},
	}

	stats := MappingStats(directus, provider)
	if stats.Mapped+len(stats.UnmappedDirectus) != stats.TotalDirectus {
		t.Fatalf("directus accounting broken: %+v", stats)
	}
	if stats.Mapped+len(stats.UnmappedProvider) != stats.TotalProvider {
		t.Fatalf("provider accounting broken: %+v", stats)
	}
	if stats.Mapped != 2 {
		t.Fatalf("expected 2 mapped, got %d", stats.Mapped)
	}
}

func TestValidateRoomMappingFlagsDuplicates(t *testing.T) {
	directus := []models.DirectusRoom{
		{ID: "d1", Name: "Deluxe Room"},
		{ID: "d2", Name: "Deluxe"},
	}
	provider := []models.ProviderRoom{
		{ID: "p1", Name: "Deluxe"},
	}

	v := ValidateRoomMapping(directus, provider)
	if v.Valid {
		t.Fatalf("expected duplicate normalized names to invalidate: %+v", v)
	}
}

func TestValidateRoomMappingFlagsZeroMapped(t *testing.T) {
	directus := []models.DirectusRoom{{ID: "d1", Name: "Attic Loft"}}
	provider := []models.ProviderRoom{{ID: "p1", Name: "Garden View"}}

	v := ValidateRoomMapping(directus, provider)
	if v.Valid {
		t.Fatal("expected zero mapped rooms to invalidate")
	}
}

func TestValidateRoomMappingAcceptsCleanCatalogs(t *testing.T) {
	directus := []models.DirectusRoom{{ID: "d1", Name: "Deluxe"}}
	provider := []models.ProviderRoom{{ID: "p1", Name: "Deluxe Room"}}

	v := ValidateRoomMapping(directus, provider)
	if !v.Valid {
		t.Fatalf("expected valid mapping, got errors: %v", v.Errors)
	}
}
