// Package mapping reconciles a hotel's self-managed room catalog with the
// provider's independently numbered one. The two lists share no key
// except a human-entered name and an optional explicit cross reference,
// so everything here works on normalized names. All functions are pure.
package mapping

import (
	"fmt"
	"strings"
	"unicode"

	"innflow/models"
)

// matchThreshold is the minimum fuzzy-match confidence accepted by
// FindBestRoomMatch. Scores at or below it return no match.
const matchThreshold = 0.8

// roomSynonyms are generic "room" words, across the languages hotel
// staff actually type, that carry no identity and are dropped during
// normalization.
var roomSynonyms = map[string]struct{}{
	"room":         {},
	"rooms":        {},
	"habitacion":   {},
	"habitación":   {},
	"habitaciones": {},
	"chambre":      {},
	"zimmer":       {},
	"camera":       {},
	"quarto":       {},
	"kamer":        {},
}

// NormalizeRoomName lowercases, strips punctuation, collapses whitespace
// and removes generic room synonyms. Idempotent:
// NormalizeRoomName(NormalizeRoomName(s)) == NormalizeRoomName(s).
func NormalizeRoomName(name string) string {
	lowered := strings.ToLower(name)

	var b strings.Builder
	for _, r := range lowered {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	var kept []string
	for _, word := range strings.Fields(b.String()) {
		if _, generic := roomSynonyms[word]; generic {
			continue
		}
		kept = append(kept, word)
	}
	return strings.Join(kept, " ")
}

// MapRoomsByName joins each hotel room to the provider room whose
// explicit cross-reference ID matches or whose normalized name is equal.
// First match wins, no provider room is assigned twice, and unmatched
// hotel rooms are returned rather than dropped.
func MapRoomsByName(directusRooms []models.DirectusRoom, providerRooms []models.ProviderRoom) ([]models.MappedRoom, []models.DirectusRoom) {
	var mapped []models.MappedRoom
	var unmatched []models.DirectusRoom
	used := make(map[string]bool, len(providerRooms))

	for _, dr := range directusRooms {
		idx := -1
		if dr.PMSRoomID != "" {
			for i, pr := range providerRooms {
				if !used[pr.ID] && pr.ID == dr.PMSRoomID {
					idx = i
					break
				}
			}
		}
		if idx < 0 {
			want := NormalizeRoomName(dr.Name)
			for i, pr := range providerRooms {
				if !used[pr.ID] && NormalizeRoomName(pr.Name) == want {
					idx = i
					break
				}
			}
		}
		if idx < 0 {
			unmatched = append(unmatched, dr)
			continue
		}
		pr := providerRooms[idx]
		used[pr.ID] = true
		mapped = append(mapped, models.MappedRoom{
			Directus:     dr,
			Provider:     pr,
			CurrentPrice: pr.BaseRate,
			Available:    true,
		})
	}

	return mapped, unmatched
}

// FindBestRoomMatch scores every candidate against the target name with
// Levenshtein-derived similarity in [0,1] and returns the best one only
// when its confidence exceeds the threshold. Used for sync suggestions,
// never for automatic binding.
func FindBestRoomMatch(targetName string, candidates []models.ProviderRoom) *models.RoomMatch {
	target := NormalizeRoomName(targetName)
	if target == "" {
		return nil
	}

	best := -1
	bestScore := 0.0
	for i, c := range candidates {
		score := similarity(target, NormalizeRoomName(c.Name))
		if score > bestScore {
			bestScore = score
			best = i
		}
	}
	if best < 0 || bestScore <= matchThreshold {
		return nil
	}
	return &models.RoomMatch{Room: candidates[best], Confidence: bestScore}
}

// MappingStats runs one mapping pass and reports counts and the unmapped
// names on each side.
func MappingStats(directusRooms []models.DirectusRoom, providerRooms []models.ProviderRoom) models.RoomMappingStats {
	mapped, unmatched := MapRoomsByName(directusRooms, providerRooms)

	usedProvider := make(map[string]bool, len(mapped))
	for _, m := range mapped {
		usedProvider[m.Provider.ID] = true
	}

	stats := models.RoomMappingStats{
		TotalDirectus: len(directusRooms),
		TotalProvider: len(providerRooms),
		Mapped:        len(mapped),
	}
	for _, dr := range unmatched {
		stats.UnmappedDirectus = append(stats.UnmappedDirectus, dr.Name)
	}
	for _, pr := range providerRooms {
		if !usedProvider[pr.ID] {
			stats.UnmappedProvider = append(stats.UnmappedProvider, pr.Name)
		}
	}
	return stats
}

// ValidateRoomMapping flags unmappable catalogs: duplicate normalized
// names on either side are an ambiguity no name join can resolve, and
// zero mapped rooms means the catalogs do not correspond at all.
func ValidateRoomMapping(directusRooms []models.DirectusRoom, providerRooms []models.ProviderRoom) models.MappingValidation {
	var errs []string

	for _, dup := range duplicateNormalized(directusNames(directusRooms)) {
		errs = append(errs, fmt.Sprintf("duplicate room name in hotel catalog: %q", dup))
	}
	for _, dup := range duplicateNormalized(providerNames(providerRooms)) {
		errs = append(errs, fmt.Sprintf("duplicate room name in provider catalog: %q", dup))
	}

	if len(directusRooms) > 0 && len(providerRooms) > 0 {
		if mapped, _ := MapRoomsByName(directusRooms, providerRooms); len(mapped) == 0 {
			errs = append(errs, "no rooms could be mapped between the hotel and provider catalogs")
		}
	}

	return models.MappingValidation{Valid: len(errs) == 0, Errors: errs}
}

func directusNames(rooms []models.DirectusRoom) []string {
	names := make([]string, 0, len(rooms))
	for _, r := range rooms {
		names = append(names, r.Name)
	}
	return names
}

func providerNames(rooms []models.ProviderRoom) []string {
	names := make([]string, 0, len(rooms))
	for _, r := range rooms {
		names = append(names, r.Name)
	}
	return names
}

func duplicateNormalized(names []string) []string {
	seen := make(map[string]int, len(names))
	var dups []string
	for _, n := range names {
		norm := NormalizeRoomName(n)
		if norm == "" {
			continue
		}
		seen[norm]++
		if seen[norm] == 2 {
			dups = append(dups, norm)
		}
	}
	return dups
}

// similarity converts Levenshtein distance on the two strings into a
// score in [0,1], where 1 is an exact match.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	ra, rb := []rune(a), []rune(b)
	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein(ra, rb))/float64(longest)
}

func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = minInt(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func minInt(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
