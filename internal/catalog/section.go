package catalog

import (
	"strings"

	"github.com/hafizsameer11/optyshop-admin-sub000/internal/domain"
	applog "github.com/hafizsameer11/optyshop-admin-sub000/internal/log"
)

// The product screen's sections resolve onto live categories by name. The
// backend carries no section tag, so the mapping is a fixed pattern table
// over normalized names/slugs. PatternTableVersion changes whenever the
// table does, so persisted page state from an older table can be discarded.
const PatternTableVersion = 1

var sectionPatterns = map[domain.Section][]string{
	domain.SectionSunglasses:    {"sun glasses", "sunglasses", "sun-glasses", "sunglass"},
	domain.SectionEyeglasses:    {"eye glasses", "eyeglasses", "eye-glasses", "eyeglass", "optical"},
	domain.SectionContactLenses: {"contact lenses", "contact lens", "contact-lenses", "contactlens"},
	domain.SectionEyeHygiene:    {"eye hygiene", "eyehygiene", "eye-hygiene", "hygiene", "eye care", "eyecare"},
}

// normalizeName lowercases and strips spaces and hyphens so "Sun-Glasses",
// "sun glasses" and "sunglasses" all compare equal.
func normalizeName(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	return s
}

// MatchCategories resolves a section onto the ids of the loaded categories
// whose name or slug fits the section's patterns. Rules beyond the table:
//
//   - opty-kids matches only categories containing both "opty" and "kids";
//   - eyeglasses excludes any category containing both "opty" and "kids";
//   - contact-lenses additionally accepts "contact" together with "lens" or
//     "lera" (a partial non-English label seen in production data).
//
// An empty result is logged as an error; the product screen then renders
// empty instead of falling back to all products.
func MatchCategories(section domain.Section, categories []domain.Category) []int64 {
	if section == domain.SectionAll {
		return nil
	}

	var ids []int64
	for _, cat := range categories {
		if categoryMatches(section, cat) {
			ids = append(ids, cat.ID.Int64())
		}
	}
	if len(ids) == 0 {
		applog.Error(nil, "catalog.section.no_match", nil, map[string]any{
			"section":    string(section),
			"categories": len(categories),
		})
	}
	return ids
}

func categoryMatches(section domain.Section, cat domain.Category) bool {
	var names []string
	if n := normalizeName(cat.Name); n != "" {
		names = append(names, n)
	}
	if s := normalizeName(cat.Slug); s != "" {
		names = append(names, s)
	}
	if len(names) == 0 {
		return false
	}

	if section == domain.SectionOptyKids {
		return containsAny(names, "opty") && containsAny(names, "kids")
	}
	if section == domain.SectionEyeglasses &&
		containsAny(names, "opty") && containsAny(names, "kids") {
		return false
	}

	for _, pat := range sectionPatterns[section] {
		p := normalizeName(pat)
		for _, n := range names {
			if n == p {
				return true
			}
			if strings.Contains(n, p) || strings.Contains(p, n) {
				return true
			}
		}
	}

	if section == domain.SectionContactLenses &&
		containsAny(names, "contact") &&
		(containsAny(names, "lens") || containsAny(names, "lera")) {
		return true
	}
	return false
}

func containsAny(names []string, token string) bool {
	for _, n := range names {
		if strings.Contains(n, token) {
			return true
		}
	}
	return false
}
