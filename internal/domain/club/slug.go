package club

import (
	"regexp"
	"strings"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
	slugPattern  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// CreateSlug derives a URL-safe identifier from a display name.
func CreateSlug(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

func IsValidSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}

// MatchesSlug reports whether slug equals the club's effective slug,
// ignoring case. A name-derived slug only counts when none is stored.
func (c Club) MatchesSlug(slug string) bool {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return false
	}
	return strings.ToLower(c.EffectiveSlug()) == slug
}
