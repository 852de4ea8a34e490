package service

import (
	"regexp"
	"strings"
	"teamhumanity/story-api/internal/model"
)

// Stories are addressed by a slug derived from the name on every lookup.
// There is no slug column: two names that slugify identically resolve to
// whichever comes first in listing order.

var (
	slugQuotes     = regexp.MustCompile(`['"]`)
	slugDisallowed = regexp.MustCompile(`[^a-z0-9\x{0600}-\x{06FF}\s-]`)
	slugWhitespace = regexp.MustCompile(`\s+`)
	slugHyphens    = regexp.MustCompile(`-+`)
)

// Slugify lowercases the name and reduces it to letters, digits, Arabic
// script and hyphens. Whitespace runs become a single hyphen.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugQuotes.ReplaceAllString(s, "")
	s = slugDisallowed.ReplaceAllString(s, "")
	s = slugWhitespace.ReplaceAllString(s, "-")

	return slugHyphens.ReplaceAllString(s, "-")
}

// ResolveSlug scans the candidates in order and returns the id of the
// first story whose name slugifies to slug. The caller is expected to
// pass an already filtered (published) and bounded candidate set.
func ResolveSlug(slug string, candidates []model.Story) (uint, bool) {
	for _, story := range candidates {
		if Slugify(story.Name) == slug {
			return story.ID, true
		}
	}

	return 0, false
}
