// File: /utils/slug.go
package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces  = regexp.MustCompile(`[\s-]+`)
)

// Slugify derives a URL-safe identifier from a display name:
// lowercase, alphanumerics only, runs of whitespace/hyphens collapsed
// to a single hyphen. "Hunter 350" -> "hunter-350".
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
