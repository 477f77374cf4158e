// Package slug provides URL-friendly slug generation, used to backfill the
// SEO slug when the model returns an empty one.
package slug

import (
	"regexp"
	"strings"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "iPhone 17: First Look!" → "iphone-17-first-look"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}
