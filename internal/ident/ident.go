package ident

import (
	"fmt"
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Slug derives an amenity identifier from its display name: lower-cased,
// with runs of whitespace collapsed to single hyphens.
func Slug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	return whitespaceRe.ReplaceAllString(s, "-")
}

// UniqueSlug returns Slug(name), appending "-2", "-3", ... until the result
// is not already taken. Two amenities whose names normalize to the same
// slug therefore never collide.
func UniqueSlug(name string, taken func(string) bool) string {
	base := Slug(name)
	if !taken(base) {
		return base
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s-%d", base, n)
		if !taken(candidate) {
			return candidate
		}
	}
}

// ResidentID formats a resident sequence number as a zero-padded id such
// as "R006". The sequence is monotonic: it never shrinks after deletions,
// so ids are never reused.
func ResidentID(seq int) string {
	return fmt.Sprintf("R%03d", seq)
}
