// Package strings provides string manipulation utilities.
package strings

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// FirstToken returns the first whitespace-separated token of s, trimmed.
// Returns "" for blank input.
//
// Example:
//
//	FirstToken("  Maria da Silva ")
//	// Returns: "Maria"
func FirstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// StripTags removes anything that looks like HTML/XML markup from s and trims
// the result. It is a belt-and-suspenders cleanup for free-text form fields
// before they leave the client; the server treats its input as data, never as
// markup.
//
// Example:
//
//	StripTags("hello <b>world</b>")
//	// Returns: "hello world"
func StripTags(s string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(s, ""))
}
