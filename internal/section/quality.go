package section

import (
	"strings"
	"unicode"
)

// rejectFragments are instructional phrase fragments that mark a line as
// body content rather than a heading.
var rejectFragments = []string{
	"to save the completed", "choose save as from", "and rename the file",
	"you can change a", "by either using", "for microsoft office",
	"from the top toolbar", "select create a pdf",
}

// actionVerbs are verbs common in procedural section titles.
var actionVerbs = []string{
	"create", "change", "fill", "sign", "convert", "edit", "save",
	"export", "request", "send",
}

// danglingEndings reject fragments cut off mid-phrase.
var danglingEndings = []string{
	" the", " a", " an", " and", " or", " of", " in", " on", " at", " to", " for",
}

// IsQualityTitle reports whether a line qualifies as a section heading.
func IsQualityTitle(text string) bool {
	if len(text) < 5 || len(text) > 120 {
		return false
	}
	if len(strings.Fields(text)) > 15 {
		return false
	}

	lower := strings.ToLower(text)
	for _, frag := range rejectFragments {
		if strings.Contains(lower, frag) {
			return false
		}
	}
	for _, end := range danglingEndings {
		if strings.HasSuffix(lower, end) {
			return false
		}
	}

	if strings.HasSuffix(text, "?") {
		return true
	}
	for _, verb := range actionVerbs {
		if strings.Contains(lower, verb) {
			return true
		}
	}
	if isTitleCase(text) && !strings.HasSuffix(text, ".") {
		return true
	}

	return false
}

// isTitleCase reports whether every word's cased letters follow title
// rules: an uppercase first letter with no uppercase letters after it.
func isTitleCase(s string) bool {
	hasCased := false
	prevCased := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				return false
			}
			hasCased = true
			prevCased = true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}
			hasCased = true
		default:
			prevCased = false
		}
	}
	return hasCased
}
