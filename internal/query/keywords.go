package query

import (
	"regexp"
	"sort"
	"strings"
)

var wordRe = regexp.MustCompile(`\b\w{3,}\b`)

// Domain trigger terms and their fixed expansion vocabularies. The first
// matching domain wins.
var domainExpansions = []struct {
	triggers []string
	terms    []string
}{
	{
		triggers: []string{"hr", "professional", "form", "onboarding", "compliance", "acrobat"},
		terms: []string{
			"form", "forms", "fillable", "fill", "sign", "signature", "create", "manage",
			"acrobat", "pdf", "interactive", "field", "prepare", "tool", "employee",
			"professional", "document", "request", "send", "edit", "convert", "export",
		},
	},
	{
		triggers: []string{"travel", "trip", "planner", "vacation", "tourism"},
		terms: []string{
			"travel", "trip", "hotel", "restaurant", "city", "guide", "activity",
			"culture", "food", "entertainment", "coast", "beach", "experience",
		},
	},
	{
		triggers: []string{"food", "menu", "recipe", "contractor", "buffet", "vegetarian"},
		terms: []string{
			"food", "recipe", "ingredient", "cooking", "meal", "dish", "vegetarian",
			"menu", "buffet", "dinner", "preparation", "serve",
		},
	},
}

var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true, "not": true,
	"you": true, "all": true, "can": true, "had": true, "her": true, "was": true,
	"one": true, "our": true, "out": true, "day": true, "get": true, "has": true,
	"him": true, "his": true, "how": true, "its": true, "may": true, "new": true,
	"now": true, "old": true, "see": true, "two": true, "who": true, "boy": true,
	"did": true, "man": true, "end": true, "few": true, "got": true, "let": true,
	"put": true, "say": true, "she": true, "too": true, "use": true, "way": true,
	"try": true, "ask": true, "big": true, "own": true, "run": true, "off": true,
	"set": true, "why": true, "yet": true, "will": true,
}

// Mine extracts and domain-expands keywords from the persona text, the
// job text, and the corpus filenames. The result is sorted for
// deterministic iteration; consumers treat it as a set.
func Mine(persona, job string, filenames []string) []string {
	keywords := make(map[string]bool)

	for _, w := range wordRe.FindAllString(strings.ToLower(persona), -1) {
		keywords[w] = true
	}
	for _, w := range wordRe.FindAllString(strings.ToLower(job), -1) {
		keywords[w] = true
	}
	for _, name := range filenames {
		cleaned := strings.NewReplacer("-", " ", "_", " ").Replace(strings.ToLower(name))
		for _, w := range wordRe.FindAllString(cleaned, -1) {
			keywords[w] = true
		}
	}

	combined := strings.ToLower(persona + " " + job)
	for _, domain := range domainExpansions {
		if containsAny(combined, domain.triggers) {
			for _, term := range domain.terms {
				keywords[term] = true
			}
			break
		}
	}

	var out []string
	for kw := range keywords {
		if !stopWords[kw] {
			out = append(out, kw)
		}
	}
	sort.Strings(out)
	return out
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
