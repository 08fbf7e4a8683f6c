// internal/lexicon/morph.go
//
// Rule-based morphological reduction in the style of WordNet's morphy:
// irregular exceptions first, then per-category suffix detachment rules
// whose output must be a known base form in that category.

package lexicon

import "strings"

// detachment is one suffix rewrite tried during reduction.
type detachment struct {
	suffix string
	ending string
}

// detachments lists the candidate suffix rewrites per category, tried in
// order. The first rewrite producing a known lemma wins.
var detachments = [categoryCount][]detachment{
	Noun: {
		{"ses", "s"},
		{"xes", "x"},
		{"zes", "z"},
		{"ches", "ch"},
		{"shes", "sh"},
		{"ies", "y"},
		{"men", "man"},
		{"s", ""},
	},
	Verb: {
		{"ies", "y"},
		{"ing", "e"},
		{"ing", ""},
		{"ed", "e"},
		{"ed", ""},
		{"es", "e"},
		{"es", ""},
		{"s", ""},
	},
	Adjective: {
		{"est", ""},
		{"est", "e"},
		{"er", ""},
		{"er", "e"},
	},
	Adverb: nil,
}

// morph reduces word to its base form in the given category. It returns ""
// when no reduction applies, which includes the case where word is already
// a base form.
func (l *Lexicon) morph(word string, cat Category) string {
	if base, ok := l.exceptions[cat][word]; ok && base != word {
		return base
	}
	for _, d := range detachments[cat] {
		if !strings.HasSuffix(word, d.suffix) {
			continue
		}
		base := word[:len(word)-len(d.suffix)] + d.ending
		if base == word || len(base) == 0 {
			continue
		}
		if l.isLemma(base, cat) {
			return base
		}
		// Doubled-consonant inflections: tanned -> tann -> tan.
		if u := undouble(base); u != "" && l.isLemma(u, cat) {
			return u
		}
	}
	return ""
}

// undouble drops the last letter of a doubled final consonant, returning ""
// when the word does not end in one.
func undouble(word string) string {
	n := len(word)
	if n < 2 || word[n-1] != word[n-2] {
		return ""
	}
	switch word[n-1] {
	case 'a', 'e', 'i', 'o', 'u':
		return ""
	}
	return word[:n-1]
}
