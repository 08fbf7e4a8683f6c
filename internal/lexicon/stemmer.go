// internal/lexicon/stemmer.go
//
// The secondary stemmer backs up morphological reduction for words that are
// already base forms. It strips common inflectional suffixes and keeps every
// result that is itself a dictionary word, always including the input word
// (a base form is its own stem).

package lexicon

import "strings"

// stemSuffixes are the inflectional endings the stemmer tries to strip.
// Each rewrite is kept only when the result is a dictionary word.
var stemSuffixes = []detachment{
	{"ies", "y"},
	{"ches", "ch"},
	{"shes", "sh"},
	{"ing", "e"},
	{"ing", ""},
	{"ed", "e"},
	{"ed", ""},
	{"es", "e"},
	{"es", ""},
	{"s", ""},
	{"est", ""},
	{"er", ""},
	{"ly", ""},
}

// stem returns the dictionary-valid stems of word, including word itself.
func (l *Lexicon) stem(word string) []string {
	stems := []string{word}
	for _, d := range stemSuffixes {
		if !strings.HasSuffix(word, d.suffix) {
			continue
		}
		base := word[:len(word)-len(d.suffix)] + d.ending
		if base == word || base == "" {
			continue
		}
		if _, ok := l.dictionary[base]; ok && !contains(stems, base) {
			stems = append(stems, base)
		}
		if u := undouble(base); u != "" {
			if _, ok := l.dictionary[u]; ok && !contains(stems, u) {
				stems = append(stems, u)
			}
		}
	}
	return stems
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
