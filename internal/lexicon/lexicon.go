// internal/lexicon/lexicon.go
//
// The lexicon answers the two questions the game engine asks: is this a real
// word, and what are its dictionary base forms. It is built from three
// read-only resources loaded once at startup: a dictionary word set, a lemma
// index (which words are base forms in which grammatical category), and a
// morphological exception list for irregular inflections.

package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Category is a grammatical category a base form can belong to.
type Category int

const (
	Noun Category = iota
	Verb
	Adjective
	Adverb
	categoryCount
)

var categoryNames = map[string]Category{
	"n":   Noun,
	"v":   Verb,
	"adj": Adjective,
	"adv": Adverb,
}

// DefaultMaxWordLen is the sanity limit on looked-up word length. The limit
// is configurable; it protects nothing but log readability.
const DefaultMaxWordLen = 128

// Lexicon holds the loaded dictionary and morphology resources.
type Lexicon struct {
	dictionary map[string]struct{}
	lemmas     [categoryCount]map[string]struct{}
	exceptions [categoryCount]map[string]string
	maxWordLen int
}

// Option adjusts lexicon construction.
type Option func(*Lexicon)

// WithMaxWordLen overrides the word-length sanity limit.
func WithMaxWordLen(n int) Option {
	return func(l *Lexicon) {
		if n > 0 {
			l.maxWordLen = n
		}
	}
}

// Load builds a Lexicon. Any path left empty falls back to the embedded
// default resource. Load failures are startup-fatal to the caller; the
// lexicon itself is read-only after this returns.
func Load(dictPath, lemmaPath, exceptionPath string, opts ...Option) (*Lexicon, error) {
	l := &Lexicon{
		dictionary: map[string]struct{}{},
		maxWordLen: DefaultMaxWordLen,
	}
	for c := Category(0); c < categoryCount; c++ {
		l.lemmas[c] = map[string]struct{}{}
		l.exceptions[c] = map[string]string{}
	}
	for _, opt := range opts {
		opt(l)
	}

	if err := l.readResource(dictPath, embeddedDictionary, l.addDictionaryLine); err != nil {
		return nil, fmt.Errorf("lexicon: load dictionary: %w", err)
	}
	if err := l.readResource(lemmaPath, embeddedLemmas, l.addLemmaLine); err != nil {
		return nil, fmt.Errorf("lexicon: load lemma index: %w", err)
	}
	if err := l.readResource(exceptionPath, embeddedExceptions, l.addExceptionLine); err != nil {
		return nil, fmt.Errorf("lexicon: load exceptions: %w", err)
	}
	if len(l.dictionary) == 0 {
		return nil, fmt.Errorf("lexicon: dictionary is empty")
	}
	return l, nil
}

// readResource feeds each non-comment line of a file (or the embedded
// fallback when path is empty) to add.
func (l *Lexicon) readResource(path, fallback string, add func(string) error) error {
	var r io.Reader
	if path == "" {
		r = strings.NewReader(fallback)
	} else {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := add(strings.ToLower(line)); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// addDictionaryLine records one spelled word per line.
func (l *Lexicon) addDictionaryLine(line string) error {
	word := strings.TrimSpace(line)
	if !isLowerAlpha(word) {
		return fmt.Errorf("dictionary entry %q is not alphabetic", line)
	}
	l.dictionary[word] = struct{}{}
	return nil
}

// addLemmaLine records "word cat..." marking word as a base form in each
// listed category, e.g. "act n v".
func (l *Lexicon) addLemmaLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return fmt.Errorf("lemma entry %q needs a word and at least one category", line)
	}
	word := fields[0]
	if !isLowerAlpha(word) {
		return fmt.Errorf("lemma entry %q is not alphabetic", word)
	}
	for _, tag := range fields[1:] {
		cat, ok := categoryNames[tag]
		if !ok {
			return fmt.Errorf("lemma entry %q has unknown category %q", line, tag)
		}
		l.lemmas[cat][word] = struct{}{}
	}
	return nil
}

// addExceptionLine records "inflected base cat" for irregular forms,
// e.g. "ran run v".
func (l *Lexicon) addExceptionLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return fmt.Errorf("exception entry %q needs inflected, base and category", line)
	}
	cat, ok := categoryNames[fields[2]]
	if !ok {
		return fmt.Errorf("exception entry %q has unknown category %q", line, fields[2])
	}
	l.exceptions[cat][fields[0]] = fields[1]
	return nil
}

// IsWord reports whether s is a lowercase alphabetic dictionary word within
// the length limit.
func (l *Lexicon) IsWord(s string) bool {
	if len(s) > l.maxWordLen || !isLowerAlpha(s) {
		return false
	}
	_, ok := l.dictionary[s]
	return ok
}

// isLemma reports whether word is a known base form in the given category.
func (l *Lexicon) isLemma(word string, cat Category) bool {
	_, ok := l.lemmas[cat][word]
	return ok
}

// Stems returns the dictionary base forms of s, or nil when s is not a
// recognized word.
//
// For each grammatical category the word is first reduced morphologically
// (irregular exceptions, then detachment rules validated against the lemma
// index). A reduction that changes the word contributes a stem. When no
// reduction applies but the word is itself a known base form in the
// category, the rule-based stemmer is flagged; after the category loop it
// runs once on the original word and everything it returns is merged in.
// The result is deduplicated and sorted.
func (l *Lexicon) Stems(s string) []string {
	word := strings.ToLower(s)
	if !l.IsWord(word) {
		return nil
	}

	set := map[string]struct{}{}
	runStemmer := false
	for cat := Category(0); cat < categoryCount; cat++ {
		base := l.morph(word, cat)
		if base == "" {
			if l.isLemma(word, cat) {
				runStemmer = true
			}
			continue
		}
		set[base] = struct{}{}
	}
	if runStemmer {
		for _, stem := range l.stem(word) {
			set[stem] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}

	stems := make([]string, 0, len(set))
	for stem := range set {
		stems = append(stems, stem)
	}
	sort.Strings(stems)
	return stems
}

func isLowerAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
