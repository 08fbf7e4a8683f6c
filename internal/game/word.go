// internal/game/word.go
//
// Word is the unit the whole game trades in: a lowercase alphabetic literal
// with its letters pre-sorted so anagram checks never re-sort the source side.

package game

import (
	"fmt"
	"sort"
	"strings"
)

// Word pairs a normalized literal with its sorted-letters form.
// Words order by literal so pool iteration is deterministic.
type Word struct {
	Literal string
	Sorted  string
}

// NewWord validates and normalizes a raw token into a Word.
// The literal must be non-empty and entirely ASCII letters; it is lowercased.
func NewWord(raw string) (Word, error) {
	literal := strings.ToLower(strings.TrimSpace(raw))
	if literal == "" {
		return Word{}, fmt.Errorf("game: empty word")
	}
	if !IsLowerAlpha(literal) {
		return Word{}, fmt.Errorf("game: word %q is not alphabetic", raw)
	}
	return Word{Literal: literal, Sorted: sortLetters(literal)}, nil
}

// MustWord is a test and seed-data convenience; it panics on invalid input.
func MustWord(raw string) Word {
	w, err := NewWord(raw)
	if err != nil {
		panic(err)
	}
	return w
}

// OneLetterMore reports whether the candidates' combined letters are exactly
// this word's letters plus one extra letter.
//
// Both sides are compared as sorted multisets with two cursors: matching
// characters advance both cursors, a mismatch advances only the combined
// side, and a second unmatched character means failure. Duplicate letters
// fall out naturally from the multiset comparison.
func (w Word) OneLetterMore(candidates []string) bool {
	combined := strings.ToLower(strings.Join(candidates, ""))
	if len(combined)-len(w.Sorted) != 1 {
		return false
	}
	sorted := sortLetters(combined)
	i, j := 0, 0
	for i < len(w.Sorted) && j < len(sorted) {
		if w.Sorted[i] == sorted[j] {
			i++
			j++
			continue
		}
		if j-i > 1 {
			return false
		}
		j++
	}
	return i == len(w.Sorted)
}

// IsLowerAlpha reports whether s is non-empty and all lowercase ASCII a-z.
func IsLowerAlpha(s string) bool {
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

func sortLetters(s string) string {
	letters := []byte(s)
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return string(letters)
}
