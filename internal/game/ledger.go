package game

import "strings"

// StemLedger records every stem ever credited during a game. Entries only
// accumulate; there is no removal. Membership checks happen throughout a
// turn, insertion only after the whole turn is confirmed valid.
type StemLedger struct {
	used map[string]struct{}
}

// NewStemLedger returns an empty ledger.
func NewStemLedger() *StemLedger {
	return &StemLedger{used: map[string]struct{}{}}
}

// Contains reports whether stem has already been credited.
func (l *StemLedger) Contains(stem string) bool {
	_, ok := l.used[strings.ToLower(stem)]
	return ok
}

// InsertAll merges stems into the ledger.
func (l *StemLedger) InsertAll(stems []string) {
	for _, s := range stems {
		l.used[strings.ToLower(s)] = struct{}{}
	}
}

// Len returns the number of credited stems.
func (l *StemLedger) Len() int {
	return len(l.used)
}
