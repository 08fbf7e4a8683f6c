// internal/game/state.go
//
// State aggregates everything a session owns: the playable word pool, the
// retired pool, the score and the stem ledger. Only the round evaluator's
// commit path and the terminal quit bonus mutate it.

package game

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Pool is a set of Words keyed by literal with ordered iteration.
type Pool struct {
	words map[string]Word
}

// NewPool returns an empty pool.
func NewPool() *Pool {
	return &Pool{words: map[string]Word{}}
}

// Contains reports membership by literal.
func (p *Pool) Contains(literal string) bool {
	_, ok := p.words[literal]
	return ok
}

// Insert adds a word; inserting an existing literal is a no-op.
func (p *Pool) Insert(w Word) {
	p.words[w.Literal] = w
}

// Remove deletes a word by literal and returns it.
func (p *Pool) Remove(literal string) (Word, bool) {
	w, ok := p.words[literal]
	if ok {
		delete(p.words, literal)
	}
	return w, ok
}

// Len returns the number of words in the pool.
func (p *Pool) Len() int {
	return len(p.words)
}

// Ordered returns the pool's words sorted by literal.
func (p *Pool) Ordered() []Word {
	out := make([]Word, 0, len(p.words))
	for _, w := range p.words {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Literal < out[j].Literal })
	return out
}

// Literals returns the pool's word literals sorted ascending.
func (p *Pool) Literals() []string {
	words := p.Ordered()
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Literal
	}
	return out
}

// State is the whole game: current and prior pools, score, used stems.
type State struct {
	SessionID string
	Current   *Pool
	Prior     *Pool
	Ledger    *StemLedger
	Score     uint
	finished  bool
}

// NewState seeds a session with one starting word. The seed's own stems are
// pre-claimed so they can never be rediscovered for credit.
func NewState(seed Word, seedStems []string) *State {
	s := &State{
		SessionID: uuid.NewString(),
		Current:   NewPool(),
		Prior:     NewPool(),
		Ledger:    NewStemLedger(),
	}
	s.Current.Insert(seed)
	s.Ledger.InsertAll(seedStems)
	return s
}

// Seed starts a session from a player-chosen or randomly drawn literal.
// The word must be exactly three letters and recognized by the oracle.
func Seed(oracle Oracle, literal string) (*State, error) {
	w, err := NewWord(literal)
	if err != nil {
		return nil, err
	}
	if len(w.Literal) != minWordLen {
		return nil, fmt.Errorf("game: seed %q must be exactly %d letters", literal, minWordLen)
	}
	if !oracle.IsWord(w.Literal) {
		return nil, fmt.Errorf("game: seed %q is not a recognized word", literal)
	}
	return NewState(w, oracle.Stems(w.Literal)), nil
}

// Finished reports whether the terminal bonus has been applied.
func (s *State) Finished() bool {
	return s.finished
}

// FinishBonus credits every word still in the current pool with its length
// delta and returns the final score. The state accepts no further turns.
// Calling it again returns the same score without re-crediting.
func (s *State) FinishBonus() uint {
	if s.finished {
		return s.Score
	}
	s.finished = true
	for _, w := range s.Current.Ordered() {
		s.Score += uint(len(w.Literal) - minWordLen)
	}
	return s.Score
}
