// internal/game/round.go
//
// The round evaluator runs one turn: parse the submitted line, check the
// anagram relationship, resolve every candidate's stems against the ledger,
// and either commit the whole move or reject it with no state change.

package game

import (
	"fmt"
	"strings"
)

// minWordLen is the floor for playable words; scoring counts letters gained
// beyond it.
const minWordLen = 3

// RejectReason classifies why a turn was refused.
type RejectReason string

const (
	ReasonNotCurrentWord RejectReason = "not_current_word"
	ReasonNoCandidates   RejectReason = "no_candidates"
	ReasonBadCandidate   RejectReason = "bad_candidate"
	ReasonNotAnagram     RejectReason = "not_anagram"
	ReasonNotAWord       RejectReason = "not_a_word"
	ReasonStemUsed       RejectReason = "stem_used"
	ReasonStemClaimed    RejectReason = "stem_claimed_this_turn"
)

// Rejection is a recoverable, user-visible turn refusal. The game state is
// untouched whenever one is returned.
type Rejection struct {
	Reason RejectReason
	Token  string
}

func (r *Rejection) Error() string {
	switch r.Reason {
	case ReasonNotCurrentWord:
		return fmt.Sprintf("'%s' is not a current word", r.Token)
	case ReasonNoCandidates:
		return "need at least one word after the chosen one"
	case ReasonBadCandidate:
		return fmt.Sprintf("'%s' is not alphabetic or is too short", r.Token)
	case ReasonNotAnagram:
		return "not a valid anagram plus one extra letter"
	case ReasonNotAWord:
		return fmt.Sprintf("'%s' isn't a valid word", r.Token)
	case ReasonStemUsed:
		return fmt.Sprintf("'%s' already used previously", r.Token)
	case ReasonStemClaimed:
		return fmt.Sprintf("'%s' repeats a stem claimed earlier in this turn", r.Token)
	default:
		return "invalid entry"
	}
}

func reject(reason RejectReason, token string) *Rejection {
	return &Rejection{Reason: reason, Token: token}
}

// Oracle is the lexical contract the evaluator needs: spelling plus
// morphological base forms. Stems returns nil for unrecognized words.
type Oracle interface {
	IsWord(s string) bool
	Stems(s string) []string
}

// RoundResult describes a committed turn.
type RoundResult struct {
	Chosen     Word
	Candidates []Word
	Gained     uint
	Stems      []string
}

// Evaluator validates and applies turns against a State.
type Evaluator struct {
	oracle Oracle
	state  *State
}

// NewEvaluator wires an oracle to a game state.
func NewEvaluator(oracle Oracle, state *State) *Evaluator {
	return &Evaluator{oracle: oracle, state: state}
}

// State exposes the evaluated game state.
func (e *Evaluator) State() *State {
	return e.state
}

// Evaluate runs one turn from a raw input line. On success the state is
// updated atomically and a RoundResult returned; on failure the returned
// error is a *Rejection and the state is exactly as before.
func (e *Evaluator) Evaluate(line string) (RoundResult, error) {
	chosen, candidates, rej := e.parse(line)
	if rej != nil {
		return RoundResult{}, rej
	}

	if !chosen.OneLetterMore(candidates) {
		return RoundResult{}, reject(ReasonNotAnagram, chosen.Literal)
	}

	// Resolve every candidate before touching any state. Candidates are
	// processed in input order so the first one to reach a stem claims it.
	var gained uint
	claimed := map[string]struct{}{}
	claimOrder := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		stems := e.oracle.Stems(candidate)
		if len(stems) == 0 {
			return RoundResult{}, reject(ReasonNotAWord, candidate)
		}
		scored := false
		for _, stem := range stems {
			stem = strings.ToLower(stem)
			if e.state.Ledger.Contains(stem) {
				return RoundResult{}, reject(ReasonStemUsed, candidate)
			}
			if _, dup := claimed[stem]; dup {
				return RoundResult{}, reject(ReasonStemClaimed, candidate)
			}
			claimed[stem] = struct{}{}
			claimOrder = append(claimOrder, stem)
			if !scored {
				gained += uint(len(candidate) - minWordLen)
				scored = true
			}
		}
	}

	// Everything checked out; commit the whole move.
	e.state.Score += gained
	e.state.Ledger.InsertAll(claimOrder)
	moved, _ := e.state.Current.Remove(chosen.Literal)
	e.state.Prior.Insert(moved)
	result := RoundResult{Chosen: moved, Gained: gained, Stems: claimOrder}
	for _, candidate := range candidates {
		w := Word{Literal: candidate, Sorted: sortLetters(candidate)}
		e.state.Current.Insert(w)
		result.Candidates = append(result.Candidates, w)
	}
	return result, nil
}

// parse splits a line into the chosen source word and its candidates,
// applying the cheap shape checks that need no dictionary.
func (e *Evaluator) parse(line string) (Word, []string, *Rejection) {
	tokens := strings.Fields(strings.ToLower(line))
	if len(tokens) == 0 {
		return Word{}, nil, reject(ReasonNoCandidates, "")
	}
	chosenLiteral := tokens[0]
	if !e.state.Current.Contains(chosenLiteral) {
		return Word{}, nil, reject(ReasonNotCurrentWord, chosenLiteral)
	}
	if len(tokens) == 1 {
		return Word{}, nil, reject(ReasonNoCandidates, chosenLiteral)
	}
	candidates := tokens[1:]
	for _, c := range candidates {
		if !IsLowerAlpha(c) || len(c) < minWordLen {
			return Word{}, nil, reject(ReasonBadCandidate, c)
		}
	}
	return e.state.Current.words[chosenLiteral], candidates, nil
}
