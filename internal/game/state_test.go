package game

import (
	"reflect"
	"testing"
)

func TestSeedValidatesLengthAndDictionary(t *testing.T) {
	oracle := testOracle()
	if _, err := Seed(oracle, "cats"); err == nil {
		t.Fatalf("expected error for 4-letter seed")
	}
	if _, err := Seed(oracle, "zzz"); err == nil {
		t.Fatalf("expected error for unrecognized seed")
	}
	state, err := Seed(oracle, "cat")
	if err != nil {
		t.Fatalf("Seed returned error: %v", err)
	}
	if !state.Current.Contains("cat") {
		t.Fatalf("expected seed in current pool")
	}
	if !state.Ledger.Contains("cat") {
		t.Fatalf("expected seed stems pre-claimed")
	}
	if state.SessionID == "" {
		t.Fatalf("expected session id")
	}
}

func TestPoolOrderedIterationIsDeterministic(t *testing.T) {
	pool := NewPool()
	for _, w := range []string{"tar", "act", "cat", "arc"} {
		pool.Insert(MustWord(w))
	}
	want := []string{"act", "arc", "cat", "tar"}
	if got := pool.Literals(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	// Duplicate insertion is a no-op.
	pool.Insert(MustWord("cat"))
	if pool.Len() != 4 {
		t.Fatalf("expected 4 words after duplicate insert, got %d", pool.Len())
	}
}

func TestStemLedgerGrowsMonotonically(t *testing.T) {
	ledger := NewStemLedger()
	if ledger.Contains("act") {
		t.Fatalf("empty ledger must not contain act")
	}
	ledger.InsertAll([]string{"act", "CAT"})
	if !ledger.Contains("act") || !ledger.Contains("cat") {
		t.Fatalf("expected case-normalized membership")
	}
	ledger.InsertAll([]string{"act"})
	if ledger.Len() != 2 {
		t.Fatalf("expected 2 stems, got %d", ledger.Len())
	}
}

func TestFinishBonusCreditsRemainingWordsOnce(t *testing.T) {
	eval := newTestEvaluator(t, "cat")
	if _, err := eval.Evaluate("cat acts"); err != nil {
		t.Fatalf("turn: %v", err)
	}
	state := eval.State()
	// current = {acts}; bonus = 4-3 = 1 on top of the turn's 1.
	if got := state.FinishBonus(); got != 2 {
		t.Fatalf("expected final score 2, got %d", got)
	}
	if !state.Finished() {
		t.Fatalf("expected state to be finished")
	}
	if got := state.FinishBonus(); got != 2 {
		t.Fatalf("second FinishBonus must not re-credit, got %d", got)
	}
}

func TestFinishBonusIgnoresStemStatus(t *testing.T) {
	state := NewState(MustWord("acts"), []string{"act"})
	// The lone current word's stem is already claimed; the bonus still lands.
	if got := state.FinishBonus(); got != 1 {
		t.Fatalf("expected final score 1, got %d", got)
	}
}
