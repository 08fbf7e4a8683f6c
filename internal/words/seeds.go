// internal/words/seeds.go
//
// Seed word list for random game starts.
//
// Responsibilities:
//   - Load the list of valid 3-letter starting words from a configured file
//     or fall back to the embedded default.
//   - Normalize entries to lowercase and keep only exact-length alphabetic
//     words.
//   - Supply a uniformly random pick for the "random start" path.
//
// Initialization runs once (sync.Once); callers pass the configured path on
// first use.

package words

import (
	"bufio"
	"crypto/rand"
	_ "embed"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
	"sync"
)

// SeedLen is the required length of a starting word.
const SeedLen = 3

//go:embed default_seeds.txt
var embeddedSeeds string

var (
	initOnce   sync.Once
	seeds      []string
	initialErr error
)

// Init loads the seed list exactly once. An empty path uses the embedded
// default list. Returns an error if the resulting list is empty.
func Init(path string) error {
	initOnce.Do(func() {
		var list []string
		if path == "" {
			list = normalizeLines(embeddedSeeds)
		} else {
			var err error
			list, err = readSeedFile(path)
			if err != nil {
				initialErr = fmt.Errorf("words: load seed list: %w", err)
				return
			}
		}
		if len(list) == 0 {
			initialErr = errors.New("words: seed list is empty")
			return
		}
		seeds = list
	})
	return initialErr
}

// RandomSeed returns a uniformly random seed word. Init must have succeeded.
func RandomSeed() (string, error) {
	if len(seeds) == 0 {
		return "", errors.New("words: seed list not loaded")
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(seeds))))
	if err != nil {
		return "", fmt.Errorf("words: draw seed: %w", err)
	}
	return seeds[n.Int64()], nil
}

// Count returns the number of loaded seed words.
func Count() int {
	return len(seeds)
}

// readSeedFile loads one word per line, lowercased and trimmed, keeping only
// valid SeedLen-letter alphabetic words.
func readSeedFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if w, ok := normalizeSeed(sc.Text()); ok {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

func normalizeLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if w, ok := normalizeSeed(line); ok {
			out = append(out, w)
		}
	}
	return out
}

func normalizeSeed(line string) (string, bool) {
	w := strings.TrimSpace(strings.ToLower(line))
	if len(w) != SeedLen || !isAlpha(w) {
		return "", false
	}
	return w, true
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
