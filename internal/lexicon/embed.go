package lexicon

import _ "embed"

// Embedded defaults keep the game playable with no external resources.
// Config paths replace any of them with full-size files.

//go:embed data/dictionary.txt
var embeddedDictionary string

//go:embed data/lemmas.txt
var embeddedLemmas string

//go:embed data/exceptions.txt
var embeddedExceptions string
