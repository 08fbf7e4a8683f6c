package tui

import _ "embed"

// The help screen text ships inside the binary so the game never depends on
// a file being present at runtime.

//go:embed help.txt
var helpText string
