// cmd/anagrow/main.go
//
// Entry point for the anagrow TUI.
//
// Flow:
// 1. Load .env overrides, then .anagrow/config.yaml
// 2. Load the lexicon and seed word list (fatal on failure)
// 3. Run the bubbletea program until the player quits

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/lmackey/anagrow/internal/config"
	"github.com/lmackey/anagrow/internal/lexicon"
	"github.com/lmackey/anagrow/internal/logging"
	"github.com/lmackey/anagrow/internal/tui"
	"github.com/lmackey/anagrow/internal/words"
)

func main() {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
		os.Exit(1)
	}

	if err := config.InitAnagrowDir(cwd); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing .anagrow directory: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.NewConfig(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogsDir(), cfg.LogLevel())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	// Dictionary and morphology resources are acquired once here and live
	// for the whole process.
	lex, err := lexicon.Load(
		cfg.DictionaryPath(),
		cfg.LemmaPath(),
		cfg.ExceptionPath(),
		lexicon.WithMaxWordLen(cfg.MaxWordLen()),
	)
	if err != nil {
		logger.Error().Err(err).Msg("lexicon load failed")
		fmt.Fprintf(os.Stderr, "Error loading lexicon: %v\n", err)
		os.Exit(1)
	}
	if err := words.Init(cfg.SeedsPath()); err != nil {
		logger.Error().Err(err).Msg("seed list load failed")
		fmt.Fprintf(os.Stderr, "Error loading seed words: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(
		tui.NewApp(cfg, lex, logger),
		tea.WithAltScreen(), // Use the alternate screen buffer (like vim does)
	)
	if _, err := p.Run(); err != nil {
		logger.Error().Err(err).Msg("tui exited with error")
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
