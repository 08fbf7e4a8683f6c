package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmackey/anagrow/internal/config"
	"github.com/lmackey/anagrow/internal/lexicon"
	"github.com/lmackey/anagrow/internal/logging"
)

func newTestApp(t *testing.T, opts ...AppOption) *App {
	t.Helper()
	projectDir := t.TempDir()
	if err := config.InitAnagrowDir(projectDir); err != nil {
		t.Fatalf("init anagrow dir: %v", err)
	}
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	logger, err := logging.New(cfg.LogsDir(), "debug")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	t.Cleanup(func() { _ = logger.Close() })
	lex, err := lexicon.Load("", "", "")
	if err != nil {
		t.Fatalf("load lexicon: %v", err)
	}
	return NewApp(cfg, lex, logger, opts...)
}

func submitLine(t *testing.T, app *App, line string) (*App, tea.Cmd) {
	t.Helper()
	app.input.SetValue(line)
	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next, ok := model.(*App)
	if !ok {
		t.Fatalf("unexpected model type: %T", model)
	}
	return next, cmd
}

func TestWelcomeSeedsGameFromTypedWord(t *testing.T) {
	app := newTestApp(t)
	app, _ = submitLine(t, app, "cat")
	if app.state != statePlaying {
		t.Fatalf("expected playing state, got %d", app.state)
	}
	if app.eval == nil {
		t.Fatalf("expected evaluator after seeding")
	}
	if !app.eval.State().Current.Contains("cat") {
		t.Fatalf("expected seed in current pool")
	}
	if app.eval.State().Ledger.Len() == 0 {
		t.Fatalf("expected seed stems pre-claimed")
	}
}

func TestWelcomeRepromptsOnInvalidSeed(t *testing.T) {
	app := newTestApp(t)
	for _, seed := range []string{"zzz", "cats", "c4t"} {
		app, _ = submitLine(t, app, seed)
		if app.state != stateWelcome {
			t.Fatalf("seed %q: expected to stay on welcome screen", seed)
		}
		if app.errMsg == "" {
			t.Fatalf("seed %q: expected an error message", seed)
		}
	}
}

func TestWelcomeRandomUsesSeeder(t *testing.T) {
	app := newTestApp(t, WithSeeder(func() (string, error) { return "rat", nil }))
	app, _ = submitLine(t, app, "r")
	if app.state != statePlaying {
		t.Fatalf("expected playing state, got %d", app.state)
	}
	if !app.eval.State().Current.Contains("rat") {
		t.Fatalf("expected injected random seed in current pool")
	}
}

func TestPlayTurnAndQuitBonus(t *testing.T) {
	app := newTestApp(t)
	app, _ = submitLine(t, app, "cat")
	app, _ = submitLine(t, app, "cat acts")
	if app.errMsg != "" {
		t.Fatalf("unexpected rejection: %s", app.errMsg)
	}
	state := app.eval.State()
	if state.Score != 1 {
		t.Fatalf("expected score 1 after cat->acts, got %d", state.Score)
	}
	if !state.Prior.Contains("cat") || !state.Current.Contains("acts") {
		t.Fatalf("pools not updated")
	}

	app, _ = submitLine(t, app, "q")
	if app.state != stateFinal {
		t.Fatalf("expected final state, got %d", app.state)
	}
	if app.finalScore != 2 {
		t.Fatalf("expected final score 2 (1 turn + 1 bonus), got %d", app.finalScore)
	}

	_, cmd := submitLine(t, app, "")
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestRejectionShowsMessageWithoutStateChange(t *testing.T) {
	app := newTestApp(t)
	app, _ = submitLine(t, app, "cat")
	app, _ = submitLine(t, app, "cat tabs")
	if app.errMsg == "" {
		t.Fatalf("expected rejection message")
	}
	state := app.eval.State()
	if state.Score != 0 || state.Prior.Len() != 0 || !state.Current.Contains("cat") {
		t.Fatalf("state must be untouched after rejection")
	}
}

func TestHelpScreenRoundTrip(t *testing.T) {
	app := newTestApp(t)
	app, _ = submitLine(t, app, "h")
	if app.state != stateHelp {
		t.Fatalf("expected help state from welcome, got %d", app.state)
	}
	if !strings.Contains(app.View(), "How to play") {
		t.Fatalf("expected help text in view")
	}
	app, _ = submitLine(t, app, "")
	if app.state != stateWelcome {
		t.Fatalf("expected return to welcome, got %d", app.state)
	}

	app, _ = submitLine(t, app, "cat")
	app, _ = submitLine(t, app, "?")
	if app.state != stateHelp {
		t.Fatalf("expected help state from play, got %d", app.state)
	}
	app, _ = submitLine(t, app, "")
	if app.state != statePlaying {
		t.Fatalf("expected return to play, got %d", app.state)
	}
}

func TestPageNavigationKeysAreSafe(t *testing.T) {
	app := newTestApp(t)
	app, _ = submitLine(t, app, "cat")
	for _, key := range []string{",", ".", "<", ">"} {
		app, _ = submitLine(t, app, key)
		if app.state != statePlaying {
			t.Fatalf("key %q left the play screen", key)
		}
	}
}

func TestViewShowsScoreAndPools(t *testing.T) {
	app := newTestApp(t)
	app, _ = submitLine(t, app, "cat")
	view := app.View()
	for _, want := range []string{"Score: 0", "Prior words:", "Current words:", "cat"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestWindowResizeRepaginates(t *testing.T) {
	app := newTestApp(t)
	app, _ = submitLine(t, app, "cat")
	model, _ := app.Update(tea.WindowSizeMsg{Width: 40, Height: 24})
	app = model.(*App)
	if app.width != 40 {
		t.Fatalf("expected width 40, got %d", app.width)
	}
	if len(app.currentPages) == 0 {
		t.Fatalf("expected current pool pages after resize")
	}
}
