// internal/tui/app.go
//
// The main TUI for anagrow, built on bubbletea's Elm architecture:
// Model (App) -> Update on messages -> View renders a string.
//
// Screens: welcome (seed selection), playing (the game loop), help, and the
// final score. All per-turn validation happens in internal/game; this layer
// only collects lines and renders outcomes.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lmackey/anagrow/internal/config"
	"github.com/lmackey/anagrow/internal/game"
	"github.com/lmackey/anagrow/internal/logging"
	"github.com/lmackey/anagrow/internal/words"
)

// appState represents which screen we're on.
type appState int

const (
	stateWelcome appState = iota // Seed word selection
	statePlaying                 // The main game loop
	stateHelp                    // Help screen, enter returns
	stateFinal                   // Final score after quitting
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7B801")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF")).Bold(true)
	scoreStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Bold(true)
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
	wordRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC"))
)

// Seeder draws a random starting word. Swappable for tests.
type Seeder func() (string, error)

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithSeeder overrides the random seed source.
func WithSeeder(s Seeder) AppOption {
	return func(a *App) {
		if s != nil {
			a.seeder = s
		}
	}
}

// App is the main application model. In bubbletea, this holds ALL the state.
type App struct {
	state       appState
	returnState appState
	config      *config.Config
	logger      *logging.Logger
	oracle      game.Oracle
	eval        *game.Evaluator
	seeder      Seeder

	input        textinput.Model
	priorPager   paginator.Model
	currentPager paginator.Model
	priorPages   []Page
	currentPages []Page

	errMsg     string
	hint       string
	finalScore uint

	width  int
	height int
}

// NewApp creates the application model. The oracle must already be loaded;
// resource failures belong to startup, not to the TUI.
func NewApp(cfg *config.Config, oracle game.Oracle, logger *logging.Logger, opts ...AppOption) *App {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = cfg.MaxWordLen()
	input.Focus()

	newPager := func() paginator.Model {
		p := paginator.New()
		p.Type = paginator.Dots
		p.PerPage = 1
		p.ActiveDot = "•"
		p.InactiveDot = "·"
		return p
	}

	app := &App{
		state:        stateWelcome,
		config:       cfg,
		logger:       logger,
		oracle:       oracle,
		seeder:       words.RandomSeed,
		input:        input,
		priorPager:   newPager(),
		currentPager: newPager(),
		width:        cfg.PageWidth(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}
	return app
}

// Init starts the cursor blink.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all incoming messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
		a.repaginate()
		return a, nil
	case tea.KeyMsg:
		switch m.Type {
		case tea.KeyCtrlC:
			return a, tea.Quit
		case tea.KeyEnter:
			return a.handleSubmit()
		}
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// handleSubmit routes one entered line to the active screen.
func (a *App) handleSubmit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(a.input.Value())
	a.input.Reset()

	switch a.state {
	case stateWelcome:
		return a.submitWelcome(strings.ToLower(line))
	case stateHelp:
		a.state = a.returnState
		return a, nil
	case statePlaying:
		return a.submitTurn(strings.ToLower(line))
	case stateFinal:
		return a, tea.Quit
	}
	return a, nil
}

// submitWelcome handles the seed selection loop. Invalid entries simply
// re-prompt; the loop only exits with a seeded game.
func (a *App) submitWelcome(line string) (tea.Model, tea.Cmd) {
	switch line {
	case "":
		return a, nil
	case "h", "help":
		a.openHelp()
		return a, nil
	case "r", "random":
		seed, err := a.seeder()
		if err != nil {
			a.errMsg = fmt.Sprintf("random start failed: %v", err)
			return a, nil
		}
		return a.startGame(seed)
	default:
		return a.startGame(line)
	}
}

func (a *App) startGame(seed string) (tea.Model, tea.Cmd) {
	state, err := game.Seed(a.oracle, seed)
	if err != nil {
		a.errMsg = fmt.Sprintf("'%s' won't work as a start; enter a valid 3-letter word", seed)
		a.logger.Debug().Err(err).Str("seed", seed).Msg("seed rejected")
		return a, nil
	}
	a.eval = game.NewEvaluator(a.oracle, state)
	a.state = statePlaying
	a.errMsg = ""
	a.hint = "If confused, type h and press enter"
	a.repaginate()
	a.logger.Info().
		Str("session", state.SessionID).
		Str("seed", seed).
		Int("seed_stems", state.Ledger.Len()).
		Msg("game started")
	return a, nil
}

// submitTurn handles one line during play: page navigation, help, quit, or
// a turn submission.
func (a *App) submitTurn(line string) (tea.Model, tea.Cmd) {
	a.hint = ""
	switch line {
	case "":
		return a, nil
	case ",":
		a.priorPager.PrevPage()
		return a, nil
	case ".":
		a.priorPager.NextPage()
		return a, nil
	case "<":
		a.currentPager.PrevPage()
		return a, nil
	case ">":
		a.currentPager.NextPage()
		return a, nil
	case "h", "?", "help":
		a.openHelp()
		return a, nil
	case "q", "quit":
		return a.finish()
	}

	result, err := a.eval.Evaluate(line)
	if err != nil {
		a.errMsg = err.Error()
		a.logger.Debug().Err(err).Str("line", line).Msg("turn rejected")
		return a, nil
	}
	a.errMsg = ""
	a.repaginate()
	a.logger.Info().
		Str("session", a.eval.State().SessionID).
		Str("chosen", result.Chosen.Literal).
		Strs("stems", result.Stems).
		Uint("gained", result.Gained).
		Uint("score", a.eval.State().Score).
		Msg("turn committed")
	return a, nil
}

// finish applies the terminal bonus and shows the final score.
func (a *App) finish() (tea.Model, tea.Cmd) {
	a.finalScore = a.eval.State().FinishBonus()
	a.state = stateFinal
	a.errMsg = ""
	a.logger.Info().
		Str("session", a.eval.State().SessionID).
		Uint("final_score", a.finalScore).
		Msg("game finished")
	return a, nil
}

func (a *App) openHelp() {
	a.returnState = a.state
	a.state = stateHelp
	a.errMsg = ""
}

// repaginate rebuilds both pool page sets from the current game state and
// clamps the pager cursors. The pages themselves are a pure function of the
// pools; only the cursor lives here.
func (a *App) repaginate() {
	if a.eval == nil {
		return
	}
	width := a.width
	if width < 8 {
		width = a.config.PageWidth()
	}
	rows := a.config.PageRows()
	a.priorPages = PaginateWords(a.eval.State().Prior.Literals(), width, rows)
	a.currentPages = PaginateWords(a.eval.State().Current.Literals(), width, rows)
	a.priorPager.SetTotalPages(maxInt(len(a.priorPages), 1))
	a.currentPager.SetTotalPages(maxInt(len(a.currentPages), 1))
	if a.priorPager.Page >= len(a.priorPages) && len(a.priorPages) > 0 {
		a.priorPager.Page = len(a.priorPages) - 1
	}
	if a.currentPager.Page >= len(a.currentPages) && len(a.currentPages) > 0 {
		a.currentPager.Page = len(a.currentPages) - 1
	}
}

// View renders the active screen.
func (a *App) View() string {
	switch a.state {
	case stateWelcome:
		return a.viewWelcome()
	case stateHelp:
		return a.viewHelp()
	case statePlaying:
		return a.viewPlaying()
	case stateFinal:
		return a.viewFinal()
	}
	return ""
}

func (a *App) viewWelcome() string {
	lines := []string{
		"",
		titleStyle.Render(center("welcome to", a.width)),
		"",
		titleStyle.Render(center("A N A G R O W", a.width)),
		"",
		"Enter a 3-letter word to start with.",
		"'r' or 'random' for a random start, 'h' for help.",
		"",
	}
	if a.errMsg != "" {
		lines = append(lines, errStyle.Render(a.errMsg), "")
	}
	lines = append(lines, a.input.View())
	return strings.Join(lines, "\n")
}

func (a *App) viewHelp() string {
	return helpText + "\n" + hintStyle.Render("Press enter to return to the game.")
}

func (a *App) viewPlaying() string {
	state := a.eval.State()
	lines := []string{
		scoreStyle.Render(fmt.Sprintf("Score: %d", state.Score)),
		"",
		labelStyle.Render("Prior words:"),
	}
	lines = append(lines, a.renderPool(a.priorPages, a.priorPager)...)
	lines = append(lines, "", labelStyle.Render("Current words:"))
	lines = append(lines, a.renderPool(a.currentPages, a.currentPager)...)
	lines = append(lines, "")
	if a.errMsg != "" {
		lines = append(lines, errStyle.Render(a.errMsg))
	} else if a.hint != "" {
		lines = append(lines, hintStyle.Render(a.hint))
	} else {
		lines = append(lines, "")
	}
	lines = append(lines, a.input.View())
	return strings.Join(lines, "\n")
}

// renderPool renders one pool's visible page plus its pager dots when more
// than one page exists.
func (a *App) renderPool(pages []Page, pager paginator.Model) []string {
	if len(pages) == 0 {
		return []string{hintStyle.Render("(none)")}
	}
	page := pager.Page
	if page >= len(pages) {
		page = len(pages) - 1
	}
	out := make([]string, 0, len(pages[page])+1)
	for _, row := range pages[page] {
		out = append(out, wordRowStyle.Render(row))
	}
	if len(pages) > 1 {
		out = append(out, hintStyle.Render(pager.View()))
	}
	return out
}

func (a *App) viewFinal() string {
	lines := []string{
		"",
		scoreStyle.Render(fmt.Sprintf("Your final score is %d", a.finalScore)),
		"",
		hintStyle.Render("Press enter to exit."),
	}
	return strings.Join(lines, "\n")
}

func center(s string, width int) string {
	if width <= len(s) {
		return s
	}
	return strings.Repeat(" ", (width-len(s))/2) + s
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
