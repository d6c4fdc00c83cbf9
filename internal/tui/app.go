// Package tui is the interactive front-end: a bubbletea program that shows
// the live summary table and drives the board underneath it. All match state
// lives in the board; the app only holds view state.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/matchboard/internal/config"
	"github.com/jask/matchboard/internal/scoreboard"
	"github.com/jask/matchboard/internal/summary"
	"github.com/jask/matchboard/internal/testdata"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
)

type appState string

const (
	viewBoard    appState = "board"
	viewSettings appState = "settings"
)

type modalState string

const (
	modalNone   modalState = ""
	modalStart  modalState = "start"
	modalUpdate modalState = "update"
	modalFinish modalState = "finish"
)

// App ties the board, the renderer and the key handling together.
type App struct {
	board *scoreboard.Board
	cfg   config.Config

	state       appState
	modal       modalState
	inputBuffer string

	sorter    scoreboard.MatchSorter
	startFrom int
	decorated bool
	// colorCapable reports whether the environment can show decoration at
	// all; resolved once at startup and injected, never re-detected here.
	colorCapable bool

	settingsCursor int
	status         string
	statusIsError  bool
	keys           keyMap
}

type keyMap struct {
	Start    key.Binding
	Update   key.Binding
	Finish   key.Binding
	Sort     key.Binding
	Decorate key.Binding
	Page     key.Binding
	Demo     key.Binding
	Settings key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Start:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
		Update:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "update")),
		Finish:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "finish")),
		Sort:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sort order")),
		Decorate: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "decoration")),
		Page:     key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "page")),
		Demo:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "demo fixtures")),
		Settings: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "settings")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Update, k.Finish, k.Sort, k.Decorate, k.Page, k.Demo, k.Settings, k.Quit}
}

// NewApp builds the app around an existing board. colorCapable is the
// injected capability flag deciding whether decorated rendering is offered.
func NewApp(board *scoreboard.Board, cfg config.Config, colorCapable bool) *App {
	return &App{
		board:        board,
		cfg:          cfg,
		state:        viewBoard,
		sorter:       scoreboard.GoalsTotal,
		decorated:    colorCapable,
		colorCapable: colorCapable,
		keys:         newKeyMap(),
	}
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a.modal != modalNone {
			return a.handleModalKey(msg)
		}
		if a.state == viewSettings {
			return a.handleSettingsKey(msg)
		}
		return a.handleBoardKey(msg)
	}
	return a, nil
}

func (a *App) handleBoardKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "s":
		a.openModal(modalStart)
	case "u":
		a.openModal(modalUpdate)
	case "f":
		a.openModal(modalFinish)
	case "o":
		if a.sorter == scoreboard.GoalsTotal {
			a.sorter = scoreboard.AlphanumericHomeTeam
		} else {
			a.sorter = scoreboard.GoalsTotal
		}
		a.info(fmt.Sprintf("sorting by %s", a.sorter))
	case "d":
		if !a.colorCapable {
			a.fail(errors.New("this terminal does not support decoration"))
			return a, nil
		}
		a.decorated = !a.decorated
		if a.decorated {
			a.info("decoration on")
		} else {
			a.info("decoration off")
		}
	case "right", "pgdown":
		if a.startFrom+a.cfg.Summary.MaxLines < a.board.Len() {
			a.startFrom += a.cfg.Summary.MaxLines
		}
	case "left", "pgup":
		a.startFrom -= a.cfg.Summary.MaxLines
		if a.startFrom < 0 {
			a.startFrom = 0
		}
	case "g":
		if err := testdata.SeedWorldCup(a.board); err != nil {
			a.fail(err)
			return a, nil
		}
		a.info("demo fixtures started")
	case "p":
		a.state = viewSettings
		a.status = ""
	}
	return a, nil
}

func (a *App) openModal(m modalState) {
	a.modal = m
	a.inputBuffer = ""
	a.status = ""
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyCtrlC:
		return a, tea.Quit
	case tea.KeyEsc:
		a.modal = modalNone
		a.inputBuffer = ""
	case tea.KeyEnter:
		input := strings.TrimSpace(a.inputBuffer)
		if input == "" {
			a.fail(errors.New("enter a value"))
			return a, nil
		}
		modal := a.modal
		a.modal = modalNone
		a.inputBuffer = ""
		a.submit(modal, input)
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if len(a.inputBuffer) > 0 {
			a.inputBuffer = a.inputBuffer[:len(a.inputBuffer)-1]
		}
	case tea.KeySpace:
		a.inputBuffer += " "
	case tea.KeyRunes:
		a.inputBuffer += string(m.Runes)
	}
	return a, nil
}

// submit runs the board operation behind a closed modal. Board calls are
// synchronous and in-memory, so no tea.Cmd is needed.
func (a *App) submit(modal modalState, input string) {
	switch modal {
	case modalStart:
		home, away, err := parsePair(input)
		if err != nil {
			a.fail(err)
			return
		}
		if err := a.board.StartMatch(home, away); err != nil {
			a.fail(err)
			return
		}
		a.info(fmt.Sprintf("%s vs %s started", home, away))
	case modalUpdate:
		home, away, hs, as, err := parseScoreline(input)
		if err != nil {
			a.fail(err)
			return
		}
		if err := a.board.UpdateScore(home, away, hs, as); err != nil {
			a.fail(err)
			return
		}
		a.info(fmt.Sprintf("%s vs %s now %d:%d", home, away, hs, as))
	case modalFinish:
		home, away, err := parsePair(input)
		if err != nil {
			a.fail(err)
			return
		}
		if err := a.board.FinishMatch(home, away); err != nil {
			a.fail(err)
			return
		}
		a.info(fmt.Sprintf("%s vs %s finished", home, away))
		a.clampWindow()
	}
}

func (a *App) handleSettingsKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "esc", "b":
		a.state = viewBoard
		a.status = ""
	case "up", "k":
		if a.settingsCursor > 0 {
			a.settingsCursor--
		}
	case "down", "j":
		if a.settingsCursor < len(settingsRows)-1 {
			a.settingsCursor++
		}
	case "+", "=", "right":
		a.adjustSetting(1)
	case "-", "left":
		a.adjustSetting(-1)
	case "w":
		if err := config.Save(a.cfg); err != nil {
			a.fail(err)
			return a, nil
		}
		a.info("settings written to config file")
	}
	return a, nil
}

// settingsRows maps the cursor to a label; adjustSetting mirrors the order.
var settingsRows = []string{"summary lines", "column padding", "min column width", "max column width", "color"}

func (a *App) adjustSetting(delta int) {
	s := &a.cfg.Summary
	switch a.settingsCursor {
	case 0:
		if v := s.MaxLines + delta; v >= 1 {
			s.MaxLines = v
		}
	case 1:
		if v := s.Padding + delta; v >= 0 {
			s.Padding = v
		}
	case 2:
		if v := s.MinColumnWidth + delta; v >= 1 && v <= s.MaxColumnWidth {
			s.MinColumnWidth = v
		}
	case 3:
		if v := s.MaxColumnWidth + delta; v >= s.MinColumnWidth {
			s.MaxColumnWidth = v
		}
	case 4:
		modes := []string{"auto", "always", "never"}
		for i, mode := range modes {
			if a.cfg.UI.Color == mode {
				a.cfg.UI.Color = modes[(i+len(modes)+delta)%len(modes)]
				break
			}
		}
	}
	a.clampWindow()
}

func (a *App) clampWindow() {
	for a.startFrom > 0 && a.startFrom >= a.board.Len() {
		a.startFrom -= a.cfg.Summary.MaxLines
	}
	if a.startFrom < 0 {
		a.startFrom = 0
	}
}

func (a *App) info(msg string) {
	a.status = msg
	a.statusIsError = false
}

// fail surfaces a board error in the status line, appending a close-name
// suggestion when a lookup missed because of a likely typo.
func (a *App) fail(err error) {
	msg := err.Error()
	var nf *scoreboard.NotFoundError
	if errors.As(err, &nf) {
		for _, name := range []string{nf.Home, nf.Away} {
			if s := a.board.Suggest(name); s != "" {
				msg += fmt.Sprintf(" (did you mean %s?)", s)
				break
			}
		}
	}
	a.status = msg
	a.statusIsError = true
}

func (a *App) View() string {
	if a.state == viewSettings {
		return a.renderSettings()
	}
	return a.renderBoard()
}

func (a *App) renderBoard() string {
	title := titleStyle.Render("Matchboard")

	opts := a.cfg.SummaryOptions()
	opts.StartFrom = a.startFrom
	opts.Decorated = a.decorated
	table := summary.Render(a.board.SortMatches(a.sorter), opts)
	if table == "" {
		table = "(no matches in play - press s to start one)\n"
	}

	meta := fmt.Sprintf("%d in play, sorted by %s", a.board.Len(), a.sorter)
	if a.startFrom > 0 {
		meta += fmt.Sprintf(", from #%d", a.startFrom+1)
	}

	out := title + "\n" + statusStyle.Render(meta) + "\n\n" + table
	if a.modal != modalNone {
		out += "\n" + a.renderModal()
	}
	if a.status != "" {
		out += "\n" + a.renderStatus()
	}
	out += "\n" + renderHelp(a.keys.ShortHelp())
	return out
}

func (a *App) renderModal() string {
	var prompt string
	switch a.modal {
	case modalStart:
		prompt = "start match (<home> vs <away>)"
	case modalUpdate:
		prompt = "update score (<home> vs <away> <h>:<a>)"
	case modalFinish:
		prompt = "finish match (<home> vs <away>)"
	}
	return promptStyle.Render(prompt) + fmt.Sprintf("\n> %s█\n[enter] submit  [esc] cancel", a.inputBuffer)
}

func (a *App) renderSettings() string {
	title := titleStyle.Render("Settings")
	values := []string{
		fmt.Sprintf("%d", a.cfg.Summary.MaxLines),
		fmt.Sprintf("%d", a.cfg.Summary.Padding),
		fmt.Sprintf("%d", a.cfg.Summary.MinColumnWidth),
		fmt.Sprintf("%d", a.cfg.Summary.MaxColumnWidth),
		a.cfg.UI.Color,
	}
	out := title + "\n"
	for i, label := range settingsRows {
		marker := " "
		if i == a.settingsCursor {
			marker = "▶"
		}
		out += fmt.Sprintf("%s %-18s %s\n", marker, label, values[i])
	}
	out += "\n[+/-] adjust  [w] write config  [esc] back  [q] quit"
	if a.status != "" {
		out += "\n" + a.renderStatus()
	}
	return out
}

func (a *App) renderStatus() string {
	if a.statusIsError {
		return errorStyle.Render(a.status)
	}
	return statusStyle.Render(a.status)
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return statusStyle.Render(strings.Join(parts, "  "))
}
