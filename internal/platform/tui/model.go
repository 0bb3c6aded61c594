package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/session"
)

// Model is the Bubble Tea model for a Frogger session.
// The session owns the game state; the model only forwards keys and renders.
type Model struct {
	sess      *session.Session
	rules     *frogger.Rules
	world     frogger.World
	screen    *core.Screen
	keys      KeyMap
	help      help.Model
	board     Scoreboard
	showBoard bool
	width     int
	height    int
	quitting  bool
}

// NewModel creates a model for a started session.
func NewModel(sess *session.Session, cfg core.RuntimeConfig) Model {
	h := help.New()
	h.ShowAll = false

	m := Model{
		sess:   sess,
		rules:  sess.Rules(),
		world:  sess.World(),
		keys:   DefaultKeyMap(),
		help:   h,
		board:  NewScoreboard(sess.Store(), cfg.ScreenW, cfg.ScreenH),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.boardHeight())
	return m
}

// Init waits for the first published world.
func (m Model) Init() tea.Cmd {
	return waitForState(m.sess)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case StateMsg:
		prev := m.world
		m.world = frogger.World(msg)
		if m.showBoard && m.world.GameOver && !prev.GameOver {
			m.board.Refresh()
		}
		return m, waitForState(m.sess)

	case SessionEndedMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.width, m.boardHeight())
		return m, nil

	case core.ActionScoreboard:
		m.showBoard = !m.showBoard
		if m.showBoard {
			m.board.Refresh()
		}
		return m, nil

	case core.ActionNone:
		return m, nil
	}

	// The leaderboard takes arrow keys for scrolling while it is open.
	if m.showBoard && action.IsMove() {
		var cmd tea.Cmd
		m.board, cmd = m.board.Update(msg, m.keys)
		return m, cmd
	}

	//nolint:errcheck // A dropped input is the same as a missed key press
	m.sess.Act(action)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.boardHeight())
	m.board.Resize(msg.Width, m.boardHeight())
	return m, nil
}

// boardHeight returns the rows left for the game after the help bar.
func (m Model) boardHeight() int {
	return max(m.height-lipgloss.Height(m.help.View(m.keys)), 1)
}

// World returns the last world the model received.
func (m Model) World() frogger.World {
	return m.world
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	helpView := helpStyle.Render(m.help.View(m.keys))

	if m.showBoard {
		return m.board.View() + "\n" + helpView
	}

	m.rules.Render(m.world, m.screen)
	return RenderScreen(m.screen) + "\n" + helpView
}

// Run plays a session in the local terminal until the player quits.
func Run(sess *session.Session, cfg core.RuntimeConfig) error {
	model := NewModel(sess, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
