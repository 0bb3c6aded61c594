package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-frogger/internal/storage"
)

// Scoreboard layout constants
const (
	maxScores     = 100 // Max runs to load
	tableMinWidth = 50  // Minimum table width
)

// Scoreboard shows the leaderboard of finished runs.
// It is embedded in the game model and toggled over the board.
type Scoreboard struct {
	store  *storage.Store
	runs   []storage.Run
	high   int
	count  int
	err    error
	table  table.Model
	width  int
	height int
}

// NewScoreboard creates a scoreboard reading from store, which may be nil.
func NewScoreboard(store *storage.Store, width, height int) Scoreboard {
	b := Scoreboard{store: store, width: width, height: height}
	b.table = b.createTable()
	return b
}

// createTable creates a new table with appropriate columns.
func (b *Scoreboard) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 6},
		{Title: "When", Width: 14},
	}

	// Give spare width to the player column
	if spare := b.width - 4 - tableMinWidth; spare > 0 {
		columns[1].Width += min(spare, 12)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(b.height-8, 3)), // Leave room for header, help, and margins
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Refresh reloads runs from the store.
func (b *Scoreboard) Refresh() {
	if b.store == nil {
		b.runs = nil
		b.updateTableRows()
		return
	}

	b.runs, b.err = b.store.TopScores(maxScores)
	if b.err == nil {
		b.high, b.err = b.store.HighScore()
	}
	if b.err == nil {
		b.count, b.err = b.store.Count()
	}
	b.updateTableRows()
}

// updateTableRows updates the table with current runs.
func (b *Scoreboard) updateTableRows() {
	rows := make([]table.Row, len(b.runs))
	for i, r := range b.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Player,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Level),
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	b.table.SetRows(rows)

	// Reset cursor to top
	b.table.GotoTop()
}

// Resize adapts the table to a new terminal size.
func (b *Scoreboard) Resize(width, height int) {
	b.width = width
	b.height = height
	b.table = b.createTable()
	b.updateTableRows()
}

// Update scrolls the table.
func (b Scoreboard) Update(msg tea.KeyMsg, keys KeyMap) (Scoreboard, tea.Cmd) {
	if key.Matches(msg, keys.Up) || key.Matches(msg, keys.Down) {
		var cmd tea.Cmd
		b.table, cmd = b.table.Update(msg)
		return b, cmd
	}
	return b, nil
}

// View renders the scoreboard.
func (b Scoreboard) View() string {
	var sb strings.Builder

	// Title
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	sb.WriteString(titleStyle.Render(centerText("LEADERBOARD", b.width)))
	sb.WriteString("\n")
	subtitle := fmt.Sprintf("%d runs  |  best %d", b.count, b.high)
	sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(centerText(subtitle, b.width)))
	sb.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	sb.WriteString(lipgloss.PlaceHorizontal(b.width, lipgloss.Center, tableStyle.Render(b.renderTableContent())))
	return sb.String()
}

// renderTableContent renders the table or empty message.
func (b Scoreboard) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case b.err != nil:
		return emptyStyle.Render("Leaderboard unavailable:\n" + b.err.Error())
	case len(b.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nCross the river to set a high score!")
	}
	return b.table.View()
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
