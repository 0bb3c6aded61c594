// Package tui provides the Bubble Tea shell for Frogger.
// It maps keys to session actions and renders published worlds.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/session"
)

// StateMsg carries a world published by the session.
type StateMsg frogger.World

// SessionEndedMsg is sent when the session's game loop exits.
type SessionEndedMsg struct{}

// waitForState returns a command that blocks until the session publishes
// a new world. Only the newest world is delivered; intermediate ones are skipped.
func waitForState(s *session.Session) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-s.Updates():
			return StateMsg(s.World())
		case <-s.Done():
			return SessionEndedMsg{}
		}
	}
}
