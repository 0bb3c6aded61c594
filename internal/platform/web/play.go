package web

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/session"
)

const writeWait = 5 * time.Second

// handlePlay upgrades to a websocket and runs one game for the connection.
// Frames flow out from a writer goroutine; key messages are read here.
func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	player := r.URL.Query().Get("player")

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.Close()

	sess, err := session.New(session.Options{
		Rules:  s.config.Rules,
		Store:  s.config.Store,
		Player: player,
		Logger: s.logger,
	})
	if err != nil {
		s.logger.Error("cannot create session", "error", err)
		closeWith(conn, websocket.CloseInternalServerErr, "cannot start game")
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	if err := sess.Start(ctx); err != nil {
		s.logger.Error("cannot start session", "error", err)
		closeWith(conn, websocket.CloseInternalServerErr, "cannot start game")
		return
	}
	s.sessions.Register(sess)
	defer func() {
		sess.Stop()
		s.sessions.Unregister(sess.ID())
	}()

	s.logger.Info("browser connected", "remote", r.RemoteAddr, "session", sess.ID())

	written := make(chan struct{})
	go func() {
		defer close(written)
		s.writeFrames(ctx, conn, sess)
		cancel()
		// Unblocks readKeys when the client never answers the close frame.
		conn.Close()
	}()

	s.readKeys(ctx, conn, sess)
	cancel()
	<-written
	s.logger.Info("browser disconnected", "remote", r.RemoteAddr, "session", sess.ID())
}

// writeFrames pushes the latest world whenever the session publishes one.
func (s *Server) writeFrames(ctx context.Context, conn *websocket.Conn, sess *session.Session) {
	frames := newFrameBuilder()
	send := func() bool {
		conn.SetWriteDeadline(time.Now().Add(writeWait)) //nolint:errcheck
		if err := conn.WriteJSON(frames.Next(sess.World())); err != nil {
			s.logger.Debug("write failed", "session", sess.ID(), "error", err)
			return false
		}
		return true
	}

	if !send() {
		return
	}
	for {
		select {
		case <-ctx.Done():
			closeWith(conn, websocket.CloseNormalClosure, "")
			return
		case <-sess.Done():
			closeWith(conn, websocket.CloseNormalClosure, "game ended")
			return
		case <-sess.Updates():
			if !send() {
				return
			}
		}
	}
}

// readKeys applies key messages until the connection closes.
func (s *Server) readKeys(ctx context.Context, conn *websocket.Conn, sess *session.Session) {
	for ctx.Err() == nil {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg keyMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			s.logger.Debug("discarding malformed message", "session", sess.ID(), "error", err)
			continue
		}
		action := keyAction(msg.Key)
		if action == core.ActionNone {
			continue
		}
		if err := sess.Act(action); err != nil {
			s.logger.Debug("input dropped", "session", sess.ID(), "key", msg.Key, "error", err)
		}
	}
}

func closeWith(conn *websocket.Conn, code int, text string) {
	msg := websocket.FormatCloseMessage(code, text)
	conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait)) //nolint:errcheck
}
