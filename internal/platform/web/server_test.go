package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-frogger/internal/storage"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server, *storage.Store) {
	t.Helper()
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := DefaultConfig()
	cfg.Store = store
	srv := NewServer(cfg)
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return srv, ts, store
}

func TestIndex(t *testing.T) {
	_, ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}
}

func TestHealth(t *testing.T) {
	_, ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()

	var body healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "ok" || body.Sessions != 0 {
		t.Errorf("health = %+v", body)
	}
}

func TestScores(t *testing.T) {
	_, ts, store := newTestServer(t)
	if _, err := store.SaveRun("alice", 1100, 2); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	resp, err := http.Get(ts.URL + "/scores")
	if err != nil {
		t.Fatalf("GET /scores: %v", err)
	}
	defer resp.Body.Close()

	var entries []scoreEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(entries) != 1 || entries[0] != (scoreEntry{Player: "alice", Score: 1100, Level: 2}) {
		t.Errorf("scores = %+v", entries)
	}
}

func TestPlay(t *testing.T) {
	srv, ts, _ := newTestServer(t)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/play?player=bob"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	readFrame := func() Frame {
		t.Helper()
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var f Frame
		if err := conn.ReadJSON(&f); err != nil {
			t.Fatalf("read frame: %v", err)
		}
		return f
	}
	frogY := func(f Frame) (float64, bool) {
		for _, e := range f.Upserts {
			if e.ID == "frog" {
				return e.Y, true
			}
		}
		return 0, false
	}

	first := readFrame()
	if y, ok := frogY(first); !ok || y != 570 {
		t.Fatalf("first frame frog y = %g (found %v)", y, ok)
	}
	if srv.Sessions() != 1 {
		t.Errorf("sessions = %d, want 1", srv.Sessions())
	}

	if err := conn.WriteJSON(keyMessage{Key: "KeyW"}); err != nil {
		t.Fatalf("write key: %v", err)
	}
	for {
		if y, _ := frogY(readFrame()); y == 540 {
			break
		}
	}

	conn.Close()
	deadline := time.Now().Add(2 * time.Second)
	for srv.Sessions() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("session not released")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
