package engine

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"
)

// appendReduce records every event in order.
func appendReduce(s []string, e string) []string {
	out := make([]string, len(s), len(s)+1)
	copy(out, s)
	return append(out, e)
}

func tickEvents(t int) []string {
	return []string{fmt.Sprintf("tick%d", t)}
}

func newTestLoop(src TickSource) (*Loop[[]string, string], chan []string) {
	states := make(chan []string, 256)
	l := New(Config[[]string, string]{
		Reduce:     appendReduce,
		TickEvents: tickEvents,
		Source:     src,
		OnState:    func(s []string) { states <- s },
	})
	return l, states
}

// waitFor reads states until one ends with last.
func waitFor(t *testing.T, states <-chan []string, last string) []string {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case s := <-states:
			if len(s) > 0 && s[len(s)-1] == last {
				return s
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %q", last)
			return nil
		}
	}
}

func TestLoopTicks(t *testing.T) {
	src := NewManualSource()
	defer src.Stop()
	l, states := newTestLoop(src)

	if err := l.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer l.Stop()

	src.Advance(3)
	got := waitFor(t, states, "tick2")
	want := []string{"tick0", "tick1", "tick2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("state = %v, want %v", got, want)
	}
	if !reflect.DeepEqual(l.State(), want) {
		t.Errorf("State() = %v, want %v", l.State(), want)
	}
}

func TestLoopInputBeforeTick(t *testing.T) {
	src := NewManualSource()
	defer src.Stop()
	l, states := newTestLoop(src)

	if err := l.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer l.Stop()

	for _, e := range []string{"up", "left"} {
		if err := l.Submit(e); err != nil {
			t.Fatalf("Submit(%s): %v", e, err)
		}
	}
	src.Advance(1)

	got := waitFor(t, states, "tick0")
	want := []string{"up", "left", "tick0"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("state = %v, want %v", got, want)
	}
}

func TestLoopLifecycle(t *testing.T) {
	src := NewManualSource()
	defer src.Stop()
	l, states := newTestLoop(src)

	if err := l.Submit("early"); !errors.Is(err, ErrNotRunning) {
		t.Errorf("Submit before Start = %v, want ErrNotRunning", err)
	}
	if err := l.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := l.Start(context.Background()); !errors.Is(err, ErrRunning) {
		t.Errorf("second Start = %v, want ErrRunning", err)
	}

	src.Advance(1)
	waitFor(t, states, "tick0")

	l.Stop()
	l.Stop()
	if l.Running() {
		t.Fatal("loop still running after Stop")
	}
	if err := l.Submit("late"); !errors.Is(err, ErrNotRunning) {
		t.Errorf("Submit after Stop = %v, want ErrNotRunning", err)
	}

	// Restart in place resumes from the last state.
	if err := l.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer l.Stop()
	src.Advance(1)
	got := waitFor(t, states, "tick1")
	if want := []string{"tick0", "tick1"}; !reflect.DeepEqual(got, want) {
		t.Errorf("state = %v, want %v", got, want)
	}
}

func TestLoopContextCancel(t *testing.T) {
	src := NewManualSource()
	defer src.Stop()
	l, _ := newTestLoop(src)

	ctx, cancel := context.WithCancel(context.Background())
	if err := l.Start(ctx); err != nil {
		t.Fatal(err)
	}
	cancel()

	select {
	case <-l.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop on context cancel")
	}
	if l.Running() {
		t.Error("Running() = true after cancel")
	}
}

func TestLoopInputFull(t *testing.T) {
	src := NewManualSource()
	defer src.Stop()
	block := make(chan struct{})
	l := New(Config[int, int]{
		Reduce: func(s, e int) int {
			<-block
			return s + e
		},
		TickEvents:  func(int) []int { return nil },
		Source:      src,
		InputBuffer: 1,
	})
	if err := l.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer l.Stop()
	defer close(block)

	// The first input is taken by the loop and blocks in Reduce, the second
	// fills the buffer.
	var full bool
	for range 10 {
		if err := l.Submit(1); errors.Is(err, ErrInputFull) {
			full = true
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if !full {
		t.Error("expected ErrInputFull")
	}
}

func TestTicker(t *testing.T) {
	tk := NewTicker(time.Millisecond)
	for want := range 3 {
		select {
		case got := <-tk.Ticks():
			if got != want {
				t.Fatalf("tick = %d, want %d", got, want)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("ticker did not fire")
		}
	}
	tk.Stop()
	tk.Stop()
	time.Sleep(10 * time.Millisecond)

	select {
	case n := <-tk.Ticks():
		t.Errorf("tick %d after Stop", n)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestManualSourceStopUnblocks(t *testing.T) {
	src := NewManualSource()
	done := make(chan struct{})
	go func() {
		src.Advance(1)
		close(done)
	}()
	src.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Advance blocked after Stop")
	}
	if src.Next() != 0 {
		t.Errorf("Next() = %d, want 0", src.Next())
	}
}

func TestLatest(t *testing.T) {
	l := NewLatest[int]()
	if _, ok := l.Load(); ok {
		t.Fatal("Load on empty Latest reported a value")
	}

	for i := 1; i <= 3; i++ {
		l.Publish(i)
	}
	select {
	case <-l.Updates():
	default:
		t.Fatal("no update signalled")
	}
	select {
	case <-l.Updates():
		t.Fatal("publishes were not coalesced")
	default:
	}
	if v, ok := l.Load(); !ok || v != 3 {
		t.Errorf("Load = %d, %v; want 3, true", v, ok)
	}
}
