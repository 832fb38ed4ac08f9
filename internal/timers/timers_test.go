package timers

import (
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestManualRunsTasksInDueOrder(t *testing.T) {
	m := NewManual()
	var got []string
	m.Schedule(30*time.Millisecond, func() { got = append(got, "c") })
	m.Schedule(10*time.Millisecond, func() { got = append(got, "a") })
	m.Schedule(10*time.Millisecond, func() { got = append(got, "b") })

	m.Advance(20 * time.Millisecond)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected order after 20ms: %v", got)
	}
	m.Advance(10 * time.Millisecond)
	if len(got) != 3 || got[2] != "c" {
		t.Fatalf("expected c at 30ms, got %v", got)
	}
	if m.Pending() != 0 {
		t.Fatalf("expected no pending tasks, got %d", m.Pending())
	}
}

func TestManualRepeatUntilCancelled(t *testing.T) {
	m := NewManual()
	n := 0
	h := m.Repeat(100*time.Millisecond, func() { n++ })
	m.Advance(350 * time.Millisecond)
	if n != 3 {
		t.Fatalf("expected 3 ticks, got %d", n)
	}
	h.Cancel()
	m.Advance(time.Second)
	if n != 3 {
		t.Fatalf("expected no ticks after cancel, got %d", n)
	}
	if m.Repeating() != 0 {
		t.Fatalf("expected no repeating tasks")
	}
}

func TestManualCallbackCanScheduleWithinSameAdvance(t *testing.T) {
	m := NewManual()
	fired := false
	m.Schedule(10*time.Millisecond, func() {
		m.Schedule(10*time.Millisecond, func() { fired = true })
	})
	m.Advance(25 * time.Millisecond)
	if !fired {
		t.Fatalf("expected nested task to fire inside the same advance")
	}
}

func TestManualFlushSkipsRepeaters(t *testing.T) {
	m := NewManual()
	ticks := 0
	m.Repeat(50*time.Millisecond, func() { ticks++ })
	done := false
	m.Schedule(120*time.Millisecond, func() { done = true })
	m.Flush()
	if !done {
		t.Fatalf("expected one-shot to run on flush")
	}
	if ticks != 2 {
		t.Fatalf("expected 2 repeater ticks before 120ms, got %d", ticks)
	}
}

func TestGroupCancelAll(t *testing.T) {
	m := NewManual()
	var g Group
	ran := 0
	g.Add(m.Schedule(time.Millisecond, func() { ran++ }))
	g.Add(m.Repeat(time.Millisecond, func() { ran++ }))
	g.CancelAll()
	m.Advance(10 * time.Millisecond)
	if ran != 0 || g.Len() != 0 {
		t.Fatalf("expected cancelled group, ran=%d len=%d", ran, g.Len())
	}
}

func TestSlotReplacesPrevious(t *testing.T) {
	m := NewManual()
	var s Slot
	s.Set(m.Repeat(10*time.Millisecond, func() {}))
	s.Set(m.Repeat(10*time.Millisecond, func() {}))
	if m.Repeating() != 1 {
		t.Fatalf("expected exactly one live repeater, got %d", m.Repeating())
	}
	s.Clear()
	if m.Repeating() != 0 || s.Active() {
		t.Fatalf("expected slot cleared")
	}
}

func TestLoopPostsCallbacks(t *testing.T) {
	var mu sync.Mutex
	var posted int
	l := NewLoop(func(fn func()) {
		mu.Lock()
		posted++
		mu.Unlock()
		fn()
	})
	done := make(chan struct{})
	l.Schedule(5*time.Millisecond, func() { close(done) })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("scheduled callback never ran")
	}
	mu.Lock()
	defer mu.Unlock()
	if posted != 1 {
		t.Fatalf("expected one post, got %d", posted)
	}
}

func TestLoopCancelledScheduleNeverRuns(t *testing.T) {
	l := NewLoop(nil)
	ran := make(chan struct{}, 1)
	h := l.Schedule(20*time.Millisecond, func() { ran <- struct{}{} })
	h.Cancel()
	h.Cancel()
	select {
	case <-ran:
		t.Fatalf("cancelled task ran")
	case <-time.After(60 * time.Millisecond):
	}
}

func TestLoopRepeatStopsGoroutineOnCancel(t *testing.T) {
	l := NewLoop(nil)
	ticks := make(chan struct{}, 16)
	h := l.Repeat(2*time.Millisecond, func() {
		select {
		case ticks <- struct{}{}:
		default:
		}
	})
	select {
	case <-ticks:
	case <-time.After(time.Second):
		t.Fatalf("repeater never ticked")
	}
	h.Cancel()
	// goleak in TestMain catches the ticker goroutine if it survives.
	time.Sleep(10 * time.Millisecond)
}
