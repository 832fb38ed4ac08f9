package flow

import (
	"math/rand/v2"
	"testing"
	"time"

	"heartnote/internal/content"
	"heartnote/internal/dom"
	"heartnote/internal/timers"
)

type harness struct {
	s       *Session
	doc     *dom.Document
	clock   *timers.Manual
	screens []ScreenID
	levels  []int
	rejects []int
}

func newHarness(t *testing.T, name string) *harness {
	t.Helper()
	h := &harness{doc: dom.New(), clock: timers.NewManual()}
	Mount(h.doc)
	h.s = NewSession(h.doc, h.clock, Options{
		Deck: content.Default(),
		Name: name,
		Rand: rand.New(rand.NewPCG(1, 2)),
		Hooks: Hooks{
			Screen: func(id ScreenID) { h.screens = append(h.screens, id) },
			Level:  func(l int) { h.levels = append(h.levels, l) },
			Reject: func(i int, _ string) { h.rejects = append(h.rejects, i) },
		},
	})
	h.s.Start()
	return h
}

func (h *harness) advance(d time.Duration) {
	h.clock.Advance(d)
}

// tapNext taps the first uncollected target and reports whether one counted.
func (h *harness) tapNext() bool {
	for _, tg := range h.s.Counter.Targets() {
		if !tg.Collected {
			return h.s.Tap(tg.ID)
		}
	}
	return false
}

func (h *harness) entries(id ScreenID) int {
	n := 0
	for _, s := range h.screens {
		if s == id {
			n++
		}
	}
	return n
}

func (h *harness) activeScreens() []string {
	return h.doc.ActiveOf(dom.KindScreen)
}
