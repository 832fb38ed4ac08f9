package flow

import (
	"fmt"
	"strings"

	"heartnote/internal/content"
	"heartnote/internal/timers"
)

// ComposeNote builds the note text, greeting the visitor by name when one
// is known.
func ComposeNote(deck content.Deck, name string) string {
	parts := []string{deck.Note.Heading}
	if name = strings.TrimSpace(name); name != "" && deck.Note.Greeting != "" {
		parts = append(parts, fmt.Sprintf(deck.Note.Greeting, name))
	}
	parts = append(parts, deck.Note.Lines...)
	return strings.Join(parts, "\n\n")
}

// Revealer types a message into the note one character at a time.
type Revealer struct {
	surface Surface
	sched   timers.Scheduler
	timing  Timing

	ticker timers.Slot
	runes  []rune
	shown  int
}

func NewRevealer(surface Surface, sched timers.Scheduler, timing Timing) *Revealer {
	return &Revealer{surface: surface, sched: sched, timing: timing}
}

// Start restarts the reveal from an empty note.
func (r *Revealer) Start(message string) {
	r.ticker.Clear()
	r.runes = []rune(message)
	r.shown = 0
	if !r.surface.Exists(ElemNote) {
		return
	}
	r.surface.SetText(ElemNote, "")
	r.ticker.Set(r.sched.Repeat(r.timing.TypeInterval, r.step))
}

func (r *Revealer) Stop() {
	r.ticker.Clear()
}

func (r *Revealer) step() {
	if r.shown >= len(r.runes) {
		r.ticker.Clear()
		return
	}
	r.shown++
	r.surface.SetText(ElemNote, string(r.runes[:r.shown]))
}

// Skip shows the rest of the message at once.
func (r *Revealer) Skip() {
	if r.runes == nil {
		return
	}
	r.ticker.Clear()
	r.shown = len(r.runes)
	r.surface.SetText(ElemNote, string(r.runes))
}

func (r *Revealer) Shown() string {
	return string(r.runes[:r.shown])
}

func (r *Revealer) Done() bool {
	return r.shown >= len(r.runes)
}

func (r *Revealer) Running() bool {
	return r.ticker.Active()
}
