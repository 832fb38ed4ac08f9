package flow

import (
	"math/rand/v2"

	"heartnote/internal/dom"
	"heartnote/internal/timers"
)

// Emitter rains confetti on the finale. Only one ticker can ever be live:
// starting again replaces the running one.
type Emitter struct {
	surface Surface
	sched   timers.Scheduler
	rng     *rand.Rand
	timing  Timing

	ticker timers.Slot
}

func NewEmitter(surface Surface, sched timers.Scheduler, rng *rand.Rand, timing Timing) *Emitter {
	return &Emitter{surface: surface, sched: sched, rng: rng, timing: timing}
}

func (e *Emitter) Start() {
	e.ticker.Clear()
	e.burst()
	e.ticker.Set(e.sched.Repeat(e.timing.Confetti, e.burst))
}

func (e *Emitter) Stop() {
	e.ticker.Clear()
}

func (e *Emitter) Running() bool {
	return e.ticker.Active()
}

func (e *Emitter) burst() {
	if !e.surface.Exists(ElemConfetti) {
		return
	}
	for i := 0; i < ConfettiPerTick; i++ {
		id := e.surface.CreateAndAppend(ElemConfetti, dom.KindConfetti)
		if id == "" {
			return
		}
		if e.rng.Float64() > 0.5 {
			e.surface.SetText(id, pick(e.rng, confettiGlyphs))
			e.surface.SetAttribute(id, AttrSize, pct(15+e.rng.Float64()*15))
		} else {
			e.surface.SetAttribute(id, AttrColor, pick(e.rng, confettiColors))
		}
		e.surface.SetAttribute(id, AttrX, pct(e.rng.Float64()*100))
		e.surface.SetAttribute(id, AttrDuration, secs(2+e.rng.Float64()*2))
		e.surface.SetAttribute(id, AttrDelay, secs(e.rng.Float64()*0.5))
		e.sched.Schedule(e.timing.ConfettiLife, func() { e.surface.Remove(id) })
	}
}
