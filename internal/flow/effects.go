package flow

import (
	"math/rand/v2"
	"strconv"
	"time"

	"heartnote/internal/dom"
	"heartnote/internal/timers"
)

var (
	tapGlyphs        = []string{"💗", "💖", "💕", "💝", "💜"}
	backgroundGlyphs = []string{"💗", "💜", "💖", "💝", "💕"}
	confettiGlyphs   = []string{"💗", "💜", "💖", "💝", "✨", "⭐"}
	confettiColors   = []string{"#FFB6C1", "#DDA0DD", "#FFF4E6", "#FFE4E1", "#E6E6FA"}
)

// Effects spawns the purely decorative nodes: floating hearts, bursts and
// wiggles. Nothing here feeds back into greeting state.
type Effects struct {
	surface Surface
	sched   timers.Scheduler
	rng     *rand.Rand
	timing  Timing
}

func NewEffects(surface Surface, sched timers.Scheduler, rng *rand.Rand, timing Timing) *Effects {
	return &Effects{surface: surface, sched: sched, rng: rng, timing: timing}
}

func (e *Effects) BackgroundHearts(n int) {
	for i := 0; i < n; i++ {
		id := e.surface.CreateAndAppend(ElemBackground, dom.KindBgHeart)
		if id == "" {
			return
		}
		e.surface.SetText(id, pick(e.rng, backgroundGlyphs))
		e.surface.SetAttribute(id, AttrX, pct(e.rng.Float64()*100))
		e.surface.SetAttribute(id, AttrDelay, secs(e.rng.Float64()*8))
		e.surface.SetAttribute(id, AttrDuration, secs(8+e.rng.Float64()*4))
		e.surface.SetAttribute(id, AttrSize, strconv.Itoa(20+e.rng.IntN(20)))
	}
}

// Burst drops a short-lived heart at x,y (percent of the viewport).
func (e *Effects) Burst(x, y float64) {
	id := e.surface.CreateAndAppend(ElemBursts, dom.KindBurst)
	if id == "" {
		return
	}
	e.surface.SetText(id, "💖")
	e.surface.SetAttribute(id, AttrX, pct(x))
	e.surface.SetAttribute(id, AttrY, pct(y))
	e.sched.Schedule(e.timing.Burst, func() { e.surface.Remove(id) })
}

func (e *Effects) RandomBurst() {
	e.Burst(e.rng.Float64()*100, e.rng.Float64()*100)
}

func (e *Effects) Wiggle(id string) {
	if !e.surface.Exists(id) {
		return
	}
	e.surface.SetAttribute(id, AttrAnimation, "wiggle")
	e.sched.Schedule(e.timing.Wiggle, func() { e.surface.SetAttribute(id, AttrAnimation, "") })
}

// Flash sets class on id and clears it again after d.
func (e *Effects) Flash(id, class string, d time.Duration) timers.Handle {
	e.surface.SetClass(id, class, true)
	return e.sched.Schedule(d, func() { e.surface.SetClass(id, class, false) })
}

func pick(rng *rand.Rand, from []string) string {
	return from[rng.IntN(len(from))]
}

func pct(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func secs(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + "s"
}

// Percent parses a position attribute written by the greeting; bad or
// missing values read as 0.
func Percent(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}
