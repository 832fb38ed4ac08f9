package flow

import (
	"math/rand/v2"
	"strconv"

	"heartnote/internal/content"
	"heartnote/internal/dom"
	"heartnote/internal/timers"
)

// ProgressState is the tap counter of one interaction session.
// Level is always min(MaxLevel, Collected/2) and never decreases.
type ProgressState struct {
	Collected int
	Threshold int
	Level     int
}

func NewProgress() ProgressState {
	return ProgressState{Threshold: Threshold}
}

func LevelFor(collected int) int {
	return min(MaxLevel, collected/2)
}

// Done reports whether the threshold has been reached.
func (p ProgressState) Done() bool {
	return p.Collected >= p.Threshold
}

func (p ProgressState) Fraction() float64 {
	if p.Threshold <= 0 {
		return 0
	}
	return min(1, float64(p.Collected)/float64(p.Threshold))
}

// TapTarget is a single-use heart on the interaction surface.
type TapTarget struct {
	ID        string
	Glyph     string
	X, Y      float64
	Collected bool
}

type TapOutcome struct {
	Accepted     bool
	LevelChanged bool
	Completed    bool
	Level        int
}

// Register counts a tap on t. Taps on a collected target, on nil, or after
// the threshold has been reached leave the state untouched. Completed is
// true only for the tap that lands exactly on the threshold.
func (p ProgressState) Register(t *TapTarget) (ProgressState, TapOutcome) {
	if t == nil || t.Collected || p.Done() {
		return p, TapOutcome{Level: p.Level}
	}
	t.Collected = true
	next := p
	next.Collected++
	out := TapOutcome{Accepted: true, Level: next.Level}
	if lvl := LevelFor(next.Collected); lvl > next.Level {
		next.Level = lvl
		out.Level = lvl
		out.LevelChanged = true
	}
	out.Completed = next.Collected == next.Threshold
	return next, out
}

// Counter owns the interaction screen: the batch of tap targets, the heart
// fill, and the hand-off to the question screen once the heart is full.
type Counter struct {
	surface Surface
	sched   timers.Scheduler
	rng     *rand.Rand
	deck    *content.Deck
	timing  Timing
	fx      *Effects

	state      ProgressState
	targets    map[string]*TapTarget
	order      []string
	pending    timers.Group
	completing bool

	OnTap      func(ProgressState)
	OnLevel    func(level int)
	OnComplete func()
}

func NewCounter(surface Surface, sched timers.Scheduler, rng *rand.Rand, deck *content.Deck, timing Timing, fx *Effects) *Counter {
	return &Counter{
		surface: surface,
		sched:   sched,
		rng:     rng,
		deck:    deck,
		timing:  timing,
		fx:      fx,
		state:   NewProgress(),
		targets: map[string]*TapTarget{},
	}
}

func (c *Counter) State() ProgressState {
	return c.state
}

// Completing is true between the final tap landing and the hand-off.
func (c *Counter) Completing() bool {
	return c.completing
}

// Targets returns the live targets in spawn order.
func (c *Counter) Targets() []TapTarget {
	out := make([]TapTarget, 0, len(c.order))
	for _, id := range c.order {
		if t, ok := c.targets[id]; ok {
			out = append(out, *t)
		}
	}
	return out
}

// Enter resets progress and lays out a fresh batch.
func (c *Counter) Enter() {
	c.Cancel()
	c.state = NewProgress()
	c.completing = false
	c.surface.SetAttribute(ElemHeartFill, AttrLevel, "0")
	for _, class := range []string{ClassPulse, ClassWobble, ClassFull} {
		c.surface.SetClass(ElemHeartFill, class, false)
	}
	c.surface.SetClass(ElemHeartText, ClassExcited, false)
	c.surface.SetText(ElemHeartText, c.message(0))
	c.surface.SetText(ElemMascot, c.deck.Mascot.Idle)
	c.spawn()
}

// Cancel drops every pending removal, regeneration and hand-off.
func (c *Counter) Cancel() {
	c.pending.CancelAll()
}

// Clear cancels pending work and empties the surface without spawning.
func (c *Counter) Clear() {
	c.Cancel()
	c.state = NewProgress()
	c.completing = false
	c.targets = map[string]*TapTarget{}
	c.order = nil
	c.surface.ClearChildren(ElemTapArea)
}

// Tap registers a tap on the target with the given node id. It reports
// whether the tap counted.
func (c *Counter) Tap(id string) bool {
	t, ok := c.targets[id]
	if !ok {
		return false
	}
	next, out := c.state.Register(t)
	if !out.Accepted {
		return false
	}
	c.state = next
	c.surface.SetClass(id, ClassCollected, true)
	c.fx.Burst(t.X, t.Y)
	if out.LevelChanged {
		c.applyLevel(out.Level)
	}
	if c.OnTap != nil {
		c.OnTap(c.state)
	}
	completed := out.Completed
	c.pending.Add(c.sched.Schedule(c.timing.Collect, func() {
		c.surface.Remove(id)
		c.forget(id)
		switch {
		case !c.state.Done():
			c.spawn()
		case completed:
			c.complete()
		}
	}))
	return true
}

func (c *Counter) applyLevel(level int) {
	c.surface.SetAttribute(ElemHeartFill, AttrLevel, strconv.Itoa(level))
	c.pending.Add(c.fx.Flash(ElemHeartFill, ClassPulse, c.timing.Pulse))
	c.pending.Add(c.fx.Flash(ElemHeartFill, ClassWobble, c.timing.Wobble))
	if c.surface.Exists(ElemHeartText) {
		c.surface.SetText(ElemHeartText, c.message(level))
		if level >= 4 {
			c.surface.SetClass(ElemHeartText, ClassExcited, true)
		}
	}
	if level == MaxLevel {
		c.surface.SetClass(ElemHeartFill, ClassFull, true)
	}
	if c.OnLevel != nil {
		c.OnLevel(level)
	}
}

func (c *Counter) complete() {
	c.completing = true
	c.surface.SetText(ElemMascot, c.deck.Mascot.Complete)
	c.pending.Add(c.sched.Schedule(c.timing.Complete, func() {
		c.completing = false
		if c.OnComplete != nil {
			c.OnComplete()
		}
	}))
}

// spawn replaces whatever targets remain with a fresh batch.
func (c *Counter) spawn() {
	c.surface.ClearChildren(ElemTapArea)
	c.targets = map[string]*TapTarget{}
	c.order = c.order[:0]
	for i := 0; i < BatchSize; i++ {
		id := c.surface.CreateAndAppend(ElemTapArea, dom.KindTapHeart)
		if id == "" {
			return
		}
		t := &TapTarget{
			ID:    id,
			Glyph: pick(c.rng, tapGlyphs),
			X:     10 + c.rng.Float64()*80,
			Y:     10 + c.rng.Float64()*80,
		}
		c.surface.SetText(id, t.Glyph)
		c.surface.SetAttribute(id, AttrX, pct(t.X))
		c.surface.SetAttribute(id, AttrY, pct(t.Y))
		c.targets[id] = t
		c.order = append(c.order, id)
	}
}

func (c *Counter) forget(id string) {
	if _, ok := c.targets[id]; !ok {
		return
	}
	delete(c.targets, id)
	for i, o := range c.order {
		if o == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *Counter) message(level int) string {
	msgs := c.deck.HeartMessages
	if level < 0 || level >= len(msgs) {
		return ""
	}
	return msgs[level]
}
