package flow

import (
	"time"

	"heartnote/internal/content"
	"heartnote/internal/timers"
)

// RejectIndex picks the response for the calls-th rejection; the list
// repeats forever. It returns -1 for an empty list.
func RejectIndex(calls, n int) int {
	if n <= 0 || calls < 0 {
		return -1
	}
	return calls % n
}

// Responder answers the yes/no question.
type Responder struct {
	surface Surface
	sched   timers.Scheduler
	deck    *content.Deck
	timing  Timing
	fx      *Effects

	calls     int
	accepting bool
	pending   timers.Group

	OnReject func(index int, response string)
	OnAccept func()
}

func NewResponder(surface Surface, sched timers.Scheduler, deck *content.Deck, timing Timing, fx *Effects) *Responder {
	return &Responder{surface: surface, sched: sched, deck: deck, timing: timing, fx: fx}
}

func (r *Responder) Calls() int {
	return r.calls
}

func (r *Responder) Accepting() bool {
	return r.accepting
}

func (r *Responder) Enter() {
	r.Cancel()
	r.calls = 0
	r.surface.SetAttribute(ElemNoBubble, AttrDisplay, "none")
}

func (r *Responder) Cancel() {
	r.pending.CancelAll()
	r.accepting = false
}

// Reject shows the next response in the loop. Without a bubble to show it
// in nothing happens and the count does not move.
func (r *Responder) Reject() (string, bool) {
	if !r.surface.Exists(ElemNoBubble) {
		return "", false
	}
	responses := r.deck.Question.NoResponses
	idx := RejectIndex(r.calls, len(responses))
	if idx < 0 {
		return "", false
	}
	msg := responses[idx]
	r.surface.SetText(ElemNoBubble, msg)
	r.surface.SetAttribute(ElemNoBubble, AttrDisplay, "block")
	r.surface.SetAttribute(ElemNoBubble, AttrAnimation, "none")
	r.pending.Add(r.sched.Schedule(r.timing.BubbleRestart, func() {
		r.surface.SetAttribute(ElemNoBubble, AttrAnimation, "fadeInUp")
	}))
	r.calls++
	if r.OnReject != nil {
		r.OnReject(idx, msg)
	}
	return msg, true
}

// Accept fires the celebration bursts and then hands off. A second accept
// while the first is still running is ignored.
func (r *Responder) Accept() bool {
	if r.accepting {
		return false
	}
	r.accepting = true
	for i := 0; i < AcceptBursts; i++ {
		r.pending.Add(r.sched.Schedule(time.Duration(i)*r.timing.AcceptStep, r.fx.RandomBurst))
	}
	r.pending.Add(r.sched.Schedule(r.timing.AcceptAdvance, func() {
		r.accepting = false
		if r.OnAccept != nil {
			r.OnAccept()
		}
	}))
	return true
}
