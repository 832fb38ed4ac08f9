package flow

import (
	"math/rand/v2"
	"strings"

	"heartnote/internal/content"
	"heartnote/internal/timers"
)

// Hooks lets the owner of a session observe it without the session knowing
// about logging or storage. Every hook is optional.
type Hooks struct {
	Screen func(ScreenID)
	Tap    func(ProgressState)
	Level  func(level int)
	Reject func(index int, response string)
}

type Options struct {
	Deck   content.Deck
	Name   string
	Rand   *rand.Rand
	Timing Timing
	Hooks  Hooks
}

// Session is one run of the greeting. It owns every component's state and
// must only be driven from a single goroutine, the same one the scheduler
// delivers callbacks on.
type Session struct {
	surface Surface
	sched   timers.Scheduler
	deck    content.Deck
	name    string
	timing  Timing

	Nav       *Navigator
	Counter   *Counter
	Responder *Responder
	Revealer  *Revealer
	Emitter   *Emitter
	FX        *Effects

	music bool
}

func NewSession(surface Surface, sched timers.Scheduler, opts Options) *Session {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Timing == (Timing{}) {
		opts.Timing = DefaultTiming()
	}
	if opts.Deck.Kind == "" {
		opts.Deck = content.Default()
	}
	s := &Session{
		surface: surface,
		sched:   sched,
		deck:    opts.Deck,
		name:    strings.TrimSpace(opts.Name),
		timing:  opts.Timing,
	}
	s.FX = NewEffects(surface, sched, opts.Rand, opts.Timing)
	s.Nav = NewNavigator(surface)
	s.Counter = NewCounter(surface, sched, opts.Rand, &s.deck, opts.Timing, s.FX)
	s.Responder = NewResponder(surface, sched, &s.deck, opts.Timing, s.FX)
	s.Revealer = NewRevealer(surface, sched, opts.Timing)
	s.Emitter = NewEmitter(surface, sched, opts.Rand, opts.Timing)

	s.Counter.OnTap = opts.Hooks.Tap
	s.Counter.OnLevel = opts.Hooks.Level
	s.Counter.OnComplete = func() { s.Nav.GoTo(ScreenQuestion) }
	s.Responder.OnReject = opts.Hooks.Reject
	s.Responder.OnAccept = func() { s.Nav.GoTo(ScreenNote) }

	s.Nav.Hook(ScreenInteraction, s.Counter.Enter)
	s.Nav.Hook(ScreenQuestion, s.Responder.Enter)
	s.Nav.Hook(ScreenNote, func() { s.Revealer.Start(s.Note()) })
	s.Nav.Hook(ScreenFinale, s.Emitter.Start)
	s.Nav.Observe(opts.Hooks.Screen)
	return s
}

// Start writes the static copy, scatters the background hearts and shows
// the landing screen.
func (s *Session) Start() {
	s.surface.SetText(ElemLandingText, s.deck.Landing.Title)
	s.surface.SetText(ElemLandingSub, s.deck.Landing.Subtitle)
	s.surface.SetText(ElemLandingYes, s.deck.Landing.Yes)
	s.surface.SetText(ElemLandingNo, s.deck.Landing.No)
	s.surface.SetText(ElemPrompt, s.deck.Question.Prompt)
	s.surface.SetText(ElemYes, s.deck.Question.Yes)
	s.surface.SetText(ElemNo, s.deck.Question.No)
	s.surface.SetText(ElemFinaleCard, s.deck.Finale.CardMD)
	s.setMusic(false)
	s.FX.BackgroundHearts(BackgroundCount)
	s.Nav.GoTo(ScreenLanding)
}

func (s *Session) Screen() ScreenID {
	return s.Nav.Current()
}

func (s *Session) Name() string {
	return s.name
}

func (s *Session) Deck() content.Deck {
	return s.deck
}

func (s *Session) Note() string {
	return ComposeNote(s.deck, s.name)
}

func (s *Session) Progress() ProgressState {
	return s.Counter.State()
}

// Begin answers the landing screen.
func (s *Session) Begin() bool {
	if s.Screen() != ScreenLanding {
		return false
	}
	return s.Nav.GoTo(ScreenInteraction)
}

func (s *Session) LandingNo() {
	s.FX.Wiggle(ElemLandingNo)
}

func (s *Session) Tap(id string) bool {
	if s.Screen() != ScreenInteraction {
		return false
	}
	return s.Counter.Tap(id)
}

func (s *Session) Reject() (string, bool) {
	if s.Screen() != ScreenQuestion {
		return "", false
	}
	return s.Responder.Reject()
}

func (s *Session) Accept() bool {
	if s.Screen() != ScreenQuestion {
		return false
	}
	return s.Responder.Accept()
}

// Continue leaves the note for the finale, finishing the typing first if
// it is still running.
func (s *Session) Continue() bool {
	if s.Screen() != ScreenNote {
		return false
	}
	if !s.Revealer.Done() {
		s.Revealer.Skip()
		return false
	}
	s.Revealer.Stop()
	return s.Nav.GoTo(ScreenFinale)
}

func (s *Session) Music() bool {
	return s.music
}

func (s *Session) ToggleMusic() bool {
	s.setMusic(!s.music)
	return s.music
}

func (s *Session) setMusic(on bool) {
	s.music = on
	if on {
		s.surface.SetText(ElemMusic, "🎵 Playing")
	} else {
		s.surface.SetText(ElemMusic, "Music 🎵")
	}
	s.surface.SetClass(ElemMusic, ClassPlaying, on)
}

// Stop cancels every timer the session owns and leaves the screens as they
// are.
func (s *Session) Stop() {
	s.Emitter.Stop()
	s.Revealer.Stop()
	s.Responder.Cancel()
	s.Counter.Cancel()
}

// Reset stops every timer the session owns, clears the transient nodes and
// returns to the landing screen.
func (s *Session) Reset() {
	s.Emitter.Stop()
	s.Revealer.Stop()
	s.Responder.Enter()
	s.Counter.Clear()
	s.setMusic(false)
	s.surface.ClearChildren(ElemConfetti)
	s.surface.ClearChildren(ElemBursts)
	s.Nav.GoTo(ScreenLanding)
}
