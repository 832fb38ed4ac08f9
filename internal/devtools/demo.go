package devtools

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"heartnote/internal/flow"
	"heartnote/internal/timers"
)

// Scenario is a named starting point for screenshots and manual checks.
type Scenario struct {
	Name       string
	Screen     flow.ScreenID
	Rejects    int
	SkipTyping bool
	Music      bool
	Autoplay   bool
}

type Manager struct{}

func NewManager() *Manager { return &Manager{} }

func (m *Manager) Resolve(name string) Scenario {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "landing", "":
		return Scenario{Name: "landing", Screen: flow.ScreenLanding}
	case "interaction", "tap":
		return Scenario{Name: "interaction", Screen: flow.ScreenInteraction}
	case "question":
		return Scenario{Name: "question", Screen: flow.ScreenQuestion}
	case "question_teased", "teased":
		return Scenario{Name: "question_teased", Screen: flow.ScreenQuestion, Rejects: 2}
	case "note":
		return Scenario{Name: "note", Screen: flow.ScreenNote, SkipTyping: true}
	case "note_typing":
		return Scenario{Name: "note_typing", Screen: flow.ScreenNote}
	case "finale":
		return Scenario{Name: "finale", Screen: flow.ScreenFinale, Music: true}
	case "full", "autoplay":
		return Scenario{Name: "full", Screen: flow.ScreenLanding, Autoplay: true}
	default:
		return Scenario{Name: "landing", Screen: flow.ScreenLanding}
	}
}

// Apply jumps a started session straight to the scenario's screen. Entry
// hooks still run, so the screen looks the way it would after playing.
func (m *Manager) Apply(sess *flow.Session, sc Scenario) {
	if sess == nil {
		return
	}
	if sc.Screen != "" && sc.Screen != sess.Screen() {
		sess.Nav.GoTo(sc.Screen)
	}
	for i := 0; i < sc.Rejects; i++ {
		sess.Reject()
	}
	if sc.SkipTyping {
		sess.Revealer.Skip()
	}
	if sc.Music != sess.Music() {
		sess.ToggleMusic()
	}
}

// Autoplay walks the whole flow one step per tick: begin, tap every heart,
// tease the question once, accept, wait for the note and continue. It stops
// itself on the finale.
func (m *Manager) Autoplay(sess *flow.Session, sched timers.Scheduler, every time.Duration) timers.Handle {
	var h timers.Handle
	teased := false
	h = sched.Repeat(every, func() {
		switch sess.Screen() {
		case flow.ScreenLanding:
			teased = false
			sess.Begin()
		case flow.ScreenInteraction:
			for _, t := range sess.Counter.Targets() {
				if !t.Collected {
					sess.Tap(t.ID)
					break
				}
			}
		case flow.ScreenQuestion:
			if sess.Responder.Accepting() {
				return
			}
			if !teased {
				teased = true
				sess.Reject()
				return
			}
			sess.Accept()
		case flow.ScreenNote:
			if sess.Revealer.Done() {
				sess.Continue()
			}
		case flow.ScreenFinale:
			if h != nil {
				h.Cancel()
			}
		}
	})
	return h
}

func (m *Manager) SetState(ctx context.Context, cacheDir string, state string, rendered bool) error {
	_ = ctx
	if cacheDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		cacheDir = filepath.Join(home, ".cache", "heartnote")
	}
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return err
	}
	payload := map[string]any{
		"state":    strings.TrimSpace(state),
		"rendered": rendered,
	}
	b, err := yaml.Marshal(payload)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(cacheDir, "dev_state.yaml"), b, 0o644)
}

var _ Demo = (*Manager)(nil)
