package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"heartnote/internal/content"
	"heartnote/internal/devtools"
	"heartnote/internal/dom"
	"heartnote/internal/flow"
	"heartnote/internal/state"
	"heartnote/internal/telemetry"
	"heartnote/internal/timers"
	"heartnote/internal/ui"
)

const autoplayStep = 400 * time.Millisecond

type App struct {
	cfg Config

	logger *telemetry.Logger
	store  Store
	demo   *devtools.Manager

	view  *ui.Root
	doc   *dom.Document
	sched timers.Scheduler
	sess  *flow.Session
	deck  content.Deck

	sessionID string
	name      string
	autoplay  timers.Handle

	taps    int
	rejects int
	resets  int
}

func New(cfg Config) (*App, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, err
	}

	logger, err := telemetry.NewJSONLogger(cfg.LogPath)
	if err != nil {
		return nil, err
	}

	store, err := state.NewSQLite(filepath.Join(cfg.DataDir, "state.db"))
	if err != nil {
		_ = logger.Close()
		return nil, err
	}
	if err := store.EnsureSchema(context.Background()); err != nil {
		_ = store.Close()
		_ = logger.Close()
		return nil, err
	}

	deck, err := content.Load(cfg.ContentPath)
	if err != nil {
		_ = store.Close()
		_ = logger.Close()
		return nil, err
	}

	doc := dom.New()
	flow.Mount(doc)
	view := ui.New(ui.Options{
		Document:     doc,
		ASCIIOnly:    cfg.ASCIIOnly,
		Debug:        cfg.Debug,
		StyleVariant: cfg.UI.StyleVariant,
		MotionLevel:  cfg.UI.MotionLevel,
		MouseScope:   cfg.UI.MouseScope,
	})
	return newApp(cfg, logger, store, deck, view, doc, timers.NewLoop(view.Post)), nil
}

// newApp wires an App from ready parts. Tests hand it a manual clock.
func newApp(cfg Config, logger *telemetry.Logger, store Store, deck content.Deck, view *ui.Root, doc *dom.Document, sched timers.Scheduler) *App {
	a := &App{
		cfg:       cfg,
		logger:    logger,
		store:     store,
		demo:      devtools.NewManager(),
		view:      view,
		doc:       doc,
		sched:     sched,
		deck:      deck,
		sessionID: uuid.NewString(),
	}
	a.name = a.resolveName(context.Background())
	a.sess = flow.NewSession(doc, sched, flow.Options{
		Deck: deck,
		Name: a.name,
		Hooks: flow.Hooks{
			Screen: a.onScreen,
			Tap:    a.onTap,
			Level:  a.onLevel,
			Reject: a.onReject,
		},
	})
	view.SetController(a)
	return a
}

func (a *App) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	a.logger.Info("app.start", map[string]any{
		"session":  a.sessionID,
		"named":    a.name != "",
		"deck":     firstNonEmpty(a.deck.Path, "builtin"),
		"scenario": a.cfg.Scenario,
	})
	a.begin(ctx)

	g, gctx := errgroup.WithContext(ctx)
	done := make(chan struct{})
	g.Go(func() error {
		defer close(done)
		return a.view.Run()
	})
	g.Go(func() error {
		select {
		case <-gctx.Done():
			a.view.Stop()
		case <-done:
		}
		return nil
	})
	err := g.Wait()
	a.logger.Info("app.stop", map[string]any{
		"session": a.sessionID,
		"screen":  a.sess.Screen().Name(),
		"taps":    a.taps,
		"rejects": a.rejects,
		"resets":  a.resets,
	})
	return err
}

// begin journals the session and shows the first screen. Before the view
// runs, Post executes inline.
func (a *App) begin(ctx context.Context) {
	if err := a.store.StartSession(ctx, state.Session{ID: a.sessionID, Name: a.name, StartTS: time.Now()}); err != nil {
		a.logger.Error("store.start_session_failed", map[string]any{"error": err.Error()})
	}
	a.view.Post(func() {
		a.sess.Start()
		a.applyScenario(ctx)
	})
}

func (a *App) applyScenario(ctx context.Context) {
	if strings.TrimSpace(a.cfg.Scenario) == "" {
		return
	}
	sc := a.demo.Resolve(a.cfg.Scenario)
	a.demo.Apply(a.sess, sc)
	if sc.Autoplay {
		a.autoplay = a.demo.Autoplay(a.sess, a.sched, autoplayStep)
	}
	a.logger.Info("dev.scenario", map[string]any{"requested": a.cfg.Scenario, "resolved": sc.Name})
	if a.cfg.Debug {
		if err := a.demo.SetState(ctx, filepath.Join(a.cfg.DataDir, "dev"), sc.Name, true); err != nil {
			a.logger.Error("dev.state_failed", map[string]any{"error": err.Error()})
		}
	}
}

func (a *App) Close() {
	if a.autoplay != nil {
		a.autoplay.Cancel()
	}
	a.view.Post(a.sess.Stop)
	a.persistCounts()
	_ = a.store.Close()
	_ = a.logger.Close()
}

// resolveName prefers the configured name and falls back to the stored
// one. A configured name is stored when Remember is set.
func (a *App) resolveName(ctx context.Context) string {
	name := strings.TrimSpace(a.cfg.Name)
	if name != "" {
		if a.cfg.Remember {
			if err := a.store.SaveSettings(ctx, map[string]string{state.NameKey: name}); err != nil {
				a.logger.Error("store.save_name_failed", map[string]any{"error": err.Error()})
			}
		}
		return name
	}
	settings, err := a.store.LoadSettings(ctx)
	if err != nil {
		a.logger.Error("store.load_settings_failed", map[string]any{"error": err.Error()})
		return ""
	}
	return strings.TrimSpace(settings[state.NameKey])
}

func (a *App) onScreen(id flow.ScreenID) {
	a.logger.Info("screen.enter", map[string]any{"session": a.sessionID, "screen": id.Name()})
	err := a.store.RecordScreen(context.Background(), state.ScreenVisit{
		SessionID: a.sessionID,
		Screen:    id.Name(),
		TS:        time.Now(),
	})
	if err != nil {
		a.logger.Error("store.record_screen_failed", map[string]any{"screen": id.Name(), "error": err.Error()})
	}
	a.persistCounts()
}

func (a *App) onTap(p flow.ProgressState) {
	a.taps++
	a.logger.Info("tap.accepted", map[string]any{"collected": p.Collected, "level": p.Level})
}

func (a *App) onLevel(level int) {
	a.logger.Info("level.changed", map[string]any{"level": level})
}

func (a *App) onReject(index int, response string) {
	a.rejects++
	a.logger.Info("question.reject", map[string]any{"index": index, "response": response})
}

func (a *App) persistCounts() {
	err := a.store.UpdateSessionCounts(context.Background(), a.sessionID, state.SessionCounts{
		Taps:    a.taps,
		Rejects: a.rejects,
		Resets:  a.resets,
	})
	if err != nil {
		a.logger.Error("store.update_counts_failed", map[string]any{"error": err.Error()})
	}
}

func (a *App) OnBegin() {
	a.sess.Begin()
}

func (a *App) OnLandingNo() {
	a.sess.LandingNo()
}

func (a *App) OnTap(id string) {
	a.sess.Tap(id)
}

func (a *App) OnReject() {
	a.sess.Reject()
}

func (a *App) OnAccept() {
	a.sess.Accept()
}

func (a *App) OnContinue() {
	a.sess.Continue()
}

func (a *App) OnToggleMusic() {
	on := a.sess.ToggleMusic()
	a.logger.Debug("music.toggle", map[string]any{"on": on})
}

func (a *App) OnReset() {
	if a.autoplay != nil {
		a.autoplay.Cancel()
		a.autoplay = nil
	}
	a.resets++
	a.logger.Info("session.reset", map[string]any{"from": a.sess.Screen().Name(), "resets": a.resets})
	a.sess.Reset()
}

func (a *App) OnQuit() {
	if a.autoplay != nil {
		a.autoplay.Cancel()
	}
	a.logger.Info("app.quit", map[string]any{"screen": a.sess.Screen().Name()})
}

func firstNonEmpty(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}

var _ ui.Controller = (*App)(nil)
