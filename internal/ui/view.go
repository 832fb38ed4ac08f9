package ui

import (
	"fmt"
	"math"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/progress"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/harmonica"
	clog "github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"

	"heartnote/internal/dom"
	"heartnote/internal/flow"
)

type applyMsg struct {
	fn func(*Root)
}

type animateMsg time.Time

// continueID is the note screen's continue button. It only exists in the
// view; the greeting advances through OnContinue.
const continueID = "noteContinue"

type heartKeyMap struct {
	Yes      key.Binding
	No       key.Binding
	Tap      key.Binding
	Continue key.Binding
	Music    key.Binding
	Reset    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k heartKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No, k.Tap, k.Continue, k.Help, k.Quit}
}

func (k heartKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Yes, k.No, k.Tap, k.Continue}, {k.Music, k.Reset, k.Help, k.Quit}}
}

type Root struct {
	doc          *dom.Document
	theme        Theme
	ascii        bool
	debug        bool
	ctrl         Controller
	styleVariant string
	motionLevel  string
	mouseScope   string

	mu      sync.Mutex
	program *tea.Program
	running bool

	layout LayoutMode
	cols   int
	rows   int

	statusFlash string
	hits        []hitRegion

	help     help.Model
	keymap   heartKeyMap
	fill     progress.Model
	spin     spinner.Model
	markdown *glamour.TermRenderer
	logger   *clog.Logger
	fillPos  float64
	fillVel  float64
	spring   harmonica.Spring

	cardSource string
	cardView   string

	started time.Time
	seen    map[string]time.Time
	now     func() time.Time

	lastInputEvent string
}

type Options struct {
	Document     *dom.Document
	ASCIIOnly    bool
	Debug        bool
	StyleVariant string
	MotionLevel  string
	MouseScope   string
}

func New(opts Options) *Root {
	logger := clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "heartnote-ui", Level: clog.WarnLevel})
	if opts.Debug {
		logger.SetLevel(clog.DebugLevel)
	}

	styleVariant := normalizeStyleVariant(opts.StyleVariant)
	motionLevel := normalizeMotionLevel(opts.MotionLevel)
	mouseScope := normalizeMouseScope(opts.MouseScope)
	theme := ThemeForVariant(styleVariant)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme.Markdown),
		glamour.WithWordWrap(60),
	)
	if err != nil {
		logger.Warn("markdown renderer unavailable", "err", err)
		renderer = nil
	}

	h := help.New()
	h.Styles = help.DefaultDarkStyles()
	spring := harmonica.NewSpring(harmonica.FPS(30), 6.0, 0.5)
	if motionLevel == "reduced" {
		spring = harmonica.NewSpring(harmonica.FPS(10), 8.0, 0.9)
	}
	fill := progress.New(
		progress.WithWidth(30),
		progress.WithColors(theme.FillColors...),
		progress.WithScaled(true),
		progress.WithoutPercentage(),
	)
	spin := spinner.New(
		spinner.WithSpinner(spinner.Points),
		spinner.WithStyle(theme.Accent),
	)

	doc := opts.Document
	if doc == nil {
		doc = dom.New()
		flow.Mount(doc)
	}

	r := &Root{
		doc:          doc,
		theme:        theme,
		ascii:        opts.ASCIIOnly,
		debug:        opts.Debug,
		styleVariant: styleVariant,
		motionLevel:  motionLevel,
		mouseScope:   mouseScope,
		layout:       LayoutWide,
		cols:         80,
		rows:         24,
		help:         h,
		fill:         fill,
		spin:         spin,
		markdown:     renderer,
		logger:       logger,
		spring:       spring,
		seen:         map[string]time.Time{},
		now:          time.Now,
	}
	r.started = r.now()
	r.keymap = heartKeyMap{
		Yes:      key.NewBinding(key.WithKeys("enter", "y"), key.WithHelp("y", "yes")),
		No:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no")),
		Tap:      key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "tap heart")),
		Continue: key.NewBinding(key.WithKeys("enter", "c", "space", " "), key.WithHelp("c", "continue")),
		Music:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "music")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "start over")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+q", "ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
	return r
}

func (r *Root) Init() tea.Cmd {
	return tea.Batch(r.animateTickCmd(), spinnerTickCmd(r.spin))
}

func (r *Root) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	defer func() {
		if rec := recover(); rec != nil {
			r.onModelPanic("update", rec, msg)
			model = r
			cmd = nil
		}
	}()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.cols = msg.Width
		r.rows = msg.Height
		r.layout = DetermineLayoutMode(r.cols, r.rows)
		r.help.SetWidth(r.cols)
		return r, nil
	case applyMsg:
		if msg.fn != nil {
			msg.fn(r)
		}
		return r, nil
	case animateMsg:
		target := r.fillTarget()
		r.fillPos, r.fillVel = r.spring.Update(r.fillPos, r.fillVel, target)
		if math.Abs(r.fillPos-target) < 0.001 && math.Abs(r.fillVel) < 0.001 {
			r.fillPos, r.fillVel = target, 0
		}
		r.pruneSeen()
		return r, r.animateTickCmd()
	case spinner.TickMsg:
		var cmd tea.Cmd
		r.spin, cmd = r.spin.Update(msg)
		return r, cmd
	case tea.MouseClickMsg:
		return r.handleMouseClick(msg)
	case tea.KeyPressMsg:
		return r.handleKey(msg)
	}
	return r, nil
}

func (r *Root) View() (view tea.View) {
	defer func() {
		if rec := recover(); rec != nil {
			r.onModelPanic("view", rec, nil)
			width := max(1, r.cols)
			msg := "UI recovered from a rendering panic. Check logs."
			if r.statusFlash == "" {
				r.statusFlash = "Recovered UI panic"
			}
			view = tea.NewView(r.theme.Fail.Width(width).Render(trimForWidth(msg, max(1, width-1))))
		}
	}()

	v := tea.NewView(r.frameString())
	v.AltScreen = true
	v.MouseMode = r.currentMouseMode()
	return v
}

// frameString draws the current screen and records its clickable regions.
func (r *Root) frameString() string {
	if r.cols < 1 {
		r.cols = 80
	}
	if r.rows < 1 {
		r.rows = 24
	}
	r.layout = DetermineLayoutMode(r.cols, r.rows)
	if r.motionLevel == "off" {
		r.fillPos = r.fillTarget()
	}

	if r.layout == LayoutTooSmall {
		r.hits = nil
		msg := strings.Join([]string{
			"Make the window a little bigger",
			fmt.Sprintf("Current: %dx%d", r.cols, r.rows),
			"Minimum: 40x16",
		}, "\n")
		return lipgloss.Place(r.cols, r.rows, lipgloss.Center, lipgloss.Center, r.theme.Muted.Render(msg))
	}
	return r.render()
}

func (r *Root) Run() error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return nil
	}
	p := tea.NewProgram(r)
	r.program = p
	r.running = true
	r.mu.Unlock()

	_, err := p.Run()

	r.mu.Lock()
	r.program = nil
	r.running = false
	r.mu.Unlock()
	return err
}

func (r *Root) Stop() {
	r.mu.Lock()
	p := r.program
	r.mu.Unlock()
	if p != nil {
		p.Quit()
	}
}

func (r *Root) SetController(c Controller) {
	r.ctrl = c
}

func (r *Root) Post(fn func()) {
	if fn == nil {
		return
	}
	r.apply(func(*Root) { fn() })
}

func (r *Root) FlashStatus(msg string) {
	r.apply(func(m *Root) {
		m.statusFlash = msg
	})
}

func (r *Root) apply(fn func(*Root)) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	p := r.program
	running := r.running
	if !running || p == nil {
		fn(r)
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()
	p.Send(applyMsg{fn: fn})
}

// dispatchController calls straight through: the controller drives a
// session that belongs to this loop.
func (r *Root) dispatchController(fn func(Controller)) {
	if fn == nil || r.ctrl == nil {
		return
	}
	fn(r.ctrl)
}

func (r *Root) screen() flow.ScreenID {
	active := r.doc.ActiveOf(dom.KindScreen)
	if len(active) == 0 {
		return ""
	}
	return flow.ScreenID(active[0])
}

func (r *Root) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	r.recordInputEvent(fmt.Sprintf("key:%v mod:%v text:%q", msg.Code, msg.Mod, msg.Text))

	switch {
	case key.Matches(msg, r.keymap.Quit):
		r.dispatchController(func(c Controller) { c.OnQuit() })
		return r, tea.Quit
	case key.Matches(msg, r.keymap.Help):
		r.help.ShowAll = !r.help.ShowAll
		return r, nil
	case key.Matches(msg, r.keymap.Music):
		r.dispatchController(func(c Controller) { c.OnToggleMusic() })
		return r, nil
	case key.Matches(msg, r.keymap.Reset):
		r.statusFlash = "Starting over"
		r.dispatchController(func(c Controller) { c.OnReset() })
		return r, nil
	}

	switch r.screen() {
	case flow.ScreenLanding:
		switch {
		case key.Matches(msg, r.keymap.Yes):
			r.dispatchController(func(c Controller) { c.OnBegin() })
		case key.Matches(msg, r.keymap.No):
			r.dispatchController(func(c Controller) { c.OnLandingNo() })
		}
	case flow.ScreenInteraction:
		if key.Matches(msg, r.keymap.Tap) {
			idx := int(msg.String()[0] - '1')
			targets := r.doc.Children(flow.ElemTapArea)
			if idx >= 0 && idx < len(targets) {
				id := targets[idx].ID
				r.dispatchController(func(c Controller) { c.OnTap(id) })
			}
		}
	case flow.ScreenQuestion:
		switch {
		case key.Matches(msg, r.keymap.Yes):
			r.dispatchController(func(c Controller) { c.OnAccept() })
		case key.Matches(msg, r.keymap.No):
			r.dispatchController(func(c Controller) { c.OnReject() })
		}
	case flow.ScreenNote:
		if key.Matches(msg, r.keymap.Continue) {
			r.dispatchController(func(c Controller) { c.OnContinue() })
		}
	}
	return r, nil
}

func (r *Root) handleMouseClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	r.recordInputEvent(fmt.Sprintf("mouse_click:%d,%d button:%v", mouse.X, mouse.Y, mouse.Button))

	if r.mouseScope == "off" || mouse.Button != tea.MouseLeft {
		return r, nil
	}
	id := r.hitAt(mouse.X, mouse.Y)
	if id == "" {
		return r, nil
	}
	switch id {
	case flow.ElemMusic:
		r.dispatchController(func(c Controller) { c.OnToggleMusic() })
	case flow.ElemLandingYes:
		r.dispatchController(func(c Controller) { c.OnBegin() })
	case flow.ElemLandingNo:
		r.dispatchController(func(c Controller) { c.OnLandingNo() })
	case flow.ElemYes:
		r.dispatchController(func(c Controller) { c.OnAccept() })
	case flow.ElemNo:
		r.dispatchController(func(c Controller) { c.OnReject() })
	case continueID:
		r.dispatchController(func(c Controller) { c.OnContinue() })
	default:
		if e := r.doc.Get(id); e != nil && e.Kind == dom.KindTapHeart {
			r.dispatchController(func(c Controller) { c.OnTap(id) })
		}
	}
	return r, nil
}

// hitAt returns the topmost region under x,y. Later regions are drawn over
// earlier ones.
func (r *Root) hitAt(x, y int) string {
	for i := len(r.hits) - 1; i >= 0; i-- {
		if r.hits[i].contains(x, y) {
			return r.hits[i].id
		}
	}
	return ""
}

func (r *Root) render() string {
	f := newFrame(r.cols)
	r.renderHeader(f)

	footer := append([]string{r.statusText()}, strings.Split(r.help.View(r.keymap), "\n")...)
	bodyRows := max(1, r.rows-f.row()-len(footer))

	switch r.screen() {
	case flow.ScreenLanding:
		r.renderLanding(f, bodyRows)
	case flow.ScreenInteraction:
		r.renderInteraction(f, bodyRows)
	case flow.ScreenQuestion:
		r.renderQuestion(f, bodyRows)
	case flow.ScreenNote:
		r.renderNote(f, bodyRows)
	case flow.ScreenFinale:
		r.renderFinale(f, bodyRows)
	}

	body := f.fit(r.rows - len(footer))
	r.hits = f.hits
	return body + "\n" + strings.Join(footer, "\n")
}

func (r *Root) renderHeader(f *frame) {
	left := r.glyph("💝") + " heartnote"
	right := ""
	if music := r.doc.Get(flow.ElemMusic); music != nil {
		right = r.glyphText(music.Text)
		if music.HasClass(flow.ClassPlaying) {
			right = r.theme.Accent.Render(right)
		}
	}
	lw, rw := ansi.StringWidth(left), ansi.StringWidth(right)
	gap := max(1, r.cols-3-lw-rw)
	f.lines = append(f.lines, r.theme.Header.Width(r.cols).Render(left+strings.Repeat(" ", gap)+right))
	if right != "" {
		f.hits = append(f.hits, hitRegion{x: 1 + lw + gap, y: 0, w: rw, h: 1, id: flow.ElemMusic})
	}
}

func (r *Root) renderLanding(f *frame, rows int) {
	start := f.row()
	f.blank(1)
	f.center(r.theme.Title.Render(r.glyphText(r.text(flow.ElemLandingText))))
	f.center(r.theme.Subtitle.Render(r.glyphText(r.text(flow.ElemLandingSub))))
	f.blank(1)
	no := r.theme.ButtonAlt.Render(r.glyphText(r.text(flow.ElemLandingNo)))
	if r.doc.Get(flow.ElemLandingNo).Attr(flow.AttrAnimation) == "wiggle" {
		no = r.wiggle(no)
	}
	f.buttons(4, []string{r.theme.Button.Render(r.glyphText(r.text(flow.ElemLandingYes))), no}, []string{flow.ElemLandingYes, flow.ElemLandingNo})
	f.blank(1)
	sky := newField(r.cols, rows-(f.row()-start))
	r.drawBackground(sky)
	r.drawBursts(sky)
	f.field(sky)
}

func (r *Root) renderInteraction(f *frame, rows int) {
	start := f.row()
	msg := r.glyphText(r.text(flow.ElemHeartText))
	if r.doc.Get(flow.ElemHeartText).HasClass(flow.ClassExcited) {
		f.center(r.theme.Accent.Render(msg))
	} else {
		f.center(r.theme.Body.Render(msg))
	}

	fill := r.doc.Get(flow.ElemHeartFill)
	level := int(flow.Percent(fill.Attr(flow.AttrLevel)))
	bar := r.fillBar(min(30, max(10, r.cols-20)))
	label := fmt.Sprintf(" %d/%d", level, flow.MaxLevel)
	switch {
	case fill.HasClass(flow.ClassFull):
		label = " " + r.glyph("💖") + label
	case fill.HasClass(flow.ClassPulse):
		label = r.theme.Accent.Render(label)
	}
	if fill.HasClass(flow.ClassWobble) && !r.ascii {
		bar = " " + bar
	}
	f.center(bar + label)

	speech := r.glyphText(r.text(flow.ElemMascot))
	if fill.HasClass(flow.ClassFull) && len(r.doc.Children(flow.ElemTapArea)) == 0 {
		speech = r.spin.View() + " " + speech
	}
	f.center(r.theme.Bubble.Render(speech))

	area := newField(r.cols, rows-(f.row()-start))
	r.drawBackground(area)
	for i, t := range r.doc.Children(flow.ElemTapArea) {
		col, row := area.cell(flow.Percent(t.Attr(flow.AttrX)), flow.Percent(t.Attr(flow.AttrY)))
		tag := fmt.Sprintf("%d", i+1)
		glyph := r.glyph(t.Text)
		style := r.theme.Heart
		if t.HasClass(flow.ClassCollected) {
			tag = "·"
			style = r.theme.Collected
		}
		w := ansi.StringWidth(glyph)
		if area.put(col, row, r.theme.Muted.Render(tag), 1) && area.put(col+1, row, style.Render(glyph), w) {
			area.hits = append(area.hits, hitRegion{x: col, y: row, w: w + 1, h: 1, id: t.ID})
		}
	}
	r.drawBursts(area)
	f.field(area)
}

func (r *Root) renderQuestion(f *frame, rows int) {
	start := f.row()
	f.blank(1)
	f.center(r.theme.Title.Render(r.glyphText(r.text(flow.ElemPrompt))))
	f.blank(1)
	f.buttons(4, []string{
		r.theme.Button.Render(r.glyphText(r.text(flow.ElemYes))),
		r.theme.ButtonAlt.Render(r.glyphText(r.text(flow.ElemNo))),
	}, []string{flow.ElemYes, flow.ElemNo})
	f.blank(1)
	bubble := r.doc.Get(flow.ElemNoBubble)
	if bubble != nil && bubble.Attr(flow.AttrDisplay) == "block" && bubble.Text != "" {
		text := r.glyphText(bubble.Text)
		if bubble.Attr(flow.AttrAnimation) == "none" {
			text = r.theme.Muted.Render(text)
		}
		f.center(r.theme.Bubble.Render(text))
	}
	area := newField(r.cols, rows-(f.row()-start))
	r.drawBackground(area)
	r.drawBursts(area)
	f.field(area)
}

func (r *Root) renderNote(f *frame, rows int) {
	start := f.row()
	f.blank(1)
	width := min(64, max(20, r.cols-6))
	text := r.glyphText(r.text(flow.ElemNote))
	if (r.now().UnixMilli()/500)%2 == 0 {
		text += "▌"
	}
	f.center(r.theme.Note.Width(width).Render(text))
	f.blank(1)
	f.centerHit(r.theme.Button.Render("Continue "+r.glyph("💌")), continueID)
	if used := f.row() - start; used < rows {
		area := newField(r.cols, rows-used)
		r.drawBackground(area)
		f.field(area)
	}
}

func (r *Root) renderFinale(f *frame, rows int) {
	start := f.row()
	f.blank(1)
	f.center(r.renderCard(r.text(flow.ElemFinaleCard)))
	f.center(r.theme.Muted.Render("press r to play it again"))
	if used := f.row() - start; used < rows {
		sky := newField(r.cols, rows-used)
		r.drawConfetti(sky)
		f.field(sky)
	}
}

func (r *Root) renderCard(source string) string {
	if source == r.cardSource && r.cardView != "" {
		return r.cardView
	}
	out := source
	if r.markdown != nil && !r.ascii {
		if rendered, err := r.markdown.Render(source); err == nil {
			out = strings.Trim(rendered, "\n")
		} else {
			r.logger.Warn("finale card render failed", "err", err)
		}
	}
	r.cardSource = source
	r.cardView = out
	return out
}

// drawBackground floats the background hearts upward on a loop.
func (r *Root) drawBackground(fl *field) {
	elapsed := r.now().Sub(r.started)
	for _, h := range r.doc.Children(flow.ElemBackground) {
		delay := parseSeconds(h.Attr(flow.AttrDelay))
		dur := parseSeconds(h.Attr(flow.AttrDuration))
		y := 50.0
		if dur > 0 && r.motionLevel != "off" {
			t := elapsed - delay
			if t < 0 {
				continue
			}
			y = 100 - float64(t%dur)/float64(dur)*100
		}
		col, row := fl.cell(flow.Percent(h.Attr(flow.AttrX)), y)
		g := r.glyph(h.Text)
		fl.put(col, row, r.theme.Floating.Render(g), ansi.StringWidth(g))
	}
}

func (r *Root) drawBursts(fl *field) {
	for _, b := range r.doc.Children(flow.ElemBursts) {
		col, row := fl.cell(flow.Percent(b.Attr(flow.AttrX)), flow.Percent(b.Attr(flow.AttrY)))
		g := r.glyph(b.Text)
		fl.put(col, row, r.theme.Heart.Render(g), ansi.StringWidth(g))
	}
}

// drawConfetti drops each piece from the top over its duration, counted
// from the first frame it was seen in.
func (r *Root) drawConfetti(fl *field) {
	now := r.now()
	for _, c := range r.doc.Children(flow.ElemConfetti) {
		first, ok := r.seen[c.ID]
		if !ok {
			first = now
			r.seen[c.ID] = now
		}
		frac := 0.0
		if dur := parseSeconds(c.Attr(flow.AttrDuration)); dur > 0 && r.motionLevel != "off" {
			frac = float64(now.Sub(first)-parseSeconds(c.Attr(flow.AttrDelay))) / float64(dur)
			if frac < 0 {
				continue
			}
		}
		col, row := fl.cell(flow.Percent(c.Attr(flow.AttrX)), clamp(frac, 0, 1)*100)
		var g string
		if c.Text != "" {
			g = r.glyph(c.Text)
			fl.put(col, row, g, ansi.StringWidth(g))
			continue
		}
		g = "●"
		if r.ascii {
			g = "*"
		}
		fl.put(col, row, lipgloss.NewStyle().Foreground(lipgloss.Color(c.Attr(flow.AttrColor))).Render(g), 1)
	}
}

func (r *Root) pruneSeen() {
	for id := range r.seen {
		if !r.doc.Exists(id) {
			delete(r.seen, id)
		}
	}
}

func (r *Root) fillTarget() float64 {
	level := flow.Percent(r.doc.Get(flow.ElemHeartFill).Attr(flow.AttrLevel))
	return clamp(level/float64(flow.MaxLevel), 0, 1)
}

func (r *Root) fillBar(width int) string {
	pos := clamp(r.fillPos, 0, 1)
	if r.ascii {
		n := int(math.Round(pos * float64(width)))
		return "[" + strings.Repeat("#", n) + strings.Repeat("-", width-n) + "]"
	}
	m := r.fill
	m.SetWidth(width)
	return m.ViewAs(pos)
}

func (r *Root) statusText() string {
	msg := r.statusFlash
	if msg == "" {
		switch r.screen() {
		case flow.ScreenInteraction:
			msg = "Tap the hearts to fill yours up"
		case flow.ScreenNote:
			msg = "A little note for you"
		default:
			msg = " "
		}
	}
	return r.theme.Status.Width(r.cols).Render(trimForWidth(msg, max(1, r.cols-2)))
}

func (r *Root) text(id string) string {
	if e := r.doc.Get(id); e != nil {
		return e.Text
	}
	return ""
}

func (r *Root) wiggle(s string) string {
	if r.motionLevel == "off" {
		return s
	}
	if (r.now().UnixMilli()/100)%2 == 0 {
		return " " + s
	}
	return s + " "
}

var asciiGlyphs = map[string]string{
	"💗": "<3", "💖": "<3", "💕": "<3", "💝": "<3", "💜": "<3", "💌": "=]",
	"💘": "<3", "✨": "*", "⭐": "*", "🎵": "~", "🔥": "*",
	"🥺": ":(", "😌": ":)", "🙈": ":x", "🎉": "\\o/",
}

// glyph swaps a single decorative glyph for a plain stand-in in ASCII mode.
func (r *Root) glyph(g string) string {
	if !r.ascii {
		return g
	}
	if s, ok := asciiGlyphs[g]; ok {
		return s
	}
	return g
}

// glyphText applies glyph to every known glyph inside s and drops any
// other pictograph.
func (r *Root) glyphText(s string) string {
	if !r.ascii {
		return s
	}
	for from, to := range asciiGlyphs {
		s = strings.ReplaceAll(s, from, to)
	}
	return strings.Map(func(c rune) rune {
		if c < utf8.RuneSelf || unicode.IsLetter(c) || unicode.IsPunct(c) || unicode.IsSpace(c) {
			return c
		}
		return -1
	}, s)
}

func (r *Root) animateTickCmd() tea.Cmd {
	switch r.motionLevel {
	case "off":
		return nil
	case "reduced":
		return tea.Tick(time.Second/10, func(t time.Time) tea.Msg { return animateMsg(t) })
	default:
		return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return animateMsg(t) })
	}
}

func spinnerTickCmd(model spinner.Model) tea.Cmd {
	return func() tea.Msg {
		return model.Tick()
	}
}

func parseSeconds(raw string) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return d
}

func trimForWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(strings.ReplaceAll(ansi.Strip(s), "\n", " "))
	if len(r) <= width {
		return string(r)
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

func (r *Root) currentMouseMode() tea.MouseMode {
	if r.mouseScope == "off" {
		return tea.MouseModeNone
	}
	return tea.MouseModeCellMotion
}

func normalizeStyleVariant(v string) string {
	switch strings.TrimSpace(v) {
	case "rose_garden", "midnight", "paper":
		return strings.TrimSpace(v)
	default:
		return "rose_garden"
	}
}

func normalizeMotionLevel(v string) string {
	switch strings.TrimSpace(v) {
	case "off", "reduced", "full":
		return strings.TrimSpace(v)
	default:
		return "full"
	}
}

func normalizeMouseScope(v string) string {
	switch strings.TrimSpace(v) {
	case "off", "full":
		return strings.TrimSpace(v)
	default:
		return "full"
	}
}

func (r *Root) recordInputEvent(event string) {
	r.lastInputEvent = trimForWidth(strings.TrimSpace(event), 160)
}

func (r *Root) onModelPanic(where string, recovered any, msg tea.Msg) {
	if r.statusFlash == "" {
		r.statusFlash = "Recovered UI panic"
	}
	msgType := ""
	if msg != nil {
		msgType = fmt.Sprintf("%T", msg)
	}
	r.logger.Error("ui.panic_recovered",
		"where", where,
		"panic", fmt.Sprintf("%v", recovered),
		"messageType", msgType,
		"screen", r.screen(),
		"cols", r.cols,
		"rows", r.rows,
		"last_input", r.lastInputEvent,
		"stack", string(debug.Stack()),
	)
}

var _ tea.Model = (*Root)(nil)
var _ View = (*Root)(nil)
