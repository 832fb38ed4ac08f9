package flow

// Navigator shows exactly one screen at a time and runs the entry hook of
// the screen it switches to.
type Navigator struct {
	surface Surface
	screens []ScreenID
	current ScreenID
	hooks   map[ScreenID]func()
	observe func(ScreenID)
}

func NewNavigator(surface Surface) *Navigator {
	return &Navigator{
		surface: surface,
		screens: AllScreens(),
		current: ScreenLanding,
		hooks:   map[ScreenID]func(){},
	}
}

// Hook sets the entry hook for id, replacing any previous one.
func (n *Navigator) Hook(id ScreenID, fn func()) {
	n.hooks[id] = fn
}

// Observe registers fn to run after every completed transition.
func (n *Navigator) Observe(fn func(ScreenID)) {
	n.observe = fn
}

func (n *Navigator) Current() ScreenID {
	return n.current
}

// GoTo switches to id. An unknown id, or one the surface does not carry,
// changes nothing and reports false. Re-entering the current screen runs
// its hook again.
func (n *Navigator) GoTo(id ScreenID) bool {
	if !n.known(id) || !n.surface.Exists(string(id)) {
		return false
	}
	for _, s := range n.screens {
		n.surface.Deactivate(string(s))
	}
	n.surface.Activate(string(id))
	n.current = id
	if hook := n.hooks[id]; hook != nil {
		hook()
	}
	if n.observe != nil {
		n.observe(id)
	}
	return true
}

func (n *Navigator) known(id ScreenID) bool {
	for _, s := range n.screens {
		if s == id {
			return true
		}
	}
	return false
}
