package timers

// Group remembers the handles a component owns so a reset can cancel all
// of them at once. It is not safe for concurrent use; owners mutate it on
// the event loop only.
type Group struct {
	handles []Handle
}

func (g *Group) Add(h Handle) Handle {
	if h == nil {
		return nil
	}
	g.handles = append(g.handles, h)
	return h
}

func (g *Group) CancelAll() {
	for _, h := range g.handles {
		h.Cancel()
	}
	g.handles = g.handles[:0]
}

func (g *Group) Len() int {
	return len(g.handles)
}

// Slot holds at most one handle; replacing it cancels the previous one.
type Slot struct {
	h Handle
}

func (s *Slot) Set(h Handle) {
	if s.h != nil {
		s.h.Cancel()
	}
	s.h = h
}

func (s *Slot) Clear() {
	s.Set(nil)
}

func (s *Slot) Active() bool {
	return s.h != nil
}
