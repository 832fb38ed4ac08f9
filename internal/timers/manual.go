package timers

import "time"

// Manual is a virtual clock. Nothing runs until Advance is called, and
// callbacks run on the caller's goroutine in due-time order.
type Manual struct {
	now   time.Duration
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	m        *Manual
	due      time.Duration
	seq      int
	interval time.Duration
	fn       func()
	done     bool
}

func (t *manualTask) Cancel() {
	t.done = true
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Now() time.Duration {
	return m.now
}

func (m *Manual) Schedule(delay time.Duration, fn func()) Handle {
	return m.add(delay, 0, fn)
}

func (m *Manual) Repeat(interval time.Duration, fn func()) Handle {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return m.add(interval, interval, fn)
}

func (m *Manual) add(delay, interval time.Duration, fn func()) *manualTask {
	if delay < 0 {
		delay = 0
	}
	m.seq++
	t := &manualTask{m: m, due: m.now + delay, seq: m.seq, interval: interval, fn: fn}
	m.tasks = append(m.tasks, t)
	return t
}

// Advance moves the clock forward by d, running every task that falls due.
// Tasks scheduled by callbacks run in the same call when they are due
// before the new time.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		m.now = next.due
		if next.interval > 0 {
			next.due += next.interval
			m.seq++
			next.seq = m.seq
		} else {
			next.done = true
		}
		if next.fn != nil {
			next.fn()
		}
	}
	m.now = target
	m.compact()
}

// Flush runs every pending one-shot task and stops at the first point where
// only repeating tasks remain.
func (m *Manual) Flush() {
	for {
		var last time.Duration = -1
		for _, t := range m.tasks {
			if !t.done && t.interval == 0 && t.due > last {
				last = t.due
			}
		}
		if last < 0 {
			return
		}
		m.Advance(last - m.now)
	}
}

// Pending counts live tasks, repeating ones included.
func (m *Manual) Pending() int {
	n := 0
	for _, t := range m.tasks {
		if !t.done {
			n++
		}
	}
	return n
}

// Repeating counts live repeating tasks.
func (m *Manual) Repeating() int {
	n := 0
	for _, t := range m.tasks {
		if !t.done && t.interval > 0 {
			n++
		}
	}
	return n
}

func (m *Manual) nextDue(limit time.Duration) *manualTask {
	var best *manualTask
	for _, t := range m.tasks {
		if t.done || t.due > limit {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (m *Manual) compact() {
	live := m.tasks[:0]
	for _, t := range m.tasks {
		if !t.done {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(m.tasks); i++ {
		m.tasks[i] = nil
	}
	m.tasks = live
}

var _ Scheduler = (*Manual)(nil)
