package timers

import (
	"sync"
	"sync/atomic"
	"time"
)

// Loop runs wall-clock timers and hands every callback to post, which is
// expected to execute it on the single UI event loop. Cancellation is
// checked again on the loop, so a callback already in flight when Cancel
// is called never runs.
type Loop struct {
	post func(func())
}

func NewLoop(post func(func())) *Loop {
	if post == nil {
		post = func(fn func()) { fn() }
	}
	return &Loop{post: post}
}

type loopTask struct {
	cancelled atomic.Bool
	once      sync.Once
	timer     *time.Timer
	stop      chan struct{}
}

func (t *loopTask) Cancel() {
	t.once.Do(func() {
		t.cancelled.Store(true)
		if t.timer != nil {
			t.timer.Stop()
		}
		if t.stop != nil {
			close(t.stop)
		}
	})
}

func (l *Loop) Schedule(delay time.Duration, fn func()) Handle {
	t := &loopTask{}
	t.timer = time.AfterFunc(max(0, delay), func() {
		if t.cancelled.Load() {
			return
		}
		l.post(func() {
			if t.cancelled.Load() {
				return
			}
			t.cancelled.Store(true)
			fn()
		})
	})
	return t
}

func (l *Loop) Repeat(interval time.Duration, fn func()) Handle {
	if interval <= 0 {
		interval = time.Millisecond
	}
	t := &loopTask{stop: make(chan struct{})}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-t.stop:
				return
			case <-ticker.C:
				if t.cancelled.Load() {
					return
				}
				l.post(func() {
					if t.cancelled.Load() {
						return
					}
					fn()
				})
			}
		}
	}()
	return t
}

var _ Scheduler = (*Loop)(nil)
