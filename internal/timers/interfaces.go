package timers

import "time"

// Handle cancels a scheduled or repeating task. Cancel is idempotent.
type Handle interface {
	Cancel()
}

type Scheduler interface {
	Schedule(delay time.Duration, fn func()) Handle
	Repeat(interval time.Duration, fn func()) Handle
}
