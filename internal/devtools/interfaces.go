package devtools

import (
	"context"
	"time"

	"heartnote/internal/flow"
	"heartnote/internal/timers"
)

type Demo interface {
	Resolve(name string) Scenario
	Apply(sess *flow.Session, sc Scenario)
	Autoplay(sess *flow.Session, sched timers.Scheduler, every time.Duration) timers.Handle
	SetState(ctx context.Context, cacheDir string, state string, rendered bool) error
}
