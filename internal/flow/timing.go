package flow

import "time"

const (
	Threshold       = 10
	MaxLevel        = 5
	BatchSize       = 5
	AcceptBursts    = 20
	ConfettiPerTick = 5
	BackgroundCount = 15
)

// Timing holds every delay the greeting sequences its effects with.
type Timing struct {
	Collect       time.Duration
	Complete      time.Duration
	Pulse         time.Duration
	Wobble        time.Duration
	Burst         time.Duration
	AcceptStep    time.Duration
	AcceptAdvance time.Duration
	BubbleRestart time.Duration
	TypeInterval  time.Duration
	Confetti      time.Duration
	ConfettiLife  time.Duration
	Wiggle        time.Duration
}

func DefaultTiming() Timing {
	return Timing{
		Collect:       600 * time.Millisecond,
		Complete:      1500 * time.Millisecond,
		Pulse:         350 * time.Millisecond,
		Wobble:        600 * time.Millisecond,
		Burst:         time.Second,
		AcceptStep:    100 * time.Millisecond,
		AcceptAdvance: 2 * time.Second,
		BubbleRestart: 10 * time.Millisecond,
		TypeInterval:  50 * time.Millisecond,
		Confetti:      500 * time.Millisecond,
		ConfettiLife:  4 * time.Second,
		Wiggle:        500 * time.Millisecond,
	}
}
