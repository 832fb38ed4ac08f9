package flow

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterKeepsLevelInvariant(t *testing.T) {
	p := NewProgress()
	prev := 0
	for i := 1; i <= 20; i++ {
		var out TapOutcome
		p, out = p.Register(&TapTarget{ID: fmt.Sprint(i)})
		want := min(MaxLevel, p.Collected/2)
		require.Equal(t, want, p.Level, "after tap %d", i)
		require.GreaterOrEqual(t, p.Level, prev)
		prev = p.Level
		if i > Threshold {
			require.False(t, out.Accepted, "tap %d past the threshold counted", i)
		}
	}
	require.Equal(t, Threshold, p.Collected)
}

func TestRegisterTwiceOnSameTargetCountsOnce(t *testing.T) {
	p := NewProgress()
	target := &TapTarget{ID: "a"}
	p, first := p.Register(target)
	p, second := p.Register(target)
	require.True(t, first.Accepted)
	require.False(t, second.Accepted)
	require.Equal(t, 1, p.Collected)
	require.True(t, target.Collected)
}

func TestRegisterFlagsLevelChangesAndCompletion(t *testing.T) {
	p := NewProgress()
	var changes []int
	completions := 0
	for i := 0; i < Threshold; i++ {
		var out TapOutcome
		p, out = p.Register(&TapTarget{})
		if out.LevelChanged {
			changes = append(changes, out.Level)
		}
		if out.Completed {
			completions++
		}
	}
	require.Equal(t, []int{1, 2, 3, 4, 5}, changes)
	require.Equal(t, 1, completions)
	require.True(t, p.Done())
	require.InDelta(t, 1.0, p.Fraction(), 1e-9)
}

func TestRegisterNilTarget(t *testing.T) {
	p, out := NewProgress().Register(nil)
	require.False(t, out.Accepted)
	require.Zero(t, p.Collected)
}

func TestCounterCompletesExactlyOnce(t *testing.T) {
	h := newHarness(t, "")
	require.True(t, h.s.Begin())

	for i := 0; i < Threshold; i++ {
		require.True(t, h.tapNext(), "tap %d", i+1)
		h.advance(h.s.timing.Collect)
	}
	require.True(t, h.s.Counter.Completing())
	require.False(t, h.tapNext(), "tap after the threshold must not count")

	h.advance(h.s.timing.Complete)
	require.Equal(t, ScreenQuestion, h.s.Screen())
	require.Equal(t, 1, h.entries(ScreenQuestion))
	require.Equal(t, []int{1, 2, 3, 4, 5}, h.levels)

	h.advance(h.s.timing.Complete * 4)
	require.Equal(t, 1, h.entries(ScreenQuestion))
}

func TestCounterRapidTapsWithinOneBatch(t *testing.T) {
	h := newHarness(t, "")
	h.s.Begin()

	for round := 0; round < 2; round++ {
		for i := 0; i < BatchSize; i++ {
			require.True(t, h.tapNext())
		}
		require.False(t, h.tapNext(), "every target in the batch is collected")
		h.advance(h.s.timing.Collect)
	}
	require.Equal(t, Threshold, h.s.Progress().Collected)
	h.advance(h.s.timing.Complete)
	require.Equal(t, 1, h.entries(ScreenQuestion))
}

func TestCounterRegeneratesFreshBatch(t *testing.T) {
	h := newHarness(t, "")
	h.s.Begin()
	first := h.s.Counter.Targets()
	require.Len(t, first, BatchSize)

	require.True(t, h.s.Tap(first[0].ID))
	require.False(t, h.s.Tap(first[0].ID))
	require.Equal(t, 1, h.s.Progress().Collected)

	h.advance(h.s.timing.Collect)
	next := h.s.Counter.Targets()
	require.Len(t, next, BatchSize)
	for _, tg := range next {
		require.False(t, tg.Collected)
		require.NotEqual(t, first[0].ID, tg.ID)
	}
	require.Len(t, h.doc.Children(ElemTapArea), BatchSize)
}

func TestReenteringInteractionResets(t *testing.T) {
	h := newHarness(t, "")
	h.s.Begin()
	for i := 0; i < 5; i++ {
		h.tapNext()
		h.advance(h.s.timing.Collect)
	}
	require.Equal(t, 2, h.s.Progress().Level)

	h.tapNext()
	h.s.Nav.GoTo(ScreenInteraction)
	p := h.s.Progress()
	require.Zero(t, p.Collected)
	require.Zero(t, p.Level)
	targets := h.s.Counter.Targets()
	require.Len(t, targets, BatchSize)
	for _, tg := range targets {
		require.False(t, tg.Collected)
	}
	require.Equal(t, "0", h.doc.Get(ElemHeartFill).Attr(AttrLevel))

	// The removal scheduled before re-entry was cancelled.
	h.advance(h.s.timing.Collect)
	require.Len(t, h.s.Counter.Targets(), BatchSize)
	require.Zero(t, h.s.Progress().Collected)
}

func TestLevelEffectsOnSurface(t *testing.T) {
	h := newHarness(t, "")
	h.s.Begin()
	for i := 0; i < 8; i++ {
		h.tapNext()
		h.advance(h.s.timing.Collect)
	}
	fill := h.doc.Get(ElemHeartFill)
	text := h.doc.Get(ElemHeartText)
	require.Equal(t, "4", fill.Attr(AttrLevel))
	require.Equal(t, h.s.Deck().HeartMessages[4], text.Text)
	require.True(t, text.HasClass(ClassExcited))
	require.False(t, fill.HasClass(ClassFull))

	h.tapNext()
	require.True(t, h.tapNext())
	require.True(t, fill.HasClass(ClassPulse))
	require.True(t, fill.HasClass(ClassFull))
	h.advance(h.s.timing.Wobble)
	require.False(t, fill.HasClass(ClassPulse))
	require.False(t, fill.HasClass(ClassWobble))
}

func TestTapIgnoredOffInteractionScreen(t *testing.T) {
	h := newHarness(t, "")
	require.False(t, h.tapNext())
	require.Zero(t, h.s.Progress().Collected)
}
