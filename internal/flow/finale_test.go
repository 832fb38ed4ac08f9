package flow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmitterStartedTwiceKeepsOneTicker(t *testing.T) {
	h := newHarness(t, "")
	h.s.Nav.GoTo(ScreenFinale)
	h.s.Nav.GoTo(ScreenFinale)
	require.True(t, h.s.Emitter.Running())
	require.Equal(t, 1, h.clock.Repeating())

	h.advance(h.s.timing.Confetti)
	require.Len(t, h.doc.Children(ElemConfetti), 3*ConfettiPerTick)

	h.s.Reset()
	require.False(t, h.s.Emitter.Running())
	require.Zero(t, h.clock.Repeating())
	require.Empty(t, h.doc.Children(ElemConfetti))
	require.Equal(t, ScreenLanding, h.s.Screen())
}

func TestConfettiExpires(t *testing.T) {
	h := newHarness(t, "")
	h.s.Nav.GoTo(ScreenFinale)
	h.s.Emitter.Stop()
	require.Len(t, h.doc.Children(ElemConfetti), ConfettiPerTick)
	h.advance(h.s.timing.ConfettiLife)
	require.Empty(t, h.doc.Children(ElemConfetti))
}

func TestEmitterWithoutContainer(t *testing.T) {
	h := newHarness(t, "")
	h.doc.Remove(ElemConfetti)
	h.s.Nav.GoTo(ScreenFinale)
	h.advance(h.s.timing.Confetti * 3)
	require.Equal(t, 1, h.clock.Repeating())
	h.s.Reset()
	require.Zero(t, h.clock.Repeating())
}
