package flow

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"heartnote/internal/content"
)

func TestComposeNoteWithAndWithoutName(t *testing.T) {
	deck := content.Default()
	plain := ComposeNote(deck, "")
	if strings.Contains(plain, "Dear") {
		t.Fatalf("did not expect a greeting without a name: %q", plain)
	}
	if !strings.HasPrefix(plain, deck.Note.Heading+"\n\n") {
		t.Fatalf("expected heading first: %q", plain)
	}
	named := ComposeNote(deck, "  Sam ")
	if !strings.Contains(named, "\n\nDear Sam,\n\n") {
		t.Fatalf("expected greeting line: %q", named)
	}
	if !strings.HasSuffix(named, deck.Note.Lines[len(deck.Note.Lines)-1]) {
		t.Fatalf("expected last line at the end: %q", named)
	}
}

func TestRevealerTypesOneRuneAtATime(t *testing.T) {
	h := newHarness(t, "Ana")
	h.s.Nav.GoTo(ScreenNote)
	want := h.s.Note()
	node := h.doc.Get(ElemNote)
	if node.Text != "" {
		t.Fatalf("expected empty note on entry")
	}

	prev := 0
	for !h.s.Revealer.Done() {
		h.advance(h.s.timing.TypeInterval)
		n := utf8.RuneCountInString(node.Text)
		if n != prev+1 {
			t.Fatalf("expected one more rune, went %d -> %d", prev, n)
		}
		if !strings.HasPrefix(want, node.Text) {
			t.Fatalf("reveal is not a prefix: %q", node.Text)
		}
		prev = n
	}
	if node.Text != want {
		t.Fatalf("expected full note, got %q", node.Text)
	}
	h.advance(h.s.timing.TypeInterval)
	if h.s.Revealer.Running() || h.clock.Repeating() != 0 {
		t.Fatalf("expected typing ticker to stop itself")
	}
}

func TestRevealerRestartCancelsPrevious(t *testing.T) {
	h := newHarness(t, "")
	h.s.Nav.GoTo(ScreenNote)
	h.advance(10 * h.s.timing.TypeInterval)
	h.s.Nav.GoTo(ScreenNote)
	if h.clock.Repeating() != 1 {
		t.Fatalf("expected one typing ticker, got %d", h.clock.Repeating())
	}
	h.advance(h.s.timing.TypeInterval)
	if got := utf8.RuneCountInString(h.doc.Get(ElemNote).Text); got != 1 {
		t.Fatalf("expected restart from scratch, got %d runes", got)
	}
}

func TestContinueSkipsTypingThenMovesOn(t *testing.T) {
	h := newHarness(t, "")
	h.s.Nav.GoTo(ScreenNote)
	h.advance(3 * time.Duration(h.s.timing.TypeInterval))
	if h.s.Continue() {
		t.Fatalf("first continue should finish the typing instead")
	}
	if h.doc.Get(ElemNote).Text != h.s.Note() {
		t.Fatalf("expected full note after skip")
	}
	if !h.s.Continue() || h.s.Screen() != ScreenFinale {
		t.Fatalf("expected finale after second continue")
	}
}

func TestRevealerWithoutNoteElement(t *testing.T) {
	h := newHarness(t, "")
	h.doc.Remove(ElemNote)
	h.s.Nav.GoTo(ScreenNote)
	if h.s.Revealer.Running() {
		t.Fatalf("no ticker should start without a note element")
	}
}
