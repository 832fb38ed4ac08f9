package ui

import "testing"

func TestDetermineLayoutMode(t *testing.T) {
	if got := DetermineLayoutMode(100, 30); got != LayoutWide {
		t.Fatalf("expected wide, got %v", got)
	}
	if got := DetermineLayoutMode(60, 20); got != LayoutCompact {
		t.Fatalf("expected compact, got %v", got)
	}
	if got := DetermineLayoutMode(39, 30); got != LayoutTooSmall {
		t.Fatalf("expected too-small, got %v", got)
	}
	if got := DetermineLayoutMode(100, 15); got != LayoutTooSmall {
		t.Fatalf("expected too-small by height, got %v", got)
	}
}

func TestFieldWideGlyphOverwrite(t *testing.T) {
	f := newField(4, 1)
	if !f.put(0, 0, "AB", 2) {
		t.Fatalf("expected wide glyph to fit")
	}
	if !f.put(1, 0, "x", 1) {
		t.Fatalf("expected narrow glyph to fit")
	}
	if got := f.String(); got != " x  " {
		t.Fatalf("expected wide glyph cleared, got %q", got)
	}
	if f.put(3, 0, "CD", 2) {
		t.Fatalf("expected wide glyph at the edge to be refused")
	}
}

func TestFieldCellMapping(t *testing.T) {
	f := newField(11, 5)
	if col, row := f.cell(50, 100); col != 5 || row != 4 {
		t.Fatalf("unexpected cell %d,%d", col, row)
	}
	if col, row := f.cell(-10, 200); col != 0 || row != 4 {
		t.Fatalf("expected clamping, got %d,%d", col, row)
	}
}

func TestFrameButtonsRegisterHits(t *testing.T) {
	f := newFrame(20)
	f.blank(1)
	f.buttons(2, []string{"Yes", "No"}, []string{"yes", "no"})
	if len(f.hits) != 2 {
		t.Fatalf("expected two regions, got %d", len(f.hits))
	}
	yes, no := f.hits[0], f.hits[1]
	if yes.y != 1 || no.y != 1 {
		t.Fatalf("expected both on row 1")
	}
	// "Yes  No" is 7 wide, centered in 20 columns.
	if yes.x != 6 || no.x != 11 {
		t.Fatalf("unexpected columns yes=%d no=%d", yes.x, no.x)
	}
}
