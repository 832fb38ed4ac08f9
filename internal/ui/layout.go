package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

func DetermineLayoutMode(cols, rows int) LayoutMode {
	if cols < 40 || rows < 16 {
		return LayoutTooSmall
	}
	if cols >= 80 && rows >= 24 {
		return LayoutWide
	}
	return LayoutCompact
}

// hitRegion is a clickable rectangle in screen cells.
type hitRegion struct {
	x, y, w, h int
	id         string
}

func (h hitRegion) contains(x, y int) bool {
	return x >= h.x && x < h.x+h.w && y >= h.y && y < h.y+h.h
}

// frame collects the rows of one rendered screen and the clickable regions
// laid out on them.
type frame struct {
	cols  int
	lines []string
	hits  []hitRegion
}

func newFrame(cols int) *frame {
	return &frame{cols: max(1, cols)}
}

func (f *frame) row() int {
	return len(f.lines)
}

func (f *frame) blank(n int) {
	for i := 0; i < n; i++ {
		f.lines = append(f.lines, "")
	}
}

// center appends every line of block centered on the frame and returns the
// column the widest line starts at.
func (f *frame) center(block string) int {
	lines := strings.Split(block, "\n")
	w := 0
	for _, l := range lines {
		w = max(w, ansi.StringWidth(l))
	}
	left := max(0, (f.cols-w)/2)
	pad := strings.Repeat(" ", left)
	for _, l := range lines {
		f.lines = append(f.lines, pad+l)
	}
	return left
}

// centerHit is center with the whole block registered as clickable.
func (f *frame) centerHit(block, id string) {
	top := f.row()
	left := f.center(block)
	w := 0
	for _, l := range strings.Split(block, "\n") {
		w = max(w, ansi.StringWidth(l))
	}
	f.hits = append(f.hits, hitRegion{x: left, y: top, w: w, h: f.row() - top, id: id})
}

// buttons lays out labels side by side on one centered row.
func (f *frame) buttons(gap int, labels []string, ids []string) {
	widths := make([]int, len(labels))
	total := 0
	for i, l := range labels {
		widths[i] = ansi.StringWidth(l)
		total += widths[i]
	}
	total += gap * max(0, len(labels)-1)
	x := max(0, (f.cols-total)/2)
	y := f.row()
	f.lines = append(f.lines, strings.Repeat(" ", x)+strings.Join(labels, strings.Repeat(" ", gap)))
	for i := range labels {
		if i < len(ids) && ids[i] != "" {
			f.hits = append(f.hits, hitRegion{x: x, y: y, w: widths[i], h: 1, id: ids[i]})
		}
		x += widths[i] + gap
	}
}

func (f *frame) field(fl *field) {
	top := f.row()
	f.lines = append(f.lines, strings.Split(fl.String(), "\n")...)
	for _, h := range fl.hits {
		h.y += top
		f.hits = append(f.hits, h)
	}
}

// fit pads or trims the frame to exactly rows lines.
func (f *frame) fit(rows int) string {
	lines := f.lines
	if len(lines) > rows {
		lines = lines[:rows]
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// field is a grid of cells that glyphs are scattered onto by percentage
// position. Wide glyphs take the cell to their right.
type field struct {
	w, h   int
	cells  [][]string
	widths [][]int
	hits   []hitRegion
}

func newField(w, h int) *field {
	w, h = max(1, w), max(1, h)
	cells := make([][]string, h)
	widths := make([][]int, h)
	for i := range cells {
		cells[i] = make([]string, w)
		widths[i] = make([]int, w)
		for j := range cells[i] {
			cells[i][j] = " "
			widths[i][j] = 1
		}
	}
	return &field{w: w, h: h, cells: cells, widths: widths}
}

// cell maps percentage coordinates onto the grid.
func (f *field) cell(xPct, yPct float64) (int, int) {
	col := int(clamp(xPct, 0, 100) / 100 * float64(f.w-1))
	row := int(clamp(yPct, 0, 100) / 100 * float64(f.h-1))
	return col, row
}

// put draws glyph (already styled) whose display width is width at the
// given cell and returns false when it would not fit.
func (f *field) put(col, row int, glyph string, width int) bool {
	if row < 0 || row >= f.h || col < 0 || col+width > f.w || width < 1 || width > 2 {
		return false
	}
	for i := 0; i < width; i++ {
		f.clear(row, col+i)
	}
	f.cells[row][col] = glyph
	f.widths[row][col] = width
	if width == 2 {
		f.cells[row][col+1] = ""
		f.widths[row][col+1] = 0
	}
	return true
}

// clear blanks one cell, along with the other half of a wide glyph it
// belongs to.
func (f *field) clear(row, col int) {
	switch f.widths[row][col] {
	case 0:
		if col > 0 {
			f.cells[row][col-1] = " "
			f.widths[row][col-1] = 1
		}
	case 2:
		if col+1 < f.w {
			f.cells[row][col+1] = " "
			f.widths[row][col+1] = 1
		}
	}
	f.cells[row][col] = " "
	f.widths[row][col] = 1
}

func (f *field) String() string {
	rows := make([]string, f.h)
	for i, r := range f.cells {
		rows[i] = strings.Join(r, "")
	}
	return strings.Join(rows, "\n")
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
