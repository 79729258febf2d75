// Package vtext indexes inline virtual text: editor-generated content
// anchored to a buffer position that occupies display width but is not
// part of the stored line.
package vtext

import (
	"sort"

	"github.com/hnimtadd/linewidth/editor/utils"
)

// Annotation is one piece of inline virtual text. Row is the display
// row it belongs to, Col the byte position in the line it is anchored
// at, Width its display width in cells.
//
// RightGravity decides which side of a cursor sitting exactly on the
// anchor the annotation belongs to: true means the annotation stays
// right of the cursor, false means it stays left.
type Annotation struct {
	Row          int
	Col          int
	Width        int
	RightGravity bool
}

// Index holds annotations ordered by (Row, Col). Insertion order of
// annotations sharing an anchor is preserved.
type Index struct {
	anns []Annotation
}

func NewIndex() *Index {
	return &Index{}
}

// Add inserts an annotation, keeping the index position-ordered.
func (x *Index) Add(a Annotation) {
	i := sort.Search(len(x.anns), func(i int) bool {
		b := x.anns[i]
		if b.Row != a.Row {
			return b.Row > a.Row
		}
		return b.Col > a.Col
	})
	x.anns = append(x.anns, Annotation{})
	copy(x.anns[i+1:], x.anns[i:])
	x.anns[i] = a
}

// Len returns the total number of annotations.
func (x *Index) Len() int { return len(x.anns) }

// HasRow reports whether any annotation is anchored on row.
func (x *Index) HasRow(row int) bool {
	i := x.lowerBound(row, 0)
	return i < len(x.anns) && x.anns[i].Row == row
}

// WidthsAt returns the summed widths of annotations anchored exactly
// at (row, col), split by gravity: left is the portion that stays left
// of a cursor on the anchor, right the portion that stays right of it.
func (x *Index) WidthsAt(row, col int) (left, right int) {
	for i := x.lowerBound(row, col); i < len(x.anns); i++ {
		a := x.anns[i]
		if a.Row != row || a.Col != col {
			break
		}
		if a.RightGravity {
			right += a.Width
		} else {
			left += a.Width
		}
	}
	return left, right
}

// CursorAt returns a forward-only cursor positioned at the first
// annotation of row whose anchor is at or after col.
func (x *Index) CursorAt(row, col int) *Cursor {
	return &Cursor{
		index:   x,
		row:     row,
		i:       x.lowerBound(row, col),
		lastCol: col,
	}
}

func (x *Index) lowerBound(row, col int) int {
	return sort.Search(len(x.anns), func(i int) bool {
		b := x.anns[i]
		if b.Row != row {
			return b.Row > row
		}
		return b.Col >= col
	})
}

// Cursor iterates the annotations of one row in anchor order. It only
// moves forward; a scan that needs to revisit earlier positions must
// create a fresh cursor via CursorAt.
type Cursor struct {
	index   *Index
	row     int
	i       int
	lastCol int
}

// Current returns the annotation under the cursor, or ok=false when
// the row is exhausted.
func (c *Cursor) Current() (Annotation, bool) {
	if c.i >= len(c.index.anns) {
		return Annotation{}, false
	}
	a := c.index.anns[c.i]
	if a.Row != c.row {
		return Annotation{}, false
	}
	return a, true
}

// Next advances past the current annotation.
func (c *Cursor) Next() {
	if c.i < len(c.index.anns) {
		c.i++
	}
}

// AdvanceTo skips annotations anchored before col. Queries must come
// in non-decreasing col order within one scan.
func (c *Cursor) AdvanceTo(col int) {
	utils.Assert(col >= c.lastCol, "annotation cursor moved backwards")
	c.lastCol = col
	for {
		a, ok := c.Current()
		if !ok || a.Col >= col {
			return
		}
		c.i++
	}
}
