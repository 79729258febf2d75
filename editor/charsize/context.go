package charsize

import (
	"math"

	"github.com/hnimtadd/linewidth/editor/vtext"
	"github.com/hnimtadd/linewidth/editor/window"
)

// Sentinel for a decoration width that has not been computed yet.
const decorUnset = math.MinInt32

// Context is the per-line state of one width scan. It is created by
// Classify, used for exactly one line, and discarded. The annotation
// cursor inside it only moves forward, so characters must be queried
// in non-decreasing position order.
type Context struct {
	win  *window.Window
	line []byte

	// Expand tabs to the next tab stop (true) or render them as their
	// two-cell escape form (false).
	useTabstop bool

	// Wrap decoration width, computed on first use.
	decorWidth int

	// Row used to look up annotations, -1 when none apply to the line.
	virtRow int

	// Cursor byte position within the line, -1 when not relevant, and
	// the widths of annotations anchored on it split by gravity.
	cursorCol   int
	cursorLeft  int
	cursorRight int

	headCap HeadCap

	anns *vtext.Index
	iter *vtext.Cursor
}

// Classify inspects the window configuration and the line once and
// picks the computation strategy for it: ModeFast when neither wrap
// decoration nor annotations can contribute to any character on the
// line, ModeRegular otherwise. The returned Context is bound to line
// and must not be reused for another line.
func Classify(win *window.Window, anns *vtext.Index, row int, line []byte) (Mode, *Context) {
	ctx := &Context{
		win:        win,
		line:       line,
		useTabstop: !win.List,
		decorWidth: decorUnset,
		virtRow:    -1,
		cursorCol:  -1,
		anns:       anns,
	}

	if anns != nil && anns.HasRow(row) {
		ctx.virtRow = row
		ctx.iter = anns.CursorAt(row, 0)
	}

	if ctx.virtRow >= 0 || win.HasDecor() {
		return ModeRegular, ctx
	}
	return ModeFast, ctx
}

// Window returns the owning window configuration.
func (ctx *Context) Window() *window.Window { return ctx.win }

// Line returns the line content the context is bound to.
func (ctx *Context) Line() []byte { return ctx.line }

// SetCursor records the cursor's byte position within the line and
// resolves the widths of annotations anchored exactly on it, split
// into the part that stays left of the cursor and the part that stays
// right of it. Call before the first CharWidth query.
func (ctx *Context) SetCursor(col int) {
	ctx.cursorCol = col
	if ctx.virtRow >= 0 {
		ctx.cursorLeft, ctx.cursorRight = ctx.anns.WidthsAt(ctx.virtRow, col)
	}
}

// CursorTextWidths returns the annotation widths left and right of the
// cursor position set with SetCursor.
func (ctx *Context) CursorTextWidths() (left, right int) {
	return ctx.cursorLeft, ctx.cursorRight
}

// SetHeadCap installs the policy limiting how much decoration width is
// charged to head accounting.
func (ctx *Context) SetHeadCap(hc HeadCap) {
	ctx.headCap = hc
}

// DecorWidth returns the wrap decoration width for this line,
// computing it on first use and caching it for the rest of the scan.
func (ctx *Context) DecorWidth() int {
	if ctx.decorWidth == decorUnset {
		if !ctx.win.HasDecor() {
			ctx.decorWidth = 0
		} else {
			ctx.decorWidth = ctx.win.Decor.Width(ctx.win.Tabs, ctx.win.Width, ctx.line)
		}
	}
	return ctx.decorWidth
}
