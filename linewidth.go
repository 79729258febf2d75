// Package linewidth computes how many screen columns text occupies in
// a fixed-width terminal display, accounting for tab expansion,
// variable-width glyphs, wrap decoration and inline virtual text.
//
// The core lives in editor/charsize; this package is the convenience
// surface for callers that just want a width.
package linewidth

import (
	"github.com/hnimtadd/linewidth/editor/charsize"
	"github.com/hnimtadd/linewidth/editor/vtext"
	"github.com/hnimtadd/linewidth/editor/window"
)

// defaultWindow backs StringWidth: tabs step at the default interval,
// nothing wraps, nothing is annotated. It is never mutated.
var defaultWindow = window.New(window.Options{})

// StringWidth returns the number of screen cells s occupies starting
// at column zero under the default configuration.
func StringWidth(s string) int {
	return StringWidthCol(0, s)
}

// StringWidthCol is StringWidth starting at the given column, which
// matters when s contains tabs.
func StringWidthCol(col int, s string) int {
	mode, ctx := charsize.Classify(defaultWindow, nil, 0, []byte(s))
	return charsize.LineSize(mode, ctx, col)
}

// LineWidth returns the screen width of line in the given window,
// including wrap decoration and any annotations anchored on row.
func LineWidth(win *window.Window, anns *vtext.Index, row int, line []byte) int {
	mode, ctx := charsize.Classify(win, anns, row, line)
	return charsize.LineSize(mode, ctx, 0)
}

// LineWidthN is LineWidth over the first byteLimit bytes of line. It
// resolves a byte offset to the column a cursor on it lands at.
func LineWidthN(win *window.Window, anns *vtext.Index, row int, line []byte, byteLimit int) int {
	mode, ctx := charsize.Classify(win, anns, row, line)
	return charsize.LineSizeN(mode, ctx, 0, byteLimit)
}
