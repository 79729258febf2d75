// Package cell maps single code points to the number of terminal grid
// cells they occupy when rendered.
package cell

import (
	dw "github.com/mattn/go-runewidth"
	xwidth "golang.org/x/text/width"
)

const (
	// Width of the caret escape form for a control character, e.g. "^G".
	CaretCells = 2

	// Width of the hex escape form for a byte that is not valid UTF-8,
	// e.g. "<e9>".
	InvalidByteCells = 4
)

// Condition controls how ambiguous-width code points are measured.
// Terminals configured for East Asian locales render them two cells
// wide, everything else renders them one cell wide.
type Condition struct {
	EastAsianWide bool
}

// Cells returns the intrinsic grid width of cp: 0 for combining and
// other zero-width code points, 2 for wide characters, 1 otherwise.
// Control characters are not handled here, see NeedsEscape.
func (c Condition) Cells(cp rune) int {
	if c.EastAsianWide && IsAmbiguous(cp) {
		return 2
	}
	return dw.RuneWidth(cp)
}

// Cells is Condition{}.Cells: intrinsic width with ambiguous code
// points measured narrow.
func Cells(cp rune) int {
	return dw.RuneWidth(cp)
}

// NeedsEscape reports whether cp cannot be rendered as itself and is
// drawn in caret escape form instead. This covers C0 controls and DEL.
func NeedsEscape(cp rune) bool {
	return cp < 0x20 || cp == 0x7f
}

// IsAmbiguous reports whether cp has East Asian ambiguous width.
func IsAmbiguous(cp rune) bool {
	return xwidth.LookupRune(cp).Kind() == xwidth.EastAsianAmbiguous
}
