// Package charsize computes how many screen cells each character of a
// line occupies, merging tab expansion, intrinsic glyph width, wrap
// decoration and inline virtual text into one per-character result.
package charsize

import (
	"unicode/utf8"

	"github.com/hnimtadd/linewidth/editor/cell"
	"github.com/hnimtadd/linewidth/editor/utils"
)

// Mode selects the computation strategy for a line. It is chosen once
// per line by Classify and must not change mid-scan.
type Mode int

const (
	// ModeRegular handles wrap decoration and annotations.
	ModeRegular Mode = iota

	// ModeFast skips decoration and annotation lookups entirely. It is
	// only valid when Classify verified none can occur on the line.
	ModeFast
)

// CharSize is the result for one character. Width is the total number
// of cells it consumes, Head the subset of Width that is wrap
// decoration rather than content. Head never exceeds Width.
type CharSize struct {
	Width int
	Head  int
}

// HeadCapKind selects how decoration width charged to head accounting
// is limited.
type HeadCapKind int

const (
	// HeadCapNone charges all drawn decoration to head.
	HeadCapNone HeadCapKind = iota

	// HeadCapByColumn only charges decoration appearing before the
	// threshold column.
	HeadCapByColumn

	// HeadCapByCursor only charges decoration encountered while
	// scanning toward the cursor position set with SetCursor.
	HeadCapByCursor
)

// HeadCap limits head accounting without changing Width: decoration
// that is drawn always consumes its cells, the cap only decides
// whether the caller is charged for them in Head.
type HeadCap struct {
	Kind HeadCapKind
	Col  int
}

func (hc HeadCap) counted(ctx *Context, vcol, pos int) bool {
	switch hc.Kind {
	case HeadCapByColumn:
		return vcol < hc.Col
	case HeadCapByCursor:
		return ctx.cursorCol >= 0 && pos < ctx.cursorCol
	default:
		return true
	}
}

// CharWidth returns the size of the character at byte position pos
// when drawn at screen column vcol. Positions must be queried in
// non-decreasing order within one Context.
func CharWidth(mode Mode, ctx *Context, vcol, pos int) CharSize {
	utils.Assert(pos >= 0 && pos < len(ctx.line), "byte offset out of range")
	cp, n := utf8.DecodeRune(ctx.line[pos:])
	return charSize(mode, ctx, vcol, pos, cp, n == 1 && cp == utf8.RuneError)
}

func charSize(mode Mode, ctx *Context, vcol, pos int, cp rune, invalid bool) CharSize {
	if mode == ModeFast {
		return charsizeFast(ctx, vcol, cp, invalid)
	}
	return charsizeRegular(ctx, vcol, pos, cp, invalid)
}

// contentWidth is the width of the character itself, ignoring
// decoration and annotations. Tabs expand from vcol.
func contentWidth(ctx *Context, vcol int, cp rune, invalid bool) int {
	switch {
	case invalid:
		return cell.InvalidByteCells
	case cp == '\t' && ctx.useTabstop:
		return ctx.win.Tabs.Padding(vcol)
	case cell.NeedsEscape(cp):
		return cell.CaretCells
	default:
		return ctx.win.Cond.Cells(cp)
	}
}

// charsizeFast is the reduced path: content width only. Classify
// guarantees no decoration or annotation could apply.
func charsizeFast(ctx *Context, vcol int, cp rune, invalid bool) CharSize {
	return CharSize{Width: contentWidth(ctx, vcol, cp, invalid)}
}

// charsizeRegular is the general path: content width plus wrap
// decoration on the line's first character plus annotations anchored
// at the character's position.
func charsizeRegular(ctx *Context, vcol, pos int, cp rune, invalid bool) CharSize {
	// Zero-width code points take no cells and carry no tab,
	// decoration or annotation contribution.
	if !invalid && cp != '\t' && !cell.NeedsEscape(cp) && ctx.win.Cond.Cells(cp) == 0 {
		return CharSize{}
	}

	// Decoration is the one-time cost drawn before wrapped content, so
	// it lands on the first character only.
	head := 0
	if pos == 0 {
		head = ctx.DecorWidth()
	}

	// Annotations anchored at this position. At the cursor position
	// the split resolved by SetCursor is used instead of re-summing.
	extra := 0
	if ctx.virtRow >= 0 {
		ctx.iter.AdvanceTo(pos)
		sum := 0
		for {
			a, ok := ctx.iter.Current()
			if !ok || a.Col != pos {
				break
			}
			sum += a.Width
			ctx.iter.Next()
		}
		if pos == ctx.cursorCol {
			extra = ctx.cursorLeft + ctx.cursorRight
		} else {
			extra = sum
		}
	}

	// Decoration and annotations precede the character, so a tab
	// expands from the column after them.
	width := contentWidth(ctx, vcol+head+extra, cp, invalid)

	cs := CharSize{Width: head + extra + width}
	if head > 0 && ctx.headCap.counted(ctx, vcol, pos) {
		cs.Head = head
	}
	return cs
}
