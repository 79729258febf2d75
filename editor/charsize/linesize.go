package charsize

import (
	"unicode/utf8"

	"github.com/hnimtadd/linewidth/editor/utils"
)

// LineSize returns the total screen width of the context's line when
// drawing starts at startCol. Line terminators end the sum; an
// end-of-line indicator is the caller's business.
func LineSize(mode Mode, ctx *Context, startCol int) int {
	return LineSizeN(mode, ctx, startCol, len(ctx.line))
}

// LineSizeN is LineSize limited to the first byteLimit bytes of the
// line. It drives cursor-column resolution: the width of everything
// before a byte offset.
func LineSizeN(mode Mode, ctx *Context, startCol, byteLimit int) int {
	line := ctx.line
	utils.Assert(byteLimit >= 0 && byteLimit <= len(line), "byte limit out of range")

	vcol := startCol
	for pos := 0; pos < byteLimit; {
		cp, n := utf8.DecodeRune(line[pos:])
		if cp == 0 || cp == '\n' {
			break
		}
		cs := charSize(mode, ctx, vcol, pos, cp, n == 1 && cp == utf8.RuneError)
		vcol = utils.AddColumns(vcol, cs.Width)
		pos += n
	}
	return vcol - startCol
}
