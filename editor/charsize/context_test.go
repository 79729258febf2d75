package charsize

import (
	"testing"

	"github.com/hnimtadd/linewidth/editor/decor"
	"github.com/stretchr/testify/assert"
)

func TestDecorWidthLazyCache(t *testing.T) {
	_, ctx := Classify(decorWindow(decor.Decor{Marker: "===="}, 80), nil, 0, []byte("x"))
	assert.Equal(t, decorUnset, ctx.decorWidth)

	assert.Equal(t, 4, ctx.DecorWidth())
	assert.Equal(t, 4, ctx.decorWidth)
	assert.Equal(t, 4, ctx.DecorWidth())
}

func TestDecorWidthWithoutDecor(t *testing.T) {
	_, ctx := Classify(plainWindow(), nil, 0, []byte("x"))
	assert.Equal(t, 0, ctx.DecorWidth())
}

func TestDecorWidthRepeatsIndent(t *testing.T) {
	d := decor.Decor{Marker: "> ", BreakIndent: true}
	_, ctx := Classify(decorWindow(d, 80), nil, 0, []byte("    x"))
	assert.Equal(t, 6, ctx.DecorWidth())
}

func TestContextAccessors(t *testing.T) {
	win := plainWindow()
	line := []byte("x")
	_, ctx := Classify(win, nil, 0, line)
	assert.Same(t, win, ctx.Window())
	assert.Equal(t, line, ctx.Line())
}
