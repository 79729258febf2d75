// Package window holds the per-window configuration the width engine
// reads. A Window is shared, read-only state for the duration of a
// redraw pass.
package window

import (
	"github.com/hnimtadd/linewidth/editor/cell"
	"github.com/hnimtadd/linewidth/editor/decor"
	"github.com/hnimtadd/linewidth/editor/tabstops"
)

type Window struct {
	// Inner text width in cells. Zero means unbounded (no wrapping can
	// occur, decoration width is not capped).
	Width int

	// Soft-wrap long lines. Decoration only applies when wrapping.
	Wrap bool

	// List mode renders tabs in their two-cell escape form instead of
	// expanding them to the next tab stop.
	List bool

	// Tab stop layout for this window's buffer.
	Tabs *tabstops.Tabstops

	// Wrap decoration, nil for none.
	Decor *decor.Decor

	// How ambiguous-width code points are measured.
	Cond cell.Condition
}

// Options mirror the fields of Window that differ from the defaults.
type Options struct {
	Width int
	Wrap  bool
	List  bool
	Tabs  *tabstops.Tabstops
	Decor *decor.Decor
	Cond  cell.Condition
}

// New creates a window. A nil Tabs gets the default 8-cell interval.
func New(opts Options) *Window {
	tabs := opts.Tabs
	if tabs == nil {
		tabs = tabstops.New(tabstops.DefaultInterval)
	}
	return &Window{
		Width: opts.Width,
		Wrap:  opts.Wrap,
		List:  opts.List,
		Tabs:  tabs,
		Decor: opts.Decor,
		Cond:  opts.Cond,
	}
}

// HasDecor reports whether wrap decoration can appear in this window.
func (w *Window) HasDecor() bool {
	return w.Wrap && w.Decor != nil && !w.Decor.IsZero()
}
