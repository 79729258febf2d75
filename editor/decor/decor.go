// Package decor models wrap decoration: the marker and repeated indent
// drawn at the start of soft-wrapped continuation lines.
package decor

import (
	"fmt"

	"github.com/hnimtadd/linewidth/editor/cell"
	"github.com/hnimtadd/linewidth/editor/tabstops"
	"github.com/hnimtadd/linewidth/editor/utils"
	"github.com/hnimtadd/linewidth/logger"
	"github.com/mitchellh/hashstructure/v2"
)

// Decor describes the decoration for one window.
type Decor struct {
	// Marker drawn before continuation content, e.g. "> ". Empty means
	// no marker.
	Marker string

	// Repeat the line's leading indent on continuation lines.
	BreakIndent bool

	// Cells added to (or, negative, removed from) the repeated indent.
	// Only meaningful with BreakIndent.
	Shift int
}

// IsZero reports whether the decoration draws nothing.
func (d Decor) IsZero() bool {
	return d.Marker == "" && !d.BreakIndent
}

func (d Decor) Hash() uint64 {
	hashed, err := hashstructure.Hash(d, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash decoration: %v", err))
	return hashed
}

// Width returns the number of cells the decoration occupies in front
// of a continuation line of the given content. The indent part depends
// on the line (its leading whitespace is repeated); the marker part is
// fixed. When innerWidth is positive the result is capped so at least
// one content cell remains per row.
func (d *Decor) Width(tabs *tabstops.Tabstops, innerWidth int, line []byte) int {
	if d == nil || d.IsZero() {
		return 0
	}

	width := 0
	for _, cp := range d.Marker {
		width += cell.Cells(cp)
	}

	if d.BreakIndent {
		indent := 0
		for _, b := range line {
			if b == ' ' {
				indent++
			} else if b == '\t' {
				indent += tabs.Padding(indent)
			} else {
				break
			}
		}
		indent += d.Shift
		if indent > 0 {
			width += indent
		}
	}

	if innerWidth > 0 && width > innerWidth-1 {
		width = innerWidth - 1
	}
	return width
}

// Registry interns decoration configs so windows sharing a decoration
// share one value.
type Registry struct {
	decors map[uint64]*Decor
	logger logger.Logger
}

func NewRegistry(log logger.Logger) *Registry {
	if log == nil {
		log = logger.DefaultLogger
	}
	return &Registry{
		decors: make(map[uint64]*Decor),
		logger: log,
	}
}

// Intern returns the canonical value for d, storing it on first use.
func (r *Registry) Intern(d Decor) *Decor {
	key := d.Hash()
	if got, ok := r.decors[key]; ok {
		return got
	}
	r.logger.Debug("interned wrap decoration", "marker", d.Marker, "breakindent", d.BreakIndent)
	stored := d
	r.decors[key] = &stored
	return &stored
}

// Count returns the number of distinct decorations interned.
func (r *Registry) Count() int { return len(r.decors) }
