// Package tabstops tracks where tab characters advance to on a line.
//
// Stops come from two layers: a fixed interval (the 'tabstop' option)
// and explicit per-column stops layered on top of it. Explicit stops
// within the tracked range win over the interval; past the tracked
// range the interval takes over again.
package tabstops

// Unit is the type we use per tabstop unit.
type Unit = uint8

const (
	unitBits        = 8 // bits in Unit (uint8)
	preallocCols    = 512
	preallocCount   = preallocCols / unitBits
	DefaultInterval = 8
)

// Tabstops efficiently tracks tabstop locations.
type Tabstops struct {
	interval int
	cols     int
	explicit bool
	prealloc [preallocCount]Unit
	dynamic  []Unit
}

// Helper: bit mask for each bit in a Unit
var masks = func() [unitBits]Unit {
	var m [unitBits]Unit
	for i := range m {
		m[i] = 1 << i
	}
	return m
}()

func entry(col int) int { return col / unitBits }
func index(col int) int { return col % unitBits }

// New creates a Tabstops stepping at the given interval. A
// non-positive interval falls back to DefaultInterval.
func New(interval int) *Tabstops {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Tabstops{interval: interval, cols: preallocCols}
}

// Interval returns the fallback stop interval.
func (t *Tabstops) Interval() int { return t.interval }

// Set marks an explicit tabstop at a certain column (0-indexed).
func (t *Tabstops) Set(col int) {
	t.grow(col + 1)
	i, idx := entry(col), index(col)
	if i < preallocCount {
		t.prealloc[i] |= masks[idx]
	} else {
		t.dynamic[i-preallocCount] |= masks[idx]
	}
	t.explicit = true
}

// Unset removes an explicit tabstop at a certain column (0-indexed).
func (t *Tabstops) Unset(col int) {
	i, idx := entry(col), index(col)
	if i < preallocCount {
		t.prealloc[i] &^= masks[idx]
		return
	}
	dynI := i - preallocCount
	if dynI < len(t.dynamic) {
		t.dynamic[dynI] &^= masks[idx]
	}
}

// Get returns true if an explicit tabstop is set at the given column.
func (t *Tabstops) Get(col int) bool {
	if col >= t.cols {
		return false
	}
	i, idx := entry(col), index(col)
	var unit Unit
	if i < preallocCount {
		unit = t.prealloc[i]
	} else {
		unit = t.dynamic[i-preallocCount]
	}
	return unit&masks[idx] != 0
}

// Padding returns how many cells a tab starting at col consumes, i.e.
// the distance from col to the next stop after it. It is always at
// least 1.
func (t *Tabstops) Padding(col int) int {
	if t.explicit {
		for c := col + 1; c < t.cols; c++ {
			if t.Get(c) {
				return c - col
			}
		}
	}
	return t.interval - col%t.interval
}

// Reset removes all explicit tabstops and sets a new interval.
func (t *Tabstops) Reset(interval int) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	t.interval = interval
	t.explicit = false
	for i := range t.prealloc {
		t.prealloc[i] = 0
	}
	for i := range t.dynamic {
		t.dynamic[i] = 0
	}
}

// grow ensures cols columns are tracked.
func (t *Tabstops) grow(cols int) {
	if cols <= t.cols {
		return
	}
	t.cols = cols
	if cols <= preallocCols {
		return
	}
	needed := entry(cols-1) + 1 - preallocCount
	if needed <= len(t.dynamic) {
		return
	}
	grown := make([]Unit, needed)
	copy(grown, t.dynamic)
	t.dynamic = grown
}
