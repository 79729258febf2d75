package utils

import "math"

// MaxColumn is the largest representable screen column. Width sums
// saturate here instead of wrapping around.
const MaxColumn = math.MaxInt32

// AddColumns adds two cell counts and saturates at MaxColumn.
func AddColumns(a int, b int) int {
	if a > MaxColumn-b {
		return MaxColumn
	}
	return a + b
}
