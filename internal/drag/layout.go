package drag

import (
	"math"

	"github.com/m04kA/SMC-DayBoard/internal/domain"
)

// Layout vertical timeline of a day: pixel height and top offset of every block
type Layout struct {
	heights []int
	offsets []int
	total   int
}

// NewLayout builds a layout by mapping block durations onto the pixel scale
func NewLayout(schedule domain.Schedule) Layout {
	heights := make([]int, len(schedule.Blocks))
	for i, b := range schedule.Blocks {
		heights[i] = domain.DurationToPixels(b.Duration())
	}
	return NewLayoutFromHeights(heights)
}

// NewLayoutFromHeights builds a layout from precomputed block heights
func NewLayoutFromHeights(heights []int) Layout {
	l := Layout{
		heights: make([]int, len(heights)),
		offsets: make([]int, len(heights)),
	}
	copy(l.heights, heights)

	offset := 0
	for i, h := range l.heights {
		l.offsets[i] = offset
		offset += h
	}
	l.total = offset
	return l
}

// Len number of blocks
func (l Layout) Len() int {
	return len(l.heights)
}

// Height of block i in pixels
func (l Layout) Height(i int) int {
	return l.heights[i]
}

// Offset of the top edge of block i from the top of the timeline
func (l Layout) Offset(i int) int {
	return l.offsets[i]
}

// TotalHeight of the whole timeline
func (l Layout) TotalHeight() int {
	return l.total
}

// PositionAt returns the block index under y.
// y above the timeline maps to the first block, y below it to the last one.
// Returns -1 for an empty layout.
func (l Layout) PositionAt(y int) int {
	if len(l.heights) == 0 {
		return -1
	}
	for i := range l.heights {
		if y < l.offsets[i]+l.heights[i] {
			return i
		}
	}
	return len(l.heights) - 1
}

// SnapMinutes rounds a pixel offset to the nearest SnapIncrement step, in minutes
func SnapMinutes(y int) int {
	if y <= 0 {
		return 0
	}
	steps := math.Round(float64(y) / domain.PixelsPerSnap)
	return int(steps) * domain.SnapIncrement
}
