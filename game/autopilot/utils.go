package autopilot

import "diplopod/game/types"

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// manhattan is the taxicab distance on the fine grid. The arena has walls,
// so there is no wrapping.
func manhattan(p1, p2 types.Point) int {
	return abs(p2.X-p1.X) + abs(p2.Y-p1.Y)
}

func maxFloat64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minFloat64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
