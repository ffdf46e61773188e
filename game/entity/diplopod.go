package entity

import (
	"diplopod/game/types"

	"github.com/zyedidia/generic/mapset"
)

// Diplopod is the player creature. Segments[0] is the head.
type Diplopod struct {
	Segments  []types.Point
	Direction types.Point

	lastTail    types.Point
	hasLastTail bool
}

func NewDiplopod(start types.Point) *Diplopod {
	return &Diplopod{
		Segments:  []types.Point{start},
		Direction: types.Point{}, // idle until the first input
	}
}

// Head returns the head position, false if the creature has no segments.
func (d *Diplopod) Head() (types.Point, bool) {
	if d == nil || len(d.Segments) == 0 {
		return types.Point{}, false
	}
	return d.Segments[0], true
}

func (d *Diplopod) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Segments)
}

// Moving reports whether a non-zero direction has been set.
func (d *Diplopod) Moving() bool {
	return !d.Direction.IsZero()
}

// Turn applies a direction coming from an input collaborator. Only the four
// axis directions are accepted and a moving creature may not reverse onto
// its own neck. Returns whether the direction was taken.
func (d *Diplopod) Turn(dir types.Direction) bool {
	step := dir.ToPoint()
	if step.IsZero() {
		return false
	}
	if d.Moving() && step.X == -d.Direction.X && step.Y == -d.Direction.Y {
		return false
	}
	d.Direction = step
	return true
}

// Move advances the creature by one fine cell. It returns whether any
// movement happened and whether the new head landed on a segment position
// held at the start of the tick. The shift completes even when it collides.
func (d *Diplopod) Move() (moved bool, selfCollision bool) {
	if len(d.Segments) == 0 || d.Direction.IsZero() {
		return false, false
	}

	old := make([]types.Point, len(d.Segments))
	copy(old, d.Segments)

	newHead := old[0].Add(d.Direction)
	for _, p := range old {
		if p == newHead {
			selfCollision = true
			break
		}
	}

	for i := 1; i < len(d.Segments); i++ {
		d.Segments[i] = old[i-1]
	}
	d.Segments[0] = newHead

	d.lastTail = old[len(old)-1]
	d.hasLastTail = true
	return true, selfCollision
}

// LastTail is the tail position before the most recent move.
func (d *Diplopod) LastTail() (types.Point, bool) {
	return d.lastTail, d.hasLastTail
}

// Grow appends n segments at the last recorded tail position.
// Nothing happens before the first move.
func (d *Diplopod) Grow(n int) int {
	if n <= 0 || !d.hasLastTail {
		return 0
	}
	for i := 0; i < n; i++ {
		d.Segments = append(d.Segments, d.lastTail)
	}
	return n
}

// Projection counts the segments covering each coarse cell.
func (d *Diplopod) Projection(scale int) map[types.Cell]int {
	cells := make(map[types.Cell]int, len(d.Segments))
	for _, p := range d.Segments {
		cells[p.Coarse(scale)]++
	}
	return cells
}

// CoarseCells is the set of coarse cells under the creature.
func (d *Diplopod) CoarseCells(scale int) mapset.Set[types.Cell] {
	cells := mapset.New[types.Cell]()
	for _, p := range d.Segments {
		cells.Put(p.Coarse(scale))
	}
	return cells
}
