package game

import (
	"diplopod/game/entity"
	"diplopod/game/types"
)

// Snapshot is a read-only copy of everything a renderer or an autopilot
// needs. Segments are fine grid points, everything else is on the coarse
// grid.
type Snapshot struct {
	Phase  types.Phase
	Paused bool
	Tick   int

	Width  int
	Height int
	Scale  int

	Segments    []types.Point
	Direction   types.Point
	Consumables []entity.Consumable
	Walls       []types.Cell
	Immunity    int

	Score     int
	LastScore int
	HighScore int
	RoundID   string

	Played  int
	Average float64
	Median  float64
	History []int
}

// Head is the first segment, false when the creature is gone.
func (s Snapshot) Head() (types.Point, bool) {
	if len(s.Segments) == 0 {
		return types.Point{}, false
	}
	return s.Segments[0], true
}

// ImmunityEnding tells renderers to blink the creature.
func (s Snapshot) ImmunityEnding() bool {
	return s.Immunity > 0 && s.Immunity <= 2
}

func (g *Game) Snapshot() Snapshot {
	stats := g.state.Stats()
	s := Snapshot{
		Phase:       g.state.Phase(),
		Paused:      g.paused,
		Tick:        g.tick,
		Width:       g.cfg.Width,
		Height:      g.cfg.Height,
		Scale:       g.cfg.Scale,
		Consumables: g.registry.All(),
		Walls:       g.registry.Walls(),
		Immunity:    g.immunity.Remaining(),
		LastScore:   g.state.LastScore(),
		HighScore:   g.state.HighScore(),
		RoundID:     g.state.RoundID(),
		Played:      stats.Played(),
		Average:     stats.Average(),
		Median:      stats.Median(),
		History:     stats.Scores(),
	}
	if g.diplopod != nil {
		s.Segments = make([]types.Point, len(g.diplopod.Segments))
		copy(s.Segments, g.diplopod.Segments)
		s.Direction = g.diplopod.Direction
		s.Score = g.diplopod.Len()
	}
	return s
}
