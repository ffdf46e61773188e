// Package autopilot steers the creature on its own. It drives the demo
// rounds behind the menu and the -autopilot flag of the front ends.
package autopilot

import (
	"diplopod/game"
	"diplopod/game/entity"
	"diplopod/game/types"

	"github.com/zyedidia/generic/mapset"
	"golang.org/x/exp/rand"
)

// lookAhead is how many fine steps a direction is probed for obstacles.
const lookAhead = 6

// Pilot scores forward, left and right from a snapshot and picks the best.
type Pilot struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Pilot {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Pilot{rng: rng}
}

// view indexes a snapshot for repeated lookups.
type view struct {
	s           game.Snapshot
	walls       mapset.Set[types.Cell]
	body        mapset.Set[types.Point]
	consumables map[types.Cell]entity.Kind
}

func newView(s game.Snapshot) *view {
	v := &view{
		s:           s,
		walls:       mapset.New[types.Cell](),
		body:        mapset.New[types.Point](),
		consumables: make(map[types.Cell]entity.Kind, len(s.Consumables)),
	}
	for _, w := range s.Walls {
		v.walls.Put(w)
	}
	// the tail moves away on the next step
	for i, p := range s.Segments {
		if i == len(s.Segments)-1 && i > 0 {
			break
		}
		v.body.Put(p)
	}
	for _, c := range s.Consumables {
		v.consumables[c.Cell] = c.Kind
	}
	return v
}

// Next returns the direction to steer for the coming step. None means the
// snapshot holds no creature.
func (p *Pilot) Next(s game.Snapshot) types.Direction {
	head, ok := s.Head()
	if !ok {
		return types.None
	}
	v := newView(s)

	current := types.DirectionOf(s.Direction)
	candidates := []types.Direction{types.Up, types.Right, types.Down, types.Left}
	if current != types.None {
		candidates = []types.Direction{current, current.TurnLeft(), current.TurnRight()}
	}
	p.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	best := candidates[0]
	bestValue := -2.0
	for _, dir := range candidates {
		value := v.combined(head, dir)
		if value > bestValue {
			best, bestValue = dir, value
		}
	}
	return best
}

// combined rates a direction between -1 and 1, mixing the distance to the
// closest obstacle with progress towards the closest pickup.
func (v *view) combined(head types.Point, dir types.Direction) float64 {
	step := dir.ToPoint()
	next := head.Add(step)

	var danger float64
	if d := v.obstacleDistance(head, step); d >= 0 {
		if d == 0 {
			return -1
		}
		danger = -1 / float64(d+1)
	}

	if kind, ok := v.consumables[next.Coarse(v.s.Scale)]; ok && kind != entity.Poison {
		return 1
	}

	target, ok := v.nearestTarget(head)
	if !ok {
		return danger
	}
	nextDist := manhattan(next, target)
	currentDist := manhattan(head, target)

	switch {
	case nextDist < currentDist:
		if danger == 0 {
			return 0.5
		}
		return maxFloat64(danger, 0.5)
	case nextDist > currentDist:
		return minFloat64(danger, -0.3)
	default:
		return danger
	}
}

// obstacleDistance probes along step and returns how many free steps lie
// before the first obstacle, -1 if none is in reach.
func (v *view) obstacleDistance(head, step types.Point) int {
	p := head
	for i := 0; i < lookAhead; i++ {
		p = p.Add(step)
		if v.blocked(p) {
			return i
		}
	}
	return -1
}

func (v *view) blocked(p types.Point) bool {
	if v.body.Has(p) {
		return true
	}
	c := p.Coarse(v.s.Scale)
	if v.walls.Has(c) || c.X < 0 || c.Y < 0 || c.X > v.s.Width || c.Y > v.s.Height {
		return true
	}
	kind, ok := v.consumables[c]
	// poison is only safe while immunity outlasts the next tick
	return ok && kind == entity.Poison && v.s.Immunity <= 1
}

// nearestTarget returns the fine centre of the closest non-poison
// consumable.
func (v *view) nearestTarget(head types.Point) (types.Point, bool) {
	var (
		best  types.Point
		found bool
		dist  int
	)
	for _, c := range v.s.Consumables {
		if c.Kind == entity.Poison {
			continue
		}
		if c.Kind == entity.AntiDote && v.s.Immunity > 2 {
			continue
		}
		centre := types.Point{
			X: c.Cell.X*v.s.Scale + v.s.Scale/2,
			Y: c.Cell.Y*v.s.Scale + v.s.Scale/2,
		}
		if d := manhattan(head, centre); !found || d < dist {
			best, dist, found = centre, d, true
		}
	}
	return best, found
}
