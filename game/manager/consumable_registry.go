package manager

import (
	"sort"

	"diplopod/game/entity"
	"diplopod/game/types"

	"github.com/zyedidia/generic/mapset"
)

// ConsumableRegistry tracks live consumables indexed by kind, plus the
// arena walls. A cell holds at most one consumable.
type ConsumableRegistry struct {
	byKind map[entity.Kind]mapset.Set[types.Cell]
	walls  mapset.Set[types.Cell]
}

func NewConsumableRegistry() *ConsumableRegistry {
	r := &ConsumableRegistry{}
	r.Clear()
	return r
}

// Clear removes every consumable and wall.
func (r *ConsumableRegistry) Clear() {
	r.byKind = make(map[entity.Kind]mapset.Set[types.Cell], len(entity.Kinds))
	for _, k := range entity.Kinds {
		r.byKind[k] = mapset.New[types.Cell]()
	}
	r.walls = mapset.New[types.Cell]()
}

// Add places a consumable. It fails if the cell is taken or if a special
// kind already has a live instance.
func (r *ConsumableRegistry) Add(kind entity.Kind, c types.Cell) bool {
	if r.Occupied(c) {
		return false
	}
	if kind.Special() && r.Count(kind) > 0 {
		return false
	}
	r.byKind[kind].Put(c)
	return true
}

func (r *ConsumableRegistry) Remove(kind entity.Kind, c types.Cell) bool {
	set := r.byKind[kind]
	if !set.Has(c) {
		return false
	}
	set.Remove(c)
	return true
}

// Move relocates a consumable to a free cell.
func (r *ConsumableRegistry) Move(kind entity.Kind, from, to types.Cell) bool {
	if !r.Has(kind, from) || r.Occupied(to) {
		return false
	}
	r.byKind[kind].Remove(from)
	r.byKind[kind].Put(to)
	return true
}

func (r *ConsumableRegistry) Has(kind entity.Kind, c types.Cell) bool {
	return r.byKind[kind].Has(c)
}

// At returns the kind of the consumable on c.
func (r *ConsumableRegistry) At(c types.Cell) (entity.Kind, bool) {
	for _, k := range entity.Kinds {
		if r.byKind[k].Has(c) {
			return k, true
		}
	}
	return 0, false
}

func (r *ConsumableRegistry) Count(kind entity.Kind) int {
	return r.byKind[kind].Size()
}

// Cells lists the cells holding kind, row by row.
func (r *ConsumableRegistry) Cells(kind entity.Kind) []types.Cell {
	return sortedCells(r.byKind[kind])
}

// Single returns the one live instance of a special kind.
func (r *ConsumableRegistry) Single(kind entity.Kind) (types.Cell, bool) {
	cells := r.Cells(kind)
	if len(cells) == 0 {
		return types.Cell{}, false
	}
	return cells[0], true
}

func (r *ConsumableRegistry) All() []entity.Consumable {
	var out []entity.Consumable
	for _, k := range entity.Kinds {
		for _, c := range r.Cells(k) {
			out = append(out, entity.Consumable{Kind: k, Cell: c})
		}
	}
	return out
}

func (r *ConsumableRegistry) AddWall(c types.Cell) {
	r.walls.Put(c)
}

func (r *ConsumableRegistry) IsWall(c types.Cell) bool {
	return r.walls.Has(c)
}

func (r *ConsumableRegistry) Walls() []types.Cell {
	return sortedCells(r.walls)
}

// Occupied reports whether c holds a consumable or a wall.
func (r *ConsumableRegistry) Occupied(c types.Cell) bool {
	if r.walls.Has(c) {
		return true
	}
	_, ok := r.At(c)
	return ok
}

func sortedCells(set mapset.Set[types.Cell]) []types.Cell {
	out := make([]types.Cell, 0, set.Size())
	set.Each(func(c types.Cell) {
		out = append(out, c)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
