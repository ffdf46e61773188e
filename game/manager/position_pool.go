package manager

import (
	"sort"

	"diplopod/game/types"

	"github.com/zyedidia/generic/mapset"
	"golang.org/x/exp/rand"
)

// PositionPool tracks every coarse cell that is currently free.
//
// Cells are drawn by picking a uniformly random index and swap-removing it,
// so draw order does not depend on the order cells were released in.
type PositionPool struct {
	grid  types.Grid
	cells []types.Cell
	index map[types.Cell]int
	rng   *rand.Rand
}

// NewPositionPool creates a pool holding every cell of grid in random order.
func NewPositionPool(grid types.Grid, rng *rand.Rand) *PositionPool {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	p := &PositionPool{
		grid: grid,
		rng:  rng,
	}
	p.Reset()
	return p
}

// Reset refills the pool with the whole grid and permutes it.
func (p *PositionPool) Reset() {
	p.cells = make([]types.Cell, 0, p.grid.Size())
	for x := 0; x < p.grid.Width; x++ {
		for y := 0; y < p.grid.Height; y++ {
			p.cells = append(p.cells, types.Cell{X: x, Y: y})
		}
	}
	p.rng.Shuffle(len(p.cells), func(i, j int) {
		p.cells[i], p.cells[j] = p.cells[j], p.cells[i]
	})

	p.index = make(map[types.Cell]int, len(p.cells))
	for i, c := range p.cells {
		p.index[c] = i
	}
}

// Draw removes and returns a random free cell. False means the pool is
// exhausted and the caller should skip its spawn.
func (p *PositionPool) Draw() (types.Cell, bool) {
	if len(p.cells) == 0 {
		return types.Cell{}, false
	}
	i := p.rng.Intn(len(p.cells))
	c := p.cells[i]
	p.removeAt(i)
	return c, true
}

// DrawExcluding is Draw restricted to cells not contained in exclude.
func (p *PositionPool) DrawExcluding(exclude mapset.Set[types.Cell]) (types.Cell, bool) {
	candidates := make([]int, 0, len(p.cells))
	for i, c := range p.cells {
		if !exclude.Has(c) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return types.Cell{}, false
	}

	i := candidates[p.rng.Intn(len(candidates))]
	c := p.cells[i]
	p.removeAt(i)
	return c, true
}

// Remove takes a specific cell out of the pool. No-op if absent.
func (p *PositionPool) Remove(c types.Cell) {
	if i, ok := p.index[c]; ok {
		p.removeAt(i)
	}
}

func (p *PositionPool) RemoveAll(cells []types.Cell) {
	for _, c := range cells {
		p.Remove(c)
	}
}

// Release returns a cell to the pool. Cells outside the grid and cells
// already present are ignored.
func (p *PositionPool) Release(c types.Cell) bool {
	if !p.grid.Contains(c) {
		return false
	}
	if _, ok := p.index[c]; ok {
		return false
	}
	p.index[c] = len(p.cells)
	p.cells = append(p.cells, c)
	return true
}

func (p *PositionPool) Contains(c types.Cell) bool {
	_, ok := p.index[c]
	return ok
}

func (p *PositionPool) Len() int {
	return len(p.cells)
}

func (p *PositionPool) Grid() types.Grid {
	return p.grid
}

// Cells returns a sorted copy of the free cells.
func (p *PositionPool) Cells() []types.Cell {
	out := make([]types.Cell, len(p.cells))
	copy(out, p.cells)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

func (p *PositionPool) removeAt(i int) {
	last := len(p.cells) - 1
	c := p.cells[i]
	moved := p.cells[last]
	p.cells[i] = moved
	p.index[moved] = i
	p.cells = p.cells[:last]
	delete(p.index, c)
}
