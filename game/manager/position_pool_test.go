package manager

import (
	"testing"

	"diplopod/game/types"

	"github.com/zyedidia/generic/mapset"
	"golang.org/x/exp/rand"
)

func newTestPool(w, h int, seed uint64) *PositionPool {
	return NewPositionPool(types.Grid{Width: w, Height: h}, rand.New(rand.NewSource(seed)))
}

func TestPositionPoolInitialize(t *testing.T) {
	p := newTestPool(5, 4, 1)
	if p.Len() != 20 {
		t.Fatalf("Len() = %d, want 20", p.Len())
	}

	seen := make(map[types.Cell]bool)
	for _, c := range p.Cells() {
		if seen[c] {
			t.Fatalf("duplicate cell %v", c)
		}
		seen[c] = true
		if !p.Grid().Contains(c) {
			t.Fatalf("cell %v outside grid", c)
		}
	}
}

func TestPositionPoolDrawUntilExhausted(t *testing.T) {
	p := newTestPool(3, 3, 7)
	drawn := make(map[types.Cell]bool)
	for i := 0; i < 9; i++ {
		c, ok := p.Draw()
		if !ok {
			t.Fatalf("draw %d failed early", i)
		}
		if drawn[c] {
			t.Fatalf("cell %v drawn twice", c)
		}
		drawn[c] = true
	}

	if _, ok := p.Draw(); ok {
		t.Error("draw on empty pool should report exhaustion")
	}
	if _, ok := p.DrawExcluding(mapset.New[types.Cell]()); ok {
		t.Error("DrawExcluding on empty pool should report exhaustion")
	}
}

func TestPositionPoolDrawIsSeeded(t *testing.T) {
	a := newTestPool(10, 10, 42)
	b := newTestPool(10, 10, 42)
	for i := 0; i < 30; i++ {
		ca, _ := a.Draw()
		cb, _ := b.Draw()
		if ca != cb {
			t.Fatalf("draw %d differs for equal seeds: %v vs %v", i, ca, cb)
		}
	}
}

func TestPositionPoolRemoveIdempotent(t *testing.T) {
	p := newTestPool(4, 4, 3)
	c := types.Cell{X: 1, Y: 2}

	p.Remove(c)
	p.Remove(c)
	if p.Contains(c) {
		t.Error("removed cell still present")
	}
	if p.Len() != 15 {
		t.Errorf("Len() = %d, want 15", p.Len())
	}

	p.RemoveAll([]types.Cell{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 3, Y: 3}, {X: 9, Y: 9}})
	if p.Len() != 13 {
		t.Errorf("Len() after RemoveAll = %d, want 13", p.Len())
	}
}

func TestPositionPoolRelease(t *testing.T) {
	p := newTestPool(2, 2, 5)
	c, _ := p.Draw()

	if !p.Release(c) {
		t.Fatal("release of drawn cell failed")
	}
	if p.Release(c) {
		t.Error("double release should be ignored")
	}
	if p.Release(types.Cell{X: 2, Y: 0}) {
		t.Error("release outside the grid should be ignored")
	}
	if p.Len() != 4 {
		t.Errorf("Len() = %d, want 4", p.Len())
	}
}

func TestPositionPoolDrawExcluding(t *testing.T) {
	p := newTestPool(3, 1, 11)
	exclude := mapset.New[types.Cell]()
	exclude.Put(types.Cell{X: 0, Y: 0})
	exclude.Put(types.Cell{X: 2, Y: 0})

	c, ok := p.DrawExcluding(exclude)
	if !ok || c != (types.Cell{X: 1, Y: 0}) {
		t.Fatalf("DrawExcluding = %v,%v, want (1,0),true", c, ok)
	}
	if _, ok := p.DrawExcluding(exclude); ok {
		t.Error("only excluded cells remain, draw should fail")
	}
	if p.Len() != 2 {
		t.Errorf("excluded cells must stay in the pool, Len() = %d", p.Len())
	}
}

func TestPositionPoolReset(t *testing.T) {
	p := newTestPool(6, 5, 9)
	for i := 0; i < 12; i++ {
		p.Draw()
	}
	p.Reset()

	fresh := newTestPool(6, 5, 100)
	got, want := p.Cells(), fresh.Cells()
	if len(got) != len(want) {
		t.Fatalf("Len() after reset = %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("cell %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPositionPoolDrawRoughlyUniform(t *testing.T) {
	counts := make(map[types.Cell]int)
	const rounds = 4000
	rng := rand.New(rand.NewSource(2024))
	for i := 0; i < rounds; i++ {
		p := NewPositionPool(types.Grid{Width: 2, Height: 2}, rng)
		c, _ := p.Draw()
		counts[c]++
	}
	for c, n := range counts {
		if n < rounds/4-300 || n > rounds/4+300 {
			t.Errorf("cell %v drawn %d times out of %d", c, n, rounds)
		}
	}
	if len(counts) != 4 {
		t.Errorf("only %d distinct cells drawn", len(counts))
	}
}
