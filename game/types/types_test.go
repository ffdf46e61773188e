package types

import "testing"

func TestPointCoarse(t *testing.T) {
	tests := []struct {
		name  string
		p     Point
		scale int
		want  Cell
	}{
		{"origin", Point{0, 0}, 2, Cell{0, 0}},
		{"inside block", Point{3, 5}, 2, Cell{1, 2}},
		{"block edge", Point{4, 4}, 2, Cell{2, 2}},
		{"negative floors", Point{-1, -3}, 2, Cell{-1, -2}},
		{"scale one", Point{7, 9}, 1, Cell{7, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Coarse(tt.scale); got != tt.want {
				t.Errorf("Coarse(%d) of %v = %v, want %v", tt.scale, tt.p, got, tt.want)
			}
		})
	}
}

func TestGridContains(t *testing.T) {
	g := Grid{Width: 3, Height: 2}
	if !g.Contains(Cell{2, 1}) {
		t.Error("expected (2,1) inside 3x2 grid")
	}
	for _, c := range []Cell{{3, 0}, {0, 2}, {-1, 0}} {
		if g.Contains(c) {
			t.Errorf("expected %v outside 3x2 grid", c)
		}
	}
	if g.Size() != 6 {
		t.Errorf("Size() = %d, want 6", g.Size())
	}
}

func TestDirectionTurns(t *testing.T) {
	for _, d := range []Direction{Up, Right, Down, Left} {
		if d.TurnLeft().TurnRight() != d {
			t.Errorf("%v: left then right should be identity", d)
		}
		opp := d.Opposite().ToPoint()
		step := d.ToPoint()
		if opp.X != -step.X || opp.Y != -step.Y {
			t.Errorf("%v: opposite step %v is not the negation of %v", d, opp, step)
		}
		if DirectionOf(step) != d {
			t.Errorf("DirectionOf(%v) = %v, want %v", step, DirectionOf(step), d)
		}
	}
	if DirectionOf(Point{1, 1}) != None {
		t.Error("diagonal vector should map to None")
	}
	if !None.ToPoint().IsZero() {
		t.Error("None should be the zero step")
	}
}
