package core_test

import (
	"testing"

	"github.com/kuredoro/snake_arena/core"
)

func TestDirection(t *testing.T) {
	t.Run("shifts are unit vectors", func(t *testing.T) {
		for _, d := range []core.Direction{core.Up, core.Right, core.Down, core.Left} {
			s := d.Shift()
			if core.Manhattan(core.Coord{}, s) != 1 {
				t.Errorf("%v shifts by (%d, %d), want a unit vector", d, s.X, s.Y)
			}
		}
	})

	t.Run("opposites", func(t *testing.T) {
		cases := []struct {
			a, b core.Direction
			want bool
		}{
			{core.Up, core.Down, true},
			{core.Down, core.Up, true},
			{core.Left, core.Right, true},
			{core.Up, core.Left, false},
			{core.Right, core.Right, false},
		}
		for _, tc := range cases {
			if got := tc.a.Opposite(tc.b); got != tc.want {
				t.Errorf("%v.Opposite(%v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		}
	})

	t.Run("unknown direction panics on shift", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Shift on an invalid direction did not panic")
			}
		}()
		core.Direction(42).Shift()
	})
}

func TestManhattan(t *testing.T) {
	cases := []struct {
		a, b core.Coord
		want int
	}{
		{core.Coord{X: 0, Y: 0}, core.Coord{X: 0, Y: 0}, 0},
		{core.Coord{X: 1, Y: 2}, core.Coord{X: 4, Y: 0}, 5},
		{core.Coord{X: -2, Y: 3}, core.Coord{X: 2, Y: 3}, 4},
	}
	for _, tc := range cases {
		if got := core.Manhattan(tc.a, tc.b); got != tc.want {
			t.Errorf("Manhattan(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
		if got := core.Manhattan(tc.b, tc.a); got != tc.want {
			t.Errorf("Manhattan(%v, %v) = %d, want %d", tc.b, tc.a, got, tc.want)
		}
	}
}
