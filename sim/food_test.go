package sim_test

import (
	"math/rand"
	"testing"

	"github.com/kuredoro/snake_arena/core"
	"github.com/kuredoro/snake_arena/sim"
)

func TestPlaceFood(t *testing.T) {
	t.Run("never lands on a live body", func(t *testing.T) {
		a := newAgent(core.Player1, core.Right,
			core.Coord{X: 1, Y: 1}, core.Coord{X: 0, Y: 1}, core.Coord{X: 0, Y: 0})
		r := rand.New(rand.NewSource(42))

		for i := 0; i < 100; i++ {
			f, ok := sim.PlaceFood(3, 3, []*sim.Agent{a}, r)
			if !ok {
				t.Fatal("placement failed on a board with free cells")
			}
			if a.Occupies(f) {
				t.Fatalf("food placed on the agent at (%d, %d)", f.X, f.Y)
			}
			if f.X < 0 || f.X >= 3 || f.Y < 0 || f.Y >= 3 {
				t.Fatalf("food placed out of bounds at (%d, %d)", f.X, f.Y)
			}
		}
	})

	t.Run("dead bodies do not block placement", func(t *testing.T) {
		dead := newAgent(core.Player1, core.Right, core.Coord{X: 0, Y: 0})
		dead.Alive = false
		r := rand.New(rand.NewSource(1))

		f, ok := sim.PlaceFood(1, 1, []*sim.Agent{dead}, r)
		if !ok {
			t.Fatal("the only cell is blocked by a dead body")
		}
		if !core.EqualCoord(f, core.Coord{X: 0, Y: 0}) {
			t.Errorf("food placed at (%d, %d), want (0, 0)", f.X, f.Y)
		}
	})

	t.Run("full board returns no placement", func(t *testing.T) {
		a := newAgent(core.Player1, core.Right,
			core.Coord{X: 0, Y: 0}, core.Coord{X: 1, Y: 0})
		r := rand.New(rand.NewSource(1))

		if f, ok := sim.PlaceFood(2, 1, []*sim.Agent{a}, r); ok {
			t.Errorf("food placed at (%d, %d) on a full board", f.X, f.Y)
		}
	})

	t.Run("same seed gives the same sequence", func(t *testing.T) {
		a := newAgent(core.Player1, core.Right, core.Coord{X: 2, Y: 2})

		run := func() []core.Coord {
			r := rand.New(rand.NewSource(7))
			var seq []core.Coord
			for i := 0; i < 20; i++ {
				f, ok := sim.PlaceFood(5, 5, []*sim.Agent{a}, r)
				if !ok {
					t.Fatal("placement failed on a board with free cells")
				}
				seq = append(seq, f)
			}
			return seq
		}

		first, second := run(), run()
		for i := range first {
			if !core.EqualCoord(first[i], second[i]) {
				t.Fatalf("placement #%d differs between identical seeds: %v vs %v",
					i, first[i], second[i])
			}
		}
	})
}
