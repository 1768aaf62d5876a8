package sim

import (
	"math/rand"

	"github.com/kuredoro/snake_arena/core"
)

// PlaceFood picks a cell uniformly at random among all cells not
// occupied by a live agent. It returns false when the board is full;
// the driver should simply run without food until cells free up.
//
// Randomness comes only from r, so a fixed seed gives a fixed
// placement sequence.
func PlaceFood(w, h int, agents []*Agent, r *rand.Rand) (core.Coord, bool) {
	if w < 1 || h < 1 {
		panic("sim: board dimensions must be at least 1x1")
	}

	free := make([]core.Coord, 0, w*h)
	for y := 0; y < h; y++ {
	cells:
		for x := 0; x < w; x++ {
			c := core.Coord{X: x, Y: y}
			for _, a := range agents {
				if a.Alive && a.Occupies(c) {
					continue cells
				}
			}
			free = append(free, c)
		}
	}

	if len(free) == 0 {
		return core.Coord{}, false
	}
	return free[r.Intn(len(free))], true
}
