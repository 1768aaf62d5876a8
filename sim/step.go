package sim

import (
	"fmt"

	"github.com/kuredoro/snake_arena/core"
)

// StepResult reports what one tick did to every live agent, plus the
// food state after the tick. Food is nil when it was consumed (or was
// already absent); the driver is responsible for placing new food.
type StepResult struct {
	Outcomes map[core.AgentKind]core.Outcome
	Food     *core.Coord
}

// Step advances every live agent by one cell and resolves collisions.
//
// Moves are simultaneous: all proposed head positions are computed
// first, then each agent is checked against the walls, its own
// pre-move body, every other live agent's pre-move body, and the other
// proposed heads. Two agents proposing the same cell both die. Agents
// that survive grow by one cell when their new head lands on food and
// keep their length otherwise.
//
// Agents are updated in place. Given identical inputs the result is
// identical: the function draws on no randomness and no globals.
func Step(w, h int, agents []*Agent, food *core.Coord, headings map[core.AgentKind]core.Direction) StepResult {
	if w < 1 || h < 1 {
		panic("sim: board dimensions must be at least 1x1")
	}

	live := make([]*Agent, 0, len(agents))
	for _, a := range agents {
		if !a.Alive {
			continue
		}
		if len(a.Body) == 0 {
			panic(fmt.Sprintf("sim: step on agent %v with an empty body", a.Kind))
		}
		live = append(live, a)
	}

	// Phase 1: apply headings and propose new heads.
	proposed := make(map[core.AgentKind]core.Coord, len(live))
	for _, a := range live {
		if d, ok := headings[a.Kind]; ok {
			a.Heading = d
		}
		s := a.Heading.Shift()
		head := a.Head()
		proposed[a.Kind] = core.Coord{X: head.X + s.X, Y: head.Y + s.Y}
	}

	// Phase 2: resolve deaths against the pre-move world.
	outcomes := make(map[core.AgentKind]core.Outcome, len(live))
	for _, a := range live {
		next := proposed[a.Kind]

		if next.X < 0 || next.X >= w || next.Y < 0 || next.Y >= h {
			outcomes[a.Kind] = core.Outcome{Kind: core.Died, Cause: core.WallCollision}
			continue
		}
		if a.Occupies(next) {
			outcomes[a.Kind] = core.Outcome{Kind: core.Died, Cause: core.SelfCollision}
			continue
		}
		for _, other := range live {
			if other.Kind == a.Kind {
				continue
			}
			if other.Occupies(next) || core.EqualCoord(proposed[other.Kind], next) {
				outcomes[a.Kind] = core.Outcome{Kind: core.Died, Cause: core.AgentCollision}
				break
			}
		}
	}

	// Phase 3: move the survivors.
	for _, a := range live {
		if o, dead := outcomes[a.Kind]; dead && o.Kind == core.Died {
			a.Alive = false
			continue
		}
		next := proposed[a.Kind]
		if food != nil && core.EqualCoord(next, *food) {
			a.Body = append([]core.Coord{next}, a.Body...)
			food = nil
			outcomes[a.Kind] = core.Outcome{Kind: core.Grew}
			continue
		}
		copy(a.Body[1:], a.Body[:len(a.Body)-1])
		a.Body[0] = next
		outcomes[a.Kind] = core.Outcome{Kind: core.Continued}
	}

	return StepResult{Outcomes: outcomes, Food: food}
}
