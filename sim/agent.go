// Package sim implements the deterministic grid simulation: snakes on
// a bounded board, one cell of movement per tick, growth on food. The
// package has no scheduler and no I/O; an external driver ticks it.
package sim

import (
	"fmt"

	"github.com/kuredoro/snake_arena/core"
)

// Agent is one snake. Body is head first, and consecutive cells are
// always 4-adjacent. A live agent has at least one cell.
type Agent struct {
	Kind    core.AgentKind
	Body    []core.Coord
	Heading core.Direction
	Alive   bool
}

func (a *Agent) Head() core.Coord {
	if len(a.Body) == 0 {
		panic(fmt.Sprintf("sim: agent %v has an empty body", a.Kind))
	}
	return a.Body[0]
}

// Occupies reports whether c is one of the agent's body cells.
func (a *Agent) Occupies(c core.Coord) bool {
	for _, b := range a.Body {
		if core.EqualCoord(b, c) {
			return true
		}
	}
	return false
}

// ResetAgent spawns a fresh length-1 agent. Drivers call it at game
// start and, in variants that respawn, after a death.
func ResetAgent(kind core.AgentKind, spawn core.Coord, heading core.Direction) *Agent {
	return &Agent{
		Kind:    kind,
		Body:    []core.Coord{spawn},
		Heading: heading,
		Alive:   true,
	}
}
