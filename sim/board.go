package sim

import "github.com/kuredoro/snake_arena/core"

type CellKind int

const (
	CellEmpty CellKind = iota
	CellFood
	CellSnake
)

// Cell is one board position. Agent is meaningful only when Kind is
// CellSnake.
type Cell struct {
	Kind  CellKind
	Agent core.AgentKind
}

// Board is a row-major projection of the authoritative agent and food
// state. It is a render and query cache: rebuild it after every step
// instead of mutating it, so it can never drift from the agents.
type Board struct {
	W, H  int
	cells []Cell
}

// BuildBoard paints an empty board, then every live agent's body, then
// the food cell. Food is painted last.
func BuildBoard(w, h int, agents []*Agent, food *core.Coord) *Board {
	if w < 1 || h < 1 {
		panic("sim: board dimensions must be at least 1x1")
	}
	b := &Board{W: w, H: h, cells: make([]Cell, w*h)}
	for _, a := range agents {
		if !a.Alive {
			continue
		}
		for _, c := range a.Body {
			b.cells[c.Y*w+c.X] = Cell{Kind: CellSnake, Agent: a.Kind}
		}
	}
	if food != nil {
		b.cells[food.Y*w+food.X] = Cell{Kind: CellFood}
	}
	return b
}

func (b *Board) InBounds(c core.Coord) bool {
	return c.X >= 0 && c.X < b.W && c.Y >= 0 && c.Y < b.H
}

func (b *Board) At(c core.Coord) Cell {
	if !b.InBounds(c) {
		panic("sim: board access out of bounds")
	}
	return b.cells[c.Y*b.W+c.X]
}

// Passable reports whether an agent head may enter c: the cell exists
// and no snake occupies it.
func (b *Board) Passable(c core.Coord) bool {
	return b.InBounds(c) && b.At(c).Kind != CellSnake
}
