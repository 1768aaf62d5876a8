package core

type Coord struct {
	X, Y int
}

func EqualCoord(a, b Coord) bool {
	return a.X == b.X && a.Y == b.Y
}

// Manhattan is the 4-connected grid distance between two cells.
func Manhattan(a, b Coord) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

var shiftMap = map[Direction]Coord{
	Up:    {X: 0, Y: -1},
	Right: {X: 1, Y: 0},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
}

// Shift returns the unit vector of the direction.
func (d Direction) Shift() Coord {
	s, ok := shiftMap[d]
	if !ok {
		panic("the value of direction is unknown")
	}
	return s
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return "unknown"
}

// Opposite reports whether o reverses d. A snake longer than one cell
// cannot turn into its own neck, so drivers use this to filter input.
func (d Direction) Opposite(o Direction) bool {
	s, t := d.Shift(), o.Shift()
	return s.X+t.X == 0 && s.Y+t.Y == 0
}

// AgentKind identifies a snake within a single game. Kinds are fixed
// per variant: a duel always has Player1 and Player2.
type AgentKind int

const (
	Player1 AgentKind = iota
	Player2
	Bot
)

func (k AgentKind) String() string {
	switch k {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	case Bot:
		return "bot"
	}
	return "unknown"
}
