package core

// DeathCause says what killed an agent on the tick it died.
type DeathCause int

const (
	WallCollision DeathCause = iota
	SelfCollision
	AgentCollision
)

func (c DeathCause) String() string {
	switch c {
	case WallCollision:
		return "wall collision"
	case SelfCollision:
		return "self collision"
	case AgentCollision:
		return "agent collision"
	}
	return "unknown"
}

// OutcomeKind classifies what happened to one agent during a step.
type OutcomeKind int

const (
	Continued OutcomeKind = iota
	Grew
	Died
)

// Outcome is the per-agent result of a step. Collisions are ordinary
// data, not errors: the driver decides whether a death halts the game
// or triggers a respawn.
type Outcome struct {
	Kind  OutcomeKind
	Cause DeathCause // meaningful only when Kind == Died
}

func (o Outcome) String() string {
	switch o.Kind {
	case Continued:
		return "continued"
	case Grew:
		return "grew"
	case Died:
		return "died: " + o.Cause.String()
	}
	return "unknown"
}
