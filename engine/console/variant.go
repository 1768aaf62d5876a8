package console

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/kuredoro/snake_arena/core"
)

// AgentConfig describes one snake slot in a variant.
type AgentConfig struct {
	Kind    core.AgentKind
	Spawn   core.Coord
	Heading core.Direction

	// Autonomous agents are steered by the planner instead of the
	// keyboard.
	Autonomous bool

	// Respawn controls the death policy: respawn at the fixed spawn
	// point with length 1, or end the game.
	Respawn bool
}

// Variant is a fully described game mode. The simulation itself is
// variant-agnostic; everything mode-specific lives here.
type Variant struct {
	Name   string
	Width  int
	Height int
	Tick   time.Duration
	Agents []AgentConfig
}

// Validate aggregates every problem with the variant instead of
// stopping at the first one.
func (v Variant) Validate() error {
	var merr *multierror.Error

	if v.Width < 1 || v.Height < 1 {
		merr = multierror.Append(merr, fmt.Errorf("grid size %dx%d: both dimensions must be at least 1", v.Width, v.Height))
	}
	if v.Tick <= 0 {
		merr = multierror.Append(merr, fmt.Errorf("tick interval %v: must be positive", v.Tick))
	}
	if len(v.Agents) == 0 {
		merr = multierror.Append(merr, fmt.Errorf("variant %q has no agents", v.Name))
	}

	seen := make(map[core.AgentKind]bool)
	spawns := make(map[core.Coord]core.AgentKind)
	for _, a := range v.Agents {
		if seen[a.Kind] {
			merr = multierror.Append(merr, fmt.Errorf("agent kind %v configured twice", a.Kind))
		}
		seen[a.Kind] = true

		if a.Spawn.X < 0 || a.Spawn.X >= v.Width || a.Spawn.Y < 0 || a.Spawn.Y >= v.Height {
			merr = multierror.Append(merr, fmt.Errorf("agent %v spawns at (%d, %d), outside the %dx%d grid",
				a.Kind, a.Spawn.X, a.Spawn.Y, v.Width, v.Height))
		}
		if other, taken := spawns[a.Spawn]; taken {
			merr = multierror.Append(merr, fmt.Errorf("agents %v and %v share spawn (%d, %d)",
				other, a.Kind, a.Spawn.X, a.Spawn.Y))
		}
		spawns[a.Spawn] = a.Kind
	}

	return merr.ErrorOrNil()
}

const (
	defaultSize = 20
	soloTick    = 150 * time.Millisecond
	duelTick    = 200 * time.Millisecond
	botTick     = 100 * time.Millisecond
)

// Solo is a single keyboard snake; death ends the game.
func Solo() Variant {
	return Variant{
		Name:   "solo",
		Width:  defaultSize,
		Height: defaultSize,
		Tick:   soloTick,
		Agents: []AgentConfig{
			{Kind: core.Player1, Spawn: core.Coord{X: 5, Y: 10}, Heading: core.Right},
		},
	}
}

// Duel is two keyboard snakes (arrows and WASD) that respawn on death.
func Duel() Variant {
	return Variant{
		Name:   "duel",
		Width:  defaultSize,
		Height: defaultSize,
		Tick:   duelTick,
		Agents: []AgentConfig{
			{Kind: core.Player1, Spawn: core.Coord{X: 5, Y: 10}, Heading: core.Right, Respawn: true},
			{Kind: core.Player2, Spawn: core.Coord{X: 14, Y: 10}, Heading: core.Left, Respawn: true},
		},
	}
}

// BotSolo is a single planner-driven snake chasing food on its own.
func BotSolo() Variant {
	return Variant{
		Name:   "bot",
		Width:  defaultSize,
		Height: defaultSize,
		Tick:   botTick,
		Agents: []AgentConfig{
			{Kind: core.Bot, Spawn: core.Coord{X: 10, Y: 10}, Heading: core.Right, Autonomous: true, Respawn: true},
		},
	}
}

// UserVsBot races a keyboard snake against a planner-driven one.
func UserVsBot() Variant {
	return Variant{
		Name:   "hybrid",
		Width:  defaultSize,
		Height: defaultSize,
		Tick:   duelTick,
		Agents: []AgentConfig{
			{Kind: core.Player1, Spawn: core.Coord{X: 5, Y: 10}, Heading: core.Right, Respawn: true},
			{Kind: core.Bot, Spawn: core.Coord{X: 14, Y: 10}, Heading: core.Left, Autonomous: true, Respawn: true},
		},
	}
}

// Variants lists every selectable game mode in menu order.
func Variants() []Variant {
	return []Variant{Solo(), Duel(), BotSolo(), UserVsBot()}
}

// VariantByName resolves a -variant flag value.
func VariantByName(name string) (Variant, error) {
	for _, v := range Variants() {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("unknown variant %q", name)
}
