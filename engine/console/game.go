// Package console drives the simulation from a terminal: it owns the
// game state, schedules ticks, translates key events into headings,
// asks the planner to steer autonomous snakes, and renders the board
// with tcell. All rules live in sim; all search lives in planner.
package console

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kuredoro/snake_arena/core"
	"github.com/kuredoro/snake_arena/planner"
	"github.com/kuredoro/snake_arena/sim"
)

// Game is one running session. It exclusively owns its state: nothing
// here is shared between instances, so several games can run in one
// process without touching each other.
type Game struct {
	ID      uuid.UUID
	Variant Variant
	Agents  []*sim.Agent
	Food    *core.Coord
	Over    bool
	Message string

	moveNum int
	pending map[core.AgentKind]core.Direction
	r       *rand.Rand
	log     zerolog.Logger
}

// NewGame validates the variant, spawns its agents, and places the
// first food. The seed fixes every random choice the session will
// ever make.
func NewGame(v Variant, seed int64) (*Game, error) {
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("validate variant %q: %w", v.Name, err)
	}

	g := &Game{
		ID:      uuid.New(),
		Variant: v,
		pending: make(map[core.AgentKind]core.Direction),
		r:       rand.New(rand.NewSource(seed)),
	}
	g.log = log.With().Str("game", g.ID.String()).Str("variant", v.Name).Logger()

	for _, ac := range v.Agents {
		g.Agents = append(g.Agents, sim.ResetAgent(ac.Kind, ac.Spawn, ac.Heading))
	}
	g.replaceFood()

	g.log.Info().Int("width", v.Width).Int("height", v.Height).Msg("Game created")
	return g, nil
}

// Board rebuilds the derived projection of the current state.
func (g *Game) Board() *sim.Board {
	return sim.BuildBoard(g.Variant.Width, g.Variant.Height, g.Agents, g.Food)
}

func (g *Game) agent(kind core.AgentKind) *sim.Agent {
	for _, a := range g.Agents {
		if a.Kind == kind {
			return a
		}
	}
	return nil
}

func (g *Game) config(kind core.AgentKind) AgentConfig {
	for _, ac := range g.Variant.Agents {
		if ac.Kind == kind {
			return ac
		}
	}
	panic(fmt.Sprintf("console: agent %v not configured in variant %q", kind, g.Variant.Name))
}

// Steer queues a heading for the next tick. Reversing into the neck
// is ignored for snakes longer than one cell.
func (g *Game) Steer(kind core.AgentKind, dir core.Direction) {
	a := g.agent(kind)
	if a == nil || !a.Alive {
		return
	}
	if len(a.Body) > 1 && dir.Opposite(a.Heading) {
		return
	}
	g.pending[kind] = dir
}

// Tick advances the game by one step: plan, move, resolve deaths,
// replace food. It does not render.
func (g *Game) Tick() {
	if g.Over {
		return
	}

	headings := make(map[core.AgentKind]core.Direction, len(g.Agents))
	board := g.Board()
	for _, a := range g.Agents {
		if !a.Alive {
			continue
		}
		if !g.config(a.Kind).Autonomous {
			if d, ok := g.pending[a.Kind]; ok {
				headings[a.Kind] = d
			}
			continue
		}
		if g.Food == nil {
			continue // no target; keep the last heading
		}
		if d, ok := planner.Next(board, a.Head(), *g.Food); ok {
			headings[a.Kind] = d
		}
		// No path: fall through with the last heading rather than stall.
	}

	res := sim.Step(g.Variant.Width, g.Variant.Height, g.Agents, g.Food, headings)
	g.Food = res.Food
	g.moveNum++
	g.pending = make(map[core.AgentKind]core.Direction)

	for kind, o := range res.Outcomes {
		switch o.Kind {
		case core.Grew:
			g.log.Info().Str("agent", kind.String()).Int("move", g.moveNum).
				Int("length", len(g.agent(kind).Body)).Msg("Food eaten")
		case core.Died:
			g.log.Info().Str("agent", kind.String()).Int("move", g.moveNum).
				Str("cause", o.Cause.String()).Msg("Agent died")
			g.handleDeath(kind, o)
		}
	}

	if !g.Over && g.Food == nil {
		g.replaceFood()
	}
}

func (g *Game) handleDeath(kind core.AgentKind, o core.Outcome) {
	ac := g.config(kind)
	if !ac.Respawn {
		g.Over = true
		g.Message = fmt.Sprintf("%v %v", kind, o)
		g.log.Info().Str("agent", kind.String()).Msg("Game over")
		return
	}
	for i, a := range g.Agents {
		if a.Kind == kind {
			g.Agents[i] = sim.ResetAgent(ac.Kind, ac.Spawn, ac.Heading)
		}
	}
	g.log.Info().Str("agent", kind.String()).Msg("Agent respawned")
}

func (g *Game) replaceFood() {
	if f, ok := sim.PlaceFood(g.Variant.Width, g.Variant.Height, g.Agents, g.r); ok {
		g.Food = &f
		g.log.Info().Int("x", f.X).Int("y", f.Y).Msg("New food placed")
		return
	}
	g.Food = nil
	g.log.Warn().Msg("Board full, running without food")
}

// draw paints the whole frame. The board projection is the only
// render source for the playing field.
func (g *Game) draw(s tcell.Screen) {
	bound := fieldBoundary(g.Variant.Width, g.Variant.Height)
	drawBox(s, bound, tcell.RuneBullet, borderStyle)

	heads := make(map[core.Coord]core.AgentKind, len(g.Agents))
	for _, a := range g.Agents {
		if a.Alive {
			heads[a.Head()] = a.Kind
		}
	}
	drawBoard(s, bound, g.Board(), heads)

	if g.Over {
		drawGameOver(s, bound, g.Message)
	}
	s.Show()
}

var key2Dir = map[tcell.Key]core.Direction{
	tcell.KeyUp:    core.Up,
	tcell.KeyRight: core.Right,
	tcell.KeyDown:  core.Down,
	tcell.KeyLeft:  core.Left,
}

var rune2Dir = map[rune]core.Direction{
	'w': core.Up,
	'd': core.Right,
	's': core.Down,
	'a': core.Left,
}

// keyboardAgents maps input devices to agent slots: arrows steer the
// first keyboard agent, WASD the second.
func (g *Game) keyboardAgents() (arrows, wasd core.AgentKind, hasArrows, hasWASD bool) {
	for _, ac := range g.Variant.Agents {
		if ac.Autonomous {
			continue
		}
		if !hasArrows {
			arrows, hasArrows = ac.Kind, true
			continue
		}
		if !hasWASD {
			wasd, hasWASD = ac.Kind, true
		}
	}
	return
}

// Run loops until the player quits with Esc or Ctrl-C. The caller
// owns the screen: initialization and Fini stay outside so tests can
// pass a simulation screen.
func (g *Game) Run(s tcell.Screen) {
	s.SetStyle(defStyle)
	s.Clear()

	eventCh := make(chan tcell.Event)
	go func() {
		for {
			e := s.PollEvent()
			if e == nil {
				return
			}
			eventCh <- e
		}
	}()

	arrows, wasd, hasArrows, hasWASD := g.keyboardAgents()

	ticker := time.NewTicker(g.Variant.Tick)
	defer ticker.Stop()

	g.log.Info().Msg("Game loop started")
	for {
		g.draw(s)

		select {
		case <-ticker.C:
			g.Tick()
		case ev := <-eventCh:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				s.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					g.log.Info().Msg("Game loop stopped")
					return
				}
				if g.Over && ev.Key() == tcell.KeyEnter {
					g.log.Info().Msg("Game loop stopped")
					return
				}
				if d, ok := key2Dir[ev.Key()]; ok && hasArrows {
					g.Steer(arrows, d)
				}
				if ev.Key() == tcell.KeyRune && hasWASD {
					if d, ok := rune2Dir[ev.Rune()]; ok {
						g.Steer(wasd, d)
					}
				}
			}
		}
	}
}
