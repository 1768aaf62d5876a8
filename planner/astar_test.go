package planner_test

import (
	"math/rand"
	"testing"

	"github.com/kuredoro/snake_arena/core"
	"github.com/kuredoro/snake_arena/planner"
	"github.com/kuredoro/snake_arena/sim"
)

// parseBoard builds a board from rows of runes: '#' is a snake cell,
// 'o' the origin, 'x' the target (placed as food), '.' free space.
func parseBoard(t *testing.T, rows []string) (*sim.Board, core.Coord, core.Coord) {
	t.Helper()

	var blocked []core.Coord
	var origin, target core.Coord
	var food *core.Coord
	for y, row := range rows {
		for x, r := range []rune(row) {
			c := core.Coord{X: x, Y: y}
			switch r {
			case '#':
				blocked = append(blocked, c)
			case 'o':
				origin = c
			case 'x':
				target = c
				food = &core.Coord{X: x, Y: y}
			case '.':
			default:
				t.Fatalf("unknown board rune %q", r)
			}
		}
	}

	var agents []*sim.Agent
	if len(blocked) > 0 {
		agents = append(agents, &sim.Agent{Kind: core.Player2, Body: blocked, Alive: true})
	}
	w := len([]rune(rows[0]))
	return sim.BuildBoard(w, len(rows), agents, food), origin, target
}

// bfsDistance is the reference shortest-path oracle: plain
// breadth-first search over the same passability rule the planner
// uses. Returns -1 when the target is unreachable.
func bfsDistance(b *sim.Board, origin, target core.Coord) int {
	if core.EqualCoord(origin, target) {
		return 0
	}
	dist := map[core.Coord]int{origin: 0}
	queue := []core.Coord{origin}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range []core.Direction{core.Up, core.Down, core.Left, core.Right} {
			s := d.Shift()
			next := core.Coord{X: cur.X + s.X, Y: cur.Y + s.Y}
			if _, seen := dist[next]; seen {
				continue
			}
			if !b.InBounds(next) {
				continue
			}
			if !b.Passable(next) && !core.EqualCoord(next, target) {
				continue
			}
			dist[next] = dist[cur] + 1
			if core.EqualCoord(next, target) {
				return dist[next]
			}
			queue = append(queue, next)
		}
	}
	return -1
}

func step(c core.Coord, d core.Direction) core.Coord {
	s := d.Shift()
	return core.Coord{X: c.X + s.X, Y: c.Y + s.Y}
}

// walk follows the planner from origin until the target, counting
// steps. The cap guards against cycles.
func walk(t *testing.T, b *sim.Board, origin, target core.Coord) int {
	t.Helper()

	cur := origin
	steps := 0
	for !core.EqualCoord(cur, target) {
		d, ok := planner.Next(b, cur, target)
		if !ok {
			t.Fatalf("planner gave up at (%d, %d) on a reachable target", cur.X, cur.Y)
		}
		next := step(cur, d)
		if !b.Passable(next) && !core.EqualCoord(next, target) {
			t.Fatalf("planner stepped into a blocked cell (%d, %d)", next.X, next.Y)
		}
		cur = next
		steps++
		if steps > b.W*b.H {
			t.Fatalf("planner is cycling after %d steps", steps)
		}
	}
	return steps
}

func TestNext(t *testing.T) {
	t.Run("open row heads straight for the food", func(t *testing.T) {
		b, origin, target := parseBoard(t, []string{
			".....",
			".....",
			"..o.x",
			".....",
			".....",
		})

		d, ok := planner.Next(b, origin, target)
		if !ok {
			t.Fatal("no direction on an open board")
		}
		if d != core.Right {
			t.Errorf("got direction %v, want right", d)
		}
	})

	t.Run("already at the target", func(t *testing.T) {
		b, origin, _ := parseBoard(t, []string{
			".....",
			"..o..",
			".....",
		})

		if d, ok := planner.Next(b, origin, origin); ok {
			t.Errorf("got direction %v for origin == target, want none", d)
		}
	})

	t.Run("routes around a wall at shortest length", func(t *testing.T) {
		b, origin, target := parseBoard(t, []string{
			"...#...",
			"o..#..x",
			"...#...",
			".......",
		})

		got := walk(t, b, origin, target)
		want := bfsDistance(b, origin, target)
		if got != want {
			t.Errorf("planner path is %d steps, BFS says %d", got, want)
		}
	})

	t.Run("boxed-in origin has no path", func(t *testing.T) {
		b, origin, target := parseBoard(t, []string{
			".#...",
			"#o#.x",
			".#...",
		})

		if d, ok := planner.Next(b, origin, target); ok {
			t.Errorf("got direction %v out of a sealed box, want none", d)
		}
	})

	t.Run("walled-off target has no path", func(t *testing.T) {
		b, origin, target := parseBoard(t, []string{
			"o..#.",
			"...#x",
			"...#.",
		})

		if d, ok := planner.Next(b, origin, target); ok {
			t.Errorf("got direction %v through a full wall, want none", d)
		}
	})

	t.Run("own body blocks the direct route", func(t *testing.T) {
		// The searcher's body is on the board like any other snake.
		b, origin, target := parseBoard(t, []string{
			".....",
			".###.",
			".#o#.",
			".#.#.",
			"..x..",
		})

		got := walk(t, b, origin, target)
		want := bfsDistance(b, origin, target)
		if got != want {
			t.Errorf("planner path is %d steps, BFS says %d", got, want)
		}
	})

	t.Run("repeated queries agree", func(t *testing.T) {
		b, origin, target := parseBoard(t, []string{
			"o......",
			".##.##.",
			".......",
			".##.##.",
			"......x",
		})

		first, ok := planner.Next(b, origin, target)
		if !ok {
			t.Fatal("no direction on a reachable board")
		}
		for i := 0; i < 10; i++ {
			d, ok := planner.Next(b, origin, target)
			if !ok || d != first {
				t.Fatalf("query #%d gave (%v, %v), first gave (%v, true)", i, d, ok, first)
			}
		}
	})

	t.Run("first step always lies on a shortest path", func(t *testing.T) {
		r := rand.New(rand.NewSource(13))

		for i := 0; i < 200; i++ {
			const w, h = 10, 10
			var blocked []core.Coord
			occupied := make(map[core.Coord]bool)
			for n := 0; n < 25; n++ {
				c := core.Coord{X: r.Intn(w), Y: r.Intn(h)}
				if !occupied[c] {
					occupied[c] = true
					blocked = append(blocked, c)
				}
			}

			free := func() core.Coord {
				for {
					c := core.Coord{X: r.Intn(w), Y: r.Intn(h)}
					if !occupied[c] {
						return c
					}
				}
			}
			origin := free()
			target := free()
			if core.EqualCoord(origin, target) {
				continue
			}

			obstacles := &sim.Agent{Kind: core.Player2, Body: blocked, Alive: true}
			b := sim.BuildBoard(w, h, []*sim.Agent{obstacles}, &target)

			want := bfsDistance(b, origin, target)
			d, ok := planner.Next(b, origin, target)

			if want == -1 {
				if ok {
					t.Fatalf("config #%d: got direction %v for an unreachable target", i, d)
				}
				continue
			}
			if !ok {
				t.Fatalf("config #%d: planner found no path, BFS found one of length %d", i, want)
			}
			next := step(origin, d)
			if got := bfsDistance(b, next, target); got != want-1 {
				t.Fatalf("config #%d: step to (%d, %d) leaves BFS distance %d, want %d",
					i, next.X, next.Y, got, want-1)
			}
		}
	})
}
