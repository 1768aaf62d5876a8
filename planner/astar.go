// Package planner computes moves for autonomous snakes. It searches a
// board snapshot with A* and hands the driver a single direction; it
// never mutates simulation state.
package planner

import (
	"container/heap"

	"github.com/kuredoro/snake_arena/core"
	"github.com/kuredoro/snake_arena/sim"
)

type node struct {
	pos    core.Coord
	g      int
	f      int
	seq    int
	parent *node
}

// openSet orders frontier nodes by f = g + h. Equal f falls back to
// push order, so expansion is deterministic.
type openSet []*node

func (s openSet) Len() int { return len(s) }

func (s openSet) Less(i, j int) bool {
	if s[i].f != s[j].f {
		return s[i].f < s[j].f
	}
	return s[i].seq < s[j].seq
}

func (s openSet) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s *openSet) Push(x interface{}) { *s = append(*s, x.(*node)) }

func (s *openSet) Pop() interface{} {
	old := *s
	n := old[len(old)-1]
	*s = old[:len(old)-1]
	return n
}

var expansionOrder = [...]core.Direction{core.Up, core.Down, core.Left, core.Right}

// Next returns the first step of a minimum-length 4-connected path
// from origin to target on b, avoiding every snake-occupied cell. The
// caller passes a pre-move board, so the searching snake's own body
// blocks it too. The second return is false when origin equals target
// or no path exists; the driver then falls back to the agent's last
// heading rather than stalling.
func Next(b *sim.Board, origin, target core.Coord) (core.Direction, bool) {
	if !b.InBounds(origin) || !b.InBounds(target) {
		return 0, false
	}
	if core.EqualCoord(origin, target) {
		return 0, false
	}

	seq := 0
	open := &openSet{{pos: origin, g: 0, f: core.Manhattan(origin, target)}}
	heap.Init(open)
	bestG := map[core.Coord]int{origin: 0}

	for open.Len() > 0 {
		cur := heap.Pop(open).(*node)
		if core.EqualCoord(cur.pos, target) {
			return firstStep(cur, origin), true
		}
		if cur.g > bestG[cur.pos] {
			continue // stale entry, a cheaper route was found after push
		}

		for _, d := range expansionOrder {
			s := d.Shift()
			next := core.Coord{X: cur.pos.X + s.X, Y: cur.pos.Y + s.Y}
			if !b.InBounds(next) {
				continue
			}
			if !b.Passable(next) && !core.EqualCoord(next, target) {
				continue
			}
			g := cur.g + 1
			if prev, seen := bestG[next]; seen && g >= prev {
				continue
			}
			bestG[next] = g
			seq++
			heap.Push(open, &node{
				pos:    next,
				g:      g,
				f:      g + core.Manhattan(next, target),
				seq:    seq,
				parent: cur,
			})
		}
	}

	return 0, false
}

// firstStep walks the parent links back from the target node and
// converts the step out of origin into a direction.
func firstStep(end *node, origin core.Coord) core.Direction {
	cur := end
	for cur.parent != nil && !core.EqualCoord(cur.parent.pos, origin) {
		cur = cur.parent
	}
	switch {
	case cur.pos.Y < origin.Y:
		return core.Up
	case cur.pos.Y > origin.Y:
		return core.Down
	case cur.pos.X < origin.X:
		return core.Left
	default:
		return core.Right
	}
}
