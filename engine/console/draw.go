package console

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kuredoro/snake_arena/core"
	"github.com/kuredoro/snake_arena/sim"
)

var (
	defStyle     = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	borderStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorPurple)
	overlayStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	foodStyle    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorLightCyan)
	fieldStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorReset)
	unknownStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed)
	agentStyles  = map[core.AgentKind]tcell.Style{
		core.Player1: tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen),
		core.Player2: tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorLightCyan),
		core.Bot:     tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorOrange),
	}
)

func styleFor(kind core.AgentKind) tcell.Style {
	if s, ok := agentStyles[kind]; ok {
		return s
	}
	return unknownStyle
}

// Boundary is the screen-space rectangle around the playing field.
// Grid cell (0, 0) maps to screen (TopLeft.X+1, TopLeft.Y+1).
type Boundary struct {
	TopLeft     core.Coord
	BottomRight core.Coord
}

func fieldBoundary(w, h int) Boundary {
	return Boundary{
		TopLeft:     core.Coord{X: 0, Y: 0},
		BottomRight: core.Coord{X: w + 1, Y: h + 1},
	}
}

func toScreen(b Boundary, c core.Coord) (int, int) {
	return b.TopLeft.X + 1 + c.X, b.TopLeft.Y + 1 + c.Y
}

func drawText(s tcell.Screen, x1, y1, x2, y2 int, style tcell.Style, text string) {
	row := y1
	col := x1
	for _, r := range []rune(text) {
		s.SetContent(col, row, r, nil, style)
		col++
		if col >= x2 {
			row++
			col = x1
		}
		if row > y2 {
			break
		}
	}
}

func drawBox(s tcell.Screen, b Boundary, fill rune, style tcell.Style) {
	x1, y1 := b.TopLeft.X, b.TopLeft.Y
	x2, y2 := b.BottomRight.X, b.BottomRight.Y
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	if x2 < x1 {
		x1, x2 = x2, x1
	}

	for row := y1 + 1; row < y2; row++ {
		for col := x1 + 1; col < x2; col++ {
			s.SetContent(col, row, fill, nil, style)
		}
	}

	for col := x1; col <= x2; col++ {
		s.SetContent(col, y1, tcell.RuneHLine, nil, style)
		s.SetContent(col, y2, tcell.RuneHLine, nil, style)
	}
	for row := y1 + 1; row < y2; row++ {
		s.SetContent(x1, row, tcell.RuneVLine, nil, style)
		s.SetContent(x2, row, tcell.RuneVLine, nil, style)
	}

	if y1 != y2 && x1 != x2 {
		s.SetContent(x1, y1, tcell.RuneULCorner, nil, style)
		s.SetContent(x2, y1, tcell.RuneURCorner, nil, style)
		s.SetContent(x1, y2, tcell.RuneLLCorner, nil, style)
		s.SetContent(x2, y2, tcell.RuneLRCorner, nil, style)
	}
}

// drawBoard paints the derived board projection inside the border.
// The board, not the agents, is the render source, so the screen can
// never show a state the simulation does not have.
func drawBoard(s tcell.Screen, bound Boundary, b *sim.Board, heads map[core.Coord]core.AgentKind) {
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			c := core.Coord{X: x, Y: y}
			sx, sy := toScreen(bound, c)
			switch cell := b.At(c); cell.Kind {
			case sim.CellFood:
				s.SetContent(sx, sy, '#', nil, foodStyle)
			case sim.CellSnake:
				r := tcell.RuneBlock
				if _, isHead := heads[c]; isHead {
					r = tcell.RuneDiamond
				}
				s.SetContent(sx, sy, r, nil, styleFor(cell.Agent))
			default:
				s.SetContent(sx, sy, tcell.RuneBullet, nil, fieldStyle)
			}
		}
	}
}

func drawGameOver(s tcell.Screen, bound Boundary, message string) {
	width, height := len(message)+4, 4
	if w := len("Game over") + 4; w > width {
		width = w
	}
	x1 := (bound.BottomRight.X - bound.TopLeft.X - width) / 2
	y1 := (bound.BottomRight.Y - bound.TopLeft.Y - height) / 2
	drawBox(s, Boundary{
		TopLeft:     core.Coord{X: x1, Y: y1},
		BottomRight: core.Coord{X: x1 + width, Y: y1 + height},
	}, ' ', overlayStyle)
	drawText(s, x1+2, y1+1, x1+width-1, y1+height-1, overlayStyle, "Game over")
	if message != "" {
		drawText(s, x1+2, y1+2, x1+width-1, y1+height-1, overlayStyle, message)
	}
}
