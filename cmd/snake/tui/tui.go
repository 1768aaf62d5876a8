// Package tui hosts the variant-select menu shown when the binary is
// started without a -variant flag.
package tui

import (
	"fmt"

	"code.rocketnine.space/tslocum/cview"
	"github.com/gdamore/tcell/v2"

	"github.com/kuredoro/snake_arena/engine/console"
)

const (
	welcome    = `Welcome to the snake arena.`
	navigation = `Pick a game mode (Esc quits)`
)

var descriptions = map[string]string{
	"solo":   "one snake, arrow keys, death ends the game",
	"duel":   "two snakes, arrows vs WASD, respawn on death",
	"bot":    "watch a pathfinding snake chase food",
	"hybrid": "race the pathfinding snake, arrows",
}

// SelectVariant runs a full-screen menu and returns the chosen
// variant. The second return is false when the user backed out.
func SelectVariant() (console.Variant, bool, error) {
	app := cview.NewApplication()

	var (
		chosen console.Variant
		picked bool
	)

	list := cview.NewList()
	list.SetHighlightFullLine(true)
	for i, v := range console.Variants() {
		v := v
		item := cview.NewListItem(v.Name)
		item.SetSecondaryText(descriptions[v.Name])
		item.SetShortcut(rune('1' + i))
		item.SetSelectedFunc(func() {
			chosen = v
			picked = true
			app.Stop()
		})
		list.AddItem(item)
	}
	list.SetDoneFunc(func() {
		app.Stop()
	})

	frame := cview.NewFrame(list)
	frame.SetBorders(1, 1, 1, 1, 2, 2)
	frame.AddText(welcome, true, cview.AlignCenter, tcell.ColorGreen)
	frame.AddText(navigation, true, cview.AlignCenter, tcell.ColorDarkMagenta)

	app.SetRoot(frame, true)
	if err := app.Run(); err != nil {
		return console.Variant{}, false, fmt.Errorf("run variant menu: %v", err)
	}

	return chosen, picked, nil
}
