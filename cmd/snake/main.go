package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/i582/cfmt/cmd/cfmt"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sanity-io/litter"

	"github.com/kuredoro/snake_arena/cmd/snake/tui"
	"github.com/kuredoro/snake_arena/engine/console"
)

func fatal(header string, err error) {
	cfmt.Printf("{{error:}}::lightRed|bold %s %v\n", header, err)
	os.Exit(1)
}

func main() {
	variantFlag := flag.String("variant", "", "game mode: solo, duel, bot, or hybrid (empty shows a menu)")
	width := flag.Int("w", 0, "board width in cells (0 keeps the variant default)")
	height := flag.Int("h", 0, "board height in cells (0 keeps the variant default)")
	seed := flag.Int64("seed", 0, "random seed (0 derives one from the clock)")
	tick := flag.Duration("tick", 0, "tick interval (0 keeps the variant default)")
	logPath := flag.String("log", "", "append structured logs to this file")
	dump := flag.Bool("dump", false, "print the final game state after the game ends")
	flag.Parse()

	// The terminal belongs to tcell while the game runs, so logs go
	// to a file or nowhere.
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fatal("open log file:", err)
		}
		defer f.Close()
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(io.Discard)
	}

	var variant console.Variant
	if *variantFlag != "" {
		v, err := console.VariantByName(*variantFlag)
		if err != nil {
			fatal("resolve variant:", err)
		}
		variant = v
	} else {
		v, picked, err := tui.SelectVariant()
		if err != nil {
			fatal("variant menu:", err)
		}
		if !picked {
			return
		}
		variant = v
	}

	if *width > 0 {
		variant.Width = *width
	}
	if *height > 0 {
		variant.Height = *height
	}
	if *tick > 0 {
		variant.Tick = *tick
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	game, err := console.NewGame(variant, *seed)
	if err != nil {
		fatal("create game:", err)
	}

	s, err := tcell.NewScreen()
	if err != nil {
		fatal("create screen:", err)
	}
	if err := s.Init(); err != nil {
		fatal("init screen:", err)
	}
	s.DisableMouse()
	s.EnablePaste()

	game.Run(s)
	s.Fini()

	if *dump {
		fmt.Println(litter.Sdump(game))
	}
}
