// dungeonforge generates a dungeon topology, stocks and describes it, and
// either saves it as JSON, shows it in the terminal, or both.
//
//	dungeonforge [--width 21] [--height 21] [--theme "forgotten crypt"]
//	             [--min-path 10] [--seed N] [--workers 4]
//	             [--out dungeon.json] [--no-view]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"dungeonforge/assets"
	"dungeonforge/internal/content"
	"dungeonforge/internal/generate"
	"dungeonforge/internal/persist"
	"dungeonforge/internal/render"
)

func main() {
	width := flag.Int("width", 21, "dungeon width")
	height := flag.Int("height", 21, "dungeon height")
	theme := flag.String("theme", "forgotten crypt", "dungeon theme")
	minPath := flag.Int("min-path", 10, "minimum main path length")
	branches := flag.Int("branches", generate.DefaultBranchPasses, "branch creation passes")
	seed := flag.Int64("seed", 0, "generation seed (0 = time-based)")
	workers := flag.Int("workers", 4, "concurrent room population workers")
	out := flag.String("out", "", "write the dungeon JSON to this file")
	noView := flag.Bool("no-view", false, "skip the terminal viewer")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	d, pathLen, err := generate.Generate(&generate.Config{
		Width:         *width,
		Height:        *height,
		Theme:         *theme,
		MinPathLength: *minPath,
		BranchPasses:  *branches,
		Rand:          rng,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	def := assets.ThemeByID(*theme)
	if err := generate.PopulateConcurrent(d, def.Catalog, rng, *workers); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	describer := content.NewStockDescriber(def.Fragments)
	if err := describer.Describe(context.Background(), *theme, d.Rooms()); err != nil {
		log.Printf("describe: %v", err)
	}

	log.Printf("generated %q: %d rooms, main path %d, seed %d", *theme, d.RoomCount(), pathLen, *seed)

	if *out != "" {
		if err := persist.Save(*out, d); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		log.Printf("wrote %s", *out)
	}
	if *noView {
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "error: init screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	glyphs := render.Glyphs{
		Room:     def.RoomGlyph,
		Entrance: def.EntranceGlyph,
		Exit:     def.ExitGlyph,
		Chest:    def.ChestGlyph,
		Enemy:    def.EnemyGlyph,
	}
	render.NewViewer(screen, d, glyphs).Run()
}
