// boardtool is a CLI utility for working with dungeon board documents.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zuzzo/Dungeon/internal/board"
	"github.com/zuzzo/Dungeon/internal/codec"
	"github.com/zuzzo/Dungeon/internal/store"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "new":
		cmdNew(args)
	case "info":
		cmdInfo(args)
	case "validate", "check":
		cmdValidate(args)
	case "watch":
		cmdWatch(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`boardtool - dungeon board document utility

Usage:
  boardtool <command> [options]

Commands:
  new <file.json>       Write an empty 4x4 board document
  info <file.json>      Summarize a board document
  validate <file.json>  Check a document and report salvage fallbacks
  watch <file.json>     Revalidate the document whenever it changes

Examples:
  boardtool new boards/crypt.json
  boardtool info boards/crypt.json
  boardtool watch boards/crypt.json`)
}

func cmdNew(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: boardtool new <file.json>")
		os.Exit(1)
	}

	data, err := codec.Encode(board.NewState(), nil)
	if err != nil {
		fatal(err)
	}
	if err := os.MkdirAll(filepath.Dir(args[0]), 0755); err != nil {
		fatal(err)
	}
	if err := os.WriteFile(args[0], data, 0644); err != nil {
		fatal(err)
	}
	fmt.Printf("Wrote empty board to %s\n", args[0])
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: boardtool info <file.json>")
		os.Exit(1)
	}

	st, assets := mustLoad(args[0])

	terrain := make(map[board.CellType]int)
	for _, c := range st.Cells {
		terrain[c]++
	}
	props := make(map[board.ObjectType]int)
	for _, o := range st.Objects {
		if o.Type != board.ObjectNone {
			props[o.Type]++
		}
	}
	walls, doors := 0, 0
	for _, e := range append(append([]board.EdgeType{}, st.HEdges...), st.VEdges...) {
		switch e {
		case board.EdgeWall:
			walls++
		case board.EdgeDoor:
			doors++
		}
	}

	fmt.Printf("Board:   %s\n", args[0])
	fmt.Printf("Terrain: %d floor, %d pit, %d water\n",
		terrain[board.CellFloor], terrain[board.CellPit], terrain[board.CellWater])
	fmt.Printf("Edges:   %d walls, %d doors\n", walls, doors)
	if len(props) > 0 {
		var parts []string
		for _, t := range []board.ObjectType{board.ObjectLever, board.ObjectTrapdoor, board.ObjectTorch, board.ObjectBridge, board.ObjectLight} {
			if n := props[t]; n > 0 {
				parts = append(parts, fmt.Sprintf("%d %s", n, t))
			}
		}
		fmt.Printf("Props:   %s\n", strings.Join(parts, ", "))
	}
	fmt.Printf("Assets:  %d\n", len(assets))
	for _, a := range assets {
		fmt.Printf("  #%d %-12s at (%g,%g) scale %g\n", a.ID, a.Name, a.X, a.Y, a.Scale)
	}
}

func cmdValidate(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: boardtool validate <file.json>")
		os.Exit(1)
	}
	if msg, ok := validate(args[0]); ok {
		fmt.Printf("%s: %s\n", args[0], msg)
	} else {
		fmt.Fprintf(os.Stderr, "%s: %s\n", args[0], msg)
		os.Exit(1)
	}
}

// validate loads a document and reports whether it is usable, noting how
// much of it survived salvage.
func validate(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return err.Error(), false
	}
	st, assets, _, err := codec.Decode(data)
	if err != nil {
		return fmt.Sprintf("rejected: %v", err), false
	}

	// A lossless document re-encodes to something that decodes equal.
	reencoded, err := codec.Encode(st, assets)
	if err != nil {
		return err.Error(), false
	}
	st2, _, _, err := codec.Decode(reencoded)
	if err != nil || !st2.Equal(st) {
		return "unstable round trip", false
	}
	return fmt.Sprintf("ok (%d assets)", len(assets)), true
}

func cmdWatch(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: boardtool watch <file.json>")
		os.Exit(1)
	}
	path := args[0]
	name := strings.TrimSuffix(filepath.Base(path), ".json")

	w, err := store.NewWatcher(filepath.Dir(path))
	if err != nil {
		fatal(err)
	}
	defer w.Close()

	fmt.Printf("Watching %s (ctrl-c to stop)\n", path)
	if msg, _ := validate(path); msg != "" {
		fmt.Printf("%s: %s\n", name, msg)
	}
	for {
		select {
		case changed, ok := <-w.Events:
			if !ok {
				return
			}
			if changed != name {
				continue
			}
			msg, _ := validate(path)
			fmt.Printf("%s: %s\n", name, msg)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		}
	}
}

func mustLoad(path string) (board.State, []board.AssetPlacement) {
	data, err := os.ReadFile(path)
	if err != nil {
		fatal(err)
	}
	st, assets, _, err := codec.Decode(data)
	if err != nil {
		fatal(err)
	}
	return st, assets
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
