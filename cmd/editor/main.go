// editor runs a headless host session over a board document. A graphical
// frontend drives the same session API; this binary exposes it as a
// line-oriented console for scripting and debugging.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/zuzzo/Dungeon/internal/board"
	"github.com/zuzzo/Dungeon/internal/config"
	"github.com/zuzzo/Dungeon/internal/editor"
	"github.com/zuzzo/Dungeon/internal/logger"
	"github.com/zuzzo/Dungeon/internal/session"
	"github.com/zuzzo/Dungeon/internal/store"
)

func main() {
	config.ParseFlags()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.LogFile)
	defer log.Sync()

	boards, err := store.NewFileStore(cfg.Editor.BoardsDir)
	if err != nil {
		log.Fatal("opening board store", zap.Error(err))
	}
	defer boards.Close()

	sess := session.New(log)
	tools := sess.Tools()
	tools.Light = cfg.Light.LightProperties()
	sess.SetTools(tools)

	name := cfg.Editor.DefaultBoard
	if data, err := boards.Load(name); err == nil {
		if err := sess.Load(data); err != nil {
			log.Warn("stored board rejected, starting empty", zap.String("board", name))
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Warn("reading stored board", zap.Error(err))
	}

	if cfg.Editor.Autosave {
		interval := time.Duration(cfg.Editor.AutosaveSeconds) * time.Second
		go autosave(sess, boards, name, interval, log)
	}

	repl(sess, boards, name, log)
}

// autosave flushes the session whenever the board changes, at most once
// per interval.
func autosave(sess *session.Session, boards store.Store, name string, interval time.Duration, log *zap.Logger) {
	events := sess.Events().Subscribe()
	defer sess.Events().Unsubscribe(events)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	dirty := false
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
			dirty = true
		case <-ticker.C:
			if !dirty {
				continue
			}
			data, err := sess.Export()
			if err != nil {
				log.Error("autosave export", zap.Error(err))
				continue
			}
			if err := boards.Save(name, data); err != nil {
				log.Error("autosave write", zap.Error(err))
				continue
			}
			dirty = false
			log.Debug("autosaved", zap.String("board", name))
		}
	}
}

func repl(sess *session.Session, boards store.Store, name string, log *zap.Logger) {
	fmt.Println("dungeon editor console - 'help' for commands")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return
		}
		if err := runCommand(sess, boards, &name, fields); err != nil {
			fmt.Printf("error: %v\n", err)
		}
	}
}

func runCommand(sess *session.Session, boards store.Store, name *string, fields []string) error {
	cmd, args := fields[0], fields[1:]
	tools := sess.Tools()

	switch cmd {
	case "help":
		printHelp()

	case "mode":
		if len(args) != 1 || !editor.Mode(args[0]).Valid() {
			return errors.New("usage: mode cells|edges|objects")
		}
		tools.Mode = editor.Mode(args[0])
		sess.SetTools(tools)

	case "cell":
		if len(args) != 1 || !board.CellType(args[0]).Valid() {
			return errors.New("usage: cell floor|pit|water")
		}
		tools.CellBrush = board.CellType(args[0])
		sess.SetTools(tools)

	case "edge":
		if len(args) != 1 || !board.EdgeType(args[0]).Valid() {
			return errors.New("usage: edge wall|door")
		}
		tools.EdgeBrush = board.EdgeType(args[0])
		sess.SetTools(tools)

	case "object":
		if len(args) != 1 || !board.ObjectType(args[0]).Valid() {
			return errors.New("usage: object lever|trapdoor|torch|bridge|light|none")
		}
		tools.ObjectBrush = board.ObjectType(args[0])
		sess.SetTools(tools)

	case "asset":
		if len(args) == 1 && args[0] == "off" {
			tools.AssetTemplate, tools.AssetURL = "", ""
		} else if len(args) >= 1 {
			tools.AssetTemplate = args[0]
			if len(args) > 1 {
				tools.AssetURL = args[1]
			}
			tools.ObjectBrush = board.ObjectNone // asset placement rides the eraser
		} else {
			return errors.New("usage: asset <template> [url] | asset off")
		}
		sess.SetTools(tools)

	case "paint":
		px, pz, err := twoFloats(args)
		if err != nil {
			return errors.New("usage: paint <worldX> <worldZ>")
		}
		report(sess.EditAt(float32(px), float32(pz)))

	case "move", "offset", "rotate", "scale":
		return assetCommand(sess, cmd, args)

	case "light":
		if len(args) != 3 {
			return errors.New("usage: light <intensity> <distance> <decay>")
		}
		_, props, ok := sess.SelectedLight()
		if !ok {
			return errors.New("no light selected")
		}
		props.Intensity, _ = strconv.ParseFloat(args[0], 64)
		props.Distance, _ = strconv.ParseFloat(args[1], 64)
		props.Decay, _ = strconv.ParseFloat(args[2], 64)
		sess.UpdateSelectedLight(props)

	case "show":
		printBoard(sess.Board(), sess.Assets())

	case "save":
		if len(args) == 1 {
			*name = args[0]
		}
		data, err := sess.Export()
		if err != nil {
			return err
		}
		if err := boards.Save(*name, data); err != nil {
			return err
		}
		fmt.Printf("saved %s\n", *name)

	case "load":
		if len(args) == 1 {
			*name = args[0]
		}
		data, err := boards.Load(*name)
		if err != nil {
			return err
		}
		if err := sess.Load(data); err != nil {
			return err
		}
		fmt.Printf("loaded %s\n", *name)

	case "boards":
		names, err := boards.List()
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Println(n)
		}

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func assetCommand(sess *session.Session, cmd string, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: %s <id> <args>", cmd)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("bad asset id %q", args[0])
	}

	ok := false
	switch cmd {
	case "move":
		x, y, ferr := twoFloats(args[1:])
		if ferr != nil {
			return errors.New("usage: move <id> <x> <y>")
		}
		ok = sess.MoveAsset(id, x, y)
	case "scale":
		delta, _ := strconv.ParseFloat(args[1], 64)
		ok = sess.ScaleAssetBy(id, delta)
	case "offset":
		v, _ := strconv.ParseFloat(args[1], 64)
		ok = sess.SetAssetOffset(id, v)
	case "rotate":
		deg, _ := strconv.ParseFloat(args[1], 64)
		ok = sess.RotateAsset(id, deg)
	}
	if !ok {
		return fmt.Errorf("no asset with id %d", id)
	}
	return nil
}

func twoFloats(args []string) (float64, float64, error) {
	if len(args) < 2 {
		return 0, 0, errors.New("two numbers required")
	}
	a, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func report(sig editor.Signal) {
	switch sig.Kind {
	case editor.SignalApplied:
		fmt.Println("ok")
	case editor.SignalRejected:
		fmt.Printf("rejected: %s\n", sig.Message)
	case editor.SignalHint:
		fmt.Printf("hint: %s\n", sig.Message)
	}
}

// printBoard renders the grid as ASCII, one letter per cell terrain and
// one per prop.
func printBoard(st board.State, assets []board.AssetPlacement) {
	terrain := map[board.CellType]byte{board.CellFloor: '.', board.CellPit: 'p', board.CellWater: 'w'}
	props := map[board.ObjectType]byte{
		board.ObjectNone: ' ', board.ObjectLever: 'L', board.ObjectTrapdoor: 'T',
		board.ObjectTorch: 't', board.ObjectBridge: 'B', board.ObjectLight: '*',
	}
	for y := 0; y < board.Height; y++ {
		for x := 0; x < board.Width; x++ {
			idx := board.CellIndex(x, y)
			fmt.Printf("%c%c ", terrain[st.Cells[idx]], props[st.Objects[idx].Type])
		}
		fmt.Println()
	}
	for _, a := range assets {
		fmt.Printf("asset #%d %s at (%g,%g)\n", a.ID, a.Name, a.X, a.Y)
	}
}

func printHelp() {
	fmt.Println(`commands:
  mode cells|edges|objects     select tool mode
  cell floor|pit|water         select terrain brush
  edge wall|door               select barrier brush
  object <type>|none           select prop brush
  asset <template> [url]       arm asset placement (asset off to disarm)
  paint <worldX> <worldZ>      apply the active tool at a ground point
  light <int> <dist> <decay>   edit the selected light
  move|scale|offset|rotate <id> ...   adjust an asset placement
  show                         print the board
  save [name] / load [name]    persist through the board store
  boards                       list stored boards
  quit`)
}
