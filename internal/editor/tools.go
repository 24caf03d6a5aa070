// Package editor applies discrete picks against the board state. It is a
// pure reducer: every entry point takes the current state and returns the
// next one together with a feedback signal, leaving the input untouched.
package editor

import "github.com/zuzzo/Dungeon/internal/board"

// Mode selects which board layer a pick edits.
type Mode string

// Tool modes.
const (
	ModeCells   Mode = "cells"
	ModeEdges   Mode = "edges"
	ModeObjects Mode = "objects"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeCells || m == ModeEdges || m == ModeObjects
}

// Tools is the active tool and brush configuration. AssetTemplate names
// an imported model template; placement through it is only reachable
// while ObjectBrush is the eraser value ObjectNone.
type Tools struct {
	Mode          Mode
	CellBrush     board.CellType
	EdgeBrush     board.EdgeType
	ObjectBrush   board.ObjectType
	AssetTemplate string
	AssetURL      string
	Light         board.LightProperties
}

// DefaultTools returns the configuration a fresh session starts with.
func DefaultTools() Tools {
	return Tools{
		Mode:        ModeCells,
		CellBrush:   board.CellFloor,
		EdgeBrush:   board.EdgeWall,
		ObjectBrush: board.ObjectLever,
		Light:       board.DefaultLight(),
	}
}

// State is everything the reducer operates on: the board, the asset
// placement layer, the two selection pointers, and the monotonic asset id
// counter.
type State struct {
	Board  board.State
	Assets []board.AssetPlacement

	// LightSelection is the cell index whose light the UI sliders edit,
	// or -1 when no light is selected.
	LightSelection int

	// SelectedAsset is the id of the asset the drag collaborator targets,
	// or 0 when none is selected.
	SelectedAsset int64

	// NextAssetID is the next id handed to a new placement.
	NextAssetID int64
}

// NewState returns the initial editor state over an empty board.
func NewState() State {
	return State{
		Board:          board.NewState(),
		LightSelection: -1,
		NextAssetID:    1,
	}
}
