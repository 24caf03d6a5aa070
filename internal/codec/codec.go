// Package codec serializes the board and asset placements to the flat
// JSON document format and loads it back, degrading gracefully on
// partially corrupt input.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zuzzo/Dungeon/internal/board"
)

// Version is the document schema version written on export.
const Version = 1

// Structural load failures. Anything else degrades per-field instead of
// failing the whole load.
var (
	ErrNotObject    = errors.New("document is not a JSON object")
	ErrInvalidBoard = errors.New("document board is missing or not an object")
)

// Document is the persisted file shape.
type Document struct {
	Version       int                    `json:"version"`
	Board         board.State            `json:"board"`
	CustomObjects []board.AssetPlacement `json:"customObjects"`
}

// Encode renders the board and asset list as an indented JSON document.
func Encode(b board.State, assets []board.AssetPlacement) ([]byte, error) {
	doc := Document{
		Version:       Version,
		Board:         b.Clone(),
		CustomObjects: board.CloneAssets(assets),
	}
	if doc.CustomObjects == nil {
		doc.CustomObjects = []board.AssetPlacement{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding board document: %w", err)
	}
	return data, nil
}

// Decode parses a document. Each of the four board arrays falls back to
// its default independently when absent, malformed, or the wrong length;
// asset entries are dropped unless they carry a string name and numeric
// coordinates. The returned nextID continues the monotonic asset id
// sequence past every id present in the document.
//
// A structural failure (not an object, board missing or not an object)
// returns an error and nothing else; callers keep their previous state.
func Decode(data []byte) (board.State, []board.AssetPlacement, int64, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return board.State{}, nil, 0, ErrNotObject
	}

	rawBoard, ok := top["board"]
	if !ok {
		return board.State{}, nil, 0, ErrInvalidBoard
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(rawBoard, &fields); err != nil || fields == nil {
		return board.State{}, nil, 0, ErrInvalidBoard
	}

	st := board.NewState()
	if cells, ok := decodeEnums(fields["cells"], board.CellCount, board.CellType.Valid); ok {
		st.Cells = cells
	}
	if edges, ok := decodeEnums(fields["hEdges"], board.HEdgeCount, board.EdgeType.Valid); ok {
		st.HEdges = edges
	}
	if edges, ok := decodeEnums(fields["vEdges"], board.VEdgeCount, board.EdgeType.Valid); ok {
		st.VEdges = edges
	}
	if objects, ok := decodeObjects(fields["objects"]); ok {
		st.Objects = objects
	}

	assets, nextID := decodeAssets(top["customObjects"])
	return st, assets, nextID, nil
}

// decodeEnums accepts a raw array only when it parses, has exactly want
// elements, and every element is a known enum value.
func decodeEnums[T ~string](raw json.RawMessage, want int, valid func(T) bool) ([]T, bool) {
	if raw == nil {
		return nil, false
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil || len(out) != want {
		return nil, false
	}
	for _, v := range out {
		if !valid(v) {
			return nil, false
		}
	}
	return out, true
}

func decodeObjects(raw json.RawMessage) ([]board.ObjectPlacement, bool) {
	if raw == nil {
		return nil, false
	}
	var out []board.ObjectPlacement
	if err := json.Unmarshal(raw, &out); err != nil || len(out) != board.CellCount {
		return nil, false
	}
	for i, o := range out {
		if !o.Valid() {
			return nil, false
		}
		if o.Light != nil {
			clamped := o.Light.Clamped()
			out[i].Light = &clamped
		}
	}
	return out, true
}

// decodeAssets salvages every well-formed placement entry and assigns
// fresh ids to entries that lack one, past the largest id seen.
func decodeAssets(raw json.RawMessage) ([]board.AssetPlacement, int64) {
	nextID := int64(1)
	if raw == nil {
		return nil, nextID
	}
	var entries []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, nextID
	}

	var assets []board.AssetPlacement
	var maxID int64
	for _, entry := range entries {
		a, ok := decodeAsset(entry)
		if !ok {
			continue
		}
		if a.ID > maxID {
			maxID = a.ID
		}
		assets = append(assets, a)
	}

	// Second pass: entries without an id get the next fresh ones.
	for i := range assets {
		if assets[i].ID == 0 {
			maxID++
			assets[i].ID = maxID
		}
	}
	return assets, maxID + 1
}

func decodeAsset(entry map[string]json.RawMessage) (board.AssetPlacement, bool) {
	var a board.AssetPlacement

	if err := json.Unmarshal(entry["name"], &a.Name); err != nil || a.Name == "" {
		return a, false
	}
	x, okX := decodeNumber(entry["x"])
	y, okY := decodeNumber(entry["y"])
	if !okX || !okY {
		return a, false
	}
	a.X, a.Y = x, y

	if id, ok := decodeNumber(entry["id"]); ok && id > 0 {
		a.ID = int64(id)
	}
	_ = json.Unmarshal(entry["url"], &a.URL)

	a.Scale = 1
	if v, ok := decodeNumber(entry["scale"]); ok {
		a.Scale = v
	}
	if v, ok := decodeNumber(entry["yOffset"]); ok {
		a.YOffset = v
	}
	if v, ok := decodeNumber(entry["rotation"]); ok {
		a.Rotation = v
	}

	return a.Clamped(), true
}

func decodeNumber(raw json.RawMessage) (float64, bool) {
	if raw == nil {
		return 0, false
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, false
	}
	return v, true
}
