package editor

import (
	"github.com/zuzzo/Dungeon/internal/board"
	"github.com/zuzzo/Dungeon/internal/picking"
)

// Apply runs one pick against the state under the given tool
// configuration and returns the next state plus a feedback signal. The
// input state is never mutated; on rejection the returned state is the
// input unchanged.
func Apply(st State, tools Tools, pick picking.Pick) (State, Signal) {
	switch pick.Kind {
	case picking.KindCell:
		return applyCell(st, tools, pick.X, pick.Y)
	case picking.KindEdge:
		return applyEdge(st, tools, pick)
	}
	return st, Signal{}
}

func applyCell(st State, tools Tools, x, y int) (State, Signal) {
	switch tools.Mode {
	case ModeCells:
		return paintCell(st, tools.CellBrush, x, y)
	case ModeObjects:
		// Asset placement takes priority over the eraser while a
		// template is selected.
		if tools.ObjectBrush == board.ObjectNone && tools.AssetTemplate != "" {
			return toggleAsset(st, tools, x, y)
		}
		return paintObject(st, tools, x, y)
	case ModeEdges:
		return st, Hint("switch to Cells or Objects mode to edit this cell")
	}
	return st, Signal{}
}

// paintCell repaints terrain. A bridge cannot survive its cell becoming
// floor, so the object slot is cleared alongside.
func paintCell(st State, brush board.CellType, x, y int) (State, Signal) {
	idx := board.CellIndex(x, y)
	next := st.Board.Clone()
	next.Cells[idx] = brush
	if brush == board.CellFloor && next.Objects[idx].Type == board.ObjectBridge {
		next.Objects[idx] = board.NoObject()
	}
	st.Board = next
	return st, Applied()
}

func paintObject(st State, tools Tools, x, y int) (State, Signal) {
	idx := board.CellIndex(x, y)
	cur := st.Board.Objects[idx]

	switch tools.ObjectBrush {
	case board.ObjectLight:
		light := tools.Light.Clamped()
		next := st.Board.Clone()
		next.Objects[idx] = board.ObjectPlacement{
			Type:     board.ObjectLight,
			Rotation: cur.Rotation,
			Light:    &light,
		}
		st.Board = next
		st.LightSelection = idx
		return st, Applied()

	case board.ObjectNone:
		next := st.Board.Clone()
		next.Objects[idx] = board.NoObject()
		st.Board = next
		if st.LightSelection == idx {
			st.LightSelection = -1
		}
		return st, Applied()

	default:
		if tools.ObjectBrush == board.ObjectBridge && !st.Board.Cells[idx].SupportsBridge() {
			return st, Rejected("bridge requires water or pit beneath it")
		}
		next := st.Board.Clone()
		if cur.Type == tools.ObjectBrush {
			// Re-placing the same prop spins it a quarter turn.
			next.Objects[idx].Rotation = cur.Rotation.Next()
		} else {
			next.Objects[idx] = board.ObjectPlacement{Type: tools.ObjectBrush}
			if st.LightSelection == idx {
				st.LightSelection = -1
			}
		}
		st.Board = next
		return st, Applied()
	}
}

// toggleAsset adds or removes an external asset placement. This path
// never touches the board itself.
func toggleAsset(st State, tools Tools, x, y int) (State, Signal) {
	for i, a := range st.Assets {
		if a.Name == tools.AssetTemplate && a.At(x, y) {
			assets := make([]board.AssetPlacement, 0, len(st.Assets)-1)
			assets = append(assets, st.Assets[:i]...)
			assets = append(assets, st.Assets[i+1:]...)
			st.Assets = assets
			if st.SelectedAsset == a.ID {
				st.SelectedAsset = 0
			}
			return st, Applied()
		}
	}

	placed := board.NewAssetPlacement(st.NextAssetID, tools.AssetTemplate, tools.AssetURL, x, y)
	st.Assets = append(board.CloneAssets(st.Assets), placed)
	st.SelectedAsset = placed.ID
	st.NextAssetID++
	return st, Applied()
}

func applyEdge(st State, tools Tools, pick picking.Pick) (State, Signal) {
	if tools.Mode != ModeEdges {
		// Edge picks only exist in edge mode; ignore silently.
		return st, Signal{}
	}

	next := st.Board.Clone()
	var slot *board.EdgeType
	if pick.Dir == picking.EdgeH {
		slot = &next.HEdges[board.HEdgeIndex(pick.X, pick.Y)]
	} else {
		slot = &next.VEdges[board.VEdgeIndex(pick.X, pick.Y)]
	}
	if *slot == tools.EdgeBrush {
		*slot = board.EdgeNone
	} else {
		*slot = tools.EdgeBrush
	}
	st.Board = next
	return st, Applied()
}
