package picking

import (
	"fmt"
	"math"

	"github.com/zuzzo/Dungeon/internal/board"
)

// SnapThreshold is the fraction of a cell within which a pointer in edge
// mode snaps to the nearest border instead of the cell interior.
const SnapThreshold = 0.18 * board.CellSize

// Kind distinguishes cell picks from edge picks.
type Kind int

// Pick kinds.
const (
	KindCell Kind = iota
	KindEdge
)

// EdgeDir is the orientation of a picked edge.
type EdgeDir int

// Edge orientations. Horizontal edges run along the x axis, vertical
// edges along the y axis.
const (
	EdgeH EdgeDir = iota
	EdgeV
)

// Pick is a discrete grid address resolved from a pointer position. For
// cell picks X/Y are cell coordinates; for edge picks they index the edge
// arrays together with Dir.
type Pick struct {
	Kind Kind
	Dir  EdgeDir
	X, Y int
}

// String implements fmt.Stringer for log output.
func (p Pick) String() string {
	if p.Kind == KindCell {
		return fmt.Sprintf("cell(%d,%d)", p.X, p.Y)
	}
	dir := "h"
	if p.Dir == EdgeV {
		dir = "v"
	}
	return fmt.Sprintf("edge-%s(%d,%d)", dir, p.X, p.Y)
}

// Resolve maps a ground-plane point to a grid address. px/pz are world
// coordinates on the board plane; the board is centered at the origin.
// Outside edge mode the result is always the containing (clamped) cell.
// In edge mode the point snaps to the nearest border of its cell when
// within SnapThreshold, with ties broken top, bottom, left, right.
func Resolve(px, pz float32, edgeMode bool) Pick {
	lx := float64(px) + float64(board.Width)/2*board.CellSize
	lz := float64(pz) + float64(board.Height)/2*board.CellSize

	cx := board.Clamp(int(math.Floor(lx/board.CellSize)), 0, board.Width-1)
	cy := board.Clamp(int(math.Floor(lz/board.CellSize)), 0, board.Height-1)

	if !edgeMode {
		return Pick{Kind: KindCell, X: cx, Y: cy}
	}

	localX := lx - float64(cx)*board.CellSize
	localZ := lz - float64(cy)*board.CellSize

	borders := []struct {
		dist float64
		pick Pick
	}{
		{localZ, Pick{Kind: KindEdge, Dir: EdgeH, X: cx, Y: cy}},                      // top
		{board.CellSize - localZ, Pick{Kind: KindEdge, Dir: EdgeH, X: cx, Y: cy + 1}}, // bottom
		{localX, Pick{Kind: KindEdge, Dir: EdgeV, X: cx, Y: cy}},                      // left
		{board.CellSize - localX, Pick{Kind: KindEdge, Dir: EdgeV, X: cx + 1, Y: cy}}, // right
	}

	best := borders[0]
	for _, b := range borders[1:] {
		if b.dist < best.dist {
			best = b
		}
	}
	if best.dist <= SnapThreshold {
		return best.pick
	}
	return Pick{Kind: KindCell, X: cx, Y: cy}
}
