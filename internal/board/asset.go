package board

// Asset coordinate bounds. X/Y are continuous grid coordinates; the edit
// engine places assets on integer cell coordinates, but a drag can move
// them anywhere inside the grid.
const (
	MinAssetScale  = 0.3
	MaxAssetScale  = 3.0
	MinAssetOffset = -1.0
	MaxAssetOffset = 3.0
)

// AssetPlacement is a user-imported model instance positioned on the
// board. It lives in a layer independent of the per-cell prop slots: a
// cell can hold a built-in prop and any number of asset placements at
// once.
type AssetPlacement struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	URL      string  `json:"url"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Scale    float64 `json:"scale"`
	YOffset  float64 `json:"yOffset"`
	Rotation float64 `json:"rotation"`
}

// NewAssetPlacement returns a placement for template name at cell (x,y)
// with default scale, offset, and rotation.
func NewAssetPlacement(id int64, name, url string, x, y int) AssetPlacement {
	return AssetPlacement{
		ID:    id,
		Name:  name,
		URL:   url,
		X:     float64(Clamp(x, 0, Width-1)),
		Y:     float64(Clamp(y, 0, Height-1)),
		Scale: 1,
	}
}

// Clamped returns a copy with every field forced into its legal range.
func (a AssetPlacement) Clamped() AssetPlacement {
	a.X = ClampFloat(a.X, 0, Width-1)
	a.Y = ClampFloat(a.Y, 0, Height-1)
	a.Scale = ClampFloat(a.Scale, MinAssetScale, MaxAssetScale)
	a.YOffset = ClampFloat(a.YOffset, MinAssetOffset, MaxAssetOffset)
	a.Rotation = NormalizeDegrees(a.Rotation)
	return a
}

// At reports whether the placement sits exactly on cell (x,y). Dragged
// placements have fractional coordinates and match no cell.
func (a AssetPlacement) At(x, y int) bool {
	return a.X == float64(x) && a.Y == float64(y)
}

// NormalizeDegrees wraps an angle into [0,360).
func NormalizeDegrees(deg float64) float64 {
	deg -= 360 * float64(int(deg/360))
	if deg < 0 {
		deg += 360
	}
	return deg
}

// CloneAssets returns an independent copy of an asset placement list.
func CloneAssets(assets []AssetPlacement) []AssetPlacement {
	if assets == nil {
		return nil
	}
	out := make([]AssetPlacement, len(assets))
	copy(out, assets)
	return out
}
