package picking

import "testing"

// worldAt returns the world-space point at the given local offset inside
// cell (cx,cy). The board is 4x4 and centered at the origin.
func worldAt(cx, cy int, localX, localZ float32) (float32, float32) {
	return float32(cx) + localX - 2, float32(cy) + localZ - 2
}

func TestResolveCellModeIgnoresBorders(t *testing.T) {
	// Dead center of cell (1,2).
	px, pz := worldAt(1, 2, 0.5, 0.5)
	p := Resolve(px, pz, false)
	if p.Kind != KindCell || p.X != 1 || p.Y != 2 {
		t.Errorf("expected cell(1,2), got %v", p)
	}

	// Hugging a border still yields the cell outside edge mode.
	px, pz = worldAt(1, 2, 0.01, 0.5)
	p = Resolve(px, pz, false)
	if p.Kind != KindCell || p.X != 1 || p.Y != 2 {
		t.Errorf("expected cell(1,2) near border, got %v", p)
	}
}

func TestResolveEdgeSnapTop(t *testing.T) {
	px, pz := worldAt(2, 0, 0.5, 0.05)
	p := Resolve(px, pz, true)
	if p.Kind != KindEdge || p.Dir != EdgeH || p.X != 2 || p.Y != 0 {
		t.Errorf("expected edge-h(2,0), got %v", p)
	}
}

func TestResolveEdgeSnapAllSides(t *testing.T) {
	tests := []struct {
		name           string
		localX, localZ float32
		dir            EdgeDir
		x, y           int
	}{
		{"top", 0.5, 0.1, EdgeH, 1, 1},
		{"bottom", 0.5, 0.9, EdgeH, 1, 2},
		{"left", 0.1, 0.5, EdgeV, 1, 1},
		{"right", 0.9, 0.5, EdgeV, 2, 1},
	}
	for _, tt := range tests {
		px, pz := worldAt(1, 1, tt.localX, tt.localZ)
		p := Resolve(px, pz, true)
		if p.Kind != KindEdge || p.Dir != tt.dir || p.X != tt.x || p.Y != tt.y {
			t.Errorf("%s: expected edge dir=%d (%d,%d), got %v", tt.name, tt.dir, tt.x, tt.y, p)
		}
	}
}

func TestResolveEdgeFallsBackToCell(t *testing.T) {
	// Cell interior, beyond the snap threshold from every border.
	px, pz := worldAt(3, 3, 0.5, 0.5)
	p := Resolve(px, pz, true)
	if p.Kind != KindCell || p.X != 3 || p.Y != 3 {
		t.Errorf("expected cell(3,3), got %v", p)
	}
}

func TestResolveCornerTiePrefersTop(t *testing.T) {
	// Exactly equidistant from the top and left borders.
	px, pz := worldAt(1, 1, 0.1, 0.1)
	p := Resolve(px, pz, true)
	if p.Kind != KindEdge || p.Dir != EdgeH || p.X != 1 || p.Y != 1 {
		t.Errorf("expected top edge-h(1,1) on tie, got %v", p)
	}
}

func TestResolveClampsOutOfBounds(t *testing.T) {
	p := Resolve(-100, 100, false)
	if p.Kind != KindCell || p.X != 0 || p.Y != 3 {
		t.Errorf("expected clamped cell(0,3), got %v", p)
	}
}
