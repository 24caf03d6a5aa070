package board

// State is the authoritative board: terrain per cell, barrier per edge,
// prop per cell. Edits never mutate a State in place; the edit engine
// clones the previous value and returns the replacement, so any holder of
// an earlier State keeps a consistent snapshot.
type State struct {
	Cells   []CellType        `json:"cells"`
	HEdges  []EdgeType        `json:"hEdges"`
	VEdges  []EdgeType        `json:"vEdges"`
	Objects []ObjectPlacement `json:"objects"`
}

// NewState returns the default board: all floor, no barriers, no props.
func NewState() State {
	s := State{
		Cells:   make([]CellType, CellCount),
		HEdges:  make([]EdgeType, HEdgeCount),
		VEdges:  make([]EdgeType, VEdgeCount),
		Objects: make([]ObjectPlacement, CellCount),
	}
	for i := range s.Cells {
		s.Cells[i] = CellFloor
		s.Objects[i] = NoObject()
	}
	for i := range s.HEdges {
		s.HEdges[i] = EdgeNone
	}
	for i := range s.VEdges {
		s.VEdges[i] = EdgeNone
	}
	return s
}

// Clone returns a structurally independent copy. Light payloads are
// copied record-by-record so the clone shares no pointers with s.
func (s State) Clone() State {
	out := State{
		Cells:   make([]CellType, len(s.Cells)),
		HEdges:  make([]EdgeType, len(s.HEdges)),
		VEdges:  make([]EdgeType, len(s.VEdges)),
		Objects: make([]ObjectPlacement, len(s.Objects)),
	}
	copy(out.Cells, s.Cells)
	copy(out.HEdges, s.HEdges)
	copy(out.VEdges, s.VEdges)
	for i, o := range s.Objects {
		out.Objects[i] = o.clone()
	}
	return out
}

// Valid reports whether the state has the required array lengths and
// every element is well formed.
func (s State) Valid() bool {
	if len(s.Cells) != CellCount || len(s.Objects) != CellCount {
		return false
	}
	if len(s.HEdges) != HEdgeCount || len(s.VEdges) != VEdgeCount {
		return false
	}
	for _, c := range s.Cells {
		if !c.Valid() {
			return false
		}
	}
	for _, e := range s.HEdges {
		if !e.Valid() {
			return false
		}
	}
	for _, e := range s.VEdges {
		if !e.Valid() {
			return false
		}
	}
	for i, o := range s.Objects {
		if !o.Valid() {
			return false
		}
		if o.Type == ObjectBridge && !s.Cells[i].SupportsBridge() {
			return false
		}
	}
	return true
}

// Equal reports structural equality between two states, comparing light
// payloads by value.
func (s State) Equal(other State) bool {
	if len(s.Cells) != len(other.Cells) || len(s.HEdges) != len(other.HEdges) ||
		len(s.VEdges) != len(other.VEdges) || len(s.Objects) != len(other.Objects) {
		return false
	}
	for i := range s.Cells {
		if s.Cells[i] != other.Cells[i] {
			return false
		}
	}
	for i := range s.HEdges {
		if s.HEdges[i] != other.HEdges[i] {
			return false
		}
	}
	for i := range s.VEdges {
		if s.VEdges[i] != other.VEdges[i] {
			return false
		}
	}
	for i := range s.Objects {
		a, b := s.Objects[i], other.Objects[i]
		if a.Type != b.Type || a.Rotation != b.Rotation {
			return false
		}
		if (a.Light == nil) != (b.Light == nil) {
			return false
		}
		if a.Light != nil && *a.Light != *b.Light {
			return false
		}
	}
	return true
}
