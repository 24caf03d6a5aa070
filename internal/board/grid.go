package board

// Derived array lengths. Horizontal edges run along the x axis at each of
// the H+1 y gridlines; vertical edges run along the y axis at each of the
// W+1 x gridlines.
const (
	CellCount  = Width * Height
	HEdgeCount = (Height + 1) * Width
	VEdgeCount = Height * (Width + 1)
)

// CellIndex maps cell coordinates to the linear cell/object array index.
// Callers must pass x in [0,Width) and y in [0,Height); clamp first.
func CellIndex(x, y int) int {
	return y*Width + x
}

// HEdgeIndex maps a horizontal edge at gridline y in [0,Height] to its
// linear index.
func HEdgeIndex(x, y int) int {
	return y*Width + x
}

// VEdgeIndex maps a vertical edge at gridline x in [0,Width] to its
// linear index.
func VEdgeIndex(x, y int) int {
	return y*(Width+1) + x
}

// Clamp bounds n to [lo, hi].
func Clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// ClampFloat bounds v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
