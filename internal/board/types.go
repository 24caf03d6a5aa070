// Package board holds the canonical editor state: the 4x4 terrain grid,
// its edge barriers, per-cell props, and imported asset placements.
package board

import "fmt"

// Grid dimensions. The editor works on a fixed 4x4 board with 1 world
// unit per cell; the board is centered at the world origin.
const (
	Width    = 4
	Height   = 4
	CellSize = 1.0
)

// CellType is the terrain of one grid square.
type CellType string

// Terrain values.
const (
	CellFloor CellType = "floor"
	CellPit   CellType = "pit"
	CellWater CellType = "water"
)

// Valid reports whether t is a known terrain value.
func (t CellType) Valid() bool {
	return t == CellFloor || t == CellPit || t == CellWater
}

// SupportsBridge reports whether a bridge prop may sit on this terrain.
func (t CellType) SupportsBridge() bool {
	return t == CellWater || t == CellPit
}

// EdgeType is the barrier state of one grid-line segment.
type EdgeType string

// Barrier values.
const (
	EdgeNone EdgeType = "none"
	EdgeWall EdgeType = "wall"
	EdgeDoor EdgeType = "door"
)

// Valid reports whether t is a known barrier value.
func (t EdgeType) Valid() bool {
	return t == EdgeNone || t == EdgeWall || t == EdgeDoor
}

// ObjectType is the built-in prop occupying a cell, at most one per cell.
type ObjectType string

// Prop values.
const (
	ObjectNone     ObjectType = "none"
	ObjectLever    ObjectType = "lever"
	ObjectTrapdoor ObjectType = "trapdoor"
	ObjectTorch    ObjectType = "torch"
	ObjectBridge   ObjectType = "bridge"
	ObjectLight    ObjectType = "light"
)

// Valid reports whether t is a known prop value.
func (t ObjectType) Valid() bool {
	switch t {
	case ObjectNone, ObjectLever, ObjectTrapdoor, ObjectTorch, ObjectBridge, ObjectLight:
		return true
	}
	return false
}

// Rotation is a prop orientation in degrees. Only the four cardinal
// orientations are representable.
type Rotation int

// Next returns the orientation one quarter turn clockwise.
func (r Rotation) Next() Rotation {
	return (r + 90) % 360
}

// Valid reports whether r is one of the four cardinal orientations.
func (r Rotation) Valid() bool {
	return r == 0 || r == 90 || r == 180 || r == 270
}

// LightProperties describes a placed point light. Color is packed
// 0xRRGGBB; the remaining fields follow the usual point-light falloff
// model and are never negative.
type LightProperties struct {
	Color     uint32  `json:"color"`
	Intensity float64 `json:"intensity"`
	Distance  float64 `json:"distance"`
	Decay     float64 `json:"decay"`
}

// Clamped returns a copy with the numeric falloff fields floored at zero
// and the color masked to 24 bits.
func (p LightProperties) Clamped() LightProperties {
	p.Color &= 0xffffff
	if p.Intensity < 0 {
		p.Intensity = 0
	}
	if p.Distance < 0 {
		p.Distance = 0
	}
	if p.Decay < 0 {
		p.Decay = 0
	}
	return p
}

// DefaultLight returns the light properties a freshly placed light starts
// with.
func DefaultLight() LightProperties {
	return LightProperties{
		Color:     0xffaa55,
		Intensity: 1.2,
		Distance:  4,
		Decay:     2,
	}
}

// ObjectPlacement is one cell's prop slot. Light is non-nil exactly when
// Type is ObjectLight.
type ObjectPlacement struct {
	Type     ObjectType       `json:"type"`
	Rotation Rotation         `json:"rotation"`
	Light    *LightProperties `json:"light,omitempty"`
}

// NoObject returns the empty prop slot.
func NoObject() ObjectPlacement {
	return ObjectPlacement{Type: ObjectNone}
}

// Valid reports whether the placement is well formed, including the
// light-payload coupling.
func (o ObjectPlacement) Valid() bool {
	if !o.Type.Valid() || !o.Rotation.Valid() {
		return false
	}
	return (o.Light != nil) == (o.Type == ObjectLight)
}

// clone returns a structurally independent copy of the placement.
func (o ObjectPlacement) clone() ObjectPlacement {
	if o.Light != nil {
		light := *o.Light
		o.Light = &light
	}
	return o
}

// String implements fmt.Stringer for log output.
func (o ObjectPlacement) String() string {
	if o.Type == ObjectNone {
		return "none"
	}
	return fmt.Sprintf("%s@%d", o.Type, o.Rotation)
}
