package scene

import (
	"github.com/lucasb-eyer/go-colorful"

	"scene-demo/internal/transform"
)

// Kind is what an Object renders as.
type Kind int

const (
	KindCube Kind = iota
	KindLine
	KindModel
)

func (k Kind) String() string {
	switch k {
	case KindCube:
		return "cube"
	case KindLine:
		return "line"
	case KindModel:
		return "model"
	default:
		return "unknown"
	}
}

// Object is a mesh-like scene element. ID is assigned by the Registry on Add.
// Handle is owned by the renderer (GPU mesh, loaded model, ...) and is nil until it uploads one.
type Object struct {
	ID        uint32
	Name      string
	Kind      Kind
	Transform transform.Transform
	Color     colorful.Color
	// Size is the box extent for cubes.
	Size transform.Vec3
	// Points is the model-space polyline for lines.
	Points   []transform.Vec3
	Handle   any
	Playback *Playback
}

// NewCube returns a cube of the given size at the origin.
func NewCube(name string, size transform.Vec3, color colorful.Color) *Object {
	return &Object{Name: name, Kind: KindCube, Transform: transform.Identity(), Color: color, Size: size}
}

// NewLine returns a polyline through points.
func NewLine(name string, points []transform.Vec3, color colorful.Color) *Object {
	pts := make([]transform.Vec3, len(points))
	copy(pts, points)
	return &Object{Name: name, Kind: KindLine, Transform: transform.Identity(), Color: color, Points: pts}
}

// NewModel returns a placeholder for an asynchronously loaded model. It is not drawn
// until the renderer sets Handle.
func NewModel(name string) *Object {
	return &Object{Name: name, Kind: KindModel, Transform: transform.Identity(), Color: colorful.Color{R: 1, G: 1, B: 1}}
}

// WorldPoints returns the line points transformed into world space.
func (o *Object) WorldPoints() []transform.Vec3 {
	m := o.Transform.Matrix()
	out := make([]transform.Vec3, len(o.Points))
	for i, p := range o.Points {
		out[i] = m.Apply(p)
	}
	return out
}

// Playback tracks skeletal animation progress for a loaded model.
type Playback struct {
	Clip       int
	Frame      int
	FrameCount int
}

// Advance moves to the next frame, wrapping at FrameCount. A clip with no frames stays put.
func (p *Playback) Advance() int {
	if p.FrameCount <= 0 {
		p.Frame = 0
		return 0
	}
	p.Frame = (p.Frame + 1) % p.FrameCount
	return p.Frame
}
