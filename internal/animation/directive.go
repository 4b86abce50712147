package animation

import (
	"fmt"

	"scene-demo/internal/transform"
)

// RefKind tells which registry a Ref points into.
type RefKind uint8

const (
	// RefNone is the zero Ref; it never resolves.
	RefNone RefKind = iota
	// RefMesh addresses a mesh-like object by its numeric scene-graph id.
	RefMesh
	// RefText addresses a text label by its string id.
	RefText
)

// Ref identifies one scene element: either a mesh id or a label id, never both.
type Ref struct {
	kind RefKind
	mesh uint32
	text string
}

// MeshRef refers to the mesh registry.
func MeshRef(id uint32) Ref {
	return Ref{kind: RefMesh, mesh: id}
}

// TextRef refers to the label registry.
func TextRef(id string) Ref {
	return Ref{kind: RefText, text: id}
}

// Kind reports which case of the variant r holds.
func (r Ref) Kind() RefKind {
	return r.kind
}

// MeshID returns the numeric id when r is a mesh reference.
func (r Ref) MeshID() (uint32, bool) {
	return r.mesh, r.kind == RefMesh
}

// TextID returns the string id when r is a label reference.
func (r Ref) TextID() (string, bool) {
	return r.text, r.kind == RefText
}

func (r Ref) String() string {
	switch r.kind {
	case RefMesh:
		return fmt.Sprintf("mesh#%d", r.mesh)
	case RefText:
		return fmt.Sprintf("text#%q", r.text)
	default:
		return "none"
	}
}

// Axis is a bit set of x, y and z.
type Axis uint8

const (
	AxisX Axis = 1 << iota
	AxisY
	AxisZ
)

// Delta is a per-axis additive change. Only axes in the present set are applied;
// a present axis with value 0 is still "present" but changes nothing.
type Delta struct {
	X, Y, Z float32
	axes    Axis
}

// X returns a delta with only the x axis set. Chain with WithY/WithZ.
func X(v float32) Delta { return Delta{}.WithX(v) }

// Y returns a delta with only the y axis set.
func Y(v float32) Delta { return Delta{}.WithY(v) }

// Z returns a delta with only the z axis set.
func Z(v float32) Delta { return Delta{}.WithZ(v) }

// XYZ returns a delta with all three axes set.
func XYZ(x, y, z float32) Delta { return Delta{}.WithX(x).WithY(y).WithZ(z) }

// WithX returns a copy of d with the x axis set to v.
func (d Delta) WithX(v float32) Delta {
	d.X = v
	d.axes |= AxisX
	return d
}

// WithY returns a copy of d with the y axis set to v.
func (d Delta) WithY(v float32) Delta {
	d.Y = v
	d.axes |= AxisY
	return d
}

// WithZ returns a copy of d with the z axis set to v.
func (d Delta) WithZ(v float32) Delta {
	d.Z = v
	d.axes |= AxisZ
	return d
}

// Has reports whether axis a is present.
func (d Delta) Has(a Axis) bool {
	return d.axes&a != 0
}

// Empty reports whether no axis is present.
func (d Delta) Empty() bool {
	return d.axes == 0
}

// addTo adds each present axis to v. Absent axes are untouched.
func (d Delta) addTo(v *transform.Vec3) {
	if d.axes&AxisX != 0 {
		v.X += d.X
	}
	if d.axes&AxisY != 0 {
		v.Y += d.Y
	}
	if d.axes&AxisZ != 0 {
		v.Z += d.Z
	}
}

// Directive is a persistent per-frame instruction: every tick, add Rotation and
// Position to the target's transform. Directives are values; the dispatcher keeps
// its own copy so later changes by the caller have no effect.
type Directive struct {
	Target   Ref
	Rotation Delta
	Position Delta
}

// Rotate returns a directive that only changes rotation.
func Rotate(target Ref, d Delta) Directive {
	return Directive{Target: target, Rotation: d}
}

// Move returns a directive that only changes position.
func Move(target Ref, d Delta) Directive {
	return Directive{Target: target, Position: d}
}

func (d Directive) apply(t *transform.Transform) {
	d.Rotation.addTo(&t.Rotation)
	d.Position.addTo(&t.Position)
}
