package transform

import "github.com/chewxy/math32"

// Vec3 is a 3D vector in world units (or radians when used for rotation).
type Vec3 struct {
	X, Y, Z float32
}

// V returns a Vec3 from its components.
func V(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Transform is the mutable placement of one scene element. Rotation is Euler
// angles in radians applied in XYZ order. A zero Scale component is treated as 1.
type Transform struct {
	Position Vec3
	Rotation Vec3
	Scale    Vec3
}

// Identity returns a transform at the origin with unit scale.
func Identity() Transform {
	return Transform{Scale: Vec3{X: 1, Y: 1, Z: 1}}
}

// At returns an identity transform moved to position.
func At(position Vec3) Transform {
	t := Identity()
	t.Position = position
	return t
}

// Mat4 is a row-major 4x4 matrix; translation lives in the last column.
type Mat4 [4][4]float32

// Matrix composes translate * rotateX * rotateY * rotateZ * scale.
func (t Transform) Matrix() Mat4 {
	sx, sy, sz := scaleOrOne(t.Scale.X), scaleOrOne(t.Scale.Y), scaleOrOne(t.Scale.Z)
	sinX, cosX := math32.Sincos(t.Rotation.X)
	sinY, cosY := math32.Sincos(t.Rotation.Y)
	sinZ, cosZ := math32.Sincos(t.Rotation.Z)

	var m Mat4
	m[0][0] = cosY * cosZ * sx
	m[0][1] = -cosY * sinZ * sy
	m[0][2] = sinY * sz
	m[1][0] = (cosX*sinZ + sinX*sinY*cosZ) * sx
	m[1][1] = (cosX*cosZ - sinX*sinY*sinZ) * sy
	m[1][2] = -sinX * cosY * sz
	m[2][0] = (sinX*sinZ - cosX*sinY*cosZ) * sx
	m[2][1] = (sinX*cosZ + cosX*sinY*sinZ) * sy
	m[2][2] = cosX * cosY * sz
	m[0][3] = t.Position.X
	m[1][3] = t.Position.Y
	m[2][3] = t.Position.Z
	m[3][3] = 1
	return m
}

// Apply transforms a point from model space to world space.
func (t Transform) Apply(p Vec3) Vec3 {
	return t.Matrix().Apply(p)
}

// Apply multiplies the point (x, y, z, 1) by m.
func (m Mat4) Apply(p Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3],
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3],
		Z: m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3],
	}
}

func scaleOrOne(s float32) float32 {
	if s == 0 {
		return 1
	}
	return s
}
