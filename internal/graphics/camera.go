package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-demo/internal/transform"
)

// NewCamera returns a perspective camera with a vertical field of view in degrees,
// Y up. A non-positive fov falls back to 75.
func NewCamera(fov float32, position, target transform.Vec3) rl.Camera3D {
	if fov <= 0 {
		fov = 75
	}
	return rl.Camera3D{
		Position:   vec(position),
		Target:     vec(target),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       fov,
		Projection: rl.CameraPerspective,
	}
}

func vec(v transform.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X, v.Y, v.Z)
}

// matrix converts a row-major transform matrix into raylib's layout
// (M12..M14 hold translation).
func matrix(m transform.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0][0], M4: m[0][1], M8: m[0][2], M12: m[0][3],
		M1: m[1][0], M5: m[1][1], M9: m[1][2], M13: m[1][3],
		M2: m[2][0], M6: m[2][1], M10: m[2][2], M14: m[2][3],
		M3: m[3][0], M7: m[3][1], M11: m[3][2], M15: m[3][3],
	}
}
