package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"

	"scene-demo/internal/scene"
)

// cubeHandle is the GPU side of a cube object. Created lazily on first draw so that
// GPU resources are allocated after the window/OpenGL context exists.
type cubeHandle struct {
	mesh rl.Mesh
	mtl  rl.Material
}

// modelHandle is what the uploader stores on a model object.
type modelHandle struct {
	model rl.Model
	anims []rl.ModelAnimation
}

func color(c colorful.Color) rl.Color {
	r, g, b := c.Clamped().RGB255()
	return rl.NewColor(r, g, b, 255)
}

func ensureCube(o *scene.Object) *cubeHandle {
	if h, ok := o.Handle.(*cubeHandle); ok {
		return h
	}
	mesh := rl.GenMeshCube(sizeOrOne(o.Size.X), sizeOrOne(o.Size.Y), sizeOrOne(o.Size.Z))
	mtl := rl.LoadMaterialDefault()
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = color(o.Color)
	}
	h := &cubeHandle{mesh: mesh, mtl: mtl}
	o.Handle = h
	return h
}

// drawObject draws one object. Must be called between BeginMode3D and EndMode3D.
// Unknown kinds and models without a loaded handle are skipped.
func drawObject(o *scene.Object) {
	switch o.Kind {
	case scene.KindCube:
		h := ensureCube(o)
		rl.DrawMesh(h.mesh, h.mtl, matrix(o.Transform.Matrix()))
	case scene.KindLine:
		pts := o.WorldPoints()
		c := color(o.Color)
		for i := 1; i < len(pts); i++ {
			rl.DrawLine3D(vec(pts[i-1]), vec(pts[i]), c)
		}
	case scene.KindModel:
		h, ok := o.Handle.(*modelHandle)
		if !ok {
			return
		}
		if p := o.Playback; p != nil && p.Clip >= 0 && p.Clip < len(h.anims) {
			rl.UpdateModelAnimation(h.model, h.anims[p.Clip], int32(p.Advance()))
		}
		h.model.Transform = matrix(o.Transform.Matrix())
		rl.DrawModel(h.model, rl.NewVector3(0, 0, 0), 1, color(o.Color))
	}
}

func sizeOrOne(s float32) float32 {
	if s <= 0 {
		return 1
	}
	return s
}
