package graphics

import (
	"errors"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-demo/internal/scene"
	"scene-demo/internal/text"
)

type bakeFunc func(l *text.Label, font rl.Font, prev *bakedLabel) (*bakedLabel, error)

// Renderer draws the registry's objects and labels through one camera.
// All methods must be called on the window thread.
type Renderer struct {
	Camera rl.Camera3D

	reg      *scene.Registry
	fonts    labelFonts
	baked    map[string]*bakedLabel
	quad     rl.Mesh
	quadMtl  rl.Material
	quadInit bool
	overlays []func()
	bake     bakeFunc
}

// NewRenderer returns a renderer for reg. GPU resources are created on the first Draw.
func NewRenderer(reg *scene.Registry, camera rl.Camera3D) *Renderer {
	return &Renderer{Camera: camera, reg: reg, baked: make(map[string]*bakedLabel), bake: bake}
}

// AddOverlay registers a 2D draw call that runs after the 3D pass (e.g. debug text).
func (r *Renderer) AddOverlay(fn func()) {
	r.overlays = append(r.overlays, fn)
}

// Draw renders one frame: label textures are (re)baked when their layout changed, then
// the 3D pass, then overlays. Must run between BeginDrawing and EndDrawing.
// Labels that fail to bake are skipped and their errors returned after the frame is drawn.
func (r *Renderer) Draw() error {
	err := r.bakeLabels(func(name string) rl.Font { return r.fonts.get(name) })

	r.draw3D()

	for _, fn := range r.overlays {
		fn()
	}
	return err
}

func (r *Renderer) bakeLabels(font func(name string) rl.Font) error {
	var errs []error
	for _, l := range r.reg.Labels() {
		b, err := r.bake(l, font(l.Font), r.baked[l.ID])
		if err != nil {
			errs = append(errs, err)
		}
		r.baked[l.ID] = b
	}
	return errors.Join(errs...)
}

func (r *Renderer) draw3D() {
	rl.BeginMode3D(r.Camera)
	defer rl.EndMode3D()

	for _, o := range r.reg.Objects() {
		drawObject(o)
	}

	r.ensureQuad()
	rl.DisableBackfaceCulling()
	defer rl.EnableBackfaceCulling()
	for _, l := range r.reg.Labels() {
		b := r.baked[l.ID]
		if b == nil || b.tex.ID == 0 {
			continue
		}
		rl.SetMaterialTexture(&r.quadMtl, rl.MapAlbedo, b.tex)
		// Unit XZ quad scaled to the label size, stood up to face +Z, then placed by the label transform.
		local := rl.MatrixMultiply(rl.MatrixScale(b.width, 1, b.height), rl.MatrixRotateX(math.Pi/2))
		world := rl.MatrixMultiply(local, matrix(l.Transform.Matrix()))
		rl.DrawMesh(r.quad, r.quadMtl, world)
	}
}

func (r *Renderer) ensureQuad() {
	if r.quadInit {
		return
	}
	r.quad = rl.GenMeshPlane(1, 1, 1, 1)
	r.quadMtl = rl.LoadMaterialDefault()
	if albedo := r.quadMtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.White
	}
	r.quadInit = true
}
