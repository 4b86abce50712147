package graphics

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-demo/internal/scene"
)

var errInvalidModel = errors.New("model has no meshes")

// UploadModel loads a model file and its skeletal animations onto the GPU.
// It satisfies assets.Uploader and must run on the window thread.
func UploadModel(path string) (any, error) {
	m := rl.LoadModel(path)
	if !rl.IsModelValid(m) {
		return nil, fmt.Errorf("%s: %w", path, errInvalidModel)
	}
	return &modelHandle{model: m, anims: rl.LoadModelAnimations(path)}, nil
}

// AttachModel stores an uploaded handle on o and sets up playback of clip.
// A clip index outside the loaded animations leaves the model in its bind pose.
func AttachModel(o *scene.Object, handle any, clip int) error {
	h, ok := handle.(*modelHandle)
	if !ok {
		return fmt.Errorf("attach %s: unexpected handle %T", o.Name, handle)
	}
	o.Handle = h
	if clip >= 0 && clip < len(h.anims) {
		o.Playback = &scene.Playback{Clip: clip, FrameCount: int(h.anims[clip].FrameCount)}
	}
	return nil
}

// ClipCount returns how many animations an uploaded handle carries.
func ClipCount(handle any) int {
	if h, ok := handle.(*modelHandle); ok {
		return len(h.anims)
	}
	return 0
}
