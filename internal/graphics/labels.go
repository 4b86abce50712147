package graphics

import (
	"errors"
	"fmt"
	"os"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-demo/internal/fonts"
	"scene-demo/internal/text"
)

const (
	// pixelsPerUnit is the bake resolution of label textures.
	pixelsPerUnit = 64
	// glyphSpacing is extra space between glyphs as a fraction of the font size.
	glyphSpacing = 0.1
	bakePadding  = 4
)

// ErrBake is returned when a label's text could not be rendered into a texture.
var ErrBake = errors.New("label bake failed")

// bakedLabel is a label's text rendered once into a texture and drawn as a quad.
type bakedLabel struct {
	version uint64
	tex     rl.Texture2D
	width   float32 // world units
	height  float32
}

// fontMeasurer measures with a loaded raylib font, in world units.
type fontMeasurer struct {
	font rl.Font
}

func (m fontMeasurer) Measure(s string, size float32) float32 {
	px := size * pixelsPerUnit
	return rl.MeasureTextEx(m.font, s, px, px*glyphSpacing).X / pixelsPerUnit
}

// labelFonts caches fonts by the name given in a label config.
type labelFonts struct {
	byName map[string]rl.Font
}

// get returns the font for name. Empty names and fonts that cannot be found or loaded
// use raylib's default font.
func (f *labelFonts) get(name string) rl.Font {
	if name == "" {
		return rl.GetFontDefault()
	}
	if font, ok := f.byName[name]; ok {
		return font
	}
	if f.byName == nil {
		f.byName = make(map[string]rl.Font)
	}
	path := name
	if _, err := os.Stat(path); err != nil {
		if found, err := fonts.Locate(name); err == nil {
			path = found
		} else {
			path = ""
		}
	}
	font := rl.GetFontDefault()
	if path != "" {
		if loaded := rl.LoadFont(path); loaded.Texture.ID != 0 {
			rl.SetTextureFilter(loaded.Texture, rl.FilterBilinear)
			font = loaded
		}
	}
	f.byName[name] = font
	return font
}

// bake renders the label layout into a texture. Must be called outside BeginMode3D.
// A failed bake is still returned, without a texture, so the same version is not
// retried every frame.
func bake(l *text.Label, font rl.Font, prev *bakedLabel) (*bakedLabel, error) {
	lay := l.Layout(fontMeasurer{font: font})
	if prev != nil && prev.version == l.Version {
		return prev, nil
	}
	if prev != nil {
		rl.UnloadTexture(prev.tex)
	}
	b := &bakedLabel{version: l.Version, width: lay.Width, height: lay.Height}
	w := int32(math32.Ceil(lay.Width*pixelsPerUnit)) + 2*bakePadding
	h := int32(math32.Ceil(lay.Height*pixelsPerUnit)) + 2*bakePadding
	if len(lay.Lines) == 0 || w <= 2*bakePadding {
		return b, nil
	}

	px := l.FontSize * pixelsPerUnit
	target := rl.LoadRenderTexture(w, h)
	if target.ID == 0 {
		return b, fmt.Errorf("label %q: %dx%d render texture: %w", l.ID, w, h, ErrBake)
	}
	rl.BeginTextureMode(target)
	rl.ClearBackground(rl.Blank)
	tint := color(l.Color)
	for i, line := range lay.Lines {
		// centered horizontally, like a text mesh anchored at its middle
		x := float32(bakePadding) + (lay.Width-lay.Widths[i])*pixelsPerUnit/2
		y := float32(bakePadding) + float32(i)*lay.LineHeight*pixelsPerUnit
		rl.DrawTextEx(font, line, rl.NewVector2(x, y), px, px*glyphSpacing, tint)
	}
	rl.EndTextureMode()

	// Render textures come back bottom-up; flip once so the quad can use plain UVs.
	img := rl.LoadImageFromTexture(target.Texture)
	rl.ImageFlipVertical(img)
	b.tex = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.UnloadRenderTexture(target)
	if b.tex.ID == 0 {
		return b, fmt.Errorf("label %q: texture upload: %w", l.ID, ErrBake)
	}
	rl.SetTextureFilter(b.tex, rl.FilterBilinear)
	b.width = float32(w) / pixelsPerUnit
	b.height = float32(h) / pixelsPerUnit
	return b, nil
}
