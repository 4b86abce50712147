package text

import (
	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"

	"scene-demo/internal/transform"
)

// DefaultFontSize is the label height in world units when Config.FontSize is zero.
const DefaultFontSize = 1.0

// DefaultColor is used when Config.Color is unset.
var DefaultColor = colorful.Color{R: 1, G: 1, B: 1}

// Config describes a label at creation. FontSize and Color are optional.
type Config struct {
	ID       string
	Text     string
	FontSize float32
	Color    *colorful.Color
	Position transform.Vec3
	// MaxWidth wraps lines wider than this many world units; 0 disables wrapping.
	MaxWidth float32
	// Font is a font file path; empty uses the renderer's default font.
	Font string
}

// Label is a floating text element addressed by its string id.
type Label struct {
	ID        string
	Text      string
	FontSize  float32
	Color     colorful.Color
	MaxWidth  float32
	Font      string
	Transform transform.Transform

	layout Layout
	dirty  bool
	// Version increases every time the layout is recomputed; renderers use it to rebake.
	Version uint64
}

// New creates a label from cfg. An empty ID gets a random UUID.
func New(cfg Config) *Label {
	id := cfg.ID
	if id == "" {
		id = uuid.NewString()
	}
	size := cfg.FontSize
	if size <= 0 {
		size = DefaultFontSize
	}
	col := DefaultColor
	if cfg.Color != nil {
		col = *cfg.Color
	}
	return &Label{
		ID:        id,
		Text:      cfg.Text,
		FontSize:  size,
		Color:     col,
		MaxWidth:  cfg.MaxWidth,
		Font:      cfg.Font,
		Transform: transform.At(cfg.Position),
		dirty:     true,
	}
}

// SetText replaces the text; the next Layout call recomputes glyph lines.
func (l *Label) SetText(s string) {
	if s == l.Text {
		return
	}
	l.Text = s
	l.dirty = true
}

// Layout lays the text out with m if it changed since the last call, and returns the result.
func (l *Label) Layout(m Measurer) Layout {
	if l.dirty {
		l.layout = layout(l.Text, l.FontSize, l.MaxWidth, m)
		l.dirty = false
		l.Version++
	}
	return l.layout
}
