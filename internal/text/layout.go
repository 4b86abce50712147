package text

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// lineSpacing is the line advance as a multiple of the font size.
const lineSpacing = 1.2

// Measurer returns the advance width of s when set at the given size.
// Units are whatever size is expressed in (world units for labels).
type Measurer interface {
	Measure(s string, size float32) float32
}

// FaceMeasurer measures with an x/image font face, scaling its metrics from the
// face's native height to the requested size.
type FaceMeasurer struct {
	Face font.Face
}

// DefaultMeasurer uses the 7x13 bitmap face; good enough for layout when no real font is loaded.
func DefaultMeasurer() FaceMeasurer {
	return FaceMeasurer{Face: basicfont.Face7x13}
}

// Measure implements Measurer.
func (f FaceMeasurer) Measure(s string, size float32) float32 {
	face := f.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	native := float32(face.Metrics().Height) / 64
	if native <= 0 {
		return 0
	}
	adv := float32(font.MeasureString(face, s)) / 64
	return adv * size / native
}

// Layout is the result of laying out a label: one entry per visual line.
type Layout struct {
	Lines      []string
	Widths     []float32
	Width      float32
	Height     float32
	LineHeight float32
}

func layout(s string, size, maxWidth float32, m Measurer) Layout {
	out := Layout{LineHeight: size * lineSpacing}
	for _, para := range strings.Split(s, "\n") {
		for _, line := range wrap(para, size, maxWidth, m) {
			w := m.Measure(line, size)
			out.Lines = append(out.Lines, line)
			out.Widths = append(out.Widths, w)
			if w > out.Width {
				out.Width = w
			}
		}
	}
	if n := len(out.Lines); n > 0 {
		out.Height = float32(n-1)*out.LineHeight + size
	}
	return out
}

// wrap breaks para at spaces so each line fits maxWidth. A single word wider than
// maxWidth stays on its own line.
func wrap(para string, size, maxWidth float32, m Measurer) []string {
	if maxWidth <= 0 {
		return []string{para}
	}
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	cur := words[0]
	for _, w := range words[1:] {
		candidate := cur + " " + w
		if m.Measure(candidate, size) <= maxWidth {
			cur = candidate
			continue
		}
		lines = append(lines, cur)
		cur = w
	}
	return append(lines, cur)
}
