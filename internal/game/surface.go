package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ksandeleon/portfolio-field/internal/field"
)

// layerSurface is the field's own drawing layer. It is cleared every frame
// and composited over the page, so the page underneath is never erased.
type layerSurface struct {
	img *ebiten.Image
}

func newLayerSurface(w, h int) *layerSurface {
	return &layerSurface{img: ebiten.NewImage(w, h)}
}

func (s *layerSurface) Clear() { s.img.Clear() }

func (s *layerSurface) FillCircle(x, y, r float64, p field.Paint) {
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(r), paintColor(p), true)
}

func (s *layerSurface) StrokeLine(x0, y0, x1, y1 float64, p field.Paint) {
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(p.Width), paintColor(p), true)
}

func (s *layerSurface) dispose() {
	if s != nil && s.img != nil {
		s.img.Deallocate()
	}
}

func paintColor(p field.Paint) color.NRGBA {
	return color.NRGBA{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: uint8(clamp01(p.Alpha) * 255)}
}
