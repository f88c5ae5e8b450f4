package field

import (
	"image/color"
	"math"
)

// Paint describes how a shape is drawn. Alpha multiplies Color's alpha and is
// kept as a float so callers can convert at their own precision.
type Paint struct {
	Color color.RGBA
	Alpha float64
	Width float64
}

// Surface is the 2D target the field draws onto.
type Surface interface {
	Clear()
	FillCircle(x, y, r float64, p Paint)
	StrokeLine(x0, y0, x1, y1 float64, p Paint)
}

// DrawFrame clears s and draws particles, peer connections, pointer
// connections and the pointer node, all scaled by opacity.
func (f *Field) DrawFrame(s Surface, opacity float64) {
	s.Clear()
	set := f.tier.Settings

	dot := Paint{Color: Gray, Alpha: opacity * particleAlpha}
	for _, p := range f.particles {
		s.FillCircle(p.X, p.Y, p.Radius, dot)
	}

	f.forEachPair(set.MaxDistance, func(a, b *Particle, d float64) {
		s.StrokeLine(a.X, a.Y, b.X, b.Y, Paint{
			Color: Gray,
			Alpha: (1 - d/set.MaxDistance) * opacity * set.LineOpacity,
			Width: set.LineWidth,
		})
	})

	if !f.ptr.set {
		return
	}
	for _, p := range f.particles {
		d := math.Hypot(p.X-f.ptr.x, p.Y-f.ptr.y)
		if d >= set.MouseRadius {
			continue
		}
		s.StrokeLine(p.X, p.Y, f.ptr.x, f.ptr.y, Paint{
			Color: Gray,
			Alpha: (1 - d/set.MouseRadius) * opacity * set.MouseLineOpacity,
			Width: set.MouseLineWidth,
		})
	}
	s.FillCircle(f.ptr.x, f.ptr.y, set.PointerNodeRadius, Paint{Color: Gray, Alpha: opacity * pointerNodeAlpha})
}

// forEachPair calls fn once per unordered particle pair closer than maxDist.
func (f *Field) forEachPair(maxDist float64, fn func(a, b *Particle, d float64)) {
	if len(f.particles) > GridThreshold {
		f.grid.forEachPair(f.particles, maxDist, fn)
		return
	}
	ps := f.particles
	for i := range ps {
		for j := i + 1; j < len(ps); j++ {
			d := math.Hypot(ps[i].X-ps[j].X, ps[i].Y-ps[j].Y)
			if d < maxDist {
				fn(&ps[i], &ps[j], d)
			}
		}
	}
}
