// Package field renders the particle network: a set of drifting points joined
// by lines when close to each other or to the pointer.
//
// A Field is driven by its host loop: Resize on every surface resize, Step once
// per tick, DrawFrame once per repaint. It is not safe for concurrent use.
package field

import (
	"image/color"
	"math/rand/v2"
	"time"
)

// FrameDuration is the tick length velocities are expressed in.
const FrameDuration = time.Second / 60

// GridThreshold is the particle count above which the pair pass switches from
// brute force to a bucket grid.
const GridThreshold = 400

var (
	// Gray is the colour of particles, lines and the pointer node.
	Gray = color.RGBA{R: 80, G: 80, B: 80, A: 255}

	particleAlpha    = 0.8
	pointerNodeAlpha = 0.6
)

type pointer struct {
	x, y float64
	set  bool
}

// Field owns the particle set, the active tier settings and the pointer.
type Field struct {
	rng *rand.Rand

	width, height float64
	tier          Tier
	particles     []Particle
	ptr           pointer

	grid *grid
}

func New(rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return &Field{
		rng:  rng,
		tier: Tiers[len(Tiers)-1],
		grid: newGrid(),
	}
}

// Resize selects the tier for width and rebuilds the whole particle set inside
// the new bounds. Non-positive sizes are ignored.
func (f *Field) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	f.width, f.height = width, height
	f.tier = SelectTier(width)

	f.grid = newGrid()

	s := f.tier.Settings
	n := s.ParticleCount(width, height)
	f.particles = make([]Particle, n)
	for i := range f.particles {
		f.particles[i] = newParticle(f.rng, width, height, s)
	}
}

// Step advances every particle by dt. A non-positive dt counts as one frame.
func (f *Field) Step(dt time.Duration) {
	scale := 1.0
	if dt > 0 {
		scale = float64(dt) / float64(FrameDuration)
	}
	for i := range f.particles {
		f.particles[i].advance(scale, f.width, f.height)
	}
}

// SetPointer records the pointer position in surface coordinates.
func (f *Field) SetPointer(x, y float64) {
	f.ptr = pointer{x: x, y: y, set: true}
}

// ClearPointer marks the pointer absent.
func (f *Field) ClearPointer() {
	f.ptr = pointer{}
}

// Pointer reports the pointer position and whether it is present.
func (f *Field) Pointer() (x, y float64, ok bool) {
	return f.ptr.x, f.ptr.y, f.ptr.set
}

func (f *Field) Size() (width, height float64) { return f.width, f.height }

func (f *Field) Tier() Tier { return f.tier }

func (f *Field) Settings() Settings { return f.tier.Settings }

// Particles exposes the live particle slice. Callers may reposition
// particles; the slice is replaced on the next Resize.
func (f *Field) Particles() []Particle { return f.particles }
