package field

import "math/rand/v2"

// Particle is a drifting point. Radius is fixed at creation.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

func newParticle(rng *rand.Rand, width, height float64, s Settings) Particle {
	return Particle{
		X:      rng.Float64() * width,
		Y:      rng.Float64() * height,
		VX:     (rng.Float64() - 0.5) * s.Speed,
		VY:     (rng.Float64() - 0.5) * s.Speed,
		Radius: rng.Float64()*(s.MaxRadius-s.MinRadius) + s.MinRadius,
	}
}

// advance moves the particle by scale frames worth of velocity. On any axis
// whose coordinate ended up outside [0, extent] the velocity flips and the
// overshoot is mirrored back inside, so a particle never stays out for more
// than the step that carried it there.
func (p *Particle) advance(scale, width, height float64) {
	p.X += p.VX * scale
	p.Y += p.VY * scale

	if p.X < 0 || p.X > width {
		p.VX = -p.VX
		p.X = reflect(p.X, width)
	}
	if p.Y < 0 || p.Y > height {
		p.VY = -p.VY
		p.Y = reflect(p.Y, height)
	}
}

// reflect mirrors v across the violated edge of [0, extent].
func reflect(v, extent float64) float64 {
	if v < 0 {
		v = -v
	} else {
		v = 2*extent - v
	}
	return min(max(v, 0), extent)
}
