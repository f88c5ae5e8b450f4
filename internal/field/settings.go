package field

import "math"

// Settings is the parameter bundle for one responsive tier.
type Settings struct {
	Density   float64 // surface pixels per particle
	MinRadius float64
	MaxRadius float64
	Speed     float64

	MaxDistance float64
	LineWidth   float64
	LineOpacity float64

	MouseRadius      float64
	MouseLineWidth   float64
	MouseLineOpacity float64

	PointerNodeRadius float64
}

// Tier pairs a width breakpoint with its settings.
type Tier struct {
	Name     string
	MaxWidth float64
	Settings Settings
}

// Tiers is resolved by first match on width <= MaxWidth; the last entry is
// the fallback.
var Tiers = []Tier{
	{
		Name:     "very-small",
		MaxWidth: 480,
		Settings: Settings{
			Density:           16000,
			MinRadius:         2.5,
			MaxRadius:         4,
			Speed:             0.35,
			MaxDistance:       120,
			LineWidth:         1,
			LineOpacity:       0.35,
			MouseRadius:       120,
			MouseLineWidth:    1.2,
			MouseLineOpacity:  0.6,
			PointerNodeRadius: 2,
		},
	},
	{
		Name:     "mobile",
		MaxWidth: 768,
		Settings: Settings{
			Density:           12000,
			MinRadius:         3,
			MaxRadius:         5,
			Speed:             0.45,
			MaxDistance:       140,
			LineWidth:         1.2,
			LineOpacity:       0.4,
			MouseRadius:       140,
			MouseLineWidth:    1.5,
			MouseLineOpacity:  0.7,
			PointerNodeRadius: 2.5,
		},
	},
	{
		Name:     "desktop",
		MaxWidth: math.Inf(1),
		Settings: Settings{
			Density:           12000,
			MinRadius:         2,
			MaxRadius:         4,
			Speed:             0.5,
			MaxDistance:       150,
			LineWidth:         1,
			LineOpacity:       0.4,
			MouseRadius:       150,
			MouseLineWidth:    1.5,
			MouseLineOpacity:  0.7,
			PointerNodeRadius: 3,
		},
	},
}

// SelectTier returns the first tier whose breakpoint admits width.
func SelectTier(width float64) Tier {
	for _, t := range Tiers {
		if width <= t.MaxWidth {
			return t
		}
	}
	return Tiers[len(Tiers)-1]
}

// ParticleCount is floor(width*height/density).
func (s Settings) ParticleCount(width, height float64) int {
	if s.Density <= 0 || width <= 0 || height <= 0 {
		return 0
	}
	return int(math.Floor(width * height / s.Density))
}
