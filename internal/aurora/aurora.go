// Package aurora models the ambient background: slowly rising motes, bursts
// where the user clicks, and aurora layers that drift with the pointer.
//
// Positions are kept as fractions of the surface so a resize needs no
// rescaling. The drawing side lives with the host.
package aurora

import (
	"image/color"
	"math/rand/v2"
	"time"
)

const (
	BurstCount    = 5
	BurstDuration = 2 * time.Second
	BurstStagger  = 100 * time.Millisecond
	BurstSpread   = 0.10
	SpawnStagger  = 200 * time.Millisecond
	LayerShift    = 10.0
	PulseShift    = 50.0
	BurstRise1    = 20.0
	BurstRise2    = 50.0
)

// Palette holds the mote colours.
var Palette = []color.NRGBA{
	{R: 255, G: 255, B: 255, A: 153},
	{R: 100, G: 200, B: 255, A: 102},
	{R: 255, G: 100, B: 200, A: 102},
	{R: 150, G: 255, B: 100, A: 77},
	{R: 255, G: 200, B: 100, A: 77},
}

var burstColor = color.NRGBA{R: 255, G: 255, B: 255, A: 204}

// Mote is one floating particle of light.
type Mote struct {
	X, Y     float64 // fractions of the surface; Y is used by bursts only
	Size     float64 // px
	Color    color.NRGBA
	Delay    time.Duration
	Duration time.Duration
	Age      time.Duration
	Burst    bool
}

// Started reports whether the mote is past its delay.
func (m Mote) Started() bool { return m.Age >= m.Delay }

// Progress is the animation progress in [0, 1].
func (m Mote) Progress() float64 {
	if m.Age <= m.Delay || m.Duration <= 0 {
		return 0
	}
	p := float64(m.Age-m.Delay) / float64(m.Duration)
	if p > 1 {
		return 1
	}
	return p
}

func (m Mote) done() bool { return m.Age >= m.Delay+m.Duration }

// Look is how a mote should be drawn at its current progress.
type Look struct {
	X, Y    float64 // fractions for drifting motes; Y is the fraction of the surface height
	RiseY   float64 // px lifted above Y, bursts only
	Scale   float64
	Opacity float64
}

// Look evaluates the mote's keyframes. Drifting motes rise from the bottom to
// the top, fading in over the first and out over the last tenth; bursts
// follow scale 0 to 1.5 to 0.5 and rise 0 to 20 to 50 px while fading out.
func (m Mote) Look() Look {
	p := m.Progress()
	if m.Burst {
		if p < 0.5 {
			k := p / 0.5
			return Look{X: m.X, Y: m.Y, Scale: 1.5 * k, RiseY: BurstRise1 * k, Opacity: 1 - 0.3*k}
		}
		k := (p - 0.5) / 0.5
		return Look{
			X:       m.X,
			Y:       m.Y,
			Scale:   1.5 - k,
			RiseY:   BurstRise1 + (BurstRise2-BurstRise1)*k,
			Opacity: 0.7 * (1 - k),
		}
	}

	opacity := 1.0
	switch {
	case p < 0.1:
		opacity = p / 0.1
	case p > 0.9:
		opacity = (1 - p) / 0.1
	}
	return Look{X: m.X, Y: 1 - p, Scale: 1, Opacity: opacity}
}

type pendingSpawn struct {
	at time.Duration
}

// Effect is the whole aurora state.
type Effect struct {
	rng *rand.Rand

	clock     time.Duration
	interval  time.Duration
	nextBatch time.Duration
	pending   []pendingSpawn

	motes []Mote

	pointerX, pointerY float64
	level              float64
}

// New starts an effect with one batch queued immediately and the repeat
// interval picked once in [3s, 5s).
func New(rng *rand.Rand) *Effect {
	e := &Effect{
		rng:      rng,
		pointerX: 0.5,
		pointerY: 0.5,
	}
	e.interval = 3*time.Second + time.Duration(rng.Float64()*float64(2*time.Second))
	e.queueBatch()
	e.nextBatch = e.interval
	return e
}

// queueBatch schedules 1-3 motes, 200ms apart.
func (e *Effect) queueBatch() {
	n := 1 + e.rng.IntN(3)
	for i := 0; i < n; i++ {
		e.pending = append(e.pending, pendingSpawn{at: e.clock + time.Duration(i)*SpawnStagger})
	}
}

func (e *Effect) newMote() Mote {
	return Mote{
		X:        e.rng.Float64(),
		Size:     2 + e.rng.Float64()*4,
		Color:    Palette[e.rng.IntN(len(Palette))],
		Duration: 15*time.Second + time.Duration(e.rng.Float64()*float64(10*time.Second)),
		Delay:    time.Duration(e.rng.Float64() * float64(5*time.Second)),
	}
}

// Update advances every mote, spawns due motes and drops finished ones.
func (e *Effect) Update(dt time.Duration) {
	e.clock += dt

	for e.clock >= e.nextBatch {
		e.queueBatch()
		e.nextBatch += e.interval
	}

	kept := e.pending[:0]
	for _, p := range e.pending {
		if e.clock >= p.at {
			e.motes = append(e.motes, e.newMote())
			continue
		}
		kept = append(kept, p)
	}
	e.pending = kept

	live := e.motes[:0]
	for _, m := range e.motes {
		m.Age += dt
		if !m.done() {
			live = append(live, m)
		}
	}
	e.motes = live
}

// Burst drops five motes around the click point, given as surface fractions.
func (e *Effect) Burst(xFrac, yFrac float64) {
	for i := 0; i < BurstCount; i++ {
		dx := (e.rng.Float64() - 0.5) * BurstSpread
		dy := (e.rng.Float64() - 0.5) * BurstSpread
		e.motes = append(e.motes, Mote{
			X:        clamp01(xFrac + dx),
			Y:        clamp01(yFrac + dy),
			Size:     3 + e.rng.Float64()*3,
			Color:    burstColor,
			Delay:    time.Duration(i) * BurstStagger,
			Duration: BurstDuration,
			Burst:    true,
		})
	}
}

// Resize scatters every mote, bursts included, to a new horizontal position.
func (e *Effect) Resize() {
	for i := range e.motes {
		e.motes[i].X = e.rng.Float64()
	}
}

// Pointer records the pointer as surface fractions.
func (e *Effect) Pointer(xFrac, yFrac float64) {
	e.pointerX, e.pointerY = xFrac, yFrac
}

// SetLevel feeds the soundtrack energy in [0, 1] into the pulse.
func (e *Effect) SetLevel(level float64) {
	e.level = clamp01(level)
}

func (e *Effect) Motes() []Mote { return e.motes }

// LayerOffset is the parallax shift in px of layer i.
func (e *Effect) LayerOffset(i int) (dx, dy float64) {
	k := LayerShift * float64(i+1)
	return (e.pointerX - 0.5) * k, (e.pointerY - 0.5) * k
}

// Pulse is the offset in px and the scale of the central glow.
func (e *Effect) Pulse() (dx, dy, scale float64) {
	return (e.pointerX - 0.5) * PulseShift,
		(e.pointerY - 0.5) * PulseShift,
		0.8 + e.pointerX*0.4 + e.level*0.5
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
