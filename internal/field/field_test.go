package field

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"
)

func newTestField() *Field {
	return New(rand.New(rand.NewPCG(1, 2)))
}

func TestSelectTier(t *testing.T) {
	tests := []struct {
		width float64
		want  string
	}{
		{320, "very-small"},
		{480, "very-small"},
		{481, "mobile"},
		{768, "mobile"},
		{769, "desktop"},
		{1920, "desktop"},
	}
	for _, tt := range tests {
		if got := SelectTier(tt.width).Name; got != tt.want {
			t.Errorf("SelectTier(%v) = %q, want %q", tt.width, got, tt.want)
		}
	}
}

func TestResizeParticleCount(t *testing.T) {
	sizes := []struct{ w, h float64 }{
		{800, 600},
		{400, 300},
		{700, 900},
		{1920, 1080},
		{10, 10},
	}
	for _, sz := range sizes {
		f := newTestField()
		f.Resize(sz.w, sz.h)

		want := int(math.Floor(sz.w * sz.h / SelectTier(sz.w).Settings.Density))
		if got := len(f.Particles()); got != want {
			t.Errorf("Resize(%v, %v): %d particles, want %d", sz.w, sz.h, got, want)
		}
	}
}

func TestResizeDesktopScenario(t *testing.T) {
	f := newTestField()
	f.Resize(800, 600)

	if f.Tier().Name != "desktop" {
		t.Fatalf("tier = %q, want desktop", f.Tier().Name)
	}
	if n := len(f.Particles()); n != 40 {
		t.Fatalf("expected 40 particles, got %d", n)
	}
}

func TestResizeRebuildsWithinBounds(t *testing.T) {
	f := newTestField()
	f.Resize(800, 600)
	old := f.Particles()
	for i := range old {
		old[i].X = 799
	}

	f.Resize(400, 300)

	ps := f.Particles()
	want := SelectTier(400).Settings.ParticleCount(400, 300)
	if len(ps) != want {
		t.Fatalf("expected %d particles after resize, got %d", want, len(ps))
	}
	s := f.Settings()
	for i, p := range ps {
		if p.X < 0 || p.X >= 400 || p.Y < 0 || p.Y >= 300 {
			t.Errorf("particle %d at (%v, %v) outside 400x300", i, p.X, p.Y)
		}
		if p.Radius < s.MinRadius || p.Radius >= s.MaxRadius {
			t.Errorf("particle %d radius %v outside [%v, %v)", i, p.Radius, s.MinRadius, s.MaxRadius)
		}
		if math.Abs(p.VX) > s.Speed/2 || math.Abs(p.VY) > s.Speed/2 {
			t.Errorf("particle %d velocity (%v, %v) exceeds speed %v", i, p.VX, p.VY, s.Speed)
		}
	}
	if len(old) > 0 && len(ps) > 0 && &old[0] == &ps[0] {
		t.Error("expected a fresh particle slice after resize")
	}
}

func TestResizeIgnoresNonPositive(t *testing.T) {
	f := newTestField()
	f.Resize(800, 600)
	f.Resize(0, 600)
	f.Resize(800, -1)

	if w, h := f.Size(); w != 800 || h != 600 {
		t.Errorf("size = %vx%v, want 800x600", w, h)
	}
	if len(f.Particles()) != 40 {
		t.Errorf("expected particles to survive an ignored resize, got %d", len(f.Particles()))
	}
}

func TestStepMovesByVelocity(t *testing.T) {
	f := newTestField()
	f.Resize(800, 600)
	f.particles = []Particle{{X: 100, Y: 100, VX: 0.2, VY: -0.1, Radius: 2}}

	f.Step(FrameDuration)

	p := f.Particles()[0]
	if math.Abs(p.X-100.2) > 1e-9 || math.Abs(p.Y-99.9) > 1e-9 {
		t.Errorf("position = (%v, %v), want (100.2, 99.9)", p.X, p.Y)
	}

	f.Step(0)
	p = f.Particles()[0]
	if math.Abs(p.X-100.4) > 1e-9 {
		t.Errorf("zero dt should count as one frame, x = %v", p.X)
	}
}

func TestStepScalesWithElapsedTime(t *testing.T) {
	f := newTestField()
	f.Resize(800, 600)
	f.particles = []Particle{{X: 100, Y: 100, VX: 0.5, VY: 0.25}}

	f.Step(2 * FrameDuration)

	p := f.Particles()[0]
	if math.Abs(p.X-101) > 1e-9 || math.Abs(p.Y-100.5) > 1e-9 {
		t.Errorf("position = (%v, %v), want (101, 100.5)", p.X, p.Y)
	}
}

func TestStepBounce(t *testing.T) {
	tests := []struct {
		name  string
		in    Particle
		flipX bool
		flipY bool
	}{
		{"inside", Particle{X: 50, Y: 50, VX: 0.3, VY: 0.3}, false, false},
		{"crosses left", Particle{X: 0.1, Y: 50, VX: -0.3, VY: 0.1}, true, false},
		{"crosses right", Particle{X: 99.9, Y: 50, VX: 0.3, VY: 0.1}, true, false},
		{"crosses top", Particle{X: 50, Y: 0.1, VX: 0.1, VY: -0.3}, false, true},
		{"crosses bottom", Particle{X: 50, Y: 99.9, VX: 0.1, VY: 0.3}, false, true},
		{"corner", Particle{X: 99.9, Y: 0.1, VX: 0.3, VY: -0.3}, true, true},
		{"already outside", Particle{X: -1, Y: 50, VX: 0.1, VY: 0}, true, false},
		{"on edge", Particle{X: 100, Y: 50, VX: 0, VY: 0}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestField()
			f.Resize(100, 100)
			f.particles = []Particle{tt.in}

			f.Step(FrameDuration)

			got := f.Particles()[0]
			if flipped := got.VX == -tt.in.VX && tt.in.VX != 0; flipped != tt.flipX {
				t.Errorf("vx %v -> %v, flip = %v, want %v", tt.in.VX, got.VX, flipped, tt.flipX)
			}
			if flipped := got.VY == -tt.in.VY && tt.in.VY != 0; flipped != tt.flipY {
				t.Errorf("vy %v -> %v, flip = %v, want %v", tt.in.VY, got.VY, flipped, tt.flipY)
			}
		})
	}
}

func TestStepKeepsParticlesNearBounds(t *testing.T) {
	f := newTestField()
	f.Resize(640, 480)
	s := f.Settings()

	for i := 0; i < 5000; i++ {
		f.Step(FrameDuration)
	}

	slack := s.Speed
	for i, p := range f.Particles() {
		if p.X < -slack || p.X > 640+slack || p.Y < -slack || p.Y > 480+slack {
			t.Errorf("particle %d escaped to (%v, %v)", i, p.X, p.Y)
		}
	}
}

func TestStepWithVaryingElapsedTimeStaysInside(t *testing.T) {
	tests := []struct {
		name  string
		start Particle
		steps []time.Duration // cycled
	}{
		{"long frame then short", Particle{X: 0.5, Y: 50, VX: -0.25}, []time.Duration{100 * time.Millisecond, FrameDuration, FrameDuration}},
		{"jitter at left edge", Particle{X: 0.01, Y: 50, VX: -0.3}, []time.Duration{17 * time.Millisecond, 16 * time.Millisecond}},
		{"jitter at bottom edge", Particle{X: 50, Y: 99.99, VY: 0.4}, []time.Duration{16 * time.Millisecond, 17 * time.Millisecond}},
		{"overshoot past far edge", Particle{X: 99, Y: 1, VX: 30, VY: -30}, []time.Duration{100 * time.Millisecond}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestField()
			f.Resize(100, 100)
			f.particles = []Particle{tt.start}

			for i := 0; i < 600; i++ {
				f.Step(tt.steps[i%len(tt.steps)])
				p := f.Particles()[0]
				if p.X < 0 || p.X > 100 || p.Y < 0 || p.Y > 100 {
					t.Fatalf("step %d: particle outside at (%v, %v)", i, p.X, p.Y)
				}
			}
		})
	}
}

func TestStepReflectsOvershoot(t *testing.T) {
	f := newTestField()
	f.Resize(100, 100)
	f.particles = []Particle{{X: 0.5, Y: 99.5, VX: -0.25, VY: 0.25}}

	f.Step(6 * FrameDuration) // 1.5 px on each axis

	p := f.Particles()[0]
	if math.Abs(p.X-1) > 1e-9 || math.Abs(p.Y-99) > 1e-9 {
		t.Errorf("position = (%v, %v), want (1, 99)", p.X, p.Y)
	}
	if p.VX != 0.25 || p.VY != -0.25 {
		t.Errorf("velocity = (%v, %v), want (0.25, -0.25)", p.VX, p.VY)
	}
}

func TestPointer(t *testing.T) {
	f := newTestField()
	if _, _, ok := f.Pointer(); ok {
		t.Fatal("pointer should start absent")
	}

	f.SetPointer(12, 34)
	x, y, ok := f.Pointer()
	if !ok || x != 12 || y != 34 {
		t.Errorf("Pointer() = (%v, %v, %v)", x, y, ok)
	}

	f.ClearPointer()
	if _, _, ok := f.Pointer(); ok {
		t.Error("pointer should be absent after ClearPointer")
	}
}
