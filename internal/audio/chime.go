package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

const (
	chimeBase     = 523.25 // C5
	chimeDuration = 60 * time.Millisecond
)

// pentatonic steps in semitones
var chimeSteps = []int{0, 2, 4, 7, 9, 12, 14}

// blip is a short sine tone with a quadratic decay.
type blip struct {
	sr   beep.SampleRate
	freq float64
	pos  int
	n    int
}

func newBlip(sr beep.SampleRate, freq float64, d time.Duration) *blip {
	return &blip{sr: sr, freq: freq, n: sr.N(d)}
}

func (b *blip) Stream(samples [][2]float64) (int, bool) {
	if b.pos >= b.n {
		return 0, false
	}
	i := 0
	for ; i < len(samples) && b.pos < b.n; i++ {
		t := float64(b.pos) / float64(b.sr)
		env := 1 - float64(b.pos)/float64(b.n)
		v := math.Sin(2*math.Pi*b.freq*t) * env * env
		samples[i][0], samples[i][1] = v, v
		b.pos++
	}
	return i, true
}

func (b *blip) Err() error { return nil }

// chimeFreq climbs the pentatonic scale with the section index.
func chimeFreq(step int) float64 {
	if step < 0 {
		step = 0
	}
	semis := chimeSteps[step%len(chimeSteps)] + 12*(step/len(chimeSteps))
	return chimeBase * math.Pow(2, float64(semis)/12)
}
