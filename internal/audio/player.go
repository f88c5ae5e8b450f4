// Package audio plays the optional soundtrack, measures its loudness for the
// aurora pulse and sounds a chime when the page reaches a new section.
package audio

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/ncruces/zenity"

	"github.com/ksandeleon/portfolio-field/internal/config"
)

const (
	levelWindow     = 2048
	resampleQuality = 4
)

type track struct {
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	tap      *levelTap
	name     string
}

// Player owns the speaker. Every method is called from the game loop; the
// speaker goroutine only touches the level tap and the done channel.
type Player struct {
	rate        beep.SampleRate
	chimeVolume float64
	ready       bool

	current *track
	done    chan *track
	paused  bool
	level   float64
}

func NewPlayer(sampleRate int, chimeVolume float64) *Player {
	return &Player{
		rate:        beep.SampleRate(sampleRate),
		chimeVolume: chimeVolume,
		done:        make(chan *track, 1),
	}
}

// Init opens the speaker. The player stays silent if it fails.
func (p *Player) Init() error {
	if err := speaker.Init(p.rate, p.rate.N(time.Second/20)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	p.ready = true
	return nil
}

// OpenDialog asks for an audio file and plays it. Cancelling is not an error.
func (p *Player) OpenDialog() error {
	if !p.ready {
		return errors.New("audio is disabled")
	}
	filename, err := zenity.SelectFile(
		zenity.Title("Choose a soundtrack"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return p.Load(filename)
}

func decode(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext := strings.ToLower(filepath.Ext(f.Name())); ext {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("unsupported file type: %s", ext)
	}
}

// Load replaces whatever is playing with the file at path.
func (p *Player) Load(path string) error {
	if !p.ready {
		return errors.New("audio is disabled")
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	streamer, format, err := decode(f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	p.stop()

	var src beep.Streamer = streamer
	if format.SampleRate != p.rate {
		src = beep.Resample(resampleQuality, format.SampleRate, p.rate, streamer)
	}
	t := &track{
		file:     f,
		streamer: streamer,
		format:   format,
		tap:      newLevelTap(src, config.LevelRingSize),
		name:     filepath.Base(path),
	}
	t.ctrl = &beep.Ctrl{Streamer: t.tap}
	p.current = t
	p.paused = false

	log.Printf("[audio] playing %s", t.name)
	speaker.Play(beep.Seq(t.ctrl, beep.Callback(func() {
		select {
		case p.done <- t:
		default:
		}
	})))
	return nil
}

func (p *Player) TogglePause() {
	if p.current == nil {
		return
	}
	speaker.Lock()
	p.paused = !p.paused
	p.current.ctrl.Paused = p.paused
	speaker.Unlock()
}

func (p *Player) Paused() bool { return p.paused }

// HasTrack reports whether a soundtrack is loaded.
func (p *Player) HasTrack() bool { return p.current != nil }

// Update reaps a finished track and refreshes the smoothed level.
func (p *Player) Update() {
	select {
	case t := <-p.done:
		if t == p.current {
			p.close(t)
			p.current = nil
		}
	default:
	}

	target := 0.0
	if p.current != nil && !p.paused {
		target = rmsLevel(p.current.tap.snapshot(levelWindow))
	}
	p.level = config.SmoothingFactor*p.level + (1-config.SmoothingFactor)*target
}

// Level is the smoothed loudness in [0, 1].
func (p *Player) Level() float64 { return p.level }

// Progress reports the position and length of the current track.
func (p *Player) Progress() (name string, pos, length time.Duration, ok bool) {
	if p.current == nil {
		return "", 0, 0, false
	}
	t := p.current
	speaker.Lock()
	n, total := t.streamer.Position(), t.streamer.Len()
	speaker.Unlock()
	return t.name, t.format.SampleRate.D(n), t.format.SampleRate.D(total), true
}

// Seek moves the current track to frac of its length.
func (p *Player) Seek(frac float64) error {
	if p.current == nil {
		return nil
	}
	frac = min(max(frac, 0), 1)
	speaker.Lock()
	defer speaker.Unlock()
	total := p.current.streamer.Len()
	pos := min(int(frac*float64(total)), total-1)
	if err := p.current.streamer.Seek(max(pos, 0)); err != nil {
		return fmt.Errorf("seek %s: %w", p.current.name, err)
	}
	return nil
}

// Chime plays a short tone pitched by step.
func (p *Player) Chime(step int) {
	if !p.ready {
		return
	}
	speaker.Play(&effects.Volume{
		Streamer: newBlip(p.rate, chimeFreq(step), chimeDuration),
		Base:     2,
		Volume:   p.chimeVolume,
	})
}

func (p *Player) stop() {
	if p.current == nil {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
	p.close(p.current)
	p.current = nil
}

func (p *Player) close(t *track) {
	if err := t.streamer.Close(); err != nil {
		log.Printf("[audio] close %s: %v", t.name, err)
	}
	_ = t.file.Close()
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	if !p.ready {
		return
	}
	p.stop()
	speaker.Close()
	p.ready = false
}
