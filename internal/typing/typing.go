// Package typing animates a headline that types a word, pauses, deletes it
// and moves on to the next word.
package typing

import "time"

// Default timings.
const (
	StartDelay  = 1000 * time.Millisecond
	TypeDelay   = 150 * time.Millisecond
	DeleteDelay = 75 * time.Millisecond
	HoldDelay   = 2000 * time.Millisecond
	NextDelay   = 500 * time.Millisecond
)

var DefaultWords = []string{
	"History",
	"Machine Learning",
	"Web Development",
	"Data Science",
	"Philosophy",
	"Technology",
}

// Typer is advanced by elapsed time; each expiry of the wait performs one
// keystroke and schedules the next.
type Typer struct {
	words    [][]rune
	word     int
	chars    int
	deleting bool
	wait     time.Duration
}

func New(words []string) *Typer {
	t := &Typer{wait: StartDelay}
	for _, w := range words {
		if w == "" {
			continue
		}
		t.words = append(t.words, []rune(w))
	}
	return t
}

// Advance consumes dt, performing as many keystrokes as fit.
func (t *Typer) Advance(dt time.Duration) {
	if len(t.words) == 0 {
		return
	}
	t.wait -= dt
	for t.wait <= 0 {
		t.wait += t.tick()
	}
}

func (t *Typer) tick() time.Duration {
	current := t.words[t.word]

	delay := TypeDelay
	if t.deleting {
		t.chars--
		delay = DeleteDelay
	} else {
		t.chars++
	}

	switch {
	case !t.deleting && t.chars == len(current):
		t.deleting = true
		delay = HoldDelay
	case t.deleting && t.chars == 0:
		t.deleting = false
		t.word = (t.word + 1) % len(t.words)
		delay = NextDelay
	}
	return delay
}

// Text is the currently visible part of the word.
func (t *Typer) Text() string {
	if len(t.words) == 0 {
		return ""
	}
	return string(t.words[t.word][:t.chars])
}
