// Package nav tracks which page section the scroll position is in and the
// state of the dot navigation that mirrors it.
package nav

import (
	"time"

	"github.com/ksandeleon/portfolio-field/internal/field"
)

// Section is one full-height page region. Top and Height are in page
// coordinates.
type Section struct {
	ID     string
	Title  string
	Top    float64
	Height float64
}

func (s Section) Bottom() float64 { return s.Top + s.Height }

// Navigator derives the current section from the scroll offset. The current
// section is also the single "active" (inverted) one, but only once the user
// has scrolled away from the first section at least once.
type Navigator struct {
	sections []Section
	current  int
	active   int // -1 until the first section change
	popAt    time.Time
	popIdx   int
	popFor   time.Duration
}

func New(sections []Section, popFor time.Duration) *Navigator {
	return &Navigator{
		sections: sections,
		active:   -1,
		popIdx:   -1,
		popFor:   popFor,
	}
}

// Layout stacks the sections, each one viewport tall.
func (n *Navigator) Layout(viewportHeight float64) {
	top := 0.0
	for i := range n.sections {
		n.sections[i].Top = top
		n.sections[i].Height = viewportHeight
		top += viewportHeight
	}
}

// Update picks the last section whose top, less a third of its height, has
// been scrolled past. It reports whether the section changed and whether the
// change started a dot pop (forward moves only).
func (n *Navigator) Update(scrollY float64, now time.Time) (changed, popped bool) {
	idx := 0
	for i, s := range n.sections {
		if scrollY >= s.Top-s.Height/3 {
			idx = i
		}
	}
	if idx == n.current {
		return false, false
	}

	old := n.current
	n.current = idx
	n.active = idx
	if idx > old {
		n.popIdx = idx
		n.popAt = now
		return true, true
	}
	return true, false
}

func (n *Navigator) Current() int { return n.current }

// Active is the index of the inverted section, or -1.
func (n *Navigator) Active() int { return n.active }

func (n *Navigator) Sections() []Section { return n.sections }

// Lit reports whether dot i is lit: every dot up to the current section.
func (n *Navigator) Lit(i int) bool { return i <= n.current }

// Popping reports whether dot i is inside its pop animation at now.
func (n *Navigator) Popping(i int, now time.Time) bool {
	return i == n.popIdx && now.Sub(n.popAt) < n.popFor
}

// PopProgress is the pop animation progress of dot i in [0, 1], or 0 when it
// is not popping.
func (n *Navigator) PopProgress(i int, now time.Time) float64 {
	if !n.Popping(i, now) || n.popFor <= 0 {
		return 0
	}
	return float64(now.Sub(n.popAt)) / float64(n.popFor)
}

// Target is the scroll offset that brings section i to the top.
func (n *Navigator) Target(i int) float64 {
	if i < 0 || i >= len(n.sections) {
		return 0
	}
	return n.sections[i].Top
}

// PageHeight is the total height of all sections.
func (n *Navigator) PageHeight() float64 {
	if len(n.sections) == 0 {
		return 0
	}
	return n.sections[len(n.sections)-1].Bottom()
}

// ActiveBands returns the viewport-space extent of the active sections.
func (n *Navigator) ActiveBands(scrollY float64) []field.Band {
	if n.active < 0 || n.active >= len(n.sections) {
		return nil
	}
	s := n.sections[n.active]
	return []field.Band{{Top: s.Top - scrollY, Bottom: s.Bottom() - scrollY}}
}

// OnDark reports whether a dot centred at viewport y sits over the active
// section, in which case it is drawn light.
func (n *Navigator) OnDark(dotCenterY, scrollY float64) bool {
	if n.active < 0 || n.active >= len(n.sections) {
		return false
	}
	s := n.sections[n.active]
	y := dotCenterY + scrollY
	return y >= s.Top && y <= s.Bottom()
}
