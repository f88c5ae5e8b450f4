package game

import (
	"math"

	"github.com/ksandeleon/portfolio-field/internal/config"
)

type rect struct {
	x, y, w, h float64
}

func (r rect) contains(x, y float64) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// contentLeft is the left edge of section content, clear of the dots.
func contentLeft(w float64) float64 {
	return max(80, w*0.12)
}

// dotCenter is the viewport position of navigation dot i of n, stacked and
// centred on the left edge.
func dotCenter(i, n int, h float64) (x, y float64) {
	y0 := h/2 - float64(n-1)*config.DotSpacing/2
	return config.DotMarginLeft, y0 + float64(i)*config.DotSpacing
}

// dotAt returns the dot under (x, y), or -1.
func dotAt(x, y float64, n int, h float64) int {
	for i := 0; i < n; i++ {
		cx, cy := dotCenter(i, n, h)
		if math.Hypot(x-cx, y-cy) <= config.DotRadius+4 {
			return i
		}
	}
	return -1
}

// projectsGeom is the layout of the projects section, in viewport
// coordinates, for a section whose top is at top.
type projectsGeom struct {
	title  float64
	search rect
	cards  []rect
	prev   rect
	next   rect
	pager  float64 // baseline of the page info
}

func layoutProjects(top, w, h float64) projectsGeom {
	left := contentLeft(w)
	width := w - 2*left
	g := projectsGeom{
		title:  top + 48,
		search: rect{x: left, y: top + 104, w: min(width, 360), h: 32},
	}

	const cardsTop, pagerRoom = 156.0, 80.0
	gaps := float64(config.ProjectsPerPage-1) * config.ProjectCardGap
	ch := (h - cardsTop - pagerRoom - gaps) / config.ProjectsPerPage
	ch = min(max(ch, 56), 110)
	for i := 0; i < config.ProjectsPerPage; i++ {
		y := top + cardsTop + float64(i)*(ch+config.ProjectCardGap)
		g.cards = append(g.cards, rect{x: left, y: y, w: width, h: ch})
	}

	pagerY := top + h - 64
	g.prev = rect{x: left, y: pagerY, w: 90, h: 30}
	g.next = rect{x: left + width - 90, y: pagerY, w: 90, h: 30}
	g.pager = pagerY + 6
	return g
}

// certificationsButton is the button that opens the sheet.
func certificationsButton(top, w, h float64) rect {
	return rect{x: w/2 - 110, y: top + h/2, w: 220, h: 40}
}

// progressBar is the soundtrack seek bar along the bottom of the window.
func progressBar(w, h float64) rect {
	return rect{x: 20, y: h - 14, w: w - 40, h: 6}
}
