package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ksandeleon/portfolio-field/internal/config"
	"github.com/ksandeleon/portfolio-field/internal/field"
	"github.com/ksandeleon/portfolio-field/internal/nav"
	"github.com/ksandeleon/portfolio-field/internal/projects"
	"github.com/ksandeleon/portfolio-field/internal/sheet"
)

var (
	pageColor  = color.NRGBA{R: 245, G: 244, B: 240, A: 255}
	darkColor  = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	inkColor   = color.NRGBA{R: 24, G: 24, B: 24, A: 255}
	lightInk   = color.NRGBA{R: 240, G: 240, B: 240, A: 255}
	mutedColor = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	sheetColor = color.NRGBA{R: 252, G: 252, B: 250, A: 250}
)

const aboutText = "I'm a student of history and philosophy who ended up writing software. " +
	"These days I split my time between machine learning, data science and the web, " +
	"and I like projects that sit where those fields meet. " +
	"When I'm not coding I'm usually reading, or taking another online course."

const caretBlink = 500 * time.Millisecond

func (g *Game) Draw(screen *ebiten.Image) {
	if g.layer == nil {
		return
	}
	g.drawBackground(screen)
	g.drawAurora(screen)
	g.drawField(screen)
	g.drawSections(screen)
	g.drawDots(screen)
	g.drawSheet(screen)
	g.drawStatus(screen)
}

// drawBackground paints the page and inverts the active section.
func (g *Game) drawBackground(screen *ebiten.Image) {
	screen.Fill(pageColor)
	w, h := float64(g.width), float64(g.height)
	for _, b := range g.nav.ActiveBands(g.scrollY) {
		top, bottom := max(b.Top, 0), min(b.Bottom, h)
		if bottom <= top {
			continue
		}
		vector.DrawFilledRect(screen, 0, float32(top), float32(w), float32(bottom-top), darkColor, false)
	}
}

func (g *Game) drawAurora(screen *ebiten.Image) {
	w, h := float64(g.width), float64(g.height)
	phase := g.clock.Seconds()

	for i := 0; i < config.AuroraLayers; i++ {
		dx, dy := g.aurora.LayerOffset(i)
		hue := 180 + 50*float64(i) + phase*6
		r, gr, b := hsvToRgb(hue, 0.35, 1)
		cx := w*(0.25+0.25*float64(i)) + dx
		cy := h*0.3 + dy
		radius := w * 0.28
		for k := 0; k < 4; k++ {
			rr := radius * (1 - 0.2*float64(k))
			vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(rr), color.NRGBA{R: r, G: gr, B: b, A: 8}, true)
		}
	}

	dx, dy, scale := g.aurora.Pulse()
	r, gr, b := hsvToRgb(280+phase*10, 0.3, 1)
	vector.DrawFilledCircle(screen, float32(w/2+dx), float32(h/2+dy), float32(min(w, h)*0.18*scale), color.NRGBA{R: r, G: gr, B: b, A: 14}, true)

	for _, m := range g.aurora.Motes() {
		if !m.Started() {
			continue
		}
		l := m.Look()
		radius := m.Size / 2 * l.Scale
		if radius <= 0 || l.Opacity <= 0 {
			continue
		}
		x, y := l.X*w, l.Y*h-l.RiseY
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), withAlpha(m.Color, l.Opacity), true)
	}
}

// drawField renders the particle network on its own layer, faded over
// active sections, and composites it onto the page.
func (g *Game) drawField(screen *ebiten.Image) {
	opacity := field.ComputeOpacity(g.nav.ActiveBands(g.scrollY), float64(g.height))
	g.field.DrawFrame(g.layer, opacity)
	screen.DrawImage(g.layer.img, nil)
}

func (g *Game) drawSections(screen *ebiten.Image) {
	h := float64(g.height)
	for i, s := range g.nav.Sections() {
		top := s.Top - g.scrollY
		if top >= h || top+s.Height <= 0 {
			continue
		}
		ink := inkColor
		if i == g.nav.Active() {
			ink = lightInk
		}
		switch s.ID {
		case "intro":
			g.drawIntro(screen, s, top, ink)
		case "about":
			g.drawAbout(screen, s, top, ink)
		case "projects":
			g.drawProjects(screen, s, top, ink)
		case "certifications":
			g.drawCertifications(screen, s, top, ink)
		case "contact":
			g.drawContact(screen, s, top, ink)
		}
	}
}

func (g *Game) caretOn() bool {
	return (g.clock/caretBlink)%2 == 0
}

func (g *Game) drawIntro(screen *ebiten.Image, s nav.Section, top float64, ink color.NRGBA) {
	w, h := float64(g.width), float64(g.height)
	drawTextCentered(screen, s.Title, g.fonts.headline, w/2, top+h*0.34, ink)

	line := "I love " + g.typer.Text()
	if g.caretOn() {
		line += "|"
	} else {
		line += " "
	}
	drawTextCentered(screen, line, g.fonts.title, w/2, top+h*0.34+72, ink)
	drawTextCentered(screen, "scroll to explore", g.fonts.small, w/2, top+h-48, mutedColor)
}

func (g *Game) drawAbout(screen *ebiten.Image, s nav.Section, top float64, ink color.NRGBA) {
	left := contentLeft(float64(g.width))
	drawText(screen, s.Title, g.fonts.title, left, top+48, ink)
	y := top + 110
	for _, line := range wrap(aboutText, g.fonts.body, min(float64(g.width)-2*left, 640)) {
		drawText(screen, line, g.fonts.body, left, y, ink)
		y += 28
	}
}

func (g *Game) drawProjects(screen *ebiten.Image, s nav.Section, top float64, ink color.NRGBA) {
	w, h := float64(g.width), float64(g.height)
	geom := layoutProjects(top, w, h)
	left := contentLeft(w)
	drawText(screen, s.Title, g.fonts.title, left, geom.title, ink)

	// search box
	sb := geom.search
	border := mutedColor
	if g.searching {
		border = ink
	}
	vector.StrokeRect(screen, float32(sb.x), float32(sb.y), float32(sb.w), float32(sb.h), 1.5, border, false)
	query, qc := g.list.Term(), ink
	if query == "" && !g.searching {
		query, qc = "Search projects...", mutedColor
	}
	if g.searching && g.caretOn() {
		query += "|"
	}
	drawText(screen, query, g.fonts.body, sb.x+10, sb.y+6, qc)

	switch {
	case g.loading:
		drawText(screen, "Loading projects...", g.fonts.body, left, geom.cards[0].y, mutedColor)
		return
	case g.loadErr != "":
		drawText(screen, g.loadErr, g.fonts.body, left, geom.cards[0].y, ink)
		return
	}

	visible := g.list.Visible()
	if len(visible) == 0 {
		drawText(screen, projects.MsgNoProjects, g.fonts.body, left, geom.cards[0].y, ink)
	}
	for i, r := range visible {
		g.drawCard(screen, geom.cards[i], r, ink)
	}

	g.drawPagerButton(screen, geom.prev, "< Prev", g.list.CanPrev(), ink)
	g.drawPagerButton(screen, geom.next, "Next >", g.list.CanNext(), ink)
	drawTextCentered(screen, g.list.PageInfo(), g.fonts.small, w/2, geom.pager, ink)
}

func (g *Game) drawCard(screen *ebiten.Image, r rect, repo projects.Repo, ink color.NRGBA) {
	vector.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 1, withAlpha(ink, 0.5), false)
	drawText(screen, repo.Name, g.fonts.body, r.x+14, r.y+10, ink)

	desc := repo.Description
	if desc == "" {
		desc = noDescription
	}
	lines := wrap(desc, g.fonts.small, r.w-28)
	maxLines := max(int((r.h-56)/17), 1)
	if len(lines) > maxLines {
		lines = append(lines[:maxLines-1:maxLines-1], lines[maxLines-1]+" ...")
	}
	y := r.y + 34
	for _, l := range lines {
		drawText(screen, l, g.fonts.small, r.x+14, y, mutedColor)
		y += 17
	}

	stats := fmt.Sprintf("stars %d · forks %d", repo.Stars, repo.Forks)
	if repo.Language != "" {
		stats += " · " + repo.Language
	}
	drawText(screen, stats, g.fonts.small, r.x+14, r.y+r.h-22, ink)
}

func (g *Game) drawPagerButton(screen *ebiten.Image, r rect, label string, enabled bool, ink color.NRGBA) {
	clr := ink
	if !enabled {
		clr = withAlpha(ink, 0.3)
	}
	vector.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 1, clr, false)
	drawTextCentered(screen, label, g.fonts.small, r.x+r.w/2, r.y+7, clr)
}

func (g *Game) drawCertifications(screen *ebiten.Image, s nav.Section, top float64, ink color.NRGBA) {
	w, h := float64(g.width), float64(g.height)
	left := contentLeft(w)
	drawText(screen, s.Title, g.fonts.title, left, top+48, ink)
	drawText(screen, fmt.Sprintf("%d certificates and courses.", len(config.Certifications)), g.fonts.body, left, top+110, ink)

	btn := certificationsButton(top, w, h)
	vector.DrawFilledRect(screen, float32(btn.x), float32(btn.y), float32(btn.w), float32(btn.h), ink, false)
	label := pageColor
	if ink == lightInk {
		label = darkColor
	}
	drawTextCentered(screen, "View certifications", g.fonts.body, btn.x+btn.w/2, btn.y+10, label)
	drawTextCentered(screen, "or press C", g.fonts.small, btn.x+btn.w/2, btn.y+btn.h+10, mutedColor)
}

func (g *Game) drawContact(screen *ebiten.Image, s nav.Section, top float64, ink color.NRGBA) {
	left := contentLeft(float64(g.width))
	drawText(screen, s.Title, g.fonts.title, left, top+48, ink)
	drawText(screen, "github.com/"+g.cfg.GitHubUser, g.fonts.body, left, top+110, ink)
	drawText(screen, "Open a project card for details, or press M to pick a soundtrack.", g.fonts.small, left, top+146, mutedColor)
}

// drawDots draws the section dots: lit up to the current section, light
// over the inverted section and swelling briefly when a section is reached.
func (g *Game) drawDots(screen *ebiten.Image) {
	now := time.Now()
	h := float64(g.height)
	n := len(g.nav.Sections())
	for i := 0; i < n; i++ {
		cx, cy := dotCenter(i, n, h)
		clr := inkColor
		if g.nav.OnDark(cy, g.scrollY) {
			clr = lightInk
		}
		r := config.DotRadius
		if p := g.nav.PopProgress(i, now); p > 0 {
			r *= 1 + 0.5*math.Sin(math.Pi*p)
		}
		if g.nav.Lit(i) {
			vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r), clr, true)
		} else {
			vector.StrokeCircle(screen, float32(cx), float32(cy), float32(r), 1.5, clr, true)
		}
	}
}

func (g *Game) drawSheet(screen *ebiten.Image) {
	if !g.sheet.IsOpen() {
		return
	}
	w, h := float64(g.width), float64(g.height)
	top := g.sheet.Top()
	vector.DrawFilledRect(screen, 0, float32(top), float32(w), float32(g.sheet.Height()), sheetColor, false)
	vector.StrokeLine(screen, 0, float32(top), float32(w), float32(top), 1, withAlpha(inkColor, 0.2), false)
	vector.DrawFilledRect(screen, float32(w/2-24), float32(top+sheet.HandleHeight/2-2), 48, 4, mutedColor, false)

	left := contentLeft(w)
	y := top + sheet.HandleHeight + 12
	drawText(screen, "Certifications", g.fonts.title, left, y, inkColor)
	y += 48
	for _, c := range config.Certifications {
		if y+40 > h {
			break
		}
		drawText(screen, c.Title, g.fonts.body, left, y, inkColor)
		drawText(screen, fmt.Sprintf("%s · %d", c.Issuer, c.Year), g.fonts.small, left, y+22, mutedColor)
		y += 50
	}
}

// drawStatus prints key hints, the soundtrack state and the last error, with
// a seek bar while a soundtrack is loaded.
func (g *Game) drawStatus(screen *ebiten.Image) {
	status := "M: soundtrack, C: certifications, /: search, Esc: quit"
	if name, pos, length, ok := g.player.Progress(); ok {
		state := "Playing"
		if g.player.Paused() {
			state = "Paused"
		}
		status = fmt.Sprintf("%s %s %s / %s - Space to toggle", state, name, formatDuration(pos), formatDuration(length))

		w, h := float64(g.width), float64(g.height)
		bar := progressBar(w, h)
		vector.DrawFilledRect(screen, float32(bar.x), float32(bar.y), float32(bar.w), float32(bar.h), withAlpha(inkColor, 0.15), false)
		if length > 0 {
			frac := clamp01(float64(pos) / float64(length))
			r, gr, b := hsvToRgb(g.clock.Seconds()*20+frac*180, 0.6, 0.85)
			vector.DrawFilledRect(screen, float32(bar.x), float32(bar.y), float32(bar.w*frac), float32(bar.h), color.NRGBA{R: r, G: gr, B: b, A: 220}, false)
		}
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}
