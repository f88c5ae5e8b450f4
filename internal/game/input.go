package game

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/ksandeleon/portfolio-field/internal/config"
	"github.com/ksandeleon/portfolio-field/internal/projects"
)

const noDescription = "No description available."

func (g *Game) handleInput() error {
	justPressed := inpututil.IsKeyJustPressed

	if g.searching {
		g.handleSearchInput(justPressed)
	} else {
		if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
			if g.sheet.IsOpen() {
				g.sheet.Close()
			} else {
				return ebiten.Termination
			}
		}
		if justPressed(ebiten.KeySpace) {
			g.player.TogglePause()
		}
		if justPressed(ebiten.KeyM) {
			if err := g.player.OpenDialog(); err != nil {
				g.lastErr = err
			}
		}
		if justPressed(ebiten.KeyC) {
			g.sheet.Toggle()
		}
		if justPressed(ebiten.KeySlash) {
			g.scrollTarget = g.sectionTarget("projects")
			g.searching = true
		}
		if justPressed(ebiten.KeyArrowLeft) {
			g.list.Prev()
		}
		if justPressed(ebiten.KeyArrowRight) {
			g.list.Next()
		}
	}

	h := float64(g.height)
	if justPressed(ebiten.KeyArrowDown) {
		g.scrollTarget += config.WheelStep
	}
	if justPressed(ebiten.KeyArrowUp) {
		g.scrollTarget -= config.WheelStep
	}
	if justPressed(ebiten.KeyPageDown) {
		g.scrollTarget += h
	}
	if justPressed(ebiten.KeyPageUp) {
		g.scrollTarget -= h
	}
	if justPressed(ebiten.KeyHome) {
		g.scrollTarget = 0
	}
	if justPressed(ebiten.KeyEnd) {
		g.scrollTarget = g.maxScroll()
	}

	if _, wy := ebiten.Wheel(); wy != 0 && !g.sheet.Dragging() {
		g.scrollTarget -= wy * config.WheelStep
	}

	g.handlePointer()
	return nil
}

// handleSearchInput edits the search term while the search box has focus.
// The list is filtered on every change.
func (g *Game) handleSearchInput(justPressed func(ebiten.Key) bool) {
	term := []rune(g.list.Term())
	changed := false

	g.runes = ebiten.AppendInputChars(g.runes[:0])
	if len(g.runes) > 0 {
		term = append(term, g.runes...)
		changed = true
	}
	if justPressed(ebiten.KeyBackspace) && len(term) > 0 {
		term = term[:len(term)-1]
		changed = true
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyEnter) {
		g.searching = false
	}
	if changed {
		g.list.Search(string(term))
	}
}

// handlePointer tracks the cursor and dispatches clicks and taps.
func (g *Game) handlePointer() {
	w, h := float64(g.width), float64(g.height)
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	g.touching = len(ebiten.AppendTouchIDs(nil)) > 0
	inside := x >= 0 && y >= 0 && x < w && y < h
	if ebiten.IsFocused() && inside && !g.touching {
		g.field.SetPointer(x, y)
		g.aurora.Pointer(x/w, y/h)
	} else {
		g.field.ClearPointer()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.click(x, y)
	}
	if g.sheet.Dragging() {
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			g.sheet.DragTo(y)
		}
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			g.sheet.EndDrag()
		}
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		tx, ty := ebiten.TouchPosition(id)
		g.click(float64(tx), float64(ty))
	}
}

// click routes a press at viewport (x, y) to the first thing under it. A
// press on empty page space bursts aurora motes.
func (g *Game) click(x, y float64) {
	w, h := float64(g.width), float64(g.height)

	if g.sheet.IsOpen() {
		if g.sheet.BeginDrag(y) || g.sheet.Contains(y) {
			return
		}
	}

	if i := dotAt(x, y, len(g.nav.Sections()), h); i >= 0 {
		g.scrollTarget = g.nav.Target(i)
		return
	}

	if g.player.HasTrack() && progressBar(w, h).contains(x, y+4) {
		bar := progressBar(w, h)
		if err := g.player.Seek((x - bar.x) / bar.w); err != nil {
			g.lastErr = err
		}
		return
	}

	if top, ok := g.sectionTop("projects"); ok {
		geom := layoutProjects(top, w, h)
		switch {
		case geom.search.contains(x, y):
			g.searching = true
			return
		case geom.prev.contains(x, y):
			g.list.Prev()
			return
		case geom.next.contains(x, y):
			g.list.Next()
			return
		}
		for i, r := range g.list.Visible() {
			if geom.cards[i].contains(x, y) {
				g.showRepo(r)
				return
			}
		}
	}

	if top, ok := g.sectionTop("certifications"); ok && certificationsButton(top, w, h).contains(x, y) {
		g.sheet.Open()
		return
	}

	g.searching = false
	g.aurora.Burst(x/w, y/h)
}

// sectionTop is the viewport y of the section with id, if any of it is on
// screen.
func (g *Game) sectionTop(id string) (float64, bool) {
	for _, s := range g.nav.Sections() {
		if s.ID != id {
			continue
		}
		top := s.Top - g.scrollY
		return top, top < float64(g.height) && top+s.Height > 0
	}
	return 0, false
}

func (g *Game) sectionTarget(id string) float64 {
	for i, s := range g.nav.Sections() {
		if s.ID == id {
			return g.nav.Target(i)
		}
	}
	return g.scrollTarget
}

// showRepo looks up the latest details of r and shows them in a dialog. The
// listed copy is shown if the lookup fails.
func (g *Game) showRepo(r projects.Repo) {
	if g.detailBusy {
		return
	}
	g.detailBusy = true
	go func(ctx context.Context) {
		repo, err := g.client.FetchRepo(ctx, r.FullName)
		if err != nil {
			log.Printf("[projects] %v", err)
			repo = r
		}
		err = zenity.Info(repoSummary(repo), zenity.Title(repo.Name), zenity.InfoIcon)
		if err != nil && !errors.Is(err, zenity.ErrCanceled) {
			g.details <- fmt.Errorf("show %s: %w", repo.Name, err)
			return
		}
		g.details <- nil
	}(g.ctx)
}

func repoSummary(r projects.Repo) string {
	desc := r.Description
	if desc == "" {
		desc = noDescription
	}
	s := fmt.Sprintf("%s\n\nstars %d · forks %d", desc, r.Stars, r.Forks)
	if r.Language != "" {
		s += " · " + r.Language
	}
	return s + "\n\n" + r.HTMLURL
}
