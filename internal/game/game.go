// Package game hosts the portfolio page as an ebiten game: it owns the
// window-sized surfaces, routes input and time to the page components and
// draws them in order.
package game

import (
	"context"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ksandeleon/portfolio-field/internal/audio"
	"github.com/ksandeleon/portfolio-field/internal/aurora"
	"github.com/ksandeleon/portfolio-field/internal/config"
	"github.com/ksandeleon/portfolio-field/internal/field"
	"github.com/ksandeleon/portfolio-field/internal/nav"
	"github.com/ksandeleon/portfolio-field/internal/projects"
	"github.com/ksandeleon/portfolio-field/internal/sheet"
	"github.com/ksandeleon/portfolio-field/internal/typing"
)

// maxStep bounds the time fed to the animations after a stall, such as a
// dragged window or a blocking dialog.
const maxStep = 100 * time.Millisecond

var _ ebiten.Game = (*Game)(nil)

type Game struct {
	cfg   *config.Config
	fonts *fonts

	// page components
	field  *field.Field
	nav    *nav.Navigator
	typer  *typing.Typer
	aurora *aurora.Effect
	sheet  *sheet.Sheet
	list   *projects.List
	player *audio.Player

	// surfaces
	layer         *layerSurface
	outW, outH    int // last size reported by Layout
	width, height int // size the components were laid out for

	// scrolling
	scrollY      float64
	scrollTarget float64

	// projects
	ctx        context.Context
	cancel     context.CancelFunc
	client     *projects.Client
	cache      *projects.Cache
	results    <-chan projects.Result
	loading    bool
	loadErr    string
	details    chan error
	detailBusy bool

	// input
	searching bool
	runes     []rune
	touching  bool

	// state
	clock    time.Duration
	lastTick time.Time
	lastErr  error
}

func New(cfg *config.Config) (*Game, error) {
	f, err := loadFonts()
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed>>1|1))

	sections := make([]nav.Section, len(config.Sections))
	for i, s := range config.Sections {
		sections[i] = nav.Section{ID: s.ID, Title: s.Title}
	}

	g := &Game{
		cfg:     cfg,
		fonts:   f,
		field:   field.New(rng),
		nav:     nav.New(sections, config.PopDuration),
		typer:   typing.New(typing.DefaultWords),
		aurora:  aurora.New(rng),
		sheet:   sheet.New(float64(cfg.WindowHeight)),
		list:    projects.NewList(config.ProjectsPerPage),
		player:  audio.NewPlayer(cfg.SampleRate, cfg.ChimeVolume),
		details: make(chan error, 1),
	}

	if cfg.Audio {
		if err := g.player.Init(); err != nil {
			log.Printf("[audio] %v; audio disabled", err)
		}
	}

	g.ctx, g.cancel = context.WithCancel(context.Background())
	g.client = projects.NewClient(cfg.GitHubAPI, cfg.GitHubUser)
	if cache, err := projects.OpenCache(cfg.CachePath, cfg.CacheTTL); err != nil {
		log.Printf("[projects] cache disabled: %v", err)
	} else {
		g.cache = cache
	}
	loader := &projects.Loader{Fetcher: g.client, Cache: g.cache, User: cfg.GitHubUser}
	g.results = loader.Start(g.ctx)
	g.loading = true

	return g, nil
}

func (g *Game) Update() error {
	now := time.Now()
	dt := field.FrameDuration
	if !g.lastTick.IsZero() {
		dt = min(now.Sub(g.lastTick), maxStep)
	}
	g.lastTick = now
	g.clock += dt

	if g.outW != g.width || g.outH != g.height {
		g.resize(g.outW, g.outH)
	}

	if err := g.handleInput(); err != nil {
		return err
	}

	g.scrollTarget = min(max(g.scrollTarget, 0), g.maxScroll())
	g.scrollY = easeToward(g.scrollY, g.scrollTarget, config.ScrollEasing)
	if _, popped := g.nav.Update(g.scrollY, now); popped {
		g.player.Chime(g.nav.Current())
	}

	g.pollProjects()

	g.player.Update()
	g.aurora.SetLevel(g.player.Level())
	g.aurora.Update(dt)
	g.typer.Advance(dt)
	g.field.Step(dt)
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outW, g.outH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// resize lays every component out for a w by h window. The field layer is
// reallocated and the particle set rebuilt.
func (g *Game) resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	g.width, g.height = w, h

	g.layer.dispose()
	g.layer = newLayerSurface(w, h)

	fw, fh := float64(w), float64(h)
	g.field.Resize(fw, fh)
	g.aurora.Resize()
	g.sheet.Resize(fh)

	// keep the reader on the same section
	cur := g.nav.Current()
	g.nav.Layout(fh)
	g.scrollY = g.nav.Target(cur)
	g.scrollTarget = g.scrollY

	log.Printf("[game] resized to %dx%d (%s tier, %d particles)", w, h, g.field.Tier().Name, len(g.field.Particles()))
}

func (g *Game) maxScroll() float64 {
	return max(g.nav.PageHeight()-float64(g.height), 0)
}

// pollProjects picks up the loader result and finished detail lookups
// without blocking the frame.
func (g *Game) pollProjects() {
	select {
	case res := <-g.results:
		g.loading = false
		g.results = nil
		if res.Err != nil {
			g.loadErr = projects.MsgLoadFailed
			break
		}
		log.Printf("[projects] %d repositories from %s", len(res.Repos), res.Source)
		g.list.SetRepos(res.Repos)
	default:
	}

	select {
	case err := <-g.details:
		g.detailBusy = false
		if err != nil {
			g.lastErr = err
		}
	default:
	}
}

// Close stops background work and releases the audio device and cache.
func (g *Game) Close() {
	g.cancel()
	g.player.Close()
	if g.cache != nil {
		if err := g.cache.Close(); err != nil {
			log.Printf("[projects] cache close: %v", err)
		}
	}
	g.layer.dispose()
}
