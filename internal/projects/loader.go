package projects

import (
	"context"
	"errors"
	"log"
	"time"
)

// Result is what a load delivers to the page.
type Result struct {
	Repos  []Repo
	Source string // "cache", "network" or "stale-cache"
	Err    error
}

// Fetcher is the network side of a load.
type Fetcher interface {
	FetchRepos(ctx context.Context) ([]Repo, error)
}

// Loader combines the API client with the optional cache.
type Loader struct {
	Fetcher Fetcher
	Cache   *Cache // nil disables caching
	User    string
	Now     func() time.Time
}

// Load prefers a fresh cache entry, then the network, then a stale cache
// entry. Failures are logged and reported once; there is no retry.
func (l *Loader) Load(ctx context.Context) Result {
	now := time.Now
	if l.Now != nil {
		now = l.Now
	}

	var (
		stale   []Repo
		haveOld bool
	)
	if l.Cache != nil {
		repos, at, err := l.Cache.Load(ctx, l.User)
		switch {
		case err == nil && l.Cache.Fresh(at, now()):
			return Result{Repos: repos, Source: "cache"}
		case err == nil:
			stale, haveOld = repos, true
		case !errors.Is(err, ErrCacheMiss):
			log.Printf("[projects] cache: %v", err)
		}
	}

	repos, err := l.Fetcher.FetchRepos(ctx)
	if err != nil {
		log.Printf("[projects] %v", err)
		if haveOld {
			return Result{Repos: stale, Source: "stale-cache"}
		}
		return Result{Err: err}
	}

	if l.Cache != nil {
		if err := l.Cache.Store(ctx, l.User, repos, now()); err != nil {
			log.Printf("[projects] cache: %v", err)
		}
	}
	return Result{Repos: repos, Source: "network"}
}

// Start runs Load on its own goroutine; the result arrives on the returned
// channel, which has room for it so the goroutine never blocks.
func (l *Loader) Start(ctx context.Context) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		ch <- l.Load(ctx)
	}()
	return ch
}
