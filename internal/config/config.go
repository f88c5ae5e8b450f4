package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640
	WindowTitle  = "ksandeleon - portfolio"

	// Level tap
	LevelRingSize   = 4096
	SmoothingFactor = 0.6

	// Navigation
	PopDuration   = 400 * time.Millisecond
	ScrollEasing  = 0.18
	WheelStep     = 60.0
	DotRadius     = 5.0
	DotSpacing    = 22.0
	DotMarginLeft = 28.0

	// Projects
	ProjectsPerPage = 4
	ProjectCardGap  = 14.0

	// Aurora
	AuroraLayers = 3
)

// Default values for the environment-driven settings.
const (
	DefaultGitHubUser  = "ksandeleon"
	DefaultGitHubAPI   = "https://api.github.com"
	DefaultCacheTTL    = 30 * time.Minute
	DefaultSampleRate  = 44100
	DefaultChimeVolume = -1.5
)

// Sections lists the page sections in scroll order.
var Sections = []struct {
	ID    string
	Title string
}{
	{ID: "intro", Title: "Hello, I'm Sandeleon"},
	{ID: "about", Title: "About"},
	{ID: "projects", Title: "Projects"},
	{ID: "certifications", Title: "Certifications"},
	{ID: "contact", Title: "Contact"},
}

// Certification is one entry of the certifications sheet.
type Certification struct {
	Title  string
	Issuer string
	Year   int
}

var Certifications = []Certification{
	{Title: "Google Data Analytics", Issuer: "Coursera", Year: 2024},
	{Title: "Machine Learning Specialization", Issuer: "DeepLearning.AI", Year: 2024},
	{Title: "Responsive Web Design", Issuer: "freeCodeCamp", Year: 2023},
	{Title: "Python for Everybody", Issuer: "University of Michigan", Year: 2023},
	{Title: "Philosophy and Critical Thinking", Issuer: "University of Queensland", Year: 2022},
}

// Config holds the settings read from the environment.
type Config struct {
	GitHubUser  string
	GitHubAPI   string
	CachePath   string
	CacheTTL    time.Duration
	Audio       bool
	SampleRate  int
	ChimeVolume float64
	Seed        uint64

	WindowWidth  int
	WindowHeight int
}

// Load reads an optional .env file and then the PORTFOLIO_* environment
// variables. Malformed values fall back to the defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("[config] .env: %v", err)
	}

	cfg := &Config{
		GitHubUser:   envString("PORTFOLIO_GITHUB_USER", DefaultGitHubUser),
		GitHubAPI:    envString("PORTFOLIO_GITHUB_API", DefaultGitHubAPI),
		CachePath:    envString("PORTFOLIO_CACHE_PATH", defaultCachePath()),
		CacheTTL:     envDuration("PORTFOLIO_CACHE_TTL", DefaultCacheTTL),
		Audio:        envBool("PORTFOLIO_AUDIO", true),
		SampleRate:   envInt("PORTFOLIO_SAMPLE_RATE", DefaultSampleRate),
		ChimeVolume:  envFloat("PORTFOLIO_CHIME_VOLUME", DefaultChimeVolume),
		Seed:         uint64(time.Now().UnixNano()),
		WindowWidth:  envInt("PORTFOLIO_WINDOW_WIDTH", WindowWidth),
		WindowHeight: envInt("PORTFOLIO_WINDOW_HEIGHT", WindowHeight),
	}
	if s := os.Getenv("PORTFOLIO_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			cfg.Seed = v
		} else {
			log.Printf("[config] PORTFOLIO_SEED=%q: %v", s, err)
		}
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultSampleRate
	}
	if cfg.WindowWidth <= 0 {
		cfg.WindowWidth = WindowWidth
	}
	if cfg.WindowHeight <= 0 {
		cfg.WindowHeight = WindowHeight
	}
	return cfg
}

func defaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "portfolio-field", "repos.db")
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] %s=%q: %v", key, v, err)
		return def
	}
	return n
}

func envFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("[config] %s=%q: %v", key, v, err)
		return def
	}
	return f
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("[config] %s=%q: %v", key, v, err)
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("[config] %s=%q: %v", key, v, err)
		return def
	}
	return d
}
