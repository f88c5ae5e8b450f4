package game

import (
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/ksandeleon/portfolio-field/internal/config"
	"github.com/ksandeleon/portfolio-field/internal/projects"
)

func TestRectContains(t *testing.T) {
	r := rect{x: 10, y: 10, w: 20, h: 10}
	tests := []struct {
		x, y float64
		want bool
	}{
		{10, 10, true},
		{29.9, 19.9, true},
		{30, 15, false},
		{15, 20, false},
		{9, 15, false},
	}
	for _, tt := range tests {
		if got := r.contains(tt.x, tt.y); got != tt.want {
			t.Errorf("contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDotAt(t *testing.T) {
	const n, h = 5, 640.0
	for i := 0; i < n; i++ {
		x, y := dotCenter(i, n, h)
		if got := dotAt(x, y, n, h); got != i {
			t.Errorf("dotAt(center of %d) = %d", i, got)
		}
	}
	if got := dotAt(500, 300, n, h); got != -1 {
		t.Errorf("dotAt(far away) = %d, want -1", got)
	}

	_, first := dotCenter(0, n, h)
	_, last := dotCenter(n-1, n, h)
	if mid := (first + last) / 2; mid != h/2 {
		t.Errorf("dots centred on %v, want %v", mid, h/2)
	}
}

func TestLayoutProjects(t *testing.T) {
	const top, w, h = 1280.0, 1024.0, 640.0
	g := layoutProjects(top, w, h)

	if len(g.cards) != config.ProjectsPerPage {
		t.Fatalf("%d card slots, want %d", len(g.cards), config.ProjectsPerPage)
	}
	if g.search.y+g.search.h > g.cards[0].y {
		t.Error("search box overlaps the first card")
	}
	for i := 1; i < len(g.cards); i++ {
		if g.cards[i-1].y+g.cards[i-1].h > g.cards[i].y {
			t.Errorf("card %d overlaps card %d", i-1, i)
		}
	}
	last := g.cards[len(g.cards)-1]
	if last.y+last.h > g.prev.y {
		t.Error("cards overlap the pager")
	}
	if g.prev.y+g.prev.h > top+h {
		t.Error("pager falls outside the section")
	}
	if g.prev.contains(g.next.x+1, g.next.y+1) {
		t.Error("prev and next buttons overlap")
	}
}

func TestRepoSummary(t *testing.T) {
	s := repoSummary(projects.Repo{Name: "field", Stars: 3, Forks: 1, Language: "Go", HTMLURL: "https://github.com/u/field"})
	for _, want := range []string{noDescription, "stars 3", "forks 1", "Go", "https://github.com/u/field"} {
		if !strings.Contains(s, want) {
			t.Errorf("summary %q is missing %q", s, want)
		}
	}
}

func TestWrap(t *testing.T) {
	f, err := loadFonts()
	if err != nil {
		t.Fatal(err)
	}
	const maxWidth = 200.0
	lines := wrap(aboutText, f.body, maxWidth)
	if len(lines) < 2 {
		t.Fatalf("expected several lines, got %d", len(lines))
	}
	for _, l := range lines {
		if text.Advance(l, f.body) > maxWidth && strings.Contains(l, " ") {
			t.Errorf("line %q is wider than %v", l, maxWidth)
		}
	}
	if got := strings.Join(lines, " "); got != strings.Join(strings.Fields(aboutText), " ") {
		t.Error("wrapping should keep every word in order")
	}
	if wrap("", f.body, maxWidth) != nil {
		t.Error("empty text has no lines")
	}
}
