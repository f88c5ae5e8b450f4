package projects

import (
	"fmt"
	"testing"
)

func makeRepos(n int) []Repo {
	repos := make([]Repo, n)
	for i := range repos {
		repos[i] = Repo{Name: fmt.Sprintf("repo-%02d", i)}
	}
	return repos
}

func TestListPagination(t *testing.T) {
	l := NewList(4)
	l.SetRepos(makeRepos(10))

	if l.TotalPages() != 3 {
		t.Fatalf("TotalPages = %d, want 3", l.TotalPages())
	}
	if l.CanPrev() || !l.CanNext() {
		t.Errorf("page 1: CanPrev=%v CanNext=%v", l.CanPrev(), l.CanNext())
	}
	if got := l.PageInfo(); got != "Page 1 of 3" {
		t.Errorf("PageInfo = %q", got)
	}

	l.Next()
	l.Next()
	if l.page != 3 {
		t.Fatalf("Page = %d, want 3", l.page)
	}
	if v := l.Visible(); len(v) != 2 || v[0].Name != "repo-08" {
		t.Errorf("last page = %v", v)
	}
	if l.CanNext() || l.Next() {
		t.Error("cannot go past the last page")
	}

	l.Prev()
	if l.page != 2 || !l.CanPrev() {
		t.Errorf("after Prev: page %d", l.page)
	}
}

func TestListSearch(t *testing.T) {
	l := NewList(4)
	l.SetRepos(sampleRepos)
	l.Next()

	l.Search("MACHINE")
	if l.page != 1 {
		t.Errorf("search should reset to page 1, got %d", l.page)
	}
	if len(l.filtered) != 1 || l.Visible()[0].Name != "ml-notes" {
		t.Errorf("search by description: %v", l.Visible())
	}

	l.Search("dot")
	if len(l.filtered) != 1 || l.Visible()[0].Name != "dotfiles" {
		t.Errorf("search by name: %v", l.Visible())
	}

	l.Search("")
	if len(l.filtered) != len(sampleRepos) {
		t.Errorf("empty search should match all, got %d", len(l.filtered))
	}
}

func TestListEmpty(t *testing.T) {
	l := NewList(4)
	l.SetRepos(sampleRepos)
	l.Search("nothing matches this")

	if l.Visible() != nil {
		t.Errorf("expected no visible repos, got %v", l.Visible())
	}
	if l.CanNext() || l.CanPrev() {
		t.Error("pager buttons should be disabled")
	}
	if got := l.PageInfo(); got != "Page 1 of 1" {
		t.Errorf("PageInfo = %q", got)
	}
}

func TestListSetReposKeepsSearch(t *testing.T) {
	l := NewList(4)
	l.Search("ml")
	l.SetRepos(sampleRepos)
	if len(l.filtered) != 1 {
		t.Errorf("search term should apply to new data, got %d matches", len(l.filtered))
	}
}
