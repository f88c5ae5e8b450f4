package projects

import (
	"fmt"
	"strings"
)

// Messages shown in place of the cards.
const (
	MsgNoProjects = "No projects found."
	MsgLoadFailed = "Failed to load projects. Please try again later."
)

// List holds all repositories, the search-filtered subset and the current
// page. Pages are 1-based.
type List struct {
	perPage  int
	all      []Repo
	filtered []Repo
	term     string
	page     int
}

func NewList(perPage int) *List {
	if perPage <= 0 {
		perPage = 1
	}
	return &List{perPage: perPage, page: 1}
}

// SetRepos replaces the data and reapplies the current search.
func (l *List) SetRepos(repos []Repo) {
	l.all = repos
	l.Search(l.term)
}

// Search keeps repositories whose name or description contains term,
// ignoring case, and returns to the first page.
func (l *List) Search(term string) {
	l.term = term
	needle := strings.ToLower(term)
	filtered := make([]Repo, 0, len(l.all))
	for _, r := range l.all {
		if strings.Contains(strings.ToLower(r.Name), needle) ||
			(r.Description != "" && strings.Contains(strings.ToLower(r.Description), needle)) {
			filtered = append(filtered, r)
		}
	}
	l.filtered = filtered
	l.page = 1
}

func (l *List) Term() string { return l.term }

// TotalPages is ceil(filtered / perPage); zero when nothing matches.
func (l *List) TotalPages() int {
	return (len(l.filtered) + l.perPage - 1) / l.perPage
}

// Visible returns the repositories on the current page.
func (l *List) Visible() []Repo {
	start := (l.page - 1) * l.perPage
	if start >= len(l.filtered) {
		return nil
	}
	end := min(start+l.perPage, len(l.filtered))
	return l.filtered[start:end]
}

func (l *List) CanPrev() bool { return l.page > 1 }

func (l *List) CanNext() bool {
	total := l.TotalPages()
	return total != 0 && l.page != total
}

func (l *List) Prev() bool {
	if !l.CanPrev() {
		return false
	}
	l.page--
	return true
}

func (l *List) Next() bool {
	if l.page >= l.TotalPages() {
		return false
	}
	l.page++
	return true
}

// PageInfo is the pager caption, counting at least one page.
func (l *List) PageInfo() string {
	return fmt.Sprintf("Page %d of %d", l.page, max(l.TotalPages(), 1))
}
