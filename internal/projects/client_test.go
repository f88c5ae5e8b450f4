package projects

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
)

var sampleRepos = []Repo{
	{Name: "portfolio", FullName: "ksandeleon/portfolio", Description: "Personal site", HTMLURL: "https://github.com/ksandeleon/portfolio", Stars: 3, Forks: 1, Language: "JavaScript"},
	{Name: "ml-notes", FullName: "ksandeleon/ml-notes", Description: "Machine learning notebooks", HTMLURL: "https://github.com/ksandeleon/ml-notes", Stars: 7, Language: "Python"},
	{Name: "dotfiles", FullName: "ksandeleon/dotfiles"},
}

// fakeGitHub serves the two endpoints the client uses and returns a function
// listing the request URIs it saw.
func fakeGitHub(t *testing.T, status int) (*httptest.Server, func() []string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var (
		mu   sync.Mutex
		seen []string
	)
	record := func(c *gin.Context) {
		mu.Lock()
		seen = append(seen, c.Request.URL.RequestURI())
		mu.Unlock()
	}
	requests := func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), seen...)
	}

	r := gin.New()
	r.GET("/users/:user/repos", func(c *gin.Context) {
		record(c)
		if status != http.StatusOK {
			c.JSON(status, gin.H{"message": "API rate limit exceeded"})
			return
		}
		if c.Param("user") != "ksandeleon" {
			c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
			return
		}
		c.JSON(http.StatusOK, sampleRepos)
	})
	r.GET("/repos/:owner/:name", func(c *gin.Context) {
		record(c)
		for _, repo := range sampleRepos {
			if repo.FullName == c.Param("owner")+"/"+c.Param("name") {
				c.JSON(http.StatusOK, repo)
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, requests
}

func TestFetchRepos(t *testing.T) {
	srv, seen := fakeGitHub(t, http.StatusOK)
	c := NewClient(srv.URL+"/", "ksandeleon")

	repos, err := c.FetchRepos(context.Background())
	if err != nil {
		t.Fatalf("FetchRepos: %v", err)
	}
	if len(repos) != len(sampleRepos) {
		t.Fatalf("got %d repos, want %d", len(repos), len(sampleRepos))
	}
	if repos[1] != sampleRepos[1] {
		t.Errorf("repo decoded as %+v", repos[1])
	}
	if got := seen(); len(got) != 1 || got[0] != "/users/ksandeleon/repos?sort=updated&per_page=100" {
		t.Errorf("requests = %v", got)
	}
}

func TestFetchReposStatusError(t *testing.T) {
	srv, _ := fakeGitHub(t, http.StatusForbidden)
	c := NewClient(srv.URL, "ksandeleon")

	_, err := c.FetchRepos(context.Background())
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.Code != http.StatusForbidden {
		t.Errorf("code = %d", se.Code)
	}
}

func TestFetchReposCanceled(t *testing.T) {
	srv, _ := fakeGitHub(t, http.StatusOK)
	c := NewClient(srv.URL, "ksandeleon")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.FetchRepos(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestFetchRepo(t *testing.T) {
	srv, seen := fakeGitHub(t, http.StatusOK)
	c := NewClient(srv.URL, "ksandeleon")

	repo, err := c.FetchRepo(context.Background(), "ksandeleon/ml-notes")
	if err != nil {
		t.Fatalf("FetchRepo: %v", err)
	}
	if repo.Stars != 7 || repo.Language != "Python" {
		t.Errorf("repo = %+v", repo)
	}
	if got := seen(); len(got) != 1 || got[0] != "/repos/ksandeleon/ml-notes" {
		t.Errorf("requests = %v", got)
	}

	if _, err := c.FetchRepo(context.Background(), "ksandeleon/missing"); err == nil {
		t.Error("expected an error for a missing repo")
	}
	if _, err := c.FetchRepo(context.Background(), "no-slash"); err == nil {
		t.Error("expected an error for a malformed name")
	}
}
