// Package projects fetches a user's public GitHub repositories and presents
// them as a searchable, paginated list.
package projects

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Repo carries the fields the project cards show.
type Repo struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	HTMLURL     string `json:"html_url"`
	Stars       int    `json:"stargazers_count"`
	Forks       int    `json:"forks_count"`
	Language    string `json:"language"`
}

// Client talks to the GitHub REST API.
type Client struct {
	BaseURL string
	User    string
	HTTP    *http.Client
}

func NewClient(baseURL, user string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		User:    user,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchRepos lists the user's repositories, most recently updated first.
func (c *Client) FetchRepos(ctx context.Context) ([]Repo, error) {
	u := fmt.Sprintf("%s/users/%s/repos?sort=updated&per_page=100", c.BaseURL, url.PathEscape(c.User))
	var repos []Repo
	if err := c.get(ctx, u, &repos); err != nil {
		return nil, fmt.Errorf("fetch repos for %s: %w", c.User, err)
	}
	return repos, nil
}

// FetchRepo loads a single repository by its "owner/name".
func (c *Client) FetchRepo(ctx context.Context, fullName string) (Repo, error) {
	owner, name, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" || name == "" {
		return Repo{}, fmt.Errorf("invalid repository name %q", fullName)
	}
	u := fmt.Sprintf("%s/repos/%s/%s", c.BaseURL, url.PathEscape(owner), url.PathEscape(name))
	var repo Repo
	if err := c.get(ctx, u, &repo); err != nil {
		return Repo{}, fmt.Errorf("fetch repo %s: %w", fullName, err)
	}
	return repo, nil
}

func (c *Client) get(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}
