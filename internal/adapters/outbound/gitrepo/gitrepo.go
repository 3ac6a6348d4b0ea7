// Package gitrepo implements domain.GitClient using go-git. It never
// shells out to the git binary and never mutates the repository.
package gitrepo

import (
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/dotcheck/dotcheck/internal/logging"
)

// Client answers tracked/ignored queries against one repository. A
// directory that is not a git repository yields a client whose every
// query returns its negative answer, so validation can proceed on
// filesystem and parser checks alone.
type Client struct {
	repo    *git.Repository
	matcher gitignore.Matcher
}

// Open opens the repository at dir. Open never fails: on any go-git
// error the returned client is degraded rather than nil.
func Open(dir string) *Client {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		logger := logging.GetLogger("gitrepo")
		logger.Debug().
			Err(err).
			Str("dir", dir).
			Msg("not a git repository, git checks disabled")
		return &Client{}
	}
	return &Client{repo: repo}
}

// IsTracked reports whether path is recorded in the git index.
func (c *Client) IsTracked(path string) bool {
	if c.repo == nil {
		return false
	}
	idx, err := c.repo.Storer.Index()
	if err != nil {
		return false
	}
	_, err = idx.Entry(filepath.ToSlash(path))
	return err == nil
}

// IsIgnored reports whether path matches the worktree's .gitignore
// rules. Global and system-level excludes are not consulted; the
// repository's own ignore files are what the fix suggestions edit.
func (c *Client) IsIgnored(path string) bool {
	m := c.ignoreMatcher()
	if m == nil {
		return false
	}
	return m.Match(strings.Split(filepath.ToSlash(path), "/"), false)
}

// TrackedFiles returns every index entry path, repo-relative.
func (c *Client) TrackedFiles() []string {
	if c.repo == nil {
		return nil
	}
	idx, err := c.repo.Storer.Index()
	if err != nil {
		return nil
	}
	files := make([]string, 0, len(idx.Entries))
	for _, entry := range idx.Entries {
		files = append(files, entry.Name)
	}
	return files
}

// ignoreMatcher lazily reads the worktree's ignore patterns. The run
// is single-threaded, so no locking is needed.
func (c *Client) ignoreMatcher() gitignore.Matcher {
	if c.matcher != nil {
		return c.matcher
	}
	if c.repo == nil {
		return nil
	}
	wt, err := c.repo.Worktree()
	if err != nil {
		return nil
	}
	patterns, err := gitignore.ReadPatterns(wt.Filesystem, nil)
	if err != nil {
		return nil
	}
	c.matcher = gitignore.NewMatcher(patterns)
	return c.matcher
}
