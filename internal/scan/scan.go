// Package scan enumerates project files matching glob patterns.
//
// Patterns support "**" for any number of directories and "{a,b}"
// alternation. Matches are returned in directory walk order, which is
// lexicographic within each directory.
package scan

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Globber returns the paths matching an OS-path glob pattern. The returned
// paths keep the pattern's base directory as their prefix.
type Globber interface {
	Glob(pattern string) ([]string, error)
}

// FS globs the local file system.
type FS struct {
	// FilesOnly skips directories that happen to match the pattern.
	FilesOnly bool
}

// Glob implements Globber.
func (f FS) Glob(pattern string) ([]string, error) {
	var opts []doublestar.GlobOption
	if f.FilesOnly {
		opts = append(opts, doublestar.WithFilesOnly())
	}
	matches, err := doublestar.FilepathGlob(pattern, opts...)
	if err != nil {
		return nil, fmt.Errorf("globbing %s: %w", pattern, err)
	}
	return matches, nil
}

// Cached memoises the results of another Globber by pattern. It is meant to
// live for a single generation pass; files created after the first lookup of
// a pattern are not seen.
type Cached struct {
	next  Globber
	cache *lru.Cache[string, []string]
}

// NewCached wraps next with a cache holding up to size patterns.
func NewCached(next Globber, size int) (*Cached, error) {
	cache, err := lru.New[string, []string](size)
	if err != nil {
		return nil, fmt.Errorf("creating glob cache: %w", err)
	}
	return &Cached{next: next, cache: cache}, nil
}

// Glob implements Globber.
func (c *Cached) Glob(pattern string) ([]string, error) {
	if matches, ok := c.cache.Get(pattern); ok {
		return matches, nil
	}
	matches, err := c.next.Glob(pattern)
	if err != nil {
		return nil, err
	}
	c.cache.Add(pattern, matches)
	return matches, nil
}

// Len reports how many patterns are cached.
func (c *Cached) Len() int {
	return c.cache.Len()
}
