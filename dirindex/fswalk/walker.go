// Package fswalk produces the flat entry list consumed by the indexing
// engine. Filtering policy lives here, not in the engine: dot-prefixed
// names are skipped, symlinks are never followed, and an optional
// gitignore-style matcher can exclude further paths.
package fswalk

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/dirforge/dirindex/dirindex/index"

	ignore "github.com/sabhiram/go-gitignore"
	"github.com/sourcegraph/conc/pool"
)

// Walker lists a directory subtree into index entries. Directories at the
// same depth are read concurrently, level by level, with bounded workers.
type Walker struct {
	maxWorkers int
	matcher    *ignore.GitIgnore
	logger     *slog.Logger
}

// Option allows for customization of the Walker
type Option func(*Walker)

// WithMaxWorkers bounds the per-level listing concurrency
func WithMaxWorkers(n int) Option {
	return func(w *Walker) {
		if n > 0 {
			w.maxWorkers = n
		}
	}
}

// WithIgnorePatterns compiles gitignore-style lines into an exclusion matcher
func WithIgnorePatterns(patterns ...string) Option {
	return func(w *Walker) {
		w.matcher = ignore.CompileIgnoreLines(patterns...)
	}
}

// WithMatcher sets a pre-compiled exclusion matcher, e.g. from an ignore file
func WithMatcher(matcher *ignore.GitIgnore) Option {
	return func(w *Walker) {
		w.matcher = matcher
	}
}

// WithWalkLogger sets a custom logger
func WithWalkLogger(logger *slog.Logger) Option {
	return func(w *Walker) {
		w.logger = logger
	}
}

func NewWalker(opts ...Option) *Walker {
	w := &Walker{
		// I/O bound: CPU cores * 2, clamped for responsiveness and to
		// prevent resource exhaustion.
		maxWorkers: min(max(runtime.NumCPU()*2, 4), 32),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

type dirJob struct {
	abs string
	rel string
}

// Walk lists the subtree under root and returns forward-slash relative
// entries. Unreadable directories are logged and skipped rather than
// aborting the walk. Entry order is arbitrary; the engine's sorter defines
// the canonical order.
func (w *Walker) Walk(ctx context.Context, root string) ([]index.Entry, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory", root)
	}

	var (
		entries []index.Entry
		mu      sync.Mutex
	)

	// BFS level by level: every directory at the current depth is listed
	// concurrently, its subdirectories feed the next level.
	currentLevel := []dirJob{{abs: root, rel: ""}}

	for len(currentLevel) > 0 {
		var (
			nextLevel []dirJob
			nextMu    sync.Mutex
		)

		levelPool := pool.New().WithMaxGoroutines(w.maxWorkers).WithContext(ctx)

		for _, job := range currentLevel {
			levelPool.Go(func(ctx context.Context) error {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				dirEntries, err := os.ReadDir(job.abs)
				if err != nil {
					w.logger.Warn("skipping unreadable directory",
						"path", job.abs,
						"error", err)
					return nil
				}

				for _, de := range dirEntries {
					name := de.Name()
					if strings.HasPrefix(name, ".") {
						continue
					}
					if de.Type()&os.ModeSymlink != 0 {
						continue
					}

					rel := name
					if job.rel != "" {
						rel = job.rel + "/" + name
					}
					if w.matcher != nil && w.matcher.MatchesPath(rel) {
						continue
					}

					mu.Lock()
					entries = append(entries, index.Entry{Path: rel, IsDir: de.IsDir()})
					mu.Unlock()

					if de.IsDir() {
						nextMu.Lock()
						nextLevel = append(nextLevel, dirJob{abs: filepath.Join(job.abs, name), rel: rel})
						nextMu.Unlock()
					}
				}
				return nil
			})
		}

		if err := levelPool.Wait(); err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
		currentLevel = nextLevel
	}

	return entries, nil
}
