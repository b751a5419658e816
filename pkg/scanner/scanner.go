// Package scanner walks directory trees and yields the regular files that
// pass the size and depth filters, one at a time in lexical order.
package scanner

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dedup/pkg/errors"
	"github.com/arthur-debert/dedup/pkg/logging"
	"github.com/arthur-debert/dedup/pkg/types"
	"github.com/rs/zerolog"
)

// Options controls which files a walk yields.
type Options struct {
	// MinSize excludes files at or below this size. Zero disables the
	// filter entirely, so empty files are included by default.
	MinSize int64

	// MaxDepth limits how deep the walk descends. Files directly under a
	// root are at depth 1. Zero means unlimited.
	MaxDepth int
}

// WalkFunc receives one entry per qualifying file. Returning an error stops
// the walk and aborts the run.
type WalkFunc func(entry types.Entry) error

// Scanner yields file entries from directory trees.
type Scanner struct {
	opts   Options
	logger zerolog.Logger
}

// New creates a scanner with the given filter options.
func New(opts Options) *Scanner {
	return &Scanner{
		opts:   opts,
		logger: logging.GetLogger("scanner"),
	}
}

// Walk traverses root, calling fn for every regular file that passes the
// filters. Symlinks and other irregular files are skipped. Any traversal or
// metadata error is fatal.
func (s *Scanner) Walk(root string, fn WalkFunc) error {
	cleanRoot := filepath.Clean(root)
	s.logger.Debug().
		Str("root", cleanRoot).
		Int64("minSize", s.opts.MinSize).
		Int("maxDepth", s.opts.MaxDepth).
		Msg("starting walk")

	return filepath.WalkDir(cleanRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "walk failed at %s", path)
		}

		depth := s.depthOf(cleanRoot, path)

		if d.IsDir() {
			if path != cleanRoot && s.opts.MaxDepth > 0 && depth >= s.opts.MaxDepth {
				// Files inside this directory would exceed the limit.
				return fs.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			s.logger.Trace().Str("path", path).Msg("skipping irregular file")
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", path)
		}

		if s.opts.MinSize > 0 && info.Size() <= s.opts.MinSize {
			return nil
		}

		return fn(types.Entry{Path: path, Size: info.Size()})
	})
}

// depthOf reports the depth of path relative to root, where entries
// directly under root are at depth 1.
func (s *Scanner) depthOf(root, path string) int {
	if path == root {
		return 0
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
