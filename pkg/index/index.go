// Package index implements the incremental duplicate-detection index.
//
// Files are bucketed by exact byte size. A size seen once is held without
// hashing at all; only when a second file of the same size arrives are
// partial digests computed, and full digests only when partials collide.
// Deferring hashing to collision time is the key performance property:
// files with unique sizes are never read.
package index

import (
	"github.com/arthur-debert/dedup/pkg/errors"
	"github.com/arthur-debert/dedup/pkg/hasher"
	"github.com/arthur-debert/dedup/pkg/logging"
	"github.com/arthur-debert/dedup/pkg/types"
	"github.com/rs/zerolog"
)

type bucketKind int

const (
	// single holds exactly one path with no digest computed yet
	single bucketKind = iota
	// grouped maps partial digests to paths in registration order
	grouped
)

// bucket is the per-size variant: single until a second, content-distinct
// path of the same size shows up, grouped afterwards.
type bucket struct {
	kind   bucketKind
	path   string
	groups map[hasher.Digest][]string
}

// upgrade transitions a single bucket to grouped, seeded with the existing
// path and the newcomer under their partial digests. This is the only place
// the variant changes.
func (b *bucket) upgrade(prevPartial, newPartial hasher.Digest, newPath string) {
	b.groups = make(map[hasher.Digest][]string)
	b.groups[prevPartial] = append(b.groups[prevPartial], b.path)
	b.groups[newPartial] = append(b.groups[newPartial], newPath)
	b.kind = grouped
	b.path = ""
}

// Index maps file sizes to buckets and owns the full-digest cache. It is
// created once per run, grows monotonically, and is not safe for concurrent
// use; dedup processes entries strictly sequentially.
type Index struct {
	fsys    types.FS
	buckets map[int64]*bucket
	cache   *hasher.Cache
	logger  zerolog.Logger
}

// New creates an empty index reading file content through fsys.
func New(fsys types.FS) *Index {
	return &Index{
		fsys:    fsys,
		buckets: make(map[int64]*bucket),
		cache:   hasher.NewCache(),
		logger:  logging.GetLogger("index"),
	}
}

// Register records a newly observed file and reports whether its content is
// byte-identical to an already-registered file. On a duplicate it returns
// the representative (the first-seen path with that content) and true; the
// duplicate itself is not added to the index. Any I/O failure while hashing
// is returned and aborts the run.
func (ix *Index) Register(path string, size int64) (string, bool, error) {
	b, ok := ix.buckets[size]
	if !ok {
		// First file at this size: no hashing until a collision occurs.
		ix.buckets[size] = &bucket{kind: single, path: path}
		return "", false, nil
	}

	switch b.kind {
	case single:
		return ix.registerAgainstSingle(b, path)
	case grouped:
		return ix.registerAgainstGroup(b, path)
	default:
		return "", false, errors.Newf(errors.ErrInternal, "unknown bucket kind %d", b.kind)
	}
}

func (ix *Index) registerAgainstSingle(b *bucket, path string) (string, bool, error) {
	prevPartial, err := hasher.Partial(ix.fsys, b.path)
	if err != nil {
		return "", false, err
	}
	newPartial, err := hasher.Partial(ix.fsys, path)
	if err != nil {
		return "", false, err
	}

	// Full digests are only consulted when partials collide; files that
	// plainly differ never trigger a full read.
	if newPartial == prevPartial {
		prevFull, err := ix.cache.Full(ix.fsys, b.path)
		if err != nil {
			return "", false, err
		}
		newFull, err := ix.cache.Full(ix.fsys, path)
		if err != nil {
			return "", false, err
		}
		if newFull == prevFull {
			ix.logger.Debug().
				Str("path", path).
				Str("representative", b.path).
				Msg("duplicate of sole entry in size bucket")
			return b.path, true, nil
		}
	}

	b.upgrade(prevPartial, newPartial, path)
	return "", false, nil
}

func (ix *Index) registerAgainstGroup(b *bucket, path string) (string, bool, error) {
	newPartial, err := hasher.Partial(ix.fsys, path)
	if err != nil {
		return "", false, err
	}

	for _, candidate := range b.groups[newPartial] {
		candidateFull, err := ix.cache.Full(ix.fsys, candidate)
		if err != nil {
			return "", false, err
		}
		newFull, err := ix.cache.Full(ix.fsys, path)
		if err != nil {
			return "", false, err
		}
		if newFull == candidateFull {
			ix.logger.Debug().
				Str("path", path).
				Str("representative", candidate).
				Msg("duplicate found in grouped size bucket")
			return candidate, true, nil
		}
	}

	b.groups[newPartial] = append(b.groups[newPartial], path)
	return "", false, nil
}

// Sizes returns the number of distinct file sizes seen so far.
func (ix *Index) Sizes() int {
	return len(ix.buckets)
}
