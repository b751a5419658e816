// Package hasher computes SHA-256 content fingerprints for duplicate
// detection. A cheap partial digest over the leading block pre-filters
// candidates; the full digest is the authoritative equality test.
package hasher

import (
	"crypto/sha256"
	"encoding/hex"
	"io"

	"github.com/arthur-debert/dedup/pkg/errors"
	"github.com/arthur-debert/dedup/pkg/types"
)

// BlockLen is the buffer size used for both partial and full hashing.
const BlockLen = 64 * 1024

// Digest is a 32-byte SHA-256 content fingerprint.
type Digest [sha256.Size]byte

// String returns the digest as lowercase hex.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Partial computes a digest over the first BlockLen bytes of the file,
// looping on short reads until the block is filled or EOF.
//
// The whole buffer is hashed even when the read stopped short: a file
// smaller than BlockLen contributes its content plus zero padding. Changing
// this changes which files compare as equal, so it stays as is.
func Partial(fsys types.FS, path string) (Digest, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return Digest{}, errors.Wrapf(err, errors.ErrFileAccess, "failed to open %s for hashing", path)
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, BlockLen)
	total := 0
	for total < BlockLen {
		n, rerr := f.Read(buf[total:])
		total += n
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return Digest{}, errors.Wrapf(rerr, errors.ErrFileHash, "failed to read %s", path)
		}
		if n == 0 {
			break
		}
	}

	return sha256.Sum256(buf), nil
}

// Full computes a digest over the entire file content in BlockLen chunks.
// Each iteration hashes the whole buffer, not just the bytes read, so the
// final short chunk carries the same padding quirk as Partial.
func Full(fsys types.FS, path string) (Digest, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return Digest{}, errors.Wrapf(err, errors.ErrFileAccess, "failed to open %s for hashing", path)
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	buf := make([]byte, BlockLen)
	for {
		n, rerr := f.Read(buf)
		if n > 0 {
			h.Write(buf)
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return Digest{}, errors.Wrapf(rerr, errors.ErrFileHash, "failed to read %s", path)
		}
		if n == 0 {
			break
		}
	}

	var d Digest
	h.Sum(d[:0])
	return d, nil
}

// Cache memoizes full digests by path. Entries are never invalidated within
// a run; files are assumed immutable for the run's duration.
type Cache struct {
	digests map[string]Digest
}

// NewCache creates an empty digest cache.
func NewCache() *Cache {
	return &Cache{digests: make(map[string]Digest)}
}

// Full returns the cached full digest for path, computing and storing it on
// first use. A path's content is read at most once per run, no matter how
// many comparisons involve it.
func (c *Cache) Full(fsys types.FS, path string) (Digest, error) {
	if d, ok := c.digests[path]; ok {
		return d, nil
	}
	d, err := Full(fsys, path)
	if err != nil {
		return Digest{}, err
	}
	c.digests[path] = d
	return d, nil
}

// Len returns the number of cached digests.
func (c *Cache) Len() int {
	return len(c.digests)
}
