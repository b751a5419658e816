package index

import (
	"strings"
	"testing"

	"github.com/arthur-debert/dedup/pkg/errors"
	"github.com/arthur-debert/dedup/pkg/filesystem"
	"github.com/arthur-debert/dedup/pkg/testutil"
	"github.com/arthur-debert/dedup/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memFS(t *testing.T, files map[string]string) types.FS {
	t.Helper()
	mem := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(mem, name, []byte(content), 0644))
	}
	return filesystem.NewAferoFS(mem)
}

func register(t *testing.T, ix *Index, path string, size int64) (string, bool) {
	t.Helper()
	rep, dup, err := ix.Register(path, size)
	require.NoError(t, err)
	return rep, dup
}

func TestFirstFileAtSizeIsNotDuplicate(t *testing.T) {
	fsys := testutil.NewCountingFS(memFS(t, map[string]string{"/a": "AAAA"}))
	ix := New(fsys)

	rep, dup := register(t, ix, "/a", 4)
	assert.False(t, dup)
	assert.Empty(t, rep)
	assert.Equal(t, 0, fsys.TotalOpens(), "a singleton size must not be hashed")
}

func TestDistinctSizesAreNeverCompared(t *testing.T) {
	fsys := testutil.NewCountingFS(memFS(t, map[string]string{
		"/a": "AAAA",
		"/b": "BBBBBBBB",
	}))
	ix := New(fsys)

	_, dup := register(t, ix, "/a", 4)
	assert.False(t, dup)
	_, dup = register(t, ix, "/b", 8)
	assert.False(t, dup)

	assert.Equal(t, 0, fsys.TotalOpens())
	assert.Equal(t, 2, ix.Sizes())
}

func TestRepresentativeStability(t *testing.T) {
	fsys := memFS(t, map[string]string{
		"/first":  "same content",
		"/second": "same content",
		"/third":  "same content",
	})
	ix := New(fsys)

	_, dup := register(t, ix, "/first", 12)
	assert.False(t, dup)

	rep, dup := register(t, ix, "/second", 12)
	assert.True(t, dup)
	assert.Equal(t, "/first", rep)

	// The duplicate was not persisted: the third file still resolves
	// against the original representative.
	rep, dup = register(t, ix, "/third", 12)
	assert.True(t, dup)
	assert.Equal(t, "/first", rep)
}

func TestSameSizeDistinctContent(t *testing.T) {
	fsys := memFS(t, map[string]string{
		"/a": "content one!",
		"/b": "content two!",
		"/c": "content two!",
	})
	ix := New(fsys)

	_, dup := register(t, ix, "/a", 12)
	assert.False(t, dup)

	// Second distinct content upgrades the bucket but is no duplicate.
	_, dup = register(t, ix, "/b", 12)
	assert.False(t, dup)

	// Matches the second registrant, not the first.
	rep, dup := register(t, ix, "/c", 12)
	assert.True(t, dup)
	assert.Equal(t, "/b", rep)
}

func TestShortCircuitSkipsFullRead(t *testing.T) {
	fsys := testutil.NewCountingFS(memFS(t, map[string]string{
		"/a": "aaaa-content",
		"/b": "bbbb-content",
	}))
	ix := New(fsys)

	register(t, ix, "/a", 12)
	_, dup := register(t, ix, "/b", 12)
	assert.False(t, dup)

	// One partial read each; differing partial digests must never trigger
	// a full-content read.
	assert.Equal(t, 1, fsys.Opens["/a"])
	assert.Equal(t, 1, fsys.Opens["/b"])
}

func TestFullDigestCachedAcrossComparisons(t *testing.T) {
	// Same first block, distinct tails: partial digests collide, so every
	// comparison needs full digests.
	prefix := strings.Repeat("x", 64*1024)
	fsys := testutil.NewCountingFS(memFS(t, map[string]string{
		"/a": prefix + "tail-aa",
		"/b": prefix + "tail-bb",
		"/c": prefix + "tail-cc",
	}))
	ix := New(fsys)
	size := int64(len(prefix) + 7)

	register(t, ix, "/a", size)
	register(t, ix, "/b", size)
	register(t, ix, "/c", size)

	// /a: partial twice (single-bucket comparison recomputes partials) plus
	// one cached full read. /c is compared in full against both candidates
	// but read only twice: once partial, once full.
	assert.Equal(t, 1, fsys.Opens["/c"]-1, "full digest of a new file computed once despite two candidates")
	for path, opens := range fsys.Opens {
		assert.LessOrEqual(t, opens, 3, "path %s read too often", path)
	}
}

func TestIdempotentReRegistration(t *testing.T) {
	fsys := memFS(t, map[string]string{"/a": "AAAA"})
	ix := New(fsys)

	_, dup := register(t, ix, "/a", 4)
	assert.False(t, dup)

	rep, dup := register(t, ix, "/a", 4)
	assert.True(t, dup)
	assert.Equal(t, "/a", rep)
}

func TestEmptyFilesAreDuplicates(t *testing.T) {
	fsys := memFS(t, map[string]string{
		"/empty1": "",
		"/empty2": "",
	})
	ix := New(fsys)

	_, dup := register(t, ix, "/empty1", 0)
	assert.False(t, dup)

	rep, dup := register(t, ix, "/empty2", 0)
	assert.True(t, dup)
	assert.Equal(t, "/empty1", rep)
}

func TestRegisterMissingFile(t *testing.T) {
	fsys := memFS(t, map[string]string{"/a": "AAAA"})
	ix := New(fsys)

	register(t, ix, "/a", 4)
	_, _, err := ix.Register("/gone", 4)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
}
