package scanner

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dedup/pkg/errors"
	"github.com/arthur-debert/dedup/pkg/testutil"
	"github.com/arthur-debert/dedup/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, s *Scanner, root string) []types.Entry {
	t.Helper()
	var entries []types.Entry
	err := s.Walk(root, func(entry types.Entry) error {
		entries = append(entries, entry)
		return nil
	})
	require.NoError(t, err)
	return entries
}

func names(entries []types.Entry) []string {
	var out []string
	for _, e := range entries {
		out = append(out, filepath.Base(e.Path))
	}
	return out
}

func TestWalkYieldsRegularFilesInLexicalOrder(t *testing.T) {
	tmp := t.TempDir()
	testutil.CreateFile(t, tmp, "b.txt", "bbb")
	testutil.CreateFile(t, tmp, "a.txt", "aaa")
	testutil.CreateFile(t, tmp, filepath.Join("sub", "c.txt"), "ccc")

	entries := collect(t, New(Options{}), tmp)
	assert.Equal(t, []string{"a.txt", "b.txt", "c.txt"}, names(entries))
	for _, e := range entries {
		assert.Equal(t, int64(3), e.Size)
	}
}

func TestWalkSkipsSymlinks(t *testing.T) {
	tmp := t.TempDir()
	target := testutil.CreateFile(t, tmp, "real.txt", "content")
	testutil.CreateSymlink(t, target, filepath.Join(tmp, "link.txt"))

	entries := collect(t, New(Options{}), tmp)
	assert.Equal(t, []string{"real.txt"}, names(entries))
}

func TestMinSizeZeroIncludesEmptyFiles(t *testing.T) {
	tmp := t.TempDir()
	testutil.CreateFile(t, tmp, "empty", "")

	entries := collect(t, New(Options{MinSize: 0}), tmp)
	assert.Equal(t, []string{"empty"}, names(entries))
	assert.Equal(t, int64(0), entries[0].Size)
}

func TestMinSizeExcludesAtOrBelow(t *testing.T) {
	tmp := t.TempDir()
	testutil.CreateFile(t, tmp, "small", "1234")
	testutil.CreateFile(t, tmp, "large", "12345")

	entries := collect(t, New(Options{MinSize: 4}), tmp)
	assert.Equal(t, []string{"large"}, names(entries))
}

func TestMaxDepthPrunesDeeperFiles(t *testing.T) {
	tmp := t.TempDir()
	testutil.CreateFile(t, tmp, "top.txt", "top")
	testutil.CreateFile(t, tmp, filepath.Join("sub", "mid.txt"), "mid")
	testutil.CreateFile(t, tmp, filepath.Join("sub", "deeper", "low.txt"), "low")

	// Lexical order visits sub/ before top.txt.
	assert.Equal(t, []string{"top.txt"}, names(collect(t, New(Options{MaxDepth: 1}), tmp)))
	assert.Equal(t, []string{"mid.txt", "top.txt"}, names(collect(t, New(Options{MaxDepth: 2}), tmp)))
	assert.Equal(t, []string{"low.txt", "mid.txt", "top.txt"}, names(collect(t, New(Options{}), tmp)))
}

func TestWalkMissingRoot(t *testing.T) {
	err := New(Options{}).Walk(filepath.Join(t.TempDir(), "nope"), func(types.Entry) error {
		t.Fatal("callback should not run")
		return nil
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
}

func TestCallbackErrorAbortsWalk(t *testing.T) {
	tmp := t.TempDir()
	testutil.CreateFile(t, tmp, "a.txt", "aaa")
	testutil.CreateFile(t, tmp, "b.txt", "bbb")

	seen := 0
	wantErr := errors.New(errors.ErrFileHash, "boom")
	err := New(Options{}).Walk(tmp, func(types.Entry) error {
		seen++
		return wantErr
	})
	require.Error(t, err)
	assert.Equal(t, 1, seen)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileHash))
}
