package testutil

import (
	"io"
	"io/fs"

	"github.com/arthur-debert/dedup/pkg/types"
)

// CountingFS wraps a types.FS and counts Open calls per path. Tests use it
// to verify how many times a file's content was actually read.
type CountingFS struct {
	inner types.FS
	Opens map[string]int
}

// NewCountingFS wraps fsys with open-call counting.
func NewCountingFS(fsys types.FS) *CountingFS {
	return &CountingFS{inner: fsys, Opens: make(map[string]int)}
}

// TotalOpens returns the number of Open calls across all paths.
func (c *CountingFS) TotalOpens() int {
	total := 0
	for _, n := range c.Opens {
		total += n
	}
	return total
}

func (c *CountingFS) Open(name string) (io.ReadCloser, error) {
	c.Opens[name]++
	return c.inner.Open(name)
}

func (c *CountingFS) Stat(name string) (fs.FileInfo, error) {
	return c.inner.Stat(name)
}

func (c *CountingFS) Lstat(name string) (fs.FileInfo, error) {
	return c.inner.Lstat(name)
}

func (c *CountingFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return c.inner.ReadDir(name)
}

func (c *CountingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return c.inner.WriteFile(name, data, perm)
}

func (c *CountingFS) MkdirAll(path string, perm fs.FileMode) error {
	return c.inner.MkdirAll(path, perm)
}

func (c *CountingFS) Symlink(oldname, newname string) error {
	return c.inner.Symlink(oldname, newname)
}

func (c *CountingFS) Readlink(name string) (string, error) {
	return c.inner.Readlink(name)
}

func (c *CountingFS) Remove(name string) error {
	return c.inner.Remove(name)
}
