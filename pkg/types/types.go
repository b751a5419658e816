// Package types holds the shared types used across dedup's packages.
package types

import (
	"io"
	"io/fs"
)

// Entry is one file yielded by the scanner: the path as encountered during
// traversal and its size in bytes.
type Entry struct {
	Path string
	Size int64
}

// ActionType identifies what happens to a detected duplicate.
type ActionType string

const (
	// ActionReport records the duplicate and leaves the file in place
	ActionReport ActionType = "report"

	// ActionRemove deletes the duplicate
	ActionRemove ActionType = "remove"

	// ActionSymlink replaces the duplicate with a relative symlink to its
	// representative
	ActionSymlink ActionType = "symlink"
)

// Action describes the decision made for one duplicate file.
type Action struct {
	Type           ActionType
	Duplicate      string // path of the duplicate
	Representative string // first-seen path with the same content
	LinkTarget     string // relative path from Duplicate's directory to Representative
	Size           int64
}

// FS abstracts filesystem access so the core can run against the real
// filesystem in production and an in-memory filesystem in tests.
type FS interface {
	Open(name string) (io.ReadCloser, error)
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)
	Remove(name string) error
}
