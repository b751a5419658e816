// Package report accumulates run statistics and formats the human-readable
// output lines.
package report

import (
	"fmt"

	"github.com/arthur-debert/dedup/pkg/types"
	"github.com/dustin/go-humanize"
)

// Stats accumulates counts over one run.
type Stats struct {
	FilesScanned int   `json:"files_scanned"`
	Duplicates   int   `json:"duplicates"`
	BytesSaved   int64 `json:"bytes_saved"`
}

// RecordFile counts one scanned file.
func (s *Stats) RecordFile() {
	s.FilesScanned++
}

// RecordDuplicate counts one detected duplicate of the given size.
func (s *Stats) RecordDuplicate(size int64) {
	s.Duplicates++
	s.BytesSaved += size
}

// FormatBytes renders a byte count for humans: exact below 1 KiB, binary
// prefixes above.
func FormatBytes(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%d bytes", n)
	}
	return humanize.IBytes(uint64(n))
}

// ActionLine formats the per-duplicate line printed in verbose mode.
func ActionLine(a types.Action) string {
	if a.Type == types.ActionRemove {
		return fmt.Sprintf("(%s) remove %q", FormatBytes(a.Size), a.Duplicate)
	}
	return fmt.Sprintf("(%s) link %q -> %q", FormatBytes(a.Size), a.Duplicate, a.LinkTarget)
}

// Summary formats the end-of-run summary line for the given action mode.
func Summary(s *Stats, action types.ActionType) string {
	switch action {
	case types.ActionRemove:
		return fmt.Sprintf("Processed %d files. Removed %d files, saving %s.",
			s.FilesScanned, s.Duplicates, FormatBytes(s.BytesSaved))
	case types.ActionSymlink:
		return fmt.Sprintf("Processed %d files. Created %d symlinks, saving %s.",
			s.FilesScanned, s.Duplicates, FormatBytes(s.BytesSaved))
	default:
		return fmt.Sprintf("Processed %d files. Found %d duplicates. Removing them would save %s.",
			s.FilesScanned, s.Duplicates, FormatBytes(s.BytesSaved))
	}
}
