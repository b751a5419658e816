// Package core drives a dedup run: scan the roots, register every entry in
// the duplicate index, and apply the configured action to each duplicate.
package core

import (
	"github.com/arthur-debert/dedup/pkg/errors"
	"github.com/arthur-debert/dedup/pkg/executor"
	"github.com/arthur-debert/dedup/pkg/filesystem"
	"github.com/arthur-debert/dedup/pkg/index"
	"github.com/arthur-debert/dedup/pkg/logging"
	"github.com/arthur-debert/dedup/pkg/paths"
	"github.com/arthur-debert/dedup/pkg/report"
	"github.com/arthur-debert/dedup/pkg/scanner"
	"github.com/arthur-debert/dedup/pkg/types"
)

// RunOptions configures a run.
type RunOptions struct {
	// Roots are the directory trees to scan, in order. Required.
	Roots []string

	// MinSize excludes files at or below this size; zero disables.
	MinSize int64

	// MaxDepth limits traversal depth; zero means unlimited.
	MaxDepth int

	// Action is applied to every detected duplicate. Empty means report only.
	Action types.ActionType

	// DryRun logs mutations without performing them.
	DryRun bool

	// FS overrides the filesystem, for tests. Defaults to the OS filesystem.
	FS types.FS

	// OnAction, if set, observes every duplicate action as it happens.
	// The verbose printer hangs off this.
	OnAction func(types.Action)
}

// Result summarizes a completed run.
type Result struct {
	Stats  report.Stats     `json:"stats"`
	Action types.ActionType `json:"action"`
	DryRun bool             `json:"dry_run,omitempty"`
}

// Run processes all roots sequentially in traversal order and returns the
// accumulated statistics. The first error aborts the run; there is no
// partial-failure mode.
func Run(opts RunOptions) (*Result, error) {
	if len(opts.Roots) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no paths to scan")
	}
	if opts.Action == "" {
		opts.Action = types.ActionReport
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	logger := logging.GetLogger("core")
	logger.Info().
		Strs("roots", opts.Roots).
		Int64("minSize", opts.MinSize).
		Int("maxDepth", opts.MaxDepth).
		Str("action", string(opts.Action)).
		Bool("dryRun", opts.DryRun).
		Msg("starting run")

	ix := index.New(fsys)
	exec := executor.New(fsys, opts.DryRun)
	sc := scanner.New(scanner.Options{MinSize: opts.MinSize, MaxDepth: opts.MaxDepth})
	stats := &report.Stats{}

	for _, root := range opts.Roots {
		err := sc.Walk(root, func(entry types.Entry) error {
			rep, dup, err := ix.Register(entry.Path, entry.Size)
			if err != nil {
				return err
			}

			// A path that is its own representative needs no action.
			if dup && rep != entry.Path {
				// The link target must be resolved while the duplicate
				// still exists; canonicalization reads the filesystem.
				rel, err := paths.Relative(entry.Path, rep)
				if err != nil {
					return err
				}

				action := types.Action{
					Type:           opts.Action,
					Duplicate:      entry.Path,
					Representative: rep,
					LinkTarget:     rel,
					Size:           entry.Size,
				}
				if err := exec.Execute(action); err != nil {
					return err
				}
				if opts.OnAction != nil {
					opts.OnAction(action)
				}
				stats.RecordDuplicate(entry.Size)
			}

			stats.RecordFile()
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	logger.Info().
		Int("files", stats.FilesScanned).
		Int("duplicates", stats.Duplicates).
		Int64("bytesSaved", stats.BytesSaved).
		Msg("run complete")

	return &Result{Stats: *stats, Action: opts.Action, DryRun: opts.DryRun}, nil
}
