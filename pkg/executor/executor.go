// Package executor performs the filesystem mutations decided for
// duplicates: deleting them or replacing them with relative symlinks.
package executor

import (
	"github.com/arthur-debert/dedup/pkg/errors"
	"github.com/arthur-debert/dedup/pkg/logging"
	"github.com/arthur-debert/dedup/pkg/types"
	"github.com/rs/zerolog"
)

// Executor applies actions through a types.FS. Mutation failures are fatal;
// there is no retry or partial-failure mode.
type Executor struct {
	fsys   types.FS
	dryRun bool
	logger zerolog.Logger
}

// New creates an executor. With dryRun set, actions are logged but nothing
// is touched.
func New(fsys types.FS, dryRun bool) *Executor {
	return &Executor{
		fsys:   fsys,
		dryRun: dryRun,
		logger: logging.GetLogger("executor"),
	}
}

// Execute applies a single action.
func (e *Executor) Execute(a types.Action) error {
	switch a.Type {
	case types.ActionReport:
		// Reporting is handled by the caller; nothing to mutate.
		return nil
	case types.ActionRemove:
		return e.remove(a)
	case types.ActionSymlink:
		return e.symlink(a)
	default:
		return errors.Newf(errors.ErrInvalidInput, "unsupported action type: %s", a.Type)
	}
}

func (e *Executor) remove(a types.Action) error {
	if e.dryRun {
		e.logger.Info().Str("path", a.Duplicate).Msg("dry run: would remove duplicate")
		return nil
	}

	if err := e.fsys.Remove(a.Duplicate); err != nil {
		return errors.Wrapf(err, errors.ErrFileRemove, "failed to remove %s", a.Duplicate)
	}

	e.logger.Debug().
		Str("path", a.Duplicate).
		Str("representative", a.Representative).
		Msg("removed duplicate")
	return nil
}

func (e *Executor) symlink(a types.Action) error {
	if e.dryRun {
		e.logger.Info().
			Str("path", a.Duplicate).
			Str("target", a.LinkTarget).
			Msg("dry run: would replace duplicate with symlink")
		return nil
	}

	// The duplicate must go first; the link takes its place.
	if err := e.fsys.Remove(a.Duplicate); err != nil {
		return errors.Wrapf(err, errors.ErrFileRemove, "failed to remove %s", a.Duplicate)
	}
	if err := e.fsys.Symlink(a.LinkTarget, a.Duplicate); err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkCreate,
			"failed to link %s -> %s", a.Duplicate, a.LinkTarget)
	}

	e.logger.Debug().
		Str("path", a.Duplicate).
		Str("target", a.LinkTarget).
		Msg("replaced duplicate with symlink")
	return nil
}
