// Package paths provides path handling for dedup: the relative-path
// resolver used to compute symlink targets, and the XDG locations for the
// app's own files.
package paths

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dedup/pkg/errors"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "dedup"

// ConfigFile returns the path of the user configuration file.
func ConfigFile() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.toml")
}

// StateDir returns the directory for run-time state such as the log file.
func StateDir() string {
	return filepath.Join(xdg.StateHome, AppName)
}

// Relative computes a relative path, rooted at base's parent directory, that
// reaches target. Both paths are canonicalized first, so base must not
// itself be a symlink: canonicalizing would resolve through it and the
// computed target would be wrong. Callers enforce this; the scanner only
// yields regular files.
func Relative(base, target string) (string, error) {
	absBase, err := canonicalize(base)
	if err != nil {
		return "", err
	}
	absTarget, err := canonicalize(target)
	if err != nil {
		return "", err
	}

	sep := string(filepath.Separator)
	baseComp := strings.Split(absBase, sep)
	targetComp := strings.Split(absTarget, sep)

	// Longest common leading prefix of the component sequences.
	common := 0
	for common < len(baseComp) && common < len(targetComp) && baseComp[common] == targetComp[common] {
		common++
	}

	// One ".." per base component beyond the prefix, excluding the final
	// component (the file itself): the link lives in base's directory.
	var parts []string
	var residual []string
	if common < len(baseComp)-1 {
		residual = baseComp[common : len(baseComp)-1]
	}
	for _, comp := range residual {
		if comp == "" || comp == "." || comp == ".." {
			// Canonical paths consist of plain named segments only; anything
			// else here is a defect, not a recoverable condition.
			return "", errors.Newf(errors.ErrInternal,
				"unexpected path component %q in canonical path %s", comp, absBase)
		}
		parts = append(parts, "..")
	}
	parts = append(parts, targetComp[common:]...)

	return filepath.Join(parts...), nil
}

// canonicalize resolves path to an absolute form with all symlinks and
// relative segments eliminated.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrPathResolve, "failed to absolutize %s", path)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrPathResolve, "failed to canonicalize %s", path)
	}
	return resolved, nil
}
