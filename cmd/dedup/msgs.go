package main

// Message constants
const (
	MsgRootShort = "Find duplicate files in a directory structure"
	MsgRootLong  = `dedup scans one or more directory trees for files with identical content
and reports the space that duplicates occupy. Optionally it collapses
duplicates into relative symlinks to their first-seen copy, or deletes them
outright.

Files are only read when two of them share the same size, and read in full
only when their leading blocks also match, so scanning trees with mostly
unique file sizes is cheap.`

	MsgRootExample = `  # Report duplicates under two directories
  dedup ~/photos /mnt/backup/photos

  # Print each duplicate as it is found
  dedup --verbose ~/photos

  # Replace duplicates with relative symlinks, ignoring files of 4 KiB or less
  dedup --symlink --min-size 4096 ~/photos

  # Delete duplicates, but only preview what would happen
  dedup --remove --dry-run ~/photos`

	MsgFlagMinSize  = "Minimum size (in bytes) of files to search; files at or below are skipped"
	MsgFlagMaxDepth = "Do not search files beyond this depth; files in the specified paths are depth 1"
	MsgFlagVerbose  = "Print file names and sizes of the found duplicates"
	MsgFlagSymlink  = "Replace duplicate files by relative symlinks"
	MsgFlagRemove   = "Remove duplicate files"
	MsgFlagDryRun   = "Preview changes without executing them"
	MsgFlagFormat   = "Output format: auto, term, text or json"
	MsgFlagLog      = "Increase log verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
)
