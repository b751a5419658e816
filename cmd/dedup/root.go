package main

import (
	"fmt"

	"github.com/arthur-debert/dedup/internal/version"
	"github.com/arthur-debert/dedup/pkg/config"
	"github.com/arthur-debert/dedup/pkg/core"
	"github.com/arthur-debert/dedup/pkg/errors"
	"github.com/arthur-debert/dedup/pkg/logging"
	"github.com/arthur-debert/dedup/pkg/types"
	"github.com/arthur-debert/dedup/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		logVerbosity int
		minSize      int64
		maxDepth     int
		verbose      bool
		symlink      bool
		remove       bool
		dryRun       bool
		format       string
	)

	rootCmd := &cobra.Command{
		Use:     "dedup [flags] paths...",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.MinimumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(logVerbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// Flags win over config file and environment.
			if !cmd.Flags().Changed("min-size") {
				minSize = cfg.Scan.MinSize
			}
			if !cmd.Flags().Changed("max-depth") {
				maxDepth = cfg.Scan.MaxDepth
			}
			if !cmd.Flags().Changed("verbose") {
				verbose = cfg.Output.Verbose
			}
			if !cmd.Flags().Changed("format") {
				format = cfg.Output.Format
			}
			if !cmd.Flags().Changed("dry-run") {
				dryRun = cfg.Action.DryRun
			}

			outFormat, err := ui.ParseFormat(format)
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, "invalid output format")
			}
			printer := ui.NewPrinter(cmd.OutOrStdout(), outFormat)

			action := types.ActionReport
			if symlink {
				action = types.ActionSymlink
			}
			if remove {
				action = types.ActionRemove
			}

			opts := core.RunOptions{
				Roots:    args,
				MinSize:  minSize,
				MaxDepth: maxDepth,
				Action:   action,
				DryRun:   dryRun,
			}
			if verbose {
				opts.OnAction = printer.Action
			}

			result, err := core.Run(opts)
			if err != nil {
				return err
			}

			if printer.Format() == ui.FormatJSON {
				return printer.JSON(result)
			}
			printer.Summary(&result.Stats, result.Action)
			return nil
		},
	}

	rootCmd.PersistentFlags().CountVarP(&logVerbosity, "log-verbose", "v", MsgFlagLog)
	rootCmd.Flags().Int64VarP(&minSize, "min-size", "m", 0, MsgFlagMinSize)
	rootCmd.Flags().IntVarP(&maxDepth, "max-depth", "d", 0, MsgFlagMaxDepth)
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, MsgFlagVerbose)
	rootCmd.Flags().BoolVarP(&symlink, "symlink", "s", false, MsgFlagSymlink)
	rootCmd.Flags().BoolVar(&remove, "remove", false, MsgFlagRemove)
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.Flags().StringVar(&format, "format", "auto", MsgFlagFormat)

	rootCmd.MarkFlagsMutuallyExclusive("symlink", "remove")

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dedup version %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
		},
	}
}
