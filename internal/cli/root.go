package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mindloom/mindloom/pkg/buildinfo"
	"github.com/mindloom/mindloom/pkg/settings"
)

// Execute runs the mindloom CLI and returns an error if any command fails.
//
// The root command opens an interactive editing session, optionally on
// the document given as the first argument. Subcommands export
// documents and manage autosave snapshots.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands
// via loggerFromContext.
func Execute(ctx context.Context) error {
	var (
		verbose bool
		lang    string
	)

	root := &cobra.Command{
		Use:          "mindloom [file]",
		Short:        "Mindloom is a mind map editor for the terminal",
		Long:         `Mindloom edits mind map documents: create and connect nodes, undo and redo freely, and export the result as a PNG or SVG image.`,
		Args:         cobra.MaximumNArgs(1),
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			registerHooks(logger)
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			prefsPath, err := settings.DefaultPath()
			if err != nil {
				logger.Warn("settings path unavailable", "err", err)
			}

			prefs := settings.Default()
			if prefsPath != "" {
				prefs, err = settings.Load(prefsPath)
				if err != nil {
					logger.Warn("loading settings", "path", prefsPath, "err", err)
					prefs = settings.Default()
				}
			}
			if lang != "" {
				prefs.Language = lang
			}

			docPath := ""
			if len(args) == 1 {
				docPath = args[0]
			}

			_, err = runSession(cmd.Context(), docPath, prefs, prefsPath)
			return err
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().StringVar(&lang, "lang", "", "override the configured language")

	root.AddCommand(newExportCmd())
	root.AddCommand(newSnapshotCmd())

	return root.ExecuteContext(ctx)
}
