// Package cmd provides the root command and CLI setup for schemescope.
package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/schemescope/internal/adapter"
	"github.com/mouse-blink/schemescope/internal/config"
	"github.com/mouse-blink/schemescope/internal/controller"
	"github.com/mouse-blink/schemescope/internal/domain"
	"github.com/mouse-blink/schemescope/internal/logging"
	m "github.com/mouse-blink/schemescope/internal/model"
)

// ownsTerminalAnnotation marks commands that draw on the whole terminal;
// their logs never go to stderr.
const ownsTerminalAnnotation = "owns-terminal"

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI

var cfg = config.Default()
var logger = logging.NewDiscardLogger()
var logCloser io.Closer = io.NopCloser(nil)

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
}

var configFlag string
var logLevelFlag string
var logFileFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schemescope",
		Short: "Find the color scheme rules that style a scope",
		Long: `schemescope locates the rules of a TextMate color scheme (.tmTheme) whose
selectors match the scope under a cursor, ranks them by specificity and
lets you step through them.

Scheme paths follow Go-style patterns:
  - ./schemes          scheme files in a directory
  - ./schemes/...      scheme files in a directory tree
  - Mono.tmTheme       a single scheme`,
		SilenceUsage:      true,
		PersistentPreRunE: configure,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = logCloser.Close()
		},
	}
	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default ./.schemescope.yaml or ~/.config/schemescope/config.yaml)")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn, error or off")
	cmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "write logs to this file")

	return cmd
}

// configure loads the configuration and logger for the command being run
// and builds the workflow unless one was injected.
func configure(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(configFlag)
	if err != nil {
		return err
	}

	if logLevelFlag != "" {
		loaded.Log.Level = logLevelFlag
	}

	if logFileFlag != "" {
		loaded.Log.File = logFileFlag
	}

	stderr := cmd.ErrOrStderr()
	if cmd.Annotations[ownsTerminalAnnotation] != "" {
		stderr = io.Discard
	}

	l, closer, err := logging.Setup(loaded.Log.File, loaded.Log.Level, stderr)
	if err != nil {
		return err
	}

	cfg, logger, logCloser = loaded, l, closer

	if cfg.File != "" {
		logger.Debug("config loaded", "file", cfg.File)
	}

	if workflow == nil {
		workflow = newWorkflow(cfg, logger)
	}

	return nil
}

func newWorkflow(cfg *config.Config, logger *slog.Logger) domain.Workflow {
	return domain.NewWorkflow(
		fsAdapter,
		reportStore,
		ui,
		domain.WithDedupe(cfg.Dedupe),
		domain.WithLogger(logger),
	)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// parallelism returns flag when set, the configured worker count otherwise.
func parallelism(flag int) int {
	if flag > 0 {
		return flag
	}

	return cfg.Parallel
}

// schemesOrDefault falls back to the configured scheme.
func schemesOrDefault(schemes []string) []m.Path {
	if len(schemes) == 0 && cfg.Scheme != "" {
		return []m.Path{m.Path(cfg.Scheme)}
	}

	return parsePaths(schemes)
}
