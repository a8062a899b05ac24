// Command mazegraph converts maze bitmaps into corridor graphs and prints
// summaries, node lists and edge lists.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazegraph/internal/config"
	"github.com/katalvlaran/mazegraph/internal/metrics"
)

// Build-time variables set via ldflags.
var (
	version   = "0.1.0"
	commit    = ""
	buildDate = ""
)

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("mazegraph version %s (commit: %s, built: %s)", version, commit, buildDate)
	}
	return fmt.Sprintf("mazegraph version %s-dev", version)
}

// app holds the state resolved by the root command before any subcommand runs.
type app struct {
	cfg *config.Config
	log *logrus.Logger
	rec *metrics.Recorder

	flagConfig      string
	flagWorkers     int
	flagLogLevel    string
	flagFormat      string
	flagMetricsFile string
	flagTieBreak    string
}

func newRootCmd() *cobra.Command {
	a := &app{rec: metrics.New()}

	rootCmd := &cobra.Command{
		Use:               "mazegraph",
		Short:             "mazegraph: turn maze bitmaps into corridor graphs",
		Version:           versionString(),
		PersistentPreRunE: a.setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	def := config.Default()
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.flagConfig, "config", "", "Config file (default $HOME/.mazegraph/config.yaml)")
	pf.IntVar(&a.flagWorkers, "workers", def.Workers, "Goroutines for pixel classification and linking (env: "+config.EnvWorkers+")")
	pf.StringVar(&a.flagLogLevel, "log-level", def.LogLevel, "Log level: debug|info|warn|error (env: "+config.EnvLogLevel+")")
	pf.StringVar(&a.flagFormat, "format", def.Format, "Output format: text|json|yaml (env: "+config.EnvFormat+")")
	pf.StringVar(&a.flagMetricsFile, "metrics-file", def.MetricsFile, "Write Prometheus metrics to this textfile (env: "+config.EnvMetricsFile+")")
	pf.StringVar(&a.flagTieBreak, "tie-break", def.TieBreak, "Equidistant markers: first-scanned|reject (env: "+config.EnvTieBreak+")")

	versionCmd := newVersionCmd()
	versionCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error { return nil } // no config needed

	rootCmd.AddCommand(a.newInspectCmd())
	rootCmd.AddCommand(a.newNodesCmd())
	rootCmd.AddCommand(a.newEdgesCmd())
	rootCmd.AddCommand(versionCmd)
	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		fatal("mazegraph", err)
	}
}

// setup resolves the configuration (defaults, file, env, then explicitly set
// flags) and creates the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Workers = a.flagWorkers
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.flagLogLevel
	}
	if flags.Changed("format") {
		cfg.Format = a.flagFormat
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = a.flagMetricsFile
	}
	if flags.Changed("tie-break") {
		cfg.TieBreak = a.flagTieBreak
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	a.cfg = cfg

	a.log = logrus.New()
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	a.log.SetLevel(cfg.Level())
	return nil
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
	os.Exit(1)
}
