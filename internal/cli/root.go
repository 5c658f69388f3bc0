package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"os-scheduler/config"
	"os-scheduler/internal/logging"
	"os-scheduler/internal/schedulers"
)

// rootOptions is shared by one command tree. Persistent flags land here and
// PersistentPreRun fills in the config and logger before any subcommand runs.
type rootOptions struct {
	logLevel  string
	logFormat string

	cfg    *config.SchedulerConfig
	logger zerolog.Logger
}

// NewRootCmd creates the root cobra command. Configuration comes from
// ./config.yaml and SCHEDULER_* environment variables.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "os-scheduler",
		Short: "CPU scheduling simulator",
		Long:  "Simulates FCFS, SJF, round robin, priority, preemptive priority, SRTF and MLFQ scheduling over a set of processes.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			loaded := *config.GetSchedulerConfig()
			if opts.logLevel != "" {
				loaded.LogLevel = opts.logLevel
			}
			if opts.logFormat != "" {
				loaded.LogFormat = opts.logFormat
			}
			opts.cfg = &loaded
			opts.logger = logging.Setup(loaded.LogLevel, loaded.LogFormat)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides config")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "Log format (console, json); overrides config")

	root.AddCommand(
		newServeCmd(opts),
		newSimulateCmd(opts),
	)

	return root
}

func (o *rootOptions) newEngine(observer schedulers.Observer) *schedulers.Engine {
	return schedulers.NewEngine(schedulers.Options{
		TimeQuantum:       o.cfg.RoundRobinTimeQuantum,
		LevelsTimeQuantum: o.cfg.MultilevelFeedbackQueueLevelsTimeQuantum,
	}, o.logger, observer)
}
