package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"os-scheduler/api"
	"os-scheduler/internal/metrics"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the scheduling HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger := opts.cfg, opts.logger
			if port == 0 {
				port = cfg.Port
			}

			collector := metrics.NewCollector()
			handler := api.NewSchedulerHandlerImpl(cfg, opts.newEngine(collector), logger)
			app := api.NewApp(handler, collector, logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- app.Listen(fmt.Sprintf(":%d", port))
			}()
			logger.Info().Int("port", port).Int("round_robin_time_quantum", cfg.RoundRobinTimeQuantum).Msg("scheduler api listening")

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				logger.Info().Msg("shutting down")
				return app.ShutdownWithTimeout(5 * time.Second)
			}
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Listen port (defaults to the configured port)")
	return cmd
}
