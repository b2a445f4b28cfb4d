package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"go-wavecleanup/config"
	"go-wavecleanup/cronjobs"
	"go-wavecleanup/logging"
	"go-wavecleanup/mission"
	"go-wavecleanup/routes"
)

type app struct {
	verbose bool
	cfg     *config.Config
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "wavecleanup",
		Short: "Wave Cleanup site, mission API and command line client",
		Long: `wavecleanup serves the Wave Cleanup site and its mission sign-up API.

The same binary can sign up for a mission against a running server, analyze
an image with the configured analyzer and list the monitored hotspots.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a.logger, err = logging.New(a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			var loaded []string
			a.cfg, loaded, err = config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			for _, path := range loaded {
				a.logger.Debug("loaded env file", zap.String("path", path))
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.serveCmd(),
		a.joinCmd(),
		a.analyzeCmd(),
		a.hotspotsCmd(),
	)
	return root
}

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	cfg, logger := a.cfg, a.logger
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	store, err := newStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	events, err := newPublisher(cfg, logger)
	if err != nil {
		return err
	}
	defer events.Close()

	analyzer, err := newAnalyzer(cfg)
	if err != nil {
		return err
	}

	svc := mission.NewService(store, events, logger)

	digest := &cronjobs.DigestJob{Store: store, Summarizer: newSummarizer(cfg), Logger: logger}
	scheduler, err := cronjobs.InitCronJobs(cfg.DigestSchedule, digest, logger)
	if err != nil {
		return err
	}
	defer func() { <-scheduler.Stop().Done() }()

	r, err := routes.SetupRouter(routes.Deps{
		Store:    store,
		Mission:  svc,
		Analyzer: analyzer,
		Locator:  newLocator(cfg, logger),
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr), zap.String("analyzer", cfg.Analyzer))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
