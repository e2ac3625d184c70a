package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	gridiron "github.com/gridironlabs/gridiron"
	"github.com/gridironlabs/gridiron/internal/config"
	"github.com/gridironlabs/gridiron/internal/logging"
	"github.com/gridironlabs/gridiron/internal/metrics"
	"github.com/gridironlabs/gridiron/internal/sim"
	httpadapter "github.com/gridironlabs/gridiron/pkg/adapters/http"
	"github.com/gridironlabs/gridiron/pkg/domain"
)

// serveCmd runs a simulation and exposes its statistics, audit trail, and
// Prometheus metrics over HTTP while it plays out.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Simulate a game and serve its stats, audit trail, and metrics over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadServer()
		if err != nil {
			return err
		}

		levelName := cfg.LogLevel
		if cmd.Flags().Changed("log-level") {
			levelName, _ = cmd.Flags().GetString("log-level")
		}
		logger := logging.New(parseLevel(levelName))
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		m := metrics.New()
		state := domain.NewGameState(cfg.HomeTeam, cfg.AwayTeam)
		engine := gridiron.New(cfg.GameID,
			gridiron.WithSeed(seed),
			gridiron.WithLogger(logger),
			gridiron.WithMetrics(m),
		)

		// Drive the game in the background, pacing plays so the HTTP
		// surface shows a live game rather than an instant final.
		go func() {
			generator := sim.NewGenerator(seed+1, cfg.MaxPlays)
			runner := gridiron.NewGameRunner(engine, state, generator)
			runner.OnResult = func(_ domain.PlayResult, _ domain.PipelineResult, _ *domain.GameState) {
				time.Sleep(250 * time.Millisecond)
			}
			if _, err := runner.Run(cmd.Context()); err != nil {
				logger.Error("simulation stopped", "err", err)
			}
			logger.Info("simulation complete", "game", cfg.GameID)
		}()

		handler := httpadapter.NewHandler(engine, engine.MetricsRegistry(), logger)
		logger.Info("serving", "addr", cfg.Addr, "game", cfg.GameID)

		srv := &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
