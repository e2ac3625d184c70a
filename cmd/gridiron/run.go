package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	gridiron "github.com/gridironlabs/gridiron"
	"github.com/gridironlabs/gridiron/internal/config"
	"github.com/gridironlabs/gridiron/internal/logging"
	"github.com/gridironlabs/gridiron/internal/presentation/tui"
	"github.com/gridironlabs/gridiron/internal/sim"
	"github.com/gridironlabs/gridiron/pkg/adapters/file"
	"github.com/gridironlabs/gridiron/pkg/adapters/redis"
	"github.com/gridironlabs/gridiron/pkg/domain"
	"github.com/gridironlabs/gridiron/pkg/ports"
)

// runCmd simulates one full game end to end.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate a full game through the play-resolution pipeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		seed, _ := cmd.Flags().GetInt64("seed")
		jsonMode, _ := cmd.Flags().GetBool("json")
		levelName, _ := cmd.Flags().GetString("log-level")

		cfg, err := config.LoadSim(cfgPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("seed") {
			cfg.Seed = seed
		}
		if cfg.Seed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		logger := logging.New(parseLevel(levelName))
		return runGame(cmd.Context(), cfg, logger, jsonMode)
	},
}

func runGame(ctx context.Context, cfg config.Sim, logger *slog.Logger, jsonMode bool) error {
	state := domain.NewGameState(cfg.Teams.Home, cfg.Teams.Away)
	engine := gridiron.New(cfg.GameID,
		gridiron.WithSeed(cfg.Seed),
		gridiron.WithLogger(logger),
	)

	generator := sim.NewGenerator(cfg.Seed+1, cfg.MaxPlays)
	runner := gridiron.NewGameRunner(engine, state, generator)

	renderer := tui.NewRenderer()
	if jsonMode {
		enc := json.NewEncoder(os.Stdout)
		runner.OnResult = func(play domain.PlayResult, res domain.PipelineResult, _ *domain.GameState) {
			_ = enc.Encode(res)
		}
	} else {
		fmt.Println(renderer.Banner(cfg.GameID, state))
		runner.OnResult = func(play domain.PlayResult, res domain.PipelineResult, st *domain.GameState) {
			fmt.Println(renderer.PlayLine(play, res, st))
		}
	}

	summary, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	if !jsonMode {
		fmt.Println(renderer.FinalLine(summary.FinalState))
		stats := engine.Statistics()
		fmt.Printf("plays: %d (rejected %d), possession flips: %d\n",
			stats.TotalPlays, summary.Rejected, stats.PossessionFlips)
	}

	return exportAudit(ctx, cfg, engine, logger)
}

func exportAudit(ctx context.Context, cfg config.Sim, engine *gridiron.Engine, logger *slog.Logger) error {
	var sink ports.AuditSink
	switch {
	case cfg.RedisAddr != "":
		rs := redis.New(cfg.RedisAddr, "", 0)
		defer rs.Close()
		sink = rs
	case cfg.AuditDir != "":
		sink = file.NewSink(cfg.AuditDir)
	default:
		return nil
	}

	if err := engine.ExportAudit(ctx, sink); err != nil {
		return fmt.Errorf("audit export: %w", err)
	}
	logger.Info("audit trail exported", "game", cfg.GameID)
	return nil
}

func parseLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("config", "", "YAML simulation config")
	runCmd.Flags().Int64("seed", 0, "Seed for reproducible games (default: time-based)")
	runCmd.Flags().Bool("json", false, "Emit NDJSON pipeline results instead of play-by-play")
}
