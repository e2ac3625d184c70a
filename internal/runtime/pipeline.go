// Package runtime contains the orchestrator: the state machine that takes one
// play result through Calculate, Validate, Apply, and Track. Stages are
// strictly sequential per invocation; a play is never partially processed
// across calls. Violations stop the pipeline before any mutation; an apply
// failure leaves the state rolled back; tracking runs last and can never
// change the outcome.
package runtime

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gridironlabs/gridiron/internal/apply"
	"github.com/gridironlabs/gridiron/internal/calc"
	"github.com/gridironlabs/gridiron/internal/metrics"
	"github.com/gridironlabs/gridiron/internal/rules"
	"github.com/gridironlabs/gridiron/pkg/domain"
	"github.com/gridironlabs/gridiron/pkg/ports"
)

// Hooks are observability callbacks fired during processing. They must not
// mutate their arguments; the pipeline ignores anything they do.
type Hooks struct {
	OnPlayStart  func(domain.PlayResult)
	OnTransition func(domain.EnrichedTransition)
	OnViolation  func([]domain.Violation)
	OnApplied    func(*domain.GameState)
}

// Pipeline is the play-resolution orchestrator.
type Pipeline struct {
	coordinator *calc.Coordinator
	validator   *rules.Validator
	applicator  *apply.Applicator
	tracker     ports.Tracker
	metrics     *metrics.Metrics
	logger      *slog.Logger
	hooks       Hooks
	now         func() time.Time
}

// Config carries the pipeline's injected dependencies. Tracker and Rand are
// required; the rest default sensibly.
type Config struct {
	Tracker ports.Tracker
	Rand    ports.RandSource
	Metrics *metrics.Metrics
	Logger  *slog.Logger
	Hooks   Hooks
	Now     func() time.Time
}

// New wires the orchestrator.
func New(cfg Config) *Pipeline {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Pipeline{
		coordinator: calc.NewCoordinator(cfg.Rand),
		validator:   rules.New(),
		applicator:  apply.New(cfg.Logger),
		tracker:     cfg.Tracker,
		metrics:     cfg.Metrics,
		logger:      cfg.Logger,
		hooks:       cfg.Hooks,
		now:         cfg.Now,
	}
}

// Process runs one play through the full pipeline. It never panics: an
// unexpected fault at any stage is recovered, logged, and reported as a
// failed result with zero state mutation.
func (p *Pipeline) Process(play domain.PlayResult, state *domain.GameState, possessingTeamID string) (result domain.PipelineResult) {
	start := time.Now()
	stage := domain.StageIdle

	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("pipeline fault recovered", "stage", stage, "err", fmt.Sprint(r))
			p.metrics.ObserveInternalError()
			result = domain.PipelineResult{
				Success:     false,
				FailedStage: stage,
				Elapsed:     time.Since(start),
				Summary:     fmt.Sprintf("internal error during %s", stage),
			}
		}
		p.metrics.ObservePlay(play, result)
	}()

	if p.hooks.OnPlayStart != nil {
		p.hooks.OnPlayStart(play)
	}

	// Calculate.
	stage = domain.StageCalculating
	stageStart := time.Now()
	base, err := p.coordinator.CalculateAll(play, state)
	if err != nil {
		p.logger.Error("calculation rejected play", "err", err)
		return domain.PipelineResult{
			Success:     false,
			FailedStage: stage,
			Elapsed:     time.Since(start),
			Summary:     fmt.Sprintf("calculation failed: %v", err),
		}
	}

	side := state.Identity().Resolve(possessingTeamID)
	enriched := domain.Enrich(base, play, possessingTeamID, side, p.now())
	p.recordStage(enriched.ID, stage, stageStart)

	if p.hooks.OnTransition != nil {
		p.hooks.OnTransition(enriched)
	}

	// Validate. Violations reach the caller as data; the state is never
	// touched.
	stage = domain.StageValidating
	stageStart = time.Now()
	validation := p.validator.Validate(enriched, state)
	p.recordStage(enriched.ID, stage, stageStart)
	if !validation.OK() {
		if p.hooks.OnViolation != nil {
			p.hooks.OnViolation(validation.Violations)
		}
		p.logger.Warn("play rejected", "transition", enriched.ID, "violations", validation.String())
		res := domain.PipelineResult{
			Success:     false,
			Transition:  &enriched,
			Violations:  validation.Violations,
			FailedStage: stage,
			Elapsed:     time.Since(start),
			Summary:     fmt.Sprintf("rejected: %s", validation.String()),
		}
		p.track(play, enriched, res)
		return res
	}

	// Apply.
	stage = domain.StageApplying
	stageStart = time.Now()
	if err := p.applicator.Apply(enriched, state); err != nil {
		p.recordStage(enriched.ID, stage, stageStart)
		res := domain.PipelineResult{
			Success:     false,
			Transition:  &enriched,
			ApplyError:  err.Error(),
			FailedStage: stage,
			Elapsed:     time.Since(start),
			Summary:     fmt.Sprintf("apply failed: %v", err),
		}
		p.track(play, enriched, res)
		return res
	}
	p.recordStage(enriched.ID, stage, stageStart)

	if p.hooks.OnApplied != nil {
		p.hooks.OnApplied(state)
	}

	// Track. Best-effort by contract, and double-guarded here: even a
	// panicking tracker implementation cannot fail a successfully applied
	// play.
	stage = domain.StageTracking
	res := domain.PipelineResult{
		Success:    true,
		Transition: &enriched,
		Elapsed:    time.Since(start),
		Summary:    enriched.Summary(),
	}
	stageStart = time.Now()
	p.track(play, enriched, res)
	p.recordStage(enriched.ID, stage, stageStart)

	res.Elapsed = time.Since(start)
	return res
}

// track shields the pipeline from tracker faults.
func (p *Pipeline) track(play domain.PlayResult, tr domain.EnrichedTransition, res domain.PipelineResult) {
	if p.tracker == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warn("tracking fault swallowed", "transition", tr.ID, "err", fmt.Sprint(r))
			p.metrics.ObserveTrackerDowngrade()
		}
	}()
	p.tracker.RecordPlay(play, tr, res)
}

func (p *Pipeline) recordStage(playID string, stage domain.PipelineStage, start time.Time) {
	if p.tracker == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			p.metrics.ObserveTrackerDowngrade()
		}
	}()
	p.tracker.RecordStageTiming(playID, stage, time.Since(start).Nanoseconds())
}
