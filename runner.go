package gridiron

import (
	"context"
	"fmt"

	"github.com/gridironlabs/gridiron/pkg/domain"
)

// PlaySource produces the external play outcomes a game runner feeds through
// the engine. Implementations decide what happens on each snap; the engine
// only resolves the consequences.
type PlaySource interface {
	// Next returns the next play for the given state, or ok=false when the
	// source has nothing more to offer.
	Next(state *domain.GameState) (play domain.PlayResult, ok bool)
}

// GameSummary is what a completed run reports.
type GameSummary struct {
	Plays       int               `json:"plays"`
	Rejected    int               `json:"rejected"`
	FinalScore  domain.Scoreboard `json:"final_score"`
	FinalState  string            `json:"final_state"`
	EndedByTime bool              `json:"ended_by_time"`
}

// GameRunner drives a full game: it pulls plays from a source and processes
// them until the clock runs out or the source is exhausted. It is a
// convenience caller layer over the engine, not part of the pipeline itself.
type GameRunner struct {
	engine *Engine
	state  *domain.GameState
	source PlaySource

	// OnResult, when set, observes every processed play (play-by-play
	// output, progress bars). Errors and panics in it are the caller's
	// problem; it runs outside the pipeline.
	OnResult func(domain.PlayResult, domain.PipelineResult, *domain.GameState)
}

// NewGameRunner wires a runner around an engine, a state, and a play source.
func NewGameRunner(engine *Engine, state *domain.GameState, source PlaySource) *GameRunner {
	return &GameRunner{engine: engine, state: state, source: source}
}

// Run processes plays until the game ends. The context is checked between
// plays only; a play already submitted always completes.
func (r *GameRunner) Run(ctx context.Context) (GameSummary, error) {
	var summary GameSummary

	r.engine.RecordEvent("game start: " + r.state.Summary())

	for {
		if err := ctx.Err(); err != nil {
			return summary, fmt.Errorf("game interrupted after %d plays: %w", summary.Plays, err)
		}

		play, ok := r.source.Next(r.state)
		if !ok {
			break
		}

		res := r.engine.ProcessPlay(play, r.state, r.state.Field.Possession)
		summary.Plays++
		if !res.Success {
			summary.Rejected++
		}

		if r.OnResult != nil {
			r.OnResult(play, res, r.state)
		}

		if res.Success && res.Transition != nil {
			if c := res.Transition.Base.Clock; c != nil {
				if c.QuarterAdvanced {
					r.engine.RecordEvent(fmt.Sprintf("end of quarter %d", c.OldQuarter))
					if c.EndOfHalf {
						r.engine.RecordEvent("halftime")
					}
				}
				if c.TwoMinuteWarning {
					r.engine.RecordEvent(fmt.Sprintf("two-minute warning, quarter %d", c.NewQuarter))
				}
				if c.EndOfGame {
					summary.EndedByTime = true
				}
			}
		}

		if summary.EndedByTime {
			break
		}
	}

	summary.FinalScore = r.state.Score
	summary.FinalState = r.state.Summary()
	r.engine.RecordEvent("final: " + r.state.Summary())
	return summary, nil
}
