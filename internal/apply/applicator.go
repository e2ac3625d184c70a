// Package apply commits validated transitions to the live game state as a
// single atomic step. Writes are staged through the state's invariant-checking
// setters; if any one of them rejects a value, the pre-apply snapshot is
// restored before the error is returned, so the state is never observable in
// a partially-updated condition.
package apply

import (
	"fmt"
	"log/slog"

	"github.com/gridironlabs/gridiron/pkg/domain"
)

// Applicator applies enriched transitions to a GameState.
type Applicator struct {
	logger *slog.Logger
}

// New builds an applicator. A nil logger is replaced with a discard logger.
func New(logger *slog.Logger) *Applicator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Applicator{logger: logger}
}

// Apply commits every change in the transition as a unit. On failure the
// state is byte-for-byte the snapshot taken before the first write.
func (a *Applicator) Apply(tr domain.EnrichedTransition, state *domain.GameState) error {
	snap := state.Snapshot()

	if err := a.stage(tr, state); err != nil {
		state.Restore(snap)
		a.logger.Warn("apply rolled back", "transition", tr.ID, "err", err)
		return fmt.Errorf("apply transition %s: %w", tr.ID, err)
	}
	return nil
}

// stage performs the writes in dependency order: score, clock, then ball
// placement (position before down/distance, because the goal-to-go check
// reads the current spot).
func (a *Applicator) stage(tr domain.EnrichedTransition, state *domain.GameState) error {
	base := tr.Base

	if s := base.Score; s != nil && s.Occurred {
		if err := state.AddPoints(s.ScoringSide, s.Points); err != nil {
			return fmt.Errorf("score: %w", err)
		}
	}

	if c := base.Clock; c != nil {
		if err := state.SetClock(c.NewQuarter, c.NewSecondsRemaining); err != nil {
			return fmt.Errorf("clock: %w", err)
		}
	}

	pos, down, toGo, possession := a.finalPlacement(tr, state)

	if err := state.SetFieldPosition(pos); err != nil {
		return fmt.Errorf("field: %w", err)
	}
	if possession != "" && possession != state.Field.Possession {
		if err := state.SetPossession(possession); err != nil {
			return fmt.Errorf("possession: %w", err)
		}
	}
	if err := state.SetDownAndDistance(down, toGo); err != nil {
		return fmt.Errorf("down and distance: %w", err)
	}
	return nil
}

// finalPlacement folds the field transition, the possession flip, and any
// special situations into the spot, down, distance, and possessing team the
// state ends the play with. Special situations are applied in field order;
// the last one carrying possession data wins.
func (a *Applicator) finalPlacement(tr domain.EnrichedTransition, state *domain.GameState) (pos, down, toGo int, possession string) {
	base := tr.Base

	pos, down, toGo = state.Field.YardLine, state.Field.Down, state.Field.YardsToGo
	if f := base.Field; f != nil {
		pos, down, toGo = f.NewYardLine, f.NewDown, f.NewYardsToGo
	}

	if p := base.Possession; p != nil && p.Changed {
		// Perspective flip for the new possessing side; specials below
		// refine the spot when a procedure decides it.
		possession = p.NewTeamID
		pos = domain.FieldLength - pos
		down = 1
		toGo = domain.FirstDownYards
	}

	for _, s := range base.SpecialSituations {
		if s.NewPossessionTeamID == "" {
			continue
		}
		possession = s.NewPossessionTeamID
		pos = s.NewFieldPosition
		down = 1
		toGo = domain.FirstDownYards
	}

	// Keep the snap spot on the field of play.
	if pos < 1 {
		pos = 1
	}
	if pos > domain.FieldLength-1 {
		pos = domain.FieldLength - 1
	}
	toGo = min(toGo, domain.FieldLength-pos)
	return pos, down, toGo, possession
}
