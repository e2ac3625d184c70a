package calc

import (
	"fmt"

	"github.com/gridironlabs/gridiron/pkg/domain"
	"github.com/gridironlabs/gridiron/pkg/ports"
)

// Coordinator runs all five calculators against one play and bundles the
// results. It owns no football logic of its own: everything beyond delegation
// and assembly lives in the individual calculators.
type Coordinator struct {
	field      *FieldCalculator
	possession *PossessionCalculator
	score      *ScoreCalculator
	clock      *ClockCalculator
	special    *SpecialSituationsCalculator
}

// NewCoordinator wires the calculators around one randomness source.
func NewCoordinator(rand ports.RandSource) *Coordinator {
	return &Coordinator{
		field:      NewFieldCalculator(),
		possession: NewPossessionCalculator(),
		score:      NewScoreCalculator(),
		clock:      NewClockCalculator(),
		special:    NewSpecialSituationsCalculator(rand),
	}
}

// CalculateAll produces the base transition for one play.
func (c *Coordinator) CalculateAll(play domain.PlayResult, state *domain.GameState) (domain.BaseTransition, error) {
	field, err := c.field.Calculate(play, state)
	if err != nil {
		return domain.BaseTransition{}, fmt.Errorf("field calculator: %w", err)
	}

	possession := c.possession.Calculate(play, state, field)
	score := c.score.Calculate(play, state)
	clock := c.clock.Calculate(play, state)
	special := c.special.Calculate(play, state)

	return domain.BaseTransition{
		Field:             &field,
		Possession:        &possession,
		Score:             &score,
		Clock:             &clock,
		SpecialSituations: special,
	}, nil
}
