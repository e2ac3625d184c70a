package calc

import (
	"fmt"

	"github.com/gridironlabs/gridiron/pkg/domain"
)

// FieldCalculator derives the ball-placement and down/distance consequences
// of one play.
type FieldCalculator struct{}

// NewFieldCalculator returns the stateless field calculator.
func NewFieldCalculator() *FieldCalculator {
	return &FieldCalculator{}
}

// Calculate computes the field transition for one play against the current
// state. It never emits an out-of-range down: a failed fourth down keeps the
// current down and raises the turnover-on-downs signal for the possession
// calculator to act on.
func (c *FieldCalculator) Calculate(play domain.PlayResult, state *domain.GameState) (domain.FieldTransition, error) {
	old := state.Field

	t := domain.FieldTransition{
		OldYardLine:  old.YardLine,
		OldDown:      old.Down,
		OldYardsToGo: old.YardsToGo,
		YardsGained:  play.Yards,
	}

	// Field goals never move the ball. Good or missed, the next snap is a
	// fresh series: good means a kickoff follows, missed means the
	// opponent takes over on downs at the spot.
	if play.Type == domain.PlayFieldGoal {
		t.NewYardLine = old.YardLine
		t.NewDown = 1
		t.NewYardsToGo = min(domain.FirstDownYards, domain.FieldLength-old.YardLine)
		t.YardsGained = 0
		t.TurnoverOnDowns = play.Outcome == domain.OutcomeFieldGoalMissed
		return finishField(t)
	}

	// Punts never advance the offense: the kick distance is not offensive
	// yardage and the receiver's placement comes from the ensuing return.
	// The record keeps the spot of the kick with a fresh series.
	if play.Type == domain.PlayPunt {
		t.NewYardLine = old.YardLine
		t.NewDown = 1
		t.NewYardsToGo = min(domain.FirstDownYards, domain.FieldLength-old.YardLine)
		t.YardsGained = 0
		return finishField(t)
	}

	newLine := clampYardLine(old.YardLine + play.Yards)

	// Touchdown: crossing the goal line or an explicit tag. Field goals
	// were already excluded above.
	if newLine >= domain.FieldLength || play.Outcome == domain.OutcomeTouchdown {
		t.NewYardLine = domain.FieldLength
		t.NewDown = 1
		t.NewYardsToGo = domain.FirstDownYards
		t.FirstDown = true
		t.Touchdown = true
		return finishField(t)
	}

	// Safety: carried back into (or behind) the possessing side's own goal.
	if newLine <= 0 || play.Outcome == domain.OutcomeSafety {
		t.NewYardLine = 0
		t.NewDown = old.Down
		t.NewYardsToGo = old.YardsToGo
		t.Safety = true
		return finishField(t)
	}

	t.NewYardLine = newLine

	switch {
	case play.Yards >= old.YardsToGo:
		// Moved the chains.
		t.NewDown = 1
		t.NewYardsToGo = min(domain.FirstDownYards, domain.FieldLength-newLine)
		t.FirstDown = true
	case old.Down >= domain.MaxDown:
		// Failed fourth down. The down stays put; possession flips
		// downstream.
		t.NewDown = old.Down
		t.NewYardsToGo = clampToGo(old.YardsToGo-play.Yards, newLine)
		t.TurnoverOnDowns = true
	default:
		t.NewDown = old.Down + 1
		t.NewYardsToGo = clampToGo(old.YardsToGo-play.Yards, newLine)
	}

	return finishField(t)
}

func finishField(t domain.FieldTransition) (domain.FieldTransition, error) {
	out, err := domain.NewFieldTransition(t)
	if err != nil {
		return domain.FieldTransition{}, fmt.Errorf("field calculation produced illegal transition: %w", err)
	}
	return out, nil
}

func clampYardLine(v int) int {
	if v < 0 {
		return 0
	}
	if v > domain.FieldLength {
		return domain.FieldLength
	}
	return v
}

// clampToGo keeps yards-to-go positive and never larger than the distance
// left to the goal line (goal-to-go correction).
func clampToGo(toGo, yardLine int) int {
	if toGo < 1 {
		toGo = 1
	}
	if remaining := domain.FieldLength - yardLine; toGo > remaining {
		return remaining
	}
	return toGo
}
