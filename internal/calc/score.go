package calc

import (
	"github.com/gridironlabs/gridiron/pkg/domain"
)

// ScoreCalculator derives points awarded on one play. Scoring sides are
// always resolved through the game's identity resolver to symbolic HOME/AWAY
// values; nothing in here compares raw team ids.
type ScoreCalculator struct{}

// NewScoreCalculator returns the stateless score calculator.
func NewScoreCalculator() *ScoreCalculator {
	return &ScoreCalculator{}
}

// Calculate dispatches on the play's outcome tag.
func (c *ScoreCalculator) Calculate(play domain.PlayResult, state *domain.GameState) domain.ScoreTransition {
	possessing := state.PossessingSide().Canonical()

	switch play.Outcome {
	case domain.OutcomeTouchdown:
		if play.Type == domain.PlayFieldGoal {
			// A field goal play never counts as a touchdown, whatever
			// the tag claims.
			return domain.ScoreTransition{}
		}
		scoreType := domain.ScoreTouchdown
		side := possessing
		if play.IsTurnover {
			// Taken back the other way: the defense scored.
			scoreType = domain.ScoreDefensiveTouchdown
			side = possessing.Opponent()
		}
		return domain.ScoreTransition{
			Occurred:           true,
			Type:               scoreType,
			Points:             domain.TouchdownPoints,
			ScoringSide:        side,
			RequiresConversion: true,
			RequiresKickoff:    true,
		}

	case domain.OutcomeFieldGoalGood:
		return domain.ScoreTransition{
			Occurred:        true,
			Type:            domain.ScoreFieldGoal,
			Points:          domain.FieldGoalPoints,
			ScoringSide:     possessing,
			RequiresKickoff: true,
			AttemptDistance: fieldGoalDistance(state.Field.YardLine),
		}

	case domain.OutcomeFieldGoalMissed:
		return domain.ScoreTransition{
			AttemptDistance: fieldGoalDistance(state.Field.YardLine),
		}

	case domain.OutcomeSafety:
		// Two points to the side that did not hold the ball.
		return domain.ScoreTransition{
			Occurred:           true,
			Type:               domain.ScoreSafety,
			Points:             domain.SafetyPoints,
			ScoringSide:        possessing.Opponent(),
			RequiresSafetyKick: true,
		}

	case domain.OutcomeExtraPointGood:
		return domain.ScoreTransition{
			Occurred:        true,
			Type:            domain.ScoreExtraPoint,
			Points:          domain.ExtraPointPoints,
			ScoringSide:     possessing,
			RequiresKickoff: true,
		}

	case domain.OutcomeTwoPointGood:
		return domain.ScoreTransition{
			Occurred:        true,
			Type:            domain.ScoreTwoPoint,
			Points:          domain.TwoPointPoints,
			ScoringSide:     possessing,
			RequiresKickoff: true,
		}
	}

	return domain.ScoreTransition{}
}

func fieldGoalDistance(yardLine int) int {
	return domain.FieldLength - yardLine + domain.FieldGoalTackOn
}
