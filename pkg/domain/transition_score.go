package domain

import "fmt"

// ScoreType identifies which scoring rule awarded points.
type ScoreType string

const (
	ScoreTouchdown          ScoreType = "touchdown"
	ScoreFieldGoal          ScoreType = "field_goal"
	ScoreSafety             ScoreType = "safety"
	ScoreExtraPoint         ScoreType = "extra_point"
	ScoreTwoPoint           ScoreType = "two_point"
	ScoreDefensiveTouchdown ScoreType = "defensive_touchdown"
)

// PointsFor returns the point value a score type must award. Unknown types
// return -1 so validators can flag them.
func PointsFor(t ScoreType) int {
	switch t {
	case ScoreTouchdown, ScoreDefensiveTouchdown:
		return TouchdownPoints
	case ScoreFieldGoal:
		return FieldGoalPoints
	case ScoreSafety:
		return SafetyPoints
	case ScoreExtraPoint:
		return ExtraPointPoints
	case ScoreTwoPoint:
		return TwoPointPoints
	default:
		return -1
	}
}

// ScoreTransition is the immutable description of points awarded on one play.
// ScoringSide is always a symbolic identity, never a raw team id: the
// calculators resolve ids through the game's IdentityResolver so that points
// land on the right side of the scoreboard even when possession ids and
// home/away labels diverge.
type ScoreTransition struct {
	Occurred    bool      `json:"occurred"`
	Type        ScoreType `json:"type,omitempty"`
	Points      int       `json:"points"`
	ScoringSide Side      `json:"scoring_side,omitempty"`

	// Follow-up procedure flags consumed by the special-situations
	// calculator and the validator.
	RequiresConversion bool `json:"requires_conversion"`
	RequiresKickoff    bool `json:"requires_kickoff"`
	RequiresSafetyKick bool `json:"requires_safety_kick"`

	// AttemptDistance is set for field goals: yards to the goal line plus
	// the end zone and snap depth.
	AttemptDistance int `json:"attempt_distance,omitempty"`
}

func (t ScoreTransition) String() string {
	if !t.Occurred {
		return "score: none"
	}
	return fmt.Sprintf("score: %s, %d pts to %s", t.Type, t.Points, t.ScoringSide)
}
