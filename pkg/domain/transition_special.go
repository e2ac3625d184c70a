package domain

import "fmt"

// SituationKind tags the procedural situations a play can trigger.
type SituationKind string

const (
	SituationKickoff          SituationKind = "kickoff"
	SituationPuntReturn       SituationKind = "punt_return"
	SituationTurnoverRecovery SituationKind = "turnover_recovery"
	SituationSafetyKick       SituationKind = "safety_kick"
	SituationOnsideKick       SituationKind = "onside_kick"
)

// SpecialSituationTransition is one tagged procedural consequence of a play:
// the ensuing kickoff after a score, the return finishing a punt, the spot of
// a turnover recovery, a post-safety free kick, or an onside attempt. A single
// play may legitimately produce more than one, so the calculator emits a list.
type SpecialSituationTransition struct {
	Kind SituationKind `json:"kind"`

	// NewFieldPosition is where the ball is spotted when the procedure
	// completes, on the new possessing side's 0-100 scale.
	NewFieldPosition int `json:"new_field_position"`

	// NewPossessionTeamID is set when the procedure hands the ball to a
	// specific team; empty means possession follows the base transition.
	NewPossessionTeamID string `json:"new_possession_team_id,omitempty"`
	NewPossessionSide   Side   `json:"new_possession_side,omitempty"`

	ReturnYards int  `json:"return_yards,omitempty"`
	FairCatch   bool `json:"fair_catch,omitempty"`
	Touchback   bool `json:"touchback,omitempty"`

	// Recovered is meaningful for onside kicks: whether the kicking side
	// came up with the ball.
	Recovered bool `json:"recovered,omitempty"`

	Description string `json:"description,omitempty"`
}

func (t SpecialSituationTransition) String() string {
	return fmt.Sprintf("%s: ball to %s at the %d", t.Kind, t.NewPossessionTeamID, t.NewFieldPosition)
}
