package domain

import "fmt"

// PossessionReason explains why possession changed hands.
type PossessionReason string

const (
	ReasonNone            PossessionReason = ""
	ReasonTurnover        PossessionReason = "turnover"
	ReasonTurnoverOnDowns PossessionReason = "turnover_on_downs"
	ReasonScore           PossessionReason = "score"
	ReasonPunt            PossessionReason = "punt"
	ReasonKickoff         PossessionReason = "kickoff"
	ReasonEndOfHalf       PossessionReason = "end_of_half"
)

// PossessionTransition is the immutable description of one play's effect on
// which side holds the ball. A score flips possession pending the following
// kickoff; the special-situation transitions carry the kickoff itself.
type PossessionTransition struct {
	Changed   bool             `json:"changed"`
	NewTeamID string           `json:"new_team_id,omitempty"`
	NewSide   Side             `json:"new_side,omitempty"`
	Reason    PossessionReason `json:"reason,omitempty"`
}

func (t PossessionTransition) String() string {
	if !t.Changed {
		return "possession: unchanged"
	}
	return fmt.Sprintf("possession: to %s (%s)", t.NewTeamID, t.Reason)
}
