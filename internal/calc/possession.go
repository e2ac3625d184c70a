package calc

import (
	"github.com/gridironlabs/gridiron/pkg/domain"
)

// PossessionCalculator decides whether the ball changes hands and why. It
// consumes the field transition so the turnover-on-downs signal computed
// there has a single owner for the actual flip.
type PossessionCalculator struct{}

// NewPossessionCalculator returns the stateless possession calculator.
func NewPossessionCalculator() *PossessionCalculator {
	return &PossessionCalculator{}
}

// Calculate computes the possession transition. Flips happen on turnover on
// downs, any turnover, any score (pending the following kickoff), and punts.
func (c *PossessionCalculator) Calculate(play domain.PlayResult, state *domain.GameState, field domain.FieldTransition) domain.PossessionTransition {
	var reason domain.PossessionReason
	switch {
	case field.TurnoverOnDowns:
		reason = domain.ReasonTurnoverOnDowns
	case play.IsTurnover:
		reason = domain.ReasonTurnover
	case play.IsScore || field.Touchdown || field.Safety:
		reason = domain.ReasonScore
	case play.Type == domain.PlayPunt:
		reason = domain.ReasonPunt
	default:
		return domain.PossessionTransition{}
	}

	resolver := state.Identity()
	newSide := state.PossessingSide().Canonical().Opponent()
	return domain.PossessionTransition{
		Changed:   true,
		NewTeamID: resolver.TeamID(newSide),
		NewSide:   newSide,
		Reason:    reason,
	}
}
