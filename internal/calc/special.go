package calc

import (
	"fmt"

	"github.com/gridironlabs/gridiron/pkg/domain"
	"github.com/gridironlabs/gridiron/pkg/ports"
)

// SpecialSituationsCalculator derives the procedural situations a play
// triggers: ensuing kickoffs, punt returns, turnover recoveries, safety free
// kicks, and onside attempts. It is the only calculator that draws
// randomness, and only through the injected source.
type SpecialSituationsCalculator struct {
	rand ports.RandSource
}

// NewSpecialSituationsCalculator builds the calculator around a seedable
// randomness source.
func NewSpecialSituationsCalculator(rand ports.RandSource) *SpecialSituationsCalculator {
	return &SpecialSituationsCalculator{rand: rand}
}

// Calculate returns the list of situations the play triggers, in the order
// they occur on the field. A single play may produce several: a safety yields
// both the free-kick procedure and the ensuing return.
func (c *SpecialSituationsCalculator) Calculate(play domain.PlayResult, state *domain.GameState) []domain.SpecialSituationTransition {
	var out []domain.SpecialSituationTransition

	resolver := state.Identity()
	possessing := state.PossessingSide().Canonical()

	if play.IsTurnover {
		out = append(out, c.turnoverRecovery(play, state, resolver, possessing))
	}

	if play.Outcome == domain.OutcomeSafety {
		// The conceding side free-kicks from its own 20; the scoring
		// side receives.
		scoring := possessing.Opponent()
		out = append(out,
			domain.SpecialSituationTransition{
				Kind:                domain.SituationSafetyKick,
				NewFieldPosition:    domain.SafetyKickSpot,
				NewPossessionSide:   possessing,
				NewPossessionTeamID: resolver.TeamID(possessing),
				Description:         "free kick after safety",
			},
			c.kickReturn(domain.SituationKickoff, scoring, resolver, "safety free kick return"),
		)
		return out
	}

	if scoredKickoff, scoring := c.kickoffFollows(play, possessing); scoredKickoff {
		if c.shouldOnside(play, state, scoring) {
			out = append(out, c.onsideKick(scoring, resolver))
		} else {
			receiving := scoring.Opponent()
			out = append(out, c.kickReturn(domain.SituationKickoff, receiving, resolver, "kickoff return"))
		}
	}

	if play.Type == domain.PlayPunt && !play.IsTurnover {
		out = append(out, c.puntReturn(play, state, resolver, possessing))
	}

	return out
}

// kickoffFollows reports whether the play ends in a score that mandates a
// kickoff, and which side kicks (the scoring side).
func (c *SpecialSituationsCalculator) kickoffFollows(play domain.PlayResult, possessing domain.Side) (bool, domain.Side) {
	switch play.Outcome {
	case domain.OutcomeFieldGoalGood, domain.OutcomeExtraPointGood, domain.OutcomeTwoPointGood,
		domain.OutcomeExtraPointMiss, domain.OutcomeTwoPointFailed:
		// Conversions kick off whether or not they scored.
		return true, possessing
	case domain.OutcomeTouchdown:
		if play.Type == domain.PlayFieldGoal {
			return false, domain.SideNeutral
		}
		if play.IsTurnover {
			return true, possessing.Opponent()
		}
		return true, possessing
	}
	return false, domain.SideNeutral
}

// shouldOnside applies the late-game rule: the kicking side tries an onside
// kick when it still trails inside the final five minutes of the fourth
// quarter.
func (c *SpecialSituationsCalculator) shouldOnside(play domain.PlayResult, state *domain.GameState, kicking domain.Side) bool {
	if state.Clock.Quarter != domain.QuartersPerGame {
		return false
	}
	if state.Clock.SecondsRemaining >= domain.LateGameOnsideWindow {
		return false
	}
	kickingPts, receivingPts := state.Score.Home, state.Score.Away
	if kicking == domain.SideAway {
		kickingPts, receivingPts = receivingPts, kickingPts
	}
	// The scoreboard has not absorbed this play yet: a side that just tied
	// or took the lead kicks deep.
	kickingPts += play.Points
	return kickingPts < receivingPts
}

func (c *SpecialSituationsCalculator) kickReturn(kind domain.SituationKind, receiving domain.Side, resolver domain.IdentityResolver, desc string) domain.SpecialSituationTransition {
	t := domain.SpecialSituationTransition{
		Kind:                kind,
		NewPossessionSide:   receiving,
		NewPossessionTeamID: resolver.TeamID(receiving),
		Description:         desc,
	}

	// Roughly two in five kickoffs sail through for a touchback.
	if c.rand.Float64() < 0.4 {
		t.Touchback = true
		t.NewFieldPosition = domain.TouchbackSpot
		return t
	}

	t.ReturnYards = 15 + c.rand.Intn(21)
	t.NewFieldPosition = min(5+t.ReturnYards, domain.Midfield)
	t.Description = fmt.Sprintf("%s for %d yards", desc, t.ReturnYards)
	return t
}

func (c *SpecialSituationsCalculator) onsideKick(kicking domain.Side, resolver domain.IdentityResolver) domain.SpecialSituationTransition {
	t := domain.SpecialSituationTransition{
		Kind:             domain.SituationOnsideKick,
		NewFieldPosition: domain.OnsideRecoverySpot,
	}

	// Onside recoveries are rare.
	t.Recovered = c.rand.Float64() < 0.15
	side := kicking.Opponent()
	if t.Recovered {
		side = kicking
		t.Description = "onside kick recovered by the kicking team"
	} else {
		t.Description = "onside kick recovered by the receiving team"
	}
	t.NewPossessionSide = side
	t.NewPossessionTeamID = resolver.TeamID(side)
	return t
}

func (c *SpecialSituationsCalculator) puntReturn(play domain.PlayResult, state *domain.GameState, resolver domain.IdentityResolver, possessing domain.Side) domain.SpecialSituationTransition {
	receiving := possessing.Opponent()
	t := domain.SpecialSituationTransition{
		Kind:                domain.SituationPuntReturn,
		NewPossessionSide:   receiving,
		NewPossessionTeamID: resolver.TeamID(receiving),
	}

	// Receiving spot on the receiving side's scale: an explicit final
	// position from the kick wins, otherwise the punt distance decides.
	spot := domain.FieldLength - clampYardLine(state.Field.YardLine+play.Yards)
	if play.FinalFieldPosition != nil {
		spot = *play.FinalFieldPosition
	}

	if spot <= 0 {
		// Into the end zone: touchback.
		t.Touchback = true
		t.NewFieldPosition = domain.PuntTouchbackSpot
		t.Description = "punt into the end zone, touchback"
		return t
	}

	// Deep punts are fair-catch territory; no return.
	if spot <= domain.DeepPuntThreshold {
		t.FairCatch = true
		t.NewFieldPosition = spot
		t.Description = fmt.Sprintf("fair catch at the %d", spot)
		return t
	}

	t.ReturnYards = c.rand.Intn(15)
	t.NewFieldPosition = min(spot+t.ReturnYards, domain.FieldLength-1)
	t.Description = fmt.Sprintf("punt return for %d yards", t.ReturnYards)
	return t
}

func (c *SpecialSituationsCalculator) turnoverRecovery(play domain.PlayResult, state *domain.GameState, resolver domain.IdentityResolver, possessing domain.Side) domain.SpecialSituationTransition {
	recovering := possessing.Opponent()

	// The recovery spot flips to the recovering side's perspective.
	spot := domain.FieldLength - clampYardLine(state.Field.YardLine+play.Yards)
	if spot < 1 {
		spot = domain.TouchbackSpot
	}
	if spot >= domain.FieldLength {
		spot = domain.FieldLength - 1
	}

	desc := "fumble recovered by the defense"
	if play.Outcome == domain.OutcomeInterception {
		desc = "pass intercepted"
	}

	return domain.SpecialSituationTransition{
		Kind:                domain.SituationTurnoverRecovery,
		NewFieldPosition:    spot,
		NewPossessionSide:   recovering,
		NewPossessionTeamID: resolver.TeamID(recovering),
		Description:         desc,
	}
}
