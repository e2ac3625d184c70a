// Package rules checks calculated transitions against the sport's legality
// rules before anything touches the game state. The validator never mutates
// its inputs and never stops at the first problem: every violation is
// collected so the caller gets a complete diagnostic in one pass.
package rules

import (
	"fmt"

	"github.com/gridironlabs/gridiron/pkg/domain"
)

// Validator checks an enriched transition for rule compliance against the
// pre-apply game state.
type Validator struct{}

// New returns the stateless validator.
func New() *Validator {
	return &Validator{}
}

// Validate runs every rule family and returns the collected result.
func (v *Validator) Validate(tr domain.EnrichedTransition, state *domain.GameState) domain.ValidationResult {
	var out domain.ValidationResult

	v.checkMetadata(tr, &out)
	v.checkField(tr, &out)
	v.checkPossession(tr, state, &out)
	v.checkScore(tr, &out)
	v.checkClock(tr, state, &out)

	return out
}

func (v *Validator) checkMetadata(tr domain.EnrichedTransition, out *domain.ValidationResult) {
	if tr.ID == "" {
		add(out, domain.RuleGeneral, domain.SeverityError, "transition has no identifier")
	}
	if tr.CreatedAt.IsZero() {
		add(out, domain.RuleGeneral, domain.SeverityError, "transition has no creation timestamp")
	}
	if tr.PossessingTeamID == "" {
		add(out, domain.RuleGeneral, domain.SeverityError, "transition has no originating possession")
	}
}

func (v *Validator) checkField(tr domain.EnrichedTransition, out *domain.ValidationResult) {
	f := tr.Base.Field
	if f == nil {
		add(out, domain.RuleField, domain.SeverityError, "missing field transition")
		return
	}

	if f.NewYardLine < 0 || f.NewYardLine > domain.FieldLength {
		add(out, domain.RuleField, domain.SeverityError,
			fmt.Sprintf("new yard line %d outside 0-%d", f.NewYardLine, domain.FieldLength))
	}
	if f.NewDown < domain.MinDown || f.NewDown > domain.MaxDown {
		add(out, domain.RuleField, domain.SeverityError,
			fmt.Sprintf("new down %d outside %d-%d", f.NewDown, domain.MinDown, domain.MaxDown))
	}
	if f.NewYardsToGo < 0 {
		add(out, domain.RuleField, domain.SeverityError,
			fmt.Sprintf("negative yards to go %d", f.NewYardsToGo))
	}
	if remaining := domain.FieldLength - f.NewYardLine; f.NewYardsToGo > remaining && f.NewYardLine < domain.FieldLength {
		add(out, domain.RuleField, domain.SeverityError,
			fmt.Sprintf("yards to go %d exceeds %d yards to the goal line", f.NewYardsToGo, remaining))
	}
	if f.Touchdown && f.Safety {
		add(out, domain.RuleField, domain.SeverityError, "transition claims both a touchdown and a safety")
	}
	if f.Touchdown && f.NewYardLine < domain.FieldLength {
		add(out, domain.RuleField, domain.SeverityError,
			fmt.Sprintf("touchdown claimed at yard line %d", f.NewYardLine))
	}
	if f.TurnoverOnDowns && f.FirstDown {
		add(out, domain.RuleField, domain.SeverityError, "turnover on downs cannot coincide with a first down")
	}
}

func (v *Validator) checkPossession(tr domain.EnrichedTransition, state *domain.GameState, out *domain.ValidationResult) {
	if tr.PossessingTeamID != "" && tr.PossessingTeamID != state.Field.Possession {
		add(out, domain.RuleGeneral, domain.SeverityError,
			fmt.Sprintf("transition originated with %q in possession, game state says %q",
				tr.PossessingTeamID, state.Field.Possession))
	}

	p := tr.Base.Possession
	if p == nil {
		add(out, domain.RulePossession, domain.SeverityError, "missing possession transition")
		return
	}

	if !p.Changed {
		if tr.Base.Field != nil && tr.Base.Field.TurnoverOnDowns {
			add(out, domain.RulePossession, domain.SeverityError,
				"turnover on downs signaled but possession did not change")
		}
		return
	}

	switch p.Reason {
	case domain.ReasonTurnover, domain.ReasonTurnoverOnDowns, domain.ReasonScore,
		domain.ReasonPunt, domain.ReasonKickoff, domain.ReasonEndOfHalf:
	default:
		add(out, domain.RulePossession, domain.SeverityError,
			fmt.Sprintf("possession change with implausible reason %q", p.Reason))
	}

	if p.Reason == domain.ReasonScore && (tr.Base.Score == nil || !tr.Base.Score.Occurred) {
		add(out, domain.RulePossession, domain.SeverityError,
			"possession change credited to a score that did not occur")
	}

	if p.NewTeamID == "" {
		add(out, domain.RulePossession, domain.SeverityError, "possession change names no team")
	} else if p.NewTeamID != state.HomeTeamID && p.NewTeamID != state.AwayTeamID {
		add(out, domain.RulePossession, domain.SeverityError,
			fmt.Sprintf("possession change to %q, not part of this game", p.NewTeamID))
	}
	if p.NewTeamID == tr.PossessingTeamID {
		add(out, domain.RulePossession, domain.SeverityError,
			"possession change back to the side that already had the ball")
	}
}

func (v *Validator) checkScore(tr domain.EnrichedTransition, out *domain.ValidationResult) {
	s := tr.Base.Score
	if s == nil {
		add(out, domain.RuleScore, domain.SeverityError, "missing score transition")
		return
	}
	if !s.Occurred {
		if s.Points != 0 {
			add(out, domain.RuleScore, domain.SeverityError,
				fmt.Sprintf("no score occurred but %d points awarded", s.Points))
		}
		return
	}

	if want := domain.PointsFor(s.Type); want < 0 {
		add(out, domain.RuleScore, domain.SeverityError,
			fmt.Sprintf("unknown score type %q", s.Type))
	} else if s.Points != want {
		add(out, domain.RuleScore, domain.SeverityError,
			fmt.Sprintf("%s must award %d points, got %d", s.Type, want, s.Points))
	}

	switch s.ScoringSide {
	case domain.SideHome, domain.SideAway:
	default:
		add(out, domain.RuleScore, domain.SeverityError,
			fmt.Sprintf("score attributed to %q instead of a home/away identity", s.ScoringSide))
	}

	// Safeties go to the side without the ball.
	if s.Type == domain.ScoreSafety && s.ScoringSide == tr.PossessingSide.Canonical() {
		add(out, domain.RuleScore, domain.SeverityError,
			"safety points awarded to the possessing side")
	}
	if s.Type == domain.ScoreSafety && !s.RequiresSafetyKick {
		add(out, domain.RuleScore, domain.SeverityWarning,
			"safety without an ensuing free kick")
	}
}

func (v *Validator) checkClock(tr domain.EnrichedTransition, state *domain.GameState, out *domain.ValidationResult) {
	c := tr.Base.Clock
	if c == nil {
		add(out, domain.RuleClock, domain.SeverityError, "missing clock transition")
		return
	}

	if c.NewSecondsRemaining < 0 {
		add(out, domain.RuleClock, domain.SeverityError,
			fmt.Sprintf("clock at %d seconds", c.NewSecondsRemaining))
	}
	if c.NewSecondsRemaining > domain.QuarterSeconds {
		add(out, domain.RuleClock, domain.SeverityError,
			fmt.Sprintf("clock %d exceeds the quarter length", c.NewSecondsRemaining))
	}
	if c.NewQuarter < c.OldQuarter || c.NewQuarter > c.OldQuarter+1 {
		add(out, domain.RuleClock, domain.SeverityError,
			fmt.Sprintf("quarter moved %d -> %d", c.OldQuarter, c.NewQuarter))
	}
	if c.QuarterAdvanced && c.NewQuarter == c.OldQuarter {
		add(out, domain.RuleClock, domain.SeverityError,
			"quarter advance flagged without a quarter change")
	}
	if c.QuarterAdvanced && state.Clock.SecondsRemaining-c.SecondsElapsed > 0 {
		add(out, domain.RuleClock, domain.SeverityError,
			"quarter advanced with time still on the clock")
	}
	if c.EndOfGame && c.OldQuarter < domain.QuartersPerGame {
		add(out, domain.RuleClock, domain.SeverityError,
			fmt.Sprintf("game ended in quarter %d", c.OldQuarter))
	}
	if c.OldQuarter != state.Clock.Quarter {
		add(out, domain.RuleClock, domain.SeverityError,
			fmt.Sprintf("clock transition starts at quarter %d, state is in quarter %d",
				c.OldQuarter, state.Clock.Quarter))
	}
}

func add(out *domain.ValidationResult, dom domain.RuleDomain, sev domain.Severity, msg string) {
	out.Violations = append(out.Violations, domain.Violation{
		Domain:   dom,
		Severity: sev,
		Message:  msg,
	})
}
