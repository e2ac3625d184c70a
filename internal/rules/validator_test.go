package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridironlabs/gridiron/pkg/domain"
)

func validTransition(t *testing.T, state *domain.GameState) domain.EnrichedTransition {
	t.Helper()

	field, err := domain.NewFieldTransition(domain.FieldTransition{
		OldYardLine: 25, NewYardLine: 31,
		OldDown: 1, NewDown: 2,
		OldYardsToGo: 10, NewYardsToGo: 4,
		YardsGained: 6,
	})
	require.NoError(t, err)

	base := domain.BaseTransition{
		Field:      &field,
		Possession: &domain.PossessionTransition{},
		Score:      &domain.ScoreTransition{},
		Clock: &domain.ClockTransition{
			SecondsElapsed:      30,
			OldQuarter:          1,
			NewQuarter:          1,
			OldSecondsRemaining: 900,
			NewSecondsRemaining: 870,
		},
	}
	play := domain.PlayResult{Type: domain.PlayRun, Outcome: domain.OutcomeGain, Yards: 6, ElapsedSeconds: 30}
	return domain.Enrich(base, play, state.Field.Possession, state.PossessingSide(), time.Now())
}

func violationDomains(result domain.ValidationResult) []domain.RuleDomain {
	out := make([]domain.RuleDomain, 0, len(result.Violations))
	for _, v := range result.Violations {
		out = append(out, v.Domain)
	}
	return out
}

func TestValidatorAccepts(t *testing.T) {
	v := New()
	state := domain.NewGameState("colts", "bears")

	result := v.Validate(validTransition(t, state), state)
	assert.True(t, result.OK())
	assert.Empty(t, result.Violations)
}

func TestValidatorMetadata(t *testing.T) {
	v := New()
	state := domain.NewGameState("colts", "bears")

	tr := validTransition(t, state)
	tr.ID = ""
	tr.CreatedAt = time.Time{}
	tr.PossessingTeamID = ""

	result := v.Validate(tr, state)
	assert.False(t, result.OK())
	assert.Len(t, result.Violations, 3)
	for _, violation := range result.Violations {
		assert.Equal(t, domain.RuleGeneral, violation.Domain)
	}
}

func TestValidatorField(t *testing.T) {
	v := New()
	state := domain.NewGameState("colts", "bears")

	t.Run("yard line out of range", func(t *testing.T) {
		tr := validTransition(t, state)
		tr.Base.Field.NewYardLine = 140
		result := v.Validate(tr, state)
		assert.False(t, result.OK())
		assert.Contains(t, violationDomains(result), domain.RuleField)
	})

	t.Run("distance past the goal line", func(t *testing.T) {
		tr := validTransition(t, state)
		tr.Base.Field.NewYardLine = 95
		tr.Base.Field.NewYardsToGo = 10
		result := v.Validate(tr, state)
		assert.False(t, result.OK())
	})

	t.Run("touchdown and safety are exclusive", func(t *testing.T) {
		tr := validTransition(t, state)
		tr.Base.Field.Touchdown = true
		tr.Base.Field.Safety = true
		result := v.Validate(tr, state)
		assert.False(t, result.OK())
	})

	t.Run("touchdown short of the goal line", func(t *testing.T) {
		tr := validTransition(t, state)
		tr.Base.Field.Touchdown = true
		result := v.Validate(tr, state)
		assert.False(t, result.OK())
	})

	t.Run("missing field transition", func(t *testing.T) {
		tr := validTransition(t, state)
		tr.Base.Field = nil
		result := v.Validate(tr, state)
		assert.False(t, result.OK())
	})
}

func TestValidatorPossession(t *testing.T) {
	v := New()
	state := domain.NewGameState("colts", "bears")

	t.Run("originating possession must match the state", func(t *testing.T) {
		tr := validTransition(t, state)
		tr.PossessingTeamID = "bears"
		result := v.Validate(tr, state)
		assert.False(t, result.OK())
		assert.Contains(t, violationDomains(result), domain.RuleGeneral)
	})

	t.Run("change to a team outside the game", func(t *testing.T) {
		tr := validTransition(t, state)
		tr.Base.Possession = &domain.PossessionTransition{
			Changed: true, NewTeamID: "packers", NewSide: domain.SideAway, Reason: domain.ReasonTurnover,
		}
		result := v.Validate(tr, state)
		assert.False(t, result.OK())
		assert.Contains(t, violationDomains(result), domain.RulePossession)
	})

	t.Run("change back to the possessing side", func(t *testing.T) {
		tr := validTransition(t, state)
		tr.Base.Possession = &domain.PossessionTransition{
			Changed: true, NewTeamID: "colts", NewSide: domain.SideHome, Reason: domain.ReasonTurnover,
		}
		result := v.Validate(tr, state)
		assert.False(t, result.OK())
	})

	t.Run("score reason without a score", func(t *testing.T) {
		tr := validTransition(t, state)
		tr.Base.Possession = &domain.PossessionTransition{
			Changed: true, NewTeamID: "bears", NewSide: domain.SideAway, Reason: domain.ReasonScore,
		}
		result := v.Validate(tr, state)
		assert.False(t, result.OK())
		assert.Contains(t, violationDomains(result), domain.RulePossession)
	})

	t.Run("implausible reason", func(t *testing.T) {
		tr := validTransition(t, state)
		tr.Base.Possession = &domain.PossessionTransition{
			Changed: true, NewTeamID: "bears", NewSide: domain.SideAway, Reason: "coin_flip",
		}
		result := v.Validate(tr, state)
		assert.False(t, result.OK())
	})

	t.Run("turnover on downs without a flip", func(t *testing.T) {
		tr := validTransition(t, state)
		tr.Base.Field.TurnoverOnDowns = true
		result := v.Validate(tr, state)
		assert.False(t, result.OK())
	})
}

func TestValidatorScore(t *testing.T) {
	v := New()
	state := domain.NewGameState("colts", "bears")

	t.Run("points without a score", func(t *testing.T) {
		tr := validTransition(t, state)
		tr.Base.Score = &domain.ScoreTransition{Points: 6}
		result := v.Validate(tr, state)
		assert.False(t, result.OK())
		assert.Contains(t, violationDomains(result), domain.RuleScore)
	})

	t.Run("wrong point value for the type", func(t *testing.T) {
		tr := validTransition(t, state)
		tr.Base.Score = &domain.ScoreTransition{
			Occurred: true, Type: domain.ScoreTouchdown, Points: 5, ScoringSide: domain.SideHome,
		}
		result := v.Validate(tr, state)
		assert.False(t, result.OK())
	})

	t.Run("score must land on a symbolic side", func(t *testing.T) {
		tr := validTransition(t, state)
		tr.Base.Score = &domain.ScoreTransition{
			Occurred: true, Type: domain.ScoreFieldGoal, Points: 3, ScoringSide: domain.Side("colts"),
		}
		result := v.Validate(tr, state)
		assert.False(t, result.OK())
	})

	t.Run("safety credited to the possessing side", func(t *testing.T) {
		tr := validTransition(t, state)
		tr.Base.Score = &domain.ScoreTransition{
			Occurred: true, Type: domain.ScoreSafety, Points: 2,
			ScoringSide: domain.SideHome, RequiresSafetyKick: true,
		}
		result := v.Validate(tr, state)
		assert.False(t, result.OK())
	})

	t.Run("safety without a free kick only warns", func(t *testing.T) {
		tr := validTransition(t, state)
		tr.Base.Score = &domain.ScoreTransition{
			Occurred: true, Type: domain.ScoreSafety, Points: 2, ScoringSide: domain.SideAway,
		}
		result := v.Validate(tr, state)
		assert.True(t, result.OK(), "warnings must not block an apply")
		assert.NotEmpty(t, result.Violations)
		assert.Empty(t, result.Errors())
	})
}

func TestValidatorClock(t *testing.T) {
	v := New()
	state := domain.NewGameState("colts", "bears")

	t.Run("quarter may only step forward by one", func(t *testing.T) {
		tr := validTransition(t, state)
		tr.Base.Clock.NewQuarter = 3
		result := v.Validate(tr, state)
		assert.False(t, result.OK())
		assert.Contains(t, violationDomains(result), domain.RuleClock)
	})

	t.Run("quarter advance with time remaining", func(t *testing.T) {
		tr := validTransition(t, state)
		tr.Base.Clock.NewQuarter = 2
		tr.Base.Clock.QuarterAdvanced = true
		tr.Base.Clock.NewSecondsRemaining = 900
		result := v.Validate(tr, state)
		assert.False(t, result.OK())
	})

	t.Run("clock beyond the quarter length", func(t *testing.T) {
		tr := validTransition(t, state)
		tr.Base.Clock.NewSecondsRemaining = 2000
		result := v.Validate(tr, state)
		assert.False(t, result.OK())
	})

	t.Run("transition must start at the state's quarter", func(t *testing.T) {
		tr := validTransition(t, state)
		tr.Base.Clock.OldQuarter = 2
		tr.Base.Clock.NewQuarter = 2
		result := v.Validate(tr, state)
		assert.False(t, result.OK())
	})
}

func TestValidatorCollectsEverything(t *testing.T) {
	v := New()
	state := domain.NewGameState("colts", "bears")

	tr := validTransition(t, state)
	tr.Base.Field.NewYardLine = -5
	tr.Base.Clock.NewSecondsRemaining = -1
	tr.Base.Score = &domain.ScoreTransition{Points: 3}

	result := v.Validate(tr, state)
	assert.False(t, result.OK())
	assert.GreaterOrEqual(t, len(result.Violations), 3, "violations are collected, not short-circuited")

	domains := violationDomains(result)
	assert.Contains(t, domains, domain.RuleField)
	assert.Contains(t, domains, domain.RuleClock)
	assert.Contains(t, domains, domain.RuleScore)
}
