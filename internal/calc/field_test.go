package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridironlabs/gridiron/pkg/domain"
)

func stateAt(t *testing.T, yardLine, down, toGo int) *domain.GameState {
	t.Helper()
	state := domain.NewGameState("colts", "bears")
	require.NoError(t, state.SetFieldPosition(yardLine))
	require.NoError(t, state.SetDownAndDistance(down, toGo))
	return state
}

func TestFieldCalculator(t *testing.T) {
	calc := NewFieldCalculator()

	t.Run("gain past the marker moves the chains", func(t *testing.T) {
		state := stateAt(t, 25, 2, 8)
		tr, err := calc.Calculate(domain.PlayResult{Type: domain.PlayRun, Outcome: domain.OutcomeGain, Yards: 12}, state)
		require.NoError(t, err)

		assert.Equal(t, 37, tr.NewYardLine)
		assert.Equal(t, 1, tr.NewDown)
		assert.Equal(t, 10, tr.NewYardsToGo)
		assert.True(t, tr.FirstDown)
		assert.False(t, tr.Touchdown)
	})

	t.Run("short gain advances the down", func(t *testing.T) {
		state := stateAt(t, 25, 1, 10)
		tr, err := calc.Calculate(domain.PlayResult{Type: domain.PlayRun, Outcome: domain.OutcomeGain, Yards: 4}, state)
		require.NoError(t, err)

		assert.Equal(t, 29, tr.NewYardLine)
		assert.Equal(t, 2, tr.NewDown)
		assert.Equal(t, 6, tr.NewYardsToGo)
		assert.False(t, tr.FirstDown)
	})

	t.Run("loss stretches the distance", func(t *testing.T) {
		state := stateAt(t, 40, 2, 7)
		tr, err := calc.Calculate(domain.PlayResult{Type: domain.PlayPass, Outcome: domain.OutcomeSack, Yards: -6}, state)
		require.NoError(t, err)

		assert.Equal(t, 34, tr.NewYardLine)
		assert.Equal(t, 3, tr.NewDown)
		assert.Equal(t, 13, tr.NewYardsToGo)
	})

	t.Run("reaching the goal line is a touchdown", func(t *testing.T) {
		state := stateAt(t, 95, 3, 5)
		tr, err := calc.Calculate(domain.PlayResult{Type: domain.PlayPass, Outcome: domain.OutcomeTouchdown, Yards: 5, IsScore: true}, state)
		require.NoError(t, err)

		assert.Equal(t, domain.FieldLength, tr.NewYardLine)
		assert.Equal(t, 1, tr.NewDown)
		assert.Equal(t, 10, tr.NewYardsToGo)
		assert.True(t, tr.Touchdown)
		assert.True(t, tr.Context.InEndZone)
	})

	t.Run("overshooting yardage is clamped to the goal line", func(t *testing.T) {
		state := stateAt(t, 90, 1, 10)
		tr, err := calc.Calculate(domain.PlayResult{Type: domain.PlayRun, Outcome: domain.OutcomeGain, Yards: 40}, state)
		require.NoError(t, err)

		assert.Equal(t, domain.FieldLength, tr.NewYardLine)
		assert.True(t, tr.Touchdown)
	})

	t.Run("driven back into the end zone is a safety", func(t *testing.T) {
		state := stateAt(t, 2, 2, 10)
		tr, err := calc.Calculate(domain.PlayResult{Type: domain.PlayPass, Outcome: domain.OutcomeSack, Yards: -8}, state)
		require.NoError(t, err)

		assert.Equal(t, 0, tr.NewYardLine)
		assert.True(t, tr.Safety)
		assert.False(t, tr.Touchdown)
		assert.True(t, tr.Context.SafetySituation)
	})

	t.Run("failed fourth down signals turnover on downs", func(t *testing.T) {
		state := stateAt(t, 45, 4, 3)
		tr, err := calc.Calculate(domain.PlayResult{Type: domain.PlayRun, Outcome: domain.OutcomeGain, Yards: 1}, state)
		require.NoError(t, err)

		assert.True(t, tr.TurnoverOnDowns)
		assert.False(t, tr.FirstDown)
		// The down never leaves the legal range.
		assert.Equal(t, 4, tr.NewDown)
		assert.Equal(t, 46, tr.NewYardLine)
	})

	t.Run("converted fourth down moves the chains normally", func(t *testing.T) {
		state := stateAt(t, 45, 4, 3)
		tr, err := calc.Calculate(domain.PlayResult{Type: domain.PlayRun, Outcome: domain.OutcomeGain, Yards: 5}, state)
		require.NoError(t, err)

		assert.False(t, tr.TurnoverOnDowns)
		assert.True(t, tr.FirstDown)
		assert.Equal(t, 1, tr.NewDown)
	})

	t.Run("first down near the goal shortens to goal-to-go", func(t *testing.T) {
		state := stateAt(t, 82, 2, 6)
		tr, err := calc.Calculate(domain.PlayResult{Type: domain.PlayRun, Outcome: domain.OutcomeGain, Yards: 12}, state)
		require.NoError(t, err)

		assert.Equal(t, 94, tr.NewYardLine)
		assert.Equal(t, 1, tr.NewDown)
		assert.Equal(t, 6, tr.NewYardsToGo)
		assert.True(t, tr.Context.GoalToGo)
	})

	t.Run("field goals never move the ball", func(t *testing.T) {
		state := stateAt(t, 70, 4, 8)

		good, err := calc.Calculate(domain.PlayResult{Type: domain.PlayFieldGoal, Outcome: domain.OutcomeFieldGoalGood, Yards: 30, IsScore: true}, state)
		require.NoError(t, err)
		assert.Equal(t, 70, good.NewYardLine)
		assert.Equal(t, 0, good.YardsGained)
		assert.False(t, good.TurnoverOnDowns)
		assert.False(t, good.Touchdown)

		missed, err := calc.Calculate(domain.PlayResult{Type: domain.PlayFieldGoal, Outcome: domain.OutcomeFieldGoalMissed}, state)
		require.NoError(t, err)
		assert.Equal(t, 70, missed.NewYardLine)
		assert.True(t, missed.TurnoverOnDowns)
	})

	t.Run("punt distance is not offensive yardage", func(t *testing.T) {
		state := stateAt(t, 60, 4, 8)
		tr, err := calc.Calculate(domain.PlayResult{Type: domain.PlayPunt, Outcome: domain.OutcomePuntAway, Yards: 45}, state)
		require.NoError(t, err)

		assert.Equal(t, 60, tr.NewYardLine)
		assert.Equal(t, 0, tr.YardsGained)
		assert.False(t, tr.FirstDown)
		assert.False(t, tr.Touchdown)
		assert.False(t, tr.TurnoverOnDowns)
		assert.Equal(t, 1, tr.NewDown)
	})

	t.Run("short punt from deep never moves the chains", func(t *testing.T) {
		state := stateAt(t, 20, 4, 12)
		tr, err := calc.Calculate(domain.PlayResult{Type: domain.PlayPunt, Outcome: domain.OutcomePuntAway, Yards: 40}, state)
		require.NoError(t, err)

		assert.Equal(t, 20, tr.NewYardLine)
		assert.False(t, tr.FirstDown)
		assert.False(t, tr.Touchdown)
	})
}
