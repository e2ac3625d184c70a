package gridiron_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gridiron "github.com/gridironlabs/gridiron"
	"github.com/gridironlabs/gridiron/pkg/domain"
)

// scriptedSource replays a fixed list of plays.
type scriptedSource struct {
	plays []domain.PlayResult
}

func (s *scriptedSource) Next(*domain.GameState) (domain.PlayResult, bool) {
	if len(s.plays) == 0 {
		return domain.PlayResult{}, false
	}
	play := s.plays[0]
	s.plays = s.plays[1:]
	return play, true
}

func TestGameRunnerDrivesPlays(t *testing.T) {
	engine := gridiron.New("game-1", gridiron.WithSeed(42))
	state := domain.NewGameState("colts", "bears")
	source := &scriptedSource{plays: []domain.PlayResult{
		{Type: domain.PlayRun, Outcome: domain.OutcomeGain, Yards: 12, ElapsedSeconds: 30},
		{Type: domain.PlayPass, Outcome: domain.OutcomeIncomplete, ElapsedSeconds: 5},
		{Type: domain.PlayPass, Outcome: domain.OutcomeGain, Yards: 8, ElapsedSeconds: 20},
	}}

	var seen int
	runner := gridiron.NewGameRunner(engine, state, source)
	runner.OnResult = func(domain.PlayResult, domain.PipelineResult, *domain.GameState) { seen++ }

	summary, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Plays)
	assert.Equal(t, 3, seen)
	assert.Zero(t, summary.Rejected)
	assert.False(t, summary.EndedByTime)
	assert.Equal(t, 845, state.Clock.SecondsRemaining)
	assert.Equal(t, summary.FinalScore, state.Score)
}

func TestGameRunnerStopsAtEndOfGame(t *testing.T) {
	engine := gridiron.New("game-1", gridiron.WithSeed(42))
	state := domain.NewGameState("colts", "bears")
	require.NoError(t, state.SetClock(4, 10))

	source := &scriptedSource{plays: []domain.PlayResult{
		{Type: domain.PlayRun, Outcome: domain.OutcomeGain, Yards: 2, ElapsedSeconds: 30},
		{Type: domain.PlayRun, Outcome: domain.OutcomeGain, Yards: 2, ElapsedSeconds: 30},
	}}

	summary, err := newRunner(engine, state, source).Run(context.Background())
	require.NoError(t, err)

	assert.True(t, summary.EndedByTime)
	assert.Equal(t, 1, summary.Plays, "nothing runs after the final gun")
}

func TestGameRunnerHonorsContext(t *testing.T) {
	engine := gridiron.New("game-1", gridiron.WithSeed(42))
	state := domain.NewGameState("colts", "bears")
	source := &scriptedSource{plays: []domain.PlayResult{
		{Type: domain.PlayRun, Outcome: domain.OutcomeGain, Yards: 2, ElapsedSeconds: 30},
	}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newRunner(engine, state, source).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGameRunnerRecordsBreaks(t *testing.T) {
	engine := gridiron.New("game-1", gridiron.WithSeed(42))
	state := domain.NewGameState("colts", "bears")
	require.NoError(t, state.SetClock(1, 20))

	source := &scriptedSource{plays: []domain.PlayResult{
		{Type: domain.PlayRun, Outcome: domain.OutcomeGain, Yards: 2, ElapsedSeconds: 30},
	}}

	_, err := newRunner(engine, state, source).Run(context.Background())
	require.NoError(t, err)

	var summaries []string
	for _, e := range engine.AuditTrail().Entries {
		if e.Kind == domain.AuditEvent {
			summaries = append(summaries, e.Summary)
		}
	}
	assert.Contains(t, summaries, "end of quarter 1")
}

func newRunner(engine *gridiron.Engine, state *domain.GameState, source gridiron.PlaySource) *gridiron.GameRunner {
	return gridiron.NewGameRunner(engine, state, source)
}
