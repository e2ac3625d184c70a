package calc

import (
	"github.com/gridironlabs/gridiron/pkg/domain"
)

// ClockCalculator derives the game-clock consequences of one play: elapsed
// time, stoppages, quarter rollovers, and the two-minute warning.
type ClockCalculator struct {
	quarterSeconds int
}

// NewClockCalculator returns a clock calculator with the standard quarter
// length.
func NewClockCalculator() *ClockCalculator {
	return &ClockCalculator{quarterSeconds: domain.QuarterSeconds}
}

// Calculate computes the clock transition. The resulting clock is clamped at
// zero; a quarter rollover resets it to the full quarter length.
func (c *ClockCalculator) Calculate(play domain.PlayResult, state *domain.GameState) domain.ClockTransition {
	old := state.Clock

	t := domain.ClockTransition{
		SecondsElapsed:      play.ElapsedSeconds,
		OldQuarter:          old.Quarter,
		OldSecondsRemaining: old.SecondsRemaining,
	}

	remaining := old.SecondsRemaining - play.ElapsedSeconds
	if remaining < 0 {
		remaining = 0
	}

	t.Stops, t.StopReason = c.stoppage(play, state)

	// Two-minute warning: only quarters 2 and 4, only when this play
	// itself crosses the 120-second boundary.
	if (old.Quarter == 2 || old.Quarter == domain.QuartersPerGame) &&
		old.SecondsRemaining > domain.TwoMinuteMark && remaining <= domain.TwoMinuteMark {
		t.TwoMinuteWarning = true
		t.Stops = true
		if t.StopReason == domain.StopNone {
			t.StopReason = domain.StopTwoMinute
		}
	}

	if remaining > 0 {
		t.NewQuarter = old.Quarter
		t.NewSecondsRemaining = remaining
		return t
	}

	// Quarter expired.
	if old.Quarter >= domain.QuartersPerGame {
		t.NewQuarter = old.Quarter
		t.NewSecondsRemaining = 0
		t.EndOfGame = true
		t.Stops = true
		if t.StopReason == domain.StopNone {
			t.StopReason = domain.StopEndOfQuarter
		}
		return t
	}

	t.NewQuarter = old.Quarter + 1
	t.NewSecondsRemaining = c.quarterSeconds
	t.QuarterAdvanced = true
	t.EndOfHalf = old.Quarter == domain.HalftimeQuarter
	t.Stops = true
	if t.StopReason == domain.StopNone {
		t.StopReason = domain.StopEndOfQuarter
	}
	return t
}

// stoppage maps a play to its clock-stopping rule, if any.
func (c *ClockCalculator) stoppage(play domain.PlayResult, state *domain.GameState) (bool, domain.ClockStopReason) {
	if play.IsScore {
		return true, domain.StopScore
	}
	if play.IsTurnover {
		return true, domain.StopTurnover
	}
	switch play.Outcome {
	case domain.OutcomeIncomplete:
		return true, domain.StopIncomplete
	case domain.OutcomeOutOfBounds:
		return true, domain.StopOutOfBounds
	case domain.OutcomePenalty:
		return true, domain.StopPenalty
	case domain.OutcomeTimeout:
		return true, domain.StopTimeout
	}
	// A punt away stops the clock for the change of possession.
	if play.Type == domain.PlayPunt {
		return true, domain.StopPossession
	}
	// A gained first down stops the clock for the measurement. Kick
	// distances are not offensive yardage and never move the chains.
	if !play.IsKick() && play.Yards >= state.Field.YardsToGo && play.Yards > 0 {
		return true, domain.StopFirstDown
	}
	return false, domain.StopNone
}
