package domain

import "fmt"

// ClockStopReason explains why the game clock halts after a play.
type ClockStopReason string

const (
	StopNone         ClockStopReason = ""
	StopIncomplete   ClockStopReason = "incomplete_pass"
	StopOutOfBounds  ClockStopReason = "out_of_bounds"
	StopPenalty      ClockStopReason = "penalty"
	StopTurnover     ClockStopReason = "turnover"
	StopScore        ClockStopReason = "score"
	StopTimeout      ClockStopReason = "timeout"
	StopFirstDown    ClockStopReason = "first_down_measurement"
	StopPossession   ClockStopReason = "change_of_possession"
	StopTwoMinute    ClockStopReason = "two_minute_warning"
	StopEndOfQuarter ClockStopReason = "end_of_quarter"
)

// ClockTransition is the immutable description of one play's effect on the
// game clock. NewSecondsRemaining is already clamped at zero and reset to the
// full quarter length when the quarter advances.
type ClockTransition struct {
	SecondsElapsed      int             `json:"seconds_elapsed"`
	OldQuarter          int             `json:"old_quarter"`
	NewQuarter          int             `json:"new_quarter"`
	OldSecondsRemaining int             `json:"old_seconds_remaining"`
	NewSecondsRemaining int             `json:"new_seconds_remaining"`
	Stops               bool            `json:"stops"`
	StopReason          ClockStopReason `json:"stop_reason,omitempty"`
	QuarterAdvanced     bool            `json:"quarter_advanced"`
	TwoMinuteWarning    bool            `json:"two_minute_warning"`
	EndOfHalf           bool            `json:"end_of_half"`
	EndOfGame           bool            `json:"end_of_game"`
}

func (t ClockTransition) String() string {
	s := fmt.Sprintf("clock: Q%d %d:%02d -> Q%d %d:%02d",
		t.OldQuarter, t.OldSecondsRemaining/60, t.OldSecondsRemaining%60,
		t.NewQuarter, t.NewSecondsRemaining/60, t.NewSecondsRemaining%60)
	if t.Stops {
		s += fmt.Sprintf(" (stopped: %s)", t.StopReason)
	}
	return s
}
