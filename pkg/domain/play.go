package domain

// PlayType is the category of a snap as decided by the external play
// resolution engine.
type PlayType string

const (
	PlayRun        PlayType = "run"
	PlayPass       PlayType = "pass"
	PlayPunt       PlayType = "punt"
	PlayFieldGoal  PlayType = "field_goal"
	PlayKickoff    PlayType = "kickoff"
	PlayConversion PlayType = "conversion"
)

// PlayOutcome tags what actually happened on the play.
type PlayOutcome string

const (
	OutcomeGain            PlayOutcome = "gain"
	OutcomeTouchdown       PlayOutcome = "touchdown"
	OutcomeIncomplete      PlayOutcome = "incomplete"
	OutcomeSack            PlayOutcome = "sack"
	OutcomeFumble          PlayOutcome = "fumble"
	OutcomeInterception    PlayOutcome = "interception"
	OutcomeSafety          PlayOutcome = "safety"
	OutcomeOutOfBounds     PlayOutcome = "out_of_bounds"
	OutcomePenalty         PlayOutcome = "penalty"
	OutcomeFieldGoalGood   PlayOutcome = "field_goal_good"
	OutcomeFieldGoalMissed PlayOutcome = "field_goal_missed"
	OutcomeExtraPointGood  PlayOutcome = "extra_point_good"
	OutcomeExtraPointMiss  PlayOutcome = "extra_point_missed"
	OutcomeTwoPointGood    PlayOutcome = "two_point_good"
	OutcomeTwoPointFailed  PlayOutcome = "two_point_failed"
	OutcomePuntAway        PlayOutcome = "punt"
	OutcomeTouchback       PlayOutcome = "touchback"
	OutcomeTimeout         PlayOutcome = "timeout"
)

// PenaltyInfo describes an accepted penalty attached to a play. The pipeline
// treats it as descriptive data except for the clock stoppage it implies.
type PenaltyInfo struct {
	Name    string `json:"name"`
	Against string `json:"against"`
	Yards   int    `json:"yards"`
}

// PlayDetail is the attribution bag carried on every play: names and
// descriptive facts used only to build human-readable summaries. The pipeline
// never branches on anything in here.
type PlayDetail struct {
	BallCarrier string       `json:"ball_carrier,omitempty"`
	Passer      string       `json:"passer,omitempty"`
	Receiver    string       `json:"receiver,omitempty"`
	Kicker      string       `json:"kicker,omitempty"`
	Tacklers    []string     `json:"tacklers,omitempty"`
	Blockers    []string     `json:"blockers,omitempty"`
	Penalty     *PenaltyInfo `json:"penalty,omitempty"`
	Note        string       `json:"note,omitempty"`
}

// PlayResult is the already-determined outcome of one play, produced by the
// external play resolution engine and consumed by the pipeline as an opaque,
// immutable record. Decision inputs are limited to Type, Outcome, Yards,
// ElapsedSeconds, the flags, and FinalFieldPosition; Detail is pass-through.
type PlayResult struct {
	Type           PlayType    `json:"type"`
	Outcome        PlayOutcome `json:"outcome"`
	Yards          int         `json:"yards"`
	ElapsedSeconds int         `json:"elapsed_seconds"`
	IsTurnover     bool        `json:"is_turnover"`
	IsScore        bool        `json:"is_score"`
	Points         int         `json:"points"`

	// FinalFieldPosition is set for kicking plays whose result is a spot
	// rather than a yardage delta (punts, kickoffs). It is expressed on
	// the receiving side's 0-100 scale.
	FinalFieldPosition *int `json:"final_field_position,omitempty"`

	Detail PlayDetail `json:"detail"`
}

// IsKick reports whether the play is one of the kicking categories.
func (p PlayResult) IsKick() bool {
	return p.Type == PlayPunt || p.Type == PlayFieldGoal || p.Type == PlayKickoff
}

// StopsClock reports whether the play's outcome halts the game clock.
func (p PlayResult) StopsClock() bool {
	switch p.Outcome {
	case OutcomeIncomplete, OutcomeOutOfBounds, OutcomePenalty, OutcomeTimeout:
		return true
	}
	return p.IsTurnover || p.IsScore
}
