package domain

import "time"

// SideStatistics are the running tallies for one side of a game.
type SideStatistics struct {
	Plays           int              `json:"plays"`
	PlaysByType     map[PlayType]int `json:"plays_by_type"`
	YardsGained     int              `json:"yards_gained"`
	FirstDowns      int              `json:"first_downs"`
	Turnovers       int              `json:"turnovers"`
	Scores          int              `json:"scores"`
	Points          int              `json:"points"`
	ClockUsed       int              `json:"clock_used"`
	RedZoneTrips    int              `json:"red_zone_trips"`
	ThirdDownTries  int              `json:"third_down_tries"`
	ThirdDownsMoved int              `json:"third_downs_moved"`
}

// GameStatistics is the queryable summary built by the tracker. Keys are
// symbolic sides so the summary survives possession-id churn.
type GameStatistics struct {
	TotalPlays       int                     `json:"total_plays"`
	FailedPlays      int                     `json:"failed_plays"`
	SecondsElapsed   int                     `json:"seconds_elapsed"`
	QuartersStarted  int                     `json:"quarters_started"`
	TwoMinutePlays   int                     `json:"two_minute_plays"`
	PossessionFlips  int                     `json:"possession_flips"`
	BySide           map[Side]SideStatistics `json:"by_side"`
	SpecialTriggered map[SituationKind]int   `json:"special_triggered"`
}

// TrackerCapabilities declares what a tracker implementation can do, so
// callers branch on an explicit descriptor instead of probing at runtime.
type TrackerCapabilities struct {
	Statistics  bool `json:"statistics"`
	Audit       bool `json:"audit"`
	Performance bool `json:"performance"`
}

// StageTiming aggregates observed durations for one pipeline stage.
type StageTiming struct {
	Count int           `json:"count"`
	Total time.Duration `json:"total"`
	Max   time.Duration `json:"max"`
}

// PerformanceReport is the profiling summary from the optional performance
// observer. It never feeds back into gameplay.
type PerformanceReport struct {
	PlaysObserved int                           `json:"plays_observed"`
	Stages        map[PipelineStage]StageTiming `json:"stages"`
	SlowestPlayID string                        `json:"slowest_play_id,omitempty"`
	SlowestPlay   time.Duration                 `json:"slowest_play"`
}
