package track

import (
	"sync"

	"github.com/gridironlabs/gridiron/pkg/domain"
)

// statsCollector keeps the running statistical summary of one game, keyed by
// symbolic side. Guarded by a mutex so read accessors may be called from a
// different goroutine than the one driving plays.
type statsCollector struct {
	mu    sync.Mutex
	stats domain.GameStatistics
}

func newStatsCollector() *statsCollector {
	return &statsCollector{
		stats: domain.GameStatistics{
			BySide:           make(map[domain.Side]domain.SideStatistics),
			SpecialTriggered: make(map[domain.SituationKind]int),
		},
	}
}

func (s *statsCollector) recordPlay(play domain.PlayResult, tr domain.EnrichedTransition, result domain.PipelineResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats.TotalPlays++
	if !result.Success {
		s.stats.FailedPlays++
		return
	}

	side := tr.PossessingSide.Canonical()
	bySide := s.stats.BySide[side]
	if bySide.PlaysByType == nil {
		bySide.PlaysByType = make(map[domain.PlayType]int)
	}

	bySide.Plays++
	bySide.PlaysByType[play.Type]++

	if f := tr.Base.Field; f != nil {
		bySide.YardsGained += f.YardsGained
		if f.FirstDown {
			bySide.FirstDowns++
		}
		if f.Context.RedZone && !wasRedZone(f) {
			bySide.RedZoneTrips++
		}
		if f.OldDown == 3 {
			bySide.ThirdDownTries++
			if f.FirstDown {
				bySide.ThirdDownsMoved++
			}
		}
	}
	if play.IsTurnover {
		bySide.Turnovers++
	}
	if sc := tr.Base.Score; sc != nil && sc.Occurred {
		scoring := s.stats.BySide[sc.ScoringSide.Canonical()]
		if sc.ScoringSide.Canonical() == side {
			bySide.Scores++
			bySide.Points += sc.Points
		} else {
			scoring.Scores++
			scoring.Points += sc.Points
			s.stats.BySide[sc.ScoringSide.Canonical()] = scoring
		}
	}
	if c := tr.Base.Clock; c != nil {
		bySide.ClockUsed += c.SecondsElapsed
		s.stats.SecondsElapsed += c.SecondsElapsed
		if c.QuarterAdvanced {
			s.stats.QuartersStarted++
		}
		if c.TwoMinuteWarning || (c.OldQuarter == c.NewQuarter && c.NewSecondsRemaining <= domain.TwoMinuteMark &&
			(c.NewQuarter == 2 || c.NewQuarter == domain.QuartersPerGame)) {
			s.stats.TwoMinutePlays++
		}
	}
	if p := tr.Base.Possession; p != nil && p.Changed {
		s.stats.PossessionFlips++
	}
	for _, sp := range tr.Base.SpecialSituations {
		s.stats.SpecialTriggered[sp.Kind]++
	}

	s.stats.BySide[side] = bySide
}

func wasRedZone(f *domain.FieldTransition) bool {
	return f.OldYardLine >= domain.RedZoneStart
}

// snapshot returns a deep copy safe to hand out.
func (s *statsCollector) snapshot() domain.GameStatistics {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.stats
	out.BySide = make(map[domain.Side]domain.SideStatistics, len(s.stats.BySide))
	for side, v := range s.stats.BySide {
		if v.PlaysByType != nil {
			types := make(map[domain.PlayType]int, len(v.PlaysByType))
			for k, n := range v.PlaysByType {
				types[k] = n
			}
			v.PlaysByType = types
		}
		out.BySide[side] = v
	}
	out.SpecialTriggered = make(map[domain.SituationKind]int, len(s.stats.SpecialTriggered))
	for k, n := range s.stats.SpecialTriggered {
		out.SpecialTriggered[k] = n
	}
	return out
}
