// Package sim generates plausible play outcomes to drive demonstrations and
// end-to-end tests. It stands in for the external play-resolution engine; the
// pipeline itself never imports it.
package sim

import (
	"github.com/gridironlabs/gridiron/pkg/domain"
	"github.com/gridironlabs/gridiron/pkg/ports"
)

// Generator emits seeded-random play results shaped by the game situation
// (down, distance, field position). The same seed replays the same game.
type Generator struct {
	rand     ports.RandSource
	maxPlays int
	plays    int
}

// NewGenerator builds a generator capped at maxPlays.
func NewGenerator(seed int64, maxPlays int) *Generator {
	return &Generator{rand: ports.NewSeededRand(seed), maxPlays: maxPlays}
}

// Next produces the next play for the state, or ok=false when the cap is hit
// or the game clock has expired.
func (g *Generator) Next(state *domain.GameState) (domain.PlayResult, bool) {
	if g.plays >= g.maxPlays {
		return domain.PlayResult{}, false
	}
	if state.Clock.Quarter >= domain.QuartersPerGame && state.Clock.SecondsRemaining <= 0 {
		return domain.PlayResult{}, false
	}
	g.plays++

	if state.Field.Down == domain.MaxDown {
		return g.fourthDown(state), true
	}
	if g.rand.Float64() < 0.52 {
		return g.run(state), true
	}
	return g.pass(state), true
}

func (g *Generator) fourthDown(state *domain.GameState) domain.PlayResult {
	distance := domain.FieldLength - state.Field.YardLine + domain.FieldGoalTackOn

	// Inside ~52 yards, try the kick.
	if distance <= 52 {
		good := g.rand.Float64() < kickProbability(distance)
		play := domain.PlayResult{
			Type:           domain.PlayFieldGoal,
			Outcome:        domain.OutcomeFieldGoalMissed,
			ElapsedSeconds: 5,
			Detail:         domain.PlayDetail{Kicker: "kicker"},
		}
		if good {
			play.Outcome = domain.OutcomeFieldGoalGood
			play.IsScore = true
			play.Points = domain.FieldGoalPoints
		}
		return play
	}

	// Short fourth down near midfield occasionally goes for it.
	if state.Field.YardsToGo <= 2 && state.Field.YardLine > domain.Midfield && g.rand.Float64() < 0.3 {
		return g.run(state)
	}

	puntDistance := 38 + g.rand.Intn(15)
	return domain.PlayResult{
		Type:           domain.PlayPunt,
		Outcome:        domain.OutcomePuntAway,
		Yards:          puntDistance,
		ElapsedSeconds: 8 + g.rand.Intn(5),
	}
}

func (g *Generator) run(state *domain.GameState) domain.PlayResult {
	play := domain.PlayResult{
		Type:           domain.PlayRun,
		Outcome:        domain.OutcomeGain,
		ElapsedSeconds: 25 + g.rand.Intn(16),
		Detail:         domain.PlayDetail{BallCarrier: "back"},
	}

	roll := g.rand.Float64()
	switch {
	case roll < 0.02:
		play.Outcome = domain.OutcomeFumble
		play.IsTurnover = true
		play.Yards = g.rand.Intn(3)
	case roll < 0.10:
		// Stuffed behind the line.
		play.Yards = -(1 + g.rand.Intn(3))
	case roll < 0.92:
		play.Yards = g.rand.Intn(8)
	default:
		// Breakaway.
		play.Yards = 10 + g.rand.Intn(30)
	}

	return g.markScore(play, state)
}

func (g *Generator) pass(state *domain.GameState) domain.PlayResult {
	play := domain.PlayResult{
		Type:           domain.PlayPass,
		Outcome:        domain.OutcomeGain,
		ElapsedSeconds: 15 + g.rand.Intn(16),
		Detail:         domain.PlayDetail{Passer: "quarterback", Receiver: "receiver"},
	}

	roll := g.rand.Float64()
	switch {
	case roll < 0.03:
		play.Outcome = domain.OutcomeInterception
		play.IsTurnover = true
		play.ElapsedSeconds = 6
		return play
	case roll < 0.09:
		play.Outcome = domain.OutcomeSack
		play.Yards = -(4 + g.rand.Intn(6))
		return play
	case roll < 0.42:
		play.Outcome = domain.OutcomeIncomplete
		play.ElapsedSeconds = 5 + g.rand.Intn(4)
		return play
	case roll < 0.90:
		play.Yards = 4 + g.rand.Intn(12)
	default:
		play.Yards = 18 + g.rand.Intn(35)
	}

	if g.rand.Float64() < 0.15 {
		play.Outcome = domain.OutcomeOutOfBounds
	}
	return g.markScore(play, state)
}

// markScore tags plays whose yardage reaches the goal line so the flags agree
// with what the field calculator will derive.
func (g *Generator) markScore(play domain.PlayResult, state *domain.GameState) domain.PlayResult {
	if state.Field.YardLine+play.Yards >= domain.FieldLength {
		play.Outcome = domain.OutcomeTouchdown
		play.IsScore = true
		play.Points = domain.TouchdownPoints
	}
	return play
}

func kickProbability(distance int) float64 {
	switch {
	case distance <= 30:
		return 0.95
	case distance <= 40:
		return 0.85
	case distance <= 48:
		return 0.7
	default:
		return 0.55
	}
}
