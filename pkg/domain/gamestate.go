package domain

import "fmt"

// Field is the ball-placement section of the game state. YardLine is on the
// possessing side's 0-100 scale.
type Field struct {
	YardLine   int    `json:"yard_line"`
	Down       int    `json:"down"`
	YardsToGo  int    `json:"yards_to_go"`
	Possession string `json:"possession"`
}

// Clock is the game-clock section of the game state.
type Clock struct {
	Quarter          int `json:"quarter"`
	SecondsRemaining int `json:"seconds_remaining"`
}

// Scoreboard holds the running score.
type Scoreboard struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// GameState is the authoritative, caller-owned aggregate the pipeline resolves
// plays against. Reads go straight at the fields; writes go through the
// invariant-checking setters so a staged apply can fail cleanly instead of
// leaving an illegal state behind.
//
// A GameState has exactly one writer at a time. The pipeline assumes the
// caller never issues concurrent invocations against the same instance.
type GameState struct {
	HomeTeamID string     `json:"home_team_id"`
	AwayTeamID string     `json:"away_team_id"`
	Field      Field      `json:"field"`
	Clock      Clock      `json:"clock"`
	Score      Scoreboard `json:"score"`
}

// NewGameState returns a state at the opening kickoff spot: the home side at
// its own 25, first and ten, quarter one with a full clock.
func NewGameState(homeID, awayID string) *GameState {
	return &GameState{
		HomeTeamID: homeID,
		AwayTeamID: awayID,
		Field: Field{
			YardLine:   TouchbackSpot,
			Down:       1,
			YardsToGo:  FirstDownYards,
			Possession: homeID,
		},
		Clock: Clock{Quarter: 1, SecondsRemaining: QuarterSeconds},
	}
}

// Identity returns the resolver mapping this game's team ids onto symbolic sides.
func (g *GameState) Identity() IdentityResolver {
	return NewIdentityResolver(g.HomeTeamID, g.AwayTeamID)
}

// PossessingSide resolves the current possession id to a symbolic side.
func (g *GameState) PossessingSide() Side {
	return g.Identity().Resolve(g.Field.Possession)
}

// YardsToGoal is the distance from the current spot to the opponent's goal line.
func (g *GameState) YardsToGoal() int {
	return FieldLength - g.Field.YardLine
}

// Snapshot returns a value copy of the state, used by the applicator to
// guarantee rollback. GameState holds no reference types, so a shallow copy is
// a complete one.
func (g *GameState) Snapshot() GameState {
	return *g
}

// Restore overwrites the state with a previously taken snapshot.
func (g *GameState) Restore(snap GameState) {
	*g = snap
}

// SetFieldPosition stages a ball-placement write.
func (g *GameState) SetFieldPosition(yardLine int) error {
	if yardLine < 0 || yardLine > FieldLength {
		return fmt.Errorf("set field position %d: %w", yardLine, ErrYardLineOutOfRange)
	}
	g.Field.YardLine = yardLine
	return nil
}

// SetDownAndDistance stages a down/distance write. The distance is checked
// against the goal-to-go invariant: it may never exceed the yards remaining to
// the goal line.
func (g *GameState) SetDownAndDistance(down, yardsToGo int) error {
	if down < MinDown || down > MaxDown {
		return fmt.Errorf("set down %d: %w", down, ErrDownOutOfRange)
	}
	if yardsToGo < 0 || yardsToGo > FieldLength {
		return fmt.Errorf("set yards to go %d: %w", yardsToGo, ErrDistanceOutOfRange)
	}
	if remaining := g.YardsToGoal(); yardsToGo > remaining {
		return fmt.Errorf("set yards to go %d with %d to the goal line: %w",
			yardsToGo, remaining, ErrDistanceOutOfRange)
	}
	g.Field.Down = down
	g.Field.YardsToGo = yardsToGo
	return nil
}

// SetPossession stages a possession write. The id must belong to the game.
func (g *GameState) SetPossession(teamID string) error {
	if teamID != g.HomeTeamID && teamID != g.AwayTeamID {
		return fmt.Errorf("set possession %q: %w", teamID, ErrUnknownTeam)
	}
	g.Field.Possession = teamID
	return nil
}

// SetClock stages a clock write.
func (g *GameState) SetClock(quarter, secondsRemaining int) error {
	if quarter < 1 || quarter > QuartersPerGame {
		return fmt.Errorf("set quarter %d: %w", quarter, ErrClockOutOfRange)
	}
	if secondsRemaining < 0 || secondsRemaining > QuarterSeconds {
		return fmt.Errorf("set clock %d: %w", secondsRemaining, ErrClockOutOfRange)
	}
	g.Clock.Quarter = quarter
	g.Clock.SecondsRemaining = secondsRemaining
	return nil
}

// AddPoints stages a scoring write for the given symbolic side. NEUTRAL is
// collapsed to HOME before the write.
func (g *GameState) AddPoints(side Side, points int) error {
	if points < 0 {
		return fmt.Errorf("add %d points: %w", points, ErrNegativePoints)
	}
	if side.Canonical() == SideHome {
		g.Score.Home += points
	} else {
		g.Score.Away += points
	}
	return nil
}

// Summary renders the state as a one-line scoreboard string.
func (g *GameState) Summary() string {
	return fmt.Sprintf("Q%d %d:%02d | %s %d - %s %d | %s ball, %s at the %d",
		g.Clock.Quarter,
		g.Clock.SecondsRemaining/60, g.Clock.SecondsRemaining%60,
		g.HomeTeamID, g.Score.Home,
		g.AwayTeamID, g.Score.Away,
		g.Field.Possession,
		downAndDistance(g.Field.Down, g.Field.YardsToGo),
		g.Field.YardLine)
}

func downAndDistance(down, toGo int) string {
	suffix := "th"
	switch down {
	case 1:
		suffix = "st"
	case 2:
		suffix = "nd"
	case 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s and %d", down, suffix, toGo)
}
