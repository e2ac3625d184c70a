/*
Package gridiron is the play-resolution core of a football season simulator.

Given the outcome of one simulated play and the game's current state, the
engine computes every downstream change (field position, down and distance,
possession, score, clock, and procedural situations such as kickoffs, punts
and turnovers), verifies the changes are legal, applies them to the game state
as a single atomic step with rollback on failure, and records statistics and
an audit trail as a side observation that never influences game state.

The engine does not decide what a play's football outcome is; it consumes a
fully-determined PlayResult from an external source. It persists nothing:
audit export and state storage are the caller's responsibility, with pluggable
sinks under pkg/adapters.

Basic usage:

	state := domain.NewGameState("home", "away")
	engine := gridiron.New("game-1", gridiron.WithSeed(42))

	res := engine.ProcessPlay(play, state, state.Field.Possession)
	if !res.Success {
		// res.Violations or res.ApplyError say why; state is untouched.
	}

	stats := engine.Statistics()
	trail := engine.AuditTrail()
*/
package gridiron
