package domain

import (
	crand "crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// EnrichedTransition is a BaseTransition plus the identity and provenance
// metadata the validator and tracker need. It embeds the base by composition;
// enrichment is a pure function over a base, never a subtype of it, so the
// calculators stay ignorant of validator-only fields.
type EnrichedTransition struct {
	Base BaseTransition `json:"base"`

	ID               string    `json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	Reason           string    `json:"reason"`
	PossessingTeamID string    `json:"possessing_team_id"`
	PossessingSide   Side      `json:"possessing_side"`

	// Convenience mirrors of the originating play, so consumers never need
	// the PlayResult itself.
	PlayType    PlayType    `json:"play_type"`
	PlayOutcome PlayOutcome `json:"play_outcome"`
}

// Enrich produces the enriched record for one calculated base transition.
// now is injected so audit timestamps are reproducible in tests.
func Enrich(base BaseTransition, play PlayResult, possessingTeamID string, side Side, now time.Time) EnrichedTransition {
	return EnrichedTransition{
		Base:             base,
		ID:               newTransitionID(),
		CreatedAt:        now,
		Reason:           fmt.Sprintf("%s/%s", play.Type, play.Outcome),
		PossessingTeamID: possessingTeamID,
		PossessingSide:   side,
		PlayType:         play.Type,
		PlayOutcome:      play.Outcome,
	}
}

// Summary renders the one-line change description for the transition.
func (e EnrichedTransition) Summary() string {
	return fmt.Sprintf("[%s] %s", e.Reason, e.Base.Summary())
}

func newTransitionID() string {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand failing means the host is broken; fall back to a
		// timestamp id rather than panicking inside the pipeline.
		return fmt.Sprintf("t-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}
