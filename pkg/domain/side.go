package domain

// Side is the symbolic identity of one team in a game. Score attribution and
// possession reasoning always use Side, never raw team identifiers, so that a
// divergence between possession ids and home/away labeling cannot misattribute
// points.
type Side string

const (
	SideHome    Side = "HOME"
	SideAway    Side = "AWAY"
	SideNeutral Side = "NEUTRAL"
)

// Opponent returns the other side. NEUTRAL resolves to HOME first, so its
// opponent is AWAY.
func (s Side) Opponent() Side {
	switch s {
	case SideAway:
		return SideHome
	default:
		return SideAway
	}
}

// IdentityResolver maps raw team identifiers onto symbolic sides for one game.
// It is the single place where ids are compared against home/away labels.
type IdentityResolver struct {
	homeID string
	awayID string
}

// NewIdentityResolver builds a resolver for one game's pairing.
func NewIdentityResolver(homeID, awayID string) IdentityResolver {
	return IdentityResolver{homeID: homeID, awayID: awayID}
}

// Resolve maps a team id to its side. Unknown ids resolve to NEUTRAL.
func (r IdentityResolver) Resolve(teamID string) Side {
	switch teamID {
	case r.homeID:
		return SideHome
	case r.awayID:
		return SideAway
	default:
		return SideNeutral
	}
}

// TeamID maps a side back to the raw team id. NEUTRAL defaults to the home
// team, matching the established fallback for ambiguous possession.
func (r IdentityResolver) TeamID(side Side) string {
	if side == SideAway {
		return r.awayID
	}
	return r.homeID
}

// Canonical collapses NEUTRAL onto HOME so downstream arithmetic only ever
// sees two sides.
func (s Side) Canonical() Side {
	if s == SideAway {
		return SideAway
	}
	return SideHome
}
