package ports

import "math/rand"

// RandSource is the randomness the special-situations calculator draws from
// (kickoff returns, onside recovery). It is injected at construction so a
// fixed seed replays an identical game and concurrent simulations never share
// an implicit global source.
//
// *math/rand.Rand satisfies this interface.
type RandSource interface {
	Intn(n int) int
	Float64() float64
}

// NewSeededRand returns a RandSource with a fixed seed, the standard choice
// for tests and reproducible simulations.
func NewSeededRand(seed int64) RandSource {
	return rand.New(rand.NewSource(seed))
}

var _ RandSource = (*rand.Rand)(nil)
