/*
Package calc contains the pure calculators of the play-resolution pipeline:
one per change category (field, possession, score, clock, special situations)
plus the Coordinator that runs all five and bundles their outputs into a
BaseTransition.

Calculators never mutate the game state and never perform I/O. The only
nondeterminism is the injected RandSource behind the special-situations
calculator (kickoff returns, onside recovery); with a fixed seed every output
is reproducible.
*/
package calc
