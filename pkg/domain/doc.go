// Package domain contains the value objects shared across the play-resolution
// pipeline: the external PlayResult and GameState shapes, the immutable
// transition family produced by the calculators, and the result types returned
// to callers.
//
// Everything in this package is either immutable after construction (the
// transition family) or mutated only through invariant-checking setters
// (GameState). The pipeline packages under internal/ depend on this package;
// this package depends on nothing above the standard library and mapstructure.
package domain
