package domain

import (
	"strings"
)

// BaseTransition bundles the per-category transitions produced by one pass of
// the calculators. Categories that did not change report their zero value; a
// no-op play yields a bundle where every category reports no change. The
// bundle is immutable once assembled.
type BaseTransition struct {
	Field             *FieldTransition             `json:"field,omitempty"`
	Possession        *PossessionTransition        `json:"possession,omitempty"`
	Score             *ScoreTransition             `json:"score,omitempty"`
	Clock             *ClockTransition             `json:"clock,omitempty"`
	SpecialSituations []SpecialSituationTransition `json:"special_situations,omitempty"`
}

// HasChanges reports whether any category changed.
func (b BaseTransition) HasChanges() bool {
	if b.Field != nil && b.Field.Changed() {
		return true
	}
	if b.Possession != nil && b.Possession.Changed {
		return true
	}
	if b.Score != nil && b.Score.Occurred {
		return true
	}
	if b.Clock != nil && b.Clock.SecondsElapsed != 0 {
		return true
	}
	return len(b.SpecialSituations) > 0
}

// Summary renders a one-line human-readable description of the bundle.
func (b BaseTransition) Summary() string {
	var parts []string
	if b.Field != nil && b.Field.Changed() {
		parts = append(parts, b.Field.String())
	}
	if b.Score != nil && b.Score.Occurred {
		parts = append(parts, b.Score.String())
	}
	if b.Possession != nil && b.Possession.Changed {
		parts = append(parts, b.Possession.String())
	}
	if b.Clock != nil {
		parts = append(parts, b.Clock.String())
	}
	for _, s := range b.SpecialSituations {
		parts = append(parts, s.String())
	}
	if len(parts) == 0 {
		return "no change"
	}
	return strings.Join(parts, "; ")
}
