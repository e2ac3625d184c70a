package domain

import "fmt"

// FieldContext carries the situational flags derived from a final ball
// position. Flags are always recomputed at construction from the new spot;
// caller-supplied values are ignored so a transition can never disagree with
// its own coordinates.
type FieldContext struct {
	RedZone         bool `json:"red_zone"`
	GoalToGo        bool `json:"goal_to_go"`
	AtGoalLine      bool `json:"at_goal_line"`
	CrossedMidfield bool `json:"crossed_midfield"`
	InEndZone       bool `json:"in_end_zone"`
	SafetySituation bool `json:"safety_situation"`
}

// FieldTransition is the immutable description of one play's effect on ball
// placement and down/distance.
type FieldTransition struct {
	OldYardLine  int `json:"old_yard_line"`
	NewYardLine  int `json:"new_yard_line"`
	OldDown      int `json:"old_down"`
	NewDown      int `json:"new_down"`
	OldYardsToGo int `json:"old_yards_to_go"`
	NewYardsToGo int `json:"new_yards_to_go"`
	YardsGained  int `json:"yards_gained"`

	FirstDown       bool `json:"first_down"`
	Touchdown       bool `json:"touchdown"`
	Safety          bool `json:"safety"`
	TurnoverOnDowns bool `json:"turnover_on_downs"`

	Context FieldContext `json:"context"`
}

// NewFieldTransition validates the coordinates and derives the situational
// flags from the final position. It is the only way to build a FieldTransition.
func NewFieldTransition(t FieldTransition) (FieldTransition, error) {
	if t.OldYardLine < 0 || t.OldYardLine > FieldLength {
		return FieldTransition{}, fmt.Errorf("old yard line %d: %w", t.OldYardLine, ErrYardLineOutOfRange)
	}
	if t.NewYardLine < 0 || t.NewYardLine > FieldLength {
		return FieldTransition{}, fmt.Errorf("new yard line %d: %w", t.NewYardLine, ErrYardLineOutOfRange)
	}
	if t.OldDown < MinDown || t.OldDown > MaxDown {
		return FieldTransition{}, fmt.Errorf("old down %d: %w", t.OldDown, ErrDownOutOfRange)
	}
	if t.NewDown < MinDown || t.NewDown > MaxDown {
		return FieldTransition{}, fmt.Errorf("new down %d: %w", t.NewDown, ErrDownOutOfRange)
	}
	if t.NewYardsToGo < 0 {
		return FieldTransition{}, fmt.Errorf("new yards to go %d: %w", t.NewYardsToGo, ErrDistanceOutOfRange)
	}
	t.Context = deriveFieldContext(t)
	return t, nil
}

func deriveFieldContext(t FieldTransition) FieldContext {
	return FieldContext{
		RedZone:         t.NewYardLine >= RedZoneStart && t.NewYardLine < FieldLength,
		GoalToGo:        t.NewYardsToGo >= FieldLength-t.NewYardLine && t.NewYardLine < FieldLength,
		AtGoalLine:      t.NewYardLine == FieldLength-1,
		CrossedMidfield: t.OldYardLine < Midfield && t.NewYardLine >= Midfield,
		InEndZone:       t.NewYardLine >= FieldLength,
		SafetySituation: t.NewYardLine <= 0,
	}
}

// Changed reports whether the transition moves the ball or the down marker.
func (t FieldTransition) Changed() bool {
	return t.OldYardLine != t.NewYardLine ||
		t.OldDown != t.NewDown ||
		t.OldYardsToGo != t.NewYardsToGo
}

func (t FieldTransition) String() string {
	return fmt.Sprintf("field: %d -> %d (%+d yds), %s -> %s",
		t.OldYardLine, t.NewYardLine, t.YardsGained,
		downAndDistance(t.OldDown, t.OldYardsToGo),
		downAndDistance(t.NewDown, t.NewYardsToGo))
}
