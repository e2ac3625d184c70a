package domain

import "time"

// PipelineStage names the orchestrator's state-machine states. Exposed on the
// result so callers can see where a failed play stopped.
type PipelineStage string

const (
	StageIdle        PipelineStage = "idle"
	StageCalculating PipelineStage = "calculating"
	StageValidating  PipelineStage = "validating"
	StageApplying    PipelineStage = "applying"
	StageTracking    PipelineStage = "tracking"
	StageDone        PipelineStage = "done"
)

// PipelineResult is what one ProcessPlay invocation returns. Violations and
// apply errors travel as inspectable data rather than Go errors, so callers
// can branch on them without unwrapping.
type PipelineResult struct {
	Success bool `json:"success"`

	// Transition is present whenever calculation completed, including on
	// validation failures.
	Transition *EnrichedTransition `json:"transition,omitempty"`

	// Violations is populated when the play was rejected at validation.
	Violations []Violation `json:"violations,omitempty"`

	// ApplyError is populated when a staged write was rejected and the
	// state rolled back.
	ApplyError string `json:"apply_error,omitempty"`

	// FailedStage names where the pipeline stopped on failure.
	FailedStage PipelineStage `json:"failed_stage,omitempty"`

	Elapsed time.Duration `json:"elapsed"`
	Summary string        `json:"summary"`
}
