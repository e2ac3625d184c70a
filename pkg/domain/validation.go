package domain

import (
	"fmt"
	"strings"
)

// RuleDomain categorizes a validation issue by the rule family it violates.
type RuleDomain string

const (
	RuleField      RuleDomain = "field"
	RulePossession RuleDomain = "possession"
	RuleScore      RuleDomain = "score"
	RuleClock      RuleDomain = "clock"
	RuleGeneral    RuleDomain = "general"
)

// Severity ranks a violation. Only SeverityError blocks an apply.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Violation is one categorized rule failure found by the validator.
type Violation struct {
	Domain   RuleDomain `json:"domain"`
	Severity Severity   `json:"severity"`
	Message  string     `json:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("[%s/%s] %s", v.Domain, v.Severity, v.Message)
}

// ValidationResult collects every issue the validator found. Violations are
// accumulated, never short-circuited, so callers get a complete diagnostic.
type ValidationResult struct {
	Violations []Violation `json:"violations,omitempty"`
}

// OK reports whether the transition may be applied: no error-severity
// violations. Warnings do not block.
func (r ValidationResult) OK() bool {
	for _, v := range r.Violations {
		if v.Severity == SeverityError {
			return false
		}
	}
	return true
}

// Errors returns only the blocking violations.
func (r ValidationResult) Errors() []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Severity == SeverityError {
			out = append(out, v)
		}
	}
	return out
}

func (r ValidationResult) String() string {
	if len(r.Violations) == 0 {
		return "valid"
	}
	msgs := make([]string, len(r.Violations))
	for i, v := range r.Violations {
		msgs[i] = v.String()
	}
	return strings.Join(msgs, "; ")
}
