package automation

import (
	"FintrackGolang/internal/entity"
	"FintrackGolang/pkg/response"
)

var (
	ErrRuleNotFound       = response.NewError(404, "automation rule not found")
	ErrRuleNotOwned       = response.NewError(403, "automation rule does not belong to user")
	ErrNoEnabledCondition = response.NewError(400, "rule must have at least one enabled condition")
	ErrNoEnabledAction    = response.NewError(400, "rule must have at least one enabled action")
	ErrCreateRule         = response.NewError(500, "failed to create automation rule")
	ErrUpdateRule         = response.NewError(500, "failed to update automation rule")
	ErrDeleteRule         = response.NewError(500, "failed to delete automation rule")
)

// ConflictError signals that creation was suspended because an existing
// active rule overlaps the draft. Not a response.Error: the handler maps it
// to a 409 carrying the conflicting rule.
type ConflictError struct {
	Rule entity.AutomationRule
}

func (e *ConflictError) Error() string {
	return "rule conflicts with existing active rule " + e.Rule.ID
}
