package automationService

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"FintrackGolang/internal/api/automation"
	"FintrackGolang/internal/entity"
	contextPkg "FintrackGolang/pkg/context"
	"FintrackGolang/pkg/ruleengine"
)

func draftFromRequest(conditions []automation.ConditionRequest) ruleengine.Draft {
	engineConditions := make([]ruleengine.Condition, 0, len(conditions))
	for _, c := range conditions {
		engineConditions = append(engineConditions, ruleengine.Condition{
			Field:    c.Field,
			Operator: c.Operator,
			Value:    c.Value,
		})
	}
	return ruleengine.DraftFromConditions(engineConditions)
}

// hasUsableCondition rejects drafts whose conditions are all blanks: a rule
// with nothing to match against must not reach the database.
func hasUsableCondition(d ruleengine.Draft) bool {
	if d.MatchByName && strings.TrimSpace(d.NameValue) != "" {
		return true
	}
	if d.MatchByAmount && strings.TrimSpace(d.AmountValue) != "" {
		return true
	}
	if d.FilterByAccount && len(d.AccountIDs) > 0 {
		return true
	}
	return false
}

func hasUsableAction(actions []automation.ActionRequest) bool {
	for _, a := range actions {
		switch a.Type {
		case "ignore_transaction", "mark_tax_deductible":
			return true
		case "set_category", "rename_transaction", "assign_to_bill":
			if strings.TrimSpace(a.Value) != "" {
				return true
			}
		}
	}
	return false
}

func (s *automationService) CreateRule(ctx context.Context, req automation.CreateRuleRequest) (entity.AutomationRule, error) {
	requestID := contextPkg.GetRequestID(ctx)

	draft := draftFromRequest(req.Conditions)
	if !hasUsableCondition(draft) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Rule draft has no enabled condition")
		return entity.AutomationRule{}, automation.ErrNoEnabledCondition
	}
	if !hasUsableAction(req.Actions) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Rule draft has no enabled action")
		return entity.AutomationRule{}, automation.ErrNoEnabledAction
	}

	repo, err := s.ruleRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.AutomationRule{}, err
	}

	activeRules, err := repo.Rule.GetActiveRulesByUserID(ctx, req.UserID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to load active rules for conflict detection")
		return entity.AutomationRule{}, err
	}

	if conflict := ruleengine.FindConflict(draft, activeRules); conflict != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"conflict_id": conflict.ID,
		}).Warn("Rule draft conflicts with existing active rule")
		return entity.AutomationRule{}, &automation.ConflictError{Rule: *conflict}
	}

	rule, err := s.buildRule(draft, req)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build rule from draft")
		return entity.AutomationRule{}, err
	}

	if err := repo.Rule.CreateRule(ctx, rule); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create automation rule")
		return entity.AutomationRule{}, automation.ErrCreateRule
	}

	return rule, nil
}

// buildRule normalizes the draft's conditions and actions into stored rule
// columns: name -> merchant pattern, an equals-amount condition collapses
// into identical min/max bounds, accounts stay comma-joined.
func (s *automationService) buildRule(draft ruleengine.Draft, req automation.CreateRuleRequest) (entity.AutomationRule, error) {
	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return entity.AutomationRule{}, err
	}

	rule := entity.AutomationRule{
		ID:                       id,
		UserID:                   req.UserID,
		Name:                     req.Name,
		IsActive:                 req.IsActive,
		CreatedFromTransactionID: req.CreatedFromTransactionID,
		CreatedAt:                time.Now(),
		UpdatedAt:                time.Now(),
	}

	if draft.MatchByName {
		rule.MerchantPattern = strings.TrimSpace(draft.NameValue)
	}
	if draft.MatchByAmount {
		if amount, err := s.utils.ParseAmount(draft.AmountValue); err == nil {
			min, max := amount, amount
			rule.AmountMin = &min
			rule.AmountMax = &max
		}
	}
	if draft.FilterByAccount {
		rule.AccountIDs = strings.Join(draft.AccountIDs, ",")
	}

	for _, action := range req.Actions {
		value := strings.TrimSpace(action.Value)
		switch action.Type {
		case "set_category":
			rule.SetCategoryID = value
		case "rename_transaction":
			rule.RenameTo = value
		case "assign_to_bill":
			rule.AssignToBillID = value
		case "ignore_transaction":
			rule.IgnoreTransaction = true
		case "mark_tax_deductible":
			rule.MarkTaxDeductible = true
		}
	}

	return rule, nil
}

func (s *automationService) GetRulesByUserID(ctx context.Context, userID string) ([]entity.AutomationRule, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.ruleRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	return repo.Rule.GetRulesByUserID(ctx, userID)
}

func (s *automationService) UpdateRule(ctx context.Context, id string, userID string, req automation.UpdateRuleRequest) (entity.AutomationRule, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.ruleRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.AutomationRule{}, err
	}

	rule, err := repo.Rule.GetRuleByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Warn("Rule lookup failed before update")
		return entity.AutomationRule{}, err
	}

	if rule.UserID != userID {
		return entity.AutomationRule{}, automation.ErrRuleNotOwned
	}

	if req.Name != nil {
		rule.Name = *req.Name
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}
	if req.MerchantPattern != nil {
		rule.MerchantPattern = *req.MerchantPattern
	}
	if req.DescriptionPattern != nil {
		rule.DescriptionPattern = *req.DescriptionPattern
	}
	if req.AmountMin != nil {
		rule.AmountMin = req.AmountMin
	}
	if req.AmountMax != nil {
		rule.AmountMax = req.AmountMax
	}
	if req.SetCategoryID != nil {
		rule.SetCategoryID = *req.SetCategoryID
	}
	if req.RenameTo != nil {
		rule.RenameTo = *req.RenameTo
	}

	rule.UpdatedAt = time.Now()

	if err := repo.Rule.UpdateRule(ctx, rule); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to update automation rule")
		return entity.AutomationRule{}, automation.ErrUpdateRule
	}

	return rule, nil
}

func (s *automationService) DeleteRule(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.ruleRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	rule, err := repo.Rule.GetRuleByID(ctx, id)
	if err != nil {
		return err
	}

	if rule.UserID != userID {
		return automation.ErrRuleNotOwned
	}

	if err := repo.Rule.DeleteRule(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete automation rule")
		return automation.ErrDeleteRule
	}

	return nil
}

// PreviewRule runs the evaluator over the user's full transaction list. An
// empty or not-yet-loaded list degrades to no matches rather than an error.
func (s *automationService) PreviewRule(ctx context.Context, req automation.PreviewRequest) (ruleengine.Preview, error) {
	requestID := contextPkg.GetRequestID(ctx)

	draft := draftFromRequest(req.Conditions)
	if !hasUsableCondition(draft) {
		return ruleengine.Preview{}, automation.ErrNoEnabledCondition
	}

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return ruleengine.Preview{}, err
	}

	transactions, err := repo.Transaction.GetTransactionsByUserID(ctx, req.UserID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to load transactions for preview")
		return ruleengine.Preview{}, err
	}

	return ruleengine.PreviewMatches(transactions, draft), nil
}
