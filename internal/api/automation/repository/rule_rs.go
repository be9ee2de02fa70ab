package automationRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"FintrackGolang/internal/api/automation"
	"FintrackGolang/internal/entity"
	contextPkg "FintrackGolang/pkg/context"
)

type AutomationRuleDB struct {
	ID                       sql.NullString  `db:"id"`
	UserID                   sql.NullString  `db:"user_id"`
	Name                     sql.NullString  `db:"name"`
	IsActive                 sql.NullBool    `db:"is_active"`
	MerchantPattern          sql.NullString  `db:"merchant_pattern"`
	DescriptionPattern       sql.NullString  `db:"description_pattern"`
	AmountMin                sql.NullFloat64 `db:"amount_min"`
	AmountMax                sql.NullFloat64 `db:"amount_max"`
	AccountIDs               sql.NullString  `db:"account_ids"`
	SetCategoryID            sql.NullString  `db:"set_category_id"`
	RenameTo                 sql.NullString  `db:"rename_to"`
	AssignToBillID           sql.NullString  `db:"assign_to_bill_id"`
	IgnoreTransaction        sql.NullBool    `db:"ignore_transaction"`
	MarkTaxDeductible        sql.NullBool    `db:"mark_tax_deductible"`
	CreatedFromTransactionID sql.NullString  `db:"created_from_transaction_id"`
	CreatedAt                time.Time       `db:"created_at"`
	UpdatedAt                time.Time       `db:"updated_at"`
}

func (r *ruleRepository) makeAutomationRule(row AutomationRuleDB) entity.AutomationRule {
	rule := entity.AutomationRule{
		ID:                       row.ID.String,
		UserID:                   row.UserID.String,
		Name:                     row.Name.String,
		IsActive:                 row.IsActive.Bool,
		MerchantPattern:          row.MerchantPattern.String,
		DescriptionPattern:       row.DescriptionPattern.String,
		AccountIDs:               row.AccountIDs.String,
		SetCategoryID:            row.SetCategoryID.String,
		RenameTo:                 row.RenameTo.String,
		AssignToBillID:           row.AssignToBillID.String,
		IgnoreTransaction:        row.IgnoreTransaction.Bool,
		MarkTaxDeductible:        row.MarkTaxDeductible.Bool,
		CreatedFromTransactionID: row.CreatedFromTransactionID.String,
		CreatedAt:                row.CreatedAt,
		UpdatedAt:                row.UpdatedAt,
	}

	if row.AmountMin.Valid {
		v := row.AmountMin.Float64
		rule.AmountMin = &v
	}
	if row.AmountMax.Valid {
		v := row.AmountMax.Float64
		rule.AmountMax = &v
	}

	return rule
}

func ruleArgs(rule entity.AutomationRule) map[string]interface{} {
	var amountMin, amountMax interface{}
	if rule.AmountMin != nil {
		amountMin = *rule.AmountMin
	}
	if rule.AmountMax != nil {
		amountMax = *rule.AmountMax
	}

	return map[string]interface{}{
		"id":                          rule.ID,
		"user_id":                     rule.UserID,
		"name":                        rule.Name,
		"is_active":                   rule.IsActive,
		"merchant_pattern":            rule.MerchantPattern,
		"description_pattern":         rule.DescriptionPattern,
		"amount_min":                  amountMin,
		"amount_max":                  amountMax,
		"account_ids":                 rule.AccountIDs,
		"set_category_id":             rule.SetCategoryID,
		"rename_to":                   rule.RenameTo,
		"assign_to_bill_id":           rule.AssignToBillID,
		"ignore_transaction":          rule.IgnoreTransaction,
		"mark_tax_deductible":         rule.MarkTaxDeductible,
		"created_from_transaction_id": rule.CreatedFromTransactionID,
		"created_at":                  rule.CreatedAt,
		"updated_at":                  rule.UpdatedAt,
	}
}

func (r *ruleRepository) CreateRule(c context.Context, rule entity.AutomationRule) error {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(queryCreateRule, ruleArgs(rule))
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateRule")
		return err
	}
	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating automation rule")
		return err
	}

	return nil
}

func (r *ruleRepository) GetRuleByID(c context.Context, id string) (entity.AutomationRule, error) {
	requestID := contextPkg.GetRequestID(c)
	var row AutomationRuleDB

	query, args, err := sqlx.Named(queryGetRuleByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRuleByID named query preparation err")
		return entity.AutomationRule{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.AutomationRule{}, automation.ErrRuleNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRuleByID execution err")
		return entity.AutomationRule{}, err
	}

	return r.makeAutomationRule(row), nil
}

func (r *ruleRepository) GetRulesByUserID(c context.Context, userID string) ([]entity.AutomationRule, error) {
	return r.selectRules(c, queryGetRulesByUserID, userID)
}

// GetActiveRulesByUserID returns active rules oldest first: the conflict
// detector's first-match-wins scan follows creation order.
func (r *ruleRepository) GetActiveRulesByUserID(c context.Context, userID string) ([]entity.AutomationRule, error) {
	return r.selectRules(c, queryGetActiveRulesByUserID, userID)
}

func (r *ruleRepository) selectRules(c context.Context, namedQuery string, userID string) ([]entity.AutomationRule, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []AutomationRuleDB

	query, args, err := sqlx.Named(namedQuery, map[string]interface{}{"user_id": userID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("selectRules named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("selectRules execution err")
		return nil, err
	}

	rules := make([]entity.AutomationRule, 0, len(rows))
	for _, row := range rows {
		rules = append(rules, r.makeAutomationRule(row))
	}

	return rules, nil
}

func (r *ruleRepository) UpdateRule(c context.Context, rule entity.AutomationRule) error {
	requestID := contextPkg.GetRequestID(c)

	args := ruleArgs(rule)
	args["updated_at"] = time.Now()

	query, argList, err := sqlx.Named(queryUpdateRule, args)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateRule named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(c, query, argList...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating automation rule")
		return err
	}

	return nil
}

func (r *ruleRepository) DeleteRule(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(queryDeleteRule, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteRule named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting automation rule")
		return err
	}

	return nil
}
