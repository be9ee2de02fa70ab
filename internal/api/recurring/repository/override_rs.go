package recurringRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"FintrackGolang/internal/entity"
	contextPkg "FintrackGolang/pkg/context"
)

type RecurringOverrideDB struct {
	ID                      sql.NullString `db:"id"`
	UserID                  sql.NullString `db:"user_id"`
	MerchantName            sql.NullString `db:"merchant_name"`
	OriginalMerchant        sql.NullString `db:"original_merchant"`
	RecurringStatus         sql.NullString `db:"recurring_status"`
	ApplyToAll              sql.NullBool   `db:"apply_to_all"`
	Reason                  sql.NullString `db:"reason"`
	TriggerTransactionID    sql.NullString `db:"trigger_transaction_id"`
	AppliedCount            sql.NullInt64  `db:"applied_count"`
	RelatedTransactionCount sql.NullInt64  `db:"related_transaction_count"`
	CreatedAt               time.Time      `db:"created_at"`
}

func (r *overrideRepository) makeOverride(row RecurringOverrideDB) entity.RecurringOverride {
	return entity.RecurringOverride{
		ID:                      row.ID.String,
		UserID:                  row.UserID.String,
		MerchantName:            row.MerchantName.String,
		OriginalMerchant:        row.OriginalMerchant.String,
		RecurringStatus:         row.RecurringStatus.String,
		ApplyToAll:              row.ApplyToAll.Bool,
		Reason:                  row.Reason.String,
		TriggerTransactionID:    row.TriggerTransactionID.String,
		AppliedCount:            int(row.AppliedCount.Int64),
		RelatedTransactionCount: int(row.RelatedTransactionCount.Int64),
		CreatedAt:               row.CreatedAt,
	}
}

func (r *overrideRepository) CreateOverride(c context.Context, override entity.RecurringOverride) error {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"id":                        override.ID,
		"user_id":                   override.UserID,
		"merchant_name":             override.MerchantName,
		"original_merchant":         override.OriginalMerchant,
		"recurring_status":          override.RecurringStatus,
		"apply_to_all":              override.ApplyToAll,
		"reason":                    override.Reason,
		"trigger_transaction_id":    override.TriggerTransactionID,
		"applied_count":             override.AppliedCount,
		"related_transaction_count": override.RelatedTransactionCount,
		"created_at":                override.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateOverride, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateOverride")
		return err
	}
	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating recurring override")
		return err
	}

	return nil
}

func (r *overrideRepository) GetOverridesByUserID(c context.Context, userID string) ([]entity.RecurringOverride, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []RecurringOverrideDB

	query, args, err := sqlx.Named(queryGetOverridesByUserID, map[string]interface{}{"user_id": userID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetOverridesByUserID named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetOverridesByUserID execution err")
		return nil, err
	}

	overrides := make([]entity.RecurringOverride, 0, len(rows))
	for _, row := range rows {
		overrides = append(overrides, r.makeOverride(row))
	}

	return overrides, nil
}

func (r *overrideRepository) GetOverrideByMerchant(c context.Context, userID string, merchant string) (entity.RecurringOverride, bool, error) {
	requestID := contextPkg.GetRequestID(c)
	var row RecurringOverrideDB

	argsKV := map[string]interface{}{
		"user_id":       userID,
		"merchant_name": merchant,
	}

	query, args, err := sqlx.Named(queryGetOverrideByMerchant, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetOverrideByMerchant named query preparation err")
		return entity.RecurringOverride{}, false, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.RecurringOverride{}, false, nil
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetOverrideByMerchant execution err")
		return entity.RecurringOverride{}, false, err
	}

	return r.makeOverride(row), true, nil
}
