package transactionRepository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"FintrackGolang/internal/api/transaction"
	"FintrackGolang/internal/entity"
	contextPkg "FintrackGolang/pkg/context"
)

type TransactionDB struct {
	ID              sql.NullString `db:"id"`
	UserID          sql.NullString `db:"user_id"`
	Date            time.Time      `db:"date"`
	Description     sql.NullString `db:"description"`
	Merchant        sql.NullString `db:"merchant"`
	Amount          sql.NullString `db:"amount"`
	Type            sql.NullString `db:"type"`
	Category        sql.NullString `db:"category"`
	CategoryID      sql.NullString `db:"category_id"`
	AccountID       sql.NullString `db:"account_id"`
	BillID          sql.NullString `db:"bill_id"`
	IsIgnored       sql.NullBool   `db:"is_ignored"`
	IsTaxDeductible sql.NullBool   `db:"is_tax_deductible"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

func (r *transactionRepository) makeTransaction(row TransactionDB) entity.Transaction {
	return entity.Transaction{
		ID:              row.ID.String,
		UserID:          row.UserID.String,
		Date:            row.Date,
		Description:     row.Description.String,
		Merchant:        row.Merchant.String,
		Amount:          row.Amount.String,
		Type:            row.Type.String,
		Category:        row.Category.String,
		CategoryID:      row.CategoryID.String,
		AccountID:       row.AccountID.String,
		BillID:          row.BillID.String,
		IsIgnored:       row.IsIgnored.Bool,
		IsTaxDeductible: row.IsTaxDeductible.Bool,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

func (r *transactionRepository) GetTransactionByID(c context.Context, id string) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var row TransactionDB

	query, args, err := sqlx.Named(queryGetTransactionByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionByID named query preparation err")
		return entity.Transaction{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Transaction{}, transaction.ErrTransactionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionByID execution err")
		return entity.Transaction{}, err
	}

	return r.makeTransaction(row), nil
}

func (r *transactionRepository) GetTransactionsByUserID(c context.Context, userID string) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []TransactionDB

	query, args, err := sqlx.Named(queryGetTransactionsByUserID, map[string]interface{}{"user_id": userID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionsByUserID named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionsByUserID execution err")
		return nil, err
	}

	transactions := make([]entity.Transaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, r.makeTransaction(row))
	}

	return transactions, nil
}

func (r *transactionRepository) UpdateTransaction(c context.Context, tx entity.Transaction) error {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"id":                tx.ID,
		"description":       tx.Description,
		"category":          tx.Category,
		"category_id":       tx.CategoryID,
		"bill_id":           tx.BillID,
		"is_ignored":        tx.IsIgnored,
		"is_tax_deductible": tx.IsTaxDeductible,
		"updated_at":        time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTransaction named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating transaction")
		return err
	}

	return nil
}

// likeEscaper neutralizes LIKE metacharacters so a merchant name like
// "AT&T_Wireless" matches literally instead of treating "_" as a wildcard.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func merchantPattern(merchant string) string {
	return "%" + likeEscaper.Replace(merchant) + "%"
}

func (r *transactionRepository) CountTransactionsByMerchant(c context.Context, userID string, merchant string) (int, error) {
	requestID := contextPkg.GetRequestID(c)
	var count int

	argsKV := map[string]interface{}{
		"user_id": userID,
		"pattern": merchantPattern(merchant),
	}

	query, args, err := sqlx.Named(queryCountTransactionsByMerchant, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountTransactionsByMerchant named query preparation err")
		return 0, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).Scan(&count); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountTransactionsByMerchant execution err")
		return 0, err
	}

	return count, nil
}

func (r *transactionRepository) GetTransactionDatesByMerchant(c context.Context, userID string, merchant string) ([]time.Time, error) {
	requestID := contextPkg.GetRequestID(c)
	var dates []time.Time

	argsKV := map[string]interface{}{
		"user_id": userID,
		"pattern": merchantPattern(merchant),
	}

	query, args, err := sqlx.Named(queryGetTransactionDatesByMerchant, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionDatesByMerchant named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &dates, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionDatesByMerchant execution err")
		return nil, err
	}

	return dates, nil
}
