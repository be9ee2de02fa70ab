package transactionRepository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"FintrackGolang/internal/entity"
	contextPkg "FintrackGolang/pkg/context"
)

type AccountDB struct {
	ID          sql.NullString `db:"id"`
	UserID      sql.NullString `db:"user_id"`
	Name        sql.NullString `db:"name"`
	Institution sql.NullString `db:"institution"`
	CreatedAt   time.Time      `db:"created_at"`
}

type CategoryDB struct {
	ID   sql.NullString `db:"id"`
	Name sql.NullString `db:"name"`
	Type sql.NullString `db:"type"`
}

func (r *accountRepository) GetAccountsByUserID(c context.Context, userID string) ([]entity.Account, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []AccountDB

	query, args, err := sqlx.Named(queryGetAccountsByUserID, map[string]interface{}{"user_id": userID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAccountsByUserID named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAccountsByUserID execution err")
		return nil, err
	}

	accounts := make([]entity.Account, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, entity.Account{
			ID:          row.ID.String,
			UserID:      row.UserID.String,
			Name:        row.Name.String,
			Institution: row.Institution.String,
			CreatedAt:   row.CreatedAt,
		})
	}

	return accounts, nil
}

func (r *accountRepository) GetCategories(c context.Context) ([]entity.Category, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []CategoryDB

	query := r.q.Rebind(queryGetCategories)

	if err := r.q.SelectContext(c, &rows, query); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategories execution err")
		return nil, err
	}

	categories := make([]entity.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, entity.Category{
			ID:   row.ID.String,
			Name: row.Name.String,
			Type: row.Type.String,
		})
	}

	return categories, nil
}
