package automationRepository

import (
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"FintrackGolang/internal/entity"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Rule:     &ruleRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Rule interface {
		CreateRule(c context.Context, rule entity.AutomationRule) error
		GetRuleByID(c context.Context, id string) (entity.AutomationRule, error)
		GetRulesByUserID(c context.Context, userID string) ([]entity.AutomationRule, error)
		GetActiveRulesByUserID(c context.Context, userID string) ([]entity.AutomationRule, error)
		UpdateRule(c context.Context, rule entity.AutomationRule) error
		DeleteRule(c context.Context, id string) error
	}

	Commit   func() error
	Rollback func() error
}

type ruleRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
