package automationService

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"

	"FintrackGolang/internal/api/automation"
	automationRepository "FintrackGolang/internal/api/automation/repository"
	transactionRepository "FintrackGolang/internal/api/transaction/repository"
	"FintrackGolang/internal/entity"
	"FintrackGolang/pkg/utils"
)

type fakeRuleStore struct {
	rules []entity.AutomationRule
}

func (f *fakeRuleStore) CreateRule(_ context.Context, rule entity.AutomationRule) error {
	f.rules = append(f.rules, rule)
	return nil
}

func (f *fakeRuleStore) GetRuleByID(_ context.Context, id string) (entity.AutomationRule, error) {
	for _, rule := range f.rules {
		if rule.ID == id {
			return rule, nil
		}
	}
	return entity.AutomationRule{}, automation.ErrRuleNotFound
}

func (f *fakeRuleStore) GetRulesByUserID(_ context.Context, userID string) ([]entity.AutomationRule, error) {
	var out []entity.AutomationRule
	for _, rule := range f.rules {
		if rule.UserID == userID {
			out = append(out, rule)
		}
	}
	return out, nil
}

func (f *fakeRuleStore) GetActiveRulesByUserID(_ context.Context, userID string) ([]entity.AutomationRule, error) {
	var out []entity.AutomationRule
	for _, rule := range f.rules {
		if rule.UserID == userID && rule.IsActive {
			out = append(out, rule)
		}
	}
	return out, nil
}

func (f *fakeRuleStore) UpdateRule(_ context.Context, rule entity.AutomationRule) error {
	for i := range f.rules {
		if f.rules[i].ID == rule.ID {
			f.rules[i] = rule
			return nil
		}
	}
	return automation.ErrRuleNotFound
}

func (f *fakeRuleStore) DeleteRule(_ context.Context, id string) error {
	for i := range f.rules {
		if f.rules[i].ID == id {
			f.rules = append(f.rules[:i], f.rules[i+1:]...)
			return nil
		}
	}
	return automation.ErrRuleNotFound
}

type fakeRuleRepository struct {
	store *fakeRuleStore
}

func (f *fakeRuleRepository) NewClient(_ bool) (automationRepository.Client, error) {
	return automationRepository.Client{
		Rule:     f.store,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeTransactionStore struct {
	transactions []entity.Transaction
}

func (f *fakeTransactionStore) GetTransactionByID(_ context.Context, id string) (entity.Transaction, error) {
	for _, tx := range f.transactions {
		if tx.ID == id {
			return tx, nil
		}
	}
	return entity.Transaction{}, errors.New("not found")
}

func (f *fakeTransactionStore) GetTransactionsByUserID(_ context.Context, userID string) ([]entity.Transaction, error) {
	var out []entity.Transaction
	for _, tx := range f.transactions {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (f *fakeTransactionStore) UpdateTransaction(_ context.Context, _ entity.Transaction) error {
	return nil
}

func (f *fakeTransactionStore) CountTransactionsByMerchant(_ context.Context, userID string, merchant string) (int, error) {
	count := 0
	for _, tx := range f.transactions {
		if tx.UserID == userID && tx.Merchant == merchant {
			count++
		}
	}
	return count, nil
}

func (f *fakeTransactionStore) GetTransactionDatesByMerchant(_ context.Context, userID string, merchant string) ([]time.Time, error) {
	var dates []time.Time
	for _, tx := range f.transactions {
		if tx.UserID == userID && tx.Merchant == merchant {
			dates = append(dates, tx.Date)
		}
	}
	return dates, nil
}

type fakeTransactionRepository struct {
	store *fakeTransactionStore
}

func (f *fakeTransactionRepository) NewClient(_ bool) (transactionRepository.Client, error) {
	return transactionRepository.Client{
		Transaction: f.store,
		Commit:      func() error { return nil },
		Rollback:    func() error { return nil },
	}, nil
}

func newTestService(ruleStore *fakeRuleStore, txStore *fakeTransactionStore) IAutomationService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return NewAutomationService(
		logger,
		&fakeRuleRepository{store: ruleStore},
		&fakeTransactionRepository{store: txStore},
		utils.New(),
	)
}

func nameCondition(value string) automation.ConditionRequest {
	return automation.ConditionRequest{Field: "name", Operator: "contains", Value: value}
}

func categoryAction(id string) automation.ActionRequest {
	return automation.ActionRequest{Type: "set_category", Value: id}
}

func TestCreateRule(t *testing.T) {
	t.Run("persists a normalized rule", func(t *testing.T) {
		ruleStore := &fakeRuleStore{}
		svc := newTestService(ruleStore, &fakeTransactionStore{})

		rule, err := svc.CreateRule(context.Background(), automation.CreateRuleRequest{
			UserID:   "user-1",
			Name:     "Coffee shops",
			IsActive: true,
			Conditions: []automation.ConditionRequest{
				nameCondition("starbucks"),
				{Field: "amount", Operator: "equals", Value: "5.75"},
			},
			Actions: []automation.ActionRequest{categoryAction("cat-coffee")},
		})

		require.NoError(t, err)
		assert.NotEmpty(t, rule.ID)
		assert.Equal(t, "starbucks", rule.MerchantPattern)
		require.NotNil(t, rule.AmountMin)
		require.NotNil(t, rule.AmountMax)
		assert.Equal(t, 5.75, *rule.AmountMin)
		assert.Equal(t, 5.75, *rule.AmountMax)
		assert.Equal(t, "cat-coffee", rule.SetCategoryID)
		assert.Len(t, ruleStore.rules, 1)
	})

	t.Run("rejects drafts with only blank conditions", func(t *testing.T) {
		svc := newTestService(&fakeRuleStore{}, &fakeTransactionStore{})

		_, err := svc.CreateRule(context.Background(), automation.CreateRuleRequest{
			UserID:     "user-1",
			Name:       "Empty",
			Conditions: []automation.ConditionRequest{nameCondition("   ")},
			Actions:    []automation.ActionRequest{categoryAction("cat-1")},
		})

		assert.ErrorIs(t, err, automation.ErrNoEnabledCondition)
	})

	t.Run("rejects drafts whose actions are all blank", func(t *testing.T) {
		svc := newTestService(&fakeRuleStore{}, &fakeTransactionStore{})

		_, err := svc.CreateRule(context.Background(), automation.CreateRuleRequest{
			UserID:     "user-1",
			Name:       "No-op",
			Conditions: []automation.ConditionRequest{nameCondition("netflix")},
			Actions:    []automation.ActionRequest{categoryAction("  ")},
		})

		assert.ErrorIs(t, err, automation.ErrNoEnabledAction)
	})

	t.Run("surfaces the conflicting rule on overlap", func(t *testing.T) {
		ruleStore := &fakeRuleStore{rules: []entity.AutomationRule{
			{
				ID:              "rule-existing",
				UserID:          "user-1",
				Name:            "Netflix rule",
				IsActive:        true,
				MerchantPattern: "Netflix",
			},
		}}
		svc := newTestService(ruleStore, &fakeTransactionStore{})

		_, err := svc.CreateRule(context.Background(), automation.CreateRuleRequest{
			UserID:     "user-1",
			Name:       "Streaming",
			IsActive:   true,
			Conditions: []automation.ConditionRequest{nameCondition("flix")},
			Actions:    []automation.ActionRequest{categoryAction("cat-streaming")},
		})

		var conflictErr *automation.ConflictError
		require.ErrorAs(t, err, &conflictErr)
		assert.Equal(t, "rule-existing", conflictErr.Rule.ID)
		assert.Len(t, ruleStore.rules, 1)
	})

	t.Run("inactive rules never conflict", func(t *testing.T) {
		ruleStore := &fakeRuleStore{rules: []entity.AutomationRule{
			{
				ID:              "rule-disabled",
				UserID:          "user-1",
				Name:            "Netflix rule",
				IsActive:        false,
				MerchantPattern: "Netflix",
			},
		}}
		svc := newTestService(ruleStore, &fakeTransactionStore{})

		_, err := svc.CreateRule(context.Background(), automation.CreateRuleRequest{
			UserID:     "user-1",
			Name:       "Streaming",
			IsActive:   true,
			Conditions: []automation.ConditionRequest{nameCondition("netflix")},
			Actions:    []automation.ActionRequest{categoryAction("cat-streaming")},
		})

		assert.NoError(t, err)
	})

	t.Run("deleting the blocker clears the conflict", func(t *testing.T) {
		ruleStore := &fakeRuleStore{rules: []entity.AutomationRule{
			{
				ID:              "rule-existing",
				UserID:          "user-1",
				Name:            "Netflix rule",
				IsActive:        true,
				MerchantPattern: "Netflix",
			},
		}}
		svc := newTestService(ruleStore, &fakeTransactionStore{})

		req := automation.CreateRuleRequest{
			UserID:     "user-1",
			Name:       "Streaming",
			IsActive:   true,
			Conditions: []automation.ConditionRequest{nameCondition("netflix")},
			Actions:    []automation.ActionRequest{categoryAction("cat-streaming")},
		}

		_, err := svc.CreateRule(context.Background(), req)
		require.Error(t, err)

		require.NoError(t, svc.DeleteRule(context.Background(), "rule-existing", "user-1"))

		rule, err := svc.CreateRule(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "netflix", rule.MerchantPattern)
	})
}

func TestUpdateRule(t *testing.T) {
	t.Run("patches only provided fields", func(t *testing.T) {
		ruleStore := &fakeRuleStore{rules: []entity.AutomationRule{
			{
				ID:              "rule-1",
				UserID:          "user-1",
				Name:            "Old name",
				IsActive:        true,
				MerchantPattern: "Spotify",
			},
		}}
		svc := newTestService(ruleStore, &fakeTransactionStore{})

		newName := "New name"
		inactive := false
		rule, err := svc.UpdateRule(context.Background(), "rule-1", "user-1", automation.UpdateRuleRequest{
			Name:     &newName,
			IsActive: &inactive,
		})

		require.NoError(t, err)
		assert.Equal(t, "New name", rule.Name)
		assert.False(t, rule.IsActive)
		assert.Equal(t, "Spotify", rule.MerchantPattern)
	})

	t.Run("rejects updates to another user's rule", func(t *testing.T) {
		ruleStore := &fakeRuleStore{rules: []entity.AutomationRule{
			{ID: "rule-1", UserID: "user-1", Name: "Mine"},
		}}
		svc := newTestService(ruleStore, &fakeTransactionStore{})

		name := "Stolen"
		_, err := svc.UpdateRule(context.Background(), "rule-1", "user-2", automation.UpdateRuleRequest{Name: &name})

		assert.ErrorIs(t, err, automation.ErrRuleNotOwned)
	})
}

func TestDeleteRule(t *testing.T) {
	t.Run("unknown rule", func(t *testing.T) {
		svc := newTestService(&fakeRuleStore{}, &fakeTransactionStore{})

		err := svc.DeleteRule(context.Background(), "missing", "user-1")

		assert.ErrorIs(t, err, automation.ErrRuleNotFound)
	})

	t.Run("rejects deleting another user's rule", func(t *testing.T) {
		ruleStore := &fakeRuleStore{rules: []entity.AutomationRule{
			{ID: "rule-1", UserID: "user-1"},
		}}
		svc := newTestService(ruleStore, &fakeTransactionStore{})

		err := svc.DeleteRule(context.Background(), "rule-1", "user-2")

		assert.ErrorIs(t, err, automation.ErrRuleNotOwned)
		assert.Len(t, ruleStore.rules, 1)
	})
}

func TestPreviewRule(t *testing.T) {
	txStore := &fakeTransactionStore{transactions: []entity.Transaction{
		{ID: "t1", UserID: "user-1", Merchant: "Uber Eats", Amount: "23.50", Date: time.Now()},
		{ID: "t2", UserID: "user-1", Merchant: "Starbucks", Amount: "5.75", Date: time.Now()},
		{ID: "t3", UserID: "user-2", Merchant: "Uber", Amount: "12.00", Date: time.Now()},
	}}

	t.Run("matches only the requesting user's transactions", func(t *testing.T) {
		svc := newTestService(&fakeRuleStore{}, txStore)

		preview, err := svc.PreviewRule(context.Background(), automation.PreviewRequest{
			UserID:     "user-1",
			Conditions: []automation.ConditionRequest{nameCondition("uber")},
		})

		require.NoError(t, err)
		require.Len(t, preview.Matches, 1)
		assert.Equal(t, "t1", preview.Matches[0].ID)
		assert.Equal(t, 1, preview.TotalCount)
	})

	t.Run("rejects previews without an enabled condition", func(t *testing.T) {
		svc := newTestService(&fakeRuleStore{}, txStore)

		_, err := svc.PreviewRule(context.Background(), automation.PreviewRequest{
			UserID:     "user-1",
			Conditions: []automation.ConditionRequest{nameCondition("")},
		})

		assert.ErrorIs(t, err, automation.ErrNoEnabledCondition)
	})
}
