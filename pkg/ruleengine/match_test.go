package ruleengine

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FintrackGolang/internal/entity"
)

func tx(id, merchant, description, amount, accountID string) entity.Transaction {
	return entity.Transaction{
		ID:          id,
		UserID:      "user-1",
		Date:        time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Merchant:    merchant,
		Description: description,
		Amount:      amount,
		Type:        "expense",
		AccountID:   accountID,
	}
}

func TestMatchTransactionsNameIsCaseInsensitiveSubstring(t *testing.T) {
	transactions := []entity.Transaction{
		tx("1", "", "UBER TRIP", "24.10", "acc-1"),
		tx("2", "", "Uber Eats", "18.75", "acc-1"),
		tx("3", "Starbucks", "card purchase", "5.25", "acc-1"),
	}

	d := DraftFromConditions([]Condition{
		{Field: FieldName, Operator: OperatorContains, Value: "uber"},
	})

	matched := MatchTransactions(transactions, d)
	require.Len(t, matched, 2)
	assert.Equal(t, "1", matched[0].ID)
	assert.Equal(t, "2", matched[1].ID)
}

func TestMatchTransactionsPrefersMerchantOverDescription(t *testing.T) {
	// Merchant is set, so the description is not consulted.
	transactions := []entity.Transaction{
		tx("1", "Starbucks", "uber something", "5.25", "acc-1"),
	}

	d := DraftFromConditions([]Condition{
		{Field: FieldName, Operator: OperatorContains, Value: "uber"},
	})

	assert.Empty(t, MatchTransactions(transactions, d))
}

func TestMatchTransactionsEmptyNameQueryImposesNoFilter(t *testing.T) {
	transactions := []entity.Transaction{
		tx("1", "Netflix", "", "15.49", "acc-1"),
		tx("2", "Spotify", "", "9.99", "acc-2"),
	}

	d := DraftFromConditions([]Condition{
		{Field: FieldName, Operator: OperatorContains, Value: "   "},
	})

	// The toggle is on, so the draft still counts as having a condition,
	// but the blank query filters nothing out.
	require.True(t, d.HasEnabledCondition())
	assert.Len(t, MatchTransactions(transactions, d), 2)
}

func TestMatchTransactionsZeroConditionsMatchesNothing(t *testing.T) {
	transactions := []entity.Transaction{
		tx("1", "Netflix", "", "15.49", "acc-1"),
	}

	assert.Empty(t, MatchTransactions(transactions, Draft{}))
}

func TestMatchTransactionsAmountEpsilon(t *testing.T) {
	transactions := []entity.Transaction{
		tx("1", "Shop", "", "19.990", "acc-1"),
		tx("2", "Shop", "", "20.01", "acc-1"),
		tx("3", "Shop", "", "not-a-number", "acc-1"),
	}

	d := DraftFromConditions([]Condition{
		{Field: FieldAmount, Operator: OperatorEquals, Value: "19.99"},
	})

	matched := MatchTransactions(transactions, d)
	require.Len(t, matched, 1)
	assert.Equal(t, "1", matched[0].ID)
}

func TestMatchTransactionsUnparsableQueryAmountMatchesNothing(t *testing.T) {
	transactions := []entity.Transaction{
		tx("1", "Shop", "", "19.99", "acc-1"),
	}

	d := DraftFromConditions([]Condition{
		{Field: FieldAmount, Operator: OperatorEquals, Value: "abc"},
	})

	assert.Empty(t, MatchTransactions(transactions, d))
}

func TestMatchTransactionsAccountMembershipIsOr(t *testing.T) {
	transactions := []entity.Transaction{
		tx("1", "Shop", "", "10.00", "acc-1"),
		tx("2", "Shop", "", "10.00", "acc-2"),
		tx("3", "Shop", "", "10.00", "acc-3"),
	}

	d := DraftFromConditions([]Condition{
		{Field: FieldAccount, Operator: OperatorIn, Value: "acc-1, acc-3"},
	})

	matched := MatchTransactions(transactions, d)
	require.Len(t, matched, 2)
	assert.Equal(t, "1", matched[0].ID)
	assert.Equal(t, "3", matched[1].ID)
}

func TestMatchTransactionsConditionTypesAreAnded(t *testing.T) {
	transactions := []entity.Transaction{
		tx("1", "Uber", "", "24.10", "acc-1"),
		tx("2", "Uber", "", "24.10", "acc-2"),
		tx("3", "Uber", "", "9.00", "acc-1"),
		tx("4", "Lyft", "", "24.10", "acc-1"),
	}

	d := DraftFromConditions([]Condition{
		{Field: FieldName, Operator: OperatorContains, Value: "uber"},
		{Field: FieldAmount, Operator: OperatorEquals, Value: "24.10"},
		{Field: FieldAccount, Operator: OperatorIn, Value: "acc-1"},
	})

	matched := MatchTransactions(transactions, d)
	require.Len(t, matched, 1)
	assert.Equal(t, "1", matched[0].ID)
}

func TestMatchTransactionsResultIsSubsetInInputOrder(t *testing.T) {
	var transactions []entity.Transaction
	for i := 0; i < 20; i++ {
		transactions = append(transactions, tx(fmt.Sprintf("%d", i), "Cafe", "", "4.50", "acc-1"))
	}

	d := DraftFromConditions([]Condition{
		{Field: FieldName, Operator: OperatorContains, Value: "cafe"},
	})

	matched := MatchTransactions(transactions, d)
	require.Len(t, matched, len(transactions))
	for i, m := range matched {
		assert.Equal(t, transactions[i].ID, m.ID)
	}
}

func TestPreviewMatchesCapsAtFiftyButCountsAll(t *testing.T) {
	var transactions []entity.Transaction
	for i := 0; i < 120; i++ {
		transactions = append(transactions, tx(fmt.Sprintf("%d", i), "Netflix", "", "15.49", "acc-1"))
	}

	d := DraftFromConditions([]Condition{
		{Field: FieldName, Operator: OperatorContains, Value: "netflix"},
	})

	preview := PreviewMatches(transactions, d)
	assert.Len(t, preview.Matches, PreviewLimit)
	assert.Equal(t, 120, preview.TotalCount)
}

func TestMatchTransactionsNilInputDegradesToNoMatches(t *testing.T) {
	d := DraftFromConditions([]Condition{
		{Field: FieldName, Operator: OperatorContains, Value: "uber"},
	})

	assert.Empty(t, MatchTransactions(nil, d))
}
