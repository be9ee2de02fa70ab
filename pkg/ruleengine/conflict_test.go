package ruleengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FintrackGolang/internal/entity"
)

func floatPtr(v float64) *float64 { return &v }

func activeRule(id, merchantPattern string) entity.AutomationRule {
	return entity.AutomationRule{
		ID:              id,
		UserID:          "user-1",
		Name:            "rule " + id,
		IsActive:        true,
		MerchantPattern: merchantPattern,
	}
}

func TestFindConflictReturnsNilWhenNoRules(t *testing.T) {
	d := DraftFromConditions([]Condition{
		{Field: FieldName, Operator: OperatorContains, Value: "netflix"},
	})

	assert.Nil(t, FindConflict(d, nil))
	assert.Nil(t, FindConflict(d, []entity.AutomationRule{}))
}

func TestFindConflictIgnoresInactiveRules(t *testing.T) {
	inactive := activeRule("r1", "netflix")
	inactive.IsActive = false

	d := DraftFromConditions([]Condition{
		{Field: FieldName, Operator: OperatorContains, Value: "netflix"},
	})

	assert.Nil(t, FindConflict(d, []entity.AutomationRule{inactive}))
}

func TestFindConflictNameOverlapIsBidirectional(t *testing.T) {
	// Existing broad pattern contains the draft value.
	d := DraftFromConditions([]Condition{
		{Field: FieldName, Operator: OperatorContains, Value: "Netflix"},
	})
	got := FindConflict(d, []entity.AutomationRule{activeRule("r1", "flix")})
	require.NotNil(t, got)
	assert.Equal(t, "r1", got.ID)

	// Draft value contains the existing pattern's superset form.
	d = DraftFromConditions([]Condition{
		{Field: FieldName, Operator: OperatorContains, Value: "flix"},
	})
	got = FindConflict(d, []entity.AutomationRule{activeRule("r2", "NETFLIX STREAMING")})
	require.NotNil(t, got)
	assert.Equal(t, "r2", got.ID)
}

func TestFindConflictFirstMatchWinsOverLaterAmountMatch(t *testing.T) {
	nameRule := activeRule("by-name", "uber")
	amountRule := activeRule("by-amount", "")
	amountRule.AmountMin = floatPtr(20)
	amountRule.AmountMax = floatPtr(30)

	d := DraftFromConditions([]Condition{
		{Field: FieldName, Operator: OperatorContains, Value: "uber"},
		{Field: FieldAmount, Operator: OperatorEquals, Value: "24.10"},
	})

	got := FindConflict(d, []entity.AutomationRule{nameRule, amountRule})
	require.NotNil(t, got)
	assert.Equal(t, "by-name", got.ID)
}

func TestFindConflictAmountRangeIsInclusive(t *testing.T) {
	rule := activeRule("r1", "")
	rule.AmountMin = floatPtr(10)
	rule.AmountMax = floatPtr(20)

	for _, amount := range []string{"10", "20", "15.5"} {
		d := DraftFromConditions([]Condition{
			{Field: FieldAmount, Operator: OperatorEquals, Value: amount},
		})
		assert.NotNil(t, FindConflict(d, []entity.AutomationRule{rule}), "amount %s", amount)
	}

	d := DraftFromConditions([]Condition{
		{Field: FieldAmount, Operator: OperatorEquals, Value: "20.01"},
	})
	assert.Nil(t, FindConflict(d, []entity.AutomationRule{rule}))
}

func TestFindConflictAmountCheckNeedsBothBounds(t *testing.T) {
	rule := activeRule("r1", "")
	rule.AmountMin = floatPtr(10)

	d := DraftFromConditions([]Condition{
		{Field: FieldAmount, Operator: OperatorEquals, Value: "15"},
	})

	assert.Nil(t, FindConflict(d, []entity.AutomationRule{rule}))
}

func TestFindConflictGoneAfterRuleDeleted(t *testing.T) {
	// Deleting the conflicting rule and resubmitting the same draft must
	// succeed: detection only consults the rules it is handed.
	d := DraftFromConditions([]Condition{
		{Field: FieldName, Operator: OperatorContains, Value: "Netflix"},
	})

	rules := []entity.AutomationRule{activeRule("r1", "flix")}
	require.NotNil(t, FindConflict(d, rules))
	assert.Nil(t, FindConflict(d, rules[:0]))
}
