// Package ruleengine holds the pure matching logic behind automation rules:
// the condition predicate evaluator, the conflict detector and the merchant
// recurrence heuristic. Nothing in here touches the network or the database.
package ruleengine

import (
	"math"
	"strconv"
	"strings"

	"FintrackGolang/internal/entity"
)

const (
	FieldName    = "name"
	FieldAmount  = "amount"
	FieldAccount = "account"

	OperatorContains = "contains"
	OperatorEquals   = "equals"
	OperatorIn       = "in"
)

// AmountEpsilon absorbs float artifacts from parsing decimal strings.
const AmountEpsilon = 0.01

// PreviewLimit caps how many matches a preview response carries. Display
// limit only; the total count is computed before truncation.
const PreviewLimit = 50

// Condition is the wire form of a single draft rule condition.
type Condition struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

// Draft is a normalized set of rule conditions. A condition type is enabled
// when it was present in the wire payload, regardless of its value.
type Draft struct {
	MatchByName bool
	NameValue   string

	MatchByAmount bool
	AmountValue   string

	FilterByAccount bool
	AccountIDs      []string
}

// DraftFromConditions folds the wire condition list into a Draft. Account ids
// arrive comma-joined; blanks are dropped.
func DraftFromConditions(conditions []Condition) Draft {
	var d Draft
	for _, c := range conditions {
		switch c.Field {
		case FieldName:
			d.MatchByName = true
			d.NameValue = c.Value
		case FieldAmount:
			d.MatchByAmount = true
			d.AmountValue = c.Value
		case FieldAccount:
			d.FilterByAccount = true
			for _, id := range strings.Split(c.Value, ",") {
				if id = strings.TrimSpace(id); id != "" {
					d.AccountIDs = append(d.AccountIDs, id)
				}
			}
		}
	}
	return d
}

func (d Draft) HasEnabledCondition() bool {
	return d.MatchByName || d.MatchByAmount || d.FilterByAccount
}

// MatchTransactions returns the transactions satisfying every enabled
// condition (AND across condition types, OR inside the account set). With
// zero enabled conditions it returns no matches; the at-least-one-condition
// rule is the caller's validation, not a reason to match everything.
func MatchTransactions(transactions []entity.Transaction, d Draft) []entity.Transaction {
	if !d.HasEnabledCondition() {
		return nil
	}

	nameQuery := strings.ToLower(strings.TrimSpace(d.NameValue))

	var queryAmount float64
	amountParsed := false
	if d.MatchByAmount {
		if v, err := strconv.ParseFloat(strings.TrimSpace(d.AmountValue), 64); err == nil {
			queryAmount = v
			amountParsed = true
		}
	}

	accountSet := make(map[string]bool, len(d.AccountIDs))
	for _, id := range d.AccountIDs {
		accountSet[id] = true
	}

	var matched []entity.Transaction
	for _, tx := range transactions {
		// Empty/whitespace name query imposes no filtering.
		if d.MatchByName && nameQuery != "" {
			if !strings.Contains(strings.ToLower(tx.MatchText()), nameQuery) {
				continue
			}
		}

		if d.MatchByAmount {
			// Unparsable amounts on either side never match.
			if !amountParsed {
				continue
			}
			txAmount, err := strconv.ParseFloat(strings.TrimSpace(tx.Amount), 64)
			if err != nil {
				continue
			}
			if math.Abs(txAmount-queryAmount) >= AmountEpsilon {
				continue
			}
		}

		if d.FilterByAccount && len(accountSet) > 0 {
			if !accountSet[tx.AccountID] {
				continue
			}
		}

		matched = append(matched, tx)
	}

	return matched
}

// Preview is the rule-builder live preview: the first PreviewLimit matches
// plus the true match count.
type Preview struct {
	Matches    []entity.Transaction
	TotalCount int
}

func PreviewMatches(transactions []entity.Transaction, d Draft) Preview {
	matched := MatchTransactions(transactions, d)
	preview := Preview{Matches: matched, TotalCount: len(matched)}
	if len(matched) > PreviewLimit {
		preview.Matches = matched[:PreviewLimit]
	}
	return preview
}
