package ruleengine

import (
	"strconv"
	"strings"

	"FintrackGolang/internal/entity"
)

// FindConflict scans the stored rules in order and returns the first active
// one whose merchant pattern or amount range overlaps the draft, or nil. The
// two checks are independent: a rule can conflict on name alone or amount
// alone. At most one conflict is ever surfaced.
//
// The name check is a bidirectional substring test so a narrow new pattern
// inside an existing broad one is caught as well as the reverse. It is a
// might-overlap heuristic, not a proof of actual overlap: account filters
// that could disjoint the two rules are ignored.
func FindConflict(d Draft, rules []entity.AutomationRule) *entity.AutomationRule {
	nameQuery := strings.ToLower(strings.TrimSpace(d.NameValue))

	var draftAmount float64
	amountParsed := false
	if d.MatchByAmount {
		if v, err := strconv.ParseFloat(strings.TrimSpace(d.AmountValue), 64); err == nil {
			draftAmount = v
			amountParsed = true
		}
	}

	for i := range rules {
		rule := &rules[i]
		if !rule.IsActive {
			continue
		}

		if d.MatchByName && nameQuery != "" && rule.MerchantPattern != "" {
			pattern := strings.ToLower(rule.MerchantPattern)
			if strings.Contains(pattern, nameQuery) || strings.Contains(nameQuery, pattern) {
				return rule
			}
		}

		if amountParsed && rule.AmountMin != nil && rule.AmountMax != nil {
			if draftAmount >= *rule.AmountMin && draftAmount <= *rule.AmountMax {
				return rule
			}
		}
	}

	return nil
}
