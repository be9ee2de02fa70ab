package entity

import "time"

type RecurringStatus string

const (
	RecurringStatusRecurring    RecurringStatus = "recurring"
	RecurringStatusNonRecurring RecurringStatus = "non-recurring"
)

func IsValidRecurringStatus(status string) bool {
	switch RecurringStatus(status) {
	case RecurringStatusRecurring, RecurringStatusNonRecurring:
		return true
	default:
		return false
	}
}

// RecurringOverride is a user's manual recurring/non-recurring decision for a
// merchant. It short-circuits the frequency heuristic for future transactions
// from the same merchant.
type RecurringOverride struct {
	ID                      string    `json:"id"`
	UserID                  string    `json:"user_id"`
	MerchantName            string    `json:"merchant_name"`
	OriginalMerchant        string    `json:"original_merchant"`
	RecurringStatus         string    `json:"recurring_status"`
	ApplyToAll              bool      `json:"apply_to_all"`
	Reason                  string    `json:"reason,omitempty"`
	TriggerTransactionID    string    `json:"trigger_transaction_id,omitempty"`
	AppliedCount            int       `json:"applied_count"`
	RelatedTransactionCount int       `json:"related_transaction_count"`
	CreatedAt               time.Time `json:"created_at"`
}
