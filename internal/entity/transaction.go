package entity

import "time"

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

func IsValidTransactionType(transactionType string) bool {
	switch TransactionType(transactionType) {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

// Transaction is the client-facing ledger row. Amount stays a decimal string
// end to end; it is parsed only at comparison time so unparsable values can
// keep the never-matches semantics of the rule engine.
type Transaction struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Date            time.Time `json:"date"`
	Description     string    `json:"description"`
	Merchant        string    `json:"merchant,omitempty"`
	Amount          string    `json:"amount"`
	Type            string    `json:"type"`
	Category        string    `json:"category"`
	CategoryID      string    `json:"category_id,omitempty"`
	AccountID       string    `json:"account_id,omitempty"`
	BillID          string    `json:"bill_id,omitempty"`
	IsIgnored       bool      `json:"is_ignored"`
	IsTaxDeductible bool      `json:"is_tax_deductible"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// MatchText returns the string rule conditions match against: the merchant
// name when present, otherwise the raw description.
func (t *Transaction) MatchText() string {
	if t.Merchant != "" {
		return t.Merchant
	}
	return t.Description
}
