package entity

import "time"

// AutomationRule is a saved rule as stored server-side. Pattern fields use the
// empty string for "not set"; the amount bounds are pointers because a rule
// only participates in amount-overlap checks when both bounds are defined.
type AutomationRule struct {
	ID                       string    `json:"id"`
	UserID                   string    `json:"user_id"`
	Name                     string    `json:"name"`
	IsActive                 bool      `json:"is_active"`
	MerchantPattern          string    `json:"merchant_pattern,omitempty"`
	DescriptionPattern       string    `json:"description_pattern,omitempty"`
	AmountMin                *float64  `json:"amount_min,omitempty"`
	AmountMax                *float64  `json:"amount_max,omitempty"`
	AccountIDs               string    `json:"account_ids,omitempty"`
	SetCategoryID            string    `json:"set_category_id,omitempty"`
	RenameTo                 string    `json:"rename_to,omitempty"`
	AssignToBillID           string    `json:"assign_to_bill_id,omitempty"`
	IgnoreTransaction        bool      `json:"ignore_transaction"`
	MarkTaxDeductible        bool      `json:"mark_tax_deductible"`
	CreatedFromTransactionID string    `json:"created_from_transaction_id,omitempty"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}
