package automation

type ConditionRequest struct {
	Field    string `json:"field" validate:"required,oneof=name amount account"`
	Operator string `json:"operator" validate:"required,oneof=contains equals in"`
	Value    string `json:"value"`
}

type ActionRequest struct {
	Type  string `json:"type" validate:"required,oneof=set_category rename_transaction assign_to_bill ignore_transaction mark_tax_deductible"`
	Value string `json:"value"`
}

type CreateRuleRequest struct {
	UserID                   string             `json:"user_id" validate:"required"`
	Name                     string             `json:"name" validate:"required"`
	IsActive                 bool               `json:"is_active"`
	Conditions               []ConditionRequest `json:"conditions" validate:"required,min=1,dive"`
	Actions                  []ActionRequest    `json:"actions" validate:"required,min=1,dive"`
	CreatedFromTransactionID string             `json:"created_from_transaction_id"`
}

// UpdateRuleRequest carries the partial fields the conflict-resolution flow
// may patch onto an existing rule. Nil means leave untouched.
type UpdateRuleRequest struct {
	Name               *string  `json:"name"`
	IsActive           *bool    `json:"is_active"`
	MerchantPattern    *string  `json:"merchant_pattern"`
	DescriptionPattern *string  `json:"description_pattern"`
	AmountMin          *float64 `json:"amount_min"`
	AmountMax          *float64 `json:"amount_max"`
	SetCategoryID      *string  `json:"set_category_id"`
	RenameTo           *string  `json:"rename_to"`
}

type PreviewRequest struct {
	UserID     string             `json:"user_id" validate:"required"`
	Conditions []ConditionRequest `json:"conditions" validate:"required,min=1,dive"`
}

type PreviewTransaction struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Merchant    string `json:"merchant,omitempty"`
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	AccountID   string `json:"account_id,omitempty"`
}

type PreviewResponse struct {
	Matches    []PreviewTransaction `json:"matches"`
	TotalCount int                  `json:"total_count"`
}

type RuleResponse struct {
	ID                       string   `json:"id"`
	Name                     string   `json:"name"`
	IsActive                 bool     `json:"is_active"`
	MerchantPattern          string   `json:"merchant_pattern,omitempty"`
	DescriptionPattern       string   `json:"description_pattern,omitempty"`
	AmountMin                *float64 `json:"amount_min,omitempty"`
	AmountMax                *float64 `json:"amount_max,omitempty"`
	AccountIDs               string   `json:"account_ids,omitempty"`
	SetCategoryID            string   `json:"set_category_id,omitempty"`
	RenameTo                 string   `json:"rename_to,omitempty"`
	AssignToBillID           string   `json:"assign_to_bill_id,omitempty"`
	IgnoreTransaction        bool     `json:"ignore_transaction"`
	MarkTaxDeductible        bool     `json:"mark_tax_deductible"`
	CreatedFromTransactionID string   `json:"created_from_transaction_id,omitempty"`
	CreatedAt                string   `json:"created_at"`
	UpdatedAt                string   `json:"updated_at"`
}

type RuleListResponse struct {
	Rules []RuleResponse `json:"rules"`
	Total int            `json:"total"`
}
