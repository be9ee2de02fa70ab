package recurring

type CreateOverrideRequest struct {
	UserID               string `json:"user_id" validate:"required"`
	MerchantName         string `json:"merchant_name" validate:"required"`
	OriginalMerchant     string `json:"original_merchant"`
	RecurringStatus      string `json:"recurring_status" validate:"required,oneof=recurring non-recurring"`
	ApplyToAll           bool   `json:"apply_to_all"`
	Reason               string `json:"reason"`
	TriggerTransactionID string `json:"trigger_transaction_id"`
}

type OverrideResponse struct {
	ID                      string `json:"id"`
	MerchantName            string `json:"merchant_name"`
	OriginalMerchant        string `json:"original_merchant,omitempty"`
	RecurringStatus         string `json:"recurring_status"`
	ApplyToAll              bool   `json:"apply_to_all"`
	Reason                  string `json:"reason,omitempty"`
	TriggerTransactionID    string `json:"trigger_transaction_id,omitempty"`
	AppliedCount            int    `json:"applied_count"`
	RelatedTransactionCount int    `json:"related_transaction_count"`
	CreatedAt               string `json:"created_at"`
}

type OverrideListResponse struct {
	Overrides []OverrideResponse `json:"overrides"`
	Total     int                `json:"total"`
}

// FrequencyResponse reports how a merchant's cadence was decided: a stored
// user override wins over the heuristic.
type FrequencyResponse struct {
	Merchant        string `json:"merchant"`
	Frequency       string `json:"frequency"`
	Source          string `json:"source"`
	RecurringStatus string `json:"recurring_status,omitempty"`
	SampleCount     int    `json:"sample_count"`
}
