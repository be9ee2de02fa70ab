package transaction

// UpdateTransactionRequest carries client-proposed mutations: the backend
// owns all writes, the client only proposes them. Nil means leave untouched.
type UpdateTransactionRequest struct {
	ID              string  `json:"id" validate:"required"`
	UserID          string  `json:"user_id" validate:"required"`
	Description     *string `json:"description"`
	Category        *string `json:"category"`
	CategoryID      *string `json:"category_id"`
	BillID          *string `json:"bill_id"`
	IsIgnored       *bool   `json:"is_ignored"`
	IsTaxDeductible *bool   `json:"is_tax_deductible"`
}

type TransactionResponse struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	Description     string `json:"description"`
	Merchant        string `json:"merchant,omitempty"`
	Amount          string `json:"amount"`
	Type            string `json:"type"`
	Category        string `json:"category"`
	CategoryID      string `json:"category_id,omitempty"`
	AccountID       string `json:"account_id,omitempty"`
	BillID          string `json:"bill_id,omitempty"`
	IsIgnored       bool   `json:"is_ignored"`
	IsTaxDeductible bool   `json:"is_tax_deductible"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

type AccountResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Institution string `json:"institution,omitempty"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}
