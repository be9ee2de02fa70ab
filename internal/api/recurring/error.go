package recurring

import "FintrackGolang/pkg/response"

var (
	ErrInvalidRecurringStatus = response.NewError(400, "invalid recurring status")
	ErrMerchantRequired       = response.NewError(400, "merchant name is required")
	ErrCreateOverride         = response.NewError(500, "failed to create recurring override")
)
