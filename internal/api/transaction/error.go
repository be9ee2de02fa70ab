package transaction

import "FintrackGolang/pkg/response"

var (
	ErrTransactionNotFound = response.NewError(404, "transaction not found")
	ErrTransactionNotOwned = response.NewError(403, "transaction does not belong to user")
	ErrUpdateTransaction   = response.NewError(500, "failed to update transaction")
)
