package transactionRepository

const (
	queryGetTransactionByID = `
		SELECT
			id,
			user_id,
			date,
			description,
			merchant,
			amount,
			type,
			category,
			category_id,
			account_id,
			bill_id,
			is_ignored,
			is_tax_deductible,
			created_at,
			updated_at
		FROM transactions
		WHERE id = :id
	`

	queryGetTransactionsByUserID = `
		SELECT
			id,
			user_id,
			date,
			description,
			merchant,
			amount,
			type,
			category,
			category_id,
			account_id,
			bill_id,
			is_ignored,
			is_tax_deductible,
			created_at,
			updated_at
		FROM transactions
		WHERE user_id = :user_id
		ORDER BY date DESC, created_at DESC
	`

	queryUpdateTransaction = `
		UPDATE transactions
		SET
			description = :description,
			category = :category,
			category_id = :category_id,
			bill_id = :bill_id,
			is_ignored = :is_ignored,
			is_tax_deductible = :is_tax_deductible,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryCountTransactionsByMerchant = `
		SELECT COUNT(*)
		FROM transactions
		WHERE
			user_id = :user_id
			AND (merchant ILIKE :pattern OR (merchant = '' AND description ILIKE :pattern))
	`

	queryGetTransactionDatesByMerchant = `
		SELECT date
		FROM transactions
		WHERE
			user_id = :user_id
			AND (merchant ILIKE :pattern OR (merchant = '' AND description ILIKE :pattern))
		ORDER BY date DESC
	`

	queryGetAccountsByUserID = `
		SELECT
			id,
			user_id,
			name,
			institution,
			created_at
		FROM accounts
		WHERE user_id = :user_id
		ORDER BY name ASC
	`

	queryGetCategories = `
		SELECT
			id,
			name,
			type
		FROM categories
		ORDER BY type ASC, name ASC
	`
)
