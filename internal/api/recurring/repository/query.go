package recurringRepository

const (
	queryCreateOverride = `
		INSERT INTO recurring_overrides (
			id,
			user_id,
			merchant_name,
			original_merchant,
			recurring_status,
			apply_to_all,
			reason,
			trigger_transaction_id,
			applied_count,
			related_transaction_count,
			created_at
		) VALUES (
			:id,
			:user_id,
			:merchant_name,
			:original_merchant,
			:recurring_status,
			:apply_to_all,
			:reason,
			:trigger_transaction_id,
			:applied_count,
			:related_transaction_count,
			:created_at
		)
	`

	queryGetOverridesByUserID = `
		SELECT
			id,
			user_id,
			merchant_name,
			original_merchant,
			recurring_status,
			apply_to_all,
			reason,
			trigger_transaction_id,
			applied_count,
			related_transaction_count,
			created_at
		FROM recurring_overrides
		WHERE user_id = :user_id
		ORDER BY created_at DESC
	`

	queryGetOverrideByMerchant = `
		SELECT
			id,
			user_id,
			merchant_name,
			original_merchant,
			recurring_status,
			apply_to_all,
			reason,
			trigger_transaction_id,
			applied_count,
			related_transaction_count,
			created_at
		FROM recurring_overrides
		WHERE
			user_id = :user_id
			AND LOWER(merchant_name) = LOWER(:merchant_name)
		ORDER BY created_at DESC
		LIMIT 1
	`
)
