package automationRepository

const (
	queryCreateRule = `
		INSERT INTO automation_rules (
			id,
			user_id,
			name,
			is_active,
			merchant_pattern,
			description_pattern,
			amount_min,
			amount_max,
			account_ids,
			set_category_id,
			rename_to,
			assign_to_bill_id,
			ignore_transaction,
			mark_tax_deductible,
			created_from_transaction_id,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:name,
			:is_active,
			:merchant_pattern,
			:description_pattern,
			:amount_min,
			:amount_max,
			:account_ids,
			:set_category_id,
			:rename_to,
			:assign_to_bill_id,
			:ignore_transaction,
			:mark_tax_deductible,
			:created_from_transaction_id,
			:created_at,
			:updated_at
		)
	`

	queryGetRuleByID = `
		SELECT
			id,
			user_id,
			name,
			is_active,
			merchant_pattern,
			description_pattern,
			amount_min,
			amount_max,
			account_ids,
			set_category_id,
			rename_to,
			assign_to_bill_id,
			ignore_transaction,
			mark_tax_deductible,
			created_from_transaction_id,
			created_at,
			updated_at
		FROM automation_rules
		WHERE id = :id
	`

	queryGetRulesByUserID = `
		SELECT
			id,
			user_id,
			name,
			is_active,
			merchant_pattern,
			description_pattern,
			amount_min,
			amount_max,
			account_ids,
			set_category_id,
			rename_to,
			assign_to_bill_id,
			ignore_transaction,
			mark_tax_deductible,
			created_from_transaction_id,
			created_at,
			updated_at
		FROM automation_rules
		WHERE user_id = :user_id
		ORDER BY created_at DESC
	`

	queryGetActiveRulesByUserID = `
		SELECT
			id,
			user_id,
			name,
			is_active,
			merchant_pattern,
			description_pattern,
			amount_min,
			amount_max,
			account_ids,
			set_category_id,
			rename_to,
			assign_to_bill_id,
			ignore_transaction,
			mark_tax_deductible,
			created_from_transaction_id,
			created_at,
			updated_at
		FROM automation_rules
		WHERE
			user_id = :user_id
			AND is_active = TRUE
		ORDER BY created_at ASC
	`

	queryUpdateRule = `
		UPDATE automation_rules
		SET
			name = :name,
			is_active = :is_active,
			merchant_pattern = :merchant_pattern,
			description_pattern = :description_pattern,
			amount_min = :amount_min,
			amount_max = :amount_max,
			account_ids = :account_ids,
			set_category_id = :set_category_id,
			rename_to = :rename_to,
			assign_to_bill_id = :assign_to_bill_id,
			ignore_transaction = :ignore_transaction,
			mark_tax_deductible = :mark_tax_deductible,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteRule = `
		DELETE FROM automation_rules
		WHERE id = :id
	`
)
