package settings

const (
	queryGlobalLimits = `
		SELECT guest_daily_limit, user_daily_limit
		FROM global_settings
		ORDER BY updated_at DESC
		LIMIT 1
	`

	queryUpdateGlobalLimits = `
		INSERT INTO global_settings (guest_daily_limit, user_daily_limit, updated_at)
		VALUES ($1, $2, NOW())
	`
)
