package subscriptions

const (
	queryActiveForUser = `
		SELECT s.id, s.user_id, s.plan_id, p.name, s.status, p.daily_limit, s.expires_at, s.created_at
		FROM subscriptions s
		JOIN plans p ON p.id = s.plan_id
		WHERE s.user_id = $1 AND s.status = 'active'
		ORDER BY s.created_at DESC
		LIMIT 1
	`
)
