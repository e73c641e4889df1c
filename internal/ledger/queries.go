package ledger

const (
	queryInsertRecord = `
		INSERT INTO invocation_records (id, tool_id, user_id, fingerprint, ip, used_external_model, input_tokens, output_tokens, cost, created_at)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8, $9, $10)
	`

	queryCountByUser = `
		SELECT COUNT(*)
		FROM invocation_records
		WHERE user_id = $1 AND created_at >= $2
	`

	queryCountByFingerprint = `
		SELECT COUNT(*)
		FROM invocation_records
		WHERE fingerprint = $1 AND created_at >= $2
	`

	queryCountByIP = `
		SELECT COUNT(*)
		FROM invocation_records
		WHERE ip = $1 AND created_at >= $2
	`
)
