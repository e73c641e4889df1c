package admin

// UpdateLimitsRequest represents the request body for changing global limits.
// -1 disables the limit for that tier entirely.
type UpdateLimitsRequest struct {
	GuestDailyLimit *int `json:"guest_daily_limit" binding:"required"`
	UserDailyLimit  *int `json:"user_daily_limit" binding:"required"`
}
