package identity

import "github.com/gin-gonic/gin"

// FingerprintHeader carries the client-computed device fingerprint.
const FingerprintHeader = "X-Device-Fingerprint"

// builds the request identity from gin context
// a user_id set by the auth middleware wins; otherwise the caller is
// anonymous and keyed by fingerprint header plus client IP
func FromRequest(c *gin.Context) Identity {
	if userID := c.GetString("user_id"); userID != "" {
		return Registered{UserID: userID}
	}

	return Anonymous{
		Fingerprint: c.GetHeader(FingerprintHeader),
		IP:          c.ClientIP(),
	}
}
