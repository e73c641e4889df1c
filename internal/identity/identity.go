// Package identity models who is invoking a tool.
//
// A caller is either anonymous (tracked by device fingerprint and IP) or
// registered (tracked by user ID), never both for the same request. The two
// forms are separate types behind a sealed interface so the mutual exclusivity
// holds at compile time instead of relying on nullable fields.
package identity

// Identity is one of Anonymous or Registered.
type Identity interface {
	isIdentity()
}

// an unauthenticated caller, keyed by device fingerprint and IP address
// neither key is individually authoritative; both are recorded per attempt
type Anonymous struct {
	Fingerprint string
	IP          string
}

// an authenticated caller
type Registered struct {
	UserID string
}

func (Anonymous) isIdentity()  {}
func (Registered) isIdentity() {}

// reports whether the identity carries at least one usable key
// an anonymous caller with neither fingerprint nor IP cannot be counted
func Resolvable(id Identity) bool {
	switch v := id.(type) {
	case Registered:
		return v.UserID != ""
	case Anonymous:
		return v.Fingerprint != "" || v.IP != ""
	default:
		return false
	}
}
