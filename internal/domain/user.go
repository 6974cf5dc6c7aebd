package domain

// User is the authenticated identity reported by the session provider.
// It is valid only while the provider reports an active session.
type User struct {
	ID          string
	Email       string
	DisplayName string
}
