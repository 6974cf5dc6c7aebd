package ports

import "context"

// Session is the authenticated identity extracted from a Supabase access
// token. The service never issues or refreshes tokens; it only verifies
// them and forwards the raw token downstream so row-level security
// applies to every store operation. The inbound HTTP layer places the
// session in the request context and the store adapters read it back,
// so the type lives here rather than with either adapter.
type Session struct {
	// UserID is the Supabase user id (sub claim).
	UserID string

	// Email is the user's email address, when present in the token.
	Email string

	// DisplayName is the profile name from the user metadata claim,
	// when present in the token.
	DisplayName string

	// Token is the raw JWT as received, forwarded verbatim downstream.
	Token string
}

// sessionCtxKey keeps the session context value private to this package.
type sessionCtxKey struct{}

// ContextWithSession stores a session in the context.
func ContextWithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, s)
}

// SessionFromContext extracts the session from the context. Returns nil
// for anonymous requests.
func SessionFromContext(ctx context.Context) *Session {
	if ctx == nil {
		return nil
	}

	if s, ok := ctx.Value(sessionCtxKey{}).(*Session); ok {
		return s
	}

	return nil
}
