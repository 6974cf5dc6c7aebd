package ports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionFromContext_RoundTrip(t *testing.T) {
	session := &Session{UserID: "user-1", Email: "seneca@example.com", Token: "jwt"}

	ctx := ContextWithSession(context.Background(), session)
	assert.Same(t, session, SessionFromContext(ctx))
}

func TestSessionFromContext_AnonymousIsNil(t *testing.T) {
	assert.Nil(t, SessionFromContext(context.Background()))
	assert.Nil(t, SessionFromContext(nil)) //nolint:staticcheck // nil context is the documented anonymous case
}
