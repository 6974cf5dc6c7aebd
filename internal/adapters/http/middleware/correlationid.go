package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/quotevault/quotevault/internal/platform/logging"
)

const (
	// HeaderCorrelationID is the correlation ID header. Where the
	// request ID names one request, the correlation ID follows a whole
	// transaction across services, PostgREST calls included.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyCorrelationID is the gin context key for the correlation ID.
	ContextKeyCorrelationID = "correlation_id"
)

// CorrelationID propagates X-Correlation-ID from upstream, minting a
// UUID when this service is the transaction origin. The ID is echoed on
// the response and added to the context logger.
func CorrelationID() gin.HandlerFunc {
	return createIDMiddleware(idMiddlewareConfig{
		headerName:      HeaderCorrelationID,
		contextKey:      ContextKeyCorrelationID,
		contextEnricher: logging.WithCorrelationID,
	})
}

// GetCorrelationID reads the correlation ID from the gin context, or "".
func GetCorrelationID(c *gin.Context) string {
	return getIDFromContext(c, ContextKeyCorrelationID)
}
