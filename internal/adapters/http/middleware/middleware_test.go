package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// TestRequestIDMiddleware tests the RequestID middleware.
func TestRequestIDMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		existingHeaderID string
		expectGenerated  bool
	}{
		{
			name:             "generates UUID when no header present",
			existingHeaderID: "",
			expectGenerated:  true,
		},
		{
			name:             "passes through existing header",
			existingHeaderID: "existing-req-123",
			expectGenerated:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var capturedID string
			var capturedContextID string

			router := gin.New()
			router.Use(RequestID())
			router.GET("/quotes", func(c *gin.Context) {
				capturedID = GetRequestID(c)
				capturedContextID = RequestIDFromContext(c.Request.Context())
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/quotes", nil)
			if tt.existingHeaderID != "" {
				req.Header.Set(HeaderRequestID, tt.existingHeaderID)
			}
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)

			if tt.expectGenerated {
				assert.NotEmpty(t, capturedID)
			} else {
				assert.Equal(t, tt.existingHeaderID, capturedID)
			}

			assert.Equal(t, capturedID, capturedContextID, "gin and request context must agree")
			assert.Equal(t, capturedID, w.Header().Get(HeaderRequestID), "id must echo in the response")
		})
	}
}

// TestCorrelationIDMiddleware tests the CorrelationID middleware.
func TestCorrelationIDMiddleware(t *testing.T) {
	t.Parallel()

	var capturedID string

	router := gin.New()
	router.Use(CorrelationID())
	router.GET("/quotes", func(c *gin.Context) {
		capturedID = CorrelationIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/quotes", nil)
	req.Header.Set(HeaderCorrelationID, "corr-42")
	router.ServeHTTP(w, req)

	assert.Equal(t, "corr-42", capturedID)
	assert.Equal(t, "corr-42", w.Header().Get(HeaderCorrelationID))
}

// TestSimpleTimeout verifies the deadline reaches the handler context.
func TestSimpleTimeout(t *testing.T) {
	t.Parallel()

	var deadlineSet bool

	router := gin.New()
	router.Use(SimpleTimeout(50 * time.Millisecond))
	router.GET("/quotes", func(c *gin.Context) {
		_, deadlineSet = c.Request.Context().Deadline()
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/quotes", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, deadlineSet, "handler must observe the deadline")
}

// TestRecovery verifies panics become 500 responses instead of crashes.
func TestRecovery(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := gin.New()
	router.Use(Recovery(logger))
	router.GET("/quotes", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/quotes", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom", "panic details must not leak to callers")
}

// TestLogging verifies requests pass through the logging middleware intact.
func TestLogging(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := gin.New()
	router.Use(RequestID(), Logging(logger))
	router.GET("/quotes", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/quotes", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}
