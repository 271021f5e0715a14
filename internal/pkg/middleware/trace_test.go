package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTraceRouter() (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	var seen string
	r := gin.New()
	r.Use(TraceMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		seen = TraceID(c)
		c.Status(http.StatusOK)
	})
	return r, &seen
}

func TestTraceMiddleware(t *testing.T) {
	t.Run("Upstream trace ID is propagated", func(t *testing.T) {
		r, seen := newTraceRouter()

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(TraceHeader, "upstream-trace-id")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "upstream-trace-id", w.Header().Get(TraceHeader))
		assert.Equal(t, "upstream-trace-id", *seen)
	})

	t.Run("Missing trace ID gets generated", func(t *testing.T) {
		r, seen := newTraceRouter()

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		got := w.Header().Get(TraceHeader)
		_, err := uuid.Parse(got)
		assert.NoError(t, err)
		assert.Equal(t, got, *seen)
	})
}
