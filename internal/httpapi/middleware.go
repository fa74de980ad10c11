package httpapi

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/alexanderramin/pathwise/internal/auth"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	claimsKey    = "jwt_claims"
	requestIDKey = "request_id"
	bearerPrefix = "Bearer "
)

// TokenValidator checks access tokens.
type TokenValidator interface {
	Validate(token string) (*auth.Claims, error)
}

// requireAuth rejects requests without a valid bearer token and stores the
// claims on the context.
func requireAuth(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "missing bearer token")
			return
		}
		claims, err := tokens.Validate(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, err.Error())
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// currentUserID returns the authenticated user's id. Only valid behind
// requireAuth.
func currentUserID(c *gin.Context) string {
	v, ok := c.Get(claimsKey)
	if !ok {
		return ""
	}
	return v.(*auth.Claims).UserID
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// requestLogger writes one structured line per request.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"request_id", c.GetString(requestIDKey),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.String())
		}
		ctx := c.Request.Context()
		switch {
		case status >= 500:
			logger.ErrorContext(ctx, "http_request", attrs...)
		case status >= 400:
			logger.WarnContext(ctx, "http_request", attrs...)
		default:
			logger.InfoContext(ctx, "http_request", attrs...)
		}
	}
}
