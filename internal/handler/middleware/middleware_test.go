//go:build unit

package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"invite-role-bridge/internal/handler/httperr"
	"invite-role-bridge/internal/handler/middleware"
	"invite-role-bridge/internal/pkg/config"
	"invite-role-bridge/internal/pkg/errs"
	"invite-role-bridge/internal/pkg/jwt"
	"invite-role-bridge/internal/usecase"
	"invite-role-bridge/tests/common/authtest"
	"invite-role-bridge/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()
	tokens := authtest.NewJWTHelper(cfg.JWT)
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwt.NewService(cfg.JWT.Secret, time.Hour)))

	router := gin.New()
	router.GET("/whoami", auth.RequireAuth(), func(c *gin.Context) {
		caller, ok := middleware.GetCaller(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"caller": caller})
	})

	t.Run("valid service token exposes the caller", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil, tokens.ServiceToken(t, "storefront"))

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "storefront", body["caller"])
	})

	testCases := []struct {
		name        string
		headers     map[string]string
		token       func(t *testing.T) string
		expectedMsg string
	}{
		{
			name:        "missing header",
			token:       func(*testing.T) string { return "" },
			expectedMsg: "Access token required",
		},
		{
			name:        "wrong scheme",
			headers:     map[string]string{"Authorization": "Basic dXNlcjpwYXNz"},
			token:       func(*testing.T) string { return "" },
			expectedMsg: "Access token required",
		},
		{
			name:        "expired token",
			token:       func(t *testing.T) string { return tokens.ExpiredToken(t, "storefront") },
			expectedMsg: "Invalid or expired token",
		},
		{
			name:        "token signed with another secret",
			token:       func(t *testing.T) string { return tokens.ForeignToken(t, "storefront") },
			expectedMsg: "Invalid or expired token",
		},
		{
			name:        "garbage token",
			token:       func(*testing.T) string { return "not-a-jwt" },
			expectedMsg: "Invalid or expired token",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/whoami", nil, tc.token(t), tc.headers)
			httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, tc.expectedMsg)
		})
	}
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.GET("/public", func(c *gin.Context) {
		resp := httperr.NewResponse(http.StatusConflict, "already claimed", nil)
		_ = c.Error(&gin.Error{Err: errs.New("conflict"), Type: gin.ErrorTypePublic, Meta: resp})
		c.Abort()
	})
	router.GET("/private", func(c *gin.Context) {
		_ = c.Error(errs.New("db down"))
		c.Abort()
	})
	router.GET("/written", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusNotFound, errs.New("missing"), "Invite not found", nil)
	})

	t.Run("renders the public error left unwritten", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/public", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "already claimed")
	})

	t.Run("private errors become a generic 500", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/private", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
		assert.NotContains(t, rec.Body.String(), "db down")
	})

	t.Run("does not overwrite a written body", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/written", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Invite not found")
	})
}

func TestCustomRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.CustomRecovery(discardLogger()))
	router.GET("/panic", func(*gin.Context) { panic("nil role") })

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/panic", nil, "")

	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}

func TestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.LoggingMiddleware(discardLogger()))
	router.GET("/id", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	t.Run("propagates the caller's request id", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/id", nil, "", map[string]string{"X-Request-ID": "req-42"})

		assert.Equal(t, "req-42", rec.Body.String())
		assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))
	})

	t.Run("generates one when absent", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/id", nil, "")

		assert.NotEmpty(t, rec.Body.String())
		assert.Equal(t, rec.Body.String(), rec.Header().Get("X-Request-ID"))
	})
}
