//go:build unit

package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"invite-role-bridge/internal/handler"
	"invite-role-bridge/internal/handler/api"
	"invite-role-bridge/internal/handler/middleware"
	"invite-role-bridge/internal/pkg/config"
	"invite-role-bridge/internal/pkg/jwt"
	"invite-role-bridge/internal/usecase"
	"invite-role-bridge/internal/usecase/queries"
	"invite-role-bridge/tests/common/authtest"
	"invite-role-bridge/tests/common/httptest"
	commandsmock "invite-role-bridge/tests/mock/commands"
	queriesmock "invite-role-bridge/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()
	ctrl := gomock.NewController(t)
	cmds := commandsmock.NewMockInviteCommands(ctrl)
	q := queriesmock.NewMockInviteQueries(ctrl)
	gate := commandsmock.NewMockEntitlementGate(ctrl)

	engine := gin.New()
	handler.NewRouter(engine, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)),
		handler.NewHandlers(api.NewInviteHandler(cmds, q), api.NewVerificationHandler(gate), api.NewSnapshotHandler(q)),
		middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwt.NewService(cfg.JWT.Secret, time.Hour))))

	token := authtest.NewJWTHelper(cfg.JWT).ServiceToken(t, "storefront")

	t.Run("health needs no token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/health", nil, "")

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "ok", body["status"])
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("api routes require a token", func(t *testing.T) {
		for _, r := range []struct{ method, path string }{
			{http.MethodPost, "/api/invites"},
			{http.MethodGet, "/api/invites/aB3dE9"},
			{http.MethodPost, "/api/verifications/1100000000000000001/1400000000000000001/confirm"},
			{http.MethodGet, "/api/guilds/1100000000000000001/snapshot"},
		} {
			rec := httptest.PerformRequest(t, engine, r.method, r.path, nil, "")
			httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
		}
	})

	t.Run("snapshot route reaches its handler", func(t *testing.T) {
		q.EXPECT().GuildSnapshot(gomock.Any(), "1100000000000000001").
			Return(&queries.SnapshotView{GuildID: "1100000000000000001", Invites: []queries.InviteUses{}}, nil)

		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/api/guilds/1100000000000000001/snapshot", nil, token)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("verification route reaches its handler", func(t *testing.T) {
		gate.EXPECT().ConfirmAndGrant(gomock.Any(), "1100000000000000001", "1400000000000000001").
			Return("1300000000000000002", nil)

		rec := httptest.PerformRequest(t, engine, http.MethodPost,
			"/api/verifications/1100000000000000001/1400000000000000001/confirm", nil, token)

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "1300000000000000002", body["roleId"])
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/api/reviews", nil, token)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
