package components

import (
	"invite-role-bridge/internal/handler"
	"invite-role-bridge/internal/handler/api"
	"invite-role-bridge/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewInviteHandler,
		api.NewVerificationHandler,
		api.NewSnapshotHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
