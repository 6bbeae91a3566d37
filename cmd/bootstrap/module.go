package bootstrap

import (
	"invite-role-bridge/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	TelemetryModule,
	DBModule,
	JWTModule,
	DiscordModule,
	MailModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	components.GatewayModule,
)
