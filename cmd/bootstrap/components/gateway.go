package components

import (
	"context"
	"log/slog"

	"invite-role-bridge/internal/infra/discord"
	"invite-role-bridge/internal/pkg/config"
	"invite-role-bridge/internal/usecase/commands"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(NewGateway),
	fx.Invoke(func(*discord.Gateway) {}),
)

// NewGateway connects on start. On stop it disconnects first so no new joins
// arrive, then drains the reconciliations still in flight.
func NewGateway(lc fx.Lifecycle, session *discordgo.Session, reconciler *commands.JoinReconciler, gate commands.EntitlementGate, cfg config.Config, logger *slog.Logger) *discord.Gateway {
	gw := discord.NewGateway(session, reconciler, gate, cfg.Discord.VerifyButtonID, cfg.Discord.GuildID, logger)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return gw.Open()
		},
		OnStop: func(ctx context.Context) error {
			if err := gw.Close(); err != nil {
				logger.Warn("failed to close discord gateway", "error", err.Error())
			}

			drainCtx, cancel := context.WithTimeout(ctx, cfg.Reconciler.DrainTimeout)
			defer cancel()
			if err := reconciler.Shutdown(drainCtx); err != nil {
				logger.Warn("reconciliations still in flight at shutdown were cancelled", "error", err.Error())
			}
			return nil
		},
	})
	return gw
}
