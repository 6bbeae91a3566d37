package bootstrap

import (
	"log/slog"

	"invite-role-bridge/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logSettings),
)

// secrets are left out
func logSettings(cfg config.Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		"guild_id", cfg.Discord.GuildID,
		"welcome_channel_id", cfg.Discord.WelcomeChannelID,
		"rules_channel_id", cfg.Discord.RulesChannelID,
		"invite_ttl", cfg.Invite.TTL.String(),
		"max_concurrent_reconciliations", cfg.Reconciler.MaxConcurrent,
		"mail_enabled", cfg.Mail.FromEmail != "",
		"tracing_enabled", cfg.Telemetry.Endpoint != "")
}
