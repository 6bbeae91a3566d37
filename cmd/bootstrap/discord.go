package bootstrap

import (
	"log/slog"

	"invite-role-bridge/internal/infra/discord"
	"invite-role-bridge/internal/pkg/config"
	"invite-role-bridge/internal/pkg/retry"
	"invite-role-bridge/internal/usecase/commands"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/fx"
)

var DiscordModule = fx.Module("discord",
	fx.Provide(
		NewDiscordSession,
		NewDiscordAPI,
		NewRetryPolicy,
		fx.Annotate(
			discord.NewInviteLister,
			fx.As(new(commands.InviteLister)),
		),
		fx.Annotate(
			NewRoleGranter,
			fx.As(new(commands.RoleGranter)),
		),
		fx.Annotate(
			discord.NewInviteCreator,
			fx.As(new(commands.InviteCreator)),
		),
		fx.Annotate(
			NewPrompter,
			fx.As(new(commands.VerificationPrompter)),
		),
	),
)

func NewDiscordSession(cfg config.Config) (*discordgo.Session, error) {
	return discord.NewSession(cfg.Discord)
}

func NewDiscordAPI(s *discordgo.Session) discord.API {
	return s
}

func NewRetryPolicy(cfg config.Config) retry.Policy {
	return retry.NewPolicy(cfg.Retry)
}

func NewRoleGranter(api discord.API, s *discordgo.Session, policy retry.Policy, logger *slog.Logger) *discord.RoleGranter {
	return discord.NewRoleGranter(api, discord.BotUserID(s), policy, logger)
}

func NewPrompter(api discord.API, cfg config.Config) *discord.Prompter {
	return discord.NewPrompter(api, cfg.Discord.VerifyButtonID)
}
