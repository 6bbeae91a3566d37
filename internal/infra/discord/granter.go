package discord

import (
	"context"
	"log/slog"
	"time"

	"invite-role-bridge/internal/pkg/errs"
	"invite-role-bridge/internal/pkg/retry"
	"invite-role-bridge/internal/usecase/commands"

	"github.com/bwmarrin/discordgo"
)

var ErrBotIdentityUnknown = errs.New("bot user id not known yet")

type RoleGranter struct {
	api    API
	botID  func() string
	policy retry.Policy
	logger *slog.Logger
}

func NewRoleGranter(api API, botID func() string, policy retry.Policy, logger *slog.Logger) *RoleGranter {
	return &RoleGranter{
		api:    api,
		botID:  botID,
		policy: policy.WithRetryable(isTransient),
		logger: logger,
	}
}

func (g *RoleGranter) FindRole(ctx context.Context, guildID, roleID string) (*commands.Role, error) {
	roles, err := g.api.GuildRoles(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, classify(err, "list guild roles")
	}
	for _, r := range roles {
		if r.ID == roleID {
			return &commands.Role{ID: r.ID, Name: r.Name, Position: r.Position}, nil
		}
	}
	return nil, nil
}

// TopRolePosition is the highest position among the bot's own roles; 0 when it holds none.
func (g *RoleGranter) TopRolePosition(ctx context.Context, guildID string) (int, error) {
	botID := g.botID()
	if botID == "" {
		return 0, errs.Mark(ErrBotIdentityUnknown, errs.ErrTransientUnavailable)
	}

	member, err := g.api.GuildMember(guildID, botID, discordgo.WithContext(ctx))
	if err != nil {
		return 0, classify(err, "load bot member")
	}
	roles, err := g.api.GuildRoles(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return 0, classify(err, "list guild roles")
	}

	held := make(map[string]struct{}, len(member.Roles))
	for _, id := range member.Roles {
		held[id] = struct{}{}
	}
	top := 0
	for _, r := range roles {
		if _, ok := held[r.ID]; ok && r.Position > top {
			top = r.Position
		}
	}
	return top, nil
}

func (g *RoleGranter) GrantRole(ctx context.Context, guildID, memberID, roleID string) error {
	return g.policy.Do(ctx, func(ctx context.Context) error {
		err := g.api.GuildMemberRoleAdd(guildID, memberID, roleID,
			discordgo.WithContext(ctx),
			discordgo.WithAuditLogReason("invite verified"))
		return classify(err, "add member role")
	}, func(err error, wait time.Duration) {
		g.logger.Warn("role grant failed, retrying",
			"guild_id", guildID,
			"member_id", memberID,
			"role_id", roleID,
			"wait", wait,
			"error", err.Error())
	})
}
