package discord

import (
	"context"
	"log/slog"
	"time"

	"invite-role-bridge/internal/domain/snapshot"
	"invite-role-bridge/internal/pkg/errs"
	"invite-role-bridge/internal/pkg/retry"

	"github.com/bwmarrin/discordgo"
)

// InviteLister fetches a guild's invites and their use counts.
type InviteLister struct {
	api    API
	policy retry.Policy
	logger *slog.Logger
}

// NewInviteLister retries only transient failures; permission and other rejections return at once.
func NewInviteLister(api API, policy retry.Policy, logger *slog.Logger) *InviteLister {
	return &InviteLister{
		api:    api,
		policy: policy.WithRetryable(isTransient),
		logger: logger,
	}
}

func (l *InviteLister) ListInvites(ctx context.Context, guildID string) (snapshot.Snapshot, error) {
	var invites []*discordgo.Invite
	err := l.policy.Do(ctx, func(ctx context.Context) error {
		var err error
		invites, err = l.api.GuildInvites(guildID, discordgo.WithContext(ctx))
		return classify(err, "list guild invites")
	}, func(err error, wait time.Duration) {
		l.logger.Warn("invite list unavailable, retrying",
			"guild_id", guildID,
			"wait", wait,
			"error", err.Error())
	})
	if err != nil {
		return snapshot.Empty(), err
	}
	return toSnapshot(invites)
}

func toSnapshot(invites []*discordgo.Invite) (snapshot.Snapshot, error) {
	entries := make(map[string]int, len(invites))
	for _, inv := range invites {
		if inv == nil || inv.Code == "" {
			continue
		}
		entries[inv.Code] = inv.Uses
	}
	snap, err := snapshot.New(entries)
	if err != nil {
		return snapshot.Empty(), errs.Mark(errs.Wrap(err, "invalid invite list"), errs.ErrRemoteRejected)
	}
	return snap, nil
}
