package discord

import (
	"context"
	"time"

	"invite-role-bridge/internal/pkg/errs"

	"github.com/bwmarrin/discordgo"
)

// maxInviteAge is the longest max_age the platform accepts.
const maxInviteAge = 7 * 24 * time.Hour

type InviteCreator struct {
	api API
}

func NewInviteCreator(api API) *InviteCreator {
	return &InviteCreator{api: api}
}

// CreateInvite creates a unique single-use invite. It is not retried: a retry
// after a lost response would leave an orphan invite behind.
func (c *InviteCreator) CreateInvite(ctx context.Context, channelID string, maxAge time.Duration, reason string) (string, int, error) {
	if maxAge > maxInviteAge {
		maxAge = maxInviteAge
	}
	inv, err := c.api.ChannelInviteCreate(channelID, discordgo.Invite{
		MaxAge:    int(maxAge.Seconds()),
		MaxUses:   1,
		Temporary: false,
		Unique:    true,
	}, discordgo.WithContext(ctx), discordgo.WithAuditLogReason(reason))
	if err != nil {
		return "", 0, classify(err, "create channel invite")
	}
	if inv == nil || inv.Code == "" {
		return "", 0, errs.Mark(errs.New("platform returned an invite without code"), errs.ErrRemoteRejected)
	}
	return inv.Code, inv.Uses, nil
}
