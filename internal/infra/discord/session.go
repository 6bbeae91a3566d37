// Package discord adapts discordgo to the reconciler and gate ports.
package discord

import (
	"context"
	"errors"
	"net"
	"net/http"

	"invite-role-bridge/internal/pkg/config"
	"invite-role-bridge/internal/pkg/errs"

	"github.com/bwmarrin/discordgo"
)

const intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers | discordgo.IntentsGuildInvites

// API is the slice of *discordgo.Session the adapters call.
type API interface {
	GuildInvites(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Invite, error)
	GuildRoles(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Role, error)
	GuildMember(guildID, userID string, options ...discordgo.RequestOption) (*discordgo.Member, error)
	GuildMemberRoleAdd(guildID, userID, roleID string, options ...discordgo.RequestOption) error
	ChannelInviteCreate(channelID string, i discordgo.Invite, options ...discordgo.RequestOption) (*discordgo.Invite, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

func NewSession(cfg config.DiscordConfig) (*discordgo.Session, error) {
	s, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create discord session")
	}
	s.Identify.Intents = intents
	return s, nil
}

// BotUserID reads the bot's own id from the session state filled by READY.
func BotUserID(s *discordgo.Session) func() string {
	return func() string {
		if s.State == nil || s.State.User == nil {
			return ""
		}
		return s.State.User.ID
	}
}

// classify marks a discordgo failure with the shared remote taxonomy.
func classify(err error, op string) error {
	if err == nil {
		return nil
	}
	wrapped := errs.Wrap(err, op)

	var restErr *discordgo.RESTError
	if errs.As(err, &restErr) && restErr.Response != nil {
		status := restErr.Response.StatusCode
		switch {
		case status == http.StatusForbidden || status == http.StatusUnauthorized:
			return errs.Mark(wrapped, errs.ErrPermissionDenied)
		case status == http.StatusTooManyRequests || status >= http.StatusInternalServerError:
			return errs.Mark(wrapped, errs.ErrTransientUnavailable)
		default:
			return errs.Mark(wrapped, errs.ErrRemoteRejected)
		}
	}

	var netErr net.Error
	if errs.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return errs.Mark(wrapped, errs.ErrTransientUnavailable)
	}
	return errs.Mark(wrapped, errs.ErrRemoteRejected)
}

func isTransient(err error) bool {
	return errs.Is(err, errs.ErrTransientUnavailable)
}
