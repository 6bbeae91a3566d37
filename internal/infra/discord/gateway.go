package discord

import (
	"context"
	"log/slog"
	"time"

	"invite-role-bridge/internal/pkg/errs"
	"invite-role-bridge/internal/usecase/commands"

	"github.com/bwmarrin/discordgo"
)

const (
	primeTimeout       = 30 * time.Second
	interactionTimeout = 10 * time.Second
)

// JoinSink receives the gateway's membership and invite notifications.
type JoinSink interface {
	Submit(ev commands.JoinEvent)
	Prime(ctx context.Context, guildID string) error
	InviteCreated(guildID, code string, uses int)
	InviteDeleted(guildID, code string)
}

type interactionResponder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

// Gateway routes gateway events into the reconciler and the gate.
type Gateway struct {
	session   *discordgo.Session
	responder interactionResponder
	sink      JoinSink
	gate      commands.EntitlementGate
	buttonID  string
	guildID   string
	logger    *slog.Logger
	removers  []func()
}

func NewGateway(session *discordgo.Session, sink JoinSink, gate commands.EntitlementGate, buttonID, guildID string, logger *slog.Logger) *Gateway {
	return &Gateway{
		session:   session,
		responder: session,
		sink:      sink,
		gate:      gate,
		buttonID:  buttonID,
		guildID:   guildID,
		logger:    logger,
	}
}

// Open registers the handlers and connects to the gateway.
func (g *Gateway) Open() error {
	g.removers = append(g.removers,
		g.session.AddHandler(g.onReady),
		g.session.AddHandler(g.onMemberAdd),
		g.session.AddHandler(g.onInviteCreate),
		g.session.AddHandler(g.onInviteDelete),
		g.session.AddHandler(g.onInteraction),
	)
	if err := g.session.Open(); err != nil {
		return classify(err, "open discord gateway")
	}
	g.logger.Info("discord gateway connected")
	return nil
}

func (g *Gateway) Close() error {
	for _, remove := range g.removers {
		remove()
	}
	g.removers = nil
	return g.session.Close()
}

// onReady primes every guild in the READY payload; a reconnect re-primes.
func (g *Gateway) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	guilds := make([]string, 0, len(r.Guilds))
	for _, guild := range r.Guilds {
		guilds = append(guilds, guild.ID)
	}
	if len(guilds) == 0 && g.guildID != "" {
		guilds = append(guilds, g.guildID)
	}
	g.logger.Info("discord gateway ready", "guilds", len(guilds))

	for _, guildID := range guilds {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), primeTimeout)
			defer cancel()
			// failures are logged by Prime; the next reconciliation fetch repairs the snapshot
			_ = g.sink.Prime(ctx, guildID)
		}()
	}
}

func (g *Gateway) onMemberAdd(_ *discordgo.Session, m *discordgo.GuildMemberAdd) {
	if m.Member == nil || m.User == nil {
		return
	}
	if m.User.Bot {
		g.logger.Debug("ignoring bot join", "guild_id", m.GuildID, "member_id", m.User.ID)
		return
	}
	g.sink.Submit(commands.JoinEvent{
		GuildID:  m.GuildID,
		MemberID: m.User.ID,
		JoinedAt: m.JoinedAt,
	})
}

func (g *Gateway) onInviteCreate(_ *discordgo.Session, ic *discordgo.InviteCreate) {
	if ic.Invite == nil {
		return
	}
	g.sink.InviteCreated(ic.GuildID, ic.Code, ic.Uses)
}

func (g *Gateway) onInviteDelete(_ *discordgo.Session, id *discordgo.InviteDelete) {
	g.sink.InviteDeleted(id.GuildID, id.Code)
}

func (g *Gateway) onInteraction(_ *discordgo.Session, ic *discordgo.InteractionCreate) {
	if ic.Interaction == nil || ic.Type != discordgo.InteractionMessageComponent {
		return
	}
	if ic.MessageComponentData().CustomID != g.buttonID {
		return
	}
	if ic.Member == nil || ic.Member.User == nil {
		return
	}
	memberID := ic.Member.User.ID

	ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
	defer cancel()

	_, err := g.gate.ConfirmAndGrant(ctx, ic.GuildID, memberID)
	reply := verificationReply(err)
	if err != nil {
		g.logger.Warn("verification failed",
			"guild_id", ic.GuildID,
			"member_id", memberID,
			"error", err.Error())
	}

	err = g.responder.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: reply,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		g.logger.Warn("failed to answer verification interaction",
			"member_id", memberID,
			"error", err.Error())
	}
}

func verificationReply(err error) string {
	switch {
	case err == nil:
		return "Thanks for accepting the rules, your role has been granted."
	case errs.Is(err, commands.ErrNoPendingVerification):
		return "We could not find an invite waiting for verification for you. Please contact support."
	case errs.Is(err, commands.ErrRoleNotFound), errs.Is(err, commands.ErrInsufficientBotPrivilege):
		return "Your role could not be granted automatically. A moderator has been notified."
	default:
		return "Something went wrong while granting your role. Please try again in a moment."
	}
}
