package commands

import (
	"context"
	"log/slog"

	"invite-role-bridge/internal/domain/invite"
	"invite-role-bridge/internal/infra"
	"invite-role-bridge/internal/pkg/clock"
	"invite-role-bridge/internal/pkg/config"
	"invite-role-bridge/internal/pkg/errs"
	"invite-role-bridge/internal/usecase/shared"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Ledger state conflicts and privilege failures. Reported to the caller, never fatal.
var (
	ErrNoSuchPendingInvite      = errs.New("no pending invite for code")
	ErrNoPendingVerification    = errs.New("no invite awaiting verification for member")
	ErrRoleNotFound             = errs.New("role not found in guild")
	ErrInsufficientBotPrivilege = errs.New("bot's highest role is not above the role to grant")
	ErrUnsupportedEvent         = errs.New("event not accepted by transition")
	// the ledger only holds entries for the configured guild
	ErrUnknownGuild = errs.New("guild is not served by this ledger")
)

type EntitlementGate interface {
	// Transition moves the entry for code forward on event. JOINED claims it for memberID.
	Transition(ctx context.Context, code string, event invite.Event, guildID, memberID string) error
	// ConfirmAndGrant grants the role of the member's entry awaiting verification and closes it.
	ConfirmAndGrant(ctx context.Context, guildID, memberID string) (roleID string, err error)
}

type entitlementGateImpl struct {
	uow            shared.UnitOfWork
	roles          RoleGranter
	prompter       VerificationPrompter
	clock          clock.Clock
	guildID        string
	rulesChannelID string
	logger         *slog.Logger
	tracer         trace.Tracer
}

func NewEntitlementGate(uow shared.UnitOfWork, roles RoleGranter, prompter VerificationPrompter, clk clock.Clock, cfg config.Config, logger *slog.Logger) EntitlementGate {
	return &entitlementGateImpl{
		uow:            uow,
		roles:          roles,
		prompter:       prompter,
		clock:          clk,
		guildID:        cfg.Discord.GuildID,
		rulesChannelID: cfg.Discord.RulesChannelID,
		logger:         logger,
		tracer:         otel.Tracer("invite-role-bridge/gate"),
	}
}

func (g *entitlementGateImpl) Transition(ctx context.Context, code string, event invite.Event, guildID, memberID string) (err error) {
	ctx, span := g.tracer.Start(ctx, "EntitlementGate.Transition", trace.WithAttributes(
		attribute.String("invite.code", code),
		attribute.String("invite.event", string(event)),
		attribute.String("discord.guild_id", guildID),
	))
	defer func() { endSpan(span, err) }()

	if guildID != g.guildID {
		return errs.Mark(errs.Wrapf(ErrUnknownGuild, "transition for guild %s", guildID), ErrNoSuchPendingInvite)
	}

	switch event {
	case invite.EventJoined:
		return g.claim(ctx, code, memberID)
	case invite.EventExpired:
		return g.expire(ctx, code)
	default:
		return ErrUnsupportedEvent
	}
}

func (g *entitlementGateImpl) claim(ctx context.Context, code, memberID string) error {
	var (
		claimed *invite.Invite
		lapsed  bool
	)

	err := g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		claimed, lapsed = nil, false

		inv, err := tx.Invites().FindByCodeForUpdate(ctx, code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrNoSuchPendingInvite
			}
			return err
		}

		now := g.clock.Now()
		if inv.Status() == invite.StatusPending && inv.IsExpired(now) {
			if err := inv.Expire(now); err != nil {
				return err
			}
			lapsed = true
			return tx.Invites().UpdateState(ctx, inv, invite.StatusPending)
		}

		if err := inv.MarkJoined(memberID, now); err != nil {
			if errs.Is(err, invite.ErrNotPending) {
				return errs.Mark(errs.Wrapf(err, "invite %s is %s", code, inv.Status()), ErrNoSuchPendingInvite)
			}
			return err
		}
		if err := tx.Invites().UpdateState(ctx, inv, invite.StatusPending); err != nil {
			return err
		}
		claimed = inv
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return errs.Mark(err, ErrNoSuchPendingInvite)
		}
		return err
	}
	if lapsed {
		g.logger.Info("invite expired before it was claimed", "invite_code", code, "member_id", memberID)
		return errs.Mark(invite.ErrExpired, ErrNoSuchPendingInvite)
	}

	g.logger.Info("invite claimed, awaiting verification",
		"invite_code", code,
		"member_id", memberID,
		"role_id", claimed.RoleID().Value())

	g.attachPrompt(ctx, claimed, memberID)
	return nil
}

// attachPrompt runs after the claim committed; a failure leaves the entry claimed
// and the member can still be confirmed through the support endpoint.
func (g *entitlementGateImpl) attachPrompt(ctx context.Context, inv *invite.Invite, memberID string) {
	prompt, err := g.prompter.PostPrompt(ctx, g.rulesChannelID, memberID)
	if err != nil {
		g.logger.Warn("failed to post verification prompt",
			"invite_code", inv.Code().Value(),
			"member_id", memberID,
			"error", err.Error())
		return
	}

	inv.AttachPrompt(prompt, g.clock.Now())
	err = g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Invites().UpdatePrompt(ctx, inv)
	})
	if err != nil {
		g.logger.Warn("failed to record verification prompt",
			"invite_code", inv.Code().Value(),
			"message_id", prompt.MessageID,
			"error", err.Error())
	}
}

func (g *entitlementGateImpl) expire(ctx context.Context, code string) error {
	err := g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inv, err := tx.Invites().FindByCodeForUpdate(ctx, code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrNoSuchPendingInvite
			}
			return err
		}
		if err := inv.Expire(g.clock.Now()); err != nil {
			return errs.Mark(err, ErrNoSuchPendingInvite)
		}
		return tx.Invites().UpdateState(ctx, inv, invite.StatusPending)
	})
	if infra.IsKind(err, infra.KindConflict) {
		return errs.Mark(err, ErrNoSuchPendingInvite)
	}
	return err
}

func (g *entitlementGateImpl) ConfirmAndGrant(ctx context.Context, guildID, memberID string) (_ string, err error) {
	ctx, span := g.tracer.Start(ctx, "EntitlementGate.ConfirmAndGrant", trace.WithAttributes(
		attribute.String("discord.guild_id", guildID),
		attribute.String("discord.member_id", memberID),
	))
	defer func() { endSpan(span, err) }()

	if guildID != g.guildID {
		return "", errs.Wrapf(ErrUnknownGuild, "confirm for guild %s", guildID)
	}

	var pending *invite.Invite
	err = g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inv, err := tx.Invites().FindAwaitingVerificationForUpdate(ctx, memberID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrNoPendingVerification
			}
			return err
		}
		pending = inv
		return nil
	})
	if err != nil {
		return "", err
	}

	roleID := pending.RoleID().Value()
	span.SetAttributes(attribute.String("discord.role_id", roleID))

	// remote calls stay outside the ledger transaction
	role, err := g.roles.FindRole(ctx, guildID, roleID)
	if err != nil {
		return "", err
	}
	if role == nil {
		return "", ErrRoleNotFound
	}
	top, err := g.roles.TopRolePosition(ctx, guildID)
	if err != nil {
		return "", err
	}
	if err := invite.CheckGrantable(role.Position, top); err != nil {
		g.logger.Warn("role sits at or above the bot's highest role",
			"role_id", roleID,
			"role_position", role.Position,
			"bot_top_position", top)
		return "", errs.Mark(err, ErrInsufficientBotPrivilege)
	}

	if err := g.roles.GrantRole(ctx, guildID, memberID, roleID); err != nil {
		return "", err
	}

	err = g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inv, err := tx.Invites().FindByCodeForUpdate(ctx, pending.Code().Value())
		if err != nil {
			return err
		}
		if err := inv.Confirm(memberID, g.clock.Now()); err != nil {
			return errs.Mark(err, ErrNoPendingVerification)
		}
		return tx.Invites().UpdateState(ctx, inv, invite.StatusPendingVerification)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return "", errs.Mark(err, ErrNoPendingVerification)
		}
		return "", err
	}

	g.logger.Info("role granted",
		"invite_code", pending.Code().Value(),
		"member_id", memberID,
		"role_id", roleID)
	return roleID, nil
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
