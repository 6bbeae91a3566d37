package commands

import (
	"context"
	"log/slog"
	"time"

	"invite-role-bridge/internal/domain/invite"
	"invite-role-bridge/internal/infra"
	"invite-role-bridge/internal/pkg/clock"
	"invite-role-bridge/internal/pkg/config"
	"invite-role-bridge/internal/pkg/errs"
	"invite-role-bridge/internal/usecase/shared"
)

var ErrInviteCodeTaken = errs.New("remote platform returned an invite code already in the ledger")

type IssueInviteRequest struct {
	Email  string
	RoleID string
}

type IssuedInvite struct {
	Code      string
	URL       string
	ExpiresAt *time.Time
	// an unexpired pending invite for the same email was handed out again
	Reused     bool
	EmailSent  bool
	EmailError string
}

type InviteCommands interface {
	IssueInvite(ctx context.Context, req IssueInviteRequest) (*IssuedInvite, error)
}

type inviteUseCaseImpl struct {
	uow       shared.UnitOfWork
	creator   InviteCreator
	mailer    Mailer
	snapshots SnapshotStore
	clock     clock.Clock
	discord   config.DiscordConfig
	ttl       time.Duration
	logger    *slog.Logger
}

func NewInviteUseCase(uow shared.UnitOfWork, creator InviteCreator, mailer Mailer, snapshots SnapshotStore, clk clock.Clock, cfg config.Config, logger *slog.Logger) InviteCommands {
	return &inviteUseCaseImpl{
		uow:       uow,
		creator:   creator,
		mailer:    mailer,
		snapshots: snapshots,
		clock:     clk,
		discord:   cfg.Discord,
		ttl:       cfg.Invite.TTL,
		logger:    logger,
	}
}

func (uc *inviteUseCaseImpl) IssueInvite(ctx context.Context, req IssueInviteRequest) (*IssuedInvite, error) {
	email, err := invite.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}
	roleID, err := invite.NewRoleID(req.RoleID)
	if err != nil {
		return nil, err
	}

	reusable, err := uc.findReusable(ctx, email)
	if err != nil {
		return nil, err
	}

	issued, reused := reusable, reusable != nil
	if !reused {
		issued, reused, err = uc.create(ctx, email, roleID)
		if err != nil {
			return nil, err
		}
	}

	result := &IssuedInvite{
		Code:      issued.Code().Value(),
		URL:       uc.discord.InviteURL(issued.Code().Value()),
		ExpiresAt: issued.ExpiresAt(),
		Reused:    reused,
	}

	// the link is returned even when the mail cannot be delivered
	if err := uc.mailer.SendInvite(ctx, email, result.URL); err != nil {
		uc.logger.Warn("failed to mail invite", "invite_code", result.Code, "error", err.Error())
		result.EmailError = err.Error()
	} else {
		result.EmailSent = true
	}
	return result, nil
}

// findReusable returns the email's still-valid pending invite. A lapsed one is expired on the way.
func (uc *inviteUseCaseImpl) findReusable(ctx context.Context, email invite.Email) (*invite.Invite, error) {
	var reusable *invite.Invite
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reusable = nil

		inv, err := tx.Invites().FindPendingByEmailForUpdate(ctx, email)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return err
		}

		now := uc.clock.Now()
		if inv.IsReusable(now) {
			reusable = inv
			return nil
		}
		if err := inv.Expire(now); err != nil {
			return err
		}
		uc.logger.Info("pending invite lapsed, issuing a new one", "invite_code", inv.Code().Value())
		return tx.Invites().UpdateState(ctx, inv, invite.StatusPending)
	})
	if err != nil {
		return nil, err
	}
	return reusable, nil
}

// create opens and records a new invite. When a concurrent issue for the same
// email recorded first, its invite is returned instead with reused set.
func (uc *inviteUseCaseImpl) create(ctx context.Context, email invite.Email, roleID invite.RoleID) (*invite.Invite, bool, error) {
	reason := "invite for " + email.Value() + " (role " + roleID.Value() + ")"
	rawCode, uses, err := uc.creator.CreateInvite(ctx, uc.discord.WelcomeChannelID, uc.ttl, reason)
	if err != nil {
		return nil, false, err
	}

	code, err := invite.NewCode(rawCode)
	if err != nil {
		return nil, false, errs.Wrapf(err, "remote returned invite code %q", rawCode)
	}

	inv, err := invite.NewInvite(code, roleID, email, uc.clock.Now(), uc.ttl)
	if err != nil {
		return nil, false, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Invites().Create(ctx, inv)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, false, errs.Mark(err, ErrInviteCodeTaken)
		}
		if infra.IsKind(err, infra.KindConflict) {
			return uc.takeConcurrent(ctx, email, code, err)
		}
		return nil, false, err
	}

	// the gateway also reports the creation; patching here closes the gap until it arrives
	uc.snapshots.PatchCreate(uc.discord.GuildID, code.Value(), uses)

	uc.logger.Info("invite issued",
		"invite_code", code.Value(),
		"role_id", roleID.Value())
	return inv, false, nil
}

func (uc *inviteUseCaseImpl) takeConcurrent(ctx context.Context, email invite.Email, orphan invite.Code, conflict error) (*invite.Invite, bool, error) {
	winner, err := uc.findReusable(ctx, email)
	if err != nil {
		return nil, false, err
	}
	if winner == nil {
		return nil, false, conflict
	}
	// the remote invite just opened stays unrecorded and lapses on its own
	uc.logger.Warn("concurrent issue for the same email, handing out the recorded invite",
		"invite_code", winner.Code().Value(),
		"orphaned_invite_code", orphan.Value())
	return winner, true, nil
}
