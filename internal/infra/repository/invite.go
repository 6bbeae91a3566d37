package repository

import (
	"context"

	"invite-role-bridge/internal/domain/invite"
	"invite-role-bridge/internal/infra"
	sqlc "invite-role-bridge/internal/infra/sqlc/generated"
	"invite-role-bridge/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type InviteQueries interface {
	CreateInvite(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateInviteParams) error
	FindInviteByCodeForUpdate(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Invites, error)
	FindLatestPendingInviteByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Invites, error)
	FindAwaitingVerificationByMember(ctx context.Context, db sqlc.DBTX, memberID pgtype.Text) (sqlc.Invites, error)
	UpdateInviteState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateInviteStateParams) (int64, error)
	UpdateInvitePrompt(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateInvitePromptParams) (int64, error)
}

type InviteRepository struct {
	queries InviteQueries
	db      sqlc.DBTX
}

func NewInviteRepository(queries InviteQueries, db sqlc.DBTX) *InviteRepository {
	return &InviteRepository{
		queries: queries,
		db:      db,
	}
}

const pendingEmailIndex = "uq_invites_pending_email"

func (r *InviteRepository) Create(ctx context.Context, inv *invite.Invite) error {
	params := sqlc.CreateInviteParams{
		ID:        inv.ID(),
		Code:      inv.Code().Value(),
		RoleID:    inv.RoleID().Value(),
		Email:     inv.Email().Value(),
		Status:    inv.Status().String(),
		CreatedAt: pgconv.TimeToPgtype(inv.CreatedAt()),
		ExpiresAt: pgconv.TimePtrToPgtype(inv.ExpiresAt()),
		UpdatedAt: pgconv.TimeToPgtype(inv.UpdatedAt()),
	}

	if err := r.queries.CreateInvite(ctx, r.db, params); err != nil {
		if pgconv.UniqueViolationOn(err, pendingEmailIndex) {
			return infra.WrapRepoErr("email already holds a pending invite", err, infra.KindConflict)
		}
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("invite code already recorded", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create invite", err)
	}
	return nil
}

func (r *InviteRepository) FindByCodeForUpdate(ctx context.Context, code string) (*invite.Invite, error) {
	row, err := r.queries.FindInviteByCodeForUpdate(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("invite not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find invite by code", err)
	}
	return ToDomain(row)
}

func (r *InviteRepository) FindPendingByEmailForUpdate(ctx context.Context, email invite.Email) (*invite.Invite, error) {
	row, err := r.queries.FindLatestPendingInviteByEmail(ctx, r.db, email.Value())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no pending invite for email", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pending invite by email", err)
	}
	return ToDomain(row)
}

func (r *InviteRepository) FindAwaitingVerificationForUpdate(ctx context.Context, memberID string) (*invite.Invite, error) {
	row, err := r.queries.FindAwaitingVerificationByMember(ctx, r.db, pgconv.TextToPgtype(memberID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no invite awaiting verification", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find invite awaiting verification", err)
	}
	return ToDomain(row)
}

func (r *InviteRepository) UpdateState(ctx context.Context, inv *invite.Invite, from invite.Status) error {
	params := sqlc.UpdateInviteStateParams{
		Status:         inv.Status().String(),
		MemberID:       pgconv.TextToPgtype(inv.MemberID()),
		UsedAt:         pgconv.TimePtrToPgtype(inv.UsedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(inv.UpdatedAt()),
		ID:             inv.ID(),
		ExpectedStatus: from.String(),
	}

	affected, err := r.queries.UpdateInviteState(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update invite state", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("invite state changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

func (r *InviteRepository) UpdatePrompt(ctx context.Context, inv *invite.Invite) error {
	prompt := inv.Prompt()
	params := sqlc.UpdateInvitePromptParams{
		ID:            inv.ID(),
		RuleChannelID: pgconv.TextToPgtype(prompt.ChannelID),
		RuleMessageID: pgconv.TextToPgtype(prompt.MessageID),
		UpdatedAt:     pgconv.TimeToPgtype(inv.UpdatedAt()),
	}

	affected, err := r.queries.UpdateInvitePrompt(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update verification prompt", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("invite not found", nil, infra.KindNotFound)
	}
	return nil
}

// ToDomain rebuilds the entity from a stored row; a row that no longer validates is a DB failure.
func ToDomain(row sqlc.Invites) (*invite.Invite, error) {
	code, err := invite.NewCode(row.Code)
	if err != nil {
		return nil, infra.WrapRepoErr("stored invite has invalid code", err)
	}
	roleID, err := invite.NewRoleID(row.RoleID)
	if err != nil {
		return nil, infra.WrapRepoErr("stored invite has invalid role", err)
	}
	email, err := invite.NewEmail(row.Email)
	if err != nil {
		return nil, infra.WrapRepoErr("stored invite has invalid email", err)
	}
	status, err := invite.ParseStatus(row.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("stored invite has invalid status", err)
	}

	prompt := invite.VerificationPrompt{
		ChannelID: pgconv.TextFromPgtype(row.RuleChannelID),
		MessageID: pgconv.TextFromPgtype(row.RuleMessageID),
	}

	return invite.ReconstructInvite(
		row.ID,
		code,
		roleID,
		email,
		status,
		pgconv.TextFromPgtype(row.MemberID),
		prompt,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimePtrFromPgtype(row.ExpiresAt),
		pgconv.TimePtrFromPgtype(row.UsedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
