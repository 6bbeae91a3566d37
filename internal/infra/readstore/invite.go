package readstore

import (
	"context"

	"invite-role-bridge/internal/infra"
	sqlc "invite-role-bridge/internal/infra/sqlc/generated"
	"invite-role-bridge/internal/pkg/pgconv"
	"invite-role-bridge/internal/usecase/queries"
)

type InviteReadQueries interface {
	FindInviteByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Invites, error)
}

type InviteReadStore struct {
	queries InviteReadQueries
	db      sqlc.DBTX
}

func NewInviteReadStore(queries InviteReadQueries, db sqlc.DBTX) *InviteReadStore {
	return &InviteReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *InviteReadStore) FindByCode(ctx context.Context, code string) (*queries.InviteView, error) {
	row, err := r.queries.FindInviteByCode(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("invite not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find invite by code", err)
	}
	return toInviteView(row), nil
}

func toInviteView(row sqlc.Invites) *queries.InviteView {
	return &queries.InviteView{
		ID:            row.ID,
		Code:          row.Code,
		RoleID:        row.RoleID,
		Email:         row.Email,
		Status:        row.Status,
		MemberID:      pgconv.TextFromPgtype(row.MemberID),
		RuleChannelID: pgconv.TextFromPgtype(row.RuleChannelID),
		RuleMessageID: pgconv.TextFromPgtype(row.RuleMessageID),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		ExpiresAt:     pgconv.TimePtrFromPgtype(row.ExpiresAt),
		UsedAt:        pgconv.TimePtrFromPgtype(row.UsedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
