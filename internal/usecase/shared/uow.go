package shared

import (
	"context"

	"invite-role-bridge/internal/domain/invite"
	sqlc "invite-role-bridge/internal/infra/sqlc/generated"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Invites() InviteRepository
	DB() sqlc.DBTX
}

// InviteRepository is bound to one transaction; the Find*ForUpdate methods lock the row.
type InviteRepository interface {
	Create(ctx context.Context, inv *invite.Invite) error
	FindByCodeForUpdate(ctx context.Context, code string) (*invite.Invite, error)
	FindPendingByEmailForUpdate(ctx context.Context, email invite.Email) (*invite.Invite, error)
	FindAwaitingVerificationForUpdate(ctx context.Context, memberID string) (*invite.Invite, error)
	// UpdateState persists status, member and used_at, provided the stored status still equals from.
	UpdateState(ctx context.Context, inv *invite.Invite, from invite.Status) error
	UpdatePrompt(ctx context.Context, inv *invite.Invite) error
}
