//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"invite-role-bridge/internal/domain/invite"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// InsertInvite writes inv as-is, bypassing the repository.
func InsertInvite(t *testing.T, db DBLike, inv *invite.Invite) {
	t.Helper()

	var memberID, channelID, messageID any
	if inv.MemberID() != "" {
		memberID = inv.MemberID()
	}
	if !inv.Prompt().IsZero() {
		channelID = inv.Prompt().ChannelID
		messageID = inv.Prompt().MessageID
	}

	_, err := db.Exec(context.Background(), `
		INSERT INTO invites (id, code, role_id, email, status, member_id, rule_channel_id, rule_message_id,
		                     created_at, expires_at, used_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		inv.ID(), inv.Code().Value(), inv.RoleID().Value(), inv.Email().Value(), inv.Status().String(),
		memberID, channelID, messageID, inv.CreatedAt(), inv.ExpiresAt(), inv.UsedAt(), inv.UpdatedAt())
	require.NoError(t, err)
}

type InviteRow struct {
	Status        string
	MemberID      *string
	RuleMessageID *string
	UsedAt        *time.Time
}

func LoadInvite(t *testing.T, db DBLike, code string) InviteRow {
	t.Helper()

	var row InviteRow
	err := db.QueryRow(context.Background(),
		"SELECT status, member_id, rule_message_id, used_at FROM invites WHERE code = $1", code).
		Scan(&row.Status, &row.MemberID, &row.RuleMessageID, &row.UsedAt)
	require.NoError(t, err)
	return row
}

func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE invites")
	return err
}
