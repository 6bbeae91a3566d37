package commands

import (
	"context"
	"time"

	"invite-role-bridge/internal/domain/invite"
	"invite-role-bridge/internal/domain/snapshot"
	"invite-role-bridge/internal/infra/snapshotstore"
)

// Outbound ports. Adapters mark their failures with the errs remote sentinels
// (ErrTransientUnavailable, ErrPermissionDenied, ErrRemoteRejected).

type InviteLister interface {
	ListInvites(ctx context.Context, guildID string) (snapshot.Snapshot, error)
}

type SnapshotStore interface {
	Get(guildID string) snapshot.Snapshot
	Replace(guildID string, snap snapshot.Snapshot)
	PatchCreate(guildID, code string, uses int)
	PatchDelete(guildID, code string)
	Begin(guildID string) (snapshot.Snapshot, snapshotstore.Ticket)
	Commit(t snapshotstore.Ticket, fresh snapshot.Snapshot) int
	Abort(t snapshotstore.Ticket)
}

// Role is the part of a guild role the privilege check needs.
type Role struct {
	ID       string
	Name     string
	Position int
}

type RoleGranter interface {
	// FindRole returns nil without error when the guild has no such role.
	FindRole(ctx context.Context, guildID, roleID string) (*Role, error)
	// TopRolePosition is the highest position among the bot's own roles.
	TopRolePosition(ctx context.Context, guildID string) (int, error)
	GrantRole(ctx context.Context, guildID, memberID, roleID string) error
}

type InviteCreator interface {
	// CreateInvite opens a single-use invite on channelID that lapses after maxAge.
	CreateInvite(ctx context.Context, channelID string, maxAge time.Duration, reason string) (code string, uses int, err error)
}

type VerificationPrompter interface {
	PostPrompt(ctx context.Context, channelID, memberID string) (invite.VerificationPrompt, error)
}

type Mailer interface {
	SendInvite(ctx context.Context, to invite.Email, inviteURL string) error
}
