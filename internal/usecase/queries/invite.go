package queries

import (
	"context"

	"invite-role-bridge/internal/domain/snapshot"
	"invite-role-bridge/internal/infra"
	"invite-role-bridge/internal/pkg/discordid"
	"invite-role-bridge/internal/pkg/errs"
)

var (
	ErrInviteNotFound  = errs.New("invite not found")
	ErrInvalidGuildID  = errs.New("invalid guild id")
	ErrInvalidCodePath = errs.New("invite code is required")
)

type InviteReadStore interface {
	FindByCode(ctx context.Context, code string) (*InviteView, error)
}

// SnapshotReader is the read side of the in-memory snapshot store.
type SnapshotReader interface {
	Get(guildID string) snapshot.Snapshot
}

type InviteQueries interface {
	GetByCode(ctx context.Context, code string) (*InviteView, error)
	GuildSnapshot(ctx context.Context, guildID string) (*SnapshotView, error)
}

type inviteQueriesImpl struct {
	readStore InviteReadStore
	snapshots SnapshotReader
}

func NewInviteQueries(readStore InviteReadStore, snapshots SnapshotReader) InviteQueries {
	return &inviteQueriesImpl{
		readStore: readStore,
		snapshots: snapshots,
	}
}

func (q *inviteQueriesImpl) GetByCode(ctx context.Context, code string) (*InviteView, error) {
	if code == "" {
		return nil, ErrInvalidCodePath
	}

	view, err := q.readStore.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInviteNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *inviteQueriesImpl) GuildSnapshot(_ context.Context, guildID string) (*SnapshotView, error) {
	if err := discordid.Validate(guildID); err != nil {
		return nil, ErrInvalidGuildID
	}

	snap := q.snapshots.Get(guildID)
	view := &SnapshotView{
		GuildID: guildID,
		Invites: make([]InviteUses, 0, snap.Len()),
	}
	for _, code := range snap.Codes() {
		uses, _ := snap.Uses(code)
		view.Invites = append(view.Invites, InviteUses{Code: code, Uses: uses})
	}
	return view, nil
}
