package queries

import (
	"time"

	"github.com/google/uuid"
)

// InviteView is the ledger entry as shown to support staff
type InviteView struct {
	ID            uuid.UUID  `json:"id"`
	Code          string     `json:"code"`
	RoleID        string     `json:"role_id"`
	Email         string     `json:"email"`
	Status        string     `json:"status"`
	MemberID      string     `json:"member_id,omitempty"`
	RuleChannelID string     `json:"rule_channel_id,omitempty"`
	RuleMessageID string     `json:"rule_message_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	UsedAt        *time.Time `json:"used_at,omitempty"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// InviteUses is one entry of a cached snapshot
type InviteUses struct {
	Code string `json:"code"`
	Uses int    `json:"uses"`
}

// SnapshotView lists the cached invite counts of a guild in code order
type SnapshotView struct {
	GuildID string       `json:"guild_id"`
	Invites []InviteUses `json:"invites"`
}
