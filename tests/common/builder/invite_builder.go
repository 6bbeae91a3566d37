//go:build unit || e2e

package builder

import (
	"time"

	"invite-role-bridge/internal/domain/invite"
	reqdto "invite-role-bridge/internal/handler/dto/request"
	"invite-role-bridge/internal/usecase/commands"
	"invite-role-bridge/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	DefaultRoleID   = "1300000000000000002"
	DefaultMemberID = "1400000000000000001"
)

type InviteBuilder struct {
	id        uuid.UUID
	code      string
	roleID    string
	email     string
	status    invite.Status
	memberID  string
	prompt    invite.VerificationPrompt
	createdAt time.Time
	expiresAt *time.Time
	usedAt    *time.Time
}

func NewInviteBuilder() *InviteBuilder {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	expiresAt := now.Add(24 * time.Hour)
	return &InviteBuilder{
		id:        uuid.New(),
		code:      "aB3dE9",
		roleID:    DefaultRoleID,
		email:     "buyer@example.com",
		status:    invite.StatusPending,
		createdAt: now,
		expiresAt: &expiresAt,
	}
}

func (b *InviteBuilder) WithCode(code string) *InviteBuilder {
	b.code = code
	return b
}

func (b *InviteBuilder) WithRoleID(roleID string) *InviteBuilder {
	b.roleID = roleID
	return b
}

func (b *InviteBuilder) WithEmail(email string) *InviteBuilder {
	b.email = email
	return b
}

func (b *InviteBuilder) WithCreatedAt(t time.Time) *InviteBuilder {
	b.createdAt = t
	return b
}

func (b *InviteBuilder) WithExpiresAt(t time.Time) *InviteBuilder {
	b.expiresAt = &t
	return b
}

// Claimed moves the invite to PENDING_VERIFICATION for memberID.
func (b *InviteBuilder) Claimed(memberID string) *InviteBuilder {
	b.status = invite.StatusPendingVerification
	b.memberID = memberID
	return b
}

func (b *InviteBuilder) Used(memberID string, at time.Time) *InviteBuilder {
	b.status = invite.StatusUsed
	b.memberID = memberID
	b.usedAt = &at
	return b
}

func (b *InviteBuilder) Expired() *InviteBuilder {
	b.status = invite.StatusExpired
	return b
}

func (b *InviteBuilder) WithPrompt(channelID, messageID string) *InviteBuilder {
	b.prompt = invite.VerificationPrompt{ChannelID: channelID, MessageID: messageID}
	return b
}

func (b *InviteBuilder) Build() *invite.Invite {
	code, err := invite.NewCode(b.code)
	if err != nil {
		panic(err)
	}
	roleID, err := invite.NewRoleID(b.roleID)
	if err != nil {
		panic(err)
	}
	email, err := invite.NewEmail(b.email)
	if err != nil {
		panic(err)
	}
	return invite.ReconstructInvite(b.id, code, roleID, email, b.status, b.memberID, b.prompt,
		b.createdAt, b.expiresAt, b.usedAt, b.createdAt)
}

func (b *InviteBuilder) BuildView() *queries.InviteView {
	return &queries.InviteView{
		ID:            b.id,
		Code:          b.code,
		RoleID:        b.roleID,
		Email:         b.email,
		Status:        b.status.String(),
		MemberID:      b.memberID,
		RuleChannelID: b.prompt.ChannelID,
		RuleMessageID: b.prompt.MessageID,
		CreatedAt:     b.createdAt,
		ExpiresAt:     b.expiresAt,
		UsedAt:        b.usedAt,
		UpdatedAt:     b.createdAt,
	}
}

func (b *InviteBuilder) BuildIssueRequestDTO() reqdto.IssueInviteRequest {
	return reqdto.IssueInviteRequest{Email: b.email, RoleID: b.roleID}
}

func (b *InviteBuilder) BuildIssueCommand() commands.IssueInviteRequest {
	return commands.IssueInviteRequest{Email: b.email, RoleID: b.roleID}
}
