package invite

import (
	"errors"
	"time"

	"invite-role-bridge/internal/pkg/discordid"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidCode     = errors.New("invalid invite code")
	ErrInvalidRoleID   = errors.New("invalid role id")
	ErrInvalidMemberID = errors.New("invalid member id")
	ErrInvalidStatus   = errors.New("invalid invite status")
	ErrInvalidTTL      = errors.New("invite ttl must be positive")

	ErrNotPending              = errors.New("invite is not pending")
	ErrNotAwaitingVerification = errors.New("invite is not awaiting verification")
	ErrMemberMismatch          = errors.New("invite was claimed by another member")
	ErrExpired                 = errors.New("invite has expired")
	ErrInsufficientPrivilege   = errors.New("role sits at or above the granting principal")
)

// Invite is a ledger entry: one tracked invite link from issuance to role grant.
type Invite struct {
	id        uuid.UUID
	code      Code
	roleID    RoleID
	email     Email
	status    Status
	memberID  string
	prompt    VerificationPrompt
	createdAt time.Time
	expiresAt *time.Time
	usedAt    *time.Time
	updatedAt time.Time
}

func NewInvite(code Code, roleID RoleID, email Email, now time.Time, ttl time.Duration) (*Invite, error) {
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}
	expiresAt := now.Add(ttl)
	return &Invite{
		id:        uuid.New(),
		code:      code,
		roleID:    roleID,
		email:     email,
		status:    StatusPending,
		createdAt: now,
		expiresAt: &expiresAt,
		updatedAt: now,
	}, nil
}

func ReconstructInvite(
	id uuid.UUID,
	code Code,
	roleID RoleID,
	email Email,
	status Status,
	memberID string,
	prompt VerificationPrompt,
	createdAt time.Time,
	expiresAt, usedAt *time.Time,
	updatedAt time.Time,
) *Invite {
	return &Invite{
		id:        id,
		code:      code,
		roleID:    roleID,
		email:     email,
		status:    status,
		memberID:  memberID,
		prompt:    prompt,
		createdAt: createdAt,
		expiresAt: expiresAt,
		usedAt:    usedAt,
		updatedAt: updatedAt,
	}
}

func (i *Invite) IsExpired(now time.Time) bool {
	return i.expiresAt != nil && !now.Before(*i.expiresAt)
}

// IsReusable reports whether the link can still be handed out again.
func (i *Invite) IsReusable(now time.Time) bool {
	return i.status == StatusPending && !i.IsExpired(now)
}

// MarkJoined records that memberID joined through this invite; the role grant waits for verification.
func (i *Invite) MarkJoined(memberID string, now time.Time) error {
	if i.status != StatusPending {
		return ErrNotPending
	}
	if i.IsExpired(now) {
		return ErrExpired
	}
	if err := discordid.Validate(memberID); err != nil {
		return ErrInvalidMemberID
	}
	i.status = StatusPendingVerification
	i.memberID = memberID
	i.updatedAt = now
	return nil
}

func (i *Invite) AttachPrompt(prompt VerificationPrompt, now time.Time) {
	i.prompt = prompt
	i.updatedAt = now
}

// Confirm closes the entry after the member accepted the rules and the role was granted.
func (i *Invite) Confirm(memberID string, now time.Time) error {
	if i.status != StatusPendingVerification {
		return ErrNotAwaitingVerification
	}
	if i.memberID != memberID {
		return ErrMemberMismatch
	}
	usedAt := now
	i.status = StatusUsed
	i.usedAt = &usedAt
	i.updatedAt = now
	return nil
}

// Expire is only legal from PENDING; a claimed invite never expires.
func (i *Invite) Expire(now time.Time) error {
	if i.status != StatusPending {
		return ErrNotPending
	}
	i.status = StatusExpired
	i.updatedAt = now
	return nil
}

func (i *Invite) ID() uuid.UUID              { return i.id }
func (i *Invite) Code() Code                 { return i.code }
func (i *Invite) RoleID() RoleID             { return i.roleID }
func (i *Invite) Email() Email               { return i.email }
func (i *Invite) Status() Status             { return i.status }
func (i *Invite) MemberID() string           { return i.memberID }
func (i *Invite) Prompt() VerificationPrompt { return i.prompt }
func (i *Invite) CreatedAt() time.Time       { return i.createdAt }
func (i *Invite) ExpiresAt() *time.Time      { return i.expiresAt }
func (i *Invite) UsedAt() *time.Time         { return i.usedAt }
func (i *Invite) UpdatedAt() time.Time       { return i.updatedAt }

// CheckGrantable enforces the platform hierarchy: a principal can only assign
// roles strictly below its own highest role.
func CheckGrantable(rolePosition, principalTopPosition int) error {
	if rolePosition >= principalTopPosition {
		return ErrInsufficientPrivilege
	}
	return nil
}
