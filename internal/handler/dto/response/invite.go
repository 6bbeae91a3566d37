package response

import (
	"invite-role-bridge/internal/usecase/commands"
	"invite-role-bridge/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type IssueInviteResponse struct {
	Code       string `json:"code"`
	InviteURL  string `json:"inviteUrl"`
	ExpiresAt  *int64 `json:"expiresAt,omitempty"`
	Reused     bool   `json:"reused"`
	EmailSent  bool   `json:"emailSent"`
	EmailError string `json:"emailError,omitempty"`
	Message    string `json:"message"`
}

func FromIssuedInvite(r *commands.IssuedInvite) *IssueInviteResponse {
	resp := &IssueInviteResponse{
		Code:       r.Code,
		InviteURL:  r.URL,
		Reused:     r.Reused,
		EmailSent:  r.EmailSent,
		EmailError: r.EmailError,
	}
	if r.ExpiresAt != nil {
		ts := r.ExpiresAt.Unix()
		resp.ExpiresAt = &ts
	}

	switch {
	case r.EmailSent:
		resp.Message = "Invite sent by email"
	case r.Reused:
		resp.Message = "Existing invite returned, email could not be sent"
	default:
		resp.Message = "Invite created, email could not be sent"
	}
	return resp
}

type InviteResponse struct {
	ID            string `json:"id" copier:"-"`
	Code          string `json:"code"`
	RoleID        string `json:"roleId"`
	Email         string `json:"email"`
	Status        string `json:"status"`
	MemberID      string `json:"memberId,omitempty"`
	RuleChannelID string `json:"ruleChannelId,omitempty"`
	RuleMessageID string `json:"ruleMessageId,omitempty"`
	CreatedAt     int64  `json:"createdAt" copier:"-"`
	ExpiresAt     *int64 `json:"expiresAt,omitempty" copier:"-"`
	UsedAt        *int64 `json:"usedAt,omitempty" copier:"-"`
	UpdatedAt     int64  `json:"updatedAt" copier:"-"`
}

func FromInviteView(v *queries.InviteView) (*InviteResponse, error) {
	resp := &InviteResponse{}
	if err := copier.Copy(resp, v); err != nil {
		return nil, err
	}
	resp.ID = v.ID.String()
	resp.CreatedAt = v.CreatedAt.Unix()
	resp.UpdatedAt = v.UpdatedAt.Unix()
	if v.ExpiresAt != nil {
		ts := v.ExpiresAt.Unix()
		resp.ExpiresAt = &ts
	}
	if v.UsedAt != nil {
		ts := v.UsedAt.Unix()
		resp.UsedAt = &ts
	}
	return resp, nil
}

type ConfirmVerificationResponse struct {
	RoleID string `json:"roleId"`
}

type SnapshotEntry struct {
	Code string `json:"code"`
	Uses int    `json:"uses"`
}

type SnapshotResponse struct {
	GuildID string          `json:"guildId"`
	Invites []SnapshotEntry `json:"invites"`
}

func FromSnapshotView(v *queries.SnapshotView) (*SnapshotResponse, error) {
	resp := &SnapshotResponse{}
	if err := copier.Copy(resp, v); err != nil {
		return nil, err
	}
	if resp.Invites == nil {
		resp.Invites = []SnapshotEntry{}
	}
	return resp, nil
}
