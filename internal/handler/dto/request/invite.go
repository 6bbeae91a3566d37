package request

import (
	"invite-role-bridge/internal/usecase/commands"
)

type IssueInviteRequest struct {
	Email  string `json:"email" binding:"required,max=254"`
	RoleID string `json:"roleId" binding:"required,max=20"`
}

func (r *IssueInviteRequest) ToCommand() commands.IssueInviteRequest {
	return commands.IssueInviteRequest{
		Email:  r.Email,
		RoleID: r.RoleID,
	}
}
