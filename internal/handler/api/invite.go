package api

import (
	"net/http"

	"invite-role-bridge/internal/domain/invite"
	reqdto "invite-role-bridge/internal/handler/dto/request"
	resdto "invite-role-bridge/internal/handler/dto/response"
	"invite-role-bridge/internal/handler/httperr"
	"invite-role-bridge/internal/pkg/errs"
	"invite-role-bridge/internal/usecase/commands"
	"invite-role-bridge/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type InviteHandler struct {
	cmds commands.InviteCommands
	q    queries.InviteQueries
}

func NewInviteHandler(cmds commands.InviteCommands, q queries.InviteQueries) *InviteHandler {
	return &InviteHandler{cmds: cmds, q: q}
}

// @Summary Issue invite
// @Description Create (or reuse) a single-use Discord invite for an email and mail the link
// @Tags invites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.IssueInviteRequest true "Issue invite request"
// @Success 201 {object} resdto.IssueInviteResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/invites [post]
func (h *InviteHandler) Issue(c *gin.Context) {
	var req reqdto.IssueInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Email and roleId are required", nil)
		return
	}

	result, err := h.cmds.IssueInvite(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errs.Is(err, invite.ErrInvalidEmail):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid email", nil)
		case errs.Is(err, invite.ErrInvalidRoleID):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid role id", nil)
		case errs.Is(err, commands.ErrInviteCodeTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Invite code already recorded", nil)
		case errs.Is(err, errs.ErrTransientUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Discord is temporarily unavailable", nil)
		case errs.Is(err, errs.ErrPermissionDenied), errs.Is(err, errs.ErrRemoteRejected):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Discord rejected the invite request", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to issue invite", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromIssuedInvite(result))
}

// @Summary Get invite
// @Description Get a ledger entry by invite code
// @Tags invites
// @Produce json
// @Security BearerAuth
// @Param code path string true "Invite code"
// @Success 200 {object} resdto.InviteResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/invites/{code} [get]
func (h *InviteHandler) Get(c *gin.Context) {
	view, err := h.q.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrInviteNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Invite not found", nil)
		case errs.Is(err, queries.ErrInvalidCodePath):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invite code is required", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load invite", nil)
		}
		return
	}

	resp, err := resdto.FromInviteView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load invite", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
