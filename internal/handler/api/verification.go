package api

import (
	"net/http"

	resdto "invite-role-bridge/internal/handler/dto/response"
	"invite-role-bridge/internal/handler/httperr"
	"invite-role-bridge/internal/pkg/discordid"
	"invite-role-bridge/internal/pkg/errs"
	"invite-role-bridge/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// VerificationHandler is the manual support path for members whose prompt never arrived.
type VerificationHandler struct {
	gate commands.EntitlementGate
}

func NewVerificationHandler(gate commands.EntitlementGate) *VerificationHandler {
	return &VerificationHandler{gate: gate}
}

// @Summary Confirm verification
// @Description Grant the role of the member's invite awaiting verification
// @Tags verifications
// @Produce json
// @Security BearerAuth
// @Param guildId path string true "Guild ID"
// @Param memberId path string true "Member ID"
// @Success 200 {object} resdto.ConfirmVerificationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/verifications/{guildId}/{memberId}/confirm [post]
func (h *VerificationHandler) Confirm(c *gin.Context) {
	guildID := c.Param("guildId")
	memberID := c.Param("memberId")
	if discordid.Validate(guildID) != nil || discordid.Validate(memberID) != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, discordid.ErrInvalidID, "Invalid guild or member id", nil)
		return
	}

	roleID, err := h.gate.ConfirmAndGrant(c.Request.Context(), guildID, memberID)
	if err != nil {
		writeGateError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ConfirmVerificationResponse{RoleID: roleID})
}

func writeGateError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrUnknownGuild):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Guild is not served by this bridge", nil)
	case errs.Is(err, commands.ErrNoPendingVerification):
		httperr.AbortWithError(c, http.StatusNotFound, err, "No invite awaiting verification for this member", nil)
	case errs.Is(err, commands.ErrRoleNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Role not found", nil)
	case errs.Is(err, commands.ErrInsufficientBotPrivilege):
		httperr.AbortWithError(c, http.StatusConflict, err, "Bot role must sit above the role to grant", nil)
	case errs.Is(err, errs.ErrTransientUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Discord is temporarily unavailable", nil)
	case errs.Is(err, errs.ErrPermissionDenied), errs.Is(err, errs.ErrRemoteRejected):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Discord rejected the role grant", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to confirm verification", nil)
	}
}
