package api

import (
	"net/http"

	resdto "invite-role-bridge/internal/handler/dto/response"
	"invite-role-bridge/internal/handler/httperr"
	"invite-role-bridge/internal/pkg/errs"
	"invite-role-bridge/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SnapshotHandler struct {
	q queries.InviteQueries
}

func NewSnapshotHandler(q queries.InviteQueries) *SnapshotHandler {
	return &SnapshotHandler{q: q}
}

// @Summary Get invite snapshot
// @Description Current cached invite use counts of a guild
// @Tags guilds
// @Produce json
// @Security BearerAuth
// @Param guildId path string true "Guild ID"
// @Success 200 {object} resdto.SnapshotResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/guilds/{guildId}/snapshot [get]
func (h *SnapshotHandler) Get(c *gin.Context) {
	view, err := h.q.GuildSnapshot(c.Request.Context(), c.Param("guildId"))
	if err != nil {
		if errs.Is(err, queries.ErrInvalidGuildID) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid guild id", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load snapshot", nil)
		return
	}

	resp, err := resdto.FromSnapshotView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load snapshot", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
