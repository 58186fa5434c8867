package handlers

import (
	"net/http"

	"foampro/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SyncHandler lets the office pull from or push to the spreadsheet backend
// on demand.
type SyncHandler struct {
	usecase usecase.ISyncUseCase
}

func NewSyncHandler(uc usecase.ISyncUseCase) *SyncHandler {
	return &SyncHandler{usecase: uc}
}

// SyncDown godoc
// @Summary Pull everything from the backend and merge it
// @Tags sync
// @Produce json
// @Success 200 {object} usecase.SyncReport
// @Router /sync [post]
func (h *SyncHandler) SyncDown(c *gin.Context) {
	report, err := h.usecase.SyncDown(c.Request.Context())
	if err != nil {
		writeError(c, mapCommonError(err))
		return
	}
	c.JSON(http.StatusOK, report)
}

// PushEstimate godoc
// @Summary Re-send one record to the backend
// @Tags sync
// @Param id path string true "Estimate id"
// @Success 204
// @Router /estimates/{id}/push [post]
func (h *SyncHandler) PushEstimate(c *gin.Context) {
	if err := h.usecase.PushEstimate(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapCommonError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
