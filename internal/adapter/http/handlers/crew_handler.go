package handlers

import (
	"errors"
	"net/http"

	request "foampro/internal/adapter/http/dto/request"
	response "foampro/internal/adapter/http/dto/response"
	"foampro/internal/usecase"
	"foampro/pkg"

	"github.com/gin-gonic/gin"
)

// CrewHandler serves the field crew: job list, job clock, completion and
// photos.
type CrewHandler struct {
	usecase usecase.ICrewUseCase
}

func NewCrewHandler(uc usecase.ICrewUseCase) *CrewHandler {
	return &CrewHandler{usecase: uc}
}

// ListJobs godoc
// @Summary Work orders for the crew; completed ones with ?history=true
// @Tags crew
// @Produce json
// @Param history query bool false "Completed jobs"
// @Success 200 {array} response.EstimateResponse
// @Router /crew/jobs [get]
func (h *CrewHandler) ListJobs(c *gin.Context) {
	recs, err := h.usecase.ListJobs(c.Request.Context(), c.Query("history") == "true")
	if err != nil {
		writeError(c, mapCrewError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(recs))
}

// GetTimer godoc
// @Summary Resume the crew member's running job clock
// @Tags crew
// @Produce json
// @Param user query string true "Crew member"
// @Success 200 {object} response.TimerResponse
// @Router /crew/timer [get]
func (h *CrewHandler) GetTimer(c *gin.Context) {
	st, err := h.usecase.ResumeTimer(c.Request.Context(), c.Query("user"))
	if err != nil {
		writeError(c, mapCrewError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTimerStatus(st))
}

// StartJob godoc
// @Summary Start a job and its clock
// @Tags crew
// @Accept json
// @Produce json
// @Param id path string true "Job id"
// @Param body body request.CrewRequest true "Crew member"
// @Success 200 {object} usecase.CrewStartResult
// @Router /crew/jobs/{id}/start [post]
func (h *CrewHandler) StartJob(c *gin.Context) {
	var payload request.CrewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	res, err := h.usecase.StartJob(c.Request.Context(), c.Param("id"), payload.User)
	if err != nil {
		writeError(c, mapCrewError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// StopTimer godoc
// @Summary Stop the job clock and log the time; complete=true opens the completion form
// @Tags crew
// @Accept json
// @Produce json
// @Param id path string true "Job id"
// @Param body body request.StopTimerRequest true "Crew member"
// @Success 200 {object} usecase.CrewStopResult
// @Router /crew/jobs/{id}/stop [post]
func (h *CrewHandler) StopTimer(c *gin.Context) {
	var payload request.StopTimerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	res, err := h.usecase.StopTimer(c.Request.Context(), c.Param("id"), payload.User, payload.Complete)
	if err != nil {
		writeError(c, mapCrewError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// CancelCompletion godoc
// @Summary Close the completion form without submitting
// @Tags crew
// @Accept json
// @Param id path string true "Job id"
// @Param body body request.CrewRequest true "Crew member"
// @Success 204
// @Router /crew/jobs/{id}/cancel-completion [post]
func (h *CrewHandler) CancelCompletion(c *gin.Context) {
	var payload request.CrewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	if err := h.usecase.CancelCompletion(c.Request.Context(), c.Param("id"), payload.User); err != nil {
		writeError(c, mapCrewError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// CompleteJob godoc
// @Summary Submit crew actuals
// @Tags crew
// @Accept json
// @Produce json
// @Param id path string true "Job id"
// @Param body body request.CompleteJobRequest true "Actuals"
// @Success 200 {object} usecase.CrewCompletion
// @Router /crew/jobs/{id}/complete [post]
func (h *CrewHandler) CompleteJob(c *gin.Context) {
	var payload request.CompleteJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	res, err := h.usecase.CompleteJob(c.Request.Context(), c.Param("id"), payload.User, payload.Actuals)
	if err != nil {
		writeError(c, mapCrewError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// UploadPhoto godoc
// @Summary Upload a site or completion photo
// @Tags crew
// @Accept json
// @Produce json
// @Param id path string true "Job id"
// @Param body body request.PhotoRequest true "Base64 image"
// @Success 201 {object} entities.JobImage
// @Router /crew/jobs/{id}/photos [post]
func (h *CrewHandler) UploadPhoto(c *gin.Context) {
	var payload request.PhotoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	img, err := h.usecase.UploadPhoto(c.Request.Context(), c.Param("id"), payload.User, payload.Upload())
	if err != nil {
		writeError(c, mapCrewError(err))
		return
	}
	c.JSON(http.StatusCreated, img)
}

// Sync godoc
// @Summary Refresh from the backend unless a crew operation is in flight
// @Tags crew
// @Produce json
// @Success 200 {object} response.CrewSyncResponse
// @Router /crew/sync [post]
func (h *CrewHandler) Sync(c *gin.Context) {
	ran, reason, err := h.usecase.SyncNow(c.Request.Context())
	if err != nil {
		writeError(c, mapCrewError(err))
		return
	}
	c.JSON(http.StatusOK, response.CrewSyncResponse{Ran: ran, Reason: reason})
}

func mapCrewError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCrewUser), errors.Is(err, usecase.ErrInvalidPhoto):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoActiveTimer):
		return pkg.NewDomainError("NO_ACTIVE_TIMER", "No active timer for this job", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrTimerOtherJob):
		return pkg.NewDomainError("TIMER_RUNNING", "A timer is already running for another job", err, http.StatusConflict)
	default:
		return mapCommonError(err)
	}
}
