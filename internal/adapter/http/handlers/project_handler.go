package handlers

import (
	"errors"
	"net/http"

	request "agency_backoffice/internal/adapter/http/dto/request"
	response "agency_backoffice/internal/adapter/http/dto/response"
	"agency_backoffice/internal/domain/entities"
	"agency_backoffice/internal/usecase"
	"agency_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

// ProjectHandler serves project tracking and delivery scheduling.
type ProjectHandler struct {
	projects  usecase.IProjectUseCase
	schedules usecase.IScheduleUseCase
}

func NewProjectHandler(projects usecase.IProjectUseCase, schedules usecase.IScheduleUseCase) *ProjectHandler {
	return &ProjectHandler{projects: projects, schedules: schedules}
}

// ListProjects godoc
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Success      200  {array}  response.ProjectResponse
// @Security     BearerAuth
// @Router       /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	list, err := h.projects.List(c.Request.Context())
	if err != nil {
		renderError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProjects(list))
}

// GetProject godoc
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  response.ProjectResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     BearerAuth
// @Router       /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	p, err := h.projects.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

// NotifyProgress godoc
// @Summary      Record a progress step (20, 50, 70, 100)
// @Description  Repeating the current step is a no-op; a lower step is rejected with 409.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "Project ID"
// @Param        body  body      request.ProgressRequest  true  "Progress"
// @Success      200   {object}  response.ProgressResponse
// @Failure      409   {object}  pkg.HTTPError
// @Security     BearerAuth
// @Router       /projects/{id}/progress [post]
func (h *ProjectHandler) NotifyProgress(c *gin.Context) {
	var payload request.ProgressRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, err)
		return
	}

	res, err := h.projects.NotifyProgress(c.Request.Context(), c.Param("id"), payload.Progress, payload.ShouldSendEmail())
	if err != nil {
		renderError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProgressResult(res))
}

// ScheduleDelivery godoc
// @Summary      Schedule (or reschedule) the delivery meeting
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id    path      string                           true  "Project ID"
// @Param        body  body      request.ScheduleDeliveryRequest  true  "Schedule"
// @Success      200   {object}  response.ScheduleResultResponse
// @Security     BearerAuth
// @Router       /projects/{id}/schedule [post]
func (h *ProjectHandler) ScheduleDelivery(c *gin.Context) {
	var payload request.ScheduleDeliveryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, err)
		return
	}

	res, err := h.schedules.ScheduleDelivery(c.Request.Context(), usecase.ScheduleDeliveryInput{
		ProjectID:   c.Param("id"),
		Date:        payload.Date,
		Time:        payload.Time,
		Type:        entities.ScheduleType(payload.Type),
		MeetingLink: payload.MeetingLink,
		Notes:       payload.Notes,
	})
	if err != nil {
		renderError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromScheduleResult(res))
}

// GetSchedule godoc
// @Summary      Get the delivery schedule of a project
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  response.ScheduleResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     BearerAuth
// @Router       /projects/{id}/schedule [get]
func (h *ProjectHandler) GetSchedule(c *gin.Context) {
	s, err := h.schedules.GetByProjectID(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSchedule(s))
}

func mapProjectError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSchedule):
		return pkg.NewDomainErrorSimple("INVALID_SCHEDULE", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrScheduleNotFound):
		return pkg.NewDomainErrorSimple("SCHEDULE_NOT_FOUND", "Schedule not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
