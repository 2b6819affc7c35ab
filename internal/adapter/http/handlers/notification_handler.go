package handlers

import (
	"errors"
	"net/http"

	response "agency_backoffice/internal/adapter/http/dto/response"
	"agency_backoffice/internal/adapter/http/middleware"
	"agency_backoffice/internal/usecase"
	"agency_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the in-app notifications of the calling user.
type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

// ListNotifications godoc
// @Summary      List notifications of the current user
// @Tags         notifications
// @Produce      json
// @Success      200  {array}  response.NotificationResponse
// @Security     BearerAuth
// @Router       /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	list, err := h.usecase.ListForUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		renderError(c, mapNotificationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromNotifications(list))
}

// MarkRead godoc
// @Summary      Mark a notification as read
// @Tags         notifications
// @Produce      json
// @Param        id   path      string  true  "Notification ID"
// @Success      200  {object}  response.NotificationResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     BearerAuth
// @Router       /notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	n, err := h.usecase.MarkRead(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		renderError(c, mapNotificationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromNotification(n))
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return pkg.NewDomainErrorSimple("NOTIFICATION_NOT_FOUND", "Notification not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
