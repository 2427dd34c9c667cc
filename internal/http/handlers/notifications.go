package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emmanuel-dcoder/tap-sync-api/internal/http/middleware"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/modules/notifications"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/shared/apperr"
)

type NotificationHandler struct {
	Svc *notifications.Service
}

func NewNotificationHandler(svc *notifications.Service) *NotificationHandler {
	return &NotificationHandler{Svc: svc}
}

// GET /notifications/:userId
func (h *NotificationHandler) ListByUser(c *gin.Context) {
	out, err := h.Svc.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// POST /notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	err := h.Svc.MarkRead(c.Request.Context(), c.Param("id"))
	if errors.Is(err, notifications.ErrNotFound) {
		middleware.Fail(c, apperr.NotFoundErr("Notification not found."))
		return
	}
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
