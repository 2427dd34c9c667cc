package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emmanuel-dcoder/tap-sync-api/internal/http/middleware"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/modules/orders"
)

type OrderHandler struct {
	Svc *orders.Service
}

func NewOrderHandler(svc *orders.Service) *OrderHandler {
	return &OrderHandler{Svc: svc}
}

// GET /orders/:userId
func (h *OrderHandler) ListByUser(c *gin.Context) {
	out, err := h.Svc.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}
