package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emmanuel-dcoder/tap-sync-api/internal/http/middleware"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/http/validation"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/modules/payments"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/shared/apperr"
)

type PaymentHandler struct {
	Svc *payments.Service
}

func NewPaymentHandler(svc *payments.Service) *PaymentHandler {
	return &PaymentHandler{Svc: svc}
}

type initializePaymentRequest struct {
	UserID        string `json:"user_id" binding:"required"`
	PaymentType   string `json:"payment_type" binding:"required,oneof=card subscription"`
	Duration      int    `json:"duration" binding:"omitempty,min=1"`
	NumberOfCards int    `json:"number_of_cards" binding:"omitempty,min=1"`
}

// POST /payment/initialize
func (h *PaymentHandler) Initialize(c *gin.Context) {
	var req initializePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fields := validation.FromBindError(err, &req)
		middleware.Fail(c, apperr.InvalidErr("Request body is invalid.", fields))
		return
	}

	res, err := h.Svc.Initialize(c.Request.Context(), payments.InitializeInput{
		UserID:        req.UserID,
		PaymentType:   req.PaymentType,
		Duration:      req.Duration,
		NumberOfCards: req.NumberOfCards,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
