package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emmanuel-dcoder/tap-sync-api/internal/http/middleware"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/modules/payments"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/shared/apperr"
)

// HeaderPaystackSignature carries the HMAC-SHA512 hex digest of the raw
// request body.
const HeaderPaystackSignature = "x-paystack-signature"

type WebhookHandler struct {
	Svc *payments.WebhookService
}

func NewWebhookHandler(svc *payments.WebhookService) *WebhookHandler {
	return &WebhookHandler{Svc: svc}
}

// POST /payment/webhook
// The body must stay raw: the signature covers the exact bytes Paystack
// sent, so no binding/re-serialization before verification.
func (h *WebhookHandler) Handle(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		middleware.Fail(c, apperr.InvalidErr("Request body could not be read.", nil))
		return
	}

	signature := c.GetHeader(HeaderPaystackSignature)
	if signature == "" {
		middleware.Fail(c, apperr.UnauthorizedErr("Missing signature."))
		return
	}

	if _, err := h.Svc.Reconcile(c.Request.Context(), body, signature); err != nil {
		middleware.Fail(c, err)
		return
	}

	// Always 200 for handled or deliberately ignored events so the
	// provider stops retrying.
	c.JSON(http.StatusOK, gin.H{"received": true})
}
