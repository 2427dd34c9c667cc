package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emmanuel-dcoder/tap-sync-api/internal/http/middleware"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/modules/transactions"
)

type TransactionHandler struct {
	Repo *transactions.Repo
}

func NewTransactionHandler(repo *transactions.Repo) *TransactionHandler {
	return &TransactionHandler{Repo: repo}
}

// GET /transactions/:userId — the user's payment history, newest first.
func (h *TransactionHandler) ListByUser(c *gin.Context) {
	out, err := h.Repo.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}
