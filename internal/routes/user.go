package routes

import (
	"net/http"

	"Flux/internal/contracts"
	"Flux/internal/domain/user"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, contracts.ProfileResponse{
		User: h.Ledger.Snapshot(),
	})
}

func (h *Handler) GetBalance(c *gin.Context) {
	c.JSON(http.StatusOK, contracts.BalanceResponse{
		Balance: h.Ledger.Balance(),
	})
}

func (h *Handler) GetPrompt(c *gin.Context) {
	snapshot := h.Ledger.Snapshot()
	now := h.Clock.Now()

	c.JSON(http.StatusOK, contracts.PromptResponse{
		Mode:         user.GetPromptMode(&snapshot, now),
		PaydayWindow: user.IsPaydayWindow(now),
	})
}
