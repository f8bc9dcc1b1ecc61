package routes

import (
	"fmt"
	"net/http"

	"Flux/internal/contracts"
	"Flux/internal/domain/transfer"
	appErrors "Flux/internal/errors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Send(c *gin.Context) {
	var body contracts.SendRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	result, err := h.TransferService.Send(ctx, &transfer.Request{
		Recipient: body.Recipient,
		Amount:    body.Amount,
		Note:      body.Note,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.SendResponse{
		Success:     true,
		Message:     fmt.Sprintf("Sent $%.2f to %s", result.Transaction.Amount, body.Recipient),
		Transaction: result.Transaction,
		Balance:     result.Balance,
	})
}
