package routes

import (
	"net/http"

	"Flux/internal/contracts"
	"Flux/internal/domain/donation"
	appErrors "Flux/internal/errors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Donate(c *gin.Context) {
	var body contracts.DonateRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	result, err := h.DonationService.Donate(ctx, &donation.Request{
		CharityId:     body.CharityId,
		AmountInCents: body.AmountInCents,
		Note:          body.Note,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.DonateResponse{
		Success:     true,
		Transaction: result.Transaction,
		Charity: contracts.DonateCharity{
			Id:    result.Charity.Id,
			Name:  result.Charity.Name,
			Emoji: result.Charity.Emoji,
		},
		Amount:        result.Transaction.Amount,
		PlatformFee:   result.Transaction.PlatformFee,
		CharityAmount: result.Transaction.CharityAmount,
		Impact:        result.Transaction.Impact,
		ImpactMetric:  result.Transaction.ImpactMetric,
		Insights:      result.Insights,
		Balance:       result.Balance,
		Note:          body.Note,
	})
}

func (h *Handler) ListCharities(c *gin.Context) {
	ctx := c.Request.Context()
	charities, err := h.CharityService.ListCharities(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.CharityListResponse{
		Charities: charities,
		Total:     len(charities),
	})
}
