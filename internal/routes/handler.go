package routes

import (
	"Flux/internal/domain/charity"
	"Flux/internal/domain/donation"
	"Flux/internal/domain/ledger"
	"Flux/internal/domain/transfer"
	appErrors "Flux/internal/errors"
	"Flux/internal/logger"
	"Flux/internal/pkg"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	DonationService *donation.Service
	TransferService *transfer.Service
	CharityService  *charity.Service
	Ledger          *ledger.Store
	Clock           pkg.Clock
}

func (h *Handler) parsePagination(c *gin.Context) *pkg.PaginationParams {
	page := c.DefaultQuery("page", "1")
	limit := c.DefaultQuery("limit", "50")

	var pageNum, limitNum int
	if p, err := pkg.ParseInt(page); err == nil && p > 0 {
		pageNum = p
	} else {
		pageNum = 1
	}

	if l, err := pkg.ParseInt(limit); err == nil && l > 0 {
		limitNum = l
	} else {
		limitNum = 50
	}

	return &pkg.PaginationParams{
		Page:  pageNum,
		Limit: limitNum,
	}
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	event := logger.Error().Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")

	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, payload)
}
