package routes

import (
	"net/http"

	"Flux/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListTransactions(c *gin.Context) {
	pagination := h.parsePagination(c)

	transactions := h.Ledger.List()
	page, total := pkg.PaginateSlice(transactions, pagination)

	response := pkg.NewPaginatedResponse(page, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}
