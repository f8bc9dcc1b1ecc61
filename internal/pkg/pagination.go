package pkg

type PaginationParams struct {
	Page  int
	Limit int
}

func (p *PaginationParams) Offset() int {
	if p == nil {
		return 0
	}
	if p.Page < 1 {
		p.Page = 1
	}
	return (p.Page - 1) * p.Limit
}

func (p *PaginationParams) Normalize() {
	if p == nil {
		return
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

func NormalizePagination(p *PaginationParams) *PaginationParams {
	if p == nil {
		return &PaginationParams{Page: 1, Limit: 10}
	}
	p.Normalize()
	return p
}

type PaginatedResponse[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func NewPaginatedResponse[T any](data []T, page, limit int, total int64) *PaginatedResponse[T] {
	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}
	if totalPages == 0 {
		totalPages = 1
	}
	return &PaginatedResponse[T]{
		Data:       data,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// PaginateSlice recorta uma página de um slice já ordenado,
// usado pelo ledger em memória no lugar das queries gorm.
func PaginateSlice[T any](items []T, pagination *PaginationParams) ([]T, int64) {
	pagination = NormalizePagination(pagination)

	total := int64(len(items))
	start := pagination.Offset()
	if start >= len(items) {
		return []T{}, total
	}

	end := start + pagination.Limit
	if end > len(items) {
		end = len(items)
	}

	return items[start:end], total
}
