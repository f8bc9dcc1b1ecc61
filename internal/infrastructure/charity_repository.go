package infrastructure

import (
	"context"
	"fmt"

	"Flux/internal/domain/charity"
)

// StaticCharityRepository serve o catálogo embutido. É o padrão em
// desenvolvimento; somente leitura, sem sincronização necessária.
type StaticCharityRepository struct {
	charities []*charity.Charity
	byID      map[string]*charity.Charity
}

func NewStaticCharityRepository(charities []*charity.Charity) *StaticCharityRepository {
	byID := make(map[string]*charity.Charity, len(charities))
	for _, c := range charities {
		byID[c.Id] = c
	}
	return &StaticCharityRepository{
		charities: charities,
		byID:      byID,
	}
}

func (r *StaticCharityRepository) GetByID(ctx context.Context, id string) (*charity.Charity, error) {
	entity, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", charity.ErrNotFound, id)
	}
	return entity, nil
}

func (r *StaticCharityRepository) List(ctx context.Context) ([]*charity.Charity, error) {
	out := make([]*charity.Charity, len(r.charities))
	copy(out, r.charities)
	return out, nil
}
