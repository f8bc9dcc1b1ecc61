package infrastructure

import (
	"context"
	"errors"
	"fmt"

	"Flux/internal/domain/charity"
	"Flux/internal/logger"

	"gorm.io/gorm"
)

// DatabaseCharityRepository lê o catálogo da tabela charities.
// É a variante "real" do switch estático/banco.
type DatabaseCharityRepository struct {
	DB *gorm.DB
}

func (r *DatabaseCharityRepository) GetByID(ctx context.Context, id string) (*charity.Charity, error) {
	var entity charity.Charity
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", charity.ErrNotFound, id)
		}
		return nil, err
	}
	return &entity, nil
}

func (r *DatabaseCharityRepository) List(ctx context.Context) ([]*charity.Charity, error) {
	var charities []*charity.Charity
	if err := r.DB.WithContext(ctx).Order("name asc").Find(&charities).Error; err != nil {
		return nil, err
	}
	return charities, nil
}

// EnsureSeeded carrega o catálogo embutido quando a tabela está vazia,
// para que um banco recém-criado já sirva doações.
func (r *DatabaseCharityRepository) EnsureSeeded(ctx context.Context) error {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&charity.Charity{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := SeedCharities()
	if err := r.DB.WithContext(ctx).Create(&seed).Error; err != nil {
		return err
	}

	logger.Info().Int("charities", len(seed)).Msg("charities table seeded")
	return nil
}
