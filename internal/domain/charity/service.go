package charity

import (
	"context"
	"errors"
	"strings"

	appErrors "Flux/internal/errors"
)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

func (s *Service) FindCharity(ctx context.Context, id string) (*Charity, error) {
	if strings.TrimSpace(id) == "" {
		return nil, appErrors.NewValidationError("charityId", "charityId is required")
	}

	entity, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, appErrors.ErrCharityNotFound.WithError(err).WithDetails(map[string]interface{}{
				"charityId": id,
			})
		}
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return entity, nil
}

func (s *Service) ListCharities(ctx context.Context) ([]*Charity, error) {
	charities, err := s.Repository.List(ctx)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return charities, nil
}
