package app

import (
	"context"

	"nova_estates/internal/domain"
)

// QueryService serves the read paths straight off the repository.
type QueryService struct {
	repo domain.Repository
}

func NewQueryService(r domain.Repository) *QueryService {
	return &QueryService{repo: r}
}

func (s *QueryService) ListProperties(ctx context.Context, featured *bool) ([]domain.Property, error) {
	out, err := s.repo.ListProperties(ctx, domain.PropertyFilter{Featured: featured})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Property{} // JSON [] rather than null
	}
	return out, nil
}

func (s *QueryService) GetProperty(ctx context.Context, id string) (domain.Property, error) {
	return s.repo.GetProperty(ctx, id)
}

func (s *QueryService) ListOffers(ctx context.Context, propertyID *string) ([]domain.Offer, error) {
	out, err := s.repo.ListOffers(ctx, domain.OfferFilter{PropertyID: propertyID})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Offer{}
	}
	return out, nil
}

// GetSettings returns the settings singleton, creating it with the defaults
// on first read. Creation is an atomic upsert in the store, so concurrent
// first reads cannot mint duplicates.
func (s *QueryService) GetSettings(ctx context.Context) (domain.SiteSettings, error) {
	return s.repo.EnsureSettings(ctx, domain.DefaultSettings())
}

func (s *QueryService) CollectionNames(ctx context.Context, limit int) ([]string, error) {
	return s.repo.CollectionNames(ctx, limit)
}
