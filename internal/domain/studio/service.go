package studio

import (
	"context"
	"fmt"

	"github.com/splus/splus-api/internal/pkg/studioapi"
	"github.com/splus/splus-api/internal/pricing"
)

// Service handles studio catalogue logic.
type Service struct {
	repo Repository
}

// NewService creates a new studio service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns one page of studios.
func (s *Service) List(ctx context.Context, token string, q studioapi.ListQuery) (*studioapi.Page[Studio], error) {
	return s.repo.List(ctx, token, q)
}

// Get returns a single studio.
func (s *Service) Get(ctx context.Context, token, id string) (*Studio, error) {
	st, err := s.repo.Get(ctx, token, id)
	if err != nil {
		if studioapi.IsNotFound(err) {
			return nil, ErrStudioNotFound
		}
		return nil, err
	}
	return st, nil
}

// Rate returns the hourly rate of a bookable studio.
func (s *Service) Rate(ctx context.Context, token, id string) (pricing.StudioRate, error) {
	st, err := s.Get(ctx, token, id)
	if err != nil {
		return pricing.StudioRate{}, err
	}
	if !st.IsBookable() {
		return pricing.StudioRate{}, fmt.Errorf("%w: %s", ErrStudioUnavailable, st.Status)
	}
	return st.Rate(), nil
}

// Create creates a studio.
func (s *Service) Create(ctx context.Context, token string, req *UpsertRequest) (*Studio, error) {
	return s.repo.Create(ctx, token, req)
}

// Update replaces a studio's editable fields.
func (s *Service) Update(ctx context.Context, token, id string, req *UpsertRequest) (*Studio, error) {
	st, err := s.repo.Update(ctx, token, id, req)
	if studioapi.IsNotFound(err) {
		return nil, ErrStudioNotFound
	}
	return st, err
}

// Delete removes a studio.
func (s *Service) Delete(ctx context.Context, token, id string) error {
	err := s.repo.Delete(ctx, token, id)
	if studioapi.IsNotFound(err) {
		return ErrStudioNotFound
	}
	return err
}
