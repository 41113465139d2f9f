package equipment

import (
	"context"

	"github.com/splus/splus-api/internal/pkg/studioapi"
)

// Cache receives authoritative records after admin mutations.
type Cache interface {
	UpsertEquipment(e Equipment)
	RemoveEquipment(id string)
}

// Service handles equipment catalogue logic.
type Service struct {
	repo  Repository
	cache Cache
}

// NewService creates a new equipment service. cache may be nil.
func NewService(repo Repository, cache Cache) *Service {
	return &Service{repo: repo, cache: cache}
}

// List returns one page of equipment.
func (s *Service) List(ctx context.Context, token string, q studioapi.ListQuery) (*studioapi.Page[Equipment], error) {
	return s.repo.List(ctx, token, q)
}

// Get returns one equipment item.
func (s *Service) Get(ctx context.Context, token, id string) (*Equipment, error) {
	return s.repo.Get(ctx, token, id)
}

// Create creates equipment and records it in the catalogue cache.
func (s *Service) Create(ctx context.Context, token string, req *UpsertRequest) (*Equipment, error) {
	e, err := s.repo.Create(ctx, token, req)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.UpsertEquipment(*e)
	}
	return e, nil
}

// Update updates equipment and replaces the cached record by id.
func (s *Service) Update(ctx context.Context, token, id string, req *UpsertRequest) (*Equipment, error) {
	e, err := s.repo.Update(ctx, token, id, req)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.UpsertEquipment(*e)
	}
	return e, nil
}

// Delete deletes equipment and drops it from the cache.
func (s *Service) Delete(ctx context.Context, token, id string) error {
	if err := s.repo.Delete(ctx, token, id); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.RemoveEquipment(id)
	}
	return nil
}
