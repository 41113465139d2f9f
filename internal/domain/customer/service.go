package customer

import (
	"context"
	"strings"

	"github.com/splus/splus-api/internal/pkg/logger"
	"github.com/splus/splus-api/internal/pkg/studioapi"
)

// Service handles customer administration and the caller's profile.
type Service struct {
	repo Repository
}

// NewService creates customer service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns customers (staff).
func (s *Service) List(ctx context.Context, token string, q studioapi.ListQuery) (*studioapi.Page[Customer], error) {
	return s.repo.List(ctx, token, q)
}

// Get returns one customer (staff).
func (s *Service) Get(ctx context.Context, token, id string) (*Customer, error) {
	c, err := s.repo.Get(ctx, token, id)
	if studioapi.IsNotFound(err) {
		return nil, ErrCustomerNotFound
	}
	return c, err
}

// UpdateStatus blocks or unblocks a customer (admin).
func (s *Service) UpdateStatus(ctx context.Context, token, id string, req *StatusRequest) (*Customer, error) {
	c, err := s.repo.UpdateStatus(ctx, token, id, req)
	if err != nil {
		if studioapi.IsNotFound(err) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	logger.LogInfo(ctx, "Customer status changed", "customer_id", id, "active", *req.IsActive)
	return c, nil
}

// Me returns the caller's profile.
func (s *Service) Me(ctx context.Context, token string) (*Customer, error) {
	return s.repo.Me(ctx, token)
}

// UpdateMe updates the caller's profile.
func (s *Service) UpdateMe(ctx context.Context, token string, req *ProfileRequest) (*Customer, error) {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Phone = strings.ReplaceAll(strings.TrimSpace(req.Phone), " ", "")
	return s.repo.UpdateMe(ctx, token, req)
}
