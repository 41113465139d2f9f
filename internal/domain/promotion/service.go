package promotion

import (
	"context"

	"github.com/splus/splus-api/internal/pkg/logger"
	"github.com/splus/splus-api/internal/pkg/studioapi"
)

// Service handles promotion logic.
type Service struct {
	repo     Repository
	messages func(key string) string
}

// NewService creates a new promotion service. messages resolves local validation
// messages, usually studioapi.Client.Message.
func NewService(repo Repository, messages func(key string) string) *Service {
	if messages == nil {
		table := studioapi.Messages("vi")
		messages = func(key string) string { return table[key] }
	}
	return &Service{repo: repo, messages: messages}
}

// ListActive returns promotions customers may currently use.
func (s *Service) ListActive(ctx context.Context, token string, q studioapi.ListQuery) (*studioapi.Page[Rule], error) {
	return s.repo.ListActive(ctx, token, q)
}

// List returns every promotion (admin).
func (s *Service) List(ctx context.Context, token string, q studioapi.ListQuery) (*studioapi.Page[Rule], error) {
	return s.repo.List(ctx, token, q)
}

// Get returns one promotion.
func (s *Service) Get(ctx context.Context, token, id string) (*Rule, error) {
	rule, err := s.repo.Get(ctx, token, id)
	if studioapi.IsNotFound(err) {
		return nil, ErrPromotionNotFound
	}
	return rule, err
}

// Create creates a promotion.
func (s *Service) Create(ctx context.Context, token string, req *UpsertRequest) (*Rule, error) {
	if err := checkDates(req); err != nil {
		return nil, err
	}
	req.Code = NormalizeCode(req.Code)
	return s.repo.Create(ctx, token, req)
}

// Update replaces a promotion.
func (s *Service) Update(ctx context.Context, token, id string, req *UpsertRequest) (*Rule, error) {
	if err := checkDates(req); err != nil {
		return nil, err
	}
	req.Code = NormalizeCode(req.Code)
	rule, err := s.repo.Update(ctx, token, id, req)
	if studioapi.IsNotFound(err) {
		return nil, ErrPromotionNotFound
	}
	return rule, err
}

// Delete removes a promotion.
func (s *Service) Delete(ctx context.Context, token, id string) error {
	err := s.repo.Delete(ctx, token, id)
	if studioapi.IsNotFound(err) {
		return ErrPromotionNotFound
	}
	return err
}

// Toggle flips a promotion's active flag.
func (s *Service) Toggle(ctx context.Context, token, id string) (*Rule, error) {
	rule, err := s.repo.Toggle(ctx, token, id)
	if studioapi.IsNotFound(err) {
		return nil, ErrPromotionNotFound
	}
	return rule, err
}

// Apply prices code against orderValue on the backend.
// An empty code or a non-positive order value is rejected without a backend call.
func (s *Service) Apply(ctx context.Context, token, code string, orderValue float64) (*ApplyResult, error) {
	code = NormalizeCode(code)
	if code == "" {
		return nil, studioapi.Validation(s.messages("promo-code-required"), map[string]string{"code": "required"})
	}
	if orderValue <= 0 {
		return nil, studioapi.Validation(s.messages("promo-empty-order"), map[string]string{"orderValue": "must be greater than 0"})
	}

	result, err := s.repo.Apply(ctx, token, &ApplyRequest{Code: code, OrderValue: orderValue})
	if err != nil {
		logger.LogInfo(ctx, "Promotion rejected", "code", code, "error", err.Error())
		return nil, err
	}
	return result, nil
}

func checkDates(req *UpsertRequest) error {
	if req.StartDate != nil && req.EndDate != nil && !req.EndDate.After(*req.StartDate) {
		return ErrInvalidDateRange
	}
	return nil
}
