package customdesign

import (
	"context"

	"github.com/splus/splus-api/internal/domain/setdesign"
	"github.com/splus/splus-api/internal/domain/upload"
	"github.com/splus/splus-api/internal/pkg/imaging"
	"github.com/splus/splus-api/internal/pkg/logger"
	"github.com/splus/splus-api/internal/pkg/studioapi"
)

// SetDesignCache receives set designs created by a conversion.
type SetDesignCache interface {
	Remember(sd setdesign.SetDesign)
}

// Service handles custom design requests. It only creates, reads and asks the
// backend for transitions; which transitions are legal is the backend's call.
type Service struct {
	repo       Repository
	processor  *imaging.Processor
	setDesigns SetDesignCache
}

// NewService creates a new custom design service. setDesigns may be nil.
func NewService(repo Repository, processor *imaging.Processor, setDesigns SetDesignCache) *Service {
	return &Service{repo: repo, processor: processor, setDesigns: setDesigns}
}

// Create submits a request with optional reference images.
func (s *Service) Create(ctx context.Context, token string, req *CreateRequest, files []upload.RawFile) (*Request, error) {
	if len(files) > upload.MaxFiles {
		return nil, upload.ErrTooManyFiles
	}
	parts, err := upload.Prepare(s.processor, "referenceImages", files)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, token, req, parts)
	if err != nil {
		return nil, err
	}
	logger.LogInfo(ctx, "Custom design requested", "request_id", created.ID, "images", len(parts))
	return created, nil
}

// ListMine returns the caller's requests.
func (s *Service) ListMine(ctx context.Context, token string, q studioapi.ListQuery) (*studioapi.Page[Request], error) {
	return s.repo.ListMine(ctx, token, q)
}

// List returns all requests (staff).
func (s *Service) List(ctx context.Context, token string, q studioapi.ListQuery) (*studioapi.Page[Request], error) {
	return s.repo.List(ctx, token, q)
}

// Get returns one request.
func (s *Service) Get(ctx context.Context, token, id string) (*Request, error) {
	req, err := s.repo.Get(ctx, token, id)
	if studioapi.IsNotFound(err) {
		return nil, ErrRequestNotFound
	}
	return req, err
}

// UpdateStatus asks the backend to move the request to another status.
func (s *Service) UpdateStatus(ctx context.Context, token, id string, req *StatusRequest) (*Request, error) {
	updated, err := s.repo.UpdateStatus(ctx, token, id, req)
	if err != nil {
		if studioapi.IsNotFound(err) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	logger.LogInfo(ctx, "Custom design status changed", "request_id", id, "status", string(updated.Status))
	return updated, nil
}

// Convert asks the backend to create a set design from the request.
func (s *Service) Convert(ctx context.Context, token, id string, req *ConvertRequest) (*ConvertResult, error) {
	result, err := s.repo.Convert(ctx, token, id, req)
	if err != nil {
		if studioapi.IsNotFound(err) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if result.SetDesign.SourceRequestID == "" {
		result.SetDesign.SourceRequestID = id
	}
	if s.setDesigns != nil && result.SetDesign.ID != "" {
		s.setDesigns.Remember(result.SetDesign)
	}
	logger.LogInfo(ctx, "Custom design converted", "request_id", id, "set_design_id", result.SetDesign.ID)
	return result, nil
}

// Delete removes a request (admin).
func (s *Service) Delete(ctx context.Context, token, id string) error {
	err := s.repo.Delete(ctx, token, id)
	if studioapi.IsNotFound(err) {
		return ErrRequestNotFound
	}
	return err
}
