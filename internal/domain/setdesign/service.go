package setdesign

import (
	"context"

	"github.com/splus/splus-api/internal/pkg/logger"
	"github.com/splus/splus-api/internal/pkg/store"
	"github.com/splus/splus-api/internal/pkg/studioapi"
)

// Service handles set design logic. The first catalogue page is kept in a
// store slot so the public listing survives a backend blip.
type Service struct {
	repo     Repository
	featured *store.Slot[SetDesign]
}

// NewService creates a new set design service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, featured: store.NewSlot[SetDesign]()}
}

// List returns one page of set designs. When the unfiltered first page cannot
// be fetched, the last fetched copy is served instead.
func (s *Service) List(ctx context.Context, token string, q studioapi.ListQuery) (*studioapi.Page[SetDesign], error) {
	firstPage := len(q.Params) == 0 && q.Page <= 1

	var seq uint64
	if firstPage {
		seq = s.featured.Begin()
	}
	page, err := s.repo.List(ctx, token, q)
	if err != nil {
		if firstPage && s.featured.Loaded() && studioapi.IsKind(err, studioapi.KindNetwork) {
			logger.LogWarn(ctx, "Serving cached set designs", "error", err.Error())
			items := s.featured.Items()
			return &studioapi.Page[SetDesign]{Items: items, Page: 1, Limit: len(items), Total: len(items)}, nil
		}
		return nil, err
	}
	if firstPage {
		s.featured.Commit(seq, page.Items)
	}
	return page, nil
}

// Get returns a set design.
func (s *Service) Get(ctx context.Context, token, id string) (*SetDesign, error) {
	sd, err := s.repo.Get(ctx, token, id)
	if studioapi.IsNotFound(err) {
		return nil, ErrSetDesignNotFound
	}
	return sd, err
}

// Create creates a set design.
func (s *Service) Create(ctx context.Context, token string, req *UpsertRequest) (*SetDesign, error) {
	sd, err := s.repo.Create(ctx, token, req)
	if err != nil {
		return nil, err
	}
	s.Remember(*sd)
	return sd, nil
}

// Update replaces a set design.
func (s *Service) Update(ctx context.Context, token, id string, req *UpsertRequest) (*SetDesign, error) {
	sd, err := s.repo.Update(ctx, token, id, req)
	if err != nil {
		if studioapi.IsNotFound(err) {
			return nil, ErrSetDesignNotFound
		}
		return nil, err
	}
	s.Remember(*sd)
	return sd, nil
}

// Delete removes a set design.
func (s *Service) Delete(ctx context.Context, token, id string) error {
	if err := s.repo.Delete(ctx, token, id); err != nil {
		if studioapi.IsNotFound(err) {
			return ErrSetDesignNotFound
		}
		return err
	}
	s.featured.Remove(id)
	return nil
}

// Remember patches the cached first page with an authoritative record,
// for example one created by converting a custom request.
func (s *Service) Remember(sd SetDesign) {
	if s.featured.Loaded() {
		s.featured.Upsert(sd)
	}
}

// Chat forwards a conversation to the design assistant.
func (s *Service) Chat(ctx context.Context, token string, req *ChatRequest) (AssistantReply, error) {
	return s.repo.Chat(ctx, token, req)
}

// Generate asks the design assistant for a concept.
func (s *Service) Generate(ctx context.Context, token string, req *GenerateRequest) (AssistantReply, error) {
	return s.repo.Generate(ctx, token, req)
}
