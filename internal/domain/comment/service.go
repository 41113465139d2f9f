package comment

import (
	"context"
	"strings"

	"github.com/splus/splus-api/internal/pkg/jwt"
	"github.com/splus/splus-api/internal/pkg/logger"
	"github.com/splus/splus-api/internal/pkg/studioapi"
)

// Service handles comment business logic
type Service struct {
	repo Repository
}

// NewService creates comment service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns one page of comments on a target with its rating summary.
func (s *Service) List(ctx context.Context, target TargetType, targetID string, q studioapi.ListQuery) (*studioapi.Page[Comment], Summary, error) {
	if !target.Valid() || strings.TrimSpace(targetID) == "" {
		return nil, Summary{}, ErrInvalidTarget
	}
	page, err := s.repo.ListByTarget(ctx, target, targetID, q)
	if err != nil {
		return nil, Summary{}, err
	}
	return page, Summarize(page.Items), nil
}

// Create posts a comment as the caller.
func (s *Service) Create(ctx context.Context, token string, req *CreateRequest) (*Comment, error) {
	req.Content = strings.TrimSpace(req.Content)
	c, err := s.repo.Create(ctx, token, req)
	if err != nil {
		return nil, err
	}
	logger.LogInfo(ctx, "Comment created", "comment_id", c.ID, "target", string(req.TargetType), "target_id", req.TargetID)
	return c, nil
}

// Delete removes a comment. Customers may only delete their own; staff may delete any.
func (s *Service) Delete(ctx context.Context, token, userID, role, id string) error {
	if role != jwt.RoleStaff && role != jwt.RoleAdmin {
		c, err := s.repo.Get(ctx, token, id)
		if err != nil {
			if studioapi.IsNotFound(err) {
				return ErrCommentNotFound
			}
			return err
		}
		if c.Author.ID != userID {
			return ErrNotAuthor
		}
	}

	if err := s.repo.Delete(ctx, token, id); err != nil {
		if studioapi.IsNotFound(err) {
			return ErrCommentNotFound
		}
		return err
	}
	logger.LogInfo(ctx, "Comment deleted", "comment_id", id, "by", userID)
	return nil
}
