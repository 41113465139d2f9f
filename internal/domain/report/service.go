package report

import (
	"context"
	"net/url"
	"time"

	"github.com/splus/splus-api/internal/pkg/logger"
)

var kinds = map[Kind]bool{
	KindRevenue:  true,
	KindBookings: true,
	KindStudios:  true,
	KindOverview: true,
}

// Service resolves report ranges and fetches reports.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates report service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Get fetches one report. Filters other than the range are forwarded as is.
func (s *Service) Get(ctx context.Context, token string, kind Kind, q url.Values) (*Report, error) {
	if !kinds[kind] {
		return nil, ErrUnknownKind
	}
	rng, err := ParseRange(q, s.now())
	if err != nil {
		return nil, err
	}

	params := rng.Values()
	for _, k := range []string{"studioId", "groupBy", "status"} {
		if v := q.Get(k); v != "" {
			params.Set(k, v)
		}
	}

	data, err := s.repo.Fetch(ctx, token, kind, params)
	if err != nil {
		logger.LogWarn(ctx, "Report fetch failed", "kind", string(kind), "error", err.Error())
		return nil, err
	}
	return &Report{
		Kind: kind,
		From: rng.From.Format(dateLayout),
		To:   rng.To.Format(dateLayout),
		Data: data,
	}, nil
}
