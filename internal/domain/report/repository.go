package report

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/splus/splus-api/internal/pkg/studioapi"
)

// Repository fetches reports from the backend.
type Repository interface {
	Fetch(ctx context.Context, token string, kind Kind, params url.Values) (json.RawMessage, error)
}

type remoteRepository struct {
	client *studioapi.Client
}

// NewRepository creates a backend-backed report repository.
func NewRepository(client *studioapi.Client) Repository {
	return &remoteRepository{client: client}
}

func (r *remoteRepository) Fetch(ctx context.Context, token string, kind Kind, params url.Values) (json.RawMessage, error) {
	var out json.RawMessage
	err := r.client.Do(ctx, studioapi.Request{
		Path:   "/reports/" + url.PathEscape(string(kind)),
		Query:  params,
		Token:  token,
		Module: "reports",
	}, &out)
	return out, err
}
