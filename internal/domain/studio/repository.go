package studio

import (
	"context"

	"github.com/splus/splus-api/internal/pkg/studioapi"
)

// Repository reads and writes studios on the backend.
type Repository interface {
	List(ctx context.Context, token string, q studioapi.ListQuery) (*studioapi.Page[Studio], error)
	Get(ctx context.Context, token, id string) (*Studio, error)
	Create(ctx context.Context, token string, req *UpsertRequest) (*Studio, error)
	Update(ctx context.Context, token, id string, req *UpsertRequest) (*Studio, error)
	Delete(ctx context.Context, token, id string) error
}

type remoteRepository struct {
	res *studioapi.Resource[Studio]
}

// NewRepository creates a backend-backed studio repository.
func NewRepository(client *studioapi.Client) Repository {
	return &remoteRepository{res: studioapi.NewResource[Studio](client, "/studios", "studios")}
}

func (r *remoteRepository) List(ctx context.Context, token string, q studioapi.ListQuery) (*studioapi.Page[Studio], error) {
	return r.res.List(ctx, token, q)
}

func (r *remoteRepository) Get(ctx context.Context, token, id string) (*Studio, error) {
	return r.res.Get(ctx, token, id)
}

func (r *remoteRepository) Create(ctx context.Context, token string, req *UpsertRequest) (*Studio, error) {
	return r.res.Create(ctx, token, req)
}

func (r *remoteRepository) Update(ctx context.Context, token, id string, req *UpsertRequest) (*Studio, error) {
	return r.res.Update(ctx, token, id, req)
}

func (r *remoteRepository) Delete(ctx context.Context, token, id string) error {
	return r.res.Delete(ctx, token, id)
}
