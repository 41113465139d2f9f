package addon

import (
	"context"

	"github.com/splus/splus-api/internal/pkg/studioapi"
)

// Repository reads and writes add-on services on the backend.
type Repository interface {
	List(ctx context.Context, token string, q studioapi.ListQuery) (*studioapi.Page[Addon], error)
	Get(ctx context.Context, token, id string) (*Addon, error)
	Create(ctx context.Context, token string, req *UpsertRequest) (*Addon, error)
	Update(ctx context.Context, token, id string, req *UpsertRequest) (*Addon, error)
	Delete(ctx context.Context, token, id string) error
}

type remoteRepository struct {
	res *studioapi.Resource[Addon]
}

// NewRepository creates a backend-backed service repository.
func NewRepository(client *studioapi.Client) Repository {
	return &remoteRepository{res: studioapi.NewResource[Addon](client, "/services", "services")}
}

func (r *remoteRepository) List(ctx context.Context, token string, q studioapi.ListQuery) (*studioapi.Page[Addon], error) {
	return r.res.List(ctx, token, q)
}

func (r *remoteRepository) Get(ctx context.Context, token, id string) (*Addon, error) {
	return r.res.Get(ctx, token, id)
}

func (r *remoteRepository) Create(ctx context.Context, token string, req *UpsertRequest) (*Addon, error) {
	return r.res.Create(ctx, token, req)
}

func (r *remoteRepository) Update(ctx context.Context, token, id string, req *UpsertRequest) (*Addon, error) {
	return r.res.Update(ctx, token, id, req)
}

func (r *remoteRepository) Delete(ctx context.Context, token, id string) error {
	return r.res.Delete(ctx, token, id)
}
