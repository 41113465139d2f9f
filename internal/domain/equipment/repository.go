package equipment

import (
	"context"

	"github.com/splus/splus-api/internal/pkg/studioapi"
)

// Repository reads and writes equipment on the backend.
type Repository interface {
	List(ctx context.Context, token string, q studioapi.ListQuery) (*studioapi.Page[Equipment], error)
	Get(ctx context.Context, token, id string) (*Equipment, error)
	Create(ctx context.Context, token string, req *UpsertRequest) (*Equipment, error)
	Update(ctx context.Context, token, id string, req *UpsertRequest) (*Equipment, error)
	Delete(ctx context.Context, token, id string) error
}

type remoteRepository struct {
	res *studioapi.Resource[Equipment]
}

// NewRepository creates a backend-backed equipment repository.
func NewRepository(client *studioapi.Client) Repository {
	return &remoteRepository{res: studioapi.NewResource[Equipment](client, "/equipment", "equipment")}
}

func (r *remoteRepository) List(ctx context.Context, token string, q studioapi.ListQuery) (*studioapi.Page[Equipment], error) {
	return r.res.List(ctx, token, q)
}

func (r *remoteRepository) Get(ctx context.Context, token, id string) (*Equipment, error) {
	return r.res.Get(ctx, token, id)
}

func (r *remoteRepository) Create(ctx context.Context, token string, req *UpsertRequest) (*Equipment, error) {
	return r.res.Create(ctx, token, req)
}

func (r *remoteRepository) Update(ctx context.Context, token, id string, req *UpsertRequest) (*Equipment, error) {
	return r.res.Update(ctx, token, id, req)
}

func (r *remoteRepository) Delete(ctx context.Context, token, id string) error {
	return r.res.Delete(ctx, token, id)
}
