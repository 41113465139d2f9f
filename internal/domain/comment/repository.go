package comment

import (
	"context"

	"github.com/splus/splus-api/internal/pkg/studioapi"
)

// Repository reads and writes comments on the backend.
type Repository interface {
	ListByTarget(ctx context.Context, target TargetType, targetID string, q studioapi.ListQuery) (*studioapi.Page[Comment], error)
	Get(ctx context.Context, token, id string) (*Comment, error)
	Create(ctx context.Context, token string, req *CreateRequest) (*Comment, error)
	Delete(ctx context.Context, token, id string) error
}

type remoteRepository struct {
	res *studioapi.Resource[Comment]
}

// NewRepository creates a backend-backed comment repository.
func NewRepository(client *studioapi.Client) Repository {
	return &remoteRepository{res: studioapi.NewResource[Comment](client, "/comments", "comments")}
}

func (r *remoteRepository) ListByTarget(ctx context.Context, target TargetType, targetID string, q studioapi.ListQuery) (*studioapi.Page[Comment], error) {
	return studioapi.ListAt[Comment](ctx, r.res.Client(), studioapi.Request{
		Path:   r.res.Path(string(target), targetID),
		Module: r.res.Module(),
	}, q)
}

func (r *remoteRepository) Get(ctx context.Context, token, id string) (*Comment, error) {
	return r.res.Get(ctx, token, id)
}

func (r *remoteRepository) Create(ctx context.Context, token string, req *CreateRequest) (*Comment, error) {
	return r.res.Create(ctx, token, req)
}

func (r *remoteRepository) Delete(ctx context.Context, token, id string) error {
	return r.res.Delete(ctx, token, id)
}
