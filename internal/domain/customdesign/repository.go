package customdesign

import (
	"context"
	"net/http"

	"github.com/splus/splus-api/internal/pkg/studioapi"
)

// Repository reads and writes custom design requests on the backend.
type Repository interface {
	Create(ctx context.Context, token string, req *CreateRequest, images []studioapi.File) (*Request, error)
	ListMine(ctx context.Context, token string, q studioapi.ListQuery) (*studioapi.Page[Request], error)
	List(ctx context.Context, token string, q studioapi.ListQuery) (*studioapi.Page[Request], error)
	Get(ctx context.Context, token, id string) (*Request, error)
	UpdateStatus(ctx context.Context, token, id string, req *StatusRequest) (*Request, error)
	Convert(ctx context.Context, token, id string, req *ConvertRequest) (*ConvertResult, error)
	Delete(ctx context.Context, token, id string) error
}

type remoteRepository struct {
	res *studioapi.Resource[Request]
}

// NewRepository creates a backend-backed custom design repository.
func NewRepository(client *studioapi.Client) Repository {
	return &remoteRepository{res: studioapi.NewResource[Request](client, "/custom-design-requests", "custom-design")}
}

func (r *remoteRepository) Create(ctx context.Context, token string, req *CreateRequest, images []studioapi.File) (*Request, error) {
	var out Request
	if err := r.res.Client().Do(ctx, studioapi.Request{
		Method: http.MethodPost,
		Path:   r.res.Path(),
		Form:   &studioapi.Form{Fields: req.Fields(), Files: images},
		Token:  token,
		Module: r.res.Module(),
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *remoteRepository) ListMine(ctx context.Context, token string, q studioapi.ListQuery) (*studioapi.Page[Request], error) {
	return studioapi.ListAt[Request](ctx, r.res.Client(), studioapi.Request{
		Path:   r.res.Path("my"),
		Token:  token,
		Module: r.res.Module(),
	}, q)
}

func (r *remoteRepository) List(ctx context.Context, token string, q studioapi.ListQuery) (*studioapi.Page[Request], error) {
	return r.res.List(ctx, token, q)
}

func (r *remoteRepository) Get(ctx context.Context, token, id string) (*Request, error) {
	return r.res.Get(ctx, token, id)
}

func (r *remoteRepository) UpdateStatus(ctx context.Context, token, id string, req *StatusRequest) (*Request, error) {
	return r.res.Patch(ctx, token, id, "status", req)
}

func (r *remoteRepository) Convert(ctx context.Context, token, id string, req *ConvertRequest) (*ConvertResult, error) {
	var out ConvertResult
	if err := r.res.Client().Do(ctx, studioapi.Request{
		Method: http.MethodPost,
		Path:   r.res.Path(id, "convert"),
		Body:   req,
		Token:  token,
		Module: r.res.Module(),
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *remoteRepository) Delete(ctx context.Context, token, id string) error {
	return r.res.Delete(ctx, token, id)
}
