package promotion

import (
	"context"
	"net/http"

	"github.com/splus/splus-api/internal/pkg/studioapi"
)

// Repository reads and writes promotions on the backend.
type Repository interface {
	ListActive(ctx context.Context, token string, q studioapi.ListQuery) (*studioapi.Page[Rule], error)
	List(ctx context.Context, token string, q studioapi.ListQuery) (*studioapi.Page[Rule], error)
	Get(ctx context.Context, token, id string) (*Rule, error)
	Create(ctx context.Context, token string, req *UpsertRequest) (*Rule, error)
	Update(ctx context.Context, token, id string, req *UpsertRequest) (*Rule, error)
	Delete(ctx context.Context, token, id string) error
	Toggle(ctx context.Context, token, id string) (*Rule, error)
	Apply(ctx context.Context, token string, req *ApplyRequest) (*ApplyResult, error)
}

type remoteRepository struct {
	res *studioapi.Resource[Rule]
}

// NewRepository creates a backend-backed promotion repository.
func NewRepository(client *studioapi.Client) Repository {
	return &remoteRepository{res: studioapi.NewResource[Rule](client, "/promotions", "promotions")}
}

func (r *remoteRepository) ListActive(ctx context.Context, token string, q studioapi.ListQuery) (*studioapi.Page[Rule], error) {
	return studioapi.ListAt[Rule](ctx, r.res.Client(), studioapi.Request{
		Path:   r.res.Path("active"),
		Token:  token,
		Module: r.res.Module(),
	}, q)
}

func (r *remoteRepository) List(ctx context.Context, token string, q studioapi.ListQuery) (*studioapi.Page[Rule], error) {
	return r.res.List(ctx, token, q)
}

func (r *remoteRepository) Get(ctx context.Context, token, id string) (*Rule, error) {
	return r.res.Get(ctx, token, id)
}

func (r *remoteRepository) Create(ctx context.Context, token string, req *UpsertRequest) (*Rule, error) {
	return r.res.Create(ctx, token, req)
}

func (r *remoteRepository) Update(ctx context.Context, token, id string, req *UpsertRequest) (*Rule, error) {
	return r.res.Update(ctx, token, id, req)
}

func (r *remoteRepository) Delete(ctx context.Context, token, id string) error {
	return r.res.Delete(ctx, token, id)
}

func (r *remoteRepository) Toggle(ctx context.Context, token, id string) (*Rule, error) {
	return r.res.Patch(ctx, token, id, "toggle", nil)
}

func (r *remoteRepository) Apply(ctx context.Context, token string, req *ApplyRequest) (*ApplyResult, error) {
	var out ApplyResult
	if err := r.res.Client().Do(ctx, studioapi.Request{
		Method: http.MethodPost,
		Path:   r.res.Path("apply"),
		Body:   req,
		Token:  token,
		Module: r.res.Module(),
	}, &out); err != nil {
		return nil, err
	}
	if out.Code == "" {
		out.Code = req.Code
	}
	return &out, nil
}
