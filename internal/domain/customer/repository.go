package customer

import (
	"context"
	"net/http"

	"github.com/splus/splus-api/internal/pkg/studioapi"
)

// Repository reads customers and the caller's profile from the backend.
type Repository interface {
	List(ctx context.Context, token string, q studioapi.ListQuery) (*studioapi.Page[Customer], error)
	Get(ctx context.Context, token, id string) (*Customer, error)
	UpdateStatus(ctx context.Context, token, id string, req *StatusRequest) (*Customer, error)
	Me(ctx context.Context, token string) (*Customer, error)
	UpdateMe(ctx context.Context, token string, req *ProfileRequest) (*Customer, error)
}

type remoteRepository struct {
	customers *studioapi.Resource[Customer]
	users     *studioapi.Resource[Customer]
}

// NewRepository creates a backend-backed customer repository.
func NewRepository(client *studioapi.Client) Repository {
	return &remoteRepository{
		customers: studioapi.NewResource[Customer](client, "/admin/customers", "customers"),
		users:     studioapi.NewResource[Customer](client, "/users", "users"),
	}
}

func (r *remoteRepository) List(ctx context.Context, token string, q studioapi.ListQuery) (*studioapi.Page[Customer], error) {
	return r.customers.List(ctx, token, q)
}

func (r *remoteRepository) Get(ctx context.Context, token, id string) (*Customer, error) {
	return r.customers.Get(ctx, token, id)
}

func (r *remoteRepository) UpdateStatus(ctx context.Context, token, id string, req *StatusRequest) (*Customer, error) {
	return r.customers.Patch(ctx, token, id, "status", req)
}

func (r *remoteRepository) Me(ctx context.Context, token string) (*Customer, error) {
	return r.users.Get(ctx, token, "me")
}

func (r *remoteRepository) UpdateMe(ctx context.Context, token string, req *ProfileRequest) (*Customer, error) {
	var out Customer
	if err := r.users.Client().Do(ctx, studioapi.Request{
		Method: http.MethodPut,
		Path:   r.users.Path("me"),
		Body:   req,
		Token:  token,
		Module: r.users.Module(),
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
