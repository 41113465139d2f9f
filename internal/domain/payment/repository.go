package payment

import (
	"context"
	"net/http"

	"github.com/splus/splus-api/internal/pkg/studioapi"
)

// Repository talks to the backend payment endpoints.
type Repository interface {
	Create(ctx context.Context, token string, req *CreateRequest) (*Payment, error)
	Get(ctx context.Context, token, id string) (*Payment, error)
	ListByBooking(ctx context.Context, token, bookingID string) ([]Payment, error)
}

type remoteRepository struct {
	res *studioapi.Resource[Payment]
}

// NewRepository creates a backend-backed payment repository.
func NewRepository(client *studioapi.Client) Repository {
	return &remoteRepository{res: studioapi.NewResource[Payment](client, "/payments", "payments")}
}

func (r *remoteRepository) Create(ctx context.Context, token string, req *CreateRequest) (*Payment, error) {
	var out Payment
	if err := r.res.Client().Do(ctx, studioapi.Request{
		Method: http.MethodPost,
		Path:   r.res.Path("create"),
		Body:   req,
		Token:  token,
		Module: r.res.Module(),
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *remoteRepository) Get(ctx context.Context, token, id string) (*Payment, error) {
	return r.res.Get(ctx, token, id)
}

func (r *remoteRepository) ListByBooking(ctx context.Context, token, bookingID string) ([]Payment, error) {
	page, err := studioapi.ListAt[Payment](ctx, r.res.Client(), studioapi.Request{
		Path:   r.res.Path("booking", bookingID),
		Token:  token,
		Module: r.res.Module(),
	}, studioapi.ListQuery{})
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}
