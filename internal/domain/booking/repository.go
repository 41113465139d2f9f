package booking

import (
	"context"
	"net/http"

	"github.com/splus/splus-api/internal/pkg/studioapi"
)

// Repository reads and writes bookings on the backend.
type Repository interface {
	Create(ctx context.Context, token string, req *CreateRequest) (*Booking, error)
	Get(ctx context.Context, token, id string) (*Booking, error)
	ListMine(ctx context.Context, token string, q studioapi.ListQuery) (*studioapi.Page[Booking], error)
	List(ctx context.Context, token string, q studioapi.ListQuery) (*studioapi.Page[Booking], error)
	Cancel(ctx context.Context, token, id string, req *CancelRequest) (*Booking, error)
	UpdateStatus(ctx context.Context, token, id string, req *StatusRequest) (*Booking, error)
	RequestRefund(ctx context.Context, token, id string, req *RefundRequest) (*Booking, error)
	ApproveRefund(ctx context.Context, token, id string) (*Booking, error)
	RejectRefund(ctx context.Context, token, id string, req *RefundDecision) (*Booking, error)
}

type remoteRepository struct {
	res *studioapi.Resource[Booking]
}

// NewRepository creates a backend-backed booking repository.
func NewRepository(client *studioapi.Client) Repository {
	return &remoteRepository{res: studioapi.NewResource[Booking](client, "/bookings", "bookings")}
}

func (r *remoteRepository) Create(ctx context.Context, token string, req *CreateRequest) (*Booking, error) {
	return r.res.Create(ctx, token, req)
}

func (r *remoteRepository) Get(ctx context.Context, token, id string) (*Booking, error) {
	return r.res.Get(ctx, token, id)
}

func (r *remoteRepository) ListMine(ctx context.Context, token string, q studioapi.ListQuery) (*studioapi.Page[Booking], error) {
	return studioapi.ListAt[Booking](ctx, r.res.Client(), studioapi.Request{
		Path:   r.res.Path("my"),
		Token:  token,
		Module: r.res.Module(),
	}, q)
}

func (r *remoteRepository) List(ctx context.Context, token string, q studioapi.ListQuery) (*studioapi.Page[Booking], error) {
	return r.res.List(ctx, token, q)
}

func (r *remoteRepository) Cancel(ctx context.Context, token, id string, req *CancelRequest) (*Booking, error) {
	return r.res.Patch(ctx, token, id, "cancel", req)
}

func (r *remoteRepository) UpdateStatus(ctx context.Context, token, id string, req *StatusRequest) (*Booking, error) {
	return r.res.Patch(ctx, token, id, "status", req)
}

func (r *remoteRepository) RequestRefund(ctx context.Context, token, id string, req *RefundRequest) (*Booking, error) {
	var out Booking
	if err := r.res.Client().Do(ctx, studioapi.Request{
		Method: http.MethodPost,
		Path:   r.res.Path(id, "refund-request"),
		Body:   req,
		Token:  token,
		Module: r.res.Module(),
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *remoteRepository) ApproveRefund(ctx context.Context, token, id string) (*Booking, error) {
	return r.res.Patch(ctx, token, id, "refund/approve", nil)
}

func (r *remoteRepository) RejectRefund(ctx context.Context, token, id string, req *RefundDecision) (*Booking, error) {
	return r.res.Patch(ctx, token, id, "refund/reject", req)
}
