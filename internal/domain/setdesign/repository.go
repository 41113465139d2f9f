package setdesign

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/splus/splus-api/internal/pkg/studioapi"
)

// Repository reads and writes set designs on the backend.
type Repository interface {
	List(ctx context.Context, token string, q studioapi.ListQuery) (*studioapi.Page[SetDesign], error)
	Get(ctx context.Context, token, id string) (*SetDesign, error)
	Create(ctx context.Context, token string, req *UpsertRequest) (*SetDesign, error)
	Update(ctx context.Context, token, id string, req *UpsertRequest) (*SetDesign, error)
	Delete(ctx context.Context, token, id string) error
	Chat(ctx context.Context, token string, req *ChatRequest) (AssistantReply, error)
	Generate(ctx context.Context, token string, req *GenerateRequest) (AssistantReply, error)
}

type remoteRepository struct {
	res *studioapi.Resource[SetDesign]
}

// NewRepository creates a backend-backed set design repository.
func NewRepository(client *studioapi.Client) Repository {
	return &remoteRepository{res: studioapi.NewResource[SetDesign](client, "/set-designs", "set-designs")}
}

func (r *remoteRepository) List(ctx context.Context, token string, q studioapi.ListQuery) (*studioapi.Page[SetDesign], error) {
	return r.res.List(ctx, token, q)
}

func (r *remoteRepository) Get(ctx context.Context, token, id string) (*SetDesign, error) {
	return r.res.Get(ctx, token, id)
}

func (r *remoteRepository) Create(ctx context.Context, token string, req *UpsertRequest) (*SetDesign, error) {
	return r.res.Create(ctx, token, req)
}

func (r *remoteRepository) Update(ctx context.Context, token, id string, req *UpsertRequest) (*SetDesign, error) {
	return r.res.Update(ctx, token, id, req)
}

func (r *remoteRepository) Delete(ctx context.Context, token, id string) error {
	return r.res.Delete(ctx, token, id)
}

func (r *remoteRepository) Chat(ctx context.Context, token string, req *ChatRequest) (AssistantReply, error) {
	return r.post(ctx, token, "ai-chat", req)
}

func (r *remoteRepository) Generate(ctx context.Context, token string, req *GenerateRequest) (AssistantReply, error) {
	return r.post(ctx, token, "ai-generate-design", req)
}

func (r *remoteRepository) post(ctx context.Context, token, action string, body any) (AssistantReply, error) {
	var out json.RawMessage
	if err := r.res.Client().Do(ctx, studioapi.Request{
		Method: http.MethodPost,
		Path:   r.res.Path(action),
		Body:   body,
		Token:  token,
		Module: r.res.Module(),
	}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
