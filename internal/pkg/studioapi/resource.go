package studioapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// Resource is the uniform remote module for one backend entity collection.
type Resource[T any] struct {
	client *Client
	path   string
	module string
}

// NewResource binds a resource module to a base path such as "/studios".
func NewResource[T any](client *Client, path, module string) *Resource[T] {
	return &Resource[T]{
		client: client,
		path:   "/" + strings.Trim(path, "/"),
		module: module,
	}
}

// Client returns the underlying backend client.
func (r *Resource[T]) Client() *Client {
	return r.client
}

// Module returns the module name used for default messages.
func (r *Resource[T]) Module() string {
	return r.module
}

// Path joins the base path with escaped segments.
func (r *Resource[T]) Path(segments ...string) string {
	p := r.path
	for _, s := range segments {
		if s == "" {
			continue
		}
		p += "/" + url.PathEscape(s)
	}
	return p
}

// List fetches one normalized page.
func (r *Resource[T]) List(ctx context.Context, token string, q ListQuery) (*Page[T], error) {
	return ListAt[T](ctx, r.client, Request{
		Path:   r.path,
		Token:  token,
		Module: r.module,
	}, q)
}

// Get fetches a single record by id.
func (r *Resource[T]) Get(ctx context.Context, token, id string) (*T, error) {
	var out T
	if err := r.client.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   r.Path(id),
		Token:  token,
		Module: r.module,
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create posts body and returns the authoritative created record.
func (r *Resource[T]) Create(ctx context.Context, token string, body any) (*T, error) {
	var out T
	if err := r.client.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   r.path,
		Body:   body,
		Token:  token,
		Module: r.module,
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces record id with body.
func (r *Resource[T]) Update(ctx context.Context, token, id string, body any) (*T, error) {
	var out T
	if err := r.client.Do(ctx, Request{
		Method: http.MethodPut,
		Path:   r.Path(id),
		Body:   body,
		Token:  token,
		Module: r.module,
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Patch sends a partial update to id, optionally to a sub path like "status"
// or "refund/approve".
func (r *Resource[T]) Patch(ctx context.Context, token, id, action string, body any) (*T, error) {
	var out T
	if err := r.client.Do(ctx, Request{
		Method: http.MethodPatch,
		Path:   r.Path(append([]string{id}, strings.Split(action, "/")...)...),
		Body:   body,
		Token:  token,
		Module: r.module,
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes record id.
func (r *Resource[T]) Delete(ctx context.Context, token, id string) error {
	return r.client.Do(ctx, Request{
		Method: http.MethodDelete,
		Path:   r.Path(id),
		Token:  token,
		Module: r.module,
	}, nil)
}

// ListAt fetches a list from an arbitrary request and normalizes it.
func ListAt[T any](ctx context.Context, c *Client, req Request, q ListQuery) (*Page[T], error) {
	req.Method = http.MethodGet
	query := q.Values()
	for k, vals := range req.Query {
		query[k] = vals
	}
	req.Query = query

	raw, err := c.Raw(ctx, req)
	if err != nil {
		return nil, err
	}
	page, err := DecodePage[T](raw, q)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: c.Message(req.Module), Err: err}
	}
	return page, nil
}
