package studioapi

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Page is the single list shape handed to the UI, whatever the backend returned.
type Page[T any] struct {
	Items []T `json:"items"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// ListQuery carries paging plus resource-specific filters.
type ListQuery struct {
	Page   int
	Limit  int
	Params url.Values
}

// Values returns query parameters with page and limit defaulted.
func (q ListQuery) Values() url.Values {
	v := url.Values{}
	for k, vals := range q.Params {
		for _, val := range vals {
			if val != "" {
				v.Add(k, val)
			}
		}
	}
	page, limit := q.normalized()
	v.Set("page", strconv.Itoa(page))
	v.Set("limit", strconv.Itoa(limit))
	return v
}

func (q ListQuery) normalized() (int, int) {
	page, limit := q.Page, q.Limit
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return page, limit
}

type pageMeta struct {
	Page  *int
	Limit *int
	Total *int
}

func (m *pageMeta) merge(other pageMeta) {
	if other.Page != nil {
		m.Page = other.Page
	}
	if other.Limit != nil {
		m.Limit = other.Limit
	}
	if other.Total != nil {
		m.Total = other.Total
	}
}

type metaFields struct {
	Page       *int `json:"page"`
	Limit      *int `json:"limit"`
	Total      *int `json:"total"`
	TotalItems *int `json:"totalItems"`
}

func (f metaFields) meta() pageMeta {
	m := pageMeta{Page: f.Page, Limit: f.Limit, Total: f.Total}
	if m.Total == nil {
		m.Total = f.TotalItems
	}
	return m
}

// DecodePage normalizes a raw list payload into Page[T]. The fallback chain is:
// explicit items array, else a data array, else the payload itself when it is an array,
// else empty. Nested {success, data} envelopes are searched the same way.
func DecodePage[T any](raw []byte, q ListQuery) (*Page[T], error) {
	itemsRaw, meta := locateItems(bytes.TrimSpace(raw))

	page := &Page[T]{Items: []T{}}
	if len(itemsRaw) > 0 {
		if err := json.Unmarshal(itemsRaw, &page.Items); err != nil {
			return nil, err
		}
	}

	page.Page, page.Limit = q.normalized()
	if meta.Page != nil && *meta.Page > 0 {
		page.Page = *meta.Page
	}
	if meta.Limit != nil && *meta.Limit > 0 {
		page.Limit = *meta.Limit
	}
	page.Total = len(page.Items)
	if meta.Total != nil && *meta.Total >= 0 {
		page.Total = *meta.Total
	}
	return page, nil
}

func locateItems(raw json.RawMessage) (json.RawMessage, pageMeta) {
	if len(raw) == 0 {
		return nil, pageMeta{}
	}
	switch raw[0] {
	case '[':
		return raw, pageMeta{}
	case '{':
	default:
		return nil, pageMeta{}
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, pageMeta{}
	}

	var meta pageMeta
	var top metaFields
	if err := json.Unmarshal(raw, &top); err == nil {
		meta = top.meta()
	}
	if p, ok := obj["pagination"]; ok {
		var pf metaFields
		if err := json.Unmarshal(p, &pf); err == nil {
			meta.merge(pf.meta())
		}
	}

	if items, ok := obj["items"]; ok && isArray(items) {
		return items, meta
	}
	if data, ok := obj["data"]; ok {
		data = bytes.TrimSpace(data)
		if isArray(data) {
			return data, meta
		}
		if len(data) > 0 && data[0] == '{' {
			inner, innerMeta := locateItems(data)
			meta.merge(innerMeta)
			return inner, meta
		}
	}

	// Named collections such as {"bookings": [...]}: accept a single array field.
	var found json.RawMessage
	for _, v := range obj {
		if isArray(v) {
			if found != nil {
				return nil, meta
			}
			found = v
		}
	}
	return found, meta
}

func isArray(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '['
}
