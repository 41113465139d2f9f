package studioapi

import (
	"context"
	"net/http"
	"net/url"
	"testing"
)

func TestDecodePageShapes(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		items int
		page  int
		limit int
		total int
	}{
		{"data with pagination", `{"data":[{"_id":"a"},{"_id":"b"}],"pagination":{"total":12,"page":2,"limit":2}}`, 2, 2, 2, 12},
		{"items with total", `{"items":[{"_id":"a"}],"total":7}`, 1, 1, 10, 7},
		{"bare array", `[{"_id":"a"},{"_id":"b"},{"_id":"c"}]`, 3, 1, 10, 3},
		{"envelope around items", `{"success":true,"data":{"items":[{"_id":"a"}],"total":4,"page":3}}`, 1, 3, 10, 4},
		{"envelope around array", `{"success":true,"data":[{"_id":"a"}]}`, 1, 1, 10, 1},
		{"items preferred over data", `{"items":[{"_id":"a"}],"data":[{"_id":"x"},{"_id":"y"}]}`, 1, 1, 10, 1},
		{"named collection", `{"success":true,"data":{"bookings":[{"_id":"a"},{"_id":"b"}],"total":9}}`, 2, 1, 10, 9},
		{"two named collections", `{"studios":[{"_id":"a"}],"tags":[{"_id":"t"}]}`, 0, 1, 10, 0},
		{"no list at all", `{"success":true,"data":{"message":"ok"}}`, 0, 1, 10, 0},
		{"empty body", ``, 0, 1, 10, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, err := DecodePage[studio]([]byte(tc.body), ListQuery{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if page.Items == nil {
				t.Fatal("items must never be nil")
			}
			if len(page.Items) != tc.items || page.Page != tc.page || page.Limit != tc.limit || page.Total != tc.total {
				t.Fatalf("got items=%d page=%d limit=%d total=%d", len(page.Items), page.Page, page.Limit, page.Total)
			}
		})
	}
}

func TestListQueryDefaults(t *testing.T) {
	v := ListQuery{Params: url.Values{"search": {"white"}, "city": {""}}}.Values()
	if v.Get("page") != "1" || v.Get("limit") != "10" {
		t.Fatalf("expected defaults, got %s", v.Encode())
	}
	if v.Get("search") != "white" {
		t.Fatalf("expected search passthrough, got %s", v.Encode())
	}
	if _, ok := v["city"]; ok {
		t.Fatal("empty params must be dropped")
	}
}

func TestResourceListSendsPaging(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") != "2" || r.URL.Query().Get("limit") != "5" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"success":true,"data":[{"_id":"a"}],"pagination":{"total":6}}`))
	})

	res := NewResource[studio](client, "studios", "studios")
	page, err := res.List(context.Background(), "", ListQuery{Page: 2, Limit: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 6 || page.Page != 2 || page.Limit != 5 || page.Items[0].ID != "a" {
		t.Fatalf("unexpected page: %#v", page)
	}
}

func TestResourcePathEscapes(t *testing.T) {
	res := NewResource[studio](nil, "/set-designs/", "set-designs")
	if got := res.Path("a b", "", "status"); got != "/set-designs/a%20b/status" {
		t.Fatalf("unexpected path %q", got)
	}
}
