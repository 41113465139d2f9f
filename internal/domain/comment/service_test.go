package comment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/splus/splus-api/internal/pkg/jwt"
	"github.com/splus/splus-api/internal/pkg/studioapi"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewService(NewRepository(studioapi.NewClient(server.URL+"/api", time.Second, "", nil)))
}

func TestSummarize(t *testing.T) {
	s := Summarize([]Comment{{Rating: 5}, {Rating: 4}, {Rating: 0}, {Rating: 5}, {Rating: 9}})
	if s.Rated != 3 || s.Distribution[5] != 2 || s.Distribution[4] != 1 {
		t.Fatalf("unexpected summary %#v", s)
	}
	if s.AverageRating < 4.66 || s.AverageRating > 4.67 {
		t.Fatalf("unexpected average %v", s.AverageRating)
	}
	if empty := Summarize(nil); empty.AverageRating != 0 || empty.Rated != 0 {
		t.Fatalf("unexpected empty summary %#v", empty)
	}
}

func TestListByTarget(t *testing.T) {
	var path string
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_, _ = w.Write([]byte(`{"success":true,"data":[{"_id":"c1","userId":{"_id":"u1","fullName":"Mai"},"content":"Great light","rating":5}]}`))
	})

	page, summary, err := svc.List(context.Background(), TargetStudio, "s1", studioapi.ListQuery{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if path != "/api/comments/studio/s1" {
		t.Fatalf("unexpected path %s", path)
	}
	if len(page.Items) != 1 || page.Items[0].Author.Name != "Mai" || summary.AverageRating != 5 {
		t.Fatalf("unexpected page %#v %#v", page.Items, summary)
	}

	if _, _, err := svc.List(context.Background(), TargetType("casting"), "x", studioapi.ListQuery{}); !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("expected ErrInvalidTarget, got %v", err)
	}
}

func TestDeleteOwnership(t *testing.T) {
	var deleted int
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`{"success":true,"data":{"_id":"c1","userId":"owner","content":"hi"}}`))
		case http.MethodDelete:
			deleted++
			_, _ = w.Write([]byte(`{"success":true}`))
		}
	})
	ctx := context.Background()

	if err := svc.Delete(ctx, "tok", "intruder", jwt.RoleCustomer, "c1"); !errors.Is(err, ErrNotAuthor) {
		t.Fatalf("expected ErrNotAuthor, got %v", err)
	}
	if deleted != 0 {
		t.Fatal("foreign comment must not be deleted")
	}
	if err := svc.Delete(ctx, "tok", "owner", jwt.RoleCustomer, "c1"); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if err := svc.Delete(ctx, "tok", "someone", jwt.RoleStaff, "c1"); err != nil {
		t.Fatalf("staff delete: %v", err)
	}
	if deleted != 2 {
		t.Fatalf("expected 2 deletes, got %d", deleted)
	}
}
