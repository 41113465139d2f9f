package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/splus/splus-api/internal/pkg/imaging"
	"github.com/splus/splus-api/internal/pkg/studioapi"
)

func pngData(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

type received struct {
	names  []string
	folder string
	auth   string
}

func newService(t *testing.T, got *received, body string) *Service {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/upload/images" {
			http.NotFound(w, r)
			return
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		for _, fh := range r.MultipartForm.File["images"] {
			got.names = append(got.names, fh.Filename)
		}
		got.folder = r.FormValue("folder")
		got.auth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	client := studioapi.NewClient(server.URL+"/api", time.Second, "", nil)
	return NewService(client, imaging.NewProcessor(imaging.Config{MaxWidth: 50, MaxHeight: 50}))
}

func TestUploadImagesNormalisesAndForwards(t *testing.T) {
	got := &received{}
	svc := newService(t, got, `{"success":true,"data":[{"url":"https://cdn.example.com/a.png"},{"url":"https://cdn.example.com/b.png"}]}`)

	images, err := svc.UploadImages(context.Background(), "tok", "custom-designs", []RawFile{
		{Name: "ref one.PNG", Data: pngData(t, 200, 100)},
		{Name: "b.png", Data: pngData(t, 10, 10)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(images) != 2 || images[0].URL != "https://cdn.example.com/a.png" {
		t.Fatalf("unexpected images: %#v", images)
	}
	if len(got.names) != 2 || got.names[0] != "ref one.png" {
		t.Fatalf("unexpected forwarded files: %#v", got.names)
	}
	if got.folder != "custom-designs" || got.auth != "Bearer tok" {
		t.Fatalf("unexpected form: %#v", got)
	}
}

func TestUploadImagesRejectsBeforeForwarding(t *testing.T) {
	got := &received{}
	svc := newService(t, got, `{"success":true,"data":[]}`)

	if _, err := svc.UploadImages(context.Background(), "tok", "", nil); !errors.Is(err, ErrNoFiles) {
		t.Fatalf("expected ErrNoFiles, got %v", err)
	}
	if _, err := svc.UploadImages(context.Background(), "tok", "", []RawFile{{Name: "notes.txt", Data: []byte("hi")}}); !errors.Is(err, imaging.ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
	if len(got.names) != 0 {
		t.Fatal("expected nothing forwarded")
	}
}

func TestDecodeImagesShapes(t *testing.T) {
	cases := map[string]int{
		`[{"url":"a"},{"url":"b"}]`:   2,
		`["a","b","c"]`:               3,
		`{"urls":["a"]}`:              1,
		`{"images":[{"url":"a"}]}`:    1,
		`{"url":"a","publicId":"p1"}`: 1,
		`null`:                        0,
	}
	for raw, want := range cases {
		images, err := decodeImages(json.RawMessage(raw))
		if err != nil {
			t.Fatalf("%s: %v", raw, err)
		}
		if len(images) != want {
			t.Fatalf("%s: expected %d images, got %d", raw, want, len(images))
		}
	}
}

func TestHandlerImages(t *testing.T) {
	got := &received{}
	h := NewHandler(newService(t, got, `{"success":true,"data":{"urls":["https://cdn.example.com/a.png"]}}`))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, _ := mw.CreateFormFile("image", "a.png")
	_, _ = part.Write(pngData(t, 5, 5))
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload/images", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	h.Images(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(got.names) != 1 {
		t.Fatalf("expected one forwarded file, got %#v", got.names)
	}
}
