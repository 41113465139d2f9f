package upload

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/splus/splus-api/internal/pkg/imaging"
	"github.com/splus/splus-api/internal/pkg/logger"
	"github.com/splus/splus-api/internal/pkg/studioapi"
)

// Service forwards normalised images to the backend image store.
type Service struct {
	client    *studioapi.Client
	processor *imaging.Processor
}

// NewService creates upload service
func NewService(client *studioapi.Client, processor *imaging.Processor) *Service {
	return &Service{client: client, processor: processor}
}

// Processor exposes the image processor for handlers that read files themselves.
func (s *Service) Processor() *imaging.Processor {
	return s.processor
}

// UploadImages normalises files and posts them to /upload/images.
func (s *Service) UploadImages(ctx context.Context, token, folder string, files []RawFile) ([]Image, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	if len(files) > MaxFiles {
		return nil, ErrTooManyFiles
	}

	parts, err := Prepare(s.processor, "images", files)
	if err != nil {
		return nil, err
	}

	form := &studioapi.Form{Files: parts}
	if folder != "" {
		form.Fields = map[string]string{"folder": folder}
	}

	var raw json.RawMessage
	if err := s.client.Do(ctx, studioapi.Request{
		Method: http.MethodPost,
		Path:   "/upload/images",
		Form:   form,
		Token:  token,
		Module: "upload",
	}, &raw); err != nil {
		return nil, err
	}

	images, err := decodeImages(raw)
	if err != nil {
		return nil, &studioapi.Error{Kind: studioapi.KindNetwork, Message: s.client.Message("upload"), Err: err}
	}
	logger.LogInfo(ctx, "Images uploaded", "count", len(images), "folder", folder)
	return images, nil
}
