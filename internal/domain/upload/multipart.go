package upload

import (
	"fmt"
	"io"
	"net/http"

	"github.com/splus/splus-api/internal/pkg/imaging"
	"github.com/splus/splus-api/internal/pkg/studioapi"
)

// MaxFiles is the per-request image limit.
const MaxFiles = 10

// ReadFiles parses a multipart request and returns files from the named
// fields, in order. Each file is limited to maxBytes.
func ReadFiles(r *http.Request, maxBytes int64, fields ...string) ([]RawFile, error) {
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidUpload, err)
	}
	if r.MultipartForm == nil {
		return nil, nil
	}

	var out []RawFile
	for _, field := range fields {
		for _, fh := range r.MultipartForm.File[field] {
			if len(out) == MaxFiles {
				return nil, ErrTooManyFiles
			}
			if fh.Size > maxBytes {
				return nil, fmt.Errorf("%w: %s", imaging.ErrTooLarge, fh.Filename)
			}
			f, err := fh.Open()
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidUpload, err)
			}
			data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
			f.Close()
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidUpload, err)
			}
			out = append(out, RawFile{Name: fh.Filename, Data: data})
		}
	}
	return out, nil
}

// Prepare normalises files and turns them into multipart parts under field.
func Prepare(p *imaging.Processor, field string, files []RawFile) ([]studioapi.File, error) {
	parts := make([]studioapi.File, 0, len(files))
	for _, f := range files {
		img, err := p.Normalize(f.Data, f.Name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.Name, err)
		}
		parts = append(parts, studioapi.File{
			Field:       field,
			Name:        img.Name,
			ContentType: img.ContentType,
			Data:        img.Data,
		})
	}
	return parts, nil
}
