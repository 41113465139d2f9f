// Package imaging normalises customer reference images before they are forwarded upstream.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

var (
	ErrUnsupportedType = errors.New("unsupported image type")
	ErrTooLarge        = errors.New("image is too large")
)

// Image is a normalised upload.
type Image struct {
	Name        string
	ContentType string
	Data        []byte
	Width       int
	Height      int
	Resized     bool
}

// Config for image processing
type Config struct {
	MaxWidth  int   // default 1920
	MaxHeight int   // default 1920
	Quality   int   // JPEG quality 1-100 (default 85)
	MaxBytes  int64 // upload limit before processing (default 10MB)
}

// DefaultConfig returns default processing config
func DefaultConfig() Config {
	return Config{
		MaxWidth:  1920,
		MaxHeight: 1920,
		Quality:   85,
		MaxBytes:  MaxFileSize,
	}
}

// MaxFileSize in bytes (10MB)
const MaxFileSize int64 = 10 << 20

// Processor fits images into the configured bounds.
type Processor struct {
	config Config
}

// NewProcessor creates image processor. Zero fields fall back to DefaultConfig.
func NewProcessor(config Config) *Processor {
	def := DefaultConfig()
	if config.MaxWidth <= 0 {
		config.MaxWidth = def.MaxWidth
	}
	if config.MaxHeight <= 0 {
		config.MaxHeight = def.MaxHeight
	}
	if config.Quality <= 0 || config.Quality > 100 {
		config.Quality = def.Quality
	}
	if config.MaxBytes <= 0 {
		config.MaxBytes = def.MaxBytes
	}
	return &Processor{config: config}
}

// MaxBytes is the accepted upload size.
func (p *Processor) MaxBytes() int64 {
	return p.config.MaxBytes
}

// Normalize applies EXIF orientation, fits the image into the configured box
// and re-encodes it. WebP passes through untouched.
func (p *Processor) Normalize(data []byte, filename string) (*Image, error) {
	if int64(len(data)) > p.config.MaxBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, len(data))
	}
	if !ValidateType(filename) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, filepath.Ext(filename))
	}

	sniffed := http.DetectContentType(data)
	if !strings.HasPrefix(sniffed, "image/") {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, sniffed)
	}
	if sniffed == "image/webp" {
		return &Image{Name: filename, ContentType: sniffed, Data: data}, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	out := &Image{Width: img.Bounds().Dx(), Height: img.Bounds().Dy()}
	if out.Width > p.config.MaxWidth || out.Height > p.config.MaxHeight {
		img = imaging.Fit(img, p.config.MaxWidth, p.config.MaxHeight, imaging.Lanczos)
		out.Width, out.Height = img.Bounds().Dx(), img.Bounds().Dy()
		out.Resized = true
	}

	format := imaging.JPEG
	out.ContentType = "image/jpeg"
	if sniffed == "image/png" {
		format = imaging.PNG
		out.ContentType = "image/png"
	}
	out.Data, err = p.encode(img, format)
	if err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	out.Name = renameExt(filename, format)
	return out, nil
}

// ValidateType checks if file is a valid image type
func ValidateType(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return true
	default:
		return false
	}
}

func (p *Processor) encode(img image.Image, format imaging.Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(p.config.Quality)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renameExt(filename string, format imaging.Format) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	if base == "" || base == "." {
		base = "image"
	}
	if format == imaging.PNG {
		return base + ".png"
	}
	return base + ".jpg"
}
