package upload

import (
	"bytes"
	"encoding/json"
)

// Image is one stored image as the backend reports it.
type Image struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}

// RawFile is an inbound multipart file before normalisation.
type RawFile struct {
	Name string
	Data []byte
}

// decodeImages accepts a list of objects, a list of URLs, or an object
// wrapping either under "images", "urls" or "files".
func decodeImages(raw json.RawMessage) ([]Image, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	if raw[0] == '{' {
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(raw, &wrapper); err != nil {
			return nil, err
		}
		for _, key := range []string{"images", "urls", "files"} {
			if inner, ok := wrapper[key]; ok {
				return decodeImages(inner)
			}
		}
		var one Image
		if err := json.Unmarshal(raw, &one); err != nil {
			return nil, err
		}
		if one.URL == "" {
			return nil, nil
		}
		return []Image{one}, nil
	}

	var objects []Image
	if err := json.Unmarshal(raw, &objects); err == nil {
		return objects, nil
	}
	var urls []string
	if err := json.Unmarshal(raw, &urls); err != nil {
		return nil, err
	}
	out := make([]Image, 0, len(urls))
	for _, u := range urls {
		out = append(out, Image{URL: u})
	}
	return out, nil
}

// URLs lists the image URLs.
func URLs(images []Image) []string {
	out := make([]string, 0, len(images))
	for _, img := range images {
		out = append(out, img.URL)
	}
	return out
}
