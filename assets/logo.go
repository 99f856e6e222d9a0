// Package assets loads the optional decorative files the service can run without.
package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"os"
)

// Logo is an optional resource. The zero value means no logo was loaded.
type Logo struct {
	Data        []byte
	ContentType string
	Width       int
	Height      int
}

func (l Logo) Present() bool {
	return len(l.Data) > 0
}

// LoadLogo reads and decodes the image header at path. On any failure it
// returns the zero Logo and the error, for the caller to log and move on.
func LoadLogo(path string) (Logo, error) {
	if path == "" {
		return Logo{}, fmt.Errorf("load logo: no path configured")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Logo{}, fmt.Errorf("load logo: %w", err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Logo{}, fmt.Errorf("load logo %s: %w", path, err)
	}

	contentType := http.DetectContentType(data)
	if contentType == "application/octet-stream" {
		contentType = "image/" + format
	}
	return Logo{Data: data, ContentType: contentType, Width: cfg.Width, Height: cfg.Height}, nil
}
