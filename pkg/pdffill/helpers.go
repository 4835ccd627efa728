package pdffill

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"

	"golang.org/x/text/encoding/charmap"
)

// normalizeImage fully decodes an image and returns bytes the PDF writer is
// known to accept: JPEG data passes through untouched, everything else is
// re-encoded as PNG. Truncated or corrupt bodies fail the decode here,
// before any drawing state is touched.
func normalizeImage(data []byte) (format string, w, h int, out []byte, err error) {
	img, name, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", 0, 0, nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h = bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return "", 0, 0, nil, fmt.Errorf("image has no pixels")
	}

	if name == "jpeg" {
		return "JPEG", w, h, data, nil
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", 0, 0, nil, fmt.Errorf("failed to re-encode image: %w", err)
	}
	return "PNG", w, h, buf.Bytes(), nil
}

// toLatin1 converts text to ISO-8859-1 to avoid PDF encoding issues,
// falling back to the raw string for unmappable input.
func toLatin1(s string) string {
	latin1, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return s
	}
	return latin1
}

// getLogger returns the io.Writer to use for progress notes based on the
// configuration settings, defaulting to io.Discard if nil.
func getLogger(cfg Config) io.Writer {
	if cfg.Logger == nil {
		return io.Discard
	}
	return cfg.Logger
}
