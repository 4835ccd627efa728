package pdffill

import (
	"io"
)

// Config holds user options for a fill run.
type Config struct {
	Compress bool      // Compress content streams in the output
	Logger   io.Writer // Destination for per-field progress notes (nil = discard)
	Fetcher  Fetcher   // Retrieves signature images (nil = plain HTTP)
	Font     FontConfig
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() Config {
	return Config{
		Compress: true,
		Logger:   nil,
		Fetcher:  nil, // Fill falls back to NewHTTPFetcher(nil)
		Font:     DefaultFont,
	}
}

// FontConfig contains font settings for text field rendering
type FontConfig struct {
	Name         string  // Font name (e.g., "Helvetica")
	Style        string  // Font style ("", "B", "I", "BI")
	MinSize      float64 // Lower bound for the height-derived text size
	MaxSize      float64 // Upper bound for the height-derived text size
	FallbackSize float64 // Size used for the signature error label
}

// DefaultFont sets the default font to Helvetica, the standard PDF base font
var DefaultFont = FontConfig{
	Name:         "Helvetica",
	Style:        "",
	MinSize:      8,
	MaxSize:      12,
	FallbackSize: 10,
}
