package pdffill

import (
	"net/url"
)

// Field kinds commonly supplied by callers. Any other label is accepted and
// treated as text unless the value is an image URL.
const (
	KindText          = "text"
	KindSignature     = "signature"
	KindSignatureDate = "signatureDate"
)

// Rect is a field rectangle in Anvil coordinates: origin at the page's
// top-left corner, y increasing downward, measured in PDF points.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Field is one caller-supplied instruction to place content on a page.
type Field struct {
	Name  string `json:"field_name"`
	Kind  string `json:"field_type"`
	Page  int    `json:"field_page_num"`
	Rect  Rect   `json:"field_rect"`
	Value string `json:"field_answer"`
}

type contentKind int

const (
	contentText contentKind = iota
	contentImage
)

// resolvedField carries the classification decided once at ingestion, so
// the renderer never re-inspects the raw value.
type resolvedField struct {
	Field
	content contentKind
	src     string // image source URL, set when content == contentImage
}

// resolveFields classifies every field up front. A value that parses as an
// absolute URL with a host is an image reference regardless of the declared
// kind; everything else, including signature kinds without a URL, is text.
func resolveFields(fields []Field) []resolvedField {
	resolved := make([]resolvedField, 0, len(fields))
	for _, field := range fields {
		rf := resolvedField{Field: field, content: contentText}
		if u, err := url.Parse(field.Value); err == nil && u.IsAbs() && u.Host != "" {
			rf.content = contentImage
			rf.src = field.Value
		}
		resolved = append(resolved, rf)
	}
	return resolved
}
