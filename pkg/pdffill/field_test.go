package pdffill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		field     Field
		wantKind  contentKind
		wantSrc   string
	}{
		{
			name:     "plain text",
			field:    Field{Name: "full_name", Kind: KindText, Value: "Jane Doe"},
			wantKind: contentText,
		},
		{
			name:     "https url is an image",
			field:    Field{Name: "sig", Kind: KindSignature, Value: "https://example.com/sig.png"},
			wantKind: contentImage,
			wantSrc:  "https://example.com/sig.png",
		},
		{
			name:     "url overrides declared text kind",
			field:    Field{Name: "sig", Kind: KindText, Value: "http://example.com/sig.png"},
			wantKind: contentImage,
			wantSrc:  "http://example.com/sig.png",
		},
		{
			name:     "signature kind without url stays text",
			field:    Field{Name: "sig", Kind: KindSignature, Value: "John Hancock"},
			wantKind: contentText,
		},
		{
			name:     "signature date without url stays text",
			field:    Field{Name: "sig_date", Kind: KindSignatureDate, Value: "2026-01-02"},
			wantKind: contentText,
		},
		{
			name:     "scheme without host stays text",
			field:    Field{Name: "odd", Kind: KindText, Value: "mailto:jane@example.com"},
			wantKind: contentText,
		},
		{
			name:     "relative path stays text",
			field:    Field{Name: "odd", Kind: KindSignature, Value: "/images/sig.png"},
			wantKind: contentText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := resolveFields([]Field{tt.field})
			assert.Len(t, resolved, 1)
			assert.Equal(t, tt.wantKind, resolved[0].content)
			assert.Equal(t, tt.wantSrc, resolved[0].src)
		})
	}
}

func TestResolveFieldsPreservesOrder(t *testing.T) {
	t.Parallel()

	fields := []Field{
		{Name: "first", Value: "a"},
		{Name: "second", Value: "b"},
		{Name: "third", Value: "c"},
	}
	resolved := resolveFields(fields)
	assert.Len(t, resolved, 3)
	for i, field := range fields {
		assert.Equal(t, field.Name, resolved[i].Name)
	}
}
