package pdffill

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"codeberg.org/go-pdf/fpdf"
	"codeberg.org/go-pdf/fpdf/contrib/gofpdi"
)

// composite rebuilds the source document page by page and stamps every
// field overlay on top of its page's original content in input order, each
// one visually above the previous. Pages without fields are imported
// untouched, and the output always has exactly as many pages as the source.
//
// The source is the importer's only stream: overlays are rendered as
// native templates on the output document, since the importer assigns
// colliding template names when fed more than one stream, which would
// replace imported page content.
func composite(ctx context.Context, src []byte, dims []pageDim, byPage map[int][]resolvedField, cfg Config) (out []byte, err error) {
	// gofpdi panics on malformed PDF input.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrComposition, r)
		}
	}()

	pdf := fpdf.New("P", "pt", "", "")
	pdf.SetCompression(cfg.Compress)
	importer := gofpdi.NewImporter()
	rs := io.ReadSeeker(bytes.NewReader(src))

	for i, dim := range dims {
		if dim.w <= 0 || dim.h <= 0 {
			return nil, fmt.Errorf("%w: page %d has size %gx%g", ErrComposition, i+1, dim.w, dim.h)
		}

		tpl := importer.ImportPageFromStream(pdf, &rs, i+1, "/MediaBox")
		pdf.AddPageFormat("P", fpdf.SizeType{Wd: dim.w, Ht: dim.h})
		importer.UseImportedTemplate(pdf, tpl, 0, 0, dim.w, 0)

		for _, field := range byPage[i] {
			pdf.UseTemplate(renderOverlay(ctx, pdf, field, dim.w, dim.h, cfg))
		}
	}

	var buf bytes.Buffer
	if outErr := pdf.Output(&buf); outErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrComposition, outErr)
	}
	return buf.Bytes(), nil
}
