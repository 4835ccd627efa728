// Package pdffill fills form fields onto existing PDF documents.
//
// Callers supply the source document bytes together with a list of field
// instructions: a rectangle in Anvil coordinates (origin at the page's
// top-left corner, y increasing downward), a zero-based page index and the
// content to place there. Content is either literal text or, when it is an
// absolute URL, a signature image fetched and stamped into the rectangle.
//
// For every field a transparent page-sized overlay is rendered, then the
// overlays belonging to a page are stamped in input order on top of that
// page's original content. Pages without fields pass through untouched, and
// the output always has the same page count as the input.
//
// A fill run holds no state of its own, so Fill is safe to call from
// concurrent goroutines.
//
// Main Functions:
//
// - Fill: draws every field onto its target page and returns the new PDF
package pdffill

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// pageDim is one page's media box size in PDF user-space units.
type pageDim struct {
	w, h float64
}

// Fill draws every field onto its target page of the source document and
// returns the reassembled PDF.
//
// Signature images that cannot be fetched or decoded degrade to a visible
// error label for that field only; an unreadable source document or a
// failure while merging pages aborts the whole run.
func Fill(ctx context.Context, src []byte, fields []Field, cfg Config) ([]byte, error) {
	if len(src) == 0 {
		return nil, fmt.Errorf("input PDF data is empty")
	}
	if cfg.Fetcher == nil {
		cfg.Fetcher = NewHTTPFetcher(nil)
	}

	dims, err := readPageDims(src)
	if err != nil {
		return nil, err
	}

	log := getLogger(cfg)
	fmt.Fprintf(log, "document has %d pages\n", len(dims))

	byPage := groupByPage(resolveFields(fields), len(dims), log)

	return composite(ctx, src, dims, byPage, cfg)
}

// readPageDims reads each page's media box size from the source document.
func readPageDims(src []byte) ([]pageDim, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	pdfCtx, err := api.ReadContext(bytes.NewReader(src), conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read source PDF: %w", err)
	}
	if err := pdfCtx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("failed to determine page count: %w", err)
	}

	boxes, err := pdfCtx.PageDims()
	if err != nil {
		return nil, fmt.Errorf("failed to read page dimensions: %w", err)
	}

	dims := make([]pageDim, 0, len(boxes))
	for _, box := range boxes {
		dims = append(dims, pageDim{w: box.Width, h: box.Height})
	}
	return dims, nil
}

// groupByPage buckets fields by their zero-based page index, preserving
// input order within a page so later fields draw on top of earlier ones.
// Fields addressing a page outside the document are dropped.
func groupByPage(fields []resolvedField, pageCount int, log io.Writer) map[int][]resolvedField {
	byPage := make(map[int][]resolvedField)
	for _, field := range fields {
		if field.Page < 0 || field.Page >= pageCount {
			fmt.Fprintf(log, "field %q addresses page %d of a %d-page document, skipping\n",
				field.Name, field.Page, pageCount)
			continue
		}
		byPage[field.Page] = append(byPage[field.Page], field)
	}
	return byPage
}
