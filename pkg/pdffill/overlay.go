package pdffill

import (
	"bytes"
	"context"
	"fmt"

	"codeberg.org/go-pdf/fpdf"
)

// signatureErrorLabel is drawn in place of a signature image that could not
// be fetched or decoded.
const signatureErrorLabel = "[Signature Error]"

const (
	imagePadding = 2 // inset around signature images, in points
	textInsetX   = 3 // left inset for text content, in points
)

// renderOverlay renders one field's content into a page-sized transparent
// template on doc, positioned in PDF user space. The compositor stamps the
// template on top of the imported page content.
//
// A failed signature image degrades to an error label inside the field
// rectangle; rendering never aborts the surrounding fill run.
func renderOverlay(ctx context.Context, doc *fpdf.Fpdf, field resolvedField, pageW, pageH float64, cfg Config) fpdf.Template {
	if field.content == contentImage {
		tpl, err := imageOverlay(ctx, doc, field, pageW, pageH, cfg)
		if err == nil {
			return tpl
		}
		fmt.Fprintf(getLogger(cfg), "field %q: signature image failed: %v\n", field.Name, err)
		return labelOverlay(doc, field, pageW, pageH, cfg)
	}

	return textOverlay(doc, field, pageW, pageH, cfg)
}

// pageTemplate starts a transparent drawing surface matching the target
// page's dimensions, anchored at the page origin.
func pageTemplate(doc *fpdf.Fpdf, pageW, pageH float64, draw func(*fpdf.Tpl)) fpdf.Template {
	corner := fpdf.PointType{X: 0, Y: 0}
	size := fpdf.SizeType{Wd: pageW, Ht: pageH}
	return doc.CreateTemplateCustom(corner, size, draw)
}

// textOverlay places the literal field value left-inset and vertically
// centered inside the field rectangle.
func textOverlay(doc *fpdf.Fpdf, field resolvedField, pageW, pageH float64, cfg Config) fpdf.Template {
	rect := field.Rect
	pdfY := ToPDFY(rect.Y, pageH, rect.Height)
	size := fontSizeFor(rect.Height, cfg.Font)

	return pageTemplate(doc, pageW, pageH, func(tpl *fpdf.Tpl) {
		tpl.SetFont(cfg.Font.Name, cfg.Font.Style, size)
		baseline := pdfY + (rect.Height-size)/2 + 2
		tpl.Text(rect.X+textInsetX, deviceY(pageH, baseline), toLatin1(field.Value))
	})
}

// imageOverlay fetches and stamps a signature image centered inside the
// field rectangle, inset by imagePadding on each side, keeping the image's
// aspect ratio. The bytes are fully decoded and normalized in memory before
// registration, so corrupt data fails here instead of inside the PDF
// writer, and no scratch files are written.
func imageOverlay(ctx context.Context, doc *fpdf.Fpdf, field resolvedField, pageW, pageH float64, cfg Config) (tpl fpdf.Template, err error) {
	// The PDF image parsers panic on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("draw image: %v", r)
		}
	}()

	data, err := cfg.Fetcher.Fetch(ctx, field.src)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", field.src, err)
	}

	format, imgW, imgH, data, err := normalizeImage(data)
	if err != nil {
		return nil, err
	}

	rect := field.Rect
	boxW := rect.Width - 2*imagePadding
	boxH := rect.Height - 2*imagePadding
	if boxW <= 0 || boxH <= 0 {
		return nil, fmt.Errorf("field too small for an image: %gx%g", rect.Width, rect.Height)
	}

	drawW, drawH, dx, dy := fitImage(boxW, boxH, imgW, imgH)

	pdfY := ToPDFY(rect.Y, pageH, rect.Height)
	x := rect.X + imagePadding + dx
	top := deviceY(pageH, pdfY+imagePadding+dy+drawH)

	opts := fpdf.ImageOptions{ReadDpi: false, ImageType: format}
	name := fmt.Sprintf("sig-%s", field.Name)
	return pageTemplate(doc, pageW, pageH, func(t *fpdf.Tpl) {
		t.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
		t.ImageOptions(name, x, top, drawW, drawH, false, opts, 0, "")
	}), nil
}

// fitImage scales an imgW x imgH image to fit a box without stretching and
// centers it, returning the draw size and the offsets inside the box.
func fitImage(boxW, boxH float64, imgW, imgH int) (w, h, dx, dy float64) {
	scale := boxW / float64(imgW)
	if s := boxH / float64(imgH); s < scale {
		scale = s
	}
	w = float64(imgW) * scale
	h = float64(imgH) * scale
	dx = (boxW - w) / 2
	dy = (boxH - h) / 2
	return w, h, dx, dy
}

// labelOverlay marks a field whose signature image could not be rendered,
// at vertical mid-height of the rectangle.
func labelOverlay(doc *fpdf.Fpdf, field resolvedField, pageW, pageH float64, cfg Config) fpdf.Template {
	rect := field.Rect
	pdfY := ToPDFY(rect.Y, pageH, rect.Height)

	return pageTemplate(doc, pageW, pageH, func(tpl *fpdf.Tpl) {
		tpl.SetFont(cfg.Font.Name, cfg.Font.Style, cfg.Font.FallbackSize)
		tpl.Text(rect.X+imagePadding, deviceY(pageH, pdfY+rect.Height/2), signatureErrorLabel)
	})
}
