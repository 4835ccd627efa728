package pdffill

// ToPDFY converts a top-left-anchored y coordinate into PDF user space.
//
// Anvil rectangles are anchored by their top-left corner with y growing
// downward; PDF drawing anchors by the bottom-left corner with y growing
// upward. The returned value is the y of the element's bottom edge such
// that its top edge lands at the original top-anchored position. A result
// below zero simply draws off-page.
func ToPDFY(topY, pageHeight, elementHeight float64) float64 {
	return pageHeight - topY - elementHeight
}

// deviceY maps a bottom-left-origin PDF y back into the top-down device
// space the drawing surface uses.
func deviceY(pageHeight, pdfY float64) float64 {
	return pageHeight - pdfY
}

// fontSizeFor derives a text size from the field height, clamped so very
// short or very tall fields stay legible.
func fontSizeFor(height float64, font FontConfig) float64 {
	size := height * 0.6
	if size > font.MaxSize {
		size = font.MaxSize
	}
	if size < font.MinSize {
		size = font.MinSize
	}
	return size
}
