package pdffill

import (
	"errors"
)

// ErrSourceFetch marks a failure to download the source document.
// Callers fetching the document themselves wrap it for classification.
var ErrSourceFetch = errors.New("source document fetch failed")

// ErrComposition marks a failure while merging overlays onto the source
// pages. The whole run aborts; no partial document is produced.
var ErrComposition = errors.New("page composition failed")
