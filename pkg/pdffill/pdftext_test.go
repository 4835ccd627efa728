package pdffill

import (
	"bytes"
	"compress/zlib"
	"io"
	"strings"
	"testing"
)

// decodedStreams concatenates every stream payload of a PDF, inflating
// FlateDecode content and keeping other payloads as-is. Imported page
// content keeps its original filter no matter how the output document was
// configured, so assertions on drawn content go through this instead of
// searching the raw bytes.
func decodedStreams(t *testing.T, pdf []byte) string {
	t.Helper()

	var sb strings.Builder
	for _, seg := range bytes.Split(pdf, []byte("endstream")) {
		marker := bytes.Index(seg, []byte("stream\n"))
		if marker < 0 {
			continue
		}
		payload := seg[marker+len("stream\n"):]

		if r, err := zlib.NewReader(bytes.NewReader(payload)); err == nil {
			inflated, err := io.ReadAll(r)
			if err == nil {
				sb.Write(inflated)
				sb.WriteByte('\n')
				continue
			}
		}
		sb.Write(payload)
		sb.WriteByte('\n')
	}
	return sb.String()
}
