package pdffill

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositeMalformedSource(t *testing.T) {
	t.Parallel()

	dims := []pageDim{{w: 612, h: 792}}

	_, err := composite(context.Background(), []byte("garbage, not a pdf"), dims, nil, testConfig())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrComposition))
}

func TestCompositeInvalidPageDim(t *testing.T) {
	t.Parallel()

	src := makeSourcePDF(t, 1)

	for _, dims := range [][]pageDim{
		{{w: 0, h: 792}},
		{{w: 612, h: 0}},
		{{w: -1, h: 792}},
	} {
		_, err := composite(context.Background(), src, dims, nil, testConfig())
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrComposition))
	}
}

func TestCompositeStampsOverlaysInOrder(t *testing.T) {
	t.Parallel()

	src := makeSourcePDF(t, 1)
	dims, err := readPageDims(src)
	require.NoError(t, err)

	byPage := map[int][]resolvedField{0: {
		textField("first", "underneath"),
		textField("second", "on top"),
	}}

	out, err := composite(context.Background(), src, dims, byPage, testConfig())
	require.NoError(t, err)

	outDims, err := readPageDims(out)
	require.NoError(t, err)
	assert.Len(t, outDims, 1)

	content := decodedStreams(t, out)
	assert.Contains(t, content, "(Source page)")
	assert.Contains(t, content, "(underneath)")
	assert.Contains(t, content, "(on top)")
	// Overlay templates serialize in stamp order, so the later field's
	// content follows the earlier one's.
	assert.Less(t, strings.Index(content, "(underneath)"), strings.Index(content, "(on top)"))
}
