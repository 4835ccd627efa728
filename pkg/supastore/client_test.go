package supastore

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpload(t *testing.T) {
	t.Parallel()

	var gotPath, gotAuth, gotContentType string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"Key":"finishpdf/out.pdf"}`))
	}))
	defer srv.Close()

	client := New(srv.URL+"/", "service-key")
	err := client.Upload(context.Background(), "finishpdf", "out.pdf", []byte("%PDF-1.4 data"))
	require.NoError(t, err)

	assert.Equal(t, "/storage/v1/object/finishpdf/out.pdf", gotPath)
	assert.Equal(t, "Bearer service-key", gotAuth)
	assert.Equal(t, "application/pdf", gotContentType)
	assert.Equal(t, []byte("%PDF-1.4 data"), gotBody)
}

func TestUploadRejected(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Bucket not found"))
	}))
	defer srv.Close()

	client := New(srv.URL, "service-key")
	err := client.Upload(context.Background(), "missing", "out.pdf", []byte("data"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpload))
	assert.Contains(t, err.Error(), "Bucket not found")
	assert.Contains(t, err.Error(), "400")
}

func TestUploadConnectionFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	client := New(srv.URL, "service-key")
	err := client.Upload(context.Background(), "finishpdf", "out.pdf", []byte("data"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpload))
}

func TestPublicURL(t *testing.T) {
	t.Parallel()

	client := New("https://abc.supabase.co/", "key")
	assert.Equal(t,
		"https://abc.supabase.co/storage/v1/object/public/finishpdf/filled_20260102_150405_report.pdf",
		client.PublicURL("finishpdf", "filled_20260102_150405_report.pdf"))
}

func TestObjectName(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "filled_20260102_150405_report.pdf", ObjectName("report.pdf", now))
}
