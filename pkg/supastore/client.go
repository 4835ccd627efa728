// Package supastore is a minimal client for the Supabase Storage HTTP API.
//
// It covers the two operations the fill service needs: uploading a finished
// document into a bucket and composing the object's public download URL.
package supastore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrUpload reports that the storage API rejected an upload or could not
// be reached.
var ErrUpload = errors.New("storage upload failed")

// Client talks to one Supabase project's storage API.
type Client struct {
	baseURL string
	key     string
	httpc   *http.Client
}

// New builds a storage client for the given project URL and service key.
func New(baseURL, key string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     key,
		httpc:   &http.Client{Timeout: 60 * time.Second},
	}
}

// Upload stores data under bucket/path. The object is created with content
// type application/pdf; anything but a 200 or 201 response is an error.
// No retries are attempted.
func (c *Client) Upload(ctx context.Context, bucket, path string, data []byte) error {
	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, bucket, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/pdf")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: status %d: %s", ErrUpload, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

// PublicURL composes the public download URL for an uploaded object.
// This is pure string composition; no network call is made.
func (c *Client) PublicURL(bucket, path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, bucket, path)
}

// ObjectName derives the stored object name for a fill result. Names are
// unique only to second granularity; two uploads of the same filename
// within the same second overwrite each other.
func ObjectName(filename string, now time.Time) string {
	return fmt.Sprintf("filled_%s_%s", now.Format("20060102_150405"), filename)
}
