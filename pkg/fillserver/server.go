// Package fillserver exposes the pdffill pipeline over HTTP.
//
// The service offers a liveness endpoint, a health endpoint reporting
// whether storage is configured, and a fill endpoint that downloads a
// source PDF, draws the requested fields onto it and uploads the result
// to a Supabase Storage bucket.
package fillserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Ricky01-x/PDF-fill/pkg/pdffill"
	"github.com/Ricky01-x/PDF-fill/pkg/supastore"
)

// ErrNotConfigured is returned for fill requests while the Supabase
// credentials are missing from the environment.
var ErrNotConfigured = errors.New("supabase storage is not configured")

// Uploader stores a finished document and exposes its public URL.
// *supastore.Client satisfies it.
type Uploader interface {
	Upload(ctx context.Context, bucket, path string, data []byte) error
	PublicURL(bucket, path string) string
}

// Server handles the HTTP surface of the fill service. Each request is
// processed synchronously in its own handler goroutine; the server keeps
// no mutable state across requests.
type Server struct {
	cfg      *Config
	logger   *slog.Logger
	fetcher  pdffill.Fetcher
	uploader Uploader
	httpSrv  *http.Server
	now      func() time.Time
}

// New wires a server from the given configuration. When the Supabase
// credentials are present an upload client is created; otherwise fill
// requests are rejected with a configuration error.
func New(cfg *Config, logger *slog.Logger) *Server {
	s := &Server{
		cfg:     cfg,
		logger:  logger,
		fetcher: pdffill.NewHTTPFetcher(&http.Client{Timeout: 60 * time.Second}),
		now:     time.Now,
	}
	if cfg.SupabaseConfigured() {
		s.uploader = supastore.New(cfg.SupabaseURL, cfg.SupabaseKey)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/fill-pdf", s.handleFillPDF)

	s.httpSrv = &http.Server{
		Addr:              cfg.Address(),
		Handler:           withCORS(s.withRequestLog(mux)),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Handler returns the full middleware-wrapped handler.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}
