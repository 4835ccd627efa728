package fillserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Ricky01-x/PDF-fill/pkg/pdffill"
	"github.com/Ricky01-x/PDF-fill/pkg/supastore"
)

// fillRequest mirrors the body of POST /fill-pdf.
type fillRequest struct {
	PDFURL   string          `json:"pdf_url"`
	Fields   []pdffill.Field `json:"fields"`
	Filename string          `json:"filename"`
	Bucket   string          `json:"bucket"`
}

type fillResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	PDFURL   string `json:"pdf_url,omitempty"`
	Filename string `json:"filename,omitempty"`
}

type rootResponse struct {
	Service string `json:"service"`
	Status  string `json:"status"`
	Version string `json:"version"`
}

type healthResponse struct {
	Status             string `json:"status"`
	SupabaseConfigured bool   `json:"supabase_configured"`
	Timestamp          string `json:"timestamp"`
}

// handleRoot is the liveness endpoint.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, rootResponse{
		Service: ServiceName,
		Status:  "running",
		Version: Version,
	})
}

// handleHealth reports whether the storage credentials are present.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:             "healthy",
		SupabaseConfigured: s.cfg.SupabaseConfigured(),
		Timestamp:          s.now().Format(time.RFC3339),
	})
}

// handleFillPDF downloads the source document, fills the requested fields
// and uploads the result. Either a fully filled, fully uploaded document is
// reported, or a single failure; there is no partial success.
func (s *Server) handleFillPDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if s.uploader == nil {
		writeError(w, http.StatusInternalServerError,
			fmt.Sprintf("%v: set SUPABASE_URL and SUPABASE_KEY", ErrNotConfigured))
		return
	}

	var req fillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if err := validateFillRequest(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Bucket == "" {
		req.Bucket = s.cfg.Bucket
	}

	ctx := r.Context()

	src, err := s.fetcher.Fetch(ctx, req.PDFURL)
	if err != nil {
		writeError(w, http.StatusInternalServerError,
			fmt.Sprintf("%v: %v", pdffill.ErrSourceFetch, err))
		return
	}

	filled, err := pdffill.Fill(ctx, src, req.Fields, s.fillConfig())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	object := supastore.ObjectName(req.Filename, s.now())
	if err := s.uploader.Upload(ctx, req.Bucket, object, filled); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, fillResponse{
		Success:  true,
		Message:  "PDF filled successfully",
		PDFURL:   s.uploader.PublicURL(req.Bucket, object),
		Filename: req.Filename,
	})
}

func (s *Server) fillConfig() pdffill.Config {
	cfg := pdffill.DefaultConfig()
	cfg.Fetcher = s.fetcher
	return cfg
}

func validateFillRequest(req *fillRequest) error {
	u, err := url.Parse(req.PDFURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("pdf_url must be an absolute URL")
	}
	if req.Filename == "" {
		return fmt.Errorf("filename is required")
	}
	return nil
}
