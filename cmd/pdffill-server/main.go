// pdffill-server runs the PDF field fill HTTP service.
//
// The service downloads a source PDF, draws caller-supplied field content
// onto it and uploads the result to Supabase Storage.
//
// Endpoints:
//
//	GET  /          liveness
//	GET  /health    health including storage configuration state
//	POST /fill-pdf  fill fields and upload the result
//
// Configuration:
//
//	SUPABASE_URL   Supabase project URL (required for fill requests)
//	SUPABASE_KEY   Supabase service key (required for fill requests)
//	--host         Address to listen on (default 0.0.0.0)
//	--port         Port to listen on (default 8000)
//	--bucket       Default storage bucket (default finishpdf)
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Ricky01-x/PDF-fill/pkg/fillserver"
)

func main() {
	cfg, err := fillserver.LoadFromFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	if !cfg.SupabaseConfigured() {
		logger.Warn("SUPABASE_URL / SUPABASE_KEY not set, fill requests will be rejected")
	}

	srv := fillserver.New(cfg, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-signalCh
		logger.Info("shutting down", "signal", sig.String())
		cancel()
	}()

	logger.Info("listening", "addr", cfg.Address())
	if err := srv.Run(ctx); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
