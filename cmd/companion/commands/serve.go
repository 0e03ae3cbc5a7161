// ABOUTME: Serve command runs the HTTP chat surface
// ABOUTME: Graceful shutdown on SIGINT/SIGTERM
package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/harper/companion/internal/config"
	"github.com/harper/companion/internal/server"
)

var serveAddr string

// NewServeCmd creates the serve command
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the companion web server",
		Long: `Start the companion web server.

Serves the single-page chat form, the /send_message endpoint, per-session
audio artifacts, and a websocket chat channel.`,
		RunE: runServe,
		Example: `  # Start with defaults (127.0.0.1:5000)
  companion serve

  # Custom listen address
  companion serve --addr :8080`,
	}

	cmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides COMPANION_LISTEN_ADDR)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil && verbose {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if serveAddr != "" {
		cfg.ListenAddr = serveAddr
	}
	if cfg.OpenAIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}

	pipeline, err := buildPipeline(cfg)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	deps := server.Dependencies{
		Chat:     pipeline,
		Sessions: pipeline.Sessions(),
		AudioDir: cfg.AudioDir,
	}
	server.RegisterRoutes(mux, deps)
	server.RegisterWSRoutes(mux, deps)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if !quiet {
			log.Printf("companion listening on http://%s", cfg.ListenAddr)
		}
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		if !quiet {
			log.Println("shutting down...")
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}
	return nil
}
