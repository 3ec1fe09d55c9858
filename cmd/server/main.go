/*
main.go - Application entry point

PURPOSE:
  Starts the period resolution HTTP server.
  Handles configuration and graceful shutdown.

STARTUP SEQUENCE:
  1. Read configuration from the environment (cleanenv)
  2. Parse command-line flags (override the environment)
  3. Create API handler and router
  4. Start server with graceful shutdown

ENVIRONMENT:
  PERIOD_PORT           HTTP server port (default: 8080)
  PERIOD_CORS_ORIGINS   Allowed CORS origins, comma separated
  PERIOD_TZ             Zone for bare YYYY-MM-DD inputs and "now" (default: UTC)
  PERIOD_READ_TIMEOUT   Server read timeout (default: 15s)
  PERIOD_WRITE_TIMEOUT  Server write timeout (default: 15s)
  PERIOD_IDLE_TIMEOUT   Server idle timeout (default: 60s)

COMMAND-LINE FLAGS:
  -port    HTTP server port
  -tz      Time zone

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Exit

EXAMPLES:
  ./server -port=3000
  PERIOD_TZ=Europe/Paris ./server

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // PERIOD_TZ must resolve in minimal containers

	"github.com/warp/period-engine/api"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Flags
	flag.IntVar(&cfg.Port, "port", cfg.Port, "HTTP server port")
	flag.StringVar(&cfg.Timezone, "tz", cfg.Timezone, "Time zone for bare dates and now")
	flag.Parse()

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("Failed to load time zone: %v", err)
	}

	handler := api.NewHandler(loc)
	router := api.NewRouter(handler, cfg.CORSOrigins)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on http://localhost:%d (tz %s)", cfg.Port, loc)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
