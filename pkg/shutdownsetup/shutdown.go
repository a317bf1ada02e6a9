package shutdownsetup

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brookxc/etmenu/pkg/logger"
)

// ShutdownTimeout bounds how long in-flight requests get to finish
const ShutdownTimeout = 10 * time.Second

// SetupGracefulShutdown blocks until SIGINT/SIGTERM, then drains the HTTP
// server and runs any cleanup functions in order.
func SetupGracefulShutdown(server *http.Server, log *logger.Logger, cleanup ...func(context.Context) error) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	log.Info("Shutdown signal received", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Failed to shut down HTTP server gracefully", "error", err)
	} else {
		log.Info("HTTP server stopped")
	}

	for _, fn := range cleanup {
		if err := fn(ctx); err != nil {
			log.Error("Cleanup failed during shutdown", "error", err)
		}
	}

	log.Info("Shutdown complete")
}
