package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/brookxc/etmenu/internal/handler"
	"github.com/brookxc/etmenu/internal/repositories"
	"github.com/brookxc/etmenu/internal/router"
	"github.com/brookxc/etmenu/internal/service"
	"github.com/brookxc/etmenu/internal/view"
	"github.com/brookxc/etmenu/pkg/colorutil"
	"github.com/brookxc/etmenu/pkg/database"
	"github.com/brookxc/etmenu/pkg/envconfig"
	"github.com/brookxc/etmenu/pkg/flags"
	"github.com/brookxc/etmenu/pkg/logger"
	"github.com/brookxc/etmenu/pkg/shutdownsetup"
)

func main() {
	// Parse command-line flags
	flagConfig := flags.Parse()

	if err := flagConfig.Validate(); err != nil {
		fmt.Printf("Configuration error: %v\n", err)
		return
	}

	envErr := envconfig.LoadEnvFile(".env")

	loggerConfig := logger.Config{
		Level:        envconfig.GetLogLevel(),
		Format:       envconfig.GetEnv("LOG_FORMAT", "json"),
		Output:       envconfig.GetEnv("LOG_OUTPUT", "stdout"),
		EnableCaller: envconfig.GetEnv("LOG_ENABLE_CALLER", "true") == "true",
		Environment:  envconfig.GetEnv("ENVIRONMENT", "development"),
	}

	appLogger := logger.New(loggerConfig)

	if envErr != nil {
		appLogger.Warn("Failed to load .env file", "error", envErr)
	} else {
		appLogger.Debug(".env file loaded successfully")
	}

	appLogger.Info("Starting ETMenu restaurant directory",
		"environment", loggerConfig.Environment,
		"log_level", loggerConfig.Level)

	dbConfig := envconfig.LoadDatabaseConfig()

	// The connection string is the only required configuration; refuse to
	// start without it.
	db, err := database.NewConnection(dbConfig, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to set up database connection", "error", err)
	}

	appLogger.Info("Database connection established", "database", db.Name())

	healthCtx, healthCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.HealthCheck(healthCtx); err != nil {
		appLogger.Error("Database health check failed", "error", err)
	} else {
		appLogger.Info("Database health check passed")
	}
	healthCancel()

	// Initialize repositories
	restaurantRepo := repositories.NewRestaurantRepository(appLogger, db)
	menuItemRepo := repositories.NewMenuItemRepository(appLogger, db)
	inspector := repositories.NewDatabaseInspector(appLogger, db)

	// Initialize services
	restaurantService := service.NewRestaurantService(restaurantRepo, appLogger)
	menuService := service.NewMenuService(menuItemRepo, appLogger)
	contactService := service.NewContactService(appLogger)
	debugService := service.NewDebugService(inspector, appLogger)

	// Initialize view and handlers
	colors := colorutil.NewDeriver(appLogger)
	renderer, err := view.NewRenderer(colors, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to set up page renderer", "error", err)
	}

	pageHandler := handler.NewPageHandler(restaurantService, menuService, renderer, colors, appLogger)
	contactHandler := handler.NewContactHandler(contactService, appLogger)
	debugHandler := handler.NewDebugHandler(debugService, appLogger)

	mux := router.NewRouter(pageHandler, contactHandler, debugHandler)

	httpHandler := appLogger.HTTPMiddleware(mux)

	initialPort := flagConfig.Port
	if initialPort == "" {
		initialPort = envconfig.GetEnv("PORT", "8080")
	}
	host := envconfig.GetEnv("HOST", "localhost")

	port := initialPort

	server := &http.Server{
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		server.Addr = host + ":" + port

		go func() {
			appLogger.Info("Starting HTTP server",
				"host", host,
				"port", port,
				"address", server.Addr)

			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				appLogger.Error("Server error", "error", err)
				serverErrors <- err
			}
		}()

		select {
		case err := <-serverErrors:
			if strings.Contains(err.Error(), "address already in use") && i < maxRetries-1 {
				portNum := 8080 + i + 1
				port = fmt.Sprintf("%d", portNum)
				appLogger.Warn("Port already in use, trying alternative port",
					"current_port", server.Addr,
					"next_port", port)
				continue
			} else {
				appLogger.Error("Failed to start server after retries", "error", err)
				return
			}
		case <-time.After(200 * time.Millisecond):
			appLogger.Info("Server started successfully", "port", port)
		}

		break
	}

	select {
	case err := <-serverErrors:
		appLogger.Error("Could not start server", "error", err)
		return
	default:
		shutdownsetup.SetupGracefulShutdown(server, appLogger, db.Close)
	}
}
