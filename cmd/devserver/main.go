// The devserver is an in-memory stand-in for the remote backend, seeded with a
// development dataset. It exists so the console can be exercised without the
// real system.
package main

import (
	"log"

	"github.com/gestionpyme/ventas-console/internal/config"
	"github.com/gestionpyme/ventas-console/internal/infrastructure/memstore"
	"github.com/gestionpyme/ventas-console/internal/presentation/http/handler"
	"github.com/gestionpyme/ventas-console/internal/presentation/http/routes"
	"github.com/gestionpyme/ventas-console/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Seed the in-memory store
	store := memstore.NewSeeded()

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.Server.JWTSecret, cfg.Server.JWTExpiry)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(store, jwtManager),
		Customer: handler.NewCustomerHandler(store),
		Product:  handler.NewProductHandler(store),
		Sale:     handler.NewSaleHandler(store),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	log.Printf("Starting %s devserver on port %s...", cfg.App.Name, cfg.Server.Port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start devserver: %v", err)
	}
}
