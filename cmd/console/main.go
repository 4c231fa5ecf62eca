package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gestionpyme/ventas-console/internal/application/service"
	"github.com/gestionpyme/ventas-console/internal/config"
	"github.com/gestionpyme/ventas-console/internal/infrastructure/api"
	"github.com/gestionpyme/ventas-console/internal/presentation/console"
	"github.com/gestionpyme/ventas-console/pkg/loading"
	"github.com/gestionpyme/ventas-console/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Shared loading gauge and API client
	gauge := &loading.Gauge{}
	client := api.NewClient(&cfg.API, gauge)

	// Initialize repositories
	sessionRepo := api.NewSessionAPI(client)
	customerRepo := api.NewCustomerAPI(client)
	productRepo := api.NewProductAPI(client)
	saleRepo := api.NewSaleAPI(client)

	ctx := context.Background()

	// Authenticate the operator session
	session, err := sessionRepo.Login(ctx, cfg.Auth.Email, cfg.Auth.Password)
	if err != nil {
		log.Fatalf("Failed to log in: %v", err)
	}
	log.Printf("Logged in as %s", session.User.Email)
	if expiry, err := utils.TokenExpiry(session.Token); err == nil {
		log.Printf("Session valid until %s", expiry.Format(time.RFC3339))
	}

	// Initialize services
	customers := service.NewLookup("customer", customerRepo.Search, cfg.Lookup.Debounce, cfg.Lookup.MinChars)
	products := service.NewLookup("product", productRepo.Search, cfg.Lookup.Debounce, cfg.Lookup.MinChars)
	drafts := service.NewDraftService()
	sales := service.NewSaleService(saleRepo)

	searchWait := cfg.Lookup.Debounce + cfg.API.Timeout
	ui := console.New(customers, products, drafts, sales, gauge, searchWait, os.Stdin, os.Stdout)

	if err := ui.Run(ctx); err != nil {
		log.Fatalf("Console exited with error: %v", err)
	}
}
