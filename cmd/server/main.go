package main

import (
	"fmt"
	"log"
	"os"

	"github.com/solarisreal/backend/config"
	httpDelivery "github.com/solarisreal/backend/internal/delivery/http"
	"github.com/solarisreal/backend/internal/domain"
	"github.com/solarisreal/backend/internal/infrastructure/catalog"
	"github.com/solarisreal/backend/internal/infrastructure/vendors"
	"github.com/solarisreal/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting SolarisReal Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Static catalogs (read-only for the process lifetime)
	schemeCatalog := catalog.NewStatic()
	vendorCatalog := vendors.NewStatic()
	if len(schemeCatalog.All()) == 0 {
		log.Fatalf("Startup check failed: %v", domain.ErrEmptyCatalog)
	}
	log.Printf("Scheme catalog: %d schemes", len(schemeCatalog.All()))
	log.Printf("Vendor catalog: %d installers", len(vendorCatalog.All()))

	// Initialize usecase layer
	matcher := usecase.NewMatcherService(schemeCatalog, usecase.MatcherConfig{
		DefaultLimit:       cfg.Matching.DefaultLimit,
		EnableDebugLogging: cfg.Matching.EnableDebugLogging,
	})

	estimator := usecase.NewEstimatorService(usecase.EstimatorConfig{
		CostPerKwINR: cfg.Estimator.CostPerKwINR,
		StatePolicy:  domain.StatePolicy{CapexSubsidyPercent: cfg.Estimator.StateCapexPercent},
	})

	vendorService := usecase.NewVendorService(vendorCatalog)

	log.Printf("Matching: default_limit=%d, debug=%v", cfg.Matching.DefaultLimit, cfg.Matching.EnableDebugLogging)
	log.Printf("Estimator: cost_per_kw=₹%.0f, state_capex=%.1f%%", cfg.Estimator.CostPerKwINR, cfg.Estimator.StateCapexPercent)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(matcher, estimator, vendorService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
