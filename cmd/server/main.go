package main

import (
	"log"

	_ "github.com/ridwanfathin/receipt-points-service/docs"
	"github.com/ridwanfathin/receipt-points-service/internal/config"
	"github.com/ridwanfathin/receipt-points-service/internal/handler"
	"github.com/ridwanfathin/receipt-points-service/internal/repository"
	"github.com/ridwanfathin/receipt-points-service/internal/server"
	"github.com/ridwanfathin/receipt-points-service/internal/service"
)

// @title Receipt Points Service API
// @version 1.0
// @description Scores purchase receipts against the point-award rules and serves the result by ID
// @BasePath /
func main() {
	// Load configuration
	log.Println("Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize repository. Receipts live for the process lifetime only;
	// the repository is constructed here and injected so tests can build
	// their own isolated instances.
	log.Println("Initializing repository...")
	repo := repository.NewMemoryReceiptRepository()

	// Create service and handler
	receiptService := service.NewReceiptService(repo)
	receiptHandler := handler.NewReceiptHandler(receiptService)

	// Create and configure server
	log.Println("Configuring server...")
	appServer := server.NewServer(cfg)
	receiptHandler.RegisterRoutes(appServer.GetRouter())

	// Start server (blocking call)
	log.Printf("Starting server on port %d...", cfg.Port)
	if err := appServer.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
